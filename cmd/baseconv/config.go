package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"

	flag "github.com/spf13/pflag"

	"github.com/baseconv/baseconv/pkg/logging"
	"github.com/baseconv/baseconv/pkg/radix"
)

const stdStream = "-"

type config struct {
	from        radix.Base
	to          radix.Base
	values      []string
	in          io.ReadCloser
	out         io.WriteCloser
	lp          logging.Parameters
	showHelp    bool
	showVersion bool
	usage       func()
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

func newFlagSet(c *config, stdout io.Writer) (*flag.FlagSet, *string, *string) {
	var in, out string
	fs := flag.NewFlagSet("baseconv", flag.ContinueOnError)
	fs.SetOutput(stdout)
	c.from = radix.Decimal
	c.to = radix.Hexadecimal
	fs.VarP(&c.from, "from", "f", "Base of the input values: bin, dec or hex.")
	fs.VarP(&c.to, "to", "t", "Base of the output values: bin, dec or hex.")
	fs.StringVar(&in, "in", "",
		"Read whitespace-separated values from the file. Use '-' to read from STDIN.")
	fs.StringVar(&out, "out", "", "Write results to the file. If empty, writes to STDOUT.")
	fs.BoolVarP(&c.showHelp, "help", "h", false, "Print usage information (this message) and quit")
	fs.BoolVarP(&c.showVersion, "version", "v", false, "Print version information and quit")
	c.lp.Initialize(fs)
	fs.Usage = func() {
		_, _ = fmt.Fprintln(stdout, "usage: baseconv [flags] [values...]")
		_, _ = fmt.Fprintln(stdout, "Without values prints a few example conversions.")
		fs.PrintDefaults()
	}
	c.usage = fs.Usage
	return fs, &in, &out
}

func (c *config) parse(args []string, stdin io.Reader, stdout io.Writer) error {
	fs, in, out := newFlagSet(c, stdout)
	// Parse errors are reported by the caller, followed by the usage.
	fs.SetOutput(io.Discard)
	err := fs.Parse(args)
	fs.SetOutput(stdout)
	if err != nil {
		return err
	}
	if c.showHelp || c.showVersion {
		return nil
	}
	if lpErr := c.lp.Parse(); lpErr != nil {
		return lpErr
	}
	c.values = fs.Args()
	if inErr := c.setInput(*in, stdin); inErr != nil {
		return inErr
	}
	if outErr := c.setOutput(*out, stdout); outErr != nil {
		return outErr
	}
	return nil
}

func (c *config) setInput(str string, stdin io.Reader) error {
	switch str {
	case "":
		return nil
	case stdStream:
		c.in = io.NopCloser(stdin)
		return nil
	}
	fi, err := os.Stat(str)
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("file %q does not exist", str)
	}
	if err != nil {
		return fmt.Errorf("invalid file path: %w", err)
	}
	if fi.IsDir() {
		return fmt.Errorf("path %q is not a file", str)
	}
	c.in, err = os.Open(path.Clean(str))
	if err != nil {
		return fmt.Errorf("failed to open input file %q: %w", str, err)
	}
	return nil
}

func (c *config) setOutput(str string, stdout io.Writer) error {
	if len(str) == 0 || str == stdStream {
		c.out = nopWriteCloser{stdout}
		return nil
	}
	fi, err := os.Stat(str)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("invalid file path: %w", err)
	}
	if err == nil && fi.IsDir() {
		return fmt.Errorf("path %q is not a file", str)
	}
	f, err := os.Create(path.Clean(str))
	if err != nil {
		return fmt.Errorf("failed to open output file %q: %w", str, err)
	}
	c.out = f
	return nil
}

func (c *config) close() {
	if c.in != nil {
		if err := c.in.Close(); err != nil {
			slog.Warn("Failed to close input", logging.Error(err))
		}
	}
	if c.out != nil {
		if err := c.out.Close(); err != nil {
			slog.Warn("Failed to close output", logging.Error(err))
		}
	}
}

func (c *config) String() string {
	return fmt.Sprintf("{From: %s, To: %s, Values: %d, Logging: %s}", c.from, c.to, len(c.values), c.lp.String())
}
