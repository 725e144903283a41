package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/baseconv/baseconv/pkg/logging"
	"github.com/baseconv/baseconv/pkg/radix"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
)

var version = "v0.1.0"

type example struct {
	value    string
	from, to radix.Base
}

var examples = []example{
	{"1010", radix.Binary, radix.Decimal},
	{"1E", radix.Hexadecimal, radix.Decimal},
	{"100", radix.Decimal, radix.Binary},
	{"100", radix.Decimal, radix.Hexadecimal},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := new(config)
	defer c.close()
	if err := c.parse(args, stdin, stdout); err != nil {
		slog.New(logging.NewHandler(logging.LoggerText, slog.LevelInfo, stderr, false)).
			Error("Failed to parse application parameters", logging.Error(err))
		c.usage()
		return exitUsage
	}
	if c.showHelp {
		c.usage()
		return exitOK
	}
	if c.showVersion {
		_, _ = fmt.Fprintf(stdout, "baseconv %s\n", version)
		return exitOK
	}
	slog.SetDefault(slog.New(logging.DefaultHandler(c.lp, stderr)))
	slog.Debug("Starting with parameters", "parameters", c.String())

	if c.in == nil && len(c.values) == 0 {
		if err := printExamples(c.out); err != nil {
			slog.Error("Failed to print examples", logging.Error(err))
			return exitFailure
		}
		return exitOK
	}
	values := c.values
	if c.in != nil {
		read, err := readValues(c.in)
		if err != nil {
			slog.Error("Failed to read input values", logging.Error(err))
			return exitFailure
		}
		values = append(values, read...)
	}
	slog.Debug("Converting values", "count", len(values), "from", c.from, "to", c.to)
	results, err := convertAll(ctx, values, c.from, c.to)
	if err != nil {
		slog.Error("Conversion failed", logging.Error(err))
		return exitFailure
	}
	for i, r := range results {
		if err := printLine(c.out, values[i], c.from, r, c.to); err != nil {
			slog.Error("Failed to write result", logging.Error(err))
			return exitFailure
		}
	}
	return exitOK
}

func printExamples(w io.Writer) error {
	for _, e := range examples {
		r, err := radix.Convert(e.value, e.from, e.to)
		if err != nil {
			return err
		}
		if err := printLine(w, e.value, e.from, r, e.to); err != nil {
			return err
		}
	}
	return nil
}

func printLine(w io.Writer, in string, from radix.Base, out string, to radix.Base) error {
	_, err := fmt.Fprintf(w, "%8s (%s) -> %8s (%s)\n", in, from, out, to)
	return err
}

func readValues(r io.Reader) ([]string, error) {
	var values []string
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	for s.Scan() {
		values = append(values, s.Text())
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan values")
	}
	return values, nil
}

// convertAll converts the values concurrently, results are in the order of the values.
func convertAll(ctx context.Context, values []string, from, to radix.Base) ([]string, error) {
	results := make([]string, len(values))
	g, gc := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range values {
		g.Go(func() error {
			if err := gc.Err(); err != nil {
				return err
			}
			r, err := radix.Convert(v, from, to)
			if err != nil {
				return errors.Wrapf(err, "value #%d %q", i+1, v)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
