package logging

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorJSON(t *testing.T) {
	e1 := stderrors.New("standard error")
	e2 := fmt.Errorf("wrapped error: %w", e1)
	e3 := errors.New("pkg errors error")
	e4 := errors.Wrapf(e3, "wrapped pkg error")
	for i, test := range []struct {
		err   error
		msg   string
		trace bool
	}{
		{e1, "standard error", false},
		{e2, "wrapped error: standard error", false},
		{e3, "pkg errors error", true},
		{e4, "wrapped pkg error: pkg errors error", true},
	} {
		t.Run(fmt.Sprintf("%d", i+1), func(t *testing.T) {
			buf := new(bytes.Buffer)
			logger := slog.New(NewHandler(LoggerJSON, slog.LevelDebug, buf, true))
			logger.Error("Test error", slog.String("test", "attribute"), Error(test.err))

			var rec map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
			assert.Equal(t, "Test error", rec["msg"])
			assert.Equal(t, "attribute", rec["test"])
			e, ok := rec["error"].(map[string]any)
			require.True(t, ok, "error attribute is not a group")
			assert.Equal(t, test.msg, e["message"])
			_, hasTrace := e["trace"]
			assert.Equal(t, test.trace, hasTrace)
		})
	}
}

func TestErrorWithoutTrace(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(NewHandler(LoggerText, slog.LevelInfo, buf, false))
	logger.Error("failed", Error(errors.New("boom")))
	out := buf.String()
	assert.Contains(t, out, "error.message=boom")
	assert.NotContains(t, out, "error.trace")
}

func TestTraceHandler(t *testing.T) {
	for _, trace := range []bool{true, false} {
		t.Run(fmt.Sprintf("trace=%t", trace), func(t *testing.T) {
			h := newTraceHandler(slogt.New(t, slogt.JSON()).Handler(), trace)
			attr := Error(errors.New("boom"))
			slog.New(h).Error("Test error", attr)

			elv, ok := attr.Value.Any().(errorLogValuer)
			require.True(t, ok, "unexpected error attribute value %T", attr.Value.Any())
			assert.Equal(t, trace, elv.opts.trace)
		})
	}
}

func TestErrorNil(t *testing.T) {
	assert.Equal(t, slog.Attr{}, Error(nil))

	buf := new(bytes.Buffer)
	logger := slog.New(NewHandler(LoggerText, slog.LevelInfo, buf, true))
	logger.Info("Nothing failed", Error(nil))
	out := buf.String()
	assert.Contains(t, out, "Nothing failed")
	assert.NotContains(t, out, "error")
}

func TestHandlerLevel(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(NewHandler(LoggerPrettyNoColor, slog.LevelWarn, buf, true))
	logger.Info("hidden")
	logger.Warn("shown", "value", 42)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "value=42")
}

func TestHandlerWithAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(NewHandler(LoggerText, slog.LevelInfo, buf, true)).With(slog.String("component", "radix"))
	logger.Error("failed", Error(errors.New("boom")))
	out := buf.String()
	assert.Contains(t, out, "component=radix")
	assert.Contains(t, out, "error.message=boom")
	assert.Contains(t, out, "error.trace=")
}

func TestLoggerType(t *testing.T) {
	for _, lt := range []LoggerType{LoggerText, LoggerJSON, LoggerPretty, LoggerPrettyNoColor} {
		text, err := lt.MarshalText()
		require.NoError(t, err)
		var p LoggerType
		require.NoError(t, p.UnmarshalText(text))
		assert.Equal(t, lt, p)
		require.NoError(t, p.UnmarshalText([]byte(strings.ToUpper(lt.String()))))
		assert.Equal(t, lt, p)
	}
	var p LoggerType
	assert.Error(t, p.UnmarshalText([]byte("xml")))
	assert.Equal(t, "LoggerType(42)", LoggerType(42).String())
}

func TestParameters(t *testing.T) {
	for i, test := range []struct {
		args  []string
		level slog.Level
		typ   LoggerType
		fail  bool
	}{
		{nil, slog.LevelInfo, LoggerPretty, false},
		{[]string{"--log-level", "debug", "--log-type", "json"}, slog.LevelDebug, LoggerJSON, false},
		{[]string{"--log-level=WARN", "--log-type=text"}, slog.LevelWarn, LoggerText, false},
		{[]string{"--log-level", "verbose"}, 0, 0, true},
		{[]string{"--log-type", "xml"}, 0, 0, true},
	} {
		t.Run(fmt.Sprintf("%d", i+1), func(t *testing.T) {
			fs := flag.NewFlagSet("test", flag.ContinueOnError)
			var p Parameters
			p.Initialize(fs)
			require.NoError(t, fs.Parse(test.args))
			err := p.Parse()
			if test.fail {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.level, p.Level)
			assert.Equal(t, test.typ, p.Type)
		})
	}
}
