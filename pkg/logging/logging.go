package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// DefaultHandler creates a new slog handler with the specified parameters writing to w.
// Stack traces of logged errors are included.
func DefaultHandler(params Parameters, w io.Writer) slog.Handler {
	return NewHandler(params.Type, params.Level, w, true)
}

// NewHandler creates a new slog handler based on the specified logger type and level.
// If trace is false, errors logged with Error are reported by message only.
func NewHandler(loggerType LoggerType, level slog.Level, w io.Writer, trace bool) slog.Handler {
	return newTraceHandler(newHandler(loggerType, level, w), trace)
}

func newHandler(loggerType LoggerType, level slog.Level, w io.Writer) slog.Handler {
	switch loggerType {
	case LoggerText:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case LoggerJSON:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	case LoggerPretty:
		type fd interface{ Fd() uintptr }
		colorize := false
		if f, ok := w.(fd); ok {
			colorize = isatty.IsTerminal(f.Fd())
		}
		return buildPrettyHandler(w, level, colorize)
	case LoggerPrettyNoColor:
		return buildPrettyHandler(w, level, false)
	default:
		panic(fmt.Sprintf("unsupported logger type %d", loggerType))
	}
}

func buildPrettyHandler(w io.Writer, level slog.Level, colorize bool) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !colorize,
	})
}

type attrVisitorHandler struct {
	slog.Handler
	attrVisitor func(a slog.Attr) bool
}

func (h *attrVisitorHandler) Handle(ctx context.Context, r slog.Record) error {
	if !h.Handler.Enabled(ctx, r.Level) {
		return nil
	}
	if h.attrVisitor != nil {
		r.Attrs(h.attrVisitor)
	}
	return h.Handler.Handle(ctx, r)
}

func (h *attrVisitorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &attrVisitorHandler{Handler: h.Handler.WithAttrs(attrs), attrVisitor: h.attrVisitor}
}

func (h *attrVisitorHandler) WithGroup(name string) slog.Handler {
	return &attrVisitorHandler{Handler: h.Handler.WithGroup(name), attrVisitor: h.attrVisitor}
}

// newTraceHandler wraps the handler to switch stack traces of logged errors on or off.
func newTraceHandler(h slog.Handler, trace bool) slog.Handler {
	return &attrVisitorHandler{
		Handler: h,
		attrVisitor: func(a slog.Attr) bool {
			if a.Key != errorKey || a.Value.Kind() != slog.KindLogValuer {
				return true
			}
			if elv, ok := a.Value.Any().(errorLogValuer); ok && elv.opts != nil {
				elv.opts.trace = trace
			}
			return true
		},
	}
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

type errTextMarshaler struct {
	err error
}

func (e errTextMarshaler) MarshalText() ([]byte, error) {
	return []byte(e.err.Error()), nil
}

type errorLogValuerOpts struct {
	trace bool
}

type errorLogValuer struct {
	err  error
	opts *errorLogValuerOpts
}

func (e errorLogValuer) LogValue() slog.Value {
	if e.err == nil {
		return slog.Value{}
	}
	const (
		msgKey   = "message"
		traceKey = "trace"
	)
	attrs := make([]slog.Attr, 0, 2)
	attrs = append(attrs, slog.Any(msgKey, errTextMarshaler{e.err}))
	if e.opts != nil && e.opts.trace {
		var st stackTracer
		if errors.As(e.err, &st) {
			attrs = append(attrs, slog.String(traceKey, fmt.Sprintf("%+v", st.StackTrace())))
		}
	}
	return slog.GroupValue(attrs...)
}

const errorKey = "error"

// Error returns an attribute that logs the error message and, if enabled by the handler, its stack trace.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	var lvErr slog.LogValuer = errorLogValuer{
		err:  err,
		opts: new(errorLogValuerOpts),
	}
	return slog.Any(errorKey, lvErr)
}
