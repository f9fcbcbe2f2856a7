package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
)

type ctxKey struct{}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New builds a logger writing to w. Format "json" selects the JSON handler,
// anything else the text handler.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("app", "agrorent")
}

// Initialize sets up the global logger on stdout
func Initialize(level, format string) {
	SetDefault(New(os.Stdout, level, format))
}

// SetDefault swaps the package logger; tests use it to capture output.
func SetDefault(l *slog.Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
	slog.SetDefault(l)
}

// Get returns the default logger
func Get() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l == nil {
		Initialize("info", "text")
		return Get()
	}
	return l
}

// WithContext stores a request-scoped logger in ctx.
func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger, or the default one.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return Get()
}

func Debug(msg string, args ...any) { Get().Debug(msg, args...) }
func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

// EnterMethod logs method entry (process tracking)
func EnterMethod(methodName string, args ...any) {
	Get().Debug("enter", prefixed(args, "method", methodName)...)
}

// ExitMethod logs method exit (process tracking)
func ExitMethod(methodName string, args ...any) {
	Get().Debug("exit", prefixed(args, "method", methodName)...)
}

// ExitMethodWithError logs a failed method exit. Domain rejections are
// expected outcomes, so they are logged at warn rather than error.
func ExitMethodWithError(methodName string, err error, args ...any) {
	Get().Warn("exit with error", prefixed(args, "method", methodName, "error", err)...)
}

// DatabaseCall logs a query before it runs.
func DatabaseCall(operation, query string, args ...any) {
	Get().Debug("db call", prefixed(args, "operation", operation, "query", compact(query))...)
}

// DatabaseResult logs the outcome of a query.
func DatabaseResult(operation string, rowsAffected int64, err error, args ...any) {
	all := prefixed(args, "operation", operation, "rows_affected", rowsAffected)
	if err != nil {
		Get().Error("db call failed", append(all, "error", err)...)
		return
	}
	Get().Debug("db call ok", all...)
}

// ExternalServiceCall logs a call to a broker, cache or gateway.
func ExternalServiceCall(service, operation string, args ...any) {
	Get().Debug("external call", prefixed(args, "service", service, "operation", operation)...)
}

// ExternalServiceResult logs the outcome of an external call.
func ExternalServiceResult(service, operation string, err error, args ...any) {
	all := prefixed(args, "service", service, "operation", operation)
	if err != nil {
		Get().Error("external call failed", append(all, "error", err)...)
		return
	}
	Get().Debug("external call ok", all...)
}

func prefixed(args []any, head ...any) []any {
	out := make([]any, 0, len(head)+len(args))
	out = append(out, head...)
	return append(out, args...)
}

// compact folds multi-line SQL onto one line.
func compact(query string) string {
	return strings.Join(strings.Fields(query), " ")
}
