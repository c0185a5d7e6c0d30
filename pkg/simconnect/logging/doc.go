// Package logging provides the small logging facade used by the simconnect
// wrapper.
//
// The Logger interface covers the subset of log/slog that the wrapper needs,
// so applications can plug in their own implementation:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// Two implementations ship with the package. New wraps a *slog.Logger
// (slog.Default() when nil):
//
//	logger := logging.New(slog.New(slog.NewJSONHandler(os.Stderr, nil)))
//
// NewZap wraps a *zap.Logger for applications already built on zap:
//
//	zl, _ := zap.NewProduction()
//	logger := logging.NewZap(zl)
//
// Arguments are alternating key/value pairs in both cases. The wrapper logs
// connection lifecycle events and failed calls at debug level only.
package logging
