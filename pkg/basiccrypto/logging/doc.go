// Package logging provides a minimal logging facade for the toolkit.
//
// The numeric kernels never log. Long-running searches (affine key recovery,
// exponent key search) and the command-line tool accept a Logger so that
// progress can be traced without binding the library to a logging backend.
//
// # Logger Interface
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Constructors
//
//	logger := logging.New(nil)                          // slog.Default()
//	logger := logging.NewText(os.Stderr, slog.LevelDebug)
//	logger := logging.Discard()                         // drops everything
//
// # Redaction
//
// Recovered keys are the interesting output of an attack, but a key that was
// supplied by the caller should not end up in logs:
//
//	logger.Info(ctx, "decrypting", logging.Redacted("key"), "blocks", len(ct))
//	// Logs: key="[redacted]"
package logging
