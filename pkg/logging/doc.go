// Package logging configures the log/slog loggers used by varexpand.
//
// The expansion engine never writes to stdout or stderr on its own; it
// reports non-OK directives to the *slog.Logger it was constructed with,
// at debug level. The CLI builds that logger from flags:
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel("debug"),
//	    Format: logging.FormatJSON,
//	})
//
// When no logger is supplied, components use Nop.
//
// Tee fans a record out to several handlers, which the CLI uses to mirror
// diagnostics into a log file while still writing to stderr.
package logging
