// Package observability defines the logging abstraction used by the parsing
// pipeline. Components accept a [Logger] through an option and emit events
// for cascade fallbacks, coercions, and recovery attempts; callers who do not
// care pass nothing and pay nothing.
//
// The slogobs subpackage provides a ready-made [Logger] backed by the
// standard library's log/slog.
package observability
