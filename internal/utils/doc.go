// Package utils provides shared low-level helpers used throughout the sift
// internals: generic pointer and string utilities plus JSON stringification
// that is safe to use in log output.
//
// Key entry points: [JSONToString] for log-safe serialisation, [TruncateString]
// and [ErrorContext] for bounding payload excerpts, and [Ptr] for converting
// values to pointers.
package utils
