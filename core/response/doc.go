// Package response orchestrates extraction, schema validation and typed
// decoding of raw provider output into a single result envelope.
//
// The central contract is that no failure escapes as an error value or panic:
// [Parse] and [ParseAs] convert every hard failure — extraction impossible,
// schema mismatch, transform blow-up — into a failed [Result] with a typed
// parse error, so ordinary callers never need their own recovery wrapping.
// Soft issues such as coercions and applied defaults surface only as
// warnings on the result metadata.
package response
