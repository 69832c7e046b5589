// Package sift turns the raw, frequently malformed text produced by LLM
// providers into structured data an application can trust.
//
// The library is organised as a small set of composable packages:
//
//   - core/extract locates and parses a JSON value inside noisy text using a
//     cascade of increasingly permissive strategies.
//   - core/schema validates and coerces a parsed value against a declarative,
//     deliberately non-strict schema description.
//   - core/response orchestrates extraction, validation and typed decoding
//     into a single result envelope that never fails with an exception.
//   - core/recovery runs an ordered chain of fallback strategies when primary
//     parsing fails outright, salvaging partial data where possible.
//   - core/prose is the sibling pipeline for plain-text (non-JSON) answers:
//     quote and code-fence stripping plus refusal detection with fallback.
//
// All operations are synchronous, stateless and allocation-bounded; multiple
// calls may run concurrently without coordination.
package sift
