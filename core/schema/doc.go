// Package schema validates and coerces parsed provider output against a
// declarative, deliberately non-strict schema description.
//
// A schema is a tagged union of variant kinds — [Object], [Array], [String],
// [Number] and [Boolean] — so that illegal combinations are unrepresentable.
// This is not a JSON-Schema implementation: because provider output typing is
// unreliable, [Validate] favours usability over strictness and coerces
// loosely-matching values (array to string, number to string, numeric string
// to number) instead of rejecting them. Every coercion and applied default is
// auditable through the warnings list on [Result] rather than silent.
//
// [FromType] derives a schema from a Go struct so that callers who already
// model their expected output as a type do not have to hand-write literals.
package schema
