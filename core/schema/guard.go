package schema

// TypeGuard builds a predicate that reports whether a value conforms to s.
// The guard validates without applying defaults, so a value missing a
// defaulted required field is rejected rather than silently repaired.
// Guards are used by the recovery chain to filter salvaged array items.
func TypeGuard(s Schema) func(any) bool {
	return func(value any) bool {
		return Validate(value, s, WithoutDefaults()).Valid
	}
}
