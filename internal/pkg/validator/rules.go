package validator

// Rule pairs a predicate with the violation reported when it fails.
// Valid must return true when the checked value is acceptable.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// First evaluates rules in order and returns a single-entry
// ValidationErrors for the first violation. Used by single-record
// create/update paths that fail fast.
func First(rules ...Rule) error {
	for _, r := range rules {
		if !r.Valid() {
			return ValidationErrors{{Field: r.Field, Message: r.Message}}
		}
	}
	return nil
}

// All evaluates every rule and accumulates all violations. Used by
// batch and import paths where the caller wants the full picture.
// Returns nil when everything passes.
func All(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Valid() {
			errs = append(errs, ValidationError{Field: r.Field, Message: r.Message})
		}
	}
	return errs
}
