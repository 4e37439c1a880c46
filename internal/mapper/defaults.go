// Package mapper translates between the YNAB API shapes and the gateway's
// wire contract. The two schemas disagree on which fields are optional;
// this package is the single place that disagreement is reconciled.
package mapper

// The wire contract has no optional scalars, so every nullable API field
// collapses to an explicit default on the way out. One total function per
// field type keeps the substitution uniform.

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orZero(n *int64) int64 {
	if n == nil {
		return 0
	}
	return *n
}

func orFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// The save path runs the other way: a wire zero value means "leave
// unchanged" and must be omitted from the API request entirely.

func omitEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func omitZero(n int64) *int64 {
	if n == 0 {
		return nil
	}
	return &n
}

func omitFalse(b bool) *bool {
	if !b {
		return nil
	}
	return &b
}
