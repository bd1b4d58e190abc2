package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/guttosm/cryptopulse/internal/apperr"
)

// MaxCodeLength is the longest accepted crypto code.
const MaxCodeLength = 5

// NormalizeCode trims and upper-cases a crypto code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// CodeRule is one step of the registration validation chain.
type CodeRule struct {
	Name     string
	Violated func(ctx context.Context, code string) (bool, error)
	Err      func(code string) error
}

// RegistrationRules returns the ordered chain applied before a code is
// registered: duplicate, then length, then format.
func RegistrationRules(exists func(ctx context.Context, code string) (bool, error)) []CodeRule {
	return []CodeRule{
		{
			Name:     "duplicate",
			Violated: exists,
			Err:      func(code string) error { return apperr.DuplicateCode(code) },
		},
		{
			Name: "length",
			Violated: func(_ context.Context, code string) (bool, error) {
				return utf8.RuneCountInString(code) > MaxCodeLength, nil
			},
			Err: func(string) error { return apperr.CodeTooLong() },
		},
		{
			Name: "format",
			Violated: func(_ context.Context, code string) (bool, error) {
				return !isAlpha(code), nil
			},
			Err: func(string) error { return apperr.InvalidCodeFormat() },
		},
	}
}

// ValidateCode runs rules in order and stops at the first violation.
func ValidateCode(ctx context.Context, code string, rules []CodeRule) error {
	for _, r := range rules {
		bad, err := r.Violated(ctx, code)
		if err != nil {
			return err
		}
		if bad {
			return r.Err(code)
		}
	}
	return nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
