package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"netplas-inventory/pkg/password"
)

func TestPolicyValidate(t *testing.T) {
	policy := password.NewPolicy(8, 0.7)

	tests := []struct {
		name       string
		password   string
		attributes []string
		expected   error
	}{
		{name: "strong password", password: "Tiger-Lily-Harbor-42", attributes: []string{"ayse@example.com", "Ayse", "Yilmaz"}},
		{name: "too short", password: "x7#kq", expected: password.ErrTooShort},
		{name: "over the bcrypt limit", password: strings.Repeat("harbor-", 13), expected: password.ErrTooLong},
		{name: "multibyte over the bcrypt limit", password: strings.Repeat("şğü", 13), expected: password.ErrTooLong},
		{name: "entirely numeric", password: "8273649182", expected: password.ErrEntirelyDigit},
		{name: "common", password: "Password123", expected: password.ErrTooCommon},
		{name: "similar to email local part", password: "ayseyilmaz1", attributes: []string{"ayseyilmaz@example.com"}, expected: password.ErrTooSimilar},
		{name: "similar to surname", password: "Yilmaz2024", attributes: []string{"", "Yilmaz"}, expected: password.ErrTooSimilar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.Validate(tt.password, tt.attributes...)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, password.Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, password.Similarity("abc", "xyz"), 1e-9)
	// difflib.SequenceMatcher(None, "abcd", "bcde").ratio() == 0.75
	assert.InDelta(t, 0.75, password.Similarity("abcd", "bcde"), 1e-9)
	assert.InDelta(t, 1.0, password.Similarity("", ""), 1e-9)
}
