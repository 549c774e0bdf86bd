// Package password checks new passwords against the account password policy.
package password

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// MaxBytes is the bcrypt input limit; longer passwords cannot be stored.
const MaxBytes = 72

var (
	ErrTooLong       = errors.New("password is too long")
	ErrTooShort      = errors.New("password is too short")
	ErrEntirelyDigit = errors.New("password is entirely numeric")
	ErrTooSimilar    = errors.New("password is too similar to the account details")
	ErrTooCommon     = errors.New("password is too common")
)

//go:embed common.txt
var commonList string

var nonWord = regexp.MustCompile(`\W+`)

// Policy is the set of rules a new password must satisfy.
type Policy struct {
	MinLength     int
	MaxSimilarity float64
	common        map[string]struct{}
}

func NewPolicy(minLength int, maxSimilarity float64) *Policy {
	return &Policy{
		MinLength:     minLength,
		MaxSimilarity: maxSimilarity,
		common:        loadCommon(commonList),
	}
}

func loadCommon(list string) map[string]struct{} {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(strings.NewReader(list))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[strings.ToLower(line)] = struct{}{}
	}
	return set
}

// Validate returns the first rule the password breaks. attributes are the
// user's own details (email, name, surname) the password must not resemble.
func (p *Policy) Validate(password string, attributes ...string) error {
	if len([]rune(password)) < p.MinLength {
		return fmt.Errorf("%w: it must contain at least %d characters", ErrTooShort, p.MinLength)
	}
	if len(password) > MaxBytes {
		return fmt.Errorf("%w: it must not exceed %d bytes", ErrTooLong, MaxBytes)
	}
	if isDigits(password) {
		return ErrEntirelyDigit
	}

	lowered := strings.ToLower(password)
	for _, attr := range attributes {
		attr = strings.ToLower(strings.TrimSpace(attr))
		if attr == "" {
			continue
		}
		parts := append(nonWord.Split(attr, -1), attr)
		for _, part := range parts {
			if part == "" {
				continue
			}
			if Similarity(lowered, part) >= p.MaxSimilarity {
				return ErrTooSimilar
			}
		}
	}

	if _, ok := p.common[lowered]; ok {
		return ErrTooCommon
	}
	return nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}

// Similarity is the Ratcliff/Obershelp ratio of a and b: twice the number of
// matching characters divided by the total length. 1 means identical.
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}
	return 2 * float64(matching(ra, rb)) / float64(total)
}

func matching(a, b []rune) int {
	i, j, size := longestCommon(a, b)
	if size == 0 {
		return 0
	}
	return size + matching(a[:i], b[:j]) + matching(a[i+size:], b[j+size:])
}

// longestCommon finds the earliest longest common substring of a and b.
func longestCommon(a, b []rune) (int, int, int) {
	bestI, bestJ, best := 0, 0, 0
	prev := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		cur := make([]int, len(b)+1)
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > best {
					best = cur[j]
					bestI, bestJ = i-best, j-best
				}
			}
		}
		prev = cur
	}
	return bestI, bestJ, best
}
