// Package sequence provides human-readable business identifier generation.
//
// Identifiers have the form PREFIX-LLLNNNN (e.g. CUS-AAA0001): a short
// entity-type prefix, a base-26 letter counter with minimum width 3, and a
// four-digit number counter. Each prefix owns one durable counter; advances
// go through a compare-and-swap so concurrent callers can never receive the
// same identifier twice. Gaps are acceptable, duplicates are not.
package sequence

import (
	"regexp"
	"strings"
	"time"

	"stokado/internal/core/apperror"
)

const (
	// DefaultLetters is the letter counter value for a fresh prefix.
	DefaultLetters = "AAA"

	// MinLettersWidth is the minimum width of the letter counter.
	// The counter may grow past it on rollover but never shrinks below it.
	MinLettersWidth = 3

	// MaxNumber is the upper bound of the numeric counter. Reaching it
	// rolls the letter counter over and resets the number to 1.
	MaxNumber = 9999

	// MaxPrefixLength bounds prefix size to keep identifiers readable.
	MaxPrefixLength = 20
)

var prefixPattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// State is the durable counter for one prefix. The pair (Letters, Number)
// identifies the most recently issued identifier; UpdatedAt is recorded for
// operators and plays no part in correctness.
type State struct {
	Prefix    string    `db:"prefix" json:"prefix"`
	Letters   string    `db:"letters" json:"letters"`
	Number    int       `db:"number" json:"number"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// initialState is the synthetic pre-first state for a never-seen prefix:
// Number 0 so that the first computed successor is {AAA, 1}.
func initialState(prefix string) State {
	return State{Prefix: prefix, Letters: DefaultLetters, Number: 0}
}

// WellFormed reports whether a stored state can be advanced safely.
// Number 0 is allowed: it is the synthetic state before the first issue.
func (s State) WellFormed() bool {
	if len(s.Letters) < MinLettersWidth {
		return false
	}
	for _, c := range s.Letters {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return s.Number >= 0 && s.Number <= MaxNumber
}

// Compare orders two states: shorter letter counters precede longer ones,
// equal widths compare lexicographically, ties break on the number counter.
// Returns -1, 0 or 1.
func Compare(a, b State) int {
	if len(a.Letters) != len(b.Letters) {
		if len(a.Letters) < len(b.Letters) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(a.Letters, b.Letters); c != 0 {
		return c
	}
	switch {
	case a.Number < b.Number:
		return -1
	case a.Number > b.Number:
		return 1
	}
	return 0
}

// NormalizePrefix validates and canonicalizes a caller-supplied prefix:
// trimmed, uppercased, 1..MaxPrefixLength chars from [A-Z0-9_].
// The separator "-" is excluded so formatted identifiers stay parseable.
func NormalizePrefix(prefix string) (string, error) {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	if p == "" {
		return "", apperror.NewInvalidPrefix(prefix, "prefix cannot be empty")
	}
	if len(p) > MaxPrefixLength {
		return "", apperror.NewInvalidPrefix(prefix, "prefix too long")
	}
	if !prefixPattern.MatchString(p) {
		return "", apperror.NewInvalidPrefix(prefix, "prefix may contain only letters, digits and underscores")
	}
	return p, nil
}
