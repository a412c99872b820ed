package sequence

import (
	"fmt"
	"regexp"
	"strconv"
)

// idPattern matches a formatted identifier: prefix, "-", one or more
// uppercase letters, exactly four digits.
var idPattern = regexp.MustCompile(`^([A-Z0-9_]+)-([A-Z]+)([0-9]{4})$`)

// ErrMalformedID is returned by Parse for strings that do not match the
// identifier pattern.
type ErrMalformedID struct {
	Value string
}

func (e *ErrMalformedID) Error() string {
	return fmt.Sprintf("malformed identifier %q", e.Value)
}

// Format renders an identifier. The number is always exactly four digits;
// values above MaxNumber cannot occur because Next rolls the letters over.
func Format(prefix, letters string, number int) string {
	return fmt.Sprintf("%s-%s%04d", prefix, letters, number)
}

// Parse is the exact inverse of Format.
func Parse(id string) (prefix, letters string, number int, err error) {
	m := idPattern.FindStringSubmatch(id)
	if m == nil {
		return "", "", 0, &ErrMalformedID{Value: id}
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return "", "", 0, &ErrMalformedID{Value: id}
	}
	return m[1], m[2], n, nil
}

// IncrementLetters advances a base-26 letter counter (A=0 .. Z=25), rightmost
// position fastest, carrying leftward. A carry past the leftmost position
// grows the counter by one: "ZZZ" -> "AAAA". Runs in O(len).
func IncrementLetters(letters string) string {
	chars := []byte(letters)
	for i := len(chars) - 1; i >= 0; i-- {
		if chars[i] != 'Z' {
			chars[i]++
			return string(chars)
		}
		chars[i] = 'A'
	}
	// Full carry chain: every position was Z.
	return "A" + string(chars)
}

// Next computes the successor state: increment the number, or on overflow
// roll the letter counter and reset the number to 1.
func Next(s State) State {
	if s.Number < MaxNumber {
		return State{Prefix: s.Prefix, Letters: s.Letters, Number: s.Number + 1}
	}
	return State{Prefix: s.Prefix, Letters: IncrementLetters(s.Letters), Number: 1}
}
