package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "CUS-AAA0001", Format("CUS", "AAA", 1))
	assert.Equal(t, "VEN-AAB0042", Format("VEN", "AAB", 42))
	assert.Equal(t, "PUR-ZZZ9999", Format("PUR", "ZZZ", 9999))
	assert.Equal(t, "X-AAAA0001", Format("X", "AAAA", 1))
}

func TestParse(t *testing.T) {
	prefix, letters, number, err := Parse("CUS-AAA0001")
	assert.NoError(t, err)
	assert.Equal(t, "CUS", prefix)
	assert.Equal(t, "AAA", letters)
	assert.Equal(t, 1, number)

	// Format and Parse are inverses.
	cases := []struct {
		prefix  string
		letters string
		number  int
	}{
		{"CUS", "AAA", 1},
		{"SAL", "QXZ", 9999},
		{"ITEM_2", "AAAA", 500},
		{"_HEALTH_CHECK_", "AAA", 7},
	}
	for _, c := range cases {
		p, l, n, err := Parse(Format(c.prefix, c.letters, c.number))
		assert.NoError(t, err)
		assert.Equal(t, c.prefix, p)
		assert.Equal(t, c.letters, l)
		assert.Equal(t, c.number, n)
	}
}

func TestParse_Malformed(t *testing.T) {
	bad := []string{
		"",
		"CUS",
		"CUS-",
		"CUS-0001",     // no letters
		"CUS-AAA001",   // three digits
		"CUS-AAA00001", // five digits
		"cus-AAA0001",  // lowercase prefix
		"CUS-aaa0001",  // lowercase letters
		"CUS-AAA-0001", // extra separator
		"CUS AAA0001",  // no separator
		"CUS-AAA0001 ", // trailing space
		"-AAA0001",     // empty prefix
	}
	for _, s := range bad {
		_, _, _, err := Parse(s)
		assert.Error(t, err, "expected %q to be rejected", s)
		var malformed *ErrMalformedID
		assert.ErrorAs(t, err, &malformed)
	}
}

func TestIncrementLetters(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"AAA", "AAB"},
		{"AAZ", "ABA"},
		{"AZZ", "BAA"},
		{"ABC", "ABD"},
		{"YZZ", "ZAA"},
		{"ZZZ", "AAAA"},
		{"AAAA", "AAAB"},
		{"ZZZZ", "AAAAA"},
		{"Z", "AA"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IncrementLetters(c.in), "increment %q", c.in)
	}
}

func TestNext(t *testing.T) {
	s := State{Prefix: "CUS", Letters: "AAA", Number: 1}
	assert.Equal(t, State{Prefix: "CUS", Letters: "AAA", Number: 2}, Next(s))

	// Number rollover advances the letter counter.
	s = State{Prefix: "CUS", Letters: "AAA", Number: MaxNumber}
	assert.Equal(t, State{Prefix: "CUS", Letters: "AAB", Number: 1}, Next(s))

	// Letter rollover grows the counter width.
	s = State{Prefix: "CUS", Letters: "ZZZ", Number: MaxNumber}
	assert.Equal(t, State{Prefix: "CUS", Letters: "AAAA", Number: 1}, Next(s))
}

func TestNormalizePrefix(t *testing.T) {
	p, err := NormalizePrefix("cus")
	assert.NoError(t, err)
	assert.Equal(t, "CUS", p)

	p, err = NormalizePrefix("  Wh1 ")
	assert.NoError(t, err)
	assert.Equal(t, "WH1", p)

	p, err = NormalizePrefix("_HEALTH_CHECK_")
	assert.NoError(t, err)
	assert.Equal(t, "_HEALTH_CHECK_", p)

	for _, bad := range []string{"", "  ", "CU-S", "CÜS", "C S", "ABCDEFGHIJKLMNOPQRSTU"} {
		_, err := NormalizePrefix(bad)
		assert.Error(t, err, "expected %q to be rejected", bad)
	}
}

func TestCompare(t *testing.T) {
	a := State{Letters: "AAA", Number: 5}
	b := State{Letters: "AAA", Number: 6}
	assert.Equal(t, -1, Compare(a, b))
	assert.Equal(t, 1, Compare(b, a))
	assert.Equal(t, 0, Compare(a, a))

	// Shorter letter counters always precede longer ones: ZZZ9999 < AAAA0001.
	last3 := State{Letters: "ZZZ", Number: 9999}
	first4 := State{Letters: "AAAA", Number: 1}
	assert.Equal(t, -1, Compare(last3, first4))
}
