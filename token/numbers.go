package token

import "time"

// tokenEnd reports whether c terminates a non-quoted value token.
func tokenEnd(c byte) bool {
	switch c {
	case ' ', '\t', '\r', ',', ']', '#', '[':
		return true
	default:
		return false
	}
}

func valueTokenLen(d []byte) int {
	i := 0
	for i < len(d) && !tokenEnd(d[i]) {
		i++
	}
	return i
}

// scanNumber classifies the non-quoted token at the start of d as an
// integer, float, or date-time literal, returning the consumed length
// and the tag.
//
// A '-' is a sign in position 0. A '-' after exactly 4 digits, or after
// exactly 2 more, is a date separator; any dash beyond the sign, or any
// character outside digits and a single '.', hands the whole token to
// date-time validation. A single '.' makes the token a float; a second
// one is an error.
func scanNumber(d []byte) (int, Type, error) {
	end := valueTokenLen(d)
	tok := d[:end]
	if len(tok) == 0 {
		return 0, TOpaque, ErrNumber
	}
	digits, dots := 0, 0
	dateish := false
	i := 0
	if tok[0] == '-' {
		i = 1
	}
	for ; i < len(tok); i++ {
		c := tok[i]
		switch {
		case asciiDigit(c):
			digits++
		case c == '.':
			dots++
		case c == '-':
			// date separator after 4 then 6 digits, or a dash a
			// plain number cannot hold; either way the token is
			// validated as a date-time below
			dateish = true
		case c == 'e' || c == 'E':
			// exponent, validated by number below
		default:
			dateish = true
		}
	}
	if dateish {
		if _, err := ParseDateTime(string(tok)); err != nil {
			return 0, TOpaque, ErrDateTime
		}
		return end, TDateTime, nil
	}
	if dots > 1 {
		return 0, TOpaque, ErrNumber
	}
	n, isFloat, err := number(tok)
	if err != nil {
		return 0, TOpaque, err
	}
	if n != len(tok) {
		return 0, TOpaque, ErrNumber
	}
	if isFloat {
		return end, TFloat, nil
	}
	return end, TInt, nil
}

// number scans a numeric literal shape: optional sign, digits, optional
// fraction, optional exponent. It returns the consumed length and
// whether a fraction or exponent was present.
func number(d []byte) (int, bool, error) {
	i := 0
	if len(d) > 0 && d[0] == '-' {
		i = 1
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return 0, false, ErrNumber
	}
	i += digits
	f := fract(d[i:])
	e := exp(d[i+f:])
	if f+e == 0 {
		return i, false, nil
	}
	return i + f + e, true, nil
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) {
		if !asciiDigit(d[i]) {
			return i
		}
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	switch c {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	default:
		return false
	}
}

func fract(d []byte) int {
	if len(d) == 0 {
		return 0
	}
	if d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		// '.' must be followed by 1 or more digits
		return 0
	}
	return n + 1
}

func exp(d []byte) int {
	if len(d) < 2 {
		return 0
	}
	switch d[0] {
	case 'e', 'E':
	default:
		return 0
	}
	i := 1
	switch d[1] {
	case '+', '-':
		i++
	}
	if i == len(d) {
		return 0
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return n + i
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime parses an ISO-like date-time literal as produced by the
// tokenizer and accepted by the value converter.
func ParseDateTime(s string) (time.Time, error) {
	var err error
	for _, layout := range dateTimeLayouts {
		var t time.Time
		t, err = time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
