package parole

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// ErrCannotConvert is returned when a number has no spelled-out form,
// either because it exceeds the largest named scale or because it does not
// fit the integer type an operation requires.
var ErrCannotConvert = errors.New("cannot convert")

const (
	wordZero      = "zero"
	wordMinus     = "meno"
	wordComma     = "virgola"
	wordThousand  = "mille"
	wordThousands = "mila"
	wordInfinity  = "infinito"
	wordBC        = "a.C."
)

// digits is indexed by a decimal digit and is used for reading fractions.
var digits = [10]string{
	"zero",
	"uno",
	"due",
	"tre",
	"quattro",
	"cinque",
	"sei",
	"sette",
	"otto",
	"nove",
}

// Cardinal returns the Italian cardinal words for d.
// Zero is spelled "zero" and negative numbers are prefixed with "meno".
// Digits after the decimal point are read one by one after "virgola",
// without trailing zeros:
//
//	123456 → centoventitremilaquattrocentocinquantasei
//	-1.05  → meno uno virgola zero cinque
func Cardinal(d decimal.Decimal) (string, error) {
	s, err := cardinal(newMagnitude(d))
	if err != nil {
		return "", fmt.Errorf("spelling %v: %w", d, err)
	}
	return s, nil
}

// CardinalFloat64 is like [Cardinal] but accepts a binary floating-point number.
// Positive and negative infinities are spelled "infinito" and "meno infinito".
// The float is converted to a decimal using its shortest representation.
//
// CardinalFloat64 returns an error if the float is NaN or cannot be
// represented as a decimal.
func CardinalFloat64(f float64) (string, error) {
	switch {
	case math.IsInf(f, 1):
		return wordInfinity, nil
	case math.IsInf(f, -1):
		return wordMinus + " " + wordInfinity, nil
	case math.IsNaN(f):
		return "", fmt.Errorf("converting float: special value %v: %w", f, ErrCannotConvert)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	d, err := decimal.Parse(s)
	if err != nil {
		return "", fmt.Errorf("converting float: %v: %w", err, ErrCannotConvert)
	}
	return Cardinal(d)
}

// Year returns the Italian words for the year d.
// Years before the common era are spelled as positive numbers followed
// by "a.C.":
//
//	1984 → millenovecentottantaquattro
//	-44  → quarantaquattro a.C.
func Year(d decimal.Decimal) (string, error) {
	m := newMagnitude(d)
	s, err := cardinal(m.abs())
	if err != nil {
		return "", fmt.Errorf("spelling year %v: %w", d, err)
	}
	if m.neg && !m.isZero() {
		s += " " + wordBC
	}
	return s, nil
}

// cardinal spells a magnitude, including its sign and fractional digits.
func cardinal(m magnitude) (string, error) {
	if m.isZero() {
		return wordZero, nil
	}

	words := make([]string, 0, 8)
	if m.neg {
		words = append(words, wordMinus)
	}

	if m.whole != 0 {
		s, err := integerWords(m.triplets())
		if err != nil {
			return "", err
		}
		words = append(words, s)
	}

	if !m.isInt() {
		words = append(words, wordComma)
		for _, d := range m.fracDigits() {
			words = append(words, digits[d])
		}
	}

	return strings.Join(words, " "), nil
}

// integerWords spells a positive integer given as base-1000 groups,
// the least significant group first.
// Millions and above are separate words; thousands and units are
// compounded into one word.
func integerWords(groups []uint) (string, error) {
	words := make([]string, 0, len(groups))
	var low strings.Builder

	for i := len(groups) - 1; i >= 0; i-- {
		v := groups[i]
		if v == 0 {
			continue
		}
		switch {
		case i >= 2:
			s, err := scaleWords(v, i)
			if err != nil {
				return "", err
			}
			words = append(words, s)
		case i == 1:
			low.WriteString(thousandsWords(v))
		default:
			low.WriteString(tripletWords(v))
		}
	}

	if low.Len() > 0 {
		words = append(words, low.String())
	}
	return strings.Join(words, " "), nil
}

// thousandsWords spells the thousands group v.
func thousandsWords(v uint) string {
	if v == 1 {
		return wordThousand
	}
	return unaccentTre(tripletWords(v)) + wordThousands
}
