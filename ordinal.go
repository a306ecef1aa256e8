package parole

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/govalues/decimal"
)

const (
	ordinalSuffix = "esimo"
	ordinalSign   = "°"
	vowels        = "aeiouàèéìòù"
)

// irregularOrdinals is indexed by numbers 1–10; index 0 is unused.
var irregularOrdinals = [11]string{
	"",
	"primo",
	"secondo",
	"terzo",
	"quarto",
	"quinto",
	"sesto",
	"settimo",
	"ottavo",
	"nono",
	"decimo",
}

// Ordinal returns the Italian ordinal words for d in the masculine singular.
// Numbers from 1 to 10 have their own words; larger numbers are formed
// by replacing the final vowel of the cardinal with "esimo":
//
//	3  → terzo
//	21 → ventunesimo
//
// Ordinal returns an error if d is negative or has a fractional part.
func Ordinal(d decimal.Decimal) (string, error) {
	n, err := ordinalValue(d)
	if err != nil {
		return "", err
	}
	if n < uint64(len(irregularOrdinals)) && n > 0 {
		return irregularOrdinals[n], nil
	}
	s, err := cardinal(newMagnitude(d))
	if err != nil {
		return "", fmt.Errorf("spelling ordinal %v: %w", d, err)
	}
	return dropFinalVowel(s) + ordinalSuffix, nil
}

// OrdinalNum returns d in digits followed by the ordinal indicator:
//
//	42 → 42°
//
// OrdinalNum returns an error if d is negative or has a fractional part.
func OrdinalNum(d decimal.Decimal) (string, error) {
	n, err := ordinalValue(d)
	if err != nil {
		return "", err
	}
	return strconv.FormatUint(n, 10) + ordinalSign, nil
}

// ordinalValue converts d to an unsigned integer.
func ordinalValue(d decimal.Decimal) (uint64, error) {
	m := newMagnitude(d)
	switch {
	case m.neg && !m.isZero():
		return 0, fmt.Errorf("spelling ordinal %v: negative number: %w", d, ErrCannotConvert)
	case !m.isInt():
		return 0, fmt.Errorf("spelling ordinal %v: fractional number: %w", d, ErrCannotConvert)
	}
	return m.whole, nil
}

// dropFinalVowel removes the last character of s if it is a vowel,
// plain or accented.
func dropFinalVowel(s string) string {
	r, size := utf8.DecodeLastRuneInString(s)
	if size > 0 && strings.ContainsRune(vowels, r) {
		return s[:len(s)-size]
	}
	return s
}
