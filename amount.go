package parole

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/decimal"
)

var errAmountOverflow = errors.New("amount overflow")

// Amount type represents a monetary amount.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is designed to be safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency        // currency
	value decimal.Decimal // monetary value
}

// newAmountSafe creates a new amount and checks the scale.
func newAmountSafe(c Currency, d decimal.Decimal) (Amount, error) {
	if d.Scale() < c.Scale() {
		d = d.Pad(c.Scale())
		if d.Scale() < c.Scale() {
			return Amount{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
		}
	}
	return Amount{curr: c, value: d}, nil
}

// NewAmount returns an amount equal to coef / 10^scale.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
//
// NewAmount returns an error if:
//   - the currency code is not valid;
//   - the scale is negative or greater than [decimal.MaxScale];
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmount(curr string, coef int64, scale int) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.New(coef, scale)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	// Amount
	a, err := newAmountSafe(c, d)
	if err != nil {
		return Amount{}, fmt.Errorf("converting coefficient: %w", err)
	}
	return a, nil
}

// MustNewAmount is like [NewAmount] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNewAmount(curr string, coef int64, scale int) Amount {
	a, err := NewAmount(curr, coef, scale)
	if err != nil {
		panic(fmt.Sprintf("NewAmount(%q, %v, %v) failed: %v", curr, coef, scale, err))
	}
	return a
}

// NewAmountFromDecimal returns an amount with the specified currency and value.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right. See also method [Amount.Decimal].
//
// NewAmountFromDecimal returns an error if the integer part of the result has more than
// ([decimal.MaxPrec] - [Currency.Scale]) digits.
func NewAmountFromDecimal(curr Currency, amount decimal.Decimal) (Amount, error) {
	return newAmountSafe(curr, amount)
}

// ParseAmount converts currency and decimal strings to a (possibly rounded) amount.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
// See also constructors [ParseCurr] and [decimal.Parse].
func ParseAmount(curr, amount string) (Amount, error) {
	// Currency
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	// Decimal
	d, err := decimal.ParseExact(amount, c.Scale())
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	// Amount
	return newAmountSafe(c, d)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "EUR 1.50".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// Words returns the amount spelled out in Italian.
// See [CurrencyWords] for details.
func (a Amount) Words() (string, error) {
	return CurrencyWords(a.Decimal(), a.Curr())
}

// CurrencyWords spells out d as an amount of currency c:
//
//	EUR 1    → uno euro
//	USD 2    → due dollari statunitensi
//	EUR 1.50 → uno euro e cinquanta centesimi
//
// The currency name agrees in number with the integral part and the name
// of the minor unit agrees with the number of hundredths.
// Hundredths are counted after truncating the amount to two decimal places.
// The minor units are omitted when they are zero.
//
// CurrencyWords returns an error if c is [XXX] or not a known currency.
func CurrencyWords(d decimal.Decimal, c Currency) (string, error) {
	if !c.spellable() {
		return "", fmt.Errorf("spelling %v: %w", d, errInvalidCurrency)
	}

	m := newMagnitude(d)
	cents := m.hundredths()
	whole := magnitude{whole: m.whole}

	var b strings.Builder
	if m.neg && (m.whole != 0 || cents != 0) {
		b.WriteString(wordMinus)
		b.WriteByte(' ')
	}

	s, err := cardinal(whole)
	if err != nil {
		return "", fmt.Errorf("spelling %v %v: %w", c, d, err)
	}
	b.WriteString(s)
	b.WriteByte(' ')
	b.WriteString(c.Name(m.whole != 1))

	if cents != 0 {
		s, err = cardinal(magnitude{whole: cents})
		if err != nil {
			return "", fmt.Errorf("spelling %v %v: %w", c, d, err)
		}
		b.WriteString(" e ")
		b.WriteString(s)
		b.WriteByte(' ')
		b.WriteString(c.MinorName(cents != 1))
	}

	return b.String(), nil
}
