package parole

import (
	"errors"
	"fmt"
)

//go:generate go run scripts/currency/codegen.go

// Currency type represents a currency that can be spelled out in Italian.
// The zero value is [XXX], which indicates an unknown currency.
//
// Currency is implemented as an integer index into in-memory arrays that
// store the code, scale and Italian names of each currency.
// Besides [ISO 4217] currencies, the set contains the generic denominations
// [DINAR], [DOLLAR], [PESO] and [RIYAL], which have no numeric code.
//
// When persisting a currency value, use the code returned by the
// [Currency.Code] method, rather than the integer index, as mapping between
// index and a particular currency may change in future versions.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency uint8

var errInvalidCurrency = errors.New("invalid currency")

// inflection holds the singular and plural forms of a noun phrase.
// Invariant nouns repeat the same form.
type inflection struct {
	one, many string
}

// form returns the plural form if plural is true, otherwise the singular form.
func (f inflection) form(plural bool) string {
	if plural {
		return f.many
	}
	return f.one
}

// ParseCurr converts a string to currency.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//	DOLLAR
//
// ParseCurr returns an error if the string does not represent a valid currency code.
func ParseCurr(curr string) (Currency, error) {
	c, ok := currLookup[curr]
	if !ok {
		return XXX, errInvalidCurrency
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(curr string) Currency {
	c, err := ParseCurr(curr)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", curr, err))
	}
	return c
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Currency value.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// Set parses the currency code and stores the result in c.
// Together with [Currency.String] and [Currency.Type] it allows
// a *Currency to be used as a command-line flag value.
func (c *Currency) Set(curr string) error {
	var err error
	*c, err = ParseCurr(curr)
	if err != nil {
		return fmt.Errorf("parsing currency %q: %w", curr, err)
	}
	return nil
}

// Type returns the name of the flag value type.
func (c *Currency) Type() string {
	return "currency"
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the alphabetic code.
// See also method [Currency.Code].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code := c.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the alphabetic code.
// See also method [Currency.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()
	if verb == 'q' || verb == 'Q' {
		curr = `"` + curr + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(curr) {
		pad := make([]byte, w-len(curr))
		for i := range pad {
			pad[i] = ' '
		}
		if state.Flag('-') {
			curr += string(pad)
		} else {
			curr = string(pad) + curr
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(curr))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(parole.Currency="))
		state.Write([]byte(curr))
		state.Write([]byte(")"))
	}
}

// Scale returns the number of digits after the decimal point required for
// representing the minor unit of a currency.
// For example, the scale of the [Japanese Yen] is 0 and the scale of
// the [US Dollar] is 2.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
func (c Currency) Scale() int {
	return int(scaleLookup[c])
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// Generic denominations such as [DOLLAR] have no such code, and the method
// returns an empty string for them.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return numLookup[c]
}

// Code returns the alphabetic code of the currency.
// For ISO 4217 currencies this is the [3-letter code]; for generic
// denominations it is the upper-case denomination name, such as "DOLLAR".
// This method always returns a valid code.
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Currency) Code() string {
	return codeLookup[c]
}

// Name returns the Italian name of the currency, in the plural if plural is true.
// Some names are invariant, such as "euro" and "yen".
// The name of [XXX] is empty.
func (c Currency) Name(plural bool) string {
	return nameLookup[c].form(plural)
}

// MinorName returns the Italian name of the minor unit of the currency,
// in the plural if plural is true.
// Currencies without a specific name for their minor unit use "centesimo".
func (c Currency) MinorName(plural bool) string {
	f := minorLookup[c]
	if f.one == "" {
		f = inflection{"centesimo", "centesimi"}
	}
	return f.form(plural)
}

// spellable returns true if the currency has an Italian name.
func (c Currency) spellable() bool {
	return int(c) < len(nameLookup) && nameLookup[c].one != ""
}
