package parole

import (
	"github.com/govalues/decimal"
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]uint64{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// magnitude is a decimal split into sign, integral part and fractional digits.
// The value equals (-1)^neg * (whole + frac / 10^scale).
type magnitude struct {
	neg   bool
	whole uint64 // integral part
	frac  uint64 // fractional digits, possibly with trailing zeros
	scale int    // number of fractional digits held by frac
}

// newMagnitude splits a decimal into its integral and fractional parts.
// Decimal coefficients have at most [decimal.MaxPrec] digits, so both parts
// always fit into uint64.
func newMagnitude(d decimal.Decimal) magnitude {
	coef := d.Coef()
	scale := d.Scale()
	return magnitude{
		neg:   d.IsNeg(),
		whole: coef / pow10[scale],
		frac:  coef % pow10[scale],
		scale: scale,
	}
}

// isZero returns true if both the integral and fractional parts are zero.
func (m magnitude) isZero() bool {
	return m.whole == 0 && m.frac == 0
}

// isInt returns true if there are no significant digits after the decimal point.
func (m magnitude) isInt() bool {
	return m.frac == 0
}

// abs returns the magnitude with the sign cleared.
func (m magnitude) abs() magnitude {
	m.neg = false
	return m
}

// triplets splits the integral part into base-1000 groups, the least
// significant group first.
// Zero yields an empty slice.
func (m magnitude) triplets() []uint {
	var groups []uint
	for n := m.whole; n != 0; n /= 1000 {
		groups = append(groups, uint(n%1000))
	}
	return groups
}

// fracDigits returns the fractional digits, most significant first,
// without trailing zeros.
func (m magnitude) fracDigits() []uint {
	var digits []uint
	rem := m.frac
	for p := m.scale; rem != 0; {
		p--
		q := pow10[p]
		digits = append(digits, uint(rem/q))
		rem %= q
	}
	return digits
}

// hundredths returns the first two fractional digits as an integer in [0, 99].
// The remaining digits are truncated.
func (m magnitude) hundredths() uint64 {
	switch {
	case m.scale >= 2:
		return m.frac / pow10[m.scale-2]
	case m.scale == 1:
		return m.frac * 10
	default:
		return 0
	}
}
