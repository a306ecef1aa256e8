package parole

import "strings"

// units is indexed by the units digit.
// Index 0 is empty, since a zero units digit is not spelled inside a number.
var units = [10]string{
	"",
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

// teens is indexed by the units digit of numbers 10–19.
var teens = [10]string{
	"dieci",
	"undici",
	"dodici",
	"tredici",
	"quattordici",
	"quindici",
	"sedici",
	"diciassette",
	"diciotto",
	"diciannove",
}

// tens is indexed by the tens digit (2–9); indices 0 and 1 are unused.
var tens = [10]string{
	"",
	"",
	"venti",
	"trenta",
	"quaranta",
	"cinquanta",
	"sessanta",
	"settanta",
	"ottanta",
	"novanta",
}

const (
	wordHundred = "cento"
	accentedTre = "tré"
)

// tripletWords spells a number in [0, 999] as a single compound word.
// Zero yields an empty string.
func tripletWords(v uint) string {
	h := v / 100
	t := v / 10 % 10
	u := v % 10

	var b strings.Builder
	if h > 0 {
		hundreds := wordHundred
		if h > 1 {
			hundreds = units[h] + hundreds
		}
		// "ottanta" starts with a vowel
		if t == 8 {
			hundreds = elideCento(hundreds)
		}
		b.WriteString(hundreds)
	}

	if t == 0 && u == 0 {
		return b.String()
	}

	switch t {
	case 0:
		b.WriteString(units[u])
	case 1:
		b.WriteString(teens[u])
	default:
		word := tens[t]
		// "uno" and "otto" start with a vowel
		if u == 1 || u == 8 {
			word = elideTens(word)
		}
		b.WriteString(word)
		if u == 3 {
			b.WriteString(accentedTre)
		} else {
			b.WriteString(units[u])
		}
	}
	return b.String()
}

// elideCento drops the final vowel of a hundreds word ending in "cento".
func elideCento(s string) string {
	return strings.TrimSuffix(s, "o")
}

// elideTens drops the final vowel of a tens word.
func elideTens(s string) string {
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

// unaccentTre replaces a final "tré" with "tre".
func unaccentTre(s string) string {
	if base, ok := strings.CutSuffix(s, accentedTre); ok {
		return base + "tre"
	}
	return s
}
