package parole_test

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
	"github.com/govalues/parole"
)

// In this example, a cheque is filled in with the amount in words,
// as required by Italian banks.
func Example_cheque() {
	amount := parole.MustParseAmount("EUR", "1234.56")

	words, err := amount.Words()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Importo:        %v\n", amount)
	fmt.Printf("Importo (euro): %v\n", words)
	// Output:
	// Importo:        EUR 1234.56
	// Importo (euro): milleduecentotrentaquattro euro e cinquantasei centesimi
}

// In this example, the chapters of a book are given ordinal titles.
func Example_chapters() {
	for _, n := range []int64{1, 2, 10, 11, 21} {
		d, err := decimal.New(n, 0)
		if err != nil {
			panic(err)
		}
		title, err := parole.Ordinal(d)
		if err != nil {
			panic(err)
		}
		num, err := parole.OrdinalNum(d)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%-4v capitolo %v\n", num, title)
	}
	// Output:
	// 1°   capitolo primo
	// 2°   capitolo secondo
	// 10°  capitolo decimo
	// 11°  capitolo undicesimo
	// 21°  capitolo ventunesimo
}

func ExampleCardinal() {
	for _, s := range []string{"0", "101", "123456", "1000000", "2000000", "-3.14"} {
		words, err := parole.Cardinal(decimal.MustParse(s))
		if err != nil {
			panic(err)
		}
		fmt.Println(words)
	}
	// Output:
	// zero
	// centouno
	// centoventitremilaquattrocentocinquantasei
	// un milione
	// due milioni
	// meno tre virgola uno quattro
}

func ExampleCardinalFloat64() {
	fmt.Println(parole.CardinalFloat64(2.5))
	fmt.Println(parole.CardinalFloat64(math.Inf(1)))
	fmt.Println(parole.CardinalFloat64(math.Inf(-1)))
	// Output:
	// due virgola cinque <nil>
	// infinito <nil>
	// meno infinito <nil>
}

func ExampleYear() {
	fmt.Println(parole.Year(decimal.MustParse("1861")))
	fmt.Println(parole.Year(decimal.MustParse("-753")))
	// Output:
	// milleottocentosessantuno <nil>
	// settecentocinquantatré a.C. <nil>
}

func ExampleOrdinal() {
	fmt.Println(parole.Ordinal(decimal.MustParse("3")))
	fmt.Println(parole.Ordinal(decimal.MustParse("8")))
	fmt.Println(parole.Ordinal(decimal.MustParse("1000")))
	// Output:
	// terzo <nil>
	// ottavo <nil>
	// millesimo <nil>
}

func ExampleOrdinalNum() {
	fmt.Println(parole.OrdinalNum(decimal.MustParse("42")))
	// Output:
	// 42° <nil>
}

func ExampleCurrencyWords() {
	d := decimal.MustParse("2")
	fmt.Println(parole.CurrencyWords(d, parole.USD))
	fmt.Println(parole.CurrencyWords(d, parole.GBP))
	fmt.Println(parole.CurrencyWords(d, parole.JPY))
	// Output:
	// due dollari statunitensi <nil>
	// due sterline <nil>
	// due yen <nil>
}

func ExampleAmount_Words() {
	a := parole.MustParseAmount("USD", "1.01")
	fmt.Println(a.Words())
	// Output:
	// uno dollaro statunitense e uno centesimo <nil>
}

func ExampleParseCurr() {
	c, err := parole.ParseCurr("978")
	if err != nil {
		panic(err)
	}
	fmt.Println(c, c.Name(false), c.MinorName(true))
	// Output:
	// EUR euro centesimi
}

func ExampleCurrency_Name() {
	fmt.Println(parole.CHF.Name(false))
	fmt.Println(parole.CHF.Name(true))
	// Output:
	// franco
	// franchi
}
