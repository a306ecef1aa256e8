package parole

import (
	"errors"
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"0", "zero"},
		{"0.000", "zero"},
		{"-0", "zero"},
		{"1", "uno"},
		{"16", "sedici"},
		{"21", "ventuno"},
		{"101", "centouno"},
		{"180", "centottanta"},
		{"1000", "mille"},
		{"1001", "milleuno"},
		{"1100", "millecento"},
		{"1984", "millenovecentottantaquattro"},
		{"2000", "duemila"},
		{"2023", "duemilaventitré"},
		{"21000", "ventunomila"},
		{"23000", "ventitremila"},
		{"28000", "ventottomila"},
		{"123456", "centoventitremilaquattrocentocinquantasei"},
		{"180000", "centottantamila"},
		{"999999", "novecentonovantanovemilanovecentonovantanove"},
		{"1000000", "un milione"},
		{"1000001", "un milione uno"},
		{"1000100", "un milione cento"},
		{"2000000", "due milioni"},
		{"2000001", "due milioni uno"},
		{"23000000", "ventitré milioni"},
		{"1000000000", "un miliardo"},
		{"21000000000", "ventuno miliardi"},
		{"1000000000000", "un bilione"},
		{"1000000000000000", "un biliardo"},
		{"1000000000000000000", "un trilione"},
		{"9999999999999999999", "nove trilioni novecentonovantanove biliardi novecentonovantanove bilioni novecentonovantanove miliardi novecentonovantanove milioni novecentonovantanovemilanovecentonovantanove"},
		{"-7", "meno sette"},
		{"1.05", "uno virgola zero cinque"},
		{"1.50", "uno virgola cinque"},
		{"3.14", "tre virgola uno quattro"},
		{"-1.5", "meno uno virgola cinque"},
		{"0.5", "virgola cinque"},
		{"-0.5", "meno virgola cinque"},
	}
	for _, tt := range tests {
		d := decimal.MustParse(tt.d)
		got, err := Cardinal(d)
		if err != nil {
			t.Errorf("Cardinal(%q) failed: %v", tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Cardinal(%q) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestCardinal_Neg(t *testing.T) {
	tests := []string{"1", "23", "180", "1000", "123456", "1000000", "2000001", "9999999999999999999"}
	for _, tt := range tests {
		d := decimal.MustParse(tt)
		pos, err := Cardinal(d)
		if err != nil {
			t.Errorf("Cardinal(%q) failed: %v", tt, err)
			continue
		}
		neg, err := Cardinal(d.Neg())
		if err != nil {
			t.Errorf("Cardinal(%q) failed: %v", d.Neg(), err)
			continue
		}
		if want := "meno " + pos; neg != want {
			t.Errorf("Cardinal(%q) = %q, want %q", d.Neg(), neg, want)
		}
	}
}

func TestCardinal_Deterministic(t *testing.T) {
	d := decimal.MustParse("123456.789")
	first, err := Cardinal(d)
	if err != nil {
		t.Fatalf("Cardinal(%q) failed: %v", d, err)
	}
	for i := 0; i < 10; i++ {
		got, err := Cardinal(d)
		if err != nil {
			t.Fatalf("Cardinal(%q) failed: %v", d, err)
		}
		if got != first {
			t.Errorf("Cardinal(%q) = %q, want %q", d, got, first)
		}
	}
}

func TestCardinalFloat64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			f    float64
			want string
		}{
			{math.Inf(1), "infinito"},
			{math.Inf(-1), "meno infinito"},
			{0, "zero"},
			{math.Copysign(0, -1), "zero"},
			{1, "uno"},
			{1.5, "uno virgola cinque"},
			{-21, "meno ventuno"},
			{123456, "centoventitremilaquattrocentocinquantasei"},
		}
		for _, tt := range tests {
			got, err := CardinalFloat64(tt.f)
			if err != nil {
				t.Errorf("CardinalFloat64(%v) failed: %v", tt.f, err)
				continue
			}
			if got != tt.want {
				t.Errorf("CardinalFloat64(%v) = %q, want %q", tt.f, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []float64{
			math.NaN(),
			1e30,
			-1e30,
		}
		for _, tt := range tests {
			_, err := CardinalFloat64(tt)
			if !errors.Is(err, ErrCannotConvert) {
				t.Errorf("CardinalFloat64(%v) = %v, want %v", tt, err, ErrCannotConvert)
			}
		}
	})
}

func TestYear(t *testing.T) {
	tests := []struct {
		d    string
		want string
	}{
		{"0", "zero"},
		{"1", "uno"},
		{"476", "quattrocentosettantasei"},
		{"1492", "millequattrocentonovantadue"},
		{"1984", "millenovecentottantaquattro"},
		{"2024", "duemilaventiquattro"},
		{"-44", "quarantaquattro a.C."},
		{"-753", "settecentocinquantatré a.C."},
	}
	for _, tt := range tests {
		d := decimal.MustParse(tt.d)
		got, err := Year(d)
		if err != nil {
			t.Errorf("Year(%q) failed: %v", tt.d, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Year(%q) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
