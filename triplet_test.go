package parole

import (
	"strings"
	"testing"
)

func TestTripletWords(t *testing.T) {
	tests := []struct {
		v    uint
		want string
	}{
		{0, ""},
		{1, "uno"},
		{3, "tre"},
		{10, "dieci"},
		{11, "undici"},
		{17, "diciassette"},
		{19, "diciannove"},
		{20, "venti"},
		{21, "ventuno"},
		{23, "ventitré"},
		{28, "ventotto"},
		{33, "trentatré"},
		{38, "trentotto"},
		{80, "ottanta"},
		{81, "ottantuno"},
		{88, "ottantotto"},
		{99, "novantanove"},
		{100, "cento"},
		{101, "centouno"},
		{108, "centootto"},
		{111, "centoundici"},
		{123, "centoventitré"},
		{180, "centottanta"},
		{188, "centottantotto"},
		{200, "duecento"},
		{280, "duecentottanta"},
		{283, "duecentottantatré"},
		{999, "novecentonovantanove"},
	}
	for _, tt := range tests {
		got := tripletWords(tt.v)
		if got != tt.want {
			t.Errorf("tripletWords(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTripletWords_Compound(t *testing.T) {
	for v := uint(1); v < 1000; v++ {
		got := tripletWords(v)
		if got == "" {
			t.Errorf("tripletWords(%v) is empty", v)
		}
		if strings.ContainsAny(got, " \t") {
			t.Errorf("tripletWords(%v) = %q, contains a space", v, got)
		}
	}
}

func TestElideCento(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"cento", "cent"},
		{"ottocento", "ottocent"},
		{"cent", "cent"},
	}
	for _, tt := range tests {
		got := elideCento(tt.s)
		if got != tt.want {
			t.Errorf("elideCento(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestElideTens(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"venti", "vent"},
		{"trenta", "trent"},
		{"novanta", "novant"},
		{"", ""},
	}
	for _, tt := range tests {
		got := elideTens(tt.s)
		if got != tt.want {
			t.Errorf("elideTens(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestUnaccentTre(t *testing.T) {
	tests := []struct {
		s, want string
	}{
		{"ventitré", "ventitre"},
		{"centoventitré", "centoventitre"},
		{"tre", "tre"},
		{"ventuno", "ventuno"},
		{"", ""},
	}
	for _, tt := range tests {
		got := unaccentTre(tt.s)
		if got != tt.want {
			t.Errorf("unaccentTre(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}
