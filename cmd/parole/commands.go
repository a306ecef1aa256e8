package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/govalues/parole"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// currency is bound to the --currency flag of the currency command.
var currency = parole.EUR

var cardinalCmd = &cobra.Command{
	Use:   "cardinal [number]",
	Short: "Spell a cardinal number",
	Args:  cobra.ExactArgs(1),
	RunE:  runCardinal,
}

var ordinalCmd = &cobra.Command{
	Use:   "ordinal [number]",
	Short: "Spell an ordinal number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args[0], "ordinal", parole.Ordinal)
	},
}

var ordinalNumCmd = &cobra.Command{
	Use:   "ordinal-num [number]",
	Short: "Write an ordinal number in digits",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args[0], "ordinal-num", parole.OrdinalNum)
	},
}

var yearCmd = &cobra.Command{
	Use:   "year [number]",
	Short: "Spell a year, negative years are before the common era",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConversion(cmd, args[0], "year", parole.Year)
	},
}

var currencyCmd = &cobra.Command{
	Use:   "currency [amount]",
	Short: "Spell an amount of money",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spell := func(d decimal.Decimal) (string, error) {
			logger.Debug("spelling amount", zap.Stringer("currency", currency))
			return parole.CurrencyWords(d, currency)
		}
		return runConversion(cmd, args[0], "currency", spell)
	},
}

// runCardinal spells a cardinal number, falling back to a float
// for infinities.
func runCardinal(cmd *cobra.Command, args []string) error {
	if f, err := strconv.ParseFloat(args[0], 64); err == nil && math.IsInf(f, 0) {
		logger.Debug("spelling infinity", zap.Float64("number", f))
		words, err := parole.CardinalFloat64(f)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), words)
		return err
	}
	return runConversion(cmd, args[0], "cardinal", parole.Cardinal)
}

// runConversion parses arg as a decimal, spells it and prints the result.
func runConversion(cmd *cobra.Command, arg, kind string, spell func(decimal.Decimal) (string, error)) error {
	d, err := decimal.Parse(arg)
	if err != nil {
		logger.Error("invalid number", zap.String("input", arg), zap.Error(err))
		return fmt.Errorf("parsing %q: %w", arg, err)
	}

	logger.Debug("spelling number", zap.String("kind", kind), zap.Stringer("number", d))

	words, err := spell(d)
	if err != nil {
		logger.Error("conversion failed", zap.String("kind", kind), zap.Stringer("number", d), zap.Error(err))
		return err
	}

	out := cmd.OutOrStdout()
	if echo {
		_, err = fmt.Fprintf(out, "%v: %v\n", echoNumber(d), words)
	} else {
		_, err = fmt.Fprintln(out, words)
	}
	return err
}

// echoNumber formats d with Italian digit grouping and decimal comma.
func echoNumber(d decimal.Decimal) string {
	whole, frac, ok := d.Int64(d.Scale())
	if !ok {
		return d.String()
	}
	sign := ""
	if d.IsNeg() {
		sign = "-"
		whole, frac = -whole, -frac
	}
	p := message.NewPrinter(language.Italian)
	s := sign + p.Sprintf("%d", whole)
	if d.Scale() > 0 {
		s += "," + fmt.Sprintf("%0*d", d.Scale(), frac)
	}
	return s
}
