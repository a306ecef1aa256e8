// Command parole spells out numbers in Italian.
//
// Usage:
//
//	parole cardinal 123456
//	parole ordinal 21
//	parole ordinal-num 21
//	parole year -- -44
//	parole currency 1.50 --currency USD
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool
	echo    bool

	// Logger
	logger = zap.NewNop()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "parole",
	Short: "Spell out numbers in Italian",
	Long: `parole converts numbers into Italian words.

Numbers are read exactly as written, with a dot as the decimal separator.
Cardinal numbers also accept "inf" and "-inf".
Negative numbers must follow "--", as in "parole year -- -44".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&echo, "echo", "e", false, "print the number before its words")

	currencyCmd.Flags().VarP(&currency, "currency", "c", "currency code, such as EUR, USD or 840")

	rootCmd.AddCommand(cardinalCmd, ordinalCmd, ordinalNumCmd, yearCmd, currencyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
