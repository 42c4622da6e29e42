package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "dexswap",
	Short: "A CLI for swapping tokens and managing liquidity across nine chains",
	Long: `dexswap quotes and executes token swaps against the native DEX of each
supported chain, taking care of approvals, the protocol fee transfer and
receipt polling.

Examples:
  dexswap swap 1 ETH to USDC --chain ethereum --recipient 0x123...
  dexswap quote 0.5 AVAX to USDC --chain avalanche
  dexswap tokens --chain bsc
  dexswap chains
  dexswap status <tx-hash> --chain polygon --watch`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}

func printSuccess(message string) {
	fmt.Printf("\n%s\n\n", message)
}

// newLogger builds the process logger. Verbose runs get development
// output; otherwise only warnings and errors reach the terminal.
func newLogger(verbose bool) *zap.Logger {
	if verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
			os.Exit(1)
		}
		return log
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	return log
}
