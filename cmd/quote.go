package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"dexswap/config"
	"dexswap/pkg/codec"
	"dexswap/pkg/fees"
	"dexswap/pkg/parser"
	"dexswap/pkg/quote"
	"dexswap/pkg/registry"
)

var quoteChain string

var quoteCmd = &cobra.Command{
	Use:   "quote <amount> <token-in> to <token-out>",
	Short: "Preview a swap without executing it",
	Long: `Fetch a quote and show the full breakdown: protocol fee, amount
forwarded to the router, expected output and the slippage-bounded
minimum. Nothing is submitted.

Examples:
  dexswap quote 1 ETH to USDC --chain ethereum
  dexswap quote 250 USDT to BUSD --chain bsc`,
	Args: cobra.MinimumNArgs(1),
	Run:  runQuote,
}

func init() {
	rootCmd.AddCommand(quoteCmd)

	quoteCmd.Flags().StringVar(&quoteChain, "chain", "", "Chain to quote on (defaults to config)")
}

func runQuote(cmd *cobra.Command, args []string) {
	intent, err := parser.ParseSwapCommand(strings.Join(args, " "))
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := config.Get()

	chain := cfg.DefaultChain
	if quoteChain != "" {
		chain = quoteChain
	}
	intent.Chain = chain

	tokenIn, err := registry.ResolveToken(chain, intent.TokenIn)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	if _, err := registry.ResolveToken(chain, intent.TokenOut); err != nil {
		printError(err)
		os.Exit(1)
	}
	gross, err := codec.ToSmallestUnit(intent.AmountIn, tokenIn.Decimals)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	fee, swapAmount := fees.Split(gross)

	log := newLogger(verbose)
	defer func() { _ = log.Sync() }()

	quotes := quote.New(cfg.QuoteBaseURL, log)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}
	q, err := quotes.FetchQuote(context.Background(), intent.TokenIn, intent.TokenOut, swapAmount, chain)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	outMin := fees.AmountOutMin(q.AmountOut, cfg.SlippageBps)

	if jsonOutput {
		output := map[string]interface{}{
			"chain":          chain,
			"amount_in":      intent.AmountIn,
			"token_in":       intent.TokenIn,
			"token_out":      intent.TokenOut,
			"fee":            codec.FromSmallestUnit(fee, tokenIn.Decimals),
			"swap_amount":    codec.FromSmallestUnit(swapAmount, tokenIn.Decimals),
			"amount_out":     codec.FromSmallestUnit(q.AmountOut, q.DecimalsOut),
			"amount_out_min": codec.FromSmallestUnit(outMin, q.DecimalsOut),
			"slippage_bps":   cfg.SlippageBps,
			"route":          q.Route,
			"source":         q.Source,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	displaySwapQuote(intent, tokenIn, q, fee, outMin)
	fmt.Printf("  (quote only, nothing was submitted)\n\n")
}
