package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dexswap/config"
	"dexswap/pkg/codec"
	"dexswap/pkg/fees"
	"dexswap/pkg/orchestrator"
	"dexswap/pkg/parser"
	"dexswap/pkg/quote"
	"dexswap/pkg/registry"
	"dexswap/pkg/session"
	"dexswap/pkg/types"
)

var (
	swapChain     string
	recipientAddr string
	slippageBps   uint32
	noConfirm     bool
)

var swapCmd = &cobra.Command{
	Use:   "swap <amount> <token-in> to <token-out>",
	Short: "Swap tokens on a chain's native DEX",
	Long: `Swap tokens against the DEX the chain is configured for. The flow runs
approval (when needed), the protocol fee transfer, the swap itself, and
polls the receipt until it is final.

IMPORTANT:
  - You MUST specify --recipient (the address performing and receiving the swap)
  - A 0.3% protocol fee is taken from the input amount before the swap

Examples:
  dexswap swap 1 ETH to USDC --chain ethereum --recipient 0x123...
  dexswap swap 100 USDT to BNB --chain bsc --recipient 0x123... --slippage-bps 100
  dexswap swap 2 AVAX to USDC --chain avalanche --recipient 0x123... --yes`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVar(&swapChain, "chain", "", "Chain to swap on (defaults to config)")
	swapCmd.Flags().StringVar(&recipientAddr, "recipient", "", "Recipient address (REQUIRED)")
	swapCmd.Flags().Uint32Var(&slippageBps, "slippage-bps", 0, "Slippage tolerance in basis points (defaults to config)")
	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
}

func runSwap(cmd *cobra.Command, args []string) {
	commandStr := strings.Join(args, " ")
	intent, err := parser.ParseSwapCommand(commandStr)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := config.Get()

	intent.Chain = cfg.DefaultChain
	if swapChain != "" {
		intent.Chain = swapChain
	}
	intent.SlippageBps = cfg.SlippageBps
	if slippageBps != 0 {
		intent.SlippageBps = slippageBps
	}
	intent.DeadlineOffset = time.Duration(cfg.DeadlineMinutes) * time.Minute
	intent.Recipient = cfg.WalletAddress
	if recipientAddr != "" {
		intent.Recipient = recipientAddr
	}
	if err := parser.ValidateSwapIntent(intent); err != nil {
		printError(err)
		os.Exit(1)
	}

	profile, err := registry.ResolveChain(intent.Chain)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	tokenIn, err := registry.ResolveToken(intent.Chain, intent.TokenIn)
	if err != nil {
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

	ctx := context.Background()

	// Quote the post-fee amount; that is what reaches the router.
	quotes := quote.New(cfg.QuoteBaseURL, log)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching quote..."
		s.Start()
	}
	q, err := quotes.FetchQuote(ctx, intent.TokenIn, intent.TokenOut, swapAmount, intent.Chain)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	outMin := fees.AmountOutMin(q.AmountOut, intent.SlippageBps)
	if jsonOutput {
		output := map[string]interface{}{
			"chain":          intent.Chain,
			"amount_in":      intent.AmountIn,
			"token_in":       intent.TokenIn,
			"token_out":      intent.TokenOut,
			"fee":            codec.FromSmallestUnit(fee, tokenIn.Decimals),
			"amount_out":     codec.FromSmallestUnit(q.AmountOut, q.DecimalsOut),
			"amount_out_min": codec.FromSmallestUnit(outMin, q.DecimalsOut),
			"route":          q.Route,
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displaySwapQuote(intent, tokenIn, q, fee, outMin)
	}

	if !noConfirm && !jsonOutput {
		if !confirmSwap() {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
	}

	transport, closeTransport, err := buildTransport(ctx, cfg, profile)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer closeTransport()

	sess := session.New(log)

	// Keep the chain's price table warm while the wallet flow runs. The
	// session guard pauses the loop whenever a signing prompt is open.
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()
	go sess.RunPriceRefresh(refreshCtx, cfg.RefreshInterval, func(ctx context.Context) error {
		_, err := quotes.PriceTable(ctx, intent.Chain)
		return err
	})

	policy := orchestrator.DesktopPolicy()
	if cfg.PollPolicy == "mobile" {
		policy = orchestrator.MobilePolicy()
	}
	orch := orchestrator.New(transport, sess, log, policy)

	if !jsonOutput {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Suffix = " Starting swap..."
		s.Start()
		orch.OnStateChange(func(st orchestrator.State) {
			s.Suffix = fmt.Sprintf(" %s...", stepLabel(st))
		})
	}

	res, err := orch.ExecuteSwap(ctx, *intent, *q)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		if res != nil && res.Hash != "" {
			color.Yellow("\nTransaction: %s", res.ExplorerURL)
		}
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		output := map[string]interface{}{
			"status":       res.State.String(),
			"tx_hash":      res.Hash,
			"explorer_url": res.ExplorerURL,
			"fee":          codec.FromSmallestUnit(res.Fee, tokenIn.Decimals),
			"swap_amount":  codec.FromSmallestUnit(res.SwapAmount, tokenIn.Decimals),
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	printSuccess(color.GreenString("✓ Swap confirmed!"))
	fmt.Printf("  Transaction: %s\n", color.CyanString(res.ExplorerURL))
	fmt.Printf("  Swapped:     %s %s\n", codec.FormatAmount(res.SwapAmount, tokenIn.Decimals), intent.TokenIn)
	fmt.Printf("  Fee paid:    %s %s\n\n", codec.FormatAmount(res.Fee, tokenIn.Decimals), intent.TokenIn)
}

func stepLabel(st orchestrator.State) string {
	switch st {
	case orchestrator.Approving:
		return "Checking approval"
	case orchestrator.FeeTransferring:
		return "Transferring fee"
	case orchestrator.Submitting:
		return "Submitting swap"
	case orchestrator.Polling:
		return "Waiting for confirmation"
	default:
		return st.String()
	}
}

func displaySwapQuote(intent *types.SwapIntent, tokenIn registry.TokenDescriptor, q *types.Quote, fee, outMin *big.Int) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP QUOTE")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Chain:             %s\n", intent.Chain)
	fmt.Printf("  From:              %s %s\n", intent.AmountIn, color.YellowString(intent.TokenIn))
	fmt.Printf("  Protocol fee:      %s %s (0.3%%)\n", codec.FormatAmount(fee, tokenIn.Decimals), intent.TokenIn)
	fmt.Printf("  To:                ~%s %s\n", codec.FormatAmount(q.AmountOut, q.DecimalsOut), color.YellowString(intent.TokenOut))
	fmt.Printf("  Minimum received:  %s %s\n", codec.FormatAmount(outMin, q.DecimalsOut), intent.TokenOut)
	if q.Route != "" {
		fmt.Printf("  Route:             %s\n", q.Route)
	}

	fmt.Println("\n" + strings.Repeat("=", 60) + "\n")
}

func confirmSwap() bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print("\nProceed with swap? (y/N): ")

	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
