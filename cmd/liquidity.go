package cmd

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dexswap/config"
	"dexswap/pkg/codec"
	"dexswap/pkg/dex"
	"dexswap/pkg/orchestrator"
	"dexswap/pkg/registry"
	"dexswap/pkg/session"
)

var (
	lqChain      string
	lqSender     string
	lqFeeBps     uint32
	lqPriceLower float64
	lqPriceUpper float64
	lqTokenID    string
)

var liquidityCmd = &cobra.Command{
	Use:   "liquidity",
	Short: "Manage concentrated-liquidity positions",
	Long: `Open and manage positions on chains with a concentrated-liquidity
position manager. Price bounds snap outward to the fee tier's tick grid.

Examples:
  dexswap liquidity add USDC DAI 1000 1000 --chain ethereum --fee-bps 500 --price-lower 0.99 --price-upper 1.01 --sender 0x123...
  dexswap liquidity increase 12345 100 100 --chain ethereum --sender 0x123...
  dexswap liquidity decrease 12345 500000 --chain ethereum --sender 0x123...
  dexswap liquidity collect 12345 --chain ethereum --sender 0x123...`,
}

var liquidityAddCmd = &cobra.Command{
	Use:   "add <token-a> <token-b> <amount-a> <amount-b>",
	Short: "Open a new position",
	Args:  cobra.ExactArgs(4),
	Run:   runLiquidityAdd,
}

var liquidityIncreaseCmd = &cobra.Command{
	Use:   "increase <position-id> <amount0> <amount1>",
	Short: "Add to an existing position",
	Args:  cobra.ExactArgs(3),
	Run:   runLiquidityIncrease,
}

var liquidityDecreaseCmd = &cobra.Command{
	Use:   "decrease <position-id> <liquidity>",
	Short: "Withdraw liquidity from a position",
	Args:  cobra.ExactArgs(2),
	Run:   runLiquidityDecrease,
}

var liquidityCollectCmd = &cobra.Command{
	Use:   "collect <position-id>",
	Short: "Collect accrued fees from a position",
	Args:  cobra.ExactArgs(1),
	Run:   runLiquidityCollect,
}

func init() {
	rootCmd.AddCommand(liquidityCmd)
	liquidityCmd.AddCommand(liquidityAddCmd, liquidityIncreaseCmd, liquidityDecreaseCmd, liquidityCollectCmd)

	liquidityCmd.PersistentFlags().StringVar(&lqChain, "chain", "", "Chain to operate on (defaults to config)")
	liquidityCmd.PersistentFlags().StringVar(&lqSender, "sender", "", "Address owning the position (REQUIRED)")
	liquidityAddCmd.Flags().Uint32Var(&lqFeeBps, "fee-bps", 3000, "Pool fee tier in basis points")
	liquidityAddCmd.Flags().Float64Var(&lqPriceLower, "price-lower", 0, "Lower price bound (REQUIRED)")
	liquidityAddCmd.Flags().Float64Var(&lqPriceUpper, "price-upper", 0, "Upper price bound (REQUIRED)")
}

// liquiditySetup resolves the shared plumbing for every subcommand.
func liquiditySetup(cmd *cobra.Command) (*config.Config, *registry.ChainProfile, *orchestrator.Orchestrator, func()) {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg := config.Get()

	chain := cfg.DefaultChain
	if lqChain != "" {
		chain = lqChain
	}
	if lqSender == "" {
		lqSender = cfg.WalletAddress
	}
	if lqSender == "" {
		printError(fmt.Errorf("--sender is required"))
		os.Exit(1)
	}
	profile, err := registry.ResolveChain(chain)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	log := newLogger(verbose)
	transport, closeTransport, err := buildTransport(context.Background(), cfg, profile)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	policy := orchestrator.DesktopPolicy()
	if cfg.PollPolicy == "mobile" {
		policy = orchestrator.MobilePolicy()
	}
	orch := orchestrator.New(transport, session.New(log), log, policy)

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Start()
	orch.OnStateChange(func(st orchestrator.State) {
		s.Suffix = fmt.Sprintf(" %s...", stepLabel(st))
	})

	return cfg, profile, orch, func() { s.Stop(); closeTransport() }
}

func runLiquidityAdd(cmd *cobra.Command, args []string) {
	cfg, profile, orch, done := liquiditySetup(cmd)

	tokenA, err := registry.ResolveToken(profile.ID, args[0])
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}
	tokenB, err := registry.ResolveToken(profile.ID, args[1])
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}
	amountA, err := codec.ToSmallestUnit(args[2], tokenA.Decimals)
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}
	amountB, err := codec.ToSmallestUnit(args[3], tokenB.Decimals)
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}

	res, err := orch.ExecuteMint(context.Background(), dex.MintRequest{
		Profile:        profile,
		TokenA:         tokenA,
		TokenB:         tokenB,
		FeeBps:         lqFeeBps,
		PriceLower:     lqPriceLower,
		PriceUpper:     lqPriceUpper,
		AmountADesired: amountA,
		AmountBDesired: amountB,
		AmountAMin:     big.NewInt(0),
		AmountBMin:     big.NewInt(0),
		Sender:         lqSender,
		Recipient:      lqSender,
		Deadline:       big.NewInt(time.Now().Add(time.Duration(cfg.DeadlineMinutes) * time.Minute).Unix()),
	})
	done()
	finishLiquidity(res, err, "Position opened")
}

func runLiquidityIncrease(cmd *cobra.Command, args []string) {
	cfg, profile, orch, done := liquiditySetup(cmd)

	tokenID, amounts, err := parsePositionArgs(args[0], args[1:])
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}

	res, err := orch.IncreaseLiquidity(context.Background(), profile.ID, lqSender,
		tokenID, amounts[0], amounts[1], big.NewInt(0), big.NewInt(0),
		time.Duration(cfg.DeadlineMinutes)*time.Minute)
	done()
	finishLiquidity(res, err, "Liquidity added")
}

func runLiquidityDecrease(cmd *cobra.Command, args []string) {
	cfg, profile, orch, done := liquiditySetup(cmd)

	tokenID, amounts, err := parsePositionArgs(args[0], args[1:])
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}

	res, err := orch.DecreaseLiquidity(context.Background(), profile.ID, lqSender,
		tokenID, amounts[0], big.NewInt(0), big.NewInt(0),
		time.Duration(cfg.DeadlineMinutes)*time.Minute)
	done()
	finishLiquidity(res, err, "Liquidity removed")
}

func runLiquidityCollect(cmd *cobra.Command, args []string) {
	_, profile, orch, done := liquiditySetup(cmd)

	tokenID, _, err := parsePositionArgs(args[0], nil)
	if err != nil {
		done()
		printError(err)
		os.Exit(1)
	}

	res, err := orch.CollectFees(context.Background(), profile.ID, lqSender, lqSender, tokenID)
	done()
	finishLiquidity(res, err, "Fees collected")
}

// parsePositionArgs reads a position id plus raw smallest-unit amounts.
func parsePositionArgs(id string, raw []string) (*big.Int, []*big.Int, error) {
	tokenID, ok := new(big.Int).SetString(id, 10)
	if !ok {
		return nil, nil, fmt.Errorf("invalid position id %q", id)
	}
	amounts := make([]*big.Int, len(raw))
	for i, r := range raw {
		v, ok := new(big.Int).SetString(r, 10)
		if !ok {
			return nil, nil, fmt.Errorf("invalid amount %q", r)
		}
		amounts[i] = v
	}
	return tokenID, amounts, nil
}

func finishLiquidity(res *orchestrator.Result, err error, success string) {
	if err != nil {
		if res != nil && res.Hash != "" {
			color.Yellow("\nTransaction: %s", res.ExplorerURL)
		}
		printError(err)
		os.Exit(1)
	}
	printSuccess(color.GreenString("✓ %s!", success))
	fmt.Printf("  Transaction: %s\n\n", color.CyanString(res.ExplorerURL))
}
