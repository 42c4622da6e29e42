package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dexswap/config"
	"dexswap/pkg/dex"
	"dexswap/pkg/registry"
)

var (
	filterChain  string
	filterSymbol string
	importAddr   string
)

var tokensCmd = &cobra.Command{
	Use:     "tokens",
	Aliases: []string{"list-tokens", "ls"},
	Short:   "List the supported tokens",
	Long: `List the tokens built into the chain registry.

You can filter tokens by chain or symbol, or read the metadata of an
unlisted ERC-20 contract with --import.

Examples:
  dexswap tokens
  dexswap tokens --chain avalanche
  dexswap tokens --symbol USDC
  dexswap tokens --chain ethereum --import 0x514910771AF9Ca656af840dff83E8264EcF986CA`,
	Run: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVar(&filterChain, "chain", "", "Filter by chain")
	tokensCmd.Flags().StringVar(&filterSymbol, "symbol", "", "Filter by token symbol")
	tokensCmd.Flags().StringVar(&importAddr, "import", "", "Read name/symbol/decimals from a token contract")
}

func runTokens(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if importAddr != "" {
		runImportToken(jsonOutput)
		return
	}

	type row struct {
		Chain    string `json:"chain"`
		Symbol   string `json:"symbol"`
		Name     string `json:"name"`
		Address  string `json:"address"`
		Decimals uint8  `json:"decimals"`
	}

	var rows []row
	for _, id := range registry.Chains() {
		if filterChain != "" && !strings.EqualFold(id, filterChain) {
			continue
		}
		p, _ := registry.ResolveChain(id)
		for _, t := range p.Tokens {
			if filterSymbol != "" && !strings.Contains(strings.ToUpper(t.Symbol), strings.ToUpper(filterSymbol)) {
				continue
			}
			rows = append(rows, row{Chain: id, Symbol: t.Symbol, Name: t.Name, Address: t.Address, Decimals: t.Decimals})
		}
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(rows, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	if len(rows) == 0 {
		fmt.Println("\nNo tokens found matching the criteria.")
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	color.Green("                            SUPPORTED TOKENS")
	fmt.Println(strings.Repeat("=", 90))

	lastChain := ""
	total := 0
	for _, r := range rows {
		if r.Chain != lastChain {
			color.Cyan("\n%s", strings.ToUpper(r.Chain))
			fmt.Println(strings.Repeat("-", 90))
			lastChain = r.Chain
		}
		address := r.Address
		if len(address) > 44 {
			address = address[:41] + "..."
		}
		fmt.Printf("  %-10s  %2d decimals  %s\n",
			color.YellowString(r.Symbol),
			r.Decimals,
			color.HiBlackString(address))
		total++
	}

	fmt.Println("\n" + strings.Repeat("=", 90))
	fmt.Printf("\nTotal: %d tokens\n\n", total)
}

func runImportToken(jsonOutput bool) {
	if filterChain == "" {
		printError(fmt.Errorf("--import requires --chain"))
		os.Exit(1)
	}

	cfg := config.Get()
	profile, err := registry.ResolveChain(filterChain)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	ctx := context.Background()
	transport, closeTransport, err := buildTransport(ctx, cfg, profile)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	defer closeTransport()

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Reading token metadata..."
		s.Start()
	}
	tok, err := dex.ImportToken(ctx, transport, profile, importAddr)
	if !jsonOutput {
		s.Stop()
	}
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(tok, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	printSuccess(color.GreenString("✓ Token found on %s", profile.ID))
	fmt.Printf("  Symbol:    %s\n", color.YellowString(tok.Symbol))
	fmt.Printf("  Name:      %s\n", tok.Name)
	fmt.Printf("  Address:   %s\n", tok.Address)
	fmt.Printf("  Decimals:  %d\n\n", tok.Decimals)
}
