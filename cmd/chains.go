package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"dexswap/pkg/registry"
)

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List the supported chains and their DEX families",
	Run:   runChains,
}

func init() {
	rootCmd.AddCommand(chainsCmd)
}

func runChains(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if jsonOutput {
		type chainInfo struct {
			ID      string `json:"id"`
			ChainID uint64 `json:"chain_id,omitempty"`
			Family  string `json:"family"`
			Router  string `json:"router"`
			Tokens  int    `json:"tokens"`
		}
		out := make([]chainInfo, 0, len(registry.Chains()))
		for _, id := range registry.Chains() {
			p, _ := registry.ResolveChain(id)
			out = append(out, chainInfo{
				ID:      p.ID,
				ChainID: p.ChainID,
				Family:  p.Family.String(),
				Router:  p.Router,
				Tokens:  len(p.Tokens),
			})
		}
		jsonData, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(jsonData))
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	color.Green("                          SUPPORTED CHAINS")
	fmt.Println(strings.Repeat("=", 80))

	for _, id := range registry.Chains() {
		p, _ := registry.ResolveChain(id)
		chainID := "-"
		if p.ChainID != 0 {
			chainID = fmt.Sprintf("%d", p.ChainID)
		}
		fmt.Printf("  %-12s  %-8s  %-18s  %d tokens\n",
			color.YellowString(p.ID),
			chainID,
			p.Family.String(),
			len(p.Tokens))
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("\nTotal: %d chains\n\n", len(registry.Chains()))
}
