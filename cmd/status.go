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
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

var (
	statusChain   string
	watchStatus   bool
	watchInterval int
)

var statusCmd = &cobra.Command{
	Use:   "status <tx-hash>",
	Short: "Check the receipt status of a transaction",
	Long: `Check whether a submitted transaction is pending, confirmed or
reverted on its chain.

Examples:
  dexswap status 0x1234...abcd --chain ethereum
  dexswap status 0x1234...abcd --chain polygon --watch
  dexswap status 0x1234...abcd --chain bsc --watch --interval 10`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringVar(&statusChain, "chain", "", "Chain the transaction was submitted on (defaults to config)")
	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch status updates continuously")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
}

func runStatus(cmd *cobra.Command, args []string) {
	hash := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg := config.Get()

	chain := cfg.DefaultChain
	if statusChain != "" {
		chain = statusChain
	}
	profile, err := registry.ResolveChain(chain)
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

	if watchStatus {
		watchTxStatus(ctx, transport, profile, hash, jsonOutput)
	} else {
		checkTxStatus(ctx, transport, profile, hash, jsonOutput)
	}
}

func checkTxStatus(ctx context.Context, transport wallet.Transport, profile *registry.ChainProfile, hash string, jsonOutput bool) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Checking transaction status..."
		s.Start()
	}

	status, err := transport.TransactionStatus(ctx, hash)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		output := map[string]interface{}{
			"chain":        profile.ID,
			"tx_hash":      hash,
			"status":       statusName(status),
			"explorer_url": profile.ExplorerTxURL(hash),
		}
		jsonData, _ := json.MarshalIndent(output, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayTxStatus(profile, hash, status)
	}
}

func watchTxStatus(ctx context.Context, transport wallet.Transport, profile *registry.ChainProfile, hash string, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		os.Exit(1)
	}

	fmt.Printf("\nWatching transaction %s on %s\n", color.CyanString(hash), profile.ID)
	fmt.Printf("Checking every %d seconds. Press Ctrl+C to stop.\n", watchInterval)

	ticker := time.NewTicker(time.Duration(watchInterval) * time.Second)
	defer ticker.Stop()

	for {
		status, err := transport.TransactionStatus(ctx, hash)
		if err != nil {
			color.Red("Error: %v", err)
		} else {
			displayTxStatus(profile, hash, status)
			if status != wallet.StatusPending {
				return
			}
		}
		<-ticker.C
	}
}

func displayTxStatus(profile *registry.ChainProfile, hash string, status wallet.TxStatus) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                     TRANSACTION STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Chain:     %s\n", profile.ID)
	fmt.Printf("  Tx Hash:   %s\n", color.CyanString(hash))
	fmt.Printf("  Status:    %s\n", coloredStatus(status))
	fmt.Printf("  Explorer:  %s\n", color.HiBlackString(profile.ExplorerTxURL(hash)))

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func statusName(status wallet.TxStatus) string {
	switch status {
	case wallet.StatusConfirmed:
		return "confirmed"
	case wallet.StatusReverted:
		return "reverted"
	default:
		return "pending"
	}
}

func coloredStatus(status wallet.TxStatus) string {
	switch status {
	case wallet.StatusConfirmed:
		return color.GreenString("CONFIRMED")
	case wallet.StatusReverted:
		return color.RedString("REVERTED")
	default:
		return color.YellowString("PENDING")
	}
}
