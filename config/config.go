package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	QuoteBaseURL    string
	WalletAddress   string
	DefaultChain    string
	SlippageBps     uint32
	DeadlineMinutes int
	PollPolicy      string // "desktop" or "mobile"
	RefreshInterval time.Duration
	RPCOverrides    map[string]string // chain id -> endpoint
	Verbose         bool
}

var globalConfig *Config

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetConfigName(".dexswap")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath(".")

	// Set default values
	viper.SetDefault("quote_base_url", "https://quote.dexswap.io")
	viper.SetDefault("default_chain", "ethereum")
	viper.SetDefault("slippage_bps", 50)
	viper.SetDefault("deadline_minutes", 20)
	viper.SetDefault("poll_policy", "desktop")
	viper.SetDefault("refresh_interval", "30s")

	// Read from environment variables
	viper.SetEnvPrefix("DEXSWAP")
	viper.AutomaticEnv()

	// Read config file (optional)
	_ = viper.ReadInConfig()

	cfg := &Config{
		QuoteBaseURL:    viper.GetString("quote_base_url"),
		WalletAddress:   viper.GetString("wallet_address"),
		DefaultChain:    viper.GetString("default_chain"),
		SlippageBps:     viper.GetUint32("slippage_bps"),
		DeadlineMinutes: viper.GetInt("deadline_minutes"),
		PollPolicy:      viper.GetString("poll_policy"),
		RefreshInterval: viper.GetDuration("refresh_interval"),
		RPCOverrides:    viper.GetStringMapString("rpc_overrides"),
	}

	if cfg.SlippageBps > 10000 {
		return nil, fmt.Errorf("slippage_bps %d exceeds 10000", cfg.SlippageBps)
	}
	if cfg.PollPolicy != "desktop" && cfg.PollPolicy != "mobile" {
		return nil, fmt.Errorf("poll_policy must be desktop or mobile, got %q", cfg.PollPolicy)
	}

	globalConfig = cfg
	return cfg, nil
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}
		return cfg
	}
	return globalConfig
}

// Set updates the global configuration
func Set(cfg *Config) {
	globalConfig = cfg
}

// RPCEndpoint returns the override for a chain, or empty when the
// built-in registry endpoints should be used.
func (c *Config) RPCEndpoint(chain string) string {
	return c.RPCOverrides[chain]
}
