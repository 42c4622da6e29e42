package cmd

import (
	"context"
	"fmt"

	"dexswap/config"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// buildTransport connects a wallet transport for a chain. The CLI
// drives EVM chains over plain JSON-RPC; TRON and NEO need an injected
// signer and are reachable only through the library API.
func buildTransport(ctx context.Context, cfg *config.Config, profile *registry.ChainProfile) (wallet.Transport, func(), error) {
	if !profile.EVM() {
		return nil, nil, fmt.Errorf("chain %s requires a connected wallet and cannot be driven from the CLI", profile.ID)
	}

	endpoint := cfg.RPCEndpoint(profile.ID)
	if endpoint == "" {
		if len(profile.RPCEndpoints) == 0 {
			return nil, nil, fmt.Errorf("no RPC endpoint configured for chain %s", profile.ID)
		}
		endpoint = profile.RPCEndpoints[0]
	}

	provider, err := wallet.DialRPC(ctx, endpoint)
	if err != nil {
		return nil, nil, err
	}
	return wallet.NewEVM(provider, chainParams(profile)), provider.Close, nil
}

func chainParams(profile *registry.ChainProfile) wallet.ChainParams {
	params := wallet.ChainParams{
		ChainID:  profile.ChainID,
		Name:     profile.ID,
		RPCURLs:  profile.RPCEndpoints,
		Explorer: profile.Explorer,
	}
	for _, t := range profile.Tokens {
		if t.Native() {
			params.NativeSymbol = t.Symbol
			params.NativeDecimals = t.Decimals
			break
		}
	}
	return params
}
