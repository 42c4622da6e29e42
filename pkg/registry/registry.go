// Package registry holds the static per-chain configuration: router and
// wrapped-native addresses, fee tiers with their tick spacing, RPC
// endpoints and the built-in token tables. Read-only after load, safe to
// share across concurrent callers.
package registry

import (
	"strings"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
)

// Family selects the DEX adapter used on a chain.
type Family int

const (
	UniswapV3Style Family = iota
	UniswapV2Style
	ConcentratedBinStyle
	NEP17Style
)

func (f Family) String() string {
	switch f {
	case UniswapV3Style:
		return "uniswap-v3"
	case UniswapV2Style:
		return "uniswap-v2"
	case ConcentratedBinStyle:
		return "concentrated-bin"
	case NEP17Style:
		return "nep17"
	default:
		return "unknown"
	}
}

// NativeSentinel marks the chain's native asset in token descriptors.
const NativeSentinel = "native"

// TokenDescriptor describes one token on one chain. Immutable.
type TokenDescriptor struct {
	Symbol   string
	Name     string
	Address  string // NativeSentinel for the native asset
	Decimals uint8
	Icon     string
}

// Native reports whether the descriptor is the chain's native asset.
func (t TokenDescriptor) Native() bool {
	return t.Address == NativeSentinel
}

// FeeTier couples a pool fee with the tick spacing (or bin step for
// bin-style AMMs) that rounding must use.
type FeeTier struct {
	Bps         uint32
	TickSpacing uint32
}

// ChainProfile is the static configuration of one supported chain.
type ChainProfile struct {
	ID            string
	ChainID       uint64 // 0 for non-EVM chains
	Family        Family
	Router        string
	PositionMgr   string // empty where the family has no position manager
	WrappedNative string
	FeeCollector  string
	Explorer      string
	FeeTiers      []FeeTier
	RPCEndpoints  []string
	Tokens        []TokenDescriptor
}

// EVM reports whether the chain speaks the EVM JSON-RPC wallet transport.
func (p *ChainProfile) EVM() bool {
	return p.ChainID != 0
}

// ExplorerTxURL returns the block-explorer link for a transaction hash.
func (p *ChainProfile) ExplorerTxURL(hash string) string {
	return p.Explorer + "/tx/" + hash
}

// ResolveChain returns the profile for a chain id.
func ResolveChain(id string) (*ChainProfile, error) {
	p, ok := chains[strings.ToLower(id)]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrUnsupportedChain, "%q", id)
	}
	return p, nil
}

// ResolveToken returns the descriptor for a token symbol on a chain.
func ResolveToken(chain, symbol string) (TokenDescriptor, error) {
	p, err := ResolveChain(chain)
	if err != nil {
		return TokenDescriptor{}, err
	}
	for _, t := range p.Tokens {
		if strings.EqualFold(t.Symbol, symbol) {
			return t, nil
		}
	}
	return TokenDescriptor{}, errors.Wrapf(apperrors.ErrUnsupportedToken, "%q on %s", symbol, p.ID)
}

// TickSpacingFor returns the tick spacing for a fee tier on a chain.
func TickSpacingFor(chain string, feeBps uint32) (uint32, error) {
	p, err := ResolveChain(chain)
	if err != nil {
		return 0, err
	}
	for _, ft := range p.FeeTiers {
		if ft.Bps == feeBps {
			return ft.TickSpacing, nil
		}
	}
	return 0, errors.Wrapf(apperrors.ErrUnsupportedChain, "fee tier %d on %s", feeBps, p.ID)
}

// KnownSymbol reports whether any supported chain lists the symbol.
func KnownSymbol(symbol string) bool {
	for _, p := range chains {
		for _, t := range p.Tokens {
			if strings.EqualFold(t.Symbol, symbol) {
				return true
			}
		}
	}
	return false
}

// Chains returns the ids of all supported chains, in table order.
func Chains() []string {
	return chainOrder
}
