// Package dex selects and drives the per-family swap builders. Each
// supported chain maps to exactly one adapter family; the orchestrator
// asks ForChain for an adapter and never branches on chain identity
// itself.
package dex

import (
	"math/big"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// SwapParams is the resolved, fee-split input to a swap build. AmountIn
// is the post-fee amount in smallest units; AmountOutMin already carries
// the slippage haircut.
type SwapParams struct {
	Profile      *registry.ChainProfile
	TokenIn      registry.TokenDescriptor
	TokenOut     registry.TokenDescriptor
	Sender       string
	Recipient    string
	AmountIn     *big.Int
	AmountOutMin *big.Int
	FeeBps       uint32 // pool fee tier
	Deadline     *big.Int
}

// Adapter builds the family-specific swap transaction.
type Adapter interface {
	// BuildSwap returns a ready-to-submit request for the chain's router.
	BuildSwap(p SwapParams) (wallet.TxRequest, error)

	// ApprovalTarget returns the address that must be approved to spend
	// TokenIn, or "" when the family needs no approval step.
	ApprovalTarget(profile *registry.ChainProfile) string
}

// ForChain returns the adapter for a chain profile.
func ForChain(profile *registry.ChainProfile) (Adapter, error) {
	switch profile.Family {
	case registry.UniswapV3Style:
		return &V3{}, nil
	case registry.UniswapV2Style:
		return &V2{}, nil
	case registry.ConcentratedBinStyle:
		return &Bin{}, nil
	case registry.NEP17Style:
		return &NEP17{}, nil
	default:
		return nil, errors.Wrapf(apperrors.ErrUnsupportedChain, "no adapter for family %s", profile.Family)
	}
}
