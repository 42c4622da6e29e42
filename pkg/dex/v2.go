package dex

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// V2 builds constant-product router swaps. It serves both plain EVM
// chains and TRON, whose TVM routers share the same ABI behind base58
// addresses. The three router entry points diverge only on which side of
// the pair is the native asset.
type V2 struct{}

func (V2) ApprovalTarget(profile *registry.ChainProfile) string {
	return profile.Router
}

func (V2) BuildSwap(p SwapParams) (wallet.TxRequest, error) {
	router, err := parseAddress(p.Profile.Router)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "router")
	}
	recipient, err := parseAddress(p.Recipient)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "recipient")
	}
	path, err := v2Path(p.Profile, p.TokenIn, p.TokenOut)
	if err != nil {
		return wallet.TxRequest{}, err
	}

	var (
		data  string
		value *big.Int
	)
	switch {
	case p.TokenIn.Native():
		data, err = calldata.SwapExactETHForTokens(p.AmountOutMin, path, recipient, p.Deadline)
		value = p.AmountIn
	case p.TokenOut.Native():
		data, err = calldata.SwapExactTokensForETH(p.AmountIn, p.AmountOutMin, path, recipient, p.Deadline)
	default:
		data, err = calldata.SwapExactTokensForTokens(p.AmountIn, p.AmountOutMin, path, recipient, p.Deadline)
	}
	if err != nil {
		return wallet.TxRequest{}, err
	}

	to := p.Profile.Router
	if p.Profile.EVM() {
		to = router.Hex()
	}
	return wallet.TxRequest{
		From:  p.Sender,
		To:    to,
		Value: value,
		Data:  data,
	}, nil
}

// v2Path is the direct two-hop path through the wrapped native token, or
// a single pair when one side already is the wrapped token.
func v2Path(profile *registry.ChainProfile, in, out registry.TokenDescriptor) ([]common.Address, error) {
	first, err := parseAddress(poolToken(profile, in))
	if err != nil {
		return nil, errors.Wrap(err, "tokenIn")
	}
	last, err := parseAddress(poolToken(profile, out))
	if err != nil {
		return nil, errors.Wrap(err, "tokenOut")
	}
	wrapped, err := parseAddress(profile.WrappedNative)
	if err != nil {
		return nil, errors.Wrap(err, "wrapped native")
	}
	if first == wrapped || last == wrapped {
		return []common.Address{first, last}, nil
	}
	return []common.Address{first, wrapped, last}, nil
}
