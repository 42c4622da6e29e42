package dex

import (
	"math/big"

	"github.com/pkg/errors"

	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// V3 builds exactInputSingle swaps for concentrated-liquidity routers.
// The native asset rides as msg.value with the wrapped token standing in
// for it inside the pool path.
type V3 struct{}

func (V3) ApprovalTarget(profile *registry.ChainProfile) string {
	return profile.Router
}

func (V3) BuildSwap(p SwapParams) (wallet.TxRequest, error) {
	router, err := parseAddress(p.Profile.Router)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "router")
	}
	tokenIn, err := parseAddress(poolToken(p.Profile, p.TokenIn))
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "tokenIn")
	}
	tokenOut, err := parseAddress(poolToken(p.Profile, p.TokenOut))
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "tokenOut")
	}
	recipient, err := parseAddress(p.Recipient)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "recipient")
	}

	data, err := calldata.ExactInputSingle(calldata.ExactInputSingleParams{
		TokenIn:          tokenIn,
		TokenOut:         tokenOut,
		FeeBps:           p.FeeBps,
		Recipient:        recipient,
		Deadline:         p.Deadline,
		AmountIn:         p.AmountIn,
		AmountOutMinimum: p.AmountOutMin,
	})
	if err != nil {
		return wallet.TxRequest{}, err
	}

	var value *big.Int
	if p.TokenIn.Native() {
		value = p.AmountIn
	}
	return wallet.TxRequest{
		From:  p.Sender,
		To:    router.Hex(),
		Value: value,
		Data:  data,
	}, nil
}

// poolToken maps the native sentinel onto the chain's wrapped token;
// pools never hold the native asset directly.
func poolToken(profile *registry.ChainProfile, t registry.TokenDescriptor) string {
	if t.Native() {
		return profile.WrappedNative
	}
	return t.Address
}
