package dex

import (
	"math/big"

	"github.com/pkg/errors"

	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// Liquidity-Book pair version understood by the router. V2.1 pairs are
// version 2 on the wire.
const lbPairVersion = 2

// Bin builds swaps for Liquidity-Book style routers, where pools are
// discretized into fixed-rate bins instead of ticks. The route carries
// one bin step per hop.
type Bin struct{}

func (Bin) ApprovalTarget(profile *registry.ChainProfile) string {
	return profile.Router
}

func (Bin) BuildSwap(p SwapParams) (wallet.TxRequest, error) {
	router, err := parseAddress(p.Profile.Router)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "router")
	}
	recipient, err := parseAddress(p.Recipient)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "recipient")
	}
	tokenPath, err := v2Path(p.Profile, p.TokenIn, p.TokenOut)
	if err != nil {
		return wallet.TxRequest{}, err
	}

	binStep, err := registry.TickSpacingFor(p.Profile.ID, p.FeeBps)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	hops := len(tokenPath) - 1
	path := calldata.LBPath{TokenPath: tokenPath}
	for i := 0; i < hops; i++ {
		path.PairBinSteps = append(path.PairBinSteps, binStep)
		path.Versions = append(path.Versions, lbPairVersion)
	}

	data, err := calldata.LBSwapExactTokensForTokens(p.AmountIn, p.AmountOutMin, path, recipient, p.Deadline)
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
