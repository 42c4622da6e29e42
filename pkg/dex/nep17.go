package dex

import (
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// NEP17 builds structured invocations for NEO N3 routers. NEP-17
// transfers carry the swap as contract-call arguments rather than hex
// call data, and the transfer itself grants spending, so no separate
// approval step exists.
type NEP17 struct{}

func (NEP17) ApprovalTarget(profile *registry.ChainProfile) string {
	return ""
}

func (NEP17) BuildSwap(p SwapParams) (wallet.TxRequest, error) {
	inv := wallet.Invocation{
		ScriptHash: p.Profile.Router,
		Operation:  "swapTokenInForTokenOut",
		Args: []any{
			p.Sender,
			poolToken(p.Profile, p.TokenIn),
			poolToken(p.Profile, p.TokenOut),
			p.AmountIn.String(),
			p.AmountOutMin.String(),
			p.Deadline.String(),
		},
		Signers: []string{p.Sender},
	}
	return wallet.TxRequest{
		From:       p.Sender,
		To:         p.Profile.Router,
		Invocation: &inv,
	}, nil
}
