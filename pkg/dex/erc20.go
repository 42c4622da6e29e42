package dex

import (
	"context"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// BuildApprove encodes an ERC-20 approval granting spender the given
// allowance on token.
func BuildApprove(profile *registry.ChainProfile, token registry.TokenDescriptor, sender, spender string, amount *big.Int) (wallet.TxRequest, error) {
	sp, err := parseAddress(spender)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "spender")
	}
	data, err := calldata.Approve(sp, amount)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{From: sender, To: token.Address, Data: data}, nil
}

// BuildFeeTransfer moves the platform fee to the chain's collector. On
// EVM and TVM chains the native asset transfers as plain value and
// tokens go through transfer(); NEP-17 chains have no value field, so
// every fee moves as a transfer invocation on the token contract.
func BuildFeeTransfer(profile *registry.ChainProfile, token registry.TokenDescriptor, sender string, fee *big.Int) (wallet.TxRequest, error) {
	if profile.Family == registry.NEP17Style {
		inv := wallet.Invocation{
			ScriptHash: poolToken(profile, token),
			Operation:  "transfer",
			Args:       []any{sender, profile.FeeCollector, fee.String(), nil},
			Signers:    []string{sender},
		}
		return wallet.TxRequest{From: sender, To: inv.ScriptHash, Invocation: &inv}, nil
	}
	if token.Native() {
		return wallet.TxRequest{
			From:  sender,
			To:    profile.FeeCollector,
			Value: fee,
		}, nil
	}
	collector, err := parseAddress(profile.FeeCollector)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "fee collector")
	}
	data, err := calldata.Transfer(collector, fee)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{From: sender, To: token.Address, Data: data}, nil
}

// Allowance reads the current ERC-20 allowance owner has granted
// spender on token.
func Allowance(ctx context.Context, t wallet.Transport, token registry.TokenDescriptor, owner, spender string) (*big.Int, error) {
	o, err := parseAddress(owner)
	if err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	sp, err := parseAddress(spender)
	if err != nil {
		return nil, errors.Wrap(err, "spender")
	}
	raw, err := t.Call(ctx, token.Address, calldata.Allowance(o, sp))
	if err != nil {
		return nil, errors.Wrap(err, "allowance call")
	}
	buf, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil || len(buf) < 32 {
		return nil, errors.Wrap(apperrors.ErrInvalidInput, "malformed allowance result")
	}
	return new(big.Int).SetBytes(buf[:32]), nil
}
