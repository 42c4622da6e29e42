package calldata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// Approve encodes approve(spender, amount).
func Approve(spender common.Address, amount *big.Int) (string, error) {
	w, err := wordUint(amount)
	if err != nil {
		return "", errors.Wrap(err, "approve amount")
	}
	return encode(selApprove, wordAddress(spender), w), nil
}

// Transfer encodes transfer(to, amount).
func Transfer(to common.Address, amount *big.Int) (string, error) {
	w, err := wordUint(amount)
	if err != nil {
		return "", errors.Wrap(err, "transfer amount")
	}
	return encode(selTransfer, wordAddress(to), w), nil
}

// BalanceOf encodes balanceOf(owner).
func BalanceOf(owner common.Address) string {
	return encode(selBalanceOf, wordAddress(owner))
}

// Allowance encodes allowance(owner, spender).
func Allowance(owner, spender common.Address) string {
	return encode(selAllowance, wordAddress(owner), wordAddress(spender))
}

// TokenName encodes the name() read call.
func TokenName() string { return encode(selName) }

// TokenSymbol encodes the symbol() read call.
func TokenSymbol() string { return encode(selSymbol) }

// TokenDecimals encodes the decimals() read call.
func TokenDecimals() string { return encode(selDecimals) }
