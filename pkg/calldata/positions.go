package calldata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// MintParams mirrors the position manager's 11-field mint tuple. The
// caller must pass token0 < token1 (case-insensitive address order) with
// the amount pairs swapped in lock-step; this builder only encodes.
type MintParams struct {
	Token0         common.Address
	Token1         common.Address
	FeeBps         uint32 // uint24 on the wire
	TickLower      int32
	TickUpper      int32
	Amount0Desired *big.Int
	Amount1Desired *big.Int
	Amount0Min     *big.Int
	Amount1Min     *big.Int
	Recipient      common.Address
	Deadline       *big.Int
}

// Mint encodes mint(params). Ticks are two's-complement int24 words.
func Mint(p MintParams) (string, error) {
	a0d, err := wordUint(p.Amount0Desired)
	if err != nil {
		return "", errors.Wrap(err, "amount0Desired")
	}
	a1d, err := wordUint(p.Amount1Desired)
	if err != nil {
		return "", errors.Wrap(err, "amount1Desired")
	}
	a0m, err := wordUint(p.Amount0Min)
	if err != nil {
		return "", errors.Wrap(err, "amount0Min")
	}
	a1m, err := wordUint(p.Amount1Min)
	if err != nil {
		return "", errors.Wrap(err, "amount1Min")
	}
	dl, err := wordUint(p.Deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}

	return encode(selMint,
		wordAddress(p.Token0),
		wordAddress(p.Token1),
		wordUint64(uint64(p.FeeBps)),
		wordTick(p.TickLower),
		wordTick(p.TickUpper),
		a0d,
		a1d,
		a0m,
		a1m,
		wordAddress(p.Recipient),
		dl,
	), nil
}

// IncreaseLiquidity encodes increaseLiquidity((tokenId, amount0Desired,
// amount1Desired, amount0Min, amount1Min, deadline)).
func IncreaseLiquidity(tokenID, amount0Desired, amount1Desired, amount0Min, amount1Min, deadline *big.Int) (string, error) {
	words := make([]string, 0, 6)
	for _, v := range []*big.Int{tokenID, amount0Desired, amount1Desired, amount0Min, amount1Min, deadline} {
		w, err := wordUint(v)
		if err != nil {
			return "", errors.Wrap(err, "increaseLiquidity")
		}
		words = append(words, w)
	}
	return encode(selIncreaseLiquidity, words...), nil
}

// DecreaseLiquidity encodes decreaseLiquidity((tokenId, liquidity,
// amount0Min, amount1Min, deadline)).
func DecreaseLiquidity(tokenID, liquidity, amount0Min, amount1Min, deadline *big.Int) (string, error) {
	words := make([]string, 0, 5)
	for _, v := range []*big.Int{tokenID, liquidity, amount0Min, amount1Min, deadline} {
		w, err := wordUint(v)
		if err != nil {
			return "", errors.Wrap(err, "decreaseLiquidity")
		}
		words = append(words, w)
	}
	return encode(selDecreaseLiquidity, words...), nil
}

// Collect encodes collect((tokenId, recipient, amount0Max, amount1Max)).
func Collect(tokenID *big.Int, recipient common.Address, amount0Max, amount1Max *big.Int) (string, error) {
	id, err := wordUint(tokenID)
	if err != nil {
		return "", errors.Wrap(err, "tokenId")
	}
	a0, err := wordUint(amount0Max)
	if err != nil {
		return "", errors.Wrap(err, "amount0Max")
	}
	a1, err := wordUint(amount1Max)
	if err != nil {
		return "", errors.Wrap(err, "amount1Max")
	}
	return encode(selCollect, id, wordAddress(recipient), a0, a1), nil
}
