package calldata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
)

// pathTail encodes a dynamic address[] as length word plus elements.
func pathTail(path []common.Address) []string {
	words := make([]string, 0, len(path)+1)
	words = append(words, wordUint64(uint64(len(path))))
	for _, a := range path {
		words = append(words, wordAddress(a))
	}
	return words
}

// SwapExactTokensForTokens encodes
// swapExactTokensForTokens(amountIn, amountOutMin, path, to, deadline).
// Head layout: amountIn, amountOutMin, path offset (0xa0), to, deadline;
// tail: path length followed by the addresses.
func SwapExactTokensForTokens(amountIn, amountOutMin *big.Int, path []common.Address, to common.Address, deadline *big.Int) (string, error) {
	if len(path) < 2 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "swap path needs at least two hops")
	}
	in, err := wordUint(amountIn)
	if err != nil {
		return "", errors.Wrap(err, "amountIn")
	}
	outMin, err := wordUint(amountOutMin)
	if err != nil {
		return "", errors.Wrap(err, "amountOutMin")
	}
	dl, err := wordUint(deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}

	words := []string{in, outMin, offsetWord(5), wordAddress(to), dl}
	words = append(words, pathTail(path)...)
	return encode(selSwapExactTokensForTokens, words...), nil
}

// SwapExactETHForTokens encodes
// swapExactETHForTokens(amountOutMin, path, to, deadline). The input
// amount travels as the transaction value. Head: amountOutMin, path
// offset (0x80), to, deadline.
func SwapExactETHForTokens(amountOutMin *big.Int, path []common.Address, to common.Address, deadline *big.Int) (string, error) {
	if len(path) < 2 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "swap path needs at least two hops")
	}
	outMin, err := wordUint(amountOutMin)
	if err != nil {
		return "", errors.Wrap(err, "amountOutMin")
	}
	dl, err := wordUint(deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}

	words := []string{outMin, offsetWord(4), wordAddress(to), dl}
	words = append(words, pathTail(path)...)
	return encode(selSwapExactETHForTokens, words...), nil
}

// SwapExactTokensForETH encodes
// swapExactTokensForETH(amountIn, amountOutMin, path, to, deadline).
// Same head shape as the token-to-token variant.
func SwapExactTokensForETH(amountIn, amountOutMin *big.Int, path []common.Address, to common.Address, deadline *big.Int) (string, error) {
	if len(path) < 2 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "swap path needs at least two hops")
	}
	in, err := wordUint(amountIn)
	if err != nil {
		return "", errors.Wrap(err, "amountIn")
	}
	outMin, err := wordUint(amountOutMin)
	if err != nil {
		return "", errors.Wrap(err, "amountOutMin")
	}
	dl, err := wordUint(deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}

	words := []string{in, outMin, offsetWord(5), wordAddress(to), dl}
	words = append(words, pathTail(path)...)
	return encode(selSwapExactTokensForETH, words...), nil
}

// LBPath describes a Liquidity-Book route: one bin step and pair version
// per hop, and the token path itself.
type LBPath struct {
	PairBinSteps []uint32
	Versions     []uint8
	TokenPath    []common.Address
}

// LBSwapExactTokensForTokens encodes the bin-router variant
// swapExactTokensForTokens(amountIn, amountOutMin, (pairBinSteps,
// versions, tokenPath), to, deadline). The path tuple is dynamic: its
// head is three offsets to the arrays, each array a length word plus
// elements, all offsets relative to the start of the tuple.
func LBSwapExactTokensForTokens(amountIn, amountOutMin *big.Int, path LBPath, to common.Address, deadline *big.Int) (string, error) {
	hops := len(path.TokenPath)
	if hops < 2 || len(path.PairBinSteps) != hops-1 || len(path.Versions) != hops-1 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "malformed liquidity-book path")
	}
	in, err := wordUint(amountIn)
	if err != nil {
		return "", errors.Wrap(err, "amountIn")
	}
	outMin, err := wordUint(amountOutMin)
	if err != nil {
		return "", errors.Wrap(err, "amountOutMin")
	}
	dl, err := wordUint(deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}

	// Outer head: amountIn, amountOutMin, tuple offset, to, deadline.
	words := []string{in, outMin, offsetWord(5), wordAddress(to), dl}

	// Tuple head: offsets to the three arrays, relative to tuple start.
	steps := hops - 1
	offBinSteps := 3
	offVersions := offBinSteps + 1 + steps
	offTokens := offVersions + 1 + steps
	words = append(words, offsetWord(offBinSteps), offsetWord(offVersions), offsetWord(offTokens))

	words = append(words, wordUint64(uint64(steps)))
	for _, s := range path.PairBinSteps {
		words = append(words, wordUint64(uint64(s)))
	}
	words = append(words, wordUint64(uint64(steps)))
	for _, v := range path.Versions {
		words = append(words, wordUint64(uint64(v)))
	}
	words = append(words, wordUint64(uint64(hops)))
	for _, a := range path.TokenPath {
		words = append(words, wordAddress(a))
	}
	return encode(selLBSwapExactTokensForTokens, words...), nil
}
