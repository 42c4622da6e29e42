// Package fees computes the protocol fee split and the slippage-bounded
// minimum output. The ordering here is load-bearing: the fee is taken
// from the gross amount first and the swap amount is the remainder, so
// fee + swapAmount == gross exactly, with no rounding residue.
package fees

import (
	"math/big"
	"time"
)

// Protocol fee rate: exactly 3/1000 (0.3%).
var (
	feeNum = big.NewInt(3)
	feeDen = big.NewInt(1000)
)

// Split divides a gross input amount (smallest units) into the protocol
// fee and the amount forwarded to the swap:
// fee = floor(gross*3/1000), swapAmount = gross - fee.
func Split(gross *big.Int) (fee, swapAmount *big.Int) {
	fee = new(big.Int).Mul(gross, feeNum)
	fee.Quo(fee, feeDen)
	swapAmount = new(big.Int).Sub(gross, fee)
	return fee, swapAmount
}

// AmountOutMin bounds the acceptable output below the quote:
// floor(quoteOut * (1000 - floor(slippageBps/10)) / 1000).
//
// Slippage is truncated to whole per-mille before subtracting. This is
// coarser than a direct percentage computation, but the deployed
// contracts were driven with exactly this rounding, so it is kept
// bit-for-bit rather than corrected.
func AmountOutMin(quoteOut *big.Int, slippageBps uint32) *big.Int {
	perMille := 1000 - int64(slippageBps/10)
	if perMille < 0 {
		perMille = 0
	}
	out := new(big.Int).Mul(quoteOut, big.NewInt(perMille))
	return out.Quo(out, feeDen)
}

// Deadline returns now + offset as Unix seconds for router deadline
// parameters. Call sites pass 20 to 30 minutes.
func Deadline(offset time.Duration) *big.Int {
	return big.NewInt(time.Now().Add(offset).Unix())
}
