package types

import (
	"math/big"
	"time"
)

// TxKind identifies the contract operation behind a submitted transaction.
type TxKind int

const (
	TxApprove TxKind = iota
	TxFeeTransfer
	TxSwap
	TxMint
	TxIncreaseLiquidity
	TxDecreaseLiquidity
	TxCollect
)

// String returns a human-readable name for the transaction kind.
func (k TxKind) String() string {
	switch k {
	case TxApprove:
		return "approve"
	case TxFeeTransfer:
		return "fee-transfer"
	case TxSwap:
		return "swap"
	case TxMint:
		return "mint"
	case TxIncreaseLiquidity:
		return "increase-liquidity"
	case TxDecreaseLiquidity:
		return "decrease-liquidity"
	case TxCollect:
		return "collect"
	default:
		return "unknown"
	}
}

// TxState is the lifecycle state of a pending transaction.
type TxState int

const (
	TxPending TxState = iota
	TxConfirmed
	TxFailed
	TxTimedOut
)

func (s TxState) String() string {
	switch s {
	case TxPending:
		return "pending"
	case TxConfirmed:
		return "confirmed"
	case TxFailed:
		return "failed"
	case TxTimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// SwapIntent captures a single user-initiated swap. Constructed per user
// action, consumed by the fee calculator and call builder, and discarded
// when the orchestrator finishes.
type SwapIntent struct {
	TokenIn        string
	TokenOut       string
	AmountIn       string // human-entered decimal string
	Chain          string
	SlippageBps    uint32 // 50 = 0.5%
	DeadlineOffset time.Duration
	Recipient      string
}

// Quote is the normalized answer of the quote service for one
// (tokenIn, tokenOut, amountIn, chain) request. It has no identity beyond
// the request that produced it; the next quote for the same pair
// supersedes it.
type Quote struct {
	AmountOut   *big.Int
	FeeBps      uint32
	Route       string
	DecimalsOut uint8
	Source      string
}

// PendingTransaction tracks a submitted transaction until the poll loop
// resolves it. Not persisted.
type PendingTransaction struct {
	Hash        string
	Kind        TxKind
	Chain       string
	SubmittedAt time.Time
	State       TxState
}

// LiquidityRange is a tick range derived from a UI price range and the
// fee tier's tick spacing. TickLower < TickUpper and both are exact
// multiples of the spacing.
type LiquidityRange struct {
	PriceLower float64
	PriceUpper float64
	TickLower  int32
	TickUpper  int32
	FeeBps     uint32
}
