package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidInput is returned when an amount or address is malformed.
	// Rejected before any network call is made.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverflow is returned when a value does not fit the requested
	// fixed byte width.
	ErrOverflow = errors.New("value overflows byte width")

	// ErrUnsupportedChain is returned when a chain id is not in the registry.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrUnsupportedToken is returned when a token symbol is not known
	// on the requested chain.
	ErrUnsupportedToken = errors.New("unsupported token")

	// ErrQuoteUnavailable is returned when the quote service cannot be
	// reached or answers with an error. Transient: callers retry by
	// re-fetching; a missing quote is never treated as zero.
	ErrQuoteUnavailable = errors.New("quote unavailable")

	// ErrApprovalRejected is returned when the user declines the token
	// approval in their wallet. Terminal, no retry.
	ErrApprovalRejected = errors.New("approval rejected by wallet")

	// ErrSwapRejected is returned when the user declines the swap
	// transaction in their wallet. Terminal, no retry.
	ErrSwapRejected = errors.New("swap rejected by wallet")

	// ErrFeeTransferFailed is returned when the protocol fee transfer
	// fails or is rejected. The operation aborts before the swap step.
	ErrFeeTransferFailed = errors.New("fee transfer failed")

	// ErrWalletTimeout is returned when the wallet does not answer
	// within the poll policy bound. Terminal, user must retry manually.
	ErrWalletTimeout = errors.New("wallet timeout")

	// ErrTransactionReverted is returned when a submitted transaction
	// is mined with a failed receipt status.
	ErrTransactionReverted = errors.New("transaction reverted")

	// ErrOperationActive is returned when a second wallet operation is
	// started while one is already in flight for the session.
	ErrOperationActive = errors.New("another wallet operation is active")
)
