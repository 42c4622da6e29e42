// Package wallet puts the three wallet families (EVM JSON-RPC providers,
// TRON signers, NEO N3 signers) behind one logical transport interface so
// the orchestrator never branches on chain identity.
package wallet

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
)

// ErrRejected is returned when the user declines a request in their
// wallet. The orchestrator maps it onto the step that was declined.
var ErrRejected = errors.New("user rejected request")

// TxStatus is the receipt state of a submitted transaction.
type TxStatus int

const (
	StatusPending TxStatus = iota
	StatusConfirmed
	StatusReverted
)

// Invocation is a structured NEP17-style contract call, used where call
// data is not a flat hex string.
type Invocation struct {
	ScriptHash string
	Operation  string
	Args       []any
	Signers    []string
}

// TxRequest is the transport-independent submit request. EVM and TVM
// targets carry hex call data in Data; NEO targets carry an Invocation.
type TxRequest struct {
	From       string
	To         string
	Value      *big.Int // native amount, nil when none
	Data       string   // 0x-prefixed
	Invocation *Invocation
}

//go:generate mockgen -source=wallet.go -destination=mock/transport.go -package=mock

// Transport is the logical wallet interface: submit(txParams) -> handle,
// plus the read calls the orchestrator needs around a submission.
type Transport interface {
	// Call performs a read-only contract call and returns the raw result.
	Call(ctx context.Context, to, data string) (string, error)

	// SendTransaction submits a transaction and returns its hash.
	SendTransaction(ctx context.Context, tx TxRequest) (string, error)

	// TransactionStatus reports the receipt state for a hash.
	// StatusPending means no receipt yet.
	TransactionStatus(ctx context.Context, hash string) (TxStatus, error)

	// EnsureChain switches the wallet to the given chain where the
	// transport supports more than one. No-op on single-chain wallets.
	EnsureChain(ctx context.Context, chainID uint64) error
}
