package wallet

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

// NeoSigner is the NEO N3 wallet surface:
// invoke({scriptHash, operation, args, signers}) -> txid.
type NeoSigner interface {
	Invoke(ctx context.Context, inv Invocation) (string, error)
	InvokeRead(ctx context.Context, inv Invocation) (string, error)
	ApplicationLog(ctx context.Context, txid string) (NeoExecution, error)
}

// NeoExecution is the VM state of an executed transaction.
type NeoExecution struct {
	Found bool
	State string // HALT on success, FAULT on failure
}

// Neo adapts a NeoSigner to the Transport interface. NEO calls are
// structured invocations rather than flat hex, so Call and
// SendTransaction route through TxRequest.Invocation.
type Neo struct {
	signer NeoSigner
}

func NewNeo(s NeoSigner) *Neo {
	return &Neo{signer: s}
}

// Call is unsupported in hex form on NEO; reads go through ReadInvoke.
func (n *Neo) Call(ctx context.Context, to, data string) (string, error) {
	return "", errors.New("neo transport requires structured invocations")
}

// ReadInvoke performs a read-only invocation.
func (n *Neo) ReadInvoke(ctx context.Context, inv Invocation) (string, error) {
	out, err := n.signer.InvokeRead(ctx, inv)
	if err != nil {
		return "", errors.Wrap(err, "invoke read")
	}
	return out, nil
}

func (n *Neo) SendTransaction(ctx context.Context, tx TxRequest) (string, error) {
	if tx.Invocation == nil {
		return "", errors.New("neo transaction needs an invocation")
	}
	txid, err := n.signer.Invoke(ctx, *tx.Invocation)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return "", ErrRejected
		}
		return "", errors.Wrap(err, "invoke")
	}
	return txid, nil
}

func (n *Neo) TransactionStatus(ctx context.Context, hash string) (TxStatus, error) {
	log, err := n.signer.ApplicationLog(ctx, hash)
	if err != nil {
		return StatusPending, errors.Wrap(err, "application log")
	}
	if !log.Found {
		return StatusPending, nil
	}
	if strings.EqualFold(log.State, "HALT") {
		return StatusConfirmed, nil
	}
	return StatusReverted, nil
}

// EnsureChain is a no-op: a NEO signer serves exactly one chain.
func (n *Neo) EnsureChain(ctx context.Context, chainID uint64) error {
	return nil
}
