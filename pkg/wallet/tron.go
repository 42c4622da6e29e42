package wallet

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// TronSigner is the TRON wallet surface: build an unsigned transaction,
// have the user sign it, broadcast the signed blob. Receipts come from
// the node's transaction info endpoint.
type TronSigner interface {
	TriggerSmartContract(ctx context.Context, contract, function string, callData string, callValue int64) (json.RawMessage, error)
	TriggerConstantContract(ctx context.Context, contract, function string, callData string) (string, error)
	Sign(ctx context.Context, unsigned json.RawMessage) (json.RawMessage, error)
	SendRawTransaction(ctx context.Context, signed json.RawMessage) (string, error)
	GetTransactionInfo(ctx context.Context, txid string) (TronReceipt, error)
}

// TronReceipt is the subset of the transaction info the poll loop reads.
type TronReceipt struct {
	Found  bool
	Result string // SUCCESS or FAILED once executed
}

// Tron adapts a TronSigner to the Transport interface. The TVM shares
// the EVM ABI encoding, so swap call data passes through unchanged.
type Tron struct {
	signer TronSigner
}

func NewTron(s TronSigner) *Tron {
	return &Tron{signer: s}
}

func (t *Tron) Call(ctx context.Context, to, data string) (string, error) {
	out, err := t.signer.TriggerConstantContract(ctx, to, "", strings.TrimPrefix(data, "0x"))
	if err != nil {
		return "", errors.Wrap(err, "triggerConstantContract")
	}
	if !strings.HasPrefix(out, "0x") {
		out = "0x" + out
	}
	return out, nil
}

func (t *Tron) SendTransaction(ctx context.Context, tx TxRequest) (string, error) {
	var callValue int64
	if tx.Value != nil {
		callValue = tx.Value.Int64()
	}

	unsigned, err := t.signer.TriggerSmartContract(ctx, tx.To, "", strings.TrimPrefix(tx.Data, "0x"), callValue)
	if err != nil {
		return "", errors.Wrap(err, "triggerSmartContract")
	}

	signed, err := t.signer.Sign(ctx, unsigned)
	if err != nil {
		if errors.Is(err, ErrRejected) {
			return "", ErrRejected
		}
		return "", errors.Wrap(err, "sign")
	}

	txid, err := t.signer.SendRawTransaction(ctx, signed)
	if err != nil {
		return "", errors.Wrap(err, "sendRawTransaction")
	}
	return txid, nil
}

func (t *Tron) TransactionStatus(ctx context.Context, hash string) (TxStatus, error) {
	info, err := t.signer.GetTransactionInfo(ctx, hash)
	if err != nil {
		return StatusPending, errors.Wrap(err, "getTransactionInfo")
	}
	if !info.Found {
		return StatusPending, nil
	}
	if strings.EqualFold(info.Result, "SUCCESS") {
		return StatusConfirmed, nil
	}
	return StatusReverted, nil
}

// EnsureChain is a no-op: a TRON signer serves exactly one chain.
func (t *Tron) EnsureChain(ctx context.Context, chainID uint64) error {
	return nil
}
