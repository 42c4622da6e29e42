package wallet

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	responses map[string]json.RawMessage
	errs      map[string]error
	calls     []string
}

func (f *fakeProvider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	f.calls = append(f.calls, method)
	if err, ok := f.errs[method]; ok {
		return nil, err
	}
	return f.responses[method], nil
}

type codedError struct {
	code int
	msg  string
}

func (e *codedError) Error() string  { return e.msg }
func (e *codedError) ErrorCode() int { return e.code }

func TestEVMSendTransaction(t *testing.T) {
	t.Parallel()

	t.Run("returns the hash", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{responses: map[string]json.RawMessage{
			"eth_sendTransaction": json.RawMessage(`"0xabc123"`),
		}}
		hash, err := NewEVM(p).SendTransaction(context.Background(), TxRequest{
			From:  "0x1111111111111111111111111111111111111111",
			To:    "0x2222222222222222222222222222222222222222",
			Value: big.NewInt(1),
			Data:  "0x",
		})
		require.NoError(t, err)
		require.Equal(t, "0xabc123", hash)
	})

	t.Run("maps code 4001 onto ErrRejected", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{errs: map[string]error{
			"eth_sendTransaction": &codedError{code: 4001, msg: "user denied"},
		}}
		_, err := NewEVM(p).SendTransaction(context.Background(), TxRequest{})
		require.ErrorIs(t, err, ErrRejected)
	})

	t.Run("wrapped provider codes still surface", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{errs: map[string]error{
			"eth_sendTransaction": errors.Wrap(&codedError{code: 4001, msg: "user denied"}, "request"),
		}}
		_, err := NewEVM(p).SendTransaction(context.Background(), TxRequest{})
		require.ErrorIs(t, err, ErrRejected)
	})
}

func TestEVMTransactionStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want TxStatus
	}{
		{"no receipt yet", `null`, StatusPending},
		{"success", `{"status":"0x1"}`, StatusConfirmed},
		{"reverted", `{"status":"0x0"}`, StatusReverted},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &fakeProvider{responses: map[string]json.RawMessage{
				"eth_getTransactionReceipt": json.RawMessage(tc.raw),
			}}
			got, err := NewEVM(p).TransactionStatus(context.Background(), "0xabc")
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestEVMEnsureChain(t *testing.T) {
	t.Parallel()

	polygon := ChainParams{
		ChainID:        137,
		Name:           "Polygon",
		RPCURLs:        []string{"https://polygon-rpc.com"},
		Explorer:       "https://polygonscan.com",
		NativeSymbol:   "POL",
		NativeDecimals: 18,
	}

	t.Run("already selected", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{responses: map[string]json.RawMessage{
			"eth_chainId": json.RawMessage(`"0x89"`),
		}}
		require.NoError(t, NewEVM(p, polygon).EnsureChain(context.Background(), 137))
		require.Equal(t, []string{"eth_chainId"}, p.calls)
	})

	t.Run("switches when on another chain", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{responses: map[string]json.RawMessage{
			"eth_chainId":               json.RawMessage(`"0x1"`),
			"wallet_switchEthereumChain": json.RawMessage(`null`),
		}}
		require.NoError(t, NewEVM(p, polygon).EnsureChain(context.Background(), 137))
		require.Equal(t, []string{"eth_chainId", "wallet_switchEthereumChain"}, p.calls)
	})

	t.Run("adds the chain on code 4902", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			responses: map[string]json.RawMessage{
				"eth_chainId":            json.RawMessage(`"0x1"`),
				"wallet_addEthereumChain": json.RawMessage(`null`),
			},
			errs: map[string]error{
				"wallet_switchEthereumChain": &codedError{code: 4902, msg: "unrecognized chain"},
			},
		}
		require.NoError(t, NewEVM(p, polygon).EnsureChain(context.Background(), 137))
		require.Equal(t,
			[]string{"eth_chainId", "wallet_switchEthereumChain", "wallet_addEthereumChain"},
			p.calls)
	})

	t.Run("unknown chain cannot be added", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			responses: map[string]json.RawMessage{
				"eth_chainId": json.RawMessage(`"0x1"`),
			},
			errs: map[string]error{
				"wallet_switchEthereumChain": &codedError{code: 4902, msg: "unrecognized chain"},
			},
		}
		err := NewEVM(p).EnsureChain(context.Background(), 137)
		require.Error(t, err)
		require.Contains(t, err.Error(), fmt.Sprintf("chain %d", 137))
	})

	t.Run("switch declined", func(t *testing.T) {
		t.Parallel()

		p := &fakeProvider{
			responses: map[string]json.RawMessage{
				"eth_chainId": json.RawMessage(`"0x1"`),
			},
			errs: map[string]error{
				"wallet_switchEthereumChain": &codedError{code: 4001, msg: "user denied"},
			},
		}
		require.ErrorIs(t, NewEVM(p, polygon).EnsureChain(context.Background(), 137), ErrRejected)
	})
}
