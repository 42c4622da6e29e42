package wallet

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
)

// EIP-1193 / JSON-RPC error codes the transport reacts to.
const (
	codeUserRejected  = 4001
	codeChainNotAdded = 4902
)

// Provider is the injected EVM wallet surface:
// request(method, params) -> result.
type Provider interface {
	Request(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// ChainParams carries what wallet_addEthereumChain needs when the wallet
// does not know the chain yet.
type ChainParams struct {
	ChainID        uint64
	Name           string
	RPCURLs        []string
	Explorer       string
	NativeSymbol   string
	NativeDecimals uint8
}

// EVM adapts a generic provider to the Transport interface using
// eth_call / eth_sendTransaction / eth_getTransactionReceipt /
// eth_chainId / wallet_switchEthereumChain / wallet_addEthereumChain.
type EVM struct {
	provider Provider
	known    map[uint64]ChainParams
}

// NewEVM wraps a provider. Chains passed in can be added to the wallet
// on demand when switching fails with "chain not added".
func NewEVM(p Provider, chains ...ChainParams) *EVM {
	known := make(map[uint64]ChainParams, len(chains))
	for _, c := range chains {
		known[c.ChainID] = c
	}
	return &EVM{provider: p, known: known}
}

type callMsg struct {
	To   string `json:"to"`
	Data string `json:"data"`
}

func (e *EVM) Call(ctx context.Context, to, data string) (string, error) {
	raw, err := e.provider.Request(ctx, "eth_call", callMsg{To: to, Data: data}, "latest")
	if err != nil {
		return "", errors.Wrap(err, "eth_call")
	}
	var out string
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", errors.Wrap(err, "eth_call result")
	}
	return out, nil
}

type sendMsg struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Value string `json:"value,omitempty"`
	Data  string `json:"data,omitempty"`
}

func (e *EVM) SendTransaction(ctx context.Context, tx TxRequest) (string, error) {
	msg := sendMsg{From: tx.From, To: tx.To, Data: tx.Data}
	if tx.Value != nil && tx.Value.Sign() > 0 {
		msg.Value = hexutil.EncodeBig(tx.Value)
	}

	raw, err := e.provider.Request(ctx, "eth_sendTransaction", msg)
	if err != nil {
		if errorCode(err) == codeUserRejected {
			return "", ErrRejected
		}
		return "", errors.Wrap(err, "eth_sendTransaction")
	}
	var hash string
	if err := json.Unmarshal(raw, &hash); err != nil {
		return "", errors.Wrap(err, "transaction hash")
	}
	return hash, nil
}

type receipt struct {
	Status string `json:"status"`
}

func (e *EVM) TransactionStatus(ctx context.Context, hash string) (TxStatus, error) {
	raw, err := e.provider.Request(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return StatusPending, errors.Wrap(err, "eth_getTransactionReceipt")
	}
	if len(raw) == 0 || string(raw) == "null" {
		return StatusPending, nil
	}
	var r receipt
	if err := json.Unmarshal(raw, &r); err != nil {
		return StatusPending, errors.Wrap(err, "receipt")
	}
	if r.Status == "0x1" {
		return StatusConfirmed, nil
	}
	return StatusReverted, nil
}

type switchChainMsg struct {
	ChainID string `json:"chainId"`
}

type addChainMsg struct {
	ChainID           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	RPCURLs           []string       `json:"rpcUrls"`
	BlockExplorerURLs []string       `json:"blockExplorerUrls,omitempty"`
	NativeCurrency    nativeCurrency `json:"nativeCurrency"`
}

type nativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals uint8  `json:"decimals"`
}

func (e *EVM) EnsureChain(ctx context.Context, chainID uint64) error {
	raw, err := e.provider.Request(ctx, "eth_chainId")
	if err != nil {
		return errors.Wrap(err, "eth_chainId")
	}
	var current string
	if err := json.Unmarshal(raw, &current); err != nil {
		return errors.Wrap(err, "eth_chainId result")
	}
	hexID := hexutil.EncodeUint64(chainID)
	if strings.EqualFold(current, hexID) {
		return nil
	}

	_, err = e.provider.Request(ctx, "wallet_switchEthereumChain", switchChainMsg{ChainID: hexID})
	if err == nil {
		return nil
	}
	if errorCode(err) == codeUserRejected {
		return ErrRejected
	}
	if errorCode(err) != codeChainNotAdded {
		return errors.Wrap(err, "wallet_switchEthereumChain")
	}

	params, ok := e.known[chainID]
	if !ok {
		return errors.Wrapf(err, "chain %d not added to wallet", chainID)
	}
	_, err = e.provider.Request(ctx, "wallet_addEthereumChain", addChainMsg{
		ChainID:           hexID,
		ChainName:         params.Name,
		RPCURLs:           params.RPCURLs,
		BlockExplorerURLs: []string{params.Explorer},
		NativeCurrency: nativeCurrency{
			Name:     params.NativeSymbol,
			Symbol:   params.NativeSymbol,
			Decimals: params.NativeDecimals,
		},
	})
	if err != nil {
		if errorCode(err) == codeUserRejected {
			return ErrRejected
		}
		return errors.Wrap(err, "wallet_addEthereumChain")
	}
	return nil
}

// errorCode digs the JSON-RPC error code out of a provider error.
func errorCode(err error) int {
	var coded interface{ ErrorCode() int }
	if errors.As(err, &coded) {
		return coded.ErrorCode()
	}
	return 0
}

// RPCProvider backs the Provider interface with a plain JSON-RPC
// endpoint. Used by the CLI where no injected wallet exists.
type RPCProvider struct {
	client *rpc.Client
}

// DialRPC connects a provider to an HTTP or websocket endpoint.
func DialRPC(ctx context.Context, url string) (*RPCProvider, error) {
	client, err := rpc.DialContext(ctx, url)
	if err != nil {
		return nil, errors.Wrap(err, "rpc.DialContext")
	}
	return &RPCProvider{client: client}, nil
}

func (p *RPCProvider) Request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := p.client.CallContext(ctx, &raw, method, params...); err != nil {
		return nil, err
	}
	return raw, nil
}

// Close releases the underlying connection.
func (p *RPCProvider) Close() {
	p.client.Close()
}
