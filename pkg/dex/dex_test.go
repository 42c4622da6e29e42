package dex

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet/mock"
)

func mustChain(t *testing.T, id string) *registry.ChainProfile {
	t.Helper()
	p, err := registry.ResolveChain(id)
	require.NoError(t, err)
	return p
}

func mustToken(t *testing.T, chain, symbol string) registry.TokenDescriptor {
	t.Helper()
	tok, err := registry.ResolveToken(chain, symbol)
	require.NoError(t, err)
	return tok
}

func swapParams(t *testing.T, chain, in, out string) SwapParams {
	t.Helper()
	profile := mustChain(t, chain)
	recipient := "0x1111111111111111111111111111111111111111"
	if chain == "tron" {
		recipient = "TKzxdSv2FZKQrEqkKVgp5DcwEXBEKMg2Ax"
	}
	if chain == "neo" {
		recipient = "NhGomBpYnKXArr85nt6mWL58dXWYAjkUnd"
	}
	return SwapParams{
		Profile:      profile,
		TokenIn:      mustToken(t, chain, in),
		TokenOut:     mustToken(t, chain, out),
		Sender:       recipient,
		Recipient:    recipient,
		AmountIn:     big.NewInt(997_000_000),
		AmountOutMin: big.NewInt(123_000),
		FeeBps:       profile.FeeTiers[0].Bps,
		Deadline:     big.NewInt(1700000000),
	}
}

func TestForChain(t *testing.T) {
	t.Parallel()

	for _, id := range registry.Chains() {
		id := id
		t.Run(id, func(t *testing.T) {
			t.Parallel()

			profile := mustChain(t, id)
			adapter, err := ForChain(profile)
			require.NoError(t, err)

			switch profile.Family {
			case registry.UniswapV3Style:
				require.IsType(t, &V3{}, adapter)
			case registry.UniswapV2Style:
				require.IsType(t, &V2{}, adapter)
			case registry.ConcentratedBinStyle:
				require.IsType(t, &Bin{}, adapter)
			case registry.NEP17Style:
				require.IsType(t, &NEP17{}, adapter)
			}
		})
	}
}

func TestV3BuildSwap(t *testing.T) {
	t.Parallel()

	t.Run("erc20 to erc20", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "ethereum", "USDC", "DAI")
		tx, err := (&V3{}).BuildSwap(p)
		require.NoError(t, err)
		require.Equal(t, p.Profile.Router, tx.To)
		require.Nil(t, tx.Value)
		require.True(t, strings.HasPrefix(tx.Data, "0x414bf389"))
		// tokenIn is the first tuple word
		require.Contains(t, strings.ToLower(tx.Data[10:74]), strings.ToLower(p.TokenIn.Address[2:]))
	})

	t.Run("native rides as value over the wrapped token", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "ethereum", "ETH", "USDC")
		tx, err := (&V3{}).BuildSwap(p)
		require.NoError(t, err)
		require.Equal(t, p.AmountIn, tx.Value)
		require.Contains(t, strings.ToLower(tx.Data), strings.ToLower(p.Profile.WrappedNative[2:]))
	})
}

func TestV2BuildSwap(t *testing.T) {
	t.Parallel()

	t.Run("native in uses the ETH entry point", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "bsc", "BNB", "USDT")
		tx, err := (&V2{}).BuildSwap(p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(tx.Data, "0x7ff36ab5"))
		require.Equal(t, p.AmountIn, tx.Value)
	})

	t.Run("native out uses the token-for-ETH entry point", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "bsc", "USDT", "BNB")
		tx, err := (&V2{}).BuildSwap(p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(tx.Data, "0x18cbafe5"))
		require.Nil(t, tx.Value)
	})

	t.Run("token pair routes through the wrapped native", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "bsc", "USDT", "BUSD")
		tx, err := (&V2{}).BuildSwap(p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(tx.Data, "0x38ed1739"))
		require.Contains(t, strings.ToLower(tx.Data), strings.ToLower(p.Profile.WrappedNative[2:]))
	})

	t.Run("tron base58 addresses encode like hex ones", func(t *testing.T) {
		t.Parallel()

		p := swapParams(t, "tron", "TRX", "USDT")
		tx, err := (&V2{}).BuildSwap(p)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(tx.Data, "0x7ff36ab5"))
		// submit target keeps the base58 form the signer expects
		require.Equal(t, p.Profile.Router, tx.To)
	})
}

func TestBinBuildSwap(t *testing.T) {
	t.Parallel()

	p := swapParams(t, "avalanche", "AVAX", "USDC")
	tx, err := (&Bin{}).BuildSwap(p)
	require.NoError(t, err)
	require.Equal(t, p.AmountIn, tx.Value)
	require.Contains(t, strings.ToLower(tx.Data), strings.ToLower(p.Profile.WrappedNative[2:]))
	// one bin step per hop, pulled from the fee tier table
	require.Contains(t, tx.Data, fmt.Sprintf("%064x", p.Profile.FeeTiers[0].TickSpacing))
}

func TestNEP17BuildSwap(t *testing.T) {
	t.Parallel()

	p := swapParams(t, "neo", "GAS", "fUSDT")
	tx, err := (&NEP17{}).BuildSwap(p)
	require.NoError(t, err)
	require.Empty(t, tx.Data)
	require.NotNil(t, tx.Invocation)
	require.Equal(t, p.Profile.Router, tx.Invocation.ScriptHash)
	require.Equal(t, "swapTokenInForTokenOut", tx.Invocation.Operation)
	require.Len(t, tx.Invocation.Args, 6)
	require.Equal(t, []string{p.Sender}, tx.Invocation.Signers)

	require.Empty(t, (&NEP17{}).ApprovalTarget(p.Profile))
}

func TestBuildFeeTransfer(t *testing.T) {
	t.Parallel()

	fee := big.NewInt(30000)
	evmSender := "0x1111111111111111111111111111111111111111"
	neoSender := "NhGomBpYnKXArr85nt6mWL58dXWYAjkUnd"

	t.Run("native moves as plain value on evm", func(t *testing.T) {
		t.Parallel()
		profile := mustChain(t, "ethereum")
		tx, err := BuildFeeTransfer(profile, mustToken(t, "ethereum", "ETH"), evmSender, fee)
		require.NoError(t, err)
		require.Equal(t, profile.FeeCollector, tx.To)
		require.Equal(t, fee, tx.Value)
		require.Empty(t, tx.Data)
		require.Nil(t, tx.Invocation)
	})

	t.Run("token moves through transfer on evm", func(t *testing.T) {
		t.Parallel()
		usdc := mustToken(t, "ethereum", "USDC")
		tx, err := BuildFeeTransfer(mustChain(t, "ethereum"), usdc, evmSender, fee)
		require.NoError(t, err)
		require.Equal(t, usdc.Address, tx.To)
		require.True(t, strings.HasPrefix(tx.Data, "0xa9059cbb"))
	})

	t.Run("token moves as an invocation on neo", func(t *testing.T) {
		t.Parallel()
		profile := mustChain(t, "neo")
		gas := mustToken(t, "neo", "GAS")
		tx, err := BuildFeeTransfer(profile, gas, neoSender, fee)
		require.NoError(t, err)
		require.NotNil(t, tx.Invocation)
		require.Equal(t, gas.Address, tx.Invocation.ScriptHash)
		require.Equal(t, "transfer", tx.Invocation.Operation)
		require.Equal(t, []any{neoSender, profile.FeeCollector, fee.String(), nil}, tx.Invocation.Args)
		require.Equal(t, []string{neoSender}, tx.Invocation.Signers)
	})

	t.Run("native resolves to the wrapped contract on neo", func(t *testing.T) {
		t.Parallel()
		profile := mustChain(t, "neo")
		tx, err := BuildFeeTransfer(profile, mustToken(t, "neo", "NEO"), neoSender, fee)
		require.NoError(t, err)
		require.NotNil(t, tx.Invocation)
		require.Equal(t, profile.WrappedNative, tx.Invocation.ScriptHash)
	})
}

func abiString(s string) string {
	padded := []byte(s)
	for len(padded)%32 != 0 {
		padded = append(padded, 0)
	}
	return fmt.Sprintf("0x%064x%064x%x", 32, len(s), padded)
}

func TestImportToken(t *testing.T) {
	t.Parallel()

	addr := "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"

	t.Run("reads the erc20 metadata", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		transport := mock.NewMockTransport(ctrl)
		transport.EXPECT().Call(gomock.Any(), addr, gomock.Any()).Return(abiString("Wrapped Ether"), nil)
		transport.EXPECT().Call(gomock.Any(), addr, gomock.Any()).Return(abiString("WETH"), nil)
		transport.EXPECT().Call(gomock.Any(), addr, gomock.Any()).Return(fmt.Sprintf("0x%064x", 18), nil)

		profile := mustChain(t, "ethereum")
		tok, err := ImportToken(context.Background(), transport, profile, addr)
		require.NoError(t, err)
		require.Equal(t, "Wrapped Ether", tok.Name)
		require.Equal(t, "WETH", tok.Symbol)
		require.Equal(t, uint8(18), tok.Decimals)
		require.Equal(t, addr, tok.Address)
	})

	t.Run("legacy bytes32 symbol", func(t *testing.T) {
		t.Parallel()

		got, err := decodeString("0x" + fmt.Sprintf("%x", append([]byte("MKR"), make([]byte, 29)...)))
		require.NoError(t, err)
		require.Equal(t, "MKR", got)
	})

	t.Run("rejected on neo", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		profile := mustChain(t, "neo")
		_, err := ImportToken(context.Background(), mock.NewMockTransport(ctrl), profile, addr)
		require.ErrorIs(t, err, apperrors.ErrUnsupportedToken)
	})
}

func TestParseAddress(t *testing.T) {
	t.Parallel()

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []string{"", "0x123", "not-an-address", "T123"} {
			_, err := parseAddress(raw)
			require.ErrorIs(t, err, apperrors.ErrInvalidInput, raw)
		}
	})

	t.Run("tron and hex agree on width", func(t *testing.T) {
		t.Parallel()

		a, err := parseAddress("TNUC9Qb1rRpS5CbWLmNMxXBjyFoydXjWFR")
		require.NoError(t, err)
		require.Len(t, a.Bytes(), 20)
	})
}
