package calldata

import (
	"encoding/hex"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

var (
	addrA = common.HexToAddress("0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")
	addrB = common.HexToAddress("0xBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB")
	addrC = common.HexToAddress("0xCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCCC")
)

// word returns the n-th 32-byte parameter of a call as hex.
func word(t *testing.T, data string, n int) string {
	t.Helper()
	body := strings.TrimPrefix(data, "0x")[8:]
	require.GreaterOrEqual(t, len(body), (n+1)*64)
	return body[n*64 : (n+1)*64]
}

func sel(data string) string {
	return strings.TrimPrefix(data, "0x")[:8]
}

func TestSelectors(t *testing.T) {
	t.Parallel()

	// Known selectors pinned so a signature typo cannot slip through.
	cases := map[string][4]byte{
		"095ea7b3": selApprove,
		"a9059cbb": selTransfer,
		"70a08231": selBalanceOf,
		"dd62ed3e": selAllowance,
		"313ce567": selDecimals,
		"414bf389": selExactInputSingle,
		"38ed1739": selSwapExactTokensForTokens,
		"7ff36ab5": selSwapExactETHForTokens,
		"18cbafe5": selSwapExactTokensForETH,
		"88316456": selMint,
		"219f5d17": selIncreaseLiquidity,
		"0c49ccbe": selDecreaseLiquidity,
		"fc6f7865": selCollect,
	}
	for want, got := range cases {
		require.Equal(t, want, hex.EncodeToString(got[:]))
	}
}

func TestExactInputSingleGolden(t *testing.T) {
	t.Parallel()

	amountIn, ok := new(big.Int).SetString("1000000000000000000", 10)
	require.True(t, ok)

	data, err := ExactInputSingle(ExactInputSingleParams{
		TokenIn:           addrA,
		TokenOut:          addrB,
		FeeBps:            3000,
		Recipient:         addrC,
		Deadline:          big.NewInt(1700000000),
		AmountIn:          amountIn,
		AmountOutMinimum:  new(big.Int),
		SqrtPriceLimitX96: new(big.Int),
	})
	require.NoError(t, err)

	want := "0x414bf389" +
		"000000000000000000000000aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" +
		"000000000000000000000000bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb" +
		"0000000000000000000000000000000000000000000000000000000000000bb8" +
		"000000000000000000000000cccccccccccccccccccccccccccccccccccccccc" +
		"000000000000000000000000000000000000000000000000000000006553f100" +
		"0000000000000000000000000000000000000000000000000de0b6b3a7640000" +
		"0000000000000000000000000000000000000000000000000000000000000000" +
		"0000000000000000000000000000000000000000000000000000000000000000"
	require.Equal(t, want, data)
}

func TestExactInputSingleDeterministic(t *testing.T) {
	t.Parallel()

	p := ExactInputSingleParams{
		TokenIn:          addrA,
		TokenOut:         addrB,
		FeeBps:           500,
		Recipient:        addrC,
		Deadline:         big.NewInt(1800000000),
		AmountIn:         big.NewInt(123456789),
		AmountOutMinimum: big.NewInt(1),
	}
	first, err := ExactInputSingle(p)
	require.NoError(t, err)
	second, err := ExactInputSingle(p)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSwapExactTokensForTokensLayout(t *testing.T) {
	t.Parallel()

	path := []common.Address{addrA, addrB, addrC}
	data, err := SwapExactTokensForTokens(
		big.NewInt(1000), big.NewInt(990), path, addrC, big.NewInt(1700000000))
	require.NoError(t, err)

	require.Equal(t, "38ed1739", sel(data))
	// Head: amountIn, amountOutMin, offset, to, deadline.
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000003e8", word(t, data, 0))
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000a0", word(t, data, 2))
	require.Equal(t, wordAddress(addrC), word(t, data, 3))
	// Tail: length then the three hops.
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000003", word(t, data, 5))
	require.Equal(t, wordAddress(addrA), word(t, data, 6))
	require.Equal(t, wordAddress(addrC), word(t, data, 8))
	// Selector + 9 words total.
	require.Len(t, data, 2+8+9*64)
}

func TestSwapExactETHForTokensOffset(t *testing.T) {
	t.Parallel()

	data, err := SwapExactETHForTokens(
		big.NewInt(5), []common.Address{addrA, addrB}, addrC, big.NewInt(1700000000))
	require.NoError(t, err)

	require.Equal(t, "7ff36ab5", sel(data))
	// Path offset is 0x80: four head words precede the tail.
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000080", word(t, data, 1))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000002", word(t, data, 4))
}

func TestSwapPathTooShort(t *testing.T) {
	t.Parallel()

	_, err := SwapExactTokensForTokens(
		big.NewInt(1), big.NewInt(1), []common.Address{addrA}, addrC, big.NewInt(1))
	require.Error(t, err)
}

func TestMintEncodesSignedTicks(t *testing.T) {
	t.Parallel()

	data, err := Mint(MintParams{
		Token0:         addrA,
		Token1:         addrB,
		FeeBps:         3000,
		TickLower:      -887220,
		TickUpper:      887220,
		Amount0Desired: big.NewInt(1000),
		Amount1Desired: big.NewInt(2000),
		Amount0Min:     big.NewInt(990),
		Amount1Min:     big.NewInt(1980),
		Recipient:      addrC,
		Deadline:       big.NewInt(1700000000),
	})
	require.NoError(t, err)

	require.Equal(t, "88316456", sel(data))
	require.Len(t, data, 2+8+11*64)

	// tickLower is two's complement over the full word.
	lower := word(t, data, 3)
	require.True(t, strings.HasPrefix(lower, "ffffff"))
	wantLower := new(big.Int).Lsh(big.NewInt(1), 256)
	wantLower.Sub(wantLower, big.NewInt(887220))
	require.Equal(t, wantLower.Text(16), lower)

	upper := word(t, data, 4)
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000d89b4", upper)
}

func TestPositionCalls(t *testing.T) {
	t.Parallel()

	t.Run("increase", func(t *testing.T) {
		data, err := IncreaseLiquidity(
			big.NewInt(7), big.NewInt(1), big.NewInt(2), big.NewInt(0), big.NewInt(0), big.NewInt(1700000000))
		require.NoError(t, err)
		require.Equal(t, "219f5d17", sel(data))
		require.Len(t, data, 2+8+6*64)
	})

	t.Run("decrease", func(t *testing.T) {
		data, err := DecreaseLiquidity(
			big.NewInt(7), big.NewInt(500), big.NewInt(0), big.NewInt(0), big.NewInt(1700000000))
		require.NoError(t, err)
		require.Equal(t, "0c49ccbe", sel(data))
		require.Len(t, data, 2+8+5*64)
	})

	t.Run("collect", func(t *testing.T) {
		maxUint128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
		data, err := Collect(big.NewInt(7), addrC, maxUint128, maxUint128)
		require.NoError(t, err)
		require.Equal(t, "fc6f7865", sel(data))
		require.Equal(t, wordAddress(addrC), word(t, data, 1))
		require.Equal(t, "00000000000000000000000000000000ffffffffffffffffffffffffffffffff", word(t, data, 2))
	})
}

func TestLBSwapLayout(t *testing.T) {
	t.Parallel()

	data, err := LBSwapExactTokensForTokens(
		big.NewInt(1000), big.NewInt(990),
		LBPath{
			PairBinSteps: []uint32{20},
			Versions:     []uint8{2},
			TokenPath:    []common.Address{addrA, addrB},
		},
		addrC, big.NewInt(1700000000))
	require.NoError(t, err)

	// Outer head points at the tuple after five words.
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000a0", word(t, data, 2))
	// Tuple head: three array offsets relative to the tuple start.
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000060", word(t, data, 5))
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000a0", word(t, data, 6))
	require.Equal(t, "00000000000000000000000000000000000000000000000000000000000000e0", word(t, data, 7))
	// pairBinSteps: [20], versions: [2], tokenPath: [A, B].
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000001", word(t, data, 8))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000014", word(t, data, 9))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000002", word(t, data, 11))
	require.Equal(t, "0000000000000000000000000000000000000000000000000000000000000002", word(t, data, 12))
	require.Equal(t, wordAddress(addrA), word(t, data, 13))
	require.Equal(t, wordAddress(addrB), word(t, data, 14))
}

func TestERC20Reads(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0x70a08231"+wordAddress(addrA), BalanceOf(addrA))
	require.Equal(t, "0xdd62ed3e"+wordAddress(addrA)+wordAddress(addrB), Allowance(addrA, addrB))
	require.Equal(t, "0x313ce567", TokenDecimals())
}
