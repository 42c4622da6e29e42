package fees

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	t.Run("one ether of input", func(t *testing.T) {
		gross, _ := new(big.Int).SetString("1000000000000000000", 10)
		fee, swap := Split(gross)
		require.Equal(t, "3000000000000000", fee.String())
		require.Equal(t, "997000000000000000", swap.String())
	})

	t.Run("no rounding residue", func(t *testing.T) {
		// Amounts chosen so gross*3 does not divide evenly by 1000.
		for _, raw := range []int64{1, 7, 333, 999, 1001, 123456789} {
			gross := big.NewInt(raw)
			fee, swap := Split(gross)
			sum := new(big.Int).Add(fee, swap)
			require.Zero(t, gross.Cmp(sum), "gross %d", raw)

			wantFee := new(big.Int).Mul(gross, big.NewInt(3))
			wantFee.Quo(wantFee, big.NewInt(1000))
			require.Zero(t, fee.Cmp(wantFee), "gross %d", raw)
		}
	})

	t.Run("dust amounts pay no fee", func(t *testing.T) {
		fee, swap := Split(big.NewInt(100))
		require.Zero(t, fee.Sign())
		require.Equal(t, int64(100), swap.Int64())
	})
}

func TestAmountOutMin(t *testing.T) {
	t.Parallel()

	t.Run("half percent", func(t *testing.T) {
		// 50 bps truncates to 5 per-mille: 1000 -> 995.
		out := AmountOutMin(big.NewInt(1_000_000), 50)
		require.Equal(t, int64(995_000), out.Int64())
	})

	t.Run("truncates sub-permille slippage", func(t *testing.T) {
		// 55 bps and 50 bps land on the same bound.
		a := AmountOutMin(big.NewInt(1_000_000), 55)
		b := AmountOutMin(big.NewInt(1_000_000), 50)
		require.Zero(t, a.Cmp(b))
	})

	t.Run("zero slippage keeps the quote", func(t *testing.T) {
		out := AmountOutMin(big.NewInt(12345), 0)
		require.Equal(t, int64(12345), out.Int64())
	})

	t.Run("full slippage floors at zero", func(t *testing.T) {
		out := AmountOutMin(big.NewInt(12345), 10000)
		require.Zero(t, out.Sign())
	})
}

func TestDeadline(t *testing.T) {
	t.Parallel()

	now := time.Now().Unix()
	dl := Deadline(20 * time.Minute).Int64()
	require.GreaterOrEqual(t, dl, now+20*60-2)
	require.LessOrEqual(t, dl, now+20*60+2)
}
