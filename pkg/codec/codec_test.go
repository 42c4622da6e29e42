package codec

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"dexswap/pkg/apperrors"
)

func TestToSmallestUnit(t *testing.T) {
	t.Parallel()

	t.Run("whole amount", func(t *testing.T) {
		v, err := ToSmallestUnit("3", 18)
		require.NoError(t, err)
		require.Equal(t, "3000000000000000000", v.String())
	})

	t.Run("fractional amount", func(t *testing.T) {
		v, err := ToSmallestUnit("0.003", 18)
		require.NoError(t, err)
		require.Equal(t, "3000000000000000", v.String())
	})

	t.Run("truncates beyond decimals", func(t *testing.T) {
		v, err := ToSmallestUnit("1.2345678", 6)
		require.NoError(t, err)
		require.Equal(t, "1234567", v.String())
	})

	t.Run("bare dot fraction", func(t *testing.T) {
		v, err := ToSmallestUnit(".5", 6)
		require.NoError(t, err)
		require.Equal(t, "500000", v.String())
	})

	t.Run("zero decimals", func(t *testing.T) {
		v, err := ToSmallestUnit("42.9", 0)
		require.NoError(t, err)
		require.Equal(t, "42", v.String())
	})

	t.Run("rejects non-numeric input", func(t *testing.T) {
		for _, in := range []string{"", "abc", "1.2.3", "1,5", "-1", "1e18"} {
			_, err := ToSmallestUnit(in, 18)
			require.Error(t, err, "input %q", in)
			require.True(t, errors.Is(err, apperrors.ErrInvalidInput), "input %q", in)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	cases := []struct {
		amount   string
		decimals uint8
		want     string
	}{
		{"1", 18, "1"},
		{"0.5", 6, "0.5"},
		{"1.234567891", 6, "1.234567"}, // truncated to decimals
		{"1000.000001", 6, "1000.000001"},
		{"0.000000000000000001", 18, "0.000000000000000001"},
	}
	for _, tc := range cases {
		v, err := ToSmallestUnit(tc.amount, tc.decimals)
		require.NoError(t, err)
		require.Equal(t, tc.want, FromSmallestUnit(v, tc.decimals))
	}
}

func TestPadHex(t *testing.T) {
	t.Parallel()

	t.Run("pads to width", func(t *testing.T) {
		s, err := PadHex(big.NewInt(0xff), 4)
		require.NoError(t, err)
		require.Equal(t, "000000ff", s)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := PadHex(big.NewInt(0x1ffff), 2)
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrOverflow))
	})
}

func TestWord(t *testing.T) {
	t.Parallel()

	v, ok := new(big.Int).SetString("1000000000000000000", 10)
	require.True(t, ok)
	w, err := Word(v)
	require.NoError(t, err)
	require.Len(t, w, 64)
	require.Equal(t, "0000000000000000000000000000000000000000000000000de0b6b3a7640000", w)
}

func TestEncodeSignedTick(t *testing.T) {
	t.Parallel()

	t.Run("positive tick", func(t *testing.T) {
		require.Equal(t,
			"00000000000000000000000000000000000000000000000000000000000d89b4",
			EncodeSignedTick(887220))
	})

	t.Run("minimum tick is two's complement", func(t *testing.T) {
		// 2^256 - 887272
		want := new(big.Int).Lsh(big.NewInt(1), 256)
		want.Sub(want, big.NewInt(887272))
		require.Equal(t, want.Text(16), EncodeSignedTick(-887272))
		require.Len(t, EncodeSignedTick(-887272), 64)
	})

	t.Run("minus one is all ff", func(t *testing.T) {
		require.Equal(t,
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
			EncodeSignedTick(-1))
	})
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	v, _ := new(big.Int).SetString("1500000000000000000", 10)
	require.Equal(t, "1.5000", FormatAmount(v, 18))
	require.Equal(t, "0", FormatAmount(nil, 18))
}
