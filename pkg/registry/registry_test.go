package registry

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"dexswap/pkg/apperrors"
)

func TestResolveChain(t *testing.T) {
	t.Parallel()

	t.Run("known chain", func(t *testing.T) {
		p, err := ResolveChain("ethereum")
		require.NoError(t, err)
		require.Equal(t, uint64(1), p.ChainID)
		require.True(t, p.EVM())
	})

	t.Run("case insensitive", func(t *testing.T) {
		p, err := ResolveChain("Ethereum")
		require.NoError(t, err)
		require.Equal(t, "ethereum", p.ID)
	})

	t.Run("unknown chain fails", func(t *testing.T) {
		_, err := ResolveChain("solana")
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrUnsupportedChain))
	})

	t.Run("non-EVM chains have no chain id", func(t *testing.T) {
		for _, id := range []string{"tron", "neo"} {
			p, err := ResolveChain(id)
			require.NoError(t, err)
			require.False(t, p.EVM())
		}
	})
}

func TestResolveToken(t *testing.T) {
	t.Parallel()

	t.Run("native sentinel", func(t *testing.T) {
		tok, err := ResolveToken("ethereum", "ETH")
		require.NoError(t, err)
		require.True(t, tok.Native())
		require.Equal(t, uint8(18), tok.Decimals)
	})

	t.Run("contract token", func(t *testing.T) {
		tok, err := ResolveToken("ethereum", "usdc")
		require.NoError(t, err)
		require.False(t, tok.Native())
		require.Equal(t, uint8(6), tok.Decimals)
	})

	t.Run("unknown token fails", func(t *testing.T) {
		_, err := ResolveToken("ethereum", "DOGE")
		require.Error(t, err)
		require.True(t, errors.Is(err, apperrors.ErrUnsupportedToken))
	})
}

func TestTickSpacingFor(t *testing.T) {
	t.Parallel()

	spacing, err := TickSpacingFor("ethereum", 3000)
	require.NoError(t, err)
	require.Equal(t, uint32(60), spacing)

	_, err = TickSpacingFor("ethereum", 1234)
	require.Error(t, err)
}

func TestKnownSymbol(t *testing.T) {
	t.Parallel()

	require.True(t, KnownSymbol("ETH"))
	require.True(t, KnownSymbol("gas"))
	require.False(t, KnownSymbol("DOGE"))
}

func TestProfileInvariants(t *testing.T) {
	t.Parallel()

	for _, id := range Chains() {
		p, err := ResolveChain(id)
		require.NoError(t, err, id)
		require.NotEmpty(t, p.FeeTiers, id)
		for _, ft := range p.FeeTiers {
			require.Positive(t, ft.TickSpacing, "%s fee tier %d", id, ft.Bps)
		}
		require.NotEmpty(t, p.Router, id)
		require.NotEmpty(t, p.RPCEndpoints, id)
	}
}
