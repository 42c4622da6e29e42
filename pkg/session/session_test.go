package session

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dexswap/pkg/types"
)

func TestWalletActionGuard(t *testing.T) {
	t.Parallel()

	s := New(zap.NewNop())
	require.False(t, s.WalletActionActive())

	s.BeginWalletAction()
	s.BeginWalletAction()
	require.True(t, s.WalletActionActive())

	s.EndWalletAction()
	require.True(t, s.WalletActionActive(), "guard holds until the outermost End")

	s.EndWalletAction()
	require.False(t, s.WalletActionActive())

	s.EndWalletAction()
	require.False(t, s.WalletActionActive(), "extra End stays at zero")
	s.BeginWalletAction()
	require.True(t, s.WalletActionActive())
}

func TestTransactionTracking(t *testing.T) {
	t.Parallel()

	s := New(zap.NewNop())
	s.Track(types.PendingTransaction{Hash: "0xaaa", Kind: types.TxSwap, State: types.TxPending})
	s.Track(types.PendingTransaction{Hash: "0xbbb", Kind: types.TxApprove, State: types.TxPending})

	s.Resolve("0xaaa", types.TxConfirmed)
	s.Resolve("0xmissing", types.TxFailed)

	txs := s.Transactions()
	require.Len(t, txs, 2)
	require.Equal(t, types.TxConfirmed, txs[0].State)
	require.Equal(t, types.TxPending, txs[1].State)
}

func TestRunPriceRefresh(t *testing.T) {
	t.Parallel()

	t.Run("ticks call refresh", func(t *testing.T) {
		t.Parallel()

		s := New(zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		done := make(chan struct{})
		go func() {
			defer close(done)
			s.RunPriceRefresh(ctx, 5*time.Millisecond, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()

		require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
		cancel()
		<-done
	})

	t.Run("suppressed while a wallet action is open", func(t *testing.T) {
		t.Parallel()

		s := New(zap.NewNop())
		s.BeginWalletAction()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var calls atomic.Int32
		done := make(chan struct{})
		go func() {
			defer close(done)
			s.RunPriceRefresh(ctx, time.Millisecond, func(context.Context) error {
				calls.Add(1)
				return nil
			})
		}()

		time.Sleep(20 * time.Millisecond)
		require.Zero(t, calls.Load())

		s.EndWalletAction()
		require.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, time.Millisecond)
		cancel()
		<-done
	})
}
