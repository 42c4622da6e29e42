// Package session holds the per-run state: the wallet-action guard that
// pauses background refresh while a signing prompt is open, and the
// table of transactions submitted during this run. Nothing here is
// persisted; a new run starts clean.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"dexswap/pkg/types"
)

// DefaultRefreshInterval paces the background price-table refresh.
const DefaultRefreshInterval = 30 * time.Second

// Session is safe for concurrent use.
type Session struct {
	log *zap.Logger

	mu            sync.Mutex
	walletActions int
	pending       []types.PendingTransaction
}

func New(log *zap.Logger) *Session {
	return &Session{log: log}
}

// BeginWalletAction marks a wallet prompt as open. Calls nest; the guard
// stays up until every Begin has a matching End.
func (s *Session) BeginWalletAction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.walletActions++
}

// EndWalletAction releases one level of the guard. Extra Ends are
// ignored so an errored caller cannot push the counter negative.
func (s *Session) EndWalletAction() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.walletActions > 0 {
		s.walletActions--
	}
}

// WalletActionActive reports whether any wallet prompt is open.
func (s *Session) WalletActionActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.walletActions > 0
}

// Track records a submitted transaction for this run.
func (s *Session) Track(tx types.PendingTransaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, tx)
}

// Resolve moves a tracked transaction into a terminal state.
func (s *Session) Resolve(hash string, state types.TxState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.pending {
		if s.pending[i].Hash == hash {
			s.pending[i].State = state
			return
		}
	}
}

// Transactions returns a snapshot of everything submitted this run, in
// submission order.
func (s *Session) Transactions() []types.PendingTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.PendingTransaction, len(s.pending))
	copy(out, s.pending)
	return out
}

// RunPriceRefresh drives refresh on a ticker until the context ends.
// Ticks that land while a wallet prompt is open are skipped, so the
// displayed quote cannot shift under a confirmation dialog.
func (s *Session) RunPriceRefresh(ctx context.Context, interval time.Duration, refresh func(context.Context) error) {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if s.WalletActionActive() {
				s.log.Debug("price refresh skipped, wallet action active")
				continue
			}
			if err := refresh(ctx); err != nil {
				s.log.Warn("price refresh failed", zap.Error(err))
			}
		}
	}
}
