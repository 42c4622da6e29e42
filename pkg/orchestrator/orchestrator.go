// Package orchestrator drives a wallet operation through its fixed
// step order: approve, fee transfer, submit, poll. Each step owns its
// failure mapping, and the fee transfer always settles before the swap
// is submitted.
package orchestrator

import (
	"context"
	"math/big"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/codec"
	"dexswap/pkg/dex"
	"dexswap/pkg/fees"
	"dexswap/pkg/registry"
	"dexswap/pkg/session"
	"dexswap/pkg/types"
	"dexswap/pkg/wallet"
)

// State is the orchestrator's position in the step order. Confirmed,
// Failed and TimedOut are terminal; a new operation may start from any
// terminal state or Idle.
type State int

const (
	Idle State = iota
	Approving
	FeeTransferring
	Submitting
	Polling
	Confirmed
	Failed
	TimedOut
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Approving:
		return "approving"
	case FeeTransferring:
		return "fee-transferring"
	case Submitting:
		return "submitting"
	case Polling:
		return "polling"
	case Confirmed:
		return "confirmed"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// RetryPolicy bounds the receipt poll loop. A zero Deadline polls until
// the transaction reaches a terminal receipt.
type RetryPolicy struct {
	Interval time.Duration
	Deadline time.Duration
}

// DesktopPolicy polls every two seconds with no wall-clock bound.
func DesktopPolicy() RetryPolicy {
	return RetryPolicy{Interval: 2 * time.Second}
}

// MobilePolicy polls every two seconds and gives up after two minutes,
// surfacing TimedOut rather than holding a foreground app open.
func MobilePolicy() RetryPolicy {
	return RetryPolicy{Interval: 2 * time.Second, Deadline: 120 * time.Second}
}

// Result is the terminal outcome of one orchestrated operation.
type Result struct {
	Hash        string
	State       State
	ExplorerURL string
}

// SwapResult extends Result with the amounts the fee split produced.
type SwapResult struct {
	Result
	Fee          *big.Int
	SwapAmount   *big.Int
	AmountOutMin *big.Int
}

// Orchestrator runs one wallet operation at a time per session.
type Orchestrator struct {
	transport wallet.Transport
	sess      *session.Session
	log       *zap.Logger
	policy    RetryPolicy
	onState   func(State)

	mu    sync.Mutex
	state State
}

func New(t wallet.Transport, sess *session.Session, log *zap.Logger, policy RetryPolicy) *Orchestrator {
	if policy.Interval <= 0 {
		policy.Interval = 2 * time.Second
	}
	return &Orchestrator{
		transport: t,
		sess:      sess,
		log:       log,
		policy:    policy,
		state:     Idle,
	}
}

// OnStateChange registers a listener for step transitions. Must be set
// before the first operation starts.
func (o *Orchestrator) OnStateChange(fn func(State)) {
	o.onState = fn
}

// State returns the current position, or the last terminal outcome when
// no operation is in flight.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// ExecuteSwap runs the full swap flow for an intent against a quote the
// caller already fetched. The gross input splits into fee and swap
// amount first; the swap is never submitted unless the fee transfer
// confirmed.
func (o *Orchestrator) ExecuteSwap(ctx context.Context, intent types.SwapIntent, q types.Quote) (*SwapResult, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}

	profile, err := registry.ResolveChain(intent.Chain)
	if err != nil {
		return nil, o.fail(err)
	}
	tokenIn, err := registry.ResolveToken(intent.Chain, intent.TokenIn)
	if err != nil {
		return nil, o.fail(err)
	}
	tokenOut, err := registry.ResolveToken(intent.Chain, intent.TokenOut)
	if err != nil {
		return nil, o.fail(err)
	}
	gross, err := codec.ToSmallestUnit(intent.AmountIn, tokenIn.Decimals)
	if err != nil {
		return nil, o.fail(err)
	}
	if gross.Sign() <= 0 {
		return nil, o.fail(errors.Wrap(apperrors.ErrInvalidInput, "amount must be positive"))
	}
	adapter, err := dex.ForChain(profile)
	if err != nil {
		return nil, o.fail(err)
	}

	fee, swapAmount := fees.Split(gross)
	outMin := fees.AmountOutMin(q.AmountOut, intent.SlippageBps)
	deadline := fees.Deadline(intent.DeadlineOffset)

	if profile.EVM() {
		if err := o.transport.EnsureChain(ctx, profile.ChainID); err != nil {
			return nil, o.fail(errors.Wrap(err, "ensure chain"))
		}
	}

	res := &SwapResult{Fee: fee, SwapAmount: swapAmount, AmountOutMin: outMin}

	// Approve the router for the swap amount when the current allowance
	// does not cover it. The fee moves by direct transfer and needs none.
	// Approving is only announced when an approval actually goes out; a
	// covered allowance or a native input jumps straight to the fee step.
	if target := adapter.ApprovalTarget(profile); target != "" && !tokenIn.Native() {
		granted, err := dex.Allowance(ctx, o.transport, tokenIn, intent.Recipient, target)
		if err != nil {
			return nil, o.fail(errors.Wrap(err, "allowance check"))
		}
		if granted.Cmp(swapAmount) < 0 {
			o.setState(Approving)
			tx, err := dex.BuildApprove(profile, tokenIn, intent.Recipient, target, swapAmount)
			if err != nil {
				return nil, o.fail(err)
			}
			if _, err := o.submitAndPoll(ctx, profile, types.TxApprove, tx); err != nil {
				if errors.Is(err, wallet.ErrRejected) {
					return nil, o.fail(apperrors.ErrApprovalRejected)
				}
				return nil, o.fail(errors.Wrap(err, "approve"))
			}
		}
	}

	o.setState(FeeTransferring)
	if fee.Sign() > 0 {
		tx, err := dex.BuildFeeTransfer(profile, tokenIn, intent.Recipient, fee)
		if err != nil {
			return nil, o.fail(errors.Wrap(apperrors.ErrFeeTransferFailed, err.Error()))
		}
		if _, err := o.submitAndPoll(ctx, profile, types.TxFeeTransfer, tx); err != nil {
			return nil, o.fail(errors.Wrap(apperrors.ErrFeeTransferFailed, err.Error()))
		}
	}

	o.setState(Submitting)
	swapTx, err := adapter.BuildSwap(dex.SwapParams{
		Profile:      profile,
		TokenIn:      tokenIn,
		TokenOut:     tokenOut,
		Sender:       intent.Recipient,
		Recipient:    intent.Recipient,
		AmountIn:     swapAmount,
		AmountOutMin: outMin,
		FeeBps:       q.FeeBps,
		Deadline:     deadline,
	})
	if err != nil {
		return nil, o.fail(err)
	}
	hash, err := o.submit(ctx, profile, types.TxSwap, swapTx)
	if err != nil {
		if errors.Is(err, wallet.ErrRejected) {
			return nil, o.fail(apperrors.ErrSwapRejected)
		}
		return nil, o.fail(errors.Wrap(err, "submit swap"))
	}
	res.Hash = hash
	res.ExplorerURL = profile.ExplorerTxURL(hash)

	o.setState(Polling)
	final, err := o.poll(ctx, hash)
	res.State = final
	o.setState(final)
	if err != nil {
		return res, err
	}
	return res, nil
}

// begin claims the single operation slot.
func (o *Orchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch o.state {
	case Idle, Confirmed, Failed, TimedOut:
		o.state = Idle
		return nil
	default:
		return apperrors.ErrOperationActive
	}
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
	if o.onState != nil {
		o.onState(s)
	}
}

// fail records the terminal state and passes the error through.
func (o *Orchestrator) fail(err error) error {
	o.setState(Failed)
	return err
}

// submit sends one transaction behind the session's wallet-action
// guard and records it for this run.
func (o *Orchestrator) submit(ctx context.Context, profile *registry.ChainProfile, kind types.TxKind, tx wallet.TxRequest) (string, error) {
	o.sess.BeginWalletAction()
	defer o.sess.EndWalletAction()

	hash, err := o.transport.SendTransaction(ctx, tx)
	if err != nil {
		return "", err
	}
	o.log.Info("transaction submitted",
		zap.String("kind", kind.String()),
		zap.String("chain", profile.ID),
		zap.String("hash", hash))
	o.sess.Track(types.PendingTransaction{
		Hash:        hash,
		Kind:        kind,
		Chain:       profile.ID,
		SubmittedAt: time.Now(),
		State:       types.TxPending,
	})
	return hash, nil
}

// submitAndPoll runs an intermediate step to a confirmed receipt. A
// revert or timeout fails the whole operation.
func (o *Orchestrator) submitAndPoll(ctx context.Context, profile *registry.ChainProfile, kind types.TxKind, tx wallet.TxRequest) (string, error) {
	hash, err := o.submit(ctx, profile, kind, tx)
	if err != nil {
		return "", err
	}
	final, err := o.poll(ctx, hash)
	if err != nil {
		return hash, err
	}
	if final != Confirmed {
		return hash, errors.Wrapf(apperrors.ErrTransactionReverted, "%s %s", kind, hash)
	}
	return hash, nil
}

// poll watches a hash until its receipt is terminal or the policy
// deadline passes. Transient status errors are retried on the next tick.
func (o *Orchestrator) poll(ctx context.Context, hash string) (State, error) {
	ticker := time.NewTicker(o.policy.Interval)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if o.policy.Deadline > 0 {
		timer := time.NewTimer(o.policy.Deadline)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return TimedOut, errors.Wrap(apperrors.ErrWalletTimeout, ctx.Err().Error())
		case <-deadline:
			o.sess.Resolve(hash, types.TxTimedOut)
			return TimedOut, errors.Wrapf(apperrors.ErrWalletTimeout, "no receipt for %s within %s", hash, o.policy.Deadline)
		case <-ticker.C:
			status, err := o.transport.TransactionStatus(ctx, hash)
			if err != nil {
				o.log.Debug("status poll failed", zap.String("hash", hash), zap.Error(err))
				continue
			}
			switch status {
			case wallet.StatusConfirmed:
				o.sess.Resolve(hash, types.TxConfirmed)
				return Confirmed, nil
			case wallet.StatusReverted:
				o.sess.Resolve(hash, types.TxFailed)
				return Failed, errors.Wrapf(apperrors.ErrTransactionReverted, "%s", hash)
			}
		}
	}
}
