package orchestrator

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/dex"
	"dexswap/pkg/fees"
	"dexswap/pkg/registry"
	"dexswap/pkg/types"
	"dexswap/pkg/wallet"
)

// ExecuteMint opens a new liquidity position. Both pool tokens are
// approved for the position manager as needed; no protocol fee applies
// to liquidity operations.
func (o *Orchestrator) ExecuteMint(ctx context.Context, req dex.MintRequest) (*Result, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}
	if req.Profile.EVM() {
		if err := o.transport.EnsureChain(ctx, req.Profile.ChainID); err != nil {
			return nil, o.fail(errors.Wrap(err, "ensure chain"))
		}
	}

	o.setState(Approving)
	approvals := []struct {
		token  registry.TokenDescriptor
		amount *big.Int
	}{
		{req.TokenA, req.AmountADesired},
		{req.TokenB, req.AmountBDesired},
	}
	for _, a := range approvals {
		if a.token.Native() || a.amount == nil || a.amount.Sign() == 0 {
			continue
		}
		granted, err := dex.Allowance(ctx, o.transport, a.token, req.Sender, req.Profile.PositionMgr)
		if err != nil {
			return nil, o.fail(errors.Wrapf(err, "allowance %s", a.token.Symbol))
		}
		if granted.Cmp(a.amount) >= 0 {
			continue
		}
		tx, err := dex.BuildApprove(req.Profile, a.token, req.Sender, req.Profile.PositionMgr, a.amount)
		if err != nil {
			return nil, o.fail(err)
		}
		if _, err := o.submitAndPoll(ctx, req.Profile, types.TxApprove, tx); err != nil {
			if errors.Is(err, wallet.ErrRejected) {
				return nil, o.fail(apperrors.ErrApprovalRejected)
			}
			return nil, o.fail(errors.Wrapf(err, "approve %s", a.token.Symbol))
		}
	}

	tx, err := dex.BuildMint(req)
	if err != nil {
		return nil, o.fail(err)
	}
	return o.run(ctx, req.Profile, types.TxMint, tx)
}

// IncreaseLiquidity adds to an existing position.
func (o *Orchestrator) IncreaseLiquidity(ctx context.Context, chain, sender string, tokenID, amount0, amount1, amount0Min, amount1Min *big.Int, deadlineOffset time.Duration) (*Result, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}
	profile, tx, err := o.positionTx(ctx, chain, func(p *registry.ChainProfile) (wallet.TxRequest, error) {
		return dex.BuildIncrease(p, sender, tokenID, amount0, amount1, amount0Min, amount1Min, fees.Deadline(deadlineOffset))
	})
	if err != nil {
		return nil, err
	}
	return o.run(ctx, profile, types.TxIncreaseLiquidity, tx)
}

// DecreaseLiquidity withdraws part or all of a position's liquidity.
func (o *Orchestrator) DecreaseLiquidity(ctx context.Context, chain, sender string, tokenID, liquidity, amount0Min, amount1Min *big.Int, deadlineOffset time.Duration) (*Result, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}
	profile, tx, err := o.positionTx(ctx, chain, func(p *registry.ChainProfile) (wallet.TxRequest, error) {
		return dex.BuildDecrease(p, sender, tokenID, liquidity, amount0Min, amount1Min, fees.Deadline(deadlineOffset))
	})
	if err != nil {
		return nil, err
	}
	return o.run(ctx, profile, types.TxDecreaseLiquidity, tx)
}

// CollectFees sweeps accrued fees from a position to the recipient.
func (o *Orchestrator) CollectFees(ctx context.Context, chain, sender, recipient string, tokenID *big.Int) (*Result, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}
	profile, tx, err := o.positionTx(ctx, chain, func(p *registry.ChainProfile) (wallet.TxRequest, error) {
		return dex.BuildCollect(p, sender, recipient, tokenID)
	})
	if err != nil {
		return nil, err
	}
	return o.run(ctx, profile, types.TxCollect, tx)
}

// positionTx resolves the chain and builds a position-manager call,
// switching the wallet first where the transport supports it.
func (o *Orchestrator) positionTx(ctx context.Context, chain string, build func(*registry.ChainProfile) (wallet.TxRequest, error)) (*registry.ChainProfile, wallet.TxRequest, error) {
	profile, err := registry.ResolveChain(chain)
	if err != nil {
		return nil, wallet.TxRequest{}, o.fail(err)
	}
	if profile.EVM() {
		if err := o.transport.EnsureChain(ctx, profile.ChainID); err != nil {
			return nil, wallet.TxRequest{}, o.fail(errors.Wrap(err, "ensure chain"))
		}
	}
	tx, err := build(profile)
	if err != nil {
		return nil, wallet.TxRequest{}, o.fail(err)
	}
	return profile, tx, nil
}

// run submits the main transaction of an operation and polls it to a
// terminal state.
func (o *Orchestrator) run(ctx context.Context, profile *registry.ChainProfile, kind types.TxKind, tx wallet.TxRequest) (*Result, error) {
	o.setState(Submitting)
	hash, err := o.submit(ctx, profile, kind, tx)
	if err != nil {
		if errors.Is(err, wallet.ErrRejected) {
			return nil, o.fail(apperrors.ErrSwapRejected)
		}
		return nil, o.fail(errors.Wrapf(err, "submit %s", kind))
	}
	res := &Result{Hash: hash, ExplorerURL: profile.ExplorerTxURL(hash)}

	o.setState(Polling)
	final, err := o.poll(ctx, hash)
	res.State = final
	o.setState(final)
	if err != nil {
		return res, err
	}
	return res, nil
}
