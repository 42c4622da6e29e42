package dex

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/ticks"
	"dexswap/pkg/types"
	"dexswap/pkg/wallet"
)

// MintRequest is the resolved input to a new-position mint. Amounts are
// in smallest units and keyed by token A/B as the user entered them;
// BuildMint reorders onto the pool's token0/token1.
type MintRequest struct {
	Profile        *registry.ChainProfile
	TokenA         registry.TokenDescriptor
	TokenB         registry.TokenDescriptor
	FeeBps         uint32
	PriceLower     float64
	PriceUpper     float64
	AmountADesired *big.Int
	AmountBDesired *big.Int
	AmountAMin     *big.Int
	AmountBMin     *big.Int
	Sender         string
	Recipient      string
	Deadline       *big.Int
}

// RangeFor converts a UI price range into on-grid ticks for a fee tier.
// The lower bound rounds down and the upper rounds up, so the requested
// range is always covered.
func RangeFor(chain string, feeBps uint32, priceLower, priceUpper float64) (types.LiquidityRange, error) {
	if priceLower <= 0 || priceUpper <= priceLower {
		return types.LiquidityRange{}, errors.Wrap(apperrors.ErrInvalidInput, "price range")
	}
	spacing, err := registry.TickSpacingFor(chain, feeBps)
	if err != nil {
		return types.LiquidityRange{}, err
	}
	lower := ticks.RoundTick(ticks.PriceToTick(priceLower), spacing, false)
	upper := ticks.RoundTick(ticks.PriceToTick(priceUpper), spacing, true)
	if lower >= upper {
		upper = lower + int32(spacing)
	}
	return types.LiquidityRange{
		PriceLower: priceLower,
		PriceUpper: priceUpper,
		TickLower:  lower,
		TickUpper:  upper,
	}, nil
}

// BuildMint encodes a position-manager mint for concentrated-liquidity
// chains. Other families have no position manager.
func BuildMint(req MintRequest) (wallet.TxRequest, error) {
	if req.Profile.Family != registry.UniswapV3Style {
		return wallet.TxRequest{}, errors.Wrapf(apperrors.ErrUnsupportedChain, "no position manager on %s", req.Profile.ID)
	}
	rng, err := RangeFor(req.Profile.ID, req.FeeBps, req.PriceLower, req.PriceUpper)
	if err != nil {
		return wallet.TxRequest{}, err
	}

	token0, err := parseAddress(poolToken(req.Profile, req.TokenA))
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "tokenA")
	}
	token1, err := parseAddress(poolToken(req.Profile, req.TokenB))
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "tokenB")
	}
	recipient, err := parseAddress(req.Recipient)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "recipient")
	}

	p := calldata.MintParams{
		Token0:         token0,
		Token1:         token1,
		FeeBps:         req.FeeBps,
		TickLower:      rng.TickLower,
		TickUpper:      rng.TickUpper,
		Amount0Desired: req.AmountADesired,
		Amount1Desired: req.AmountBDesired,
		Amount0Min:     req.AmountAMin,
		Amount1Min:     req.AmountBMin,
		Recipient:      recipient,
		Deadline:       req.Deadline,
	}
	// The pool orders its pair by address; swap the amounts in lock-step
	// when the entered order disagrees.
	if strings.ToLower(token1.Hex()) < strings.ToLower(token0.Hex()) {
		p.Token0, p.Token1 = p.Token1, p.Token0
		p.Amount0Desired, p.Amount1Desired = p.Amount1Desired, p.Amount0Desired
		p.Amount0Min, p.Amount1Min = p.Amount1Min, p.Amount0Min
	}

	data, err := calldata.Mint(p)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{
		From: req.Sender,
		To:   req.Profile.PositionMgr,
		Data: data,
	}, nil
}

// BuildIncrease encodes increaseLiquidity on an existing position.
func BuildIncrease(profile *registry.ChainProfile, sender string, tokenID, amount0, amount1, amount0Min, amount1Min, deadline *big.Int) (wallet.TxRequest, error) {
	if profile.Family != registry.UniswapV3Style {
		return wallet.TxRequest{}, errors.Wrapf(apperrors.ErrUnsupportedChain, "no position manager on %s", profile.ID)
	}
	data, err := calldata.IncreaseLiquidity(tokenID, amount0, amount1, amount0Min, amount1Min, deadline)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{From: sender, To: profile.PositionMgr, Data: data}, nil
}

// BuildDecrease encodes decreaseLiquidity on an existing position.
func BuildDecrease(profile *registry.ChainProfile, sender string, tokenID, liquidity, amount0Min, amount1Min, deadline *big.Int) (wallet.TxRequest, error) {
	if profile.Family != registry.UniswapV3Style {
		return wallet.TxRequest{}, errors.Wrapf(apperrors.ErrUnsupportedChain, "no position manager on %s", profile.ID)
	}
	data, err := calldata.DecreaseLiquidity(tokenID, liquidity, amount0Min, amount1Min, deadline)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{From: sender, To: profile.PositionMgr, Data: data}, nil
}

// BuildCollect encodes a fee collect sweeping both sides in full.
func BuildCollect(profile *registry.ChainProfile, sender, recipient string, tokenID *big.Int) (wallet.TxRequest, error) {
	if profile.Family != registry.UniswapV3Style {
		return wallet.TxRequest{}, errors.Wrapf(apperrors.ErrUnsupportedChain, "no position manager on %s", profile.ID)
	}
	rcpt, err := parseAddress(recipient)
	if err != nil {
		return wallet.TxRequest{}, errors.Wrap(err, "recipient")
	}
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	data, err := calldata.Collect(tokenID, rcpt, max, max)
	if err != nil {
		return wallet.TxRequest{}, err
	}
	return wallet.TxRequest{From: sender, To: profile.PositionMgr, Data: data}, nil
}
