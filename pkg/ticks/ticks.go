// Package ticks maps UI price ranges onto the discrete tick grid of
// concentrated-liquidity AMMs. Prices here are UI-approximate, so this is
// the one place floating point is allowed; the resulting ticks are exact
// integers by the time they reach the call builder.
package ticks

import "math"

const (
	// MinTick and MaxTick bound the usable tick range; price = 1.0001^tick.
	MinTick int32 = -887272
	MaxTick int32 = 887272

	logBase = 1.0001
)

// PriceToTick returns floor(ln(price)/ln(1.0001)), clamped to the
// protocol bounds. Non-positive prices clamp to MinTick.
func PriceToTick(price float64) int32 {
	if price <= 0 {
		return MinTick
	}
	tick := math.Floor(math.Log(price) / math.Log(logBase))
	if tick < float64(MinTick) {
		return MinTick
	}
	if tick > float64(MaxTick) {
		return MaxTick
	}
	return int32(tick)
}

// RoundTick rounds a tick to the nearest multiple of spacing, then nudges
// one spacing unit in the requested direction if rounding crossed the raw
// tick the wrong way: lower bounds must round down, upper bounds up. The
// result stays within the protocol bounds and remains a spacing multiple.
func RoundTick(tick int32, spacing uint32, roundUp bool) int32 {
	s := int64(spacing)
	if s <= 0 {
		return tick
	}

	rounded := int64(math.Round(float64(tick)/float64(s))) * s
	if roundUp && rounded < int64(tick) {
		rounded += s
	}
	if !roundUp && rounded > int64(tick) {
		rounded -= s
	}

	// Clamp to the outermost usable multiples.
	maxUsable := (int64(MaxTick) / s) * s
	minUsable := (int64(MinTick) / s) * s
	if rounded > maxUsable {
		rounded = maxUsable
	}
	if rounded < minUsable {
		rounded = minUsable
	}
	return int32(rounded)
}

// binOffset is the id of the 1:1 price bin in Liquidity-Book pairs.
const binOffset = 1 << 23

// TickToBin translates a v3-style tick into the bin id of a bin-style
// AMM with the given bin step (in basis points). Both grids are
// geometric: 1.0001^tick = (1 + binStep/10000)^(id - 2^23).
func TickToBin(tick int32, binStepBps uint32) uint32 {
	if binStepBps == 0 {
		return binOffset
	}
	perBin := math.Log(1+float64(binStepBps)/10000) / math.Log(logBase)
	rel := math.Round(float64(tick) / perBin)
	return uint32(int64(binOffset) + int64(rel))
}

// BinToTick is the inverse translation, back onto the 1.0001 grid.
func BinToTick(binID uint32, binStepBps uint32) int32 {
	perBin := math.Log(1+float64(binStepBps)/10000) / math.Log(logBase)
	rel := int64(binID) - binOffset
	return int32(math.Round(float64(rel) * perBin))
}
