// Package codec implements the exact-integer formatting layer shared by
// every amount path: decimal to smallest-unit conversion, fixed-width hex
// padding and two's-complement tick encoding. No floating point is used
// here; approximate math lives in pkg/ticks only.
package codec

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
)

// WordBytes is the size of one ABI parameter slot.
const WordBytes = 32

var ten = big.NewInt(10)

// ToSmallestUnit converts a human-entered decimal amount into smallest
// units for the given token decimals. Fractional digits beyond decimals
// are truncated, never rounded.
func ToSmallestUnit(amount string, decimals uint8) (*big.Int, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, errors.Wrap(apperrors.ErrInvalidInput, "empty amount")
	}

	intPart := amount
	fracPart := ""
	if i := strings.IndexByte(amount, '.'); i >= 0 {
		intPart = amount[:i]
		fracPart = amount[i+1:]
		if strings.IndexByte(fracPart, '.') >= 0 {
			return nil, errors.Wrapf(apperrors.ErrInvalidInput, "malformed amount %q", amount)
		}
	}
	if intPart == "" {
		intPart = "0"
	}
	if !isDigits(intPart) || (fracPart != "" && !isDigits(fracPart)) {
		return nil, errors.Wrapf(apperrors.ErrInvalidInput, "malformed amount %q", amount)
	}

	// Truncate the fraction to the token's precision.
	if len(fracPart) > int(decimals) {
		fracPart = fracPart[:decimals]
	}

	result, ok := new(big.Int).SetString(intPart, 10)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrInvalidInput, "malformed amount %q", amount)
	}
	scale := new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil)
	result.Mul(result, scale)

	if fracPart != "" {
		frac, ok := new(big.Int).SetString(fracPart, 10)
		if !ok {
			return nil, errors.Wrapf(apperrors.ErrInvalidInput, "malformed amount %q", amount)
		}
		// Scale the fraction up by the digits it is missing.
		pad := new(big.Int).Exp(ten, big.NewInt(int64(int(decimals)-len(fracPart))), nil)
		result.Add(result, frac.Mul(frac, pad))
	}

	return result, nil
}

// FromSmallestUnit renders a smallest-unit value as an exact decimal
// string at the given decimals, with trailing fractional zeros trimmed.
func FromSmallestUnit(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	s := v.String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	d := int(decimals)
	if len(s) <= d {
		s = strings.Repeat("0", d-len(s)+1) + s
	}
	intPart := s[:len(s)-d]
	fracPart := strings.TrimRight(s[len(s)-d:], "0")

	out := intPart
	if fracPart != "" {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

// FormatAmount renders a smallest-unit value for display, with precision
// scaled to the magnitude of the number.
func FormatAmount(v *big.Int, decimals uint8) string {
	if v == nil {
		return "0"
	}
	f := new(big.Float).SetInt(v)
	scale := new(big.Float).SetInt(new(big.Int).Exp(ten, big.NewInt(int64(decimals)), nil))
	f.Quo(f, scale)

	val, _ := f.Float64()
	switch {
	case val != 0 && val < 0.0001:
		return fmt.Sprintf("%.8f", val)
	case val < 1:
		return fmt.Sprintf("%.6f", val)
	case val < 100:
		return fmt.Sprintf("%.4f", val)
	default:
		return fmt.Sprintf("%.2f", val)
	}
}

// PadHex left-pads the value to byteWidth bytes of hex (no 0x prefix).
func PadHex(v *big.Int, byteWidth int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "pad hex")
	}
	s := v.Text(16)
	if len(s) > byteWidth*2 {
		return "", errors.Wrapf(apperrors.ErrOverflow, "%s does not fit %d bytes", s, byteWidth)
	}
	return strings.Repeat("0", byteWidth*2-len(s)) + s, nil
}

// Word encodes an unsigned value as one 32-byte ABI slot in hex.
// Fails with ErrOverflow if the value does not fit 256 bits.
func Word(v *big.Int) (string, error) {
	if v == nil || v.Sign() < 0 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "word encode")
	}
	u, overflow := uint256.FromBig(v)
	if overflow {
		return "", errors.Wrap(apperrors.ErrOverflow, "word encode")
	}
	b := u.Bytes32()
	return hex.EncodeToString(b[:]), nil
}

// EncodeSignedTick encodes a tick as one 32-byte word using
// two's-complement over the 256-bit field: negative ticks become
// 2^256 + tick, which is the sign extension the target contracts expect
// for int24 parameters.
func EncodeSignedTick(tick int32) string {
	u := uint256.NewInt(uint64(abs64(int64(tick))))
	if tick < 0 {
		u.Neg(u)
	}
	b := u.Bytes32()
	return hex.EncodeToString(b[:])
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
