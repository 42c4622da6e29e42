package dex

import (
	"context"
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/calldata"
	"dexswap/pkg/registry"
	"dexswap/pkg/wallet"
)

// ImportToken reads name, symbol and decimals from a token contract and
// returns a descriptor callers can merge into the chain's token table.
// Only EVM-shaped chains are supported; NEO tokens ship in the built-in
// tables.
func ImportToken(ctx context.Context, t wallet.Transport, profile *registry.ChainProfile, address string) (registry.TokenDescriptor, error) {
	if profile.Family == registry.NEP17Style {
		return registry.TokenDescriptor{}, errors.Wrap(apperrors.ErrUnsupportedToken, "token import on neo")
	}
	if _, err := parseAddress(address); err != nil {
		return registry.TokenDescriptor{}, err
	}

	name, err := callString(ctx, t, address, calldata.TokenName())
	if err != nil {
		return registry.TokenDescriptor{}, errors.Wrap(err, "name")
	}
	symbol, err := callString(ctx, t, address, calldata.TokenSymbol())
	if err != nil {
		return registry.TokenDescriptor{}, errors.Wrap(err, "symbol")
	}
	raw, err := t.Call(ctx, address, calldata.TokenDecimals())
	if err != nil {
		return registry.TokenDescriptor{}, errors.Wrap(err, "decimals")
	}
	decimals, err := decodeUint8(raw)
	if err != nil {
		return registry.TokenDescriptor{}, errors.Wrap(err, "decimals")
	}

	return registry.TokenDescriptor{
		Symbol:   symbol,
		Name:     name,
		Address:  address,
		Decimals: decimals,
	}, nil
}

func callString(ctx context.Context, t wallet.Transport, to, data string) (string, error) {
	raw, err := t.Call(ctx, to, data)
	if err != nil {
		return "", err
	}
	return decodeString(raw)
}

// decodeString handles the standard dynamic-string return (offset,
// length, bytes) and the legacy bytes32 form some older tokens use.
func decodeString(raw string) (string, error) {
	buf, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "malformed call result")
	}
	if len(buf) == 32 {
		return string(trimRightZeros(buf)), nil
	}
	if len(buf) < 64 {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "call result too short")
	}
	offset := new(big.Int).SetBytes(buf[:32])
	if !offset.IsInt64() || offset.Int64()+32 > int64(len(buf)) {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "string offset out of range")
	}
	start := offset.Int64()
	length := new(big.Int).SetBytes(buf[start : start+32])
	if !length.IsInt64() || start+32+length.Int64() > int64(len(buf)) {
		return "", errors.Wrap(apperrors.ErrInvalidInput, "string length out of range")
	}
	return string(buf[start+32 : start+32+length.Int64()]), nil
}

func decodeUint8(raw string) (uint8, error) {
	buf, err := hex.DecodeString(strings.TrimPrefix(raw, "0x"))
	if err != nil || len(buf) < 32 {
		return 0, errors.Wrap(apperrors.ErrInvalidInput, "malformed call result")
	}
	v := new(big.Int).SetBytes(buf[:32])
	if !v.IsUint64() || v.Uint64() > 255 {
		return 0, errors.Wrap(apperrors.ErrInvalidInput, "decimals out of range")
	}
	return uint8(v.Uint64()), nil
}

func trimRightZeros(b []byte) []byte {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return b[:end]
}
