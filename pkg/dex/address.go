package dex

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/mr-tron/base58"
	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
)

const tronAddressPrefix = 0x41

// parseAddress accepts the two address encodings the EVM-shaped
// families use: 0x-prefixed hex, and TRON base58check (0x41 + 20 bytes
// + 4 checksum bytes). Both resolve to the same 20-byte form the ABI
// encoder needs. Checksum enforcement stays with the signing wallet.
func parseAddress(raw string) (common.Address, error) {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		if !common.IsHexAddress(raw) {
			return common.Address{}, errors.Wrapf(apperrors.ErrInvalidInput, "address %q", raw)
		}
		return common.HexToAddress(raw), nil
	}

	decoded, err := base58.Decode(raw)
	if err != nil {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidInput, "address %q", raw)
	}
	if len(decoded) != 25 || decoded[0] != tronAddressPrefix {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidInput, "address %q", raw)
	}
	return common.BytesToAddress(decoded[1:21]), nil
}
