// Package parser turns the free-form phrase a user types into a swap
// intent. Token symbols are checked against the chain registry here,
// so an unknown symbol fails before any network work starts.
package parser

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/registry"
	"dexswap/pkg/types"
)

var amountPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// ParseSwapCommand accepts "<amount> <symbol> to <symbol>", with an
// optional leading "swap" and "for" as an alias for "to".
func ParseSwapCommand(command string) (*types.SwapIntent, error) {
	fields := strings.Fields(strings.ToUpper(command))
	if len(fields) > 0 && fields[0] == "SWAP" {
		fields = fields[1:]
	}
	if len(fields) != 4 || (fields[2] != "TO" && fields[2] != "FOR") {
		return nil, errors.Wrap(apperrors.ErrInvalidInput,
			`expected "<amount> <token> to <token>", e.g. "1 ETH to USDC"`)
	}

	amount, tokenIn, tokenOut := fields[0], fields[1], fields[3]
	if !amountPattern.MatchString(amount) {
		return nil, errors.Wrapf(apperrors.ErrInvalidInput, "amount %q", amount)
	}
	for _, symbol := range []string{tokenIn, tokenOut} {
		if !registry.KnownSymbol(symbol) {
			return nil, errors.Wrapf(apperrors.ErrUnsupportedToken, "%q on any supported chain", symbol)
		}
	}

	return &types.SwapIntent{
		AmountIn: amount,
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
	}, nil
}

// ValidateSwapIntent checks that an intent is complete enough to quote
// and execute. Chain and token membership are resolved later against
// the registry; this guards the fields the command line must supply.
func ValidateSwapIntent(intent *types.SwapIntent) error {
	switch {
	case intent.AmountIn == "":
		return errors.Wrap(apperrors.ErrInvalidInput, "amount missing")
	case intent.TokenIn == "" || intent.TokenOut == "":
		return errors.Wrap(apperrors.ErrInvalidInput, "token pair incomplete")
	case strings.EqualFold(intent.TokenIn, intent.TokenOut):
		return errors.Wrap(apperrors.ErrInvalidInput, "input and output tokens must differ")
	case intent.Recipient == "":
		return errors.Wrap(apperrors.ErrInvalidInput, "recipient address missing")
	}
	return nil
}
