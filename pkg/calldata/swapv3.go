package calldata

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

// ExactInputSingleParams mirrors the V3 router's single-hop swap tuple.
// All eight fields are static, so the tuple is encoded inline.
type ExactInputSingleParams struct {
	TokenIn           common.Address
	TokenOut          common.Address
	FeeBps            uint32 // uint24 on the wire
	Recipient         common.Address
	Deadline          *big.Int
	AmountIn          *big.Int
	AmountOutMinimum  *big.Int
	SqrtPriceLimitX96 *big.Int
}

// ExactInputSingle encodes exactInputSingle(params). Field order on the
// wire: tokenIn, tokenOut, fee, recipient, deadline, amountIn,
// amountOutMinimum, sqrtPriceLimitX96.
func ExactInputSingle(p ExactInputSingleParams) (string, error) {
	deadline, err := wordUint(p.Deadline)
	if err != nil {
		return "", errors.Wrap(err, "deadline")
	}
	amountIn, err := wordUint(p.AmountIn)
	if err != nil {
		return "", errors.Wrap(err, "amountIn")
	}
	amountOutMin, err := wordUint(p.AmountOutMinimum)
	if err != nil {
		return "", errors.Wrap(err, "amountOutMinimum")
	}
	limit := p.SqrtPriceLimitX96
	if limit == nil {
		limit = new(big.Int)
	}
	sqrtLimit, err := wordUint(limit)
	if err != nil {
		return "", errors.Wrap(err, "sqrtPriceLimitX96")
	}

	return encode(selExactInputSingle,
		wordAddress(p.TokenIn),
		wordAddress(p.TokenOut),
		wordUint64(uint64(p.FeeBps)),
		wordAddress(p.Recipient),
		deadline,
		amountIn,
		amountOutMin,
		sqrtLimit,
	), nil
}
