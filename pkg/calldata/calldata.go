// Package calldata hand-encodes the contract calls this system submits:
// a 4-byte keccak selector followed by 32-byte-aligned parameters. No
// contract-binding layer sits between these builders and the wire; given
// identical inputs the output is byte-identical, which is what makes the
// golden-fixture tests in this package meaningful.
//
// The builders encode exactly what they are given. Token ordering for
// position-manager calls (token0 < token1) is the caller's job, and the
// amount/min pairs must be swapped in lock-step with the addresses.
package calldata

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"dexswap/pkg/codec"
)

// Function selectors, derived from canonical signatures at init.
var (
	selApprove   = selector("approve(address,uint256)")
	selTransfer  = selector("transfer(address,uint256)")
	selBalanceOf = selector("balanceOf(address)")
	selAllowance = selector("allowance(address,address)")
	selName      = selector("name()")
	selSymbol    = selector("symbol()")
	selDecimals  = selector("decimals()")

	selExactInputSingle = selector("exactInputSingle((address,address,uint24,address,uint256,uint256,uint256,uint160))")

	selSwapExactTokensForTokens = selector("swapExactTokensForTokens(uint256,uint256,address[],address,uint256)")
	selSwapExactETHForTokens    = selector("swapExactETHForTokens(uint256,address[],address,uint256)")
	selSwapExactTokensForETH    = selector("swapExactTokensForETH(uint256,uint256,address[],address,uint256)")

	selMint              = selector("mint((address,address,uint24,int24,int24,uint256,uint256,uint256,uint256,address,uint256))")
	selIncreaseLiquidity = selector("increaseLiquidity((uint256,uint256,uint256,uint256,uint256,uint256))")
	selDecreaseLiquidity = selector("decreaseLiquidity((uint256,uint128,uint256,uint256,uint256))")
	selCollect           = selector("collect((uint256,address,uint128,uint128))")

	selLBSwapExactTokensForTokens = selector("swapExactTokensForTokens(uint256,uint256,(uint256[],uint8[],address[]),address,uint256)")
)

func selector(sig string) [4]byte {
	h := crypto.Keccak256([]byte(sig))
	var s [4]byte
	copy(s[:], h[:4])
	return s
}

// encode joins a selector and 32-byte words into the outbound hex form.
func encode(sel [4]byte, words ...string) string {
	var b strings.Builder
	b.Grow(2 + 8 + 64*len(words))
	b.WriteString("0x")
	b.WriteString(hex.EncodeToString(sel[:]))
	for _, w := range words {
		b.WriteString(w)
	}
	return b.String()
}

func wordAddress(a common.Address) string {
	return strings.Repeat("0", 24) + hex.EncodeToString(a.Bytes())
}

func wordUint(v *big.Int) (string, error) {
	return codec.Word(v)
}

func wordUint64(v uint64) string {
	w, _ := codec.Word(new(big.Int).SetUint64(v))
	return w
}

func wordTick(t int32) string {
	return codec.EncodeSignedTick(t)
}

// offsetWord encodes a head/tail offset measured in words from the start
// of the parameter block.
func offsetWord(words int) string {
	return wordUint64(uint64(words * codec.WordBytes))
}
