// Package quote talks to the external price/quote service. Price tables
// are cached for a short window per chain; individual swap quotes are
// never cached, so a stale quote can never feed the slippage bound.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"dexswap/pkg/apperrors"
	"dexswap/pkg/codec"
	"dexswap/pkg/types"
)

const (
	priceCacheTTL  = 30 * time.Second
	priceCacheSize = 16 // one entry per supported chain is plenty
	requestTimeout = 10 * time.Second
)

// PriceTable is the snapshot answer of the prices action for one chain.
type PriceTable struct {
	Prices map[string]float64 `json:"prices"`
	Tokens map[string]string  `json:"tokens"`
}

// Client is the HTTP quote client. Safe for concurrent use.
type Client struct {
	endpoint string
	httpc    *http.Client
	log      *zap.Logger
	prices   *expirable.LRU[string, PriceTable]
}

// New creates a quote client for the given service endpoint.
func New(endpoint string, log *zap.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		httpc:    &http.Client{Timeout: requestTimeout},
		log:      log,
		prices:   expirable.NewLRU[string, PriceTable](priceCacheSize, nil, priceCacheTTL),
	}
}

type quoteRequest struct {
	Action   string `json:"action"`
	TokenIn  string `json:"tokenIn,omitempty"`
	TokenOut string `json:"tokenOut,omitempty"`
	AmountIn string `json:"amountIn,omitempty"`
	Chain    string `json:"chain,omitempty"`
}

type quoteResponse struct {
	AmountOut   string `json:"amountOut"`
	Fee         uint32 `json:"fee"`
	Route       string `json:"route"`
	DecimalsOut uint8  `json:"decimalsOut"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// PriceTable returns the current price table for a chain, served from the
// 30-second cache when warm.
func (c *Client) PriceTable(ctx context.Context, chain string) (PriceTable, error) {
	if table, ok := c.prices.Get(chain); ok {
		return table, nil
	}

	var table PriceTable
	if err := c.post(ctx, quoteRequest{Action: "prices", Chain: chain}, &table); err != nil {
		return PriceTable{}, err
	}
	c.prices.Add(chain, table)
	return table, nil
}

// FetchQuote requests a swap quote. amountIn is already in smallest
// units; the human-entered amount must be converted before this call.
// A failed fetch means "cannot submit swap", never a zero quote.
func (c *Client) FetchQuote(ctx context.Context, tokenIn, tokenOut string, amountIn *big.Int, chain string) (*types.Quote, error) {
	if amountIn == nil || amountIn.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidInput, "quote amount")
	}

	var resp quoteResponse
	req := quoteRequest{
		Action:   "quote",
		TokenIn:  tokenIn,
		TokenOut: tokenOut,
		AmountIn: amountIn.String(),
		Chain:    chain,
	}
	if err := c.post(ctx, req, &resp); err != nil {
		return nil, err
	}

	// The service reports amountOut at decimalsOut precision.
	amountOut, err := codec.ToSmallestUnit(resp.AmountOut, resp.DecimalsOut)
	if err != nil {
		return nil, errors.Wrapf(apperrors.ErrQuoteUnavailable, "bad amountOut %q", resp.AmountOut)
	}

	c.log.Debug("quote received",
		zap.String("tokenIn", tokenIn),
		zap.String("tokenOut", tokenOut),
		zap.String("amountOut", amountOut.String()),
		zap.String("route", resp.Route))

	return &types.Quote{
		AmountOut:   amountOut,
		FeeBps:      resp.Fee,
		Route:       resp.Route,
		DecimalsOut: resp.DecimalsOut,
		Source:      c.endpoint,
	}, nil
}

func (c *Client) post(ctx context.Context, body quoteRequest, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return errors.Wrap(apperrors.ErrQuoteUnavailable, err.Error())
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(apperrors.ErrQuoteUnavailable, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the service's own message when it sent one.
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return errors.Wrapf(apperrors.ErrQuoteUnavailable, "status %d: %s", resp.StatusCode, e.Error)
		}
		return errors.Wrapf(apperrors.ErrQuoteUnavailable, "status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(apperrors.ErrQuoteUnavailable, "malformed response")
	}
	return nil
}
