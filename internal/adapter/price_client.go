// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

const (
	defaultPriceBaseURL = "https://api.coingecko.com/api/v3"
	headerPriceAPIKey   = "x-cg-demo-api-key"
)

// PriceClientConfig configures [NewPriceAdapter].
type PriceClientConfig struct {
	BaseURL string
	APIKey  string
	// RequireKey makes USDPrice fail with ErrAPIKeyMissing when APIKey is
	// empty instead of calling the keyless public tier.
	RequireKey bool
	Timeout    time.Duration
	// MinInterval is the minimum spacing between two outbound requests.
	MinInterval time.Duration
}

type priceAdapter struct {
	client     *resty.Client
	apiKey     string
	requireKey bool
	limiter    *rate.Limiter
}

// NewPriceAdapter builds a [PriceAdapter] for a CoinGecko-compatible
// /simple/price endpoint.
func NewPriceAdapter(cfg PriceClientConfig) PriceAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultPriceBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	return &priceAdapter{
		client:     cli,
		apiKey:     cfg.APIKey,
		requireKey: cfg.RequireKey,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func (p *priceAdapter) USDPrice(ctx context.Context, priceID string) (float64, error) {
	if p.requireKey && p.apiKey == "" {
		return 0, ErrAPIKeyMissing
	}
	if err := p.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("price rate limiter: %w", err)
	}

	req := p.client.R().
		SetContext(ctx).
		SetQueryParam("ids", priceID).
		SetQueryParam("vs_currencies", "usd")
	if p.apiKey != "" {
		req.SetHeader(headerPriceAPIKey, p.apiKey)
	}

	resp, err := req.Get("/simple/price")
	if err != nil {
		return 0, fmt.Errorf("price request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var prices map[string]map[string]float64
	if err = json.Unmarshal(resp.Body(), &prices); err != nil {
		return 0, &DecodeError{Body: resp.Body(), Err: err}
	}

	usd, ok := prices[priceID]["usd"]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrPriceNotFound, priceID)
	}
	return usd, nil
}
