// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-chain-keeper/models"
	"github.com/go-resty/resty/v2"
)

// RPCClientConfig configures [NewRPCAdapter].
type RPCClientConfig struct {
	Endpoint string
	Timeout  time.Duration
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      uint64 `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

type rpcAdapter struct {
	client *resty.Client
	nextID atomic.Uint64

	mu       sync.RWMutex
	endpoint string
}

// NewRPCAdapter builds a JSON-RPC 2.0 [ChainAdapter] over HTTP.
func NewRPCAdapter(cfg RPCClientConfig) ChainAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &rpcAdapter{client: cli, endpoint: strings.TrimSpace(cfg.Endpoint)}
}

func (r *rpcAdapter) SetEndpoint(rpcURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endpoint = strings.TrimSpace(rpcURL)
}

func (r *rpcAdapter) Endpoint() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.endpoint
}

func (r *rpcAdapter) ChainID(ctx context.Context) (uint64, error) {
	var quantity string
	if err := r.call(ctx, "eth_chainId", &quantity); err != nil {
		return 0, err
	}
	return parseUint64Quantity(quantity)
}

func (r *rpcAdapter) BlockNumber(ctx context.Context) (uint64, error) {
	var quantity string
	if err := r.call(ctx, "eth_blockNumber", &quantity); err != nil {
		return 0, err
	}
	return parseUint64Quantity(quantity)
}

func (r *rpcAdapter) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	var quantity string
	if err := r.call(ctx, "eth_getBalance", &quantity, address, "latest"); err != nil {
		return nil, err
	}
	return ParseBigQuantity(quantity)
}

func (r *rpcAdapter) TransactionReceipt(ctx context.Context, txHash string) (*models.Receipt, error) {
	var receipt *models.Receipt
	if err := r.call(ctx, "eth_getTransactionReceipt", &receipt, txHash); err != nil {
		return nil, err
	}
	return receipt, nil
}

// call performs one JSON-RPC request and decodes its result into out.
func (r *rpcAdapter) call(ctx context.Context, method string, out any, params ...any) error {
	endpoint := r.Endpoint()
	if endpoint == "" {
		return ErrNoEndpoint
	}
	if params == nil {
		params = []any{}
	}

	req := rpcRequest{
		JSONRPC: "2.0",
		ID:      r.nextID.Add(1),
		Method:  method,
		Params:  params,
	}

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		Post(endpoint)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var rpcResp rpcResponse
	if err = json.Unmarshal(resp.Body(), &rpcResp); err != nil {
		return &DecodeError{Body: resp.Body(), Err: err}
	}
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if err = json.Unmarshal(rpcResp.Result, out); err != nil {
		return &DecodeError{Body: rpcResp.Result, Err: err}
	}

	return nil
}

func parseUint64Quantity(q string) (uint64, error) {
	digits, ok := strings.CutPrefix(q, "0x")
	if !ok || digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrBadQuantity, q)
	}
	v, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBadQuantity, err)
	}
	return v, nil
}

// ParseBigQuantity decodes a JSON-RPC hex quantity such as "0x1bc16d674ec80000".
func ParseBigQuantity(q string) (*big.Int, error) {
	digits, ok := strings.CutPrefix(q, "0x")
	if !ok || digits == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadQuantity, q)
	}
	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadQuantity, q)
	}
	return v, nil
}
