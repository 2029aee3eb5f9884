// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/utils"
	"github.com/Freeman45/encrypted-Diary/models"
)

// Read calls are retried with fibonacci backoff; writes never are.
const (
	readRetryBase     = 200 * time.Millisecond
	readRetryAttempts = 3
)

type jsonRPCProvider struct {
	client *utils.HTTPClient
	nextID atomic.Int64

	logger *logger.Logger
}

// NewJSONRPCProvider constructs a [Provider] that talks to a wallet provider
// endpoint over JSON-RPC 2.0. It normalises and validates the base URL from
// walletCfg.ProviderURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if walletCfg.ProviderURL is empty or cannot be parsed as
// a valid URL.
func NewJSONRPCProvider(walletCfg config.ClientWallet, logger *logger.Logger) (Provider, error) {
	baseURL, err := normalizeBaseURL(walletCfg.ProviderURL)
	if err != nil {
		return nil, fmt.Errorf("invalid provider url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(walletCfg.RequestTimeout)

	return &jsonRPCProvider{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RequestAccounts implements [Provider]. It sends eth_requestAccounts, which
// may block on a user prompt inside the wallet, so the call is never retried.
func (p *jsonRPCProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	if err := p.request(ctx, "eth_requestAccounts", []any{}, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

// ChainID implements [Provider]. It sends eth_chainId and retries transient
// transport failures.
func (p *jsonRPCProvider) ChainID(ctx context.Context) (string, error) {
	var chainID string
	if err := p.requestWithRetry(ctx, "eth_chainId", []any{}, &chainID); err != nil {
		return "", err
	}

	return chainID, nil
}

// switchChainParams is the single-element parameter object of
// wallet_switchEthereumChain.
type switchChainParams struct {
	ChainID string `json:"chainId"`
}

// SwitchChain implements [Provider]. It sends wallet_switchEthereumChain.
func (p *jsonRPCProvider) SwitchChain(ctx context.Context, chainID string) error {
	return p.request(ctx, "wallet_switchEthereumChain", []any{switchChainParams{ChainID: chainID}}, nil)
}

// AddChain implements [Provider]. It sends wallet_addEthereumChain with the
// full chain descriptor.
func (p *jsonRPCProvider) AddChain(ctx context.Context, chain models.ChainDescriptor) error {
	return p.request(ctx, "wallet_addEthereumChain", []any{chain}, nil)
}

// callParams is the first parameter object of eth_call and
// eth_sendTransaction.
type callParams struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Data string `json:"data"`
}

// Call implements [Provider]. It sends eth_call against the latest block and
// retries transient transport failures.
func (p *jsonRPCProvider) Call(ctx context.Context, to, data string) (string, error) {
	var result string
	err := p.requestWithRetry(ctx, "eth_call", []any{callParams{To: to, Data: data}, "latest"}, &result)
	if err != nil {
		return "", err
	}

	return result, nil
}

// SendTransaction implements [Provider]. It sends eth_sendTransaction and
// returns the transaction hash. The wallet signs on its side; this client
// never sees key material.
func (p *jsonRPCProvider) SendTransaction(ctx context.Context, from, to, data string) (string, error) {
	var txHash string
	err := p.request(ctx, "eth_sendTransaction", []any{callParams{From: from, To: to, Data: data}}, &txHash)
	if err != nil {
		return "", err
	}

	return txHash, nil
}

// request performs one JSON-RPC round trip. Transport failures and non-2xx
// replies map to ErrProviderUnavailable; error objects in the envelope go
// through mapRPCError; a non-null result is unmarshalled into result.
func (p *jsonRPCProvider) request(ctx context.Context, method string, params, result any) error {
	req := models.NewRPCRequest(p.nextID.Add(1), method, params)

	var envelope models.RPCResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&envelope).
		Post("")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrProviderUnavailable, method, err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s: http %d", ErrProviderUnavailable, method, resp.StatusCode())
	}

	if envelope.Error != nil {
		err := mapRPCError(envelope.Error)
		p.logger.Debug().Str("method", method).Int("code", envelope.Error.Code).Msg("provider returned error")
		return err
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decode %s result: %w", method, err)
		}
	}

	return nil
}

// requestWithRetry wraps request with fibonacci backoff for read-only
// methods. Only ErrProviderUnavailable is retryable: provider error objects
// are definitive answers.
func (p *jsonRPCProvider) requestWithRetry(ctx context.Context, method string, params, result any) error {
	backoff := retry.WithMaxRetries(readRetryAttempts, retry.NewFibonacci(readRetryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := p.request(ctx, method, params, result)
		if errors.Is(err, ErrProviderUnavailable) {
			return retry.RetryableError(err)
		}

		return err
	})
}
