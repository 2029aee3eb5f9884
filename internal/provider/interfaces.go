// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

// Package provider defines the wallet capability surface the diary client
// depends on, and an implementation that speaks the provider JSON-RPC
// protocol over HTTP.
//
// The interface mirrors what an injected browser wallet exposes: account
// access must be requested, the active chain can be read and switched, and
// contract interaction happens through opaque call data. The client never
// touches private keys; signing stays behind the provider boundary.
package provider

import (
	"context"

	"github.com/Freeman45/encrypted-Diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/provider_mock.go -package=mock

// Provider is the wallet capability handle used by the connector layer.
//
// Implementations translate provider error objects into the package
// sentinels (see errors.go), so callers can branch with errors.Is without
// knowing numeric codes.
type Provider interface {
	// RequestAccounts asks the wallet for access to its accounts. The
	// wallet may prompt the user; a refusal surfaces as
	// ErrConnectionRejected. The first returned account is the active one.
	RequestAccounts(ctx context.Context) ([]string, error)

	// ChainID returns the hex-encoded id of the chain the wallet is
	// currently on (e.g. "0xaa36a7").
	ChainID(ctx context.Context) (string, error)

	// SwitchChain asks the wallet to switch to the given chain. A chain
	// the wallet does not know yields ErrUnknownChain; callers then
	// register it via AddChain and retry.
	SwitchChain(ctx context.Context, chainID string) error

	// AddChain registers a new network with the wallet.
	AddChain(ctx context.Context, chain models.ChainDescriptor) error

	// Call executes a read-only contract call against the latest block and
	// returns the hex-encoded result. Transient transport failures are
	// retried.
	Call(ctx context.Context, to, data string) (string, error)

	// SendTransaction submits a state-changing transaction from the given
	// account and returns the transaction hash. Not retried: a timeout
	// does not mean the transaction was not accepted.
	SendTransaction(ctx context.Context, from, to, data string) (string, error)
}
