// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/ethabi"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/provider"
)

// walletConnector is the private implementation of [Connector].
type walletConnector struct {
	provider provider.Provider
	chain    config.ClientChain
	contract config.ClientContract

	mu         sync.RWMutex
	status     Status
	address    string
	errMessage string

	logger *logger.Logger
}

// NewConnector constructs a [Connector] in the Disconnected state. The
// provider is an injected capability: the connector holds no transport
// details and no key material.
func NewConnector(p provider.Provider, chainCfg config.ClientChain, contractCfg config.ClientContract, log *logger.Logger) Connector {
	return &walletConnector{
		provider: p,
		chain:    chainCfg,
		contract: contractCfg,
		status:   StatusDisconnected,
		logger:   log,
	}
}

// Connect implements [Connector]. The sequence is: request accounts,
// checksum the active one, verify the network, then mark the session
// connected. Each failure moves the session to the Error state with the
// failure text, from which Connect may be called again.
func (c *walletConnector) Connect(ctx context.Context) (string, error) {
	c.transition(StatusConnecting, "", "")

	accounts, err := c.provider.RequestAccounts(ctx)
	if err != nil {
		return "", c.fail(fmt.Errorf("request accounts: %w", err))
	}
	if len(accounts) == 0 {
		return "", c.fail(ErrNoAccounts)
	}

	address, err := ethabi.ChecksumAddress(accounts[0])
	if err != nil {
		return "", c.fail(fmt.Errorf("provider returned malformed account %q: %w", accounts[0], err))
	}

	if err := c.EnsureNetwork(ctx); err != nil {
		return "", c.fail(err)
	}

	c.transition(StatusConnected, address, "")
	c.logger.Info().Str("address", address).Msg("wallet connected")

	return address, nil
}

// Disconnect implements [Connector].
func (c *walletConnector) Disconnect() {
	c.transition(StatusDisconnected, "", "")
	c.logger.Info().Msg("wallet disconnected")
}

// EnsureNetwork implements [Connector]. Chain ids are compared
// case-insensitively: providers disagree about hex casing. A switch refused
// with "unknown chain" triggers registration via wallet_addEthereumChain
// and one more switch attempt.
func (c *walletConnector) EnsureNetwork(ctx context.Context) error {
	current, err := c.provider.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("read chain id: %w", err)
	}
	if strings.EqualFold(current, c.chain.ID) {
		return nil
	}

	c.logger.Debug().Str("current", current).Str("want", c.chain.ID).Msg("switching chain")

	err = c.provider.SwitchChain(ctx, c.chain.ID)
	if errors.Is(err, provider.ErrUnknownChain) {
		if addErr := c.provider.AddChain(ctx, c.chain.Descriptor()); addErr != nil {
			return fmt.Errorf("add chain %s: %w", c.chain.ID, addErr)
		}
		err = c.provider.SwitchChain(ctx, c.chain.ID)
	}
	if err != nil {
		return fmt.Errorf("switch to chain %s: %w", c.chain.ID, err)
	}

	return nil
}

// SubmitEntry implements [ContractJournal].
func (c *walletConnector) SubmitEntry(ctx context.Context, payload []byte) (string, error) {
	address, connected := c.session()
	if !connected {
		return "", ErrNotConnected
	}
	if c.contract.Address == "" {
		return "", ErrNoContract
	}

	data := ethabi.EncodeAddEntry(payload)
	txHash, err := c.provider.SendTransaction(ctx, address, c.contract.Address, data)
	if err != nil {
		return "", fmt.Errorf("submit entry: %w", err)
	}

	c.logger.Debug().Str("tx", txHash).Int("payload_size", len(payload)).Msg("entry submitted on-chain")

	return txHash, nil
}

// ReadCount implements [ContractJournal].
func (c *walletConnector) ReadCount(ctx context.Context) (uint64, error) {
	address, connected := c.session()
	if !connected {
		return 0, ErrNotConnected
	}
	if c.contract.Address == "" {
		return 0, ErrNoContract
	}

	data, err := ethabi.EncodeGetCount(address)
	if err != nil {
		return 0, fmt.Errorf("encode getCount: %w", err)
	}

	result, err := c.provider.Call(ctx, c.contract.Address, data)
	if err != nil {
		return 0, fmt.Errorf("read entry count: %w", err)
	}

	count, err := ethabi.DecodeUint64(result)
	if err != nil {
		return 0, fmt.Errorf("decode entry count: %w", err)
	}

	return count, nil
}

// ReadEntry implements [ContractJournal].
func (c *walletConnector) ReadEntry(ctx context.Context, index uint64) ([]byte, error) {
	address, connected := c.session()
	if !connected {
		return nil, ErrNotConnected
	}
	if c.contract.Address == "" {
		return nil, ErrNoContract
	}

	data, err := ethabi.EncodeGetEntry(address, index)
	if err != nil {
		return nil, fmt.Errorf("encode getEntry: %w", err)
	}

	result, err := c.provider.Call(ctx, c.contract.Address, data)
	if err != nil {
		return nil, fmt.Errorf("read entry %d: %w", index, err)
	}

	payload, err := ethabi.DecodeBytes(result)
	if err != nil {
		return nil, fmt.Errorf("decode entry %d: %w", index, err)
	}

	return payload, nil
}

// Status implements [Connector].
func (c *walletConnector) Status() Status {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

// Address implements [Connector].
func (c *walletConnector) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

// ErrMessage implements [Connector].
func (c *walletConnector) ErrMessage() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.errMessage
}

// IsConnected implements [ContractJournal].
func (c *walletConnector) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status == StatusConnected
}

// session returns the active address and whether the session is connected.
func (c *walletConnector) session() (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address, c.status == StatusConnected
}

// transition atomically rewrites the session state.
func (c *walletConnector) transition(status Status, address, errMessage string) {
	c.mu.Lock()
	c.status = status
	c.address = address
	c.errMessage = errMessage
	c.mu.Unlock()
}

// fail parks the session in the Error state and returns err unchanged so
// callers can `return c.fail(err)`.
func (c *walletConnector) fail(err error) error {
	c.transition(StatusError, "", err.Error())
	c.logger.Warn().Err(err).Msg("wallet connection failed")
	return err
}
