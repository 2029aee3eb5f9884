// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// encrypted-diary application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Wallet holds the wallet provider endpoint settings used by the
	// diary client for account and transaction requests.
	Wallet Wallet `envPrefix:"WALLET_"`

	// Chain describes the EVM network the diary contract lives on.
	Chain Chain `envPrefix:"CHAIN_"`

	// Contract holds the on-chain diary contract settings.
	Contract Contract `envPrefix:"CONTRACT_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the wallet
	// simulator server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Shown in the TUI footer and startup logs.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Wallet holds connection settings for the wallet provider endpoint.
type Wallet struct {
	// ProviderURL is the JSON-RPC endpoint of the wallet provider
	// (e.g. "http://localhost:8545" for the bundled simulator).
	// Env: WALLET_PROVIDER_URL
	ProviderURL string `env:"PROVIDER_URL"`

	// RequestTimeout is the maximum duration allowed for a single provider
	// request before the client cancels it (e.g. "15s").
	// Env: WALLET_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Chain describes the target EVM network. The fields mirror the
// wallet_addEthereumChain parameter object so the client can register the
// network with a provider that does not know it yet.
type Chain struct {
	// ID is the hex-encoded chain identifier (e.g. "0xaa36a7" for Sepolia).
	// Env: CHAIN_ID
	ID string `env:"ID"`

	// Name is the human-readable network name.
	// Env: CHAIN_NAME
	Name string `env:"NAME"`

	// RPCURL is the public JSON-RPC endpoint of the network, used when
	// registering the chain with the provider.
	// Env: CHAIN_RPC_URL
	RPCURL string `env:"RPC_URL"`

	// CurrencyName is the display name of the gas currency.
	// Env: CHAIN_CURRENCY_NAME
	CurrencyName string `env:"CURRENCY_NAME"`

	// CurrencySymbol is the ticker symbol of the gas currency.
	// Env: CHAIN_CURRENCY_SYMBOL
	CurrencySymbol string `env:"CURRENCY_SYMBOL"`

	// CurrencyDecimals is the decimal precision of the gas currency.
	// Env: CHAIN_CURRENCY_DECIMALS
	CurrencyDecimals int `env:"CURRENCY_DECIMALS"`

	// ExplorerURL is the block explorer endpoint of the network, if any.
	// Env: CHAIN_EXPLORER_URL
	ExplorerURL string `env:"EXPLORER_URL"`
}

// Contract holds settings for the on-chain diary contract.
type Contract struct {
	// Address is the deployed contract address in 0x-prefixed hex form.
	// Env: CONTRACT_ADDRESS
	Address string `env:"ADDRESS"`

	// Enabled toggles on-chain submission of saved entries. Local
	// persistence works regardless of this setting.
	// Env: CONTRACT_ENABLED
	Enabled bool `env:"ENABLED"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite Data Source Name, usually a file path
	// (e.g. "diary.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the wallet simulator.
type Server struct {
	// HTTPAddress is the TCP address on which the simulator listens,
	// in "host:port" format (e.g. "localhost:8545").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for the fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
