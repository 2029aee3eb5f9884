// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		"WALLET_PROVIDER_URL":    "http://localhost:8545",
		"WALLET_REQUEST_TIMEOUT": "15s",

		"CHAIN_ID":                "0xaa36a7",
		"CHAIN_NAME":              "Sepolia",
		"CHAIN_RPC_URL":           "https://rpc.sepolia.org",
		"CHAIN_CURRENCY_NAME":     "Sepolia Ether",
		"CHAIN_CURRENCY_SYMBOL":   "ETH",
		"CHAIN_CURRENCY_DECIMALS": "18",
		"CHAIN_EXPLORER_URL":      "https://sepolia.etherscan.io",

		"CONTRACT_ADDRESS": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		"CONTRACT_ENABLED": "true",

		"STORAGE_DB_DATABASE_URI": "/var/data/diary.db",

		"SERVER_ADDRESS":         "localhost:8545",
		"SERVER_REQUEST_TIMEOUT": "30s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "http://localhost:8545", cfg.Wallet.ProviderURL)
	assert.Equal(t, 15*time.Second, cfg.Wallet.RequestTimeout)

	assert.Equal(t, "0xaa36a7", cfg.Chain.ID)
	assert.Equal(t, "Sepolia", cfg.Chain.Name)
	assert.Equal(t, "https://rpc.sepolia.org", cfg.Chain.RPCURL)
	assert.Equal(t, "Sepolia Ether", cfg.Chain.CurrencyName)
	assert.Equal(t, "ETH", cfg.Chain.CurrencySymbol)
	assert.Equal(t, 18, cfg.Chain.CurrencyDecimals)
	assert.Equal(t, "https://sepolia.etherscan.io", cfg.Chain.ExplorerURL)

	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Contract.Address)
	assert.True(t, cfg.Contract.Enabled)

	assert.Equal(t, "/var/data/diary.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "localhost:8545", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WALLET_PROVIDER_URL": "http://localhost:9999",
		"CHAIN_ID":            "0x1",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// Wallet partially filled
	assert.Equal(t, "http://localhost:9999", cfg.Wallet.ProviderURL)
	assert.Zero(t, cfg.Wallet.RequestTimeout)

	// Chain partially filled
	assert.Equal(t, "0x1", cfg.Chain.ID)
	assert.Empty(t, cfg.Chain.Name)

	// Others untouched
	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Contract.Address)
	assert.False(t, cfg.Contract.Enabled)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	// In this version all nested fields are non-pointer values,
	// so "empty" state is represented by zero values.
	assert.Equal(t, "", cfg.JSONFilePath)

	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Wallet{}, cfg.Wallet)
	assert.Equal(t, Chain{}, cfg.Chain)
	assert.Equal(t, Contract{}, cfg.Contract)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"WALLET_REQUEST_TIMEOUT": "invalid_duration",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	// Error wording may vary depending on parseEnv internals; assert loosely.
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_InvalidBool(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONTRACT_ENABLED": "definitely",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			envVars := map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			}
			setEnvVars(t, envVars)

			// Act
			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"APP_VERSION",

		"WALLET_PROVIDER_URL",
		"WALLET_REQUEST_TIMEOUT",

		"CHAIN_ID",
		"CHAIN_NAME",
		"CHAIN_RPC_URL",
		"CHAIN_CURRENCY_NAME",
		"CHAIN_CURRENCY_SYMBOL",
		"CHAIN_CURRENCY_DECIMALS",
		"CHAIN_EXPLORER_URL",

		"CONTRACT_ADDRESS",
		"CONTRACT_ENABLED",

		"STORAGE_DB_DATABASE_URI",

		"SERVER_ADDRESS",
		"SERVER_REQUEST_TIMEOUT",
	}
	for _, k := range keys {
		_ = os.Unsetenv(k)
	}
}
