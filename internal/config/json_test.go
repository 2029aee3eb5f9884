package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings parsed by the Duration wrapper (e.g. "30s").
	jsonBody := `{
		"app": { "version": "1.2.3" },
		"wallet": {
			"provider_url": "http://localhost:8545",
			"request_timeout": "15s"
		},
		"chain": {
			"id": "0xaa36a7",
			"name": "Sepolia",
			"rpc_url": "https://rpc.sepolia.org",
			"currency_name": "Sepolia Ether",
			"currency_symbol": "ETH",
			"currency_decimals": 18,
			"explorer_url": "https://sepolia.etherscan.io"
		},
		"contract": {
			"address": "0x5FbDB2315678afecb367f032d93F642f64180aa3",
			"enabled": true
		},
		"storage": {
			"db": { "dsn": "/var/data/diary.db" }
		},
		"server": {
			"http_address": "localhost:8545",
			"request_timeout": "30s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

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

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	// request_timeout should be a duration string; make it invalid.
	jsonBody := `{
		"wallet": { "request_timeout": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// With non-pointer nested structs, all fields are zero values.
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseJSON_PartialObject(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "partial.json")

	jsonBody := `{
		"wallet": { "provider_url": "http://127.0.0.1:8000" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "http://127.0.0.1:8000", cfg.Wallet.ProviderURL)
	assert.Zero(t, cfg.Wallet.RequestTimeout)

	// Others remain zero
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Chain{}, cfg.Chain)
	assert.Equal(t, Contract{}, cfg.Contract)
	assert.Equal(t, Storage{}, cfg.Storage)
	assert.Equal(t, Server{}, cfg.Server)
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(90 * time.Second)

	data, err := d.MarshalJSON()

	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
