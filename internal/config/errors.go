package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidWalletConfigs indicates invalid wallet provider settings
	// (for example, missing provider URL or request timeout).
	ErrInvalidWalletConfigs = errors.New("invalid wallet configuration")
	// ErrInvalidChainConfigs indicates invalid chain settings
	// (for example, a chain id without the 0x prefix).
	ErrInvalidChainConfigs = errors.New("invalid chain configuration")
	// ErrInvalidContractConfigs indicates invalid contract settings
	// (for example, on-chain submission enabled without an address).
	ErrInvalidContractConfigs = errors.New("invalid contract configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid simulator server settings
	// (for example, missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
