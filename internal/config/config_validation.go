// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only the simulator-side settings are checked here; client settings are
// validated by [ClientConfig.validate] on the view actually used.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Wallet.ProviderURL == "" || cfg.Wallet.RequestTimeout == 0 {
		return ErrInvalidWalletConfigs
	}

	if cfg.Chain.ID == "" || !strings.HasPrefix(cfg.Chain.ID, "0x") {
		return ErrInvalidChainConfigs
	}

	if cfg.Contract.Enabled && cfg.Contract.Address == "" {
		return ErrInvalidContractConfigs
	}

	return nil
}
