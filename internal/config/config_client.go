package config

import (
	"fmt"
	"time"

	"github.com/Freeman45/encrypted-Diary/models"
)

// ClientApp holds application-level settings used by the diary client.
type ClientApp struct {
	// Version is the application version string shown in the TUI.
	Version string
}

// ClientWallet holds network settings used by the wallet provider transport.
type ClientWallet struct {
	// ProviderURL is the JSON-RPC endpoint of the wallet provider.
	ProviderURL string
	// RequestTimeout is the default timeout for outbound provider requests.
	RequestTimeout time.Duration
}

// ClientChain describes the target network from the client's point of view.
type ClientChain struct {
	ID               string
	Name             string
	RPCURL           string
	CurrencyName     string
	CurrencySymbol   string
	CurrencyDecimals int
	ExplorerURL      string
}

// Descriptor converts the chain settings into the wallet_addEthereumChain
// parameter shape.
func (c ClientChain) Descriptor() models.ChainDescriptor {
	d := models.ChainDescriptor{
		ChainID:   c.ID,
		ChainName: c.Name,
		NativeCurrency: models.NativeCurrency{
			Name:     c.CurrencyName,
			Symbol:   c.CurrencySymbol,
			Decimals: c.CurrencyDecimals,
		},
	}
	if c.RPCURL != "" {
		d.RPCURLs = []string{c.RPCURL}
	}
	if c.ExplorerURL != "" {
		d.BlockExplorerURLs = []string{c.ExplorerURL}
	}

	return d
}

// ClientContract holds the on-chain contract settings used by the client.
type ClientContract struct {
	// Address is the deployed diary contract address.
	Address string
	// Enabled toggles on-chain submission of saved entries.
	Enabled bool
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Wallet contains provider endpoint settings.
	Wallet ClientWallet
	// Chain describes the target network.
	Chain ClientChain
	// Contract contains on-chain contract settings.
	Contract ClientContract
	// Storage contains client storage settings.
	Storage ClientStorage
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Wallet: ClientWallet{
			ProviderURL:    cfg.Wallet.ProviderURL,
			RequestTimeout: cfg.Wallet.RequestTimeout,
		},
		Chain: ClientChain{
			ID:               cfg.Chain.ID,
			Name:             cfg.Chain.Name,
			RPCURL:           cfg.Chain.RPCURL,
			CurrencyName:     cfg.Chain.CurrencyName,
			CurrencySymbol:   cfg.Chain.CurrencySymbol,
			CurrencyDecimals: cfg.Chain.CurrencyDecimals,
			ExplorerURL:      cfg.Chain.ExplorerURL,
		},
		Contract: ClientContract{
			Address: cfg.Contract.Address,
			Enabled: cfg.Contract.Enabled,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	return clientCfg, clientCfg.validate()
}
