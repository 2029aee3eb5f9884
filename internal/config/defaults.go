package config

import "time"

// Default endpoints for local development: the bundled wallet simulator
// listens on the conventional node port.
const (
	defaultProviderURL = "http://localhost:8545"
	defaultListenAddr  = "localhost:8545"
	defaultDSN         = "diary.db"
)

// defaultConfig returns the built-in configuration layer merged below all
// other sources. The chain section describes Sepolia, the network the diary
// contract is deployed to.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Wallet: Wallet{
			ProviderURL:    defaultProviderURL,
			RequestTimeout: 15 * time.Second,
		},
		Chain: Chain{
			ID:               "0xaa36a7",
			Name:             "Sepolia",
			RPCURL:           "https://rpc.sepolia.org",
			CurrencyName:     "Sepolia Ether",
			CurrencySymbol:   "ETH",
			CurrencyDecimals: 18,
			ExplorerURL:      "https://sepolia.etherscan.io",
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultListenAddr,
			RequestTimeout: 30 * time.Second,
		},
	}
}
