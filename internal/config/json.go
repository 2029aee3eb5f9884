package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration fields for file-based configuration.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Wallet struct {
		ProviderURL    string   `json:"provider_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"wallet,omitempty"`

	Chain struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		RPCURL           string `json:"rpc_url"`
		CurrencyName     string `json:"currency_name"`
		CurrencySymbol   string `json:"currency_symbol"`
		CurrencyDecimals int    `json:"currency_decimals"`
		ExplorerURL      string `json:"explorer_url"`
	} `json:"chain,omitempty"`

	Contract struct {
		Address string `json:"address"`
		Enabled bool   `json:"enabled"`
	} `json:"contract,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Wallet: Wallet{
			ProviderURL:    jsonCfg.Wallet.ProviderURL,
			RequestTimeout: time.Duration(jsonCfg.Wallet.RequestTimeout),
		},
		Chain: Chain{
			ID:               jsonCfg.Chain.ID,
			Name:             jsonCfg.Chain.Name,
			RPCURL:           jsonCfg.Chain.RPCURL,
			CurrencyName:     jsonCfg.Chain.CurrencyName,
			CurrencySymbol:   jsonCfg.Chain.CurrencySymbol,
			CurrencyDecimals: jsonCfg.Chain.CurrencyDecimals,
			ExplorerURL:      jsonCfg.Chain.ExplorerURL,
		},
		Contract: Contract{
			Address: jsonCfg.Contract.Address,
			Enabled: jsonCfg.Contract.Enabled,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
