package models

// ChainDescriptor describes an EVM network in the shape expected by the
// wallet_addEthereumChain provider method (EIP-3085).
type ChainDescriptor struct {
	// ChainID is the hex-encoded chain identifier, e.g. "0xaa36a7".
	ChainID string `json:"chainId"`

	// ChainName is the human-readable network name.
	ChainName string `json:"chainName"`

	// RPCURLs lists the JSON-RPC endpoints of the network.
	RPCURLs []string `json:"rpcUrls"`

	// NativeCurrency describes the coin used to pay for gas.
	NativeCurrency NativeCurrency `json:"nativeCurrency"`

	// BlockExplorerURLs lists block explorer endpoints, if any.
	BlockExplorerURLs []string `json:"blockExplorerUrls,omitempty"`
}

// NativeCurrency is the gas currency section of a ChainDescriptor.
type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}
