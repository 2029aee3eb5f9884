package provider

import "errors"

// Sentinel errors for the provider error space. RPC error objects are
// translated into these by mapRPCError; transport-level failures surface
// as ErrProviderUnavailable.
var (
	// ErrProviderUnavailable indicates the provider endpoint could not be
	// reached at all (connection refused, timeout, non-2xx transport reply).
	ErrProviderUnavailable = errors.New("wallet provider unavailable")
	// ErrConnectionRejected indicates the user declined the connection
	// request in the wallet (code 4001).
	ErrConnectionRejected = errors.New("connection rejected by user")
	// ErrUnauthorized indicates the requested method requires an account
	// authorization that has not been granted (code 4100).
	ErrUnauthorized = errors.New("wallet authorization missing")
	// ErrUnsupportedMethod indicates the provider does not implement the
	// requested method (code 4200 or -32601).
	ErrUnsupportedMethod = errors.New("method not supported by provider")
	// ErrDisconnected indicates the provider lost its connection to the
	// network or to the requested chain (codes 4900 and 4901).
	ErrDisconnected = errors.New("provider disconnected")
	// ErrUnknownChain indicates the wallet has no entry for the requested
	// chain id (code 4902); register it with AddChain first.
	ErrUnknownChain = errors.New("chain not known to wallet")
	// ErrCallReverted indicates the node rejected the call or transaction
	// during execution (code -32000).
	ErrCallReverted = errors.New("contract call reverted")
)
