package provider

import (
	"fmt"

	"github.com/Freeman45/encrypted-Diary/models"
)

// Provider error codes (EIP-1193) and the JSON-RPC codes the mapper
// recognizes.
const (
	codeUserRejected      = 4001
	codeUnauthorized      = 4100
	codeUnsupportedMethod = 4200
	codeDisconnected      = 4900
	codeChainDisconnected = 4901
	codeUnrecognizedChain = 4902
	codeMethodNotFound    = -32601
	codeExecutionReverted = -32000
)

// mapRPCError translates a JSON-RPC error object into one of the package
// sentinels, keeping the provider's message for context. Unknown codes pass
// through as the raw RPC error.
func mapRPCError(rpcErr *models.RPCError) error {
	if rpcErr == nil {
		return nil
	}

	switch rpcErr.Code {
	case codeUserRejected:
		return fmt.Errorf("%w: %s", ErrConnectionRejected, rpcErr.Message)
	case codeUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, rpcErr.Message)
	case codeUnsupportedMethod, codeMethodNotFound:
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, rpcErr.Message)
	case codeDisconnected, codeChainDisconnected:
		return fmt.Errorf("%w: %s", ErrDisconnected, rpcErr.Message)
	case codeUnrecognizedChain:
		return fmt.Errorf("%w: %s", ErrUnknownChain, rpcErr.Message)
	case codeExecutionReverted:
		return fmt.Errorf("%w: %s", ErrCallReverted, rpcErr.Message)
	default:
		return rpcErr
	}
}
