// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package models

import (
	"encoding/json"
	"fmt"
)

// RPCRequest is a JSON-RPC 2.0 request envelope as sent to a wallet
// provider endpoint.
type RPCRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

// RPCResponse is a JSON-RPC 2.0 response envelope. Exactly one of
// Result and Error is set.
type RPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error object of a JSON-RPC 2.0 response. Provider
// errors use the EIP-1193 code space (4001, 4100, 4200, 4900...), node
// errors the regular JSON-RPC one (-32601, -32000...).
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface so provider error objects can be
// passed through error returns and inspected later.
func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// NewRPCRequest builds a request envelope for the given method and params.
func NewRPCRequest(id int64, method string, params any) RPCRequest {
	return RPCRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  params,
	}
}
