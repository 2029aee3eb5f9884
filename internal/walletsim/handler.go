// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package walletsim

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/models"
)

// Handler exposes a Simulator over HTTP as a single JSON-RPC endpoint.
type Handler struct {
	sim *Simulator

	logger *logger.Logger
}

func NewHandler(sim *Simulator, logger *logger.Logger) *Handler {
	logger.Info().Msg("wallet simulator handler created")
	return &Handler{
		sim:    sim,
		logger: logger,
	}
}

// rpcCall is the incoming request envelope. Params stay raw until the
// method tells us their shape.
type rpcCall struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// txParams is the call object carried by eth_call and eth_sendTransaction.
type txParams struct {
	From string `json:"from"`
	To   string `json:"to"`
	Data string `json:"data"`
}

// chainRef is the argument of wallet_switchEthereumChain.
type chainRef struct {
	ChainID string `json:"chainId"`
}

func (h *Handler) rpc(w http.ResponseWriter, r *http.Request) {
	var call rpcCall
	if err := json.NewDecoder(r.Body).Decode(&call); err != nil {
		h.respond(w, 0, nil, &models.RPCError{Code: codeParseError, Message: "parse error: " + err.Error()})
		return
	}

	h.logger.Debug().Str("method", call.Method).Int64("id", call.ID).Msg("rpc call")

	switch call.Method {
	case "eth_requestAccounts", "eth_accounts":
		h.respond(w, call.ID, h.sim.RequestAccounts(), nil)

	case "eth_chainId":
		h.respond(w, call.ID, h.sim.ChainID(), nil)

	case "wallet_switchEthereumChain":
		var ref chainRef
		if err := firstParam(call.Params, &ref); err != nil {
			h.respond(w, call.ID, nil, invalidParams("wallet_switchEthereumChain expects a chain reference"))
			return
		}

		h.respond(w, call.ID, nil, h.sim.SwitchChain(ref.ChainID))

	case "wallet_addEthereumChain":
		var chain models.ChainDescriptor
		if err := firstParam(call.Params, &chain); err != nil {
			h.respond(w, call.ID, nil, invalidParams("wallet_addEthereumChain expects a chain descriptor"))
			return
		}

		h.respond(w, call.ID, nil, h.sim.AddChain(chain))

	case "eth_call":
		var tx txParams
		if err := firstParam(call.Params, &tx); err != nil {
			h.respond(w, call.ID, nil, invalidParams("eth_call expects a call object"))
			return
		}

		result, rpcErr := h.sim.Call(tx.Data)
		h.respond(w, call.ID, result, rpcErr)

	case "eth_sendTransaction":
		var tx txParams
		if err := firstParam(call.Params, &tx); err != nil {
			h.respond(w, call.ID, nil, invalidParams("eth_sendTransaction expects a transaction object"))
			return
		}

		txHash, rpcErr := h.sim.SendTransaction(tx.From, tx.Data)
		h.respond(w, call.ID, txHash, rpcErr)

	default:
		h.respond(w, call.ID, nil, &models.RPCError{
			Code:    codeMethodNotFound,
			Message: fmt.Sprintf("the method %s does not exist/is not available", call.Method),
		})
	}
}

// respond writes the response envelope. Protocol failures ride inside the
// envelope with HTTP 200: transport-level errors are reserved for a
// provider that is not running at all.
func (h *Handler) respond(w http.ResponseWriter, id int64, result any, rpcErr *models.RPCError) {
	resp := models.RPCResponse{JSONRPC: "2.0", ID: id}

	if rpcErr != nil {
		resp.Error = rpcErr
	} else {
		raw, err := json.Marshal(result)
		if err != nil {
			resp.Error = &models.RPCError{Code: codeInternalError, Message: "marshal result: " + err.Error()}
		} else {
			resp.Result = raw
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error().Err(err).Msg("write rpc response")
	}
}

// firstParam unmarshals the first element of a JSON-RPC params array into
// dst. Provider methods carry their arguments as a one-element array.
func firstParam(params json.RawMessage, dst any) error {
	var list []json.RawMessage
	if err := json.Unmarshal(params, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		return fmt.Errorf("params array is empty")
	}

	return json.Unmarshal(list[0], dst)
}

func invalidParams(msg string) *models.RPCError {
	return &models.RPCError{Code: codeInvalidParams, Message: msg}
}
