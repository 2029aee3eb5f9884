// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package walletsim

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"sync"

	"github.com/Freeman45/encrypted-Diary/internal/ethabi"
	"github.com/Freeman45/encrypted-Diary/models"
)

// DevAddress is the single account the simulator exposes: the first
// well-known development account local chains ship with.
const DevAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"

// defaultChainID is the network the simulator starts on: 1337, the
// conventional local development chain. The client's target network is not
// known here on purpose, so a fresh simulator always walks the client
// through the add-then-switch path.
const defaultChainID = "0x539"

// Wallet-side JSON-RPC error codes, per EIP-1193 and EIP-4902 plus the
// standard JSON-RPC range.
const (
	codeUnauthorized   = 4100
	codeUnknownChain   = 4902
	codeCallReverted   = -32000
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
	codeParseError     = -32700
)

// Selectors of the functions the built-in diary contract answers.
var (
	selAddEntry = ethabi.Selector("addEntry(bytes)")
	selGetCount = ethabi.Selector("getCount(address)")
	selGetEntry = ethabi.Selector("getEntry(address,uint256)")
)

// EntryLog mirrors the EntryAdded event the real diary contract emits for
// every stored payload.
type EntryLog struct {
	Topic   [32]byte
	Author  string
	Index   uint64
	Payload []byte
	TxHash  string
}

// Simulator holds the wallet and chain state behind the JSON-RPC endpoint:
// the exposed account, the set of registered networks and the diary
// contract storage. All methods are safe for concurrent use.
//
// Unlike a real wallet the simulator never shows a confirmation dialog:
// every connection and every transaction is approved on the spot.
type Simulator struct {
	mu sync.Mutex

	accounts []string
	chainID  string
	chains   map[string]models.ChainDescriptor

	// Хранилище встроенного контракта: записи по авторам в порядке добавления.
	entries map[string][][]byte
	logs    []EntryLog
	nonce   uint64
}

// NewSimulator returns a simulator on the local development network with
// DevAddress as its only account and an empty contract.
func NewSimulator() *Simulator {
	local := models.ChainDescriptor{
		ChainID:   defaultChainID,
		ChainName: "Localhost",
		RPCURLs:   []string{"http://localhost:8545"},
		NativeCurrency: models.NativeCurrency{
			Name:     "Ether",
			Symbol:   "ETH",
			Decimals: 18,
		},
	}

	return &Simulator{
		accounts: []string{DevAddress},
		chainID:  defaultChainID,
		chains:   map[string]models.ChainDescriptor{defaultChainID: local},
		entries:  make(map[string][][]byte),
	}
}

// RequestAccounts answers eth_requestAccounts and eth_accounts. The
// simulator always approves and returns its development account.
func (s *Simulator) RequestAccounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.accounts...)
}

// ChainID answers eth_chainId with the currently selected network.
func (s *Simulator) ChainID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chainID
}

// SwitchChain answers wallet_switchEthereumChain. Switching to a network
// that was never registered fails with code 4902, which tells the client
// to add the network first.
func (s *Simulator) SwitchChain(chainID string) *models.RPCError {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := strings.ToLower(chainID)
	if _, ok := s.chains[id]; !ok {
		return &models.RPCError{
			Code:    codeUnknownChain,
			Message: fmt.Sprintf("Unrecognized chain ID %q. Try adding the chain using wallet_addEthereumChain first.", chainID),
		}
	}

	s.chainID = id
	return nil
}

// AddChain answers wallet_addEthereumChain by registering the network. The
// selected network does not change until the client switches to it.
func (s *Simulator) AddChain(chain models.ChainDescriptor) *models.RPCError {
	if chain.ChainID == "" {
		return &models.RPCError{Code: codeInvalidParams, Message: "chain descriptor has no chainId"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.chains[strings.ToLower(chain.ChainID)] = chain
	return nil
}

// Call answers eth_call by running the requested view function against the
// built-in diary contract. Every target address is treated as the contract,
// so the client's configured contract address does not have to be known
// here.
func (s *Simulator) Call(data string) (string, *models.RPCError) {
	sel, args, err := ethabi.DecodeCall(data)
	if err != nil {
		return "", reverted(err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch sel {
	case selGetCount:
		author, err := ethabi.DecodeAddressArg(args, 0)
		if err != nil {
			return "", reverted(err.Error())
		}

		return ethabi.EncodeUint64Result(uint64(len(s.entries[author]))), nil

	case selGetEntry:
		author, err := ethabi.DecodeAddressArg(args, 0)
		if err != nil {
			return "", reverted(err.Error())
		}
		index, err := ethabi.DecodeUint64Arg(args, 1)
		if err != nil {
			return "", reverted(err.Error())
		}

		list := s.entries[author]
		if index >= uint64(len(list)) {
			return "", reverted(fmt.Sprintf("entry %d does not exist", index))
		}

		return ethabi.EncodeBytesResult(list[index]), nil

	default:
		return "", reverted("unknown function selector")
	}
}

// SendTransaction answers eth_sendTransaction. Only addEntry reaches the
// built-in contract: the payload is stored under the sender and an
// EntryAdded log is recorded. Returns the transaction hash.
func (s *Simulator) SendTransaction(from, data string) (string, *models.RPCError) {
	s.mu.Lock()
	defer s.mu.Unlock()

	author := strings.ToLower(from)
	if !s.knownAccount(author) {
		return "", &models.RPCError{
			Code:    codeUnauthorized,
			Message: fmt.Sprintf("account %s is not available", from),
		}
	}

	sel, args, err := ethabi.DecodeCall(data)
	if err != nil {
		return "", reverted(err.Error())
	}
	if sel != selAddEntry {
		return "", reverted("unknown function selector")
	}

	payload, err := ethabi.DecodeBytesArg(args)
	if err != nil {
		return "", reverted(err.Error())
	}

	txHash := s.nextTxHash(author, data)
	s.logs = append(s.logs, EntryLog{
		Topic:   ethabi.EntryAddedTopic,
		Author:  author,
		Index:   uint64(len(s.entries[author])),
		Payload: payload,
		TxHash:  txHash,
	})
	s.entries[author] = append(s.entries[author], payload)

	return txHash, nil
}

// Logs returns a copy of the EntryAdded records accumulated so far, oldest
// first.
func (s *Simulator) Logs() []EntryLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]EntryLog(nil), s.logs...)
}

// knownAccount reports whether address is one of the simulator's accounts.
// Callers hold s.mu.
func (s *Simulator) knownAccount(address string) bool {
	for _, a := range s.accounts {
		if strings.EqualFold(a, address) {
			return true
		}
	}

	return false
}

// nextTxHash derives a stable unique hash for an approved transaction. Not
// a real transaction hash, just a 32-byte value that looks like one.
// Callers hold s.mu.
func (s *Simulator) nextTxHash(from, data string) string {
	s.nonce++

	h := sha256.New()
	fmt.Fprintf(h, "%d|%s|%s", s.nonce, from, data)

	return "0x" + hex.EncodeToString(h.Sum(nil))
}

// reverted wraps msg as the -32000 execution error a node reports for a
// failed call.
func reverted(msg string) *models.RPCError {
	return &models.RPCError{Code: codeCallReverted, Message: "execution reverted: " + msg}
}
