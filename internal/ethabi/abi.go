// Package ethabi implements the small slice of Ethereum contract ABI
// encoding the diary contract needs: function selectors, call-data packing
// for its three methods, and decoding of their return values.
//
// The contract interface covered here:
//
//	function addEntry(bytes payload)
//	function getCount(address author) returns (uint256)
//	function getEntry(address author, uint256 index) returns (bytes)
//	event EntryAdded(address indexed author, uint256 index, bytes payload)
package ethabi

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// wordSize is the ABI slot width in bytes.
const wordSize = 32

// Function selectors and event topics of the diary contract, computed once
// at package load.
var (
	addEntrySelector = Selector("addEntry(bytes)")
	getCountSelector = Selector("getCount(address)")
	getEntrySelector = Selector("getEntry(address,uint256)")

	// EntryAddedTopic is the topic0 hash of the EntryAdded event, used to
	// recognize diary entries in transaction logs.
	EntryAddedTopic = EventTopic("EntryAdded(address,uint256,bytes)")
)

// Selector returns the 4-byte function selector for a canonical signature,
// e.g. "addEntry(bytes)". The selector is the first four bytes of the
// legacy Keccak-256 digest of the signature.
func Selector(signature string) [4]byte {
	digest := keccak256([]byte(signature))

	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}

// EventTopic returns the 32-byte topic0 hash for a canonical event
// signature, e.g. "EntryAdded(address,uint256,bytes)".
func EventTopic(signature string) [32]byte {
	digest := keccak256([]byte(signature))

	var topic [32]byte
	copy(topic[:], digest)
	return topic
}

// EncodeAddEntry packs call data for addEntry(bytes): the selector followed
// by the dynamic bytes argument (offset word, length word, payload padded
// to a word boundary). Returns a 0x-prefixed hex string.
func EncodeAddEntry(payload []byte) string {
	data := make([]byte, 0, 4+3*wordSize+len(payload))
	data = append(data, addEntrySelector[:]...)
	data = append(data, encodeUint(wordSize)...) // offset of the bytes argument
	data = append(data, encodeUint(uint64(len(payload)))...)
	data = append(data, payload...)
	if pad := len(payload) % wordSize; pad != 0 {
		data = append(data, make([]byte, wordSize-pad)...)
	}

	return "0x" + hex.EncodeToString(data)
}

// EncodeGetCount packs call data for getCount(address). Returns a
// 0x-prefixed hex string, or an error if the address is malformed.
func EncodeGetCount(address string) (string, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, 4+wordSize)
	data = append(data, getCountSelector[:]...)
	data = append(data, encodeAddress(addr)...)

	return "0x" + hex.EncodeToString(data), nil
}

// EncodeGetEntry packs call data for getEntry(address,uint256). Returns a
// 0x-prefixed hex string, or an error if the address is malformed.
func EncodeGetEntry(address string, index uint64) (string, error) {
	addr, err := parseAddress(address)
	if err != nil {
		return "", err
	}

	data := make([]byte, 0, 4+2*wordSize)
	data = append(data, getEntrySelector[:]...)
	data = append(data, encodeAddress(addr)...)
	data = append(data, encodeUint(index)...)

	return "0x" + hex.EncodeToString(data), nil
}

// DecodeUint64 parses a single uint256 return value from a 0x-prefixed hex
// result, as returned by getCount. Values beyond uint64 range are rejected.
func DecodeUint64(result string) (uint64, error) {
	words, err := decodeWords(result)
	if err != nil {
		return 0, err
	}
	if len(words) < 1 {
		return 0, fmt.Errorf("abi: result too short for uint256")
	}

	v := new(big.Int).SetBytes(words[0])
	if !v.IsUint64() {
		return 0, fmt.Errorf("abi: uint256 value out of uint64 range")
	}

	return v.Uint64(), nil
}

// DecodeBytes parses a single dynamic bytes return value from a 0x-prefixed
// hex result, as returned by getEntry.
func DecodeBytes(result string) ([]byte, error) {
	raw, err := decodeHex(result)
	if err != nil {
		return nil, err
	}

	return decodeDynamicBytes(raw)
}

// decodeDynamicBytes parses a single head-and-tail encoded bytes value:
// offset word, length word, payload padded to a word boundary.
func decodeDynamicBytes(raw []byte) ([]byte, error) {
	if len(raw) < 2*wordSize {
		return nil, fmt.Errorf("abi: result too short for dynamic bytes")
	}

	offset := new(big.Int).SetBytes(raw[:wordSize])
	if !offset.IsUint64() || offset.Uint64()+wordSize > uint64(len(raw)) {
		return nil, fmt.Errorf("abi: bytes offset out of range")
	}
	start := offset.Uint64()

	length := new(big.Int).SetBytes(raw[start : start+wordSize])
	if !length.IsUint64() || start+wordSize+length.Uint64() > uint64(len(raw)) {
		return nil, fmt.Errorf("abi: bytes length out of range")
	}

	payload := make([]byte, length.Uint64())
	copy(payload, raw[start+wordSize:])
	return payload, nil
}

// keccak256 computes the legacy (pre-NIST padding) Keccak-256 digest used
// throughout Ethereum.
func keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// encodeUint packs v into a 32-byte big-endian word.
func encodeUint(v uint64) []byte {
	word := make([]byte, wordSize)
	big.NewInt(0).SetUint64(v).FillBytes(word)
	return word
}

// encodeAddress packs a 20-byte address into a right-aligned 32-byte word.
func encodeAddress(addr []byte) []byte {
	word := make([]byte, wordSize)
	copy(word[wordSize-len(addr):], addr)
	return word
}

// parseAddress decodes a 0x-prefixed 20-byte hex address.
func parseAddress(address string) ([]byte, error) {
	hexPart := strings.TrimPrefix(address, "0x")
	if len(hexPart) != 2*addressLength {
		return nil, fmt.Errorf("abi: address must be %d hex characters, got %d", 2*addressLength, len(hexPart))
	}

	addr, err := hex.DecodeString(hexPart)
	if err != nil {
		return nil, fmt.Errorf("abi: invalid address: %w", err)
	}

	return addr, nil
}

// decodeHex strips the 0x prefix and decodes the remaining hex payload.
func decodeHex(s string) ([]byte, error) {
	hexPart := strings.TrimPrefix(s, "0x")
	raw, err := hex.DecodeString(hexPart)
	if err != nil {
		return nil, fmt.Errorf("abi: invalid hex result: %w", err)
	}

	return raw, nil
}

// decodeWords splits a hex result into 32-byte words.
func decodeWords(s string) ([][]byte, error) {
	raw, err := decodeHex(s)
	if err != nil {
		return nil, err
	}
	if len(raw)%wordSize != 0 {
		return nil, fmt.Errorf("abi: result length %d is not word-aligned", len(raw))
	}

	words := make([][]byte, 0, len(raw)/wordSize)
	for i := 0; i < len(raw); i += wordSize {
		words = append(words, raw[i:i+wordSize])
	}

	return words, nil
}
