// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package ethabi

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// This file is the contract side of the codec: splitting incoming call data
// back into selector and arguments, and packing return values. The client
// only needs the encode half from abi.go; the wallet simulator plays the
// contract and needs both.

// DecodeCall splits 0x-prefixed call data into its 4-byte function selector
// and the ABI-encoded argument payload that follows it.
func DecodeCall(data string) ([4]byte, []byte, error) {
	var sel [4]byte

	raw, err := decodeHex(data)
	if err != nil {
		return sel, nil, err
	}
	if len(raw) < len(sel) {
		return sel, nil, fmt.Errorf("abi: call data shorter than a selector")
	}

	copy(sel[:], raw[:len(sel)])
	return sel, raw[len(sel):], nil
}

// DecodeAddressArg extracts the address argument stored in word number word
// of the call arguments. The address is returned 0x-prefixed and lowercase.
func DecodeAddressArg(args []byte, word int) (string, error) {
	w, err := argWord(args, word)
	if err != nil {
		return "", err
	}

	return "0x" + hex.EncodeToString(w[wordSize-addressLength:]), nil
}

// DecodeUint64Arg extracts the uint256 argument stored in word number word of
// the call arguments. Values beyond uint64 range are rejected.
func DecodeUint64Arg(args []byte, word int) (uint64, error) {
	w, err := argWord(args, word)
	if err != nil {
		return 0, err
	}

	v := new(big.Int).SetBytes(w)
	if !v.IsUint64() {
		return 0, fmt.Errorf("abi: uint256 argument out of uint64 range")
	}

	return v.Uint64(), nil
}

// DecodeBytesArg extracts a single dynamic bytes argument from the call
// arguments, as packed by EncodeAddEntry.
func DecodeBytesArg(args []byte) ([]byte, error) {
	return decodeDynamicBytes(args)
}

// EncodeUint64Result packs v as a single uint256 return value, the shape
// getCount responds with. Returns a 0x-prefixed hex string.
func EncodeUint64Result(v uint64) string {
	return "0x" + hex.EncodeToString(encodeUint(v))
}

// EncodeBytesResult packs payload as a single dynamic bytes return value,
// the shape getEntry responds with. Returns a 0x-prefixed hex string.
func EncodeBytesResult(payload []byte) string {
	data := make([]byte, 0, 2*wordSize+len(payload))
	data = append(data, encodeUint(wordSize)...) // offset of the bytes value
	data = append(data, encodeUint(uint64(len(payload)))...)
	data = append(data, payload...)
	if pad := len(payload) % wordSize; pad != 0 {
		data = append(data, make([]byte, wordSize-pad)...)
	}

	return "0x" + hex.EncodeToString(data)
}

// argWord returns the word-th 32-byte slot of the call arguments.
func argWord(args []byte, word int) ([]byte, error) {
	start := word * wordSize
	if start < 0 || start+wordSize > len(args) {
		return nil, fmt.Errorf("abi: call arguments have no word %d", word)
	}

	return args[start : start+wordSize], nil
}
