// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package ethabi

import (
	"fmt"
	"strings"
)

// addressLength is the byte length of an Ethereum account address.
const addressLength = 20

// IsValidAddress reports whether address is a well-formed 0x-prefixed
// 20-byte hex address. Checksum casing is not verified here.
func IsValidAddress(address string) bool {
	if !strings.HasPrefix(address, "0x") {
		return false
	}

	_, err := parseAddress(address)
	return err == nil
}

// ChecksumAddress returns the EIP-55 mixed-case checksum form of address.
// The input may be in any casing; an error is returned for malformed
// addresses.
func ChecksumAddress(address string) (string, error) {
	if _, err := parseAddress(address); err != nil {
		return "", err
	}

	lower := strings.ToLower(strings.TrimPrefix(address, "0x"))
	digest := keccak256([]byte(lower))

	out := []byte(lower)
	for i, ch := range out {
		if ch < 'a' || ch > 'f' {
			continue
		}

		// Nibble i of the digest decides the casing of character i.
		nibble := digest[i/2]
		if i%2 == 0 {
			nibble >>= 4
		} else {
			nibble &= 0x0f
		}

		if nibble >= 8 {
			out[i] = ch - ('a' - 'A')
		}
	}

	return "0x" + string(out), nil
}

// VerifyChecksum reports whether a mixed-case address carries a valid
// EIP-55 checksum. All-lowercase and all-uppercase addresses carry no
// checksum and are accepted as-is.
func VerifyChecksum(address string) (bool, error) {
	hexPart := strings.TrimPrefix(address, "0x")
	if hexPart == strings.ToLower(hexPart) || hexPart == strings.ToUpper(hexPart) {
		return IsValidAddress(address), nil
	}

	checksummed, err := ChecksumAddress(address)
	if err != nil {
		return false, fmt.Errorf("verify checksum: %w", err)
	}

	return address == checksummed, nil
}
