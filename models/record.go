// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package models

// EncryptedDiaryEntry is the canonical persisted form of a diary entry.
// It contains no plaintext and is safe to store locally or submit on-chain.
type EncryptedDiaryEntry struct {
	// Ciphertext is the base64-encoded encrypted payload (nonce||ciphertext).
	Ciphertext string `json:"ciphertext"`

	// Timestamp is the creation time in milliseconds since the Unix epoch.
	Timestamp int64 `json:"timestamp"`

	// Hash is the hex-encoded SHA-256 digest of the plaintext,
	// recorded before encryption.
	Hash string `json:"hash"`

	// WalletAddress is the account that owns the entry.
	WalletAddress string `json:"walletAddress"`
}

// RevealResult is the outcome of decrypting an entry and checking its
// integrity. Decryption problems are reported through the fields rather
// than an error: a tampered or undecryptable entry is an expected state,
// not a failure of the caller.
type RevealResult struct {
	// Plaintext is the decrypted text. Empty when Valid is false.
	Plaintext string `json:"-"`

	// Valid reports whether decryption succeeded and the digest of the
	// decrypted text matched the stored hash.
	Valid bool `json:"valid"`

	// Reason describes why Valid is false. Empty on success.
	Reason string `json:"reason,omitempty"`
}
