package models

import "time"

// DiaryEntry represents a single diary record as the client works with it.
// The plaintext lives only in memory: persisted copies carry the ciphertext,
// the integrity hash and the metadata needed to re-derive the plaintext later.
type DiaryEntry struct {
	// ID is the unique time-ordered identifier of the entry.
	// Generated on the client at save time and never changed afterwards.
	ID string `json:"id"`

	// Plaintext is the decrypted diary text.
	// It is never serialized and never leaves the process.
	Plaintext string `json:"-"`

	// Ciphertext holds the encrypted entry payload in transportable form
	// (base64 of nonce||ciphertext).
	Ciphertext string `json:"ciphertext"`

	// Hash is the hex-encoded SHA-256 digest of the original plaintext.
	// Used to verify integrity after decryption.
	Hash string `json:"hash"`

	// Timestamp is the creation time of the entry.
	Timestamp time.Time `json:"timestamp"`

	// IsVisible reports whether the UI currently shows the decrypted text.
	// Presentation state only, not persisted.
	IsVisible bool `json:"-"`
}
