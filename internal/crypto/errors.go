package crypto

import "errors"

// Errors returned by [DiaryCipher] implementations.
var (
	// ErrEncryption indicates that building the ciphertext failed
	// (cipher construction or nonce generation).
	ErrEncryption = errors.New("encryption failed")
	// ErrDecryption indicates that the ciphertext could not be decrypted:
	// wrong key, truncated blob, or failed authentication tag.
	ErrDecryption = errors.New("decryption failed")
	// ErrMalformedRecord indicates that a serialized record could not be
	// parsed back into its canonical form.
	ErrMalformedRecord = errors.New("malformed diary record")
)
