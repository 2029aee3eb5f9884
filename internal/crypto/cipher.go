// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/Freeman45/encrypted-Diary/models"
)

// Reasons reported by [DiaryCipher.DecryptAndVerify] when a record cannot
// be revealed.
const (
	ReasonUndecryptable = "decryption failed"
	ReasonHashMismatch  = "integrity check failed"
)

// keyDerivationSalt is the fixed application salt for Argon2id. Key
// derivation must be deterministic per wallet address, so the salt is a
// compile-time constant rather than a random value.
var keyDerivationSalt = []byte("encrypted-diary/key-derivation/v1")

// diaryCipher is the private implementation of [DiaryCipher].
type diaryCipher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewDiaryCipher constructs a [DiaryCipher] with the Argon2id parameters
// recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewDiaryCipher() DiaryCipher {
	return &diaryCipher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// DeriveKey implements [DiaryCipher]. It derives a 256-bit encryption key
// from the wallet address using Argon2id with the parameters stored in the
// receiver. The address is lowercased first, so checksummed and plain
// spellings of the same account produce the same key.
//
// The address is public, so the derived key shields stored blobs from
// casual inspection rather than from a determined attacker holding the
// address.
func (c *diaryCipher) DeriveKey(walletAddress string) []byte {
	normalized := strings.ToLower(strings.TrimSpace(walletAddress))

	return argon2.IDKey(
		[]byte(normalized),
		keyDerivationSalt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)
}

// Encrypt implements [DiaryCipher]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that the decryption side can locate it: blob = nonce || ciphertext.
// The blob is returned Base64-encoded (standard encoding).
func (c *diaryCipher) Encrypt(plaintext string, key []byte) (string, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %w", ErrEncryption, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: create gcm: %w", ErrEncryption, err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	// Prepend the nonce so Decrypt can split it out without extra state.
	ciphertext := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [DiaryCipher]. It Base64-decodes the blob produced by
// [diaryCipher.Encrypt], splits out the nonce, and decrypts the ciphertext
// with key via AES-256-GCM. Returns ErrDecryption if the blob is malformed,
// the key is wrong, or the authentication tag does not match.
func (c *diaryCipher) Decrypt(ciphertext string, key []byte) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrDecryption, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %w", ErrDecryption, err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("%w: create gcm: %w", ErrDecryption, err)
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecryption)
	}

	// Split the blob into nonce and actual ciphertext.
	nonce, sealed := blob[:nonceSize], blob[nonceSize:]

	// Decrypt and verify auth tag. An error here almost always means the
	// blob belongs to a different account, producing a wrong key.
	plaintext, err := gcm.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

// Hash implements [DiaryCipher]. It returns the hex-encoded SHA-256 digest
// of text.
func (c *diaryCipher) Hash(text string) string {
	digest := sha256.Sum256([]byte(text))
	return hex.EncodeToString(digest[:])
}

// VerifyIntegrity implements [DiaryCipher]. It recomputes the digest of
// text and compares it with expectedHash. Hex case differences are ignored.
func (c *diaryCipher) VerifyIntegrity(text, expectedHash string) bool {
	return c.Hash(text) == strings.ToLower(expectedHash)
}

// BuildRecord implements [DiaryCipher]. It assembles the canonical persisted
// form of a diary entry: the plaintext is hashed, encrypted with key, and
// stamped with the current time in milliseconds since the Unix epoch.
func (c *diaryCipher) BuildRecord(plaintext, walletAddress string, key []byte) (*models.EncryptedDiaryEntry, error) {
	ciphertext, err := c.Encrypt(plaintext, key)
	if err != nil {
		return nil, err
	}

	return &models.EncryptedDiaryEntry{
		Ciphertext:    ciphertext,
		Timestamp:     time.Now().UnixMilli(),
		Hash:          c.Hash(plaintext),
		WalletAddress: walletAddress,
	}, nil
}

// Serialize implements [DiaryCipher]. It packs the record into its canonical
// JSON form.
func (c *diaryCipher) Serialize(record *models.EncryptedDiaryEntry) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}

	return string(data), nil
}

// Deserialize implements [DiaryCipher]. It parses the canonical JSON form
// back into a record. A payload that is not valid JSON or carries no
// ciphertext yields ErrMalformedRecord.
func (c *diaryCipher) Deserialize(data string) (*models.EncryptedDiaryEntry, error) {
	var record models.EncryptedDiaryEntry
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	if record.Ciphertext == "" {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrMalformedRecord)
	}

	return &record, nil
}

// DecryptAndVerify implements [DiaryCipher]. It decrypts the record with key
// and checks the digest of the decrypted text against the stored hash.
//
// The method never returns an error: a record that cannot be decrypted or
// fails the integrity check is an expected state (foreign key, bit rot,
// tampering) and is reported through the result fields.
func (c *diaryCipher) DecryptAndVerify(record *models.EncryptedDiaryEntry, key []byte) models.RevealResult {
	if record == nil {
		return models.RevealResult{Valid: false, Reason: ReasonUndecryptable}
	}

	plaintext, err := c.Decrypt(record.Ciphertext, key)
	if err != nil {
		return models.RevealResult{Valid: false, Reason: ReasonUndecryptable}
	}

	if !c.VerifyIntegrity(plaintext, record.Hash) {
		return models.RevealResult{Valid: false, Reason: ReasonHashMismatch}
	}

	return models.RevealResult{Plaintext: plaintext, Valid: true}
}
