// Package service contains the client-side use cases of the diary: an
// unlocked per-account session holding the derived key and the decrypted
// entry list, with local persistence and optional on-chain submission.
package service

import (
	"context"

	"github.com/Freeman45/encrypted-Diary/models"
)

// DiaryService is the diary session contract the UI works against.
//
// A session is bound to one wallet address. Unlock derives the encryption
// key from the address and loads that account's entries; Lock drops both.
// All list accessors operate on the in-memory session state and are safe
// for concurrent use.
type DiaryService interface {
	// Unlock opens the diary session for the wallet address: derives the
	// encryption key, loads the stored entry list and decrypts every entry
	// it can. Entries that no longer decrypt stay in the list without
	// plaintext and are reported through Reveal.
	Unlock(ctx context.Context, walletAddress string) error

	// Lock closes the session: the key material is wiped and the decrypted
	// entries are dropped from memory.
	Lock()

	// Address returns the wallet address of the unlocked session, or an
	// empty string when locked.
	Address() string

	// SaveEntry encrypts the text, prepends the new entry to the list and
	// persists the whole list. Empty or whitespace-only text is rejected
	// with ErrEmptyEntry; a locked session with ErrNoAccount.
	SaveEntry(ctx context.Context, text string) (models.DiaryEntry, error)

	// SubmitEntry sends the encrypted record of the given entry to the
	// diary contract and returns the transaction hash. The local copy is
	// the source of truth: a failure here never affects stored entries.
	SubmitEntry(ctx context.Context, entryID string) (string, error)

	// RemoteEnabled reports whether on-chain submission is configured.
	RemoteEnabled() bool

	// Entries returns the session's entries, most recent first.
	Entries() []models.DiaryEntry

	// ToggleVisibility flips the visibility flag of the entry and reports
	// whether the entry exists. Unknown ids are a no-op.
	ToggleVisibility(entryID string) bool

	// Reveal re-derives the plaintext of the entry from its stored
	// ciphertext and checks it against the stored digest. It never fails:
	// an undecryptable or tampered entry is reported in the result.
	Reveal(entryID string) models.RevealResult

	// DeleteEntry removes the entry from the list and persists the
	// remainder. Deleting an unknown id is a no-op.
	DeleteEntry(ctx context.Context, entryID string) error
}
