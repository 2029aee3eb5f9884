package store

import (
	"context"

	"github.com/Freeman45/encrypted-Diary/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/entry_repository_mock.go -package=mock

// EntryRepository is the local persistence surface for diary entries.
//
// Entries are stored per wallet address as one serialized list: every Save
// replaces the previous list for that address (last writer wins). Persisted
// entries carry ciphertext and integrity hash only, never plaintext.
type EntryRepository interface {
	// Load returns the stored entry list for the wallet address, most
	// recent first. An address that has never saved yields an empty list.
	Load(ctx context.Context, walletAddress string) ([]models.DiaryEntry, error)

	// Save replaces the stored entry list for the wallet address.
	Save(ctx context.Context, walletAddress string, entries []models.DiaryEntry) error
}
