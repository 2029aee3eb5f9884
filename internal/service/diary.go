// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Freeman45/encrypted-Diary/internal/config"
	"github.com/Freeman45/encrypted-Diary/internal/crypto"
	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/internal/store"
	"github.com/Freeman45/encrypted-Diary/internal/utils"
	"github.com/Freeman45/encrypted-Diary/internal/wallet"
	"github.com/Freeman45/encrypted-Diary/models"
)

type diaryService struct {
	repo     store.EntryRepository
	cipher   crypto.DiaryCipher
	journal  wallet.ContractJournal
	contract config.ClientContract
	uuid     *utils.UUIDGenerator

	// mu guards the session state below. Bubbletea commands run on their
	// own goroutines, so saves can race the view reading the list.
	mu      sync.RWMutex
	address string
	key     []byte
	entries []models.DiaryEntry
}

// NewDiaryService wires the diary use cases over the given repository,
// cipher and contract journal. The journal may be nil when the build has no
// wallet at all; RemoteEnabled then stays false.
func NewDiaryService(repo store.EntryRepository, cipher crypto.DiaryCipher, journal wallet.ContractJournal, contract config.ClientContract) DiaryService {
	return &diaryService{
		repo:     repo,
		cipher:   cipher,
		journal:  journal,
		contract: contract,
		uuid:     utils.NewUUIDGenerator(),
	}
}

func (d *diaryService) Unlock(ctx context.Context, walletAddress string) error {
	log := logger.FromContext(ctx)

	if walletAddress == "" {
		return ErrNoAccount
	}

	key := d.cipher.DeriveKey(walletAddress)

	stored, err := d.repo.Load(ctx, walletAddress)
	if err != nil {
		return fmt.Errorf("load diary for %s: %w", walletAddress, err)
	}

	entries := make([]models.DiaryEntry, 0, len(stored))
	for _, entry := range stored {
		entry.IsVisible = false
		plaintext, decErr := d.cipher.Decrypt(entry.Ciphertext, key)
		if decErr != nil {
			// запись остаётся в списке, Reveal сообщит о проблеме
			log.Warn().
				Str("entry_id", entry.ID).
				Msg("stored entry failed to decrypt")
		} else {
			entry.Plaintext = plaintext
		}
		entries = append(entries, entry)
	}

	// Blobs are written most recent first; sorting keeps the promise even
	// for blobs touched by older builds.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	d.mu.Lock()
	d.address = walletAddress
	d.key = key
	d.entries = entries
	d.mu.Unlock()

	log.Debug().
		Str("address", walletAddress).
		Int("entries", len(entries)).
		Msg("diary unlocked")

	return nil
}

func (d *diaryService) Lock() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.key {
		d.key[i] = 0
	}
	d.key = nil
	d.address = ""
	d.entries = nil
}

func (d *diaryService) Address() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.address
}

func (d *diaryService) SaveEntry(ctx context.Context, text string) (models.DiaryEntry, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(text) == "" {
		return models.DiaryEntry{}, ErrEmptyEntry
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.address == "" {
		return models.DiaryEntry{}, ErrNoAccount
	}

	record, err := d.cipher.BuildRecord(text, d.address, d.key)
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("encrypt entry: %w", err)
	}

	entry := models.DiaryEntry{
		ID:         d.uuid.Generate(),
		Plaintext:  text,
		Ciphertext: record.Ciphertext,
		Hash:       record.Hash,
		Timestamp:  time.UnixMilli(record.Timestamp).UTC(),
	}

	// весь список перезаписывается целиком: последняя запись побеждает
	updated := make([]models.DiaryEntry, 0, len(d.entries)+1)
	updated = append(updated, entry)
	updated = append(updated, d.entries...)

	if err = d.repo.Save(ctx, d.address, updated); err != nil {
		// память не трогаем: список в памяти соответствует хранилищу
		return models.DiaryEntry{}, fmt.Errorf("persist diary: %w", err)
	}
	d.entries = updated

	log.Debug().
		Str("entry_id", entry.ID).
		Int("entries", len(updated)).
		Msg("entry saved")

	return entry, nil
}

func (d *diaryService) SubmitEntry(ctx context.Context, entryID string) (string, error) {
	log := logger.FromContext(ctx)

	if !d.RemoteEnabled() {
		return "", ErrRemoteDisabled
	}

	d.mu.RLock()
	address := d.address
	entry, found := d.findLocked(entryID)
	d.mu.RUnlock()

	if address == "" {
		return "", ErrNoAccount
	}
	if !found {
		return "", ErrEntryNotFound
	}

	record := &models.EncryptedDiaryEntry{
		Ciphertext:    entry.Ciphertext,
		Timestamp:     entry.Timestamp.UnixMilli(),
		Hash:          entry.Hash,
		WalletAddress: address,
	}

	payload, err := d.cipher.Serialize(record)
	if err != nil {
		return "", fmt.Errorf("%w: serialize record: %w", ErrRemoteSubmission, err)
	}

	txHash, err := d.journal.SubmitEntry(ctx, []byte(payload))
	if err != nil {
		log.Warn().
			Err(err).
			Str("entry_id", entryID).
			Msg("on-chain submission failed, entry kept locally")
		return "", fmt.Errorf("%w: %w", ErrRemoteSubmission, err)
	}

	log.Info().
		Str("entry_id", entryID).
		Str("tx", txHash).
		Msg("entry submitted on-chain")

	return txHash, nil
}

func (d *diaryService) RemoteEnabled() bool {
	return d.journal != nil && d.contract.Enabled && d.contract.Address != ""
}

func (d *diaryService) Entries() []models.DiaryEntry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entries := make([]models.DiaryEntry, len(d.entries))
	copy(entries, d.entries)

	return entries
}

func (d *diaryService) ToggleVisibility(entryID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.entries {
		if d.entries[i].ID == entryID {
			d.entries[i].IsVisible = !d.entries[i].IsVisible
			return true
		}
	}

	return false
}

func (d *diaryService) Reveal(entryID string) models.RevealResult {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.address == "" {
		return models.RevealResult{Valid: false, Reason: "session is locked"}
	}

	entry, found := d.findLocked(entryID)
	if !found {
		return models.RevealResult{Valid: false, Reason: "entry not found"}
	}

	record := &models.EncryptedDiaryEntry{
		Ciphertext:    entry.Ciphertext,
		Timestamp:     entry.Timestamp.UnixMilli(),
		Hash:          entry.Hash,
		WalletAddress: d.address,
	}

	return d.cipher.DecryptAndVerify(record, d.key)
}

func (d *diaryService) DeleteEntry(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.address == "" {
		return ErrNoAccount
	}

	index := -1
	for i := range d.entries {
		if d.entries[i].ID == entryID {
			index = i
			break
		}
	}
	if index == -1 {
		// удаление несуществующей записи — не ошибка
		return nil
	}

	updated := make([]models.DiaryEntry, 0, len(d.entries)-1)
	updated = append(updated, d.entries[:index]...)
	updated = append(updated, d.entries[index+1:]...)

	if err := d.repo.Save(ctx, d.address, updated); err != nil {
		return fmt.Errorf("persist diary after delete: %w", err)
	}
	d.entries = updated

	log.Debug().
		Str("entry_id", entryID).
		Int("entries", len(updated)).
		Msg("entry deleted")

	return nil
}

// findLocked looks an entry up by id. Callers must hold d.mu.
func (d *diaryService) findLocked(entryID string) (models.DiaryEntry, bool) {
	for i := range d.entries {
		if d.entries[i].ID == entryID {
			return d.entries[i], true
		}
	}
	return models.DiaryEntry{}, false
}
