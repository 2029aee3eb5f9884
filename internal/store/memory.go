package store

import (
	"context"
	"sync"

	"github.com/Freeman45/encrypted-Diary/models"
)

// memoryEntryRepository keeps entry lists in a map, one slice per storage
// key. It honors the same last-writer-wins contract as the SQLite
// repository and is handy wherever a database is overkill.
type memoryEntryRepository struct {
	mu    sync.RWMutex
	blobs map[string][]models.DiaryEntry
}

// NewMemoryEntryRepository returns an in-memory [EntryRepository].
func NewMemoryEntryRepository() EntryRepository {
	return &memoryEntryRepository{
		blobs: make(map[string][]models.DiaryEntry),
	}
}

func (m *memoryEntryRepository) Load(_ context.Context, walletAddress string) ([]models.DiaryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.blobs[storageKey(walletAddress)]
	if !ok {
		return nil, nil
	}

	// копия: вызывающий не должен менять хранилище через общий слайс
	entries := make([]models.DiaryEntry, len(stored))
	copy(entries, stored)

	return entries, nil
}

func (m *memoryEntryRepository) Save(_ context.Context, walletAddress string, entries []models.DiaryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]models.DiaryEntry, len(entries))
	copy(stored, entries)

	// то же, что делает json:"-" в SQLite-репозитории: открытый текст и
	// флаг видимости до хранилища не доходят
	for i := range stored {
		stored[i].Plaintext = ""
		stored[i].IsVisible = false
	}

	m.blobs[storageKey(walletAddress)] = stored

	return nil
}
