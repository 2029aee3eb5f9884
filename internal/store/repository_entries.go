// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Freeman45/encrypted-Diary/internal/logger"
	"github.com/Freeman45/encrypted-Diary/models"
)

// entriesKeyPrefix prefixes the wallet address to form the storage key, so
// every account keeps its own diary list under a predictable name.
const entriesKeyPrefix = "diary_entries_"

type entryRepository struct {
	*DB
	logger *logger.Logger
}

// NewEntryRepository returns the SQLite-backed [EntryRepository].
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	return &entryRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *entryRepository) Load(ctx context.Context, walletAddress string) ([]models.DiaryEntry, error) {
	log := logger.FromContext(ctx)
	key := storageKey(walletAddress)

	query, args, err := buildSelectBlobQuery(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err = row.Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// первый вход с этого аккаунта: дневник ещё пуст
			return nil, nil
		}
		log.Err(err).
			Str("func", "entryRepository.Load").
			Str("storage_key", key).
			Msg("failed to read diary blob")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var entries []models.DiaryEntry
	if err = json.Unmarshal([]byte(payload), &entries); err != nil {
		log.Err(err).
			Str("func", "entryRepository.Load").
			Str("storage_key", key).
			Msg("stored blob is not a valid entry list")
		return nil, fmt.Errorf("%w: %w", ErrDecodingEntries, err)
	}

	return entries, nil
}

func (r *entryRepository) Save(ctx context.Context, walletAddress string, entries []models.DiaryEntry) error {
	log := logger.FromContext(ctx)
	key := storageKey(walletAddress)

	if entries == nil {
		entries = []models.DiaryEntry{}
	}

	// Plaintext and IsVisible carry `json:"-"` and never reach the blob.
	payload, err := json.Marshal(entries)
	if err != nil {
		log.Err(err).
			Str("func", "entryRepository.Save").
			Str("storage_key", key).
			Msg("failed to encode entry list")
		return fmt.Errorf("%w: %w", ErrEncodingEntries, err)
	}

	query, args, err := buildUpsertBlobQuery(ctx, key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "entryRepository.Save").
			Str("storage_key", key).
			Int("entries", len(entries)).
			Msg("failed to write diary blob")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func storageKey(walletAddress string) string {
	return entriesKeyPrefix + walletAddress
}
