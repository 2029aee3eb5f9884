// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package store

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/Freeman45/encrypted-Diary/internal/logger"
)

const diaryBlobsTable = "diary_blobs"

// buildSelectBlobQuery builds the SELECT for a single per-account blob.
// SQLite takes `?` placeholders, so the squirrel default format stays.
func buildSelectBlobQuery(ctx context.Context, storageKey string) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("payload").
		From(diaryBlobsTable).
		Where(sq.Eq{"storage_key": storageKey}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildSelectBlobQuery").Msg("failed to build select query")
		return "", nil, err
	}

	return query, args, nil
}

// buildUpsertBlobQuery builds the whole-list replacement write: one row per
// storage key, INSERT on first save, overwrite afterwards.
func buildUpsertBlobQuery(ctx context.Context, storageKey, payload string, updatedAt time.Time) (string, []any, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Insert(diaryBlobsTable).
		Columns("storage_key", "payload", "updated_at").
		Values(storageKey, payload, updatedAt).
		Suffix("ON CONFLICT(storage_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildUpsertBlobQuery").Msg("failed to build upsert query")
		return "", nil, err
	}

	return query, args, nil
}
