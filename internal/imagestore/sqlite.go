// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imagestore

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"
)

// SQLiteStore keeps image blobs in the images table alongside the
// presentation snapshot.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a blob store backed by an open database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// LoadImage implements Blobs.
func (s *SQLiteStore) LoadImage(ctx context.Context, key string) (string, bool, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM images WHERE key = ?`, key,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading image %s: %w", key, err)
	}
	return base64.StdEncoding.EncodeToString(data), true, nil
}

// SaveImage implements Blobs.
func (s *SQLiteStore) SaveImage(ctx context.Context, key, mimeType string, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO images (key, mime_type, data, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET
			mime_type = excluded.mime_type,
			data = excluded.data
	`, key, mimeType, data, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving image %s: %w", key, err)
	}
	return nil
}

// DeleteImage implements Blobs.
func (s *SQLiteStore) DeleteImage(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM images WHERE key = ?`, key); err != nil {
		return fmt.Errorf("deleting image %s: %w", key, err)
	}
	return nil
}

// MimeType returns the stored content type for a key.
func (s *SQLiteStore) MimeType(ctx context.Context, key string) (string, bool, error) {
	var mime string
	err := s.db.QueryRowContext(ctx,
		`SELECT mime_type FROM images WHERE key = ?`, key,
	).Scan(&mime)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("loading image %s: %w", key, err)
	}
	return mime, true, nil
}
