// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SchemaVersion tags persisted snapshots so shape changes to any
// content factory are detected on load instead of silently producing
// mixed-shape data.
const SchemaVersion = 1

// Persister saves and loads the full store snapshot.
type Persister interface {
	Save(ctx context.Context, snap Snapshot) error
	Load(ctx context.Context) (Snapshot, bool, error)
}

// SQLitePersister persists snapshots as versioned JSON rows.
type SQLitePersister struct {
	db *sql.DB
}

// NewSQLitePersister creates a persister over an open database.
func NewSQLitePersister(db *sql.DB) *SQLitePersister {
	return &SQLitePersister{db: db}
}

// Save upserts the snapshot row keyed by presentation ID.
func (p *SQLitePersister) Save(ctx context.Context, snap Snapshot) error {
	if snap.Presentation == nil {
		return errors.New("snapshot has no presentation")
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO snapshots (presentation_id, schema_version, data, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (presentation_id) DO UPDATE SET
			schema_version = excluded.schema_version,
			data = excluded.data,
			updated_at = excluded.updated_at`,
		snap.Presentation.ID, SchemaVersion, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}

// Load returns the most recently updated snapshot. Unknown schema
// versions and undecodable payloads report not-found so the caller
// starts from a fresh default instead of propagating corruption.
func (p *SQLitePersister) Load(ctx context.Context) (Snapshot, bool, error) {
	var (
		version int
		data    string
	)
	err := p.db.QueryRowContext(ctx, `
		SELECT schema_version, data FROM snapshots
		ORDER BY updated_at DESC LIMIT 1`).Scan(&version, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("loading snapshot: %w", err)
	}

	data, ok := migrateSnapshot(version, data)
	if !ok {
		return Snapshot{}, false, nil
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return Snapshot{}, false, nil
	}
	return snap, true, nil
}

// migrateSnapshot upgrades a persisted payload to the current schema
// version. There is exactly one version so far; anything else is
// treated as unreadable.
func migrateSnapshot(version int, data string) (string, bool) {
	if version != SchemaVersion {
		return "", false
	}
	return data, true
}
