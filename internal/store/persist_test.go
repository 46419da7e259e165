// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/olegiv/opres-go/internal/model"
)

func testDB(t *testing.T) *SQLitePersister {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "opres-test.db")
	db, err := NewDB(dbPath)
	if err != nil {
		t.Fatalf("NewDB: %v", err)
	}
	if err := Migrate(db); err != nil {
		_ = db.Close()
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
		_ = os.Remove(dbPath)
	})
	return NewSQLitePersister(db)
}

func TestSQLitePersisterRoundTrip(t *testing.T) {
	p := testDB(t)
	ctx := context.Background()

	pres := model.NewPresentation("Persisted", "")
	snap := Snapshot{
		Presentation:    pres,
		SelectedPageID:  pres.Pages[0].ID,
		PreviewLanguage: model.LangZhTW,
	}

	if err := p.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := p.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("saved snapshot not found")
	}
	if got.Presentation.Name != "Persisted" {
		t.Errorf("Name = %q", got.Presentation.Name)
	}
	if got.SelectedPageID != pres.Pages[0].ID {
		t.Errorf("SelectedPageID = %q", got.SelectedPageID)
	}
	if got.PreviewLanguage != model.LangZhTW {
		t.Errorf("PreviewLanguage = %q", got.PreviewLanguage)
	}
	if len(got.Presentation.Pages) != 1 || got.Presentation.Pages[0].Type != model.PageCover {
		t.Error("pages did not survive the round trip")
	}
}

func TestSQLitePersisterUpsertsSameID(t *testing.T) {
	p := testDB(t)
	ctx := context.Background()

	pres := model.NewPresentation("First", "")
	snap := Snapshot{Presentation: pres, SelectedPageID: pres.Pages[0].ID, PreviewLanguage: model.LangEN}
	if err := p.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	pres.Name = "Second"
	if err := p.Save(ctx, snap); err != nil {
		t.Fatalf("second Save: %v", err)
	}

	got, found, err := p.Load(ctx)
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if got.Presentation.Name != "Second" {
		t.Errorf("Name = %q, want the upserted value", got.Presentation.Name)
	}
}

func TestSQLitePersisterEmptyReportsNotFound(t *testing.T) {
	p := testDB(t)

	_, found, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found {
		t.Error("empty table must report not found")
	}
}

func TestMigrateSnapshotRejectsUnknownVersion(t *testing.T) {
	if _, ok := migrateSnapshot(SchemaVersion+1, "{}"); ok {
		t.Error("future schema version must be unreadable")
	}
	if data, ok := migrateSnapshot(SchemaVersion, "{}"); !ok || data != "{}" {
		t.Error("current schema version must pass through")
	}
}

func TestNewStoreDegradesOnVersionMismatch(t *testing.T) {
	p := testDB(t)
	ctx := context.Background()

	pres := model.NewPresentation("Old shape", "")
	snap := Snapshot{Presentation: pres, SelectedPageID: pres.Pages[0].ID, PreviewLanguage: model.LangEN}
	if err := p.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// Force a version bump on the stored row.
	if _, err := p.db.ExecContext(ctx,
		`UPDATE snapshots SET schema_version = ?`, SchemaVersion+99); err != nil {
		t.Fatalf("forcing version: %v", err)
	}

	s := New(p, nil)
	if got := s.Snapshot().Presentation.Name; got == "Old shape" {
		t.Error("mismatched schema version must degrade to a fresh presentation")
	}
}
