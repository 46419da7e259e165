// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/render"
	"github.com/olegiv/opres-go/internal/store"
)

func testStore(t *testing.T) *store.Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	return store.New(nil, logger)
}

func TestLayoutCacheKeyCarriesRevision(t *testing.T) {
	lc := NewLayoutCache(newTestCache(t), time.Minute)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	k1 := lc.Key("p1", model.LangEN, at)
	k2 := lc.Key("p1", model.LangEN, at.Add(time.Nanosecond))
	k3 := lc.Key("p1", model.LangZhTW, at)

	if !strings.HasPrefix(k1, layoutKeyPrefix) {
		t.Errorf("key %q lacks the layout prefix", k1)
	}
	if k1 == k2 {
		t.Error("different revisions must produce different keys")
	}
	if k1 == k3 {
		t.Error("different languages must produce different keys")
	}
}

func TestLayoutCacheGetOrRender(t *testing.T) {
	backend := newTestCache(t)
	lc := NewLayoutCache(backend, time.Minute)
	reg := render.NewRegistry()
	s := testStore(t)
	ctx := context.Background()

	snap := s.Snapshot()
	pageID := snap.Presentation.Pages[0].ID

	l1, err := lc.GetOrRender(ctx, reg, snap, pageID, model.LangEN)
	if err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}
	if l1.PageType != model.PageCover {
		t.Errorf("layout type = %q", l1.PageType)
	}

	// Second call under the same revision is a hit.
	before := backend.Stats().Hits
	if _, err := lc.GetOrRender(ctx, reg, snap, pageID, model.LangEN); err != nil {
		t.Fatalf("second GetOrRender: %v", err)
	}
	if backend.Stats().Hits != before+1 {
		t.Error("repeat render under one revision must hit the cache")
	}

	if _, err := lc.GetOrRender(ctx, reg, snap, "absent", model.LangEN); err == nil {
		t.Error("a page missing from the snapshot must be an error")
	}
}

// layoutContains searches a layout tree for a span containing text.
func layoutContains(nodes []render.Node, text string) bool {
	for _, n := range nodes {
		for _, sp := range n.Spans {
			if strings.Contains(sp.Text, text) {
				return true
			}
		}
		if layoutContains(n.Children, text) {
			return true
		}
	}
	return false
}

func TestLayoutCacheServesCommittedContent(t *testing.T) {
	backend := newTestCache(t)
	lc := NewLayoutCache(backend, time.Minute)
	reg := render.NewRegistry()
	s := testStore(t)
	ctx := context.Background()

	pageID := s.Snapshot().Presentation.Pages[0].ID
	s.UpdateTranslatableField(pageID, model.KeyTitle, model.LangEN, "Committed Title")

	snap := s.Snapshot()
	l, err := lc.GetOrRender(ctx, reg, snap, pageID, model.LangEN)
	if err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}
	if !layoutContains(l.Nodes, "Committed Title") {
		t.Fatal("layout rendered at the current revision must carry the committed title")
	}

	// The entry cached under this revision serves the same content.
	cached, err := lc.GetOrRender(ctx, reg, snap, pageID, model.LangEN)
	if err != nil {
		t.Fatalf("cached GetOrRender: %v", err)
	}
	if !layoutContains(cached.Nodes, "Committed Title") {
		t.Error("cached layout diverges from the content committed at its revision")
	}
}

func TestLayoutCacheBindInvalidatesOnChange(t *testing.T) {
	backend := newTestCache(t)
	lc := NewLayoutCache(backend, time.Minute)
	reg := render.NewRegistry()
	s := testStore(t)
	ctx := context.Background()

	unsub := lc.Bind(s)
	defer unsub()

	snap := s.Snapshot()
	page := snap.Presentation.Pages[0]
	if _, err := lc.GetOrRender(ctx, reg, snap, page.ID, model.LangEN); err != nil {
		t.Fatalf("GetOrRender: %v", err)
	}

	key := lc.Key(page.ID, model.LangEN, snap.Presentation.UpdatedAt)
	if has, _ := backend.Has(ctx, key); !has {
		t.Fatal("layout not cached")
	}

	s.SetName("Changed")

	if has, _ := backend.Has(ctx, key); has {
		t.Error("document change must drop cached layouts")
	}
}
