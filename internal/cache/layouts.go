// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/render"
	"github.com/olegiv/opres-go/internal/store"
)

const layoutKeyPrefix = "layout:"

// LayoutCache caches rendered page layouts. Keys carry the snapshot
// timestamp, so a key can never serve a layout computed from older
// content; Bind additionally drops the whole prefix whenever the
// document changes, keeping the backend from accumulating dead keys.
type LayoutCache struct {
	typed *TypedCache[render.Layout]
	cache Cacher
}

// NewLayoutCache creates a layout cache over a backend.
func NewLayoutCache(backend Cacher, ttl time.Duration) *LayoutCache {
	return &LayoutCache{
		typed: NewTypedCache[render.Layout](backend, ttl),
		cache: backend,
	}
}

// Key builds the cache key for one page in one language at one
// document revision.
func (c *LayoutCache) Key(pageID string, lang model.Language, updatedAt time.Time) string {
	return fmt.Sprintf("%s%s:%s:%d", layoutKeyPrefix, pageID, lang, updatedAt.UnixNano())
}

// GetOrRender returns the cached layout for a page, rendering and
// storing it on a miss. The page is resolved from the same snapshot
// the key's revision comes from, so an entry cached under a revision
// always reflects the content committed at that revision.
func (c *LayoutCache) GetOrRender(ctx context.Context, reg *render.Registry, snap store.Snapshot, pageID string, lang model.Language) (*render.Layout, error) {
	page, ok := snap.Presentation.PageByID(pageID)
	if !ok {
		return nil, fmt.Errorf("page %q not in snapshot", pageID)
	}
	key := c.Key(page.ID, lang, snap.Presentation.UpdatedAt)
	return c.typed.GetOrSet(ctx, key, func() (*render.Layout, error) {
		return reg.Render(page, lang), nil
	})
}

// Bind subscribes the cache to a store so every document change drops
// all cached layouts. Returns the unsubscribe function.
func (c *LayoutCache) Bind(s *store.Store) func() {
	return s.Subscribe(func(store.Snapshot) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = c.cache.DeleteByPrefix(ctx, layoutKeyPrefix)
	})
}
