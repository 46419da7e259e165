// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store holds the single source of truth for presentation
// content. Every mutation is copy-on-write: a new immutable snapshot
// replaces the previous one, is persisted, and is delivered to
// subscribers. Snapshots handed out are never mutated afterwards, so
// consumers may hold on to them across renders.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/olegiv/opres-go/internal/model"
)

// Snapshot is the full immutable store state at one point in time.
type Snapshot struct {
	Presentation    *model.Presentation `json:"presentation"`
	SelectedPageID  string              `json:"selectedPageId"`
	PreviewLanguage model.Language      `json:"previewLanguage"`
}

// Subscriber receives every new snapshot after a mutation commits.
type Subscriber func(Snapshot)

// Store is the content mutation store. It is constructed explicitly
// and passed down; there is no package-level instance.
type Store struct {
	mu        sync.Mutex
	snap      Snapshot
	persister Persister
	logger    *slog.Logger

	subMu   sync.Mutex
	subs    map[int]Subscriber
	nextSub int
}

// New creates a store, rehydrating the last persisted snapshot when
// one exists. A snapshot that cannot be loaded degrades to a fresh
// default presentation rather than failing startup.
func New(persister Persister, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		persister: persister,
		logger:    logger.With("component", "store"),
		subs:      make(map[int]Subscriber),
	}

	snap, ok := s.load()
	if !ok {
		pres := model.NewPresentation("Untitled presentation", "")
		snap = Snapshot{
			Presentation:    pres,
			SelectedPageID:  pres.Pages[0].ID,
			PreviewLanguage: model.DefaultLanguage,
		}
	}
	s.snap = snap
	return s
}

func (s *Store) load() (Snapshot, bool) {
	if s.persister == nil {
		return Snapshot{}, false
	}
	snap, found, err := s.persister.Load(context.Background())
	if err != nil {
		s.logger.Warn("loading persisted snapshot failed, starting fresh", "error", err)
		return Snapshot{}, false
	}
	if !found || snap.Presentation == nil {
		return Snapshot{}, false
	}
	return snap, true
}

// Snapshot returns the current immutable snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Subscribe registers fn for snapshot notifications and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// Flush persists the current snapshot. Called at shutdown.
func (s *Store) Flush(ctx context.Context) error {
	s.mu.Lock()
	snap := s.snap
	s.mu.Unlock()
	if s.persister == nil {
		return nil
	}
	return s.persister.Save(ctx, snap)
}

// mutate runs fn against a cloned presentation under the store lock.
// When fn reports a change, UpdatedAt is stamped, the new snapshot is
// committed and persisted, and subscribers are notified. When fn
// reports no change the current snapshot stays in place untouched.
func (s *Store) mutate(fn func(snap *Snapshot, pres *model.Presentation) bool) {
	s.mu.Lock()
	next := s.snap
	pres := s.snap.Presentation.Clone()
	next.Presentation = pres

	if !fn(&next, pres) {
		s.mu.Unlock()
		return
	}

	pres.UpdatedAt = time.Now().UTC()
	s.snap = next
	s.persist(next)
	s.mu.Unlock()

	s.notify(next)
}

// focus updates UI-focus state only: no clone, no UpdatedAt stamp, no
// persistence side effects beyond the snapshot swap itself.
func (s *Store) focus(fn func(snap *Snapshot)) {
	s.mu.Lock()
	next := s.snap
	fn(&next)
	s.snap = next
	s.persist(next)
	s.mu.Unlock()

	s.notify(next)
}

// persist writes the snapshot, best-effort. Persistence failures are
// logged and never surface into the mutation path.
func (s *Store) persist(snap Snapshot) {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(context.Background(), snap); err != nil {
		s.logger.Error("persisting snapshot failed", "error", err)
	}
}

func (s *Store) notify(snap Snapshot) {
	s.subMu.Lock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// SelectPage sets the selected page. No validation beyond existence is
// performed; unknown IDs are kept as-is to match the permissive focus
// contract.
func (s *Store) SelectPage(id string) {
	s.focus(func(snap *Snapshot) {
		snap.SelectedPageID = id
	})
}

// SetPreviewLanguage sets the language used by preview rendering.
func (s *Store) SetPreviewLanguage(lang model.Language) {
	if !lang.IsValid() {
		return
	}
	s.focus(func(snap *Snapshot) {
		snap.PreviewLanguage = lang
	})
}

// SetName renames the presentation.
func (s *Store) SetName(name string) {
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		pres.Name = name
		return true
	})
}

// UpdateTranslatableField applies the translation mutation contract to
// one content field. Absent keys and plain-string values are silent
// no-ops: a contract mismatch the store tolerates rather than crashes
// on.
func (s *Store) UpdateTranslatableField(pageID, key string, lang model.Language, value string) {
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(pageID)
		if idx < 0 {
			return false
		}
		page := &pres.Pages[idx]
		v, ok := page.Content[key]
		if !ok || v.Kind != model.ValueField {
			return false
		}
		page.Content[key] = model.FieldValue(model.UpdateField(v.Field, lang, value))
		return true
	})
}

// SetTranslationStatus marks a non-English translation of one field,
// typically reviewed after a human pass or auto-translated after
// machine translation. English has no status; asking for it is a no-op,
// as are unknown pages, keys, and plain-string values.
func (s *Store) SetTranslationStatus(pageID, key string, lang model.Language, status model.TranslationStatus) {
	if lang == model.LangEN || !lang.IsValid() {
		return
	}
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(pageID)
		if idx < 0 {
			return false
		}
		page := &pres.Pages[idx]
		v, ok := page.Content[key]
		if !ok || v.Kind != model.ValueField {
			return false
		}
		f := v.Field.Clone()
		f.Status[lang] = status
		page.Content[key] = model.FieldValue(f)
		return true
	})
}

// UpdateStringField unconditionally replaces a plain string field:
// JSON-encoded sub-document arrays, mode flags, and scalar values all
// go through here.
func (s *Store) UpdateStringField(pageID, key, value string) {
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(pageID)
		if idx < 0 {
			return false
		}
		pres.Pages[idx].Content[key] = model.StringValue(value)
		return true
	})
}

// UpdateStringFields replaces several string fields of one page in a
// single snapshot swap. Used where one user action rewrites multiple
// arrays together, such as the flow-chart node/arrow cascade.
func (s *Store) UpdateStringFields(pageID string, fields map[string]string) {
	if len(fields) == 0 {
		return
	}
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(pageID)
		if idx < 0 {
			return false
		}
		for k, v := range fields {
			pres.Pages[idx].Content[k] = model.StringValue(v)
		}
		return true
	})
}

// AddPage appends a page built from the type's factory, assigns it the
// next dense order index, and selects it.
func (s *Store) AddPage(t model.PageType) string {
	if !t.IsValid() {
		return ""
	}
	page := model.NewPage(t)
	s.mutate(func(snap *Snapshot, pres *model.Presentation) bool {
		page.Order = len(pres.Pages)
		pres.Pages = append(pres.Pages, page)
		snap.SelectedPageID = page.ID
		return true
	})
	return page.ID
}

// DeletePage removes a page and renumbers the remainder densely. When
// the deleted page was selected, selection falls back to page 0.
func (s *Store) DeletePage(id string) {
	s.mutate(func(snap *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(id)
		if idx < 0 {
			return false
		}
		pres.Pages = append(pres.Pages[:idx], pres.Pages[idx+1:]...)
		model.RenumberPages(pres.Pages)
		if snap.SelectedPageID == id {
			snap.SelectedPageID = ""
			if len(pres.Pages) > 0 {
				snap.SelectedPageID = pres.Pages[0].ID
			}
		}
		return true
	})
}

// ReorderPage swaps a page with its neighbor. Moving the first page up
// or the last page down is a no-op.
func (s *Store) ReorderPage(id string, dir string) {
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(id)
		if idx < 0 {
			return false
		}
		other := idx - 1
		if dir == "down" {
			other = idx + 1
		} else if dir != "up" {
			return false
		}
		if other < 0 || other >= len(pres.Pages) {
			return false
		}
		pres.Pages[idx], pres.Pages[other] = pres.Pages[other], pres.Pages[idx]
		model.RenumberPages(pres.Pages)
		return true
	})
}

// MovePage splices a page to the given index and renumbers densely.
// Out-of-range targets are no-ops.
func (s *Store) MovePage(id string, toIndex int) {
	s.mutate(func(_ *Snapshot, pres *model.Presentation) bool {
		idx := pres.PageIndex(id)
		if idx < 0 || toIndex < 0 || toIndex >= len(pres.Pages) || toIndex == idx {
			return false
		}
		page := pres.Pages[idx]
		rest := append(pres.Pages[:idx:idx], pres.Pages[idx+1:]...)
		pages := make([]model.Page, 0, len(rest)+1)
		pages = append(pages, rest[:toIndex]...)
		pages = append(pages, page)
		pages = append(pages, rest[toIndex:]...)
		pres.Pages = pages
		model.RenumberPages(pres.Pages)
		return true
	})
}
