// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// ListEditor is the generic bounded-list adapter behind every editor
// whose page content is a single list of records. It decodes once,
// applies copy-on-write list operations, and writes the whole array
// back after each accepted change.
type ListEditor[T subdoc.Record] struct {
	pageEditor
	key    string
	bounds subdoc.Bounds
	items  []T
}

func newListEditor[T subdoc.Record](s *store.Store, pageID, key string, b subdoc.Bounds) *ListEditor[T] {
	e := &ListEditor[T]{
		pageEditor: pageEditor{store: s, pageID: pageID},
		key:        key,
		bounds:     b,
	}
	e.items = subdoc.Decode[T](e.raw(key))
	return e
}

// Items returns the current decoded list.
func (e *ListEditor[T]) Items() []T { return e.items }

func (e *ListEditor[T]) flush() { e.write(e.key, subdoc.Encode(e.items)) }

// Add appends a record unless the list is at its maximum.
func (e *ListEditor[T]) Add(rec T) {
	items, ok := subdoc.Append(e.items, rec, e.bounds)
	if !ok {
		return
	}
	e.items = items
	e.flush()
}

// Remove deletes a record unless the list is at its minimum.
func (e *ListEditor[T]) Remove(id string) {
	items, ok := subdoc.Remove(e.items, id, e.bounds)
	if !ok {
		return
	}
	e.items = items
	e.flush()
}

// Move swaps a record with its neighbor; boundary moves are no-ops.
func (e *ListEditor[T]) Move(id string, dir subdoc.Direction) {
	items, ok := subdoc.Move(e.items, id, dir)
	if !ok {
		return
	}
	e.items = items
	e.flush()
}

// Update applies fn to one record.
func (e *ListEditor[T]) Update(id string, fn func(T) T) {
	items, ok := subdoc.Update(e.items, id, fn)
	if !ok {
		return
	}
	e.items = items
	e.flush()
}

// BulletListEditor edits agenda and bullet-list pages.
type BulletListEditor struct {
	*ListEditor[model.Bullet]
}

// NewBulletListEditor opens a bullet editor for the given page.
func NewBulletListEditor(s *store.Store, pageID string) *BulletListEditor {
	return &BulletListEditor{newListEditor[model.Bullet](s, pageID, model.KeyBullets, subdoc.BulletBounds)}
}

// AddBullet appends an empty bullet.
func (e *BulletListEditor) AddBullet() {
	e.Add(model.Bullet{ID: model.NewRecordID()})
}

// UpdateText sets one language of a bullet.
func (e *BulletListEditor) UpdateText(id string, lang model.Language, value string) {
	e.Update(id, func(b model.Bullet) model.Bullet {
		b.Text = b.Text.With(lang, value)
		return b
	})
}

// SetIndent sets a bullet's indent level (0..2).
func (e *BulletListEditor) SetIndent(id string, indent int) {
	e.Update(id, func(b model.Bullet) model.Bullet {
		b.Indent = clamp(indent, 0, 2)
		return b
	})
}

// CardsEditor edits card-grid pages (team, kpi-grid, pricing).
type CardsEditor struct {
	*ListEditor[model.Card]
}

// NewCardsEditor opens a card editor for the given page.
func NewCardsEditor(s *store.Store, pageID string) *CardsEditor {
	return &CardsEditor{newListEditor[model.Card](s, pageID, model.KeyCards, subdoc.CardBounds)}
}

// AddCard appends an empty card.
func (e *CardsEditor) AddCard() {
	e.Add(model.Card{ID: model.NewRecordID()})
}

// UpdateTitle sets one language of a card title.
func (e *CardsEditor) UpdateTitle(id string, lang model.Language, value string) {
	e.Update(id, func(c model.Card) model.Card {
		c.Title = c.Title.With(lang, value)
		return c
	})
}

// UpdateBody sets one language of a card body.
func (e *CardsEditor) UpdateBody(id string, lang model.Language, value string) {
	e.Update(id, func(c model.Card) model.Card {
		c.Body = c.Body.With(lang, value)
		return c
	})
}

// SetImage points a card at a stored image.
func (e *CardsEditor) SetImage(id, imageKey string) {
	e.Update(id, func(c model.Card) model.Card {
		c.ImageKey = imageKey
		return c
	})
}

// TimelineEditor edits timeline, faq and roadmap pages.
type TimelineEditor struct {
	*ListEditor[model.TimelineEntry]
}

// NewTimelineEditor opens a timeline editor for the given page.
func NewTimelineEditor(s *store.Store, pageID string) *TimelineEditor {
	return &TimelineEditor{newListEditor[model.TimelineEntry](s, pageID, model.KeyEntries, subdoc.TimelineBounds)}
}

// AddEntry appends an empty entry.
func (e *TimelineEditor) AddEntry() {
	e.Add(model.TimelineEntry{ID: model.NewRecordID(), Color: "#0f62fe"})
}

// UpdateLabel sets one language of an entry label.
func (e *TimelineEditor) UpdateLabel(id string, lang model.Language, value string) {
	e.Update(id, func(t model.TimelineEntry) model.TimelineEntry {
		t.Label = t.Label.With(lang, value)
		return t
	})
}

// UpdateDescription sets one language of an entry description.
func (e *TimelineEditor) UpdateDescription(id string, lang model.Language, value string) {
	e.Update(id, func(t model.TimelineEntry) model.TimelineEntry {
		t.Description = t.Description.With(lang, value)
		return t
	})
}

// SetDate sets an entry's date string.
func (e *TimelineEditor) SetDate(id, date string) {
	e.Update(id, func(t model.TimelineEntry) model.TimelineEntry {
		t.Date = date
		return t
	})
}

// GalleryEditor edits photo-gallery pages.
type GalleryEditor struct {
	*ListEditor[model.Photo]
}

// NewGalleryEditor opens a gallery editor for the given page.
func NewGalleryEditor(s *store.Store, pageID string) *GalleryEditor {
	return &GalleryEditor{newListEditor[model.Photo](s, pageID, model.KeyPhotos, subdoc.GalleryPhotoBounds)}
}

// AddPhoto appends an empty photo slot.
func (e *GalleryEditor) AddPhoto() {
	e.Add(model.Photo{ID: model.NewRecordID()})
}

// SetImage points a photo slot at a stored image.
func (e *GalleryEditor) SetImage(id, imageKey string) {
	e.Update(id, func(p model.Photo) model.Photo {
		p.ImageKey = imageKey
		return p
	})
}

// UpdateCaption sets one language of a photo caption.
func (e *GalleryEditor) UpdateCaption(id string, lang model.Language, value string) {
	e.Update(id, func(p model.Photo) model.Photo {
		p.Caption = p.Caption.With(lang, value)
		return p
	})
}

// BarChartEditor edits bar-chart pages.
type BarChartEditor struct {
	*ListEditor[model.Bar]
}

// NewBarChartEditor opens a bar-chart editor for the given page.
func NewBarChartEditor(s *store.Store, pageID string) *BarChartEditor {
	return &BarChartEditor{newListEditor[model.Bar](s, pageID, model.KeyBars, subdoc.BarBounds)}
}

// AddBar appends an empty bar.
func (e *BarChartEditor) AddBar() {
	e.Add(model.Bar{ID: model.NewRecordID(), Color: "#0f62fe"})
}

// UpdateLabel sets one language of a bar label.
func (e *BarChartEditor) UpdateLabel(id string, lang model.Language, value string) {
	e.Update(id, func(b model.Bar) model.Bar {
		b.Label = b.Label.With(lang, value)
		return b
	})
}

// SetValue sets a bar's numeric value. Negative values are clamped to
// zero; the chart has no negative axis.
func (e *BarChartEditor) SetValue(id string, value float64) {
	if value < 0 {
		value = 0
	}
	e.Update(id, func(b model.Bar) model.Bar {
		b.Value = value
		return b
	})
}
