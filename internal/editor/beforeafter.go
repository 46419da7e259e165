// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"strconv"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// BeforeAfterEditor edits before/after pages: the photo-pair list plus
// the layout-mode and arrow-size scalars the grid geometry depends on.
type BeforeAfterEditor struct {
	*ListEditor[model.PhotoPair]
}

// NewBeforeAfterEditor opens a before/after editor.
func NewBeforeAfterEditor(s *store.Store, pageID string) *BeforeAfterEditor {
	return &BeforeAfterEditor{newListEditor[model.PhotoPair](s, pageID, model.KeyPairs, subdoc.PhotoPairBounds)}
}

// AddPair appends an empty photo pair.
func (e *BeforeAfterEditor) AddPair() {
	e.Add(model.PhotoPair{ID: model.NewRecordID()})
}

// SetBeforeImage points a pair's "before" slot at a stored image.
func (e *BeforeAfterEditor) SetBeforeImage(id, imageKey string) {
	e.Update(id, func(p model.PhotoPair) model.PhotoPair {
		p.BeforeKey = imageKey
		return p
	})
}

// SetAfterImage points a pair's "after" slot at a stored image.
func (e *BeforeAfterEditor) SetAfterImage(id, imageKey string) {
	e.Update(id, func(p model.PhotoPair) model.PhotoPair {
		p.AfterKey = imageKey
		return p
	})
}

// UpdateCaption sets one language of a pair caption.
func (e *BeforeAfterEditor) UpdateCaption(id string, lang model.Language, value string) {
	e.Update(id, func(p model.PhotoPair) model.PhotoPair {
		p.Caption = p.Caption.With(lang, value)
		return p
	})
}

// SetLayoutMode switches the grid layout. Unknown modes are rejected
// as no-ops.
func (e *BeforeAfterEditor) SetLayoutMode(mode string) {
	switch mode {
	case model.Layout2x2, model.Layout1x2, model.Layout2x1, model.LayoutFreeform:
		e.write(model.KeyLayoutMode, mode)
	}
}

// SetArrowSize sets the arrow gutter size in pixels, clamped to a
// sane range.
func (e *BeforeAfterEditor) SetArrowSize(size int) {
	e.write(model.KeyArrowSize, strconv.Itoa(clamp(size, 12, 64)))
}
