// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// Canvas dimensions. Every template renders onto this fixed area;
// exporters rely on the same geometry.
const (
	CanvasWidth  = 960
	CanvasHeight = 540
)

// Dimensions is the fixed slide canvas size.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// GlossaryEntry is one trilingual term used to keep translations
// consistent across a presentation.
type GlossaryEntry struct {
	ID         string  `json:"id"`
	Term       TriText `json:"term"`
	Definition TriText `json:"definition"`
}

// Presentation is the aggregate root: an ordered list of typed pages
// plus a glossary. UpdatedAt is refreshed by every content mutation.
type Presentation struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	Dimensions Dimensions      `json:"dimensions"`
	Pages      []Page          `json:"pages"`
	Glossary   []GlossaryEntry `json:"glossary"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// NewPresentation creates a presentation with a single cover page.
func NewPresentation(name, category string) *Presentation {
	now := time.Now().UTC()
	cover := NewPage(PageCover)
	cover.Order = 0
	return &Presentation{
		ID:         uuid.New().String(),
		Name:       name,
		Category:   category,
		Dimensions: Dimensions{Width: CanvasWidth, Height: CanvasHeight},
		Pages:      []Page{cover},
		Glossary:   []GlossaryEntry{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Clone returns a deep copy of the presentation. Mutating operations
// clone first and replace whole; an existing snapshot is never changed
// in place.
func (p *Presentation) Clone() *Presentation {
	out := *p
	out.Pages = make([]Page, len(p.Pages))
	for i, pg := range p.Pages {
		out.Pages[i] = pg.Clone()
	}
	out.Glossary = make([]GlossaryEntry, len(p.Glossary))
	copy(out.Glossary, p.Glossary)
	return &out
}

// PageIndex returns the index of the page with the given ID, or -1.
func (p *Presentation) PageIndex(id string) int {
	for i := range p.Pages {
		if p.Pages[i].ID == id {
			return i
		}
	}
	return -1
}

// PageByID returns the page with the given ID.
func (p *Presentation) PageByID(id string) (Page, bool) {
	if i := p.PageIndex(id); i >= 0 {
		return p.Pages[i], true
	}
	return Page{}, false
}

// RenumberPages rewrites every page's Order to its list index, keeping
// the dense 0..N-1 invariant.
func RenumberPages(pages []Page) {
	for i := range pages {
		pages[i].Order = i
	}
}
