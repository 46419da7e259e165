// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// PageType tags a page with its template family.
type PageType string

// All page types. Each has a content factory; only a subset has a
// template renderer wired up.
const (
	PageCover           PageType = "cover"
	PageAgenda          PageType = "agenda"
	PageSectionDivider  PageType = "section-divider"
	PageBulletList      PageType = "bullet-list"
	PageTwoColumn       PageType = "two-column"
	PageDataTable       PageType = "data-table"
	PageComparisonTable PageType = "comparison-table"
	PageTimeline        PageType = "timeline"
	PageFlowChart       PageType = "flow-chart"
	PageBeforeAfter     PageType = "before-after"
	PagePhotoGallery    PageType = "photo-gallery"
	PageBarChart        PageType = "bar-chart"
	PageQuote           PageType = "quote"
	PageTeam            PageType = "team"
	PageKPIGrid         PageType = "kpi-grid"
	PageMatrix          PageType = "matrix"
	PagePricing         PageType = "pricing"
	PageFAQ             PageType = "faq"
	PageRoadmap         PageType = "roadmap"
	PageContact         PageType = "contact"
	PageThankYou        PageType = "thank-you"
	PageFreeform        PageType = "freeform"
)

// AllPageTypes lists every page type in picker order.
var AllPageTypes = []PageType{
	PageCover, PageAgenda, PageSectionDivider, PageBulletList, PageTwoColumn,
	PageDataTable, PageComparisonTable, PageTimeline, PageFlowChart,
	PageBeforeAfter, PagePhotoGallery, PageBarChart, PageQuote, PageTeam,
	PageKPIGrid, PageMatrix, PagePricing, PageFAQ, PageRoadmap, PageContact,
	PageThankYou, PageFreeform,
}

// IsValid reports whether t is a known page type.
func (t PageType) IsValid() bool {
	for _, pt := range AllPageTypes {
		if pt == t {
			return true
		}
	}
	return false
}

// Page is one slide of a presentation: a typed content dictionary with
// a dense 0-based position within the page list. Order is renumbered
// eagerly by whichever operation reorders or deletes pages.
type Page struct {
	ID      string           `json:"id"`
	Order   int              `json:"order"`
	Type    PageType         `json:"type"`
	Content map[string]Value `json:"content"`
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := p
	out.Content = make(map[string]Value, len(p.Content))
	for k, v := range p.Content {
		out.Content[k] = v.Clone()
	}
	return out
}

// Field returns the translatable field stored under key, if present.
func (p Page) Field(key string) (TranslatableField, bool) {
	v, ok := p.Content[key]
	if !ok || v.Kind != ValueField {
		return TranslatableField{}, false
	}
	return v.Field, true
}

// String returns the plain string stored under key, if present.
func (p Page) String(key string) (string, bool) {
	v, ok := p.Content[key]
	if !ok || v.Kind != ValueString {
		return "", false
	}
	return v.Str, true
}
