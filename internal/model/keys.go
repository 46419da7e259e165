// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Well-known content dictionary keys shared by factories, editors and
// renderers.
const (
	KeyTitle    = "title"
	KeySubtitle = "subtitle"
	KeyBody     = "body"

	// Table pages
	KeyColumns      = "columns"
	KeyRows         = "rows"
	KeyFootnotes    = "footnotes"
	KeyShowCitation = "showCitation"
	KeyCitation     = "citation"

	// List pages
	KeyBullets = "bullets"
	KeyCards   = "cards"
	KeyEntries = "entries"

	// Flow chart
	KeyNodes      = "nodes"
	KeyArrows     = "arrows"
	KeyLegend     = "legend"
	KeyArrowStyle = "arrowStyle"

	// Before/after
	KeyPairs      = "pairs"
	KeyLayoutMode = "layoutMode"
	KeyArrowSize  = "arrowSize"

	// Gallery / chart
	KeyPhotos = "photos"
	KeyBars   = "bars"

	// Quote
	KeyQuote       = "quote"
	KeyAttribution = "attribution"

	// Two-column
	KeyLeftTitle  = "leftTitle"
	KeyLeftBody   = "leftBody"
	KeyRightTitle = "rightTitle"
	KeyRightBody  = "rightBody"

	// Misc scalars
	KeyAccentColor = "accentColor"
	KeyImageKey    = "imageKey"
	KeyDate        = "date"
	KeyAuthor      = "author"
)

// Before/after layout modes.
const (
	Layout2x2      = "2x2"
	Layout1x2      = "1x2"
	Layout2x1      = "2x1"
	LayoutFreeform = "freeform"
)
