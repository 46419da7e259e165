// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "github.com/google/uuid"

// Sub-document record types. Each list lives JSON-encoded inside a
// page's content dictionary under a well-known key; records carry an
// opaque stable ID and plain trilingual text without status tracking.

// NewRecordID returns a fresh opaque record identifier.
func NewRecordID() string {
	return uuid.New().String()
}

// TableColumn is one column header of a data table.
type TableColumn struct {
	ID    string  `json:"id"`
	Title TriText `json:"title"`
	Width int     `json:"width,omitempty"` // relative weight, 0 = equal
}

// TableCell is one cell of a table row. Highlight is a per-cell
// formatting flag ("" none, "accent", "warn") discarded wholesale by
// bulk paste import.
type TableCell struct {
	Text      TriText `json:"text"`
	Highlight string  `json:"highlight,omitempty"`
}

// TableRow is one data row; Cells is kept in sync with the column
// list by the table editor.
type TableRow struct {
	ID    string      `json:"id"`
	Cells []TableCell `json:"cells"`
}

// Footnote is one numbered footnote under a table.
type Footnote struct {
	ID   string  `json:"id"`
	Text TriText `json:"text"`
}

// Bullet is one bullet-list entry. Indent 0 is top level.
type Bullet struct {
	ID     string  `json:"id"`
	Text   TriText `json:"text"`
	Indent int     `json:"indent,omitempty"`
}

// Card is one card of a card-grid page (team, kpi-grid, pricing).
type Card struct {
	ID       string  `json:"id"`
	Title    TriText `json:"title"`
	Body     TriText `json:"body"`
	Color    string  `json:"color,omitempty"`
	ImageKey string  `json:"imageKey,omitempty"`
}

// TimelineEntry is one milestone on a timeline page.
type TimelineEntry struct {
	ID          string  `json:"id"`
	Date        string  `json:"date"`
	Label       TriText `json:"label"`
	Description TriText `json:"description"`
	Color       string  `json:"color,omitempty"`
}

// FlowNode is one node of a flow chart, positioned on the canvas.
type FlowNode struct {
	ID     string  `json:"id"`
	Label  TriText `json:"label"`
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Shape  string  `json:"shape,omitempty"` // rect, rounded, diamond
	Color  string  `json:"color,omitempty"`
}

// FlowArrow connects two flow nodes by ID. Deleting a node
// cascade-deletes every arrow referencing it.
type FlowArrow struct {
	ID       string  `json:"id"`
	SourceID string  `json:"sourceId"`
	TargetID string  `json:"targetId"`
	Label    TriText `json:"label"`
	Style    string  `json:"style,omitempty"` // solid, dashed
}

// LegendEntry is one legend swatch of a flow chart.
type LegendEntry struct {
	ID    string  `json:"id"`
	Label TriText `json:"label"`
	Color string  `json:"color"`
}

// PhotoPair is one before/after pair; keys reference the image store.
type PhotoPair struct {
	ID        string  `json:"id"`
	BeforeKey string  `json:"beforeKey"`
	AfterKey  string  `json:"afterKey"`
	Caption   TriText `json:"caption"`
}

// Photo is one gallery photo.
type Photo struct {
	ID       string  `json:"id"`
	ImageKey string  `json:"imageKey"`
	Caption  TriText `json:"caption"`
}

// Bar is one bar of a bar chart.
type Bar struct {
	ID    string  `json:"id"`
	Label TriText `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}
