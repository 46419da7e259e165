// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// RecordID implementations let the generic sub-document operations
// address records by their stable opaque key.

func (c TableColumn) RecordID() string   { return c.ID }
func (r TableRow) RecordID() string      { return r.ID }
func (f Footnote) RecordID() string      { return f.ID }
func (b Bullet) RecordID() string        { return b.ID }
func (c Card) RecordID() string          { return c.ID }
func (e TimelineEntry) RecordID() string { return e.ID }
func (n FlowNode) RecordID() string      { return n.ID }
func (a FlowArrow) RecordID() string     { return a.ID }
func (l LegendEntry) RecordID() string   { return l.ID }
func (p PhotoPair) RecordID() string     { return p.ID }
func (p Photo) RecordID() string         { return p.ID }
func (b Bar) RecordID() string           { return b.ID }
func (g GlossaryEntry) RecordID() string { return g.ID }
