// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NewPage builds a page of the given type with fully populated default
// content: every required key present, sub-document arrays well-shaped
// and at their minimum cardinality, no nil values anywhere. Order is
// assigned by the store when the page is appended.
func NewPage(t PageType) Page {
	return Page{
		ID:      uuid.New().String(),
		Type:    t,
		Content: defaultContent(t),
	}
}

// encodeList JSON-encodes a default sub-document list. Defaults are
// built from static well-formed records, so encoding cannot fail.
func encodeList(v any) Value {
	data, err := json.Marshal(v)
	if err != nil {
		return StringValue("[]")
	}
	return StringValue(string(data))
}

func field(en string) Value { return FieldValue(NewTranslatableField(en)) }

func defaultContent(t PageType) map[string]Value {
	c := map[string]Value{
		KeyTitle: field(""),
	}

	switch t {
	case PageCover:
		c[KeySubtitle] = field("")
		c[KeyAuthor] = field("")
		c[KeyDate] = StringValue("")
		c[KeyImageKey] = StringValue("")
	case PageAgenda:
		c[KeyBullets] = encodeList([]Bullet{newBullet()})
	case PageSectionDivider:
		c[KeySubtitle] = field("")
		c[KeyAccentColor] = StringValue("#0f62fe")
	case PageBulletList:
		c[KeyBullets] = encodeList([]Bullet{newBullet()})
	case PageTwoColumn:
		c[KeyLeftTitle] = field("")
		c[KeyLeftBody] = field("")
		c[KeyRightTitle] = field("")
		c[KeyRightBody] = field("")
	case PageDataTable:
		c[KeyColumns] = encodeList(defaultColumns(3))
		c[KeyRows] = encodeList([]TableRow{newTableRow(3)})
		c[KeyFootnotes] = encodeList([]Footnote{})
		c[KeyShowCitation] = StringValue("false")
		c[KeyCitation] = field("")
	case PageComparisonTable:
		c[KeyColumns] = encodeList(defaultColumns(ComparisonColumnCount))
		c[KeyRows] = encodeList([]TableRow{newTableRow(ComparisonColumnCount)})
		c[KeyShowCitation] = StringValue("false")
		c[KeyCitation] = field("")
	case PageTimeline:
		c[KeyEntries] = encodeList([]TimelineEntry{{
			ID:    NewRecordID(),
			Date:  "",
			Color: "#0f62fe",
		}})
	case PageFlowChart:
		c[KeyNodes] = encodeList([]FlowNode{{
			ID: NewRecordID(), X: 80, Y: 120, Width: 160, Height: 64,
			Shape: "rounded", Color: "#0f62fe",
		}})
		c[KeyArrows] = encodeList([]FlowArrow{})
		c[KeyLegend] = encodeList([]LegendEntry{})
		c[KeyArrowStyle] = StringValue("solid")
	case PageBeforeAfter:
		c[KeyPairs] = encodeList([]PhotoPair{{ID: NewRecordID()}})
		c[KeyLayoutMode] = StringValue(Layout1x2)
		c[KeyArrowSize] = StringValue("24")
	case PagePhotoGallery:
		c[KeyPhotos] = encodeList([]Photo{{ID: NewRecordID()}})
	case PageBarChart:
		c[KeyBars] = encodeList([]Bar{{ID: NewRecordID(), Color: "#0f62fe"}})
	case PageQuote:
		c[KeyQuote] = field("")
		c[KeyAttribution] = field("")
	case PageTeam, PageKPIGrid, PagePricing:
		c[KeyCards] = encodeList([]Card{{ID: NewRecordID()}})
	case PageMatrix:
		c[KeyColumns] = encodeList(defaultColumns(2))
		c[KeyRows] = encodeList([]TableRow{newTableRow(2), newTableRow(2)})
	case PageFAQ, PageRoadmap:
		c[KeyEntries] = encodeList([]TimelineEntry{{ID: NewRecordID()}})
	case PageContact, PageThankYou:
		c[KeySubtitle] = field("")
		c[KeyBody] = field("")
	case PageFreeform:
		c[KeyBody] = field("")
	}

	return c
}

// ComparisonColumnCount is the fixed column count of comparison tables.
const ComparisonColumnCount = 3

func newBullet() Bullet {
	return Bullet{ID: uuid.New().String()}
}

func defaultColumns(n int) []TableColumn {
	cols := make([]TableColumn, n)
	for i := range cols {
		cols[i] = TableColumn{ID: NewRecordID()}
	}
	return cols
}

func newTableRow(cells int) TableRow {
	return TableRow{ID: NewRecordID(), Cells: make([]TableCell, cells)}
}
