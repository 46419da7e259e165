// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

// Table layout constants. These are shared by the data-table and
// comparison-table renderers and by the exporters; changing any of
// them changes exported geometry.
const (
	// TableBudgetHeight is the vertical pixel budget for header plus
	// rows when no citation row is shown.
	TableBudgetHeight = 421

	// CitationRowHeight is subtracted from the budget when the
	// citation row is enabled.
	CitationRowHeight = 25

	// TableHeaderHeight is the fixed header row height.
	TableHeaderHeight = 60

	// MinRowHeight is the desired per-row height before degrading.
	MinRowHeight = 40

	// RowHeightFloor is the hard lower bound on computed row height.
	RowHeightFloor = 28

	// BaseTableFontSize is the cell font size when everything fits.
	BaseTableFontSize = 12

	// MinTableFontSize is the hard lower bound on degraded font size.
	MinTableFontSize = 9
)

// TableBudget returns the available vertical budget for a table with
// or without its citation row.
func TableBudget(showCitation bool) int {
	if showCitation {
		return TableBudgetHeight - CitationRowHeight
	}
	return TableBudgetHeight
}

// FitRows computes the row height and font size for a table with the
// given row count inside the available budget. When the desired layout
// fits, both stay at their base values. When it does not, row height
// degrades linearly to fill the remaining space and font size scales
// with it, each clamped to its floor. Integer floor division matches
// the exported geometry exactly.
func FitRows(avail, rows int) (rowHeight, fontSize int) {
	if rows <= 0 {
		return MinRowHeight, BaseTableFontSize
	}

	needed := TableHeaderHeight + rows*MinRowHeight
	if needed <= avail {
		return MinRowHeight, BaseTableFontSize
	}

	rowHeight = (avail - TableHeaderHeight) / rows
	if rowHeight < RowHeightFloor {
		rowHeight = RowHeightFloor
	}

	fontSize = BaseTableFontSize * rowHeight / MinRowHeight
	if fontSize < MinTableFontSize {
		fontSize = MinTableFontSize
	}
	return rowHeight, fontSize
}
