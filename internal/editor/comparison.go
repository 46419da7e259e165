// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// ComparisonTableEditor edits a comparison table. Unlike the data
// table the column count is fixed at three (feature, option A,
// option B); only the headers and rows are editable.
type ComparisonTableEditor struct {
	pageEditor
	columns []model.TableColumn
	rows    []model.TableRow
}

// NewComparisonTableEditor opens a comparison-table editor.
func NewComparisonTableEditor(s *store.Store, pageID string) *ComparisonTableEditor {
	e := &ComparisonTableEditor{pageEditor: pageEditor{store: s, pageID: pageID}}
	e.columns = subdoc.Decode[model.TableColumn](e.raw(model.KeyColumns))
	e.rows = subdoc.Decode[model.TableRow](e.raw(model.KeyRows))
	return e
}

// Columns returns the current decoded column list.
func (e *ComparisonTableEditor) Columns() []model.TableColumn { return e.columns }

// Rows returns the current decoded row list.
func (e *ComparisonTableEditor) Rows() []model.TableRow { return e.rows }

func (e *ComparisonTableEditor) writeRows() { e.write(model.KeyRows, subdoc.Encode(e.rows)) }

// AddRow appends an empty three-cell row.
func (e *ComparisonTableEditor) AddRow() {
	row := model.TableRow{ID: model.NewRecordID(), Cells: make([]model.TableCell, model.ComparisonColumnCount)}
	rows, ok := subdoc.Append(e.rows, row, subdoc.TableRowBounds)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// RemoveRow deletes a row unless the table is at its minimum.
func (e *ComparisonTableEditor) RemoveRow(id string) {
	rows, ok := subdoc.Remove(e.rows, id, subdoc.TableRowBounds)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// MoveRow swaps a row with its neighbor.
func (e *ComparisonTableEditor) MoveRow(id string, dir subdoc.Direction) {
	rows, ok := subdoc.Move(e.rows, id, dir)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// UpdateCell sets one language of one cell.
func (e *ComparisonTableEditor) UpdateCell(rowID string, col int, lang model.Language, value string) {
	if col < 0 || col >= model.ComparisonColumnCount {
		return
	}
	rows, ok := subdoc.Update(e.rows, rowID, func(r model.TableRow) model.TableRow {
		if col >= len(r.Cells) {
			return r
		}
		cells := make([]model.TableCell, len(r.Cells))
		copy(cells, r.Cells)
		cells[col].Text = cells[col].Text.With(lang, value)
		r.Cells = cells
		return r
	})
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// UpdateColumnTitle sets one language of a column header.
func (e *ComparisonTableEditor) UpdateColumnTitle(id string, lang model.Language, value string) {
	cols, ok := subdoc.Update(e.columns, id, func(c model.TableColumn) model.TableColumn {
		c.Title = c.Title.With(lang, value)
		return c
	})
	if !ok {
		return
	}
	e.columns = cols
	e.write(model.KeyColumns, subdoc.Encode(e.columns))
}

// Paste replaces the whole row list from spreadsheet-style text
// validated against the fixed three-column layout.
func (e *ComparisonTableEditor) Paste(text string) error {
	rows := splitPasted(text)
	if err := validatePasted(rows, model.ComparisonColumnCount); err != nil {
		return err
	}
	e.rows = pastedCellsToRows(rows)
	e.writeRows()
	return nil
}
