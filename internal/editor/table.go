// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// DataTableEditor edits the column, row and footnote arrays of a
// data-table page. The decoded view is parsed once at construction and
// owned by the editor until it is discarded; external store changes to
// the same page are not re-synced into an open editor.
type DataTableEditor struct {
	pageEditor
	columns   []model.TableColumn
	rows      []model.TableRow
	footnotes []model.Footnote
}

// NewDataTableEditor opens a table editor for the given page.
func NewDataTableEditor(s *store.Store, pageID string) *DataTableEditor {
	e := &DataTableEditor{pageEditor: pageEditor{store: s, pageID: pageID}}
	e.columns = subdoc.Decode[model.TableColumn](e.raw(model.KeyColumns))
	e.rows = subdoc.Decode[model.TableRow](e.raw(model.KeyRows))
	e.footnotes = subdoc.Decode[model.Footnote](e.raw(model.KeyFootnotes))
	return e
}

// Columns returns the current decoded column list.
func (e *DataTableEditor) Columns() []model.TableColumn { return e.columns }

// Rows returns the current decoded row list.
func (e *DataTableEditor) Rows() []model.TableRow { return e.rows }

// Footnotes returns the current decoded footnote list.
func (e *DataTableEditor) Footnotes() []model.Footnote { return e.footnotes }

func (e *DataTableEditor) writeRows()      { e.write(model.KeyRows, subdoc.Encode(e.rows)) }
func (e *DataTableEditor) writeFootnotes() { e.write(model.KeyFootnotes, subdoc.Encode(e.footnotes)) }

// writeTable writes columns and rows together: column structure and
// row cell layout always change in the same user action.
func (e *DataTableEditor) writeTable() {
	e.writeAll(map[string]string{
		model.KeyColumns: subdoc.Encode(e.columns),
		model.KeyRows:    subdoc.Encode(e.rows),
	})
}

// AddRow appends an empty row matching the current column count.
func (e *DataTableEditor) AddRow() {
	row := model.TableRow{ID: model.NewRecordID(), Cells: make([]model.TableCell, len(e.columns))}
	rows, ok := subdoc.Append(e.rows, row, subdoc.TableRowBounds)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// RemoveRow deletes a row unless the table is at its minimum.
func (e *DataTableEditor) RemoveRow(id string) {
	rows, ok := subdoc.Remove(e.rows, id, subdoc.TableRowBounds)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// MoveRow swaps a row with its neighbor.
func (e *DataTableEditor) MoveRow(id string, dir subdoc.Direction) {
	rows, ok := subdoc.Move(e.rows, id, dir)
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// UpdateCell sets one language of one cell.
func (e *DataTableEditor) UpdateCell(rowID string, col int, lang model.Language, value string) {
	if col < 0 || col >= len(e.columns) {
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

// SetCellHighlight sets a cell's formatting flag.
func (e *DataTableEditor) SetCellHighlight(rowID string, col int, highlight string) {
	rows, ok := subdoc.Update(e.rows, rowID, func(r model.TableRow) model.TableRow {
		if col < 0 || col >= len(r.Cells) {
			return r
		}
		cells := make([]model.TableCell, len(r.Cells))
		copy(cells, r.Cells)
		cells[col].Highlight = highlight
		r.Cells = cells
		return r
	})
	if !ok {
		return
	}
	e.rows = rows
	e.writeRows()
}

// AddColumn appends a column and an empty trailing cell to every row.
func (e *DataTableEditor) AddColumn() {
	cols, ok := subdoc.Append(e.columns, model.TableColumn{ID: model.NewRecordID()}, subdoc.TableColumnBounds)
	if !ok {
		return
	}
	e.columns = cols
	rows := make([]model.TableRow, len(e.rows))
	for i, r := range e.rows {
		cells := make([]model.TableCell, len(r.Cells)+1)
		copy(cells, r.Cells)
		r.Cells = cells
		rows[i] = r
	}
	e.rows = rows
	e.writeTable()
}

// RemoveColumn deletes a column and the matching cell of every row in
// the same update.
func (e *DataTableEditor) RemoveColumn(id string) {
	idx := columnIndex(e.columns, id)
	if idx < 0 {
		return
	}
	cols, ok := subdoc.RemoveAt(e.columns, idx, subdoc.TableColumnBounds)
	if !ok {
		return
	}
	e.columns = cols
	rows := make([]model.TableRow, len(e.rows))
	for i, r := range e.rows {
		if idx < len(r.Cells) {
			cells := make([]model.TableCell, 0, len(r.Cells)-1)
			cells = append(cells, r.Cells[:idx]...)
			cells = append(cells, r.Cells[idx+1:]...)
			r.Cells = cells
		}
		rows[i] = r
	}
	e.rows = rows
	e.writeTable()
}

// MoveColumn swaps a column with its neighbor, moving every row's
// matching cells along with it.
func (e *DataTableEditor) MoveColumn(id string, dir subdoc.Direction) {
	idx := columnIndex(e.columns, id)
	if idx < 0 {
		return
	}
	cols, ok := subdoc.MoveAt(e.columns, idx, dir)
	if !ok {
		return
	}
	other := idx - 1
	if dir == subdoc.MoveDown {
		other = idx + 1
	}
	e.columns = cols
	rows := make([]model.TableRow, len(e.rows))
	for i, r := range e.rows {
		if idx < len(r.Cells) && other < len(r.Cells) {
			cells := make([]model.TableCell, len(r.Cells))
			copy(cells, r.Cells)
			cells[idx], cells[other] = cells[other], cells[idx]
			r.Cells = cells
		}
		rows[i] = r
	}
	e.rows = rows
	e.writeTable()
}

// UpdateColumnTitle sets one language of a column header.
func (e *DataTableEditor) UpdateColumnTitle(id string, lang model.Language, value string) {
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

// AddFootnote appends an empty footnote.
func (e *DataTableEditor) AddFootnote() {
	notes, ok := subdoc.Append(e.footnotes, model.Footnote{ID: model.NewRecordID()}, subdoc.FootnoteBounds)
	if !ok {
		return
	}
	e.footnotes = notes
	e.writeFootnotes()
}

// RemoveFootnote deletes a footnote.
func (e *DataTableEditor) RemoveFootnote(id string) {
	notes, ok := subdoc.Remove(e.footnotes, id, subdoc.FootnoteBounds)
	if !ok {
		return
	}
	e.footnotes = notes
	e.writeFootnotes()
}

// UpdateFootnote sets one language of a footnote.
func (e *DataTableEditor) UpdateFootnote(id string, lang model.Language, value string) {
	notes, ok := subdoc.Update(e.footnotes, id, func(f model.Footnote) model.Footnote {
		f.Text = f.Text.With(lang, value)
		return f
	})
	if !ok {
		return
	}
	e.footnotes = notes
	e.writeFootnotes()
}

// SetShowCitation toggles the citation row.
func (e *DataTableEditor) SetShowCitation(show bool) {
	v := "false"
	if show {
		v = "true"
	}
	e.write(model.KeyShowCitation, v)
}

// Paste replaces the whole row list from spreadsheet-style text. Every
// pasted row must match the configured column count and the row count
// must fit the table's bounds; any violation rejects the entire paste
// and leaves the table unchanged. On success prior per-cell highlight
// state is discarded along with the old rows.
func (e *DataTableEditor) Paste(text string) error {
	rows := splitPasted(text)
	if err := validatePasted(rows, len(e.columns)); err != nil {
		return err
	}
	e.rows = pastedCellsToRows(rows)
	e.writeRows()
	return nil
}

func columnIndex(cols []model.TableColumn, id string) int {
	for i := range cols {
		if cols[i].ID == id {
			return i
		}
	}
	return -1
}
