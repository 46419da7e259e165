// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package editor provides the per-page-type adapters between user
// operations and the content store. Each editor decodes its page's
// JSON-encoded arrays once on construction, applies bounded list
// operations locally, and writes the whole array back on every change.
//
// Operations rejected by cardinality or boundary rules are silent
// no-ops; operations rejected by input validation (bulk paste, image
// uploads) return a user-visible error and leave content unchanged.
package editor

import (
	"fmt"
	"strings"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// pageEditor carries the store handle and page identity shared by all
// concrete editors.
type pageEditor struct {
	store  *store.Store
	pageID string
}

// raw reads the current plain-string value of a content key. Missing
// keys read as empty, which decodes to the empty list downstream.
func (e pageEditor) raw(key string) string {
	snap := e.store.Snapshot()
	page, ok := snap.Presentation.PageByID(e.pageID)
	if !ok {
		return ""
	}
	s, _ := page.String(key)
	return s
}

// write replaces one string field of the page.
func (e pageEditor) write(key, value string) {
	e.store.UpdateStringField(e.pageID, key, value)
}

// writeAll replaces several string fields in one store mutation, for
// cross-array cascades that belong to a single user action.
func (e pageEditor) writeAll(fields map[string]string) {
	e.store.UpdateStringFields(e.pageID, fields)
}

// splitPasted splits spreadsheet-style pasted text into rows of cells:
// newlines separate rows, tabs separate cells. A trailing newline does
// not produce a phantom empty row.
func splitPasted(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = strings.Split(line, "\t")
	}
	return rows
}

// validatePasted checks the pasted rows against the row cardinality
// bound and the expected column count. The first mismatch rejects the
// whole paste, naming the row and its actual column count.
func validatePasted(rows [][]string, wantCols int) error {
	if len(rows) == 0 {
		return fmt.Errorf("nothing to paste")
	}
	if max := subdoc.TableRowBounds.Max; len(rows) > max {
		return fmt.Errorf("pasted %d rows, at most %d allowed", len(rows), max)
	}
	for i, cells := range rows {
		if len(cells) != wantCols {
			return fmt.Errorf("row %d has %d columns, expected %d", i+1, len(cells), wantCols)
		}
	}
	return nil
}

// pastedCellsToRows converts validated pasted text into table rows.
// Pasted text populates the English source only; translations start
// empty, and any prior per-cell highlight state is discarded.
func pastedCellsToRows(rows [][]string) []model.TableRow {
	out := make([]model.TableRow, len(rows))
	for i, cells := range rows {
		row := model.TableRow{ID: model.NewRecordID(), Cells: make([]model.TableCell, len(cells))}
		for j, text := range cells {
			row.Cells[j] = model.TableCell{Text: model.TriText{En: text}}
		}
		out[i] = row
	}
	return out
}
