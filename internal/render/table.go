// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// Table band geometry shared by both table renderers.
const (
	tableX     = 40
	tableY     = 96
	tableWidth = 880
)

// highlight backgrounds for table cells.
var highlightColors = map[string]string{
	"accent": "#d0e2ff",
	"warn":   "#fff1f1",
}

func renderDataTable(page model.Page, lang model.Language) *Layout {
	columns := subdoc.Decode[model.TableColumn](rawString(page, model.KeyColumns))
	rows := subdoc.Decode[model.TableRow](rawString(page, model.KeyRows))
	footnotes := subdoc.Decode[model.Footnote](rawString(page, model.KeyFootnotes))
	showCitation := rawString(page, model.KeyShowCitation) == "true"

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))
	l.Nodes = append(l.Nodes, tableNodes(columns, rows, showCitation, lang)...)

	if showCitation {
		citation := fieldText(page, model.KeyCitation, lang)
		l.Nodes = append(l.Nodes, Node{
			Kind:     KindText,
			Rect:     Rect{X: tableX, Y: tableY + TableBudget(true), W: tableWidth, H: CitationRowHeight},
			Spans:    plainSpans(citation),
			FontSize: 10,
			Color:    "#6f6f6f",
		})
	}

	y := tableY + TableBudgetHeight + 4
	for _, fn := range footnotes {
		text, _ := textOrPlaceholder(fn.Text.Get(lang))
		l.Nodes = append(l.Nodes, Node{
			Kind:     KindText,
			Rect:     Rect{X: tableX, Y: y, W: tableWidth, H: 14},
			Spans:    plainSpans(text),
			FontSize: 9,
			Color:    "#6f6f6f",
		})
		y += 14
	}
	return l
}

func renderComparisonTable(page model.Page, lang model.Language) *Layout {
	columns := subdoc.Decode[model.TableColumn](rawString(page, model.KeyColumns))
	rows := subdoc.Decode[model.TableRow](rawString(page, model.KeyRows))
	showCitation := rawString(page, model.KeyShowCitation) == "true"

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))
	l.Nodes = append(l.Nodes, tableNodes(columns, rows, showCitation, lang)...)
	return l
}

// tableNodes renders the header band and data rows with degrade-to-fit
// row heights and font size.
func tableNodes(columns []model.TableColumn, rows []model.TableRow, showCitation bool, lang model.Language) []Node {
	if len(columns) == 0 {
		return nil
	}

	rowH, font := FitRows(TableBudget(showCitation), len(rows))
	colW := tableWidth / len(columns)

	nodes := make([]Node, 0, (len(rows)+1)*len(columns))

	for i, col := range columns {
		text, _ := textOrPlaceholder(col.Title.Get(lang))
		nodes = append(nodes, Node{
			Kind:       KindBox,
			Rect:       Rect{X: tableX + i*colW, Y: tableY, W: colW, H: TableHeaderHeight},
			Background: "#161616",
			Children: []Node{{
				Kind:     KindText,
				Rect:     Rect{X: 8, Y: 0, W: colW - 16, H: TableHeaderHeight},
				Spans:    ParseBold(text),
				FontSize: font + 1,
				Color:    "#ffffff",
			}},
		})
	}

	for r, row := range rows {
		y := tableY + TableHeaderHeight + r*rowH
		for c := range columns {
			var cell model.TableCell
			if c < len(row.Cells) {
				cell = row.Cells[c]
			}
			text, missing := textOrPlaceholder(cell.Text.Get(lang))

			background := "#ffffff"
			if r%2 == 1 {
				background = "#f4f4f4"
			}
			if bg, ok := highlightColors[cell.Highlight]; ok {
				background = bg
			}

			color := "#161616"
			if missing {
				color = "#da1e28"
			}

			nodes = append(nodes, Node{
				Kind:       KindBox,
				Rect:       Rect{X: tableX + c*colW, Y: y, W: colW, H: rowH},
				Background: background,
				Children: []Node{{
					Kind:     KindText,
					Rect:     Rect{X: 8, Y: 0, W: colW - 16, H: rowH},
					Spans:    ParseBold(text),
					FontSize: font,
					Color:    color,
				}},
			})
		}
	}
	return nodes
}

func rawString(page model.Page, key string) string {
	s, _ := page.String(key)
	return s
}
