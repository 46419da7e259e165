// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strconv"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

func renderBeforeAfter(page model.Page, lang model.Language) *Layout {
	pairs := subdoc.Decode[model.PhotoPair](rawString(page, model.KeyPairs))
	mode := rawString(page, model.KeyLayoutMode)
	arrowSize, err := strconv.Atoi(rawString(page, model.KeyArrowSize))
	if err != nil || arrowSize <= 0 {
		arrowSize = 24
	}

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))

	grid := ComputePairGrid(mode, len(pairs), arrowSize)
	for i, cell := range grid.Cells {
		pair := pairs[i]
		l.Nodes = append(l.Nodes,
			Node{Kind: KindImage, Rect: cell.Before, ImageKey: pair.BeforeKey},
			Node{Kind: KindBox, Rect: cell.Arrow, Background: "#0f62fe"},
			Node{Kind: KindImage, Rect: cell.After, ImageKey: pair.AfterKey},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: cell.Cell.X, Y: cell.Cell.Y + cell.Cell.H - 22, W: cell.Cell.W, H: 20},
				Spans:    plainSpans(pair.Caption.Get(lang)),
				FontSize: 11,
				Align:    "center",
				Color:    "#525252",
			},
		)
	}
	return l
}

// Gallery tiling: up to four columns inside the grid content area.
func renderGallery(page model.Page, lang model.Language) *Layout {
	photos := subdoc.Decode[model.Photo](rawString(page, model.KeyPhotos))

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))
	if len(photos) == 0 {
		return l
	}

	cols := len(photos)
	if cols > 4 {
		cols = 4
	}
	rows := (len(photos) + cols - 1) / cols
	cellW := (GridContentWidth - (cols-1)*GridGap) / cols
	cellH := (GridContentHeight - (rows-1)*GridGap) / rows

	for i, p := range photos {
		col := i % cols
		row := i / cols
		x := GridContentX + col*(cellW+GridGap)
		y := GridContentY + row*(cellH+GridGap)
		l.Nodes = append(l.Nodes,
			Node{Kind: KindImage, Rect: Rect{X: x, Y: y, W: cellW, H: cellH - 20}, ImageKey: p.ImageKey},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: x, Y: y + cellH - 18, W: cellW, H: 16},
				Spans:    plainSpans(p.Caption.Get(lang)),
				FontSize: 10,
				Align:    "center",
				Color:    "#525252",
			},
		)
	}
	return l
}
