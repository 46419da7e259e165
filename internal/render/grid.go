// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import "github.com/olegiv/opres-go/internal/model"

// Before/after grid constants. The content area sits centered under
// the title band.
const (
	GridContentWidth  = 880
	GridContentHeight = 420
	GridContentX      = 40
	GridContentY      = 96
	GridGap           = 8
	ArrowPadding      = 4
)

// PairCell is the geometry of one before/after pair: the cell itself
// plus its two photo slots flanking the arrow gutter.
type PairCell struct {
	Cell   Rect `json:"cell"`
	Before Rect `json:"before"`
	Arrow  Rect `json:"arrow"`
	After  Rect `json:"after"`
}

// PairGrid is the computed tiling for a pair count and layout mode.
type PairGrid struct {
	Cols  int        `json:"cols"`
	Rows  int        `json:"rows"`
	CellW int        `json:"cellW"`
	CellH int        `json:"cellH"`
	Cells []PairCell `json:"cells"`
}

// gridShape maps a layout mode and pair count to a (cols, rows)
// tiling. Freeform caps columns at two and wraps additional pairs into
// further rows; the fixed modes have fixed capacity and surplus pairs
// are not tiled.
func gridShape(mode string, pairs int) (cols, rows int) {
	switch mode {
	case model.Layout2x2:
		return 2, 2
	case model.Layout1x2:
		return 2, 1
	case model.Layout2x1:
		return 1, 2
	default: // freeform
		if pairs <= 0 {
			return 1, 1
		}
		cols = 2
		if pairs < 2 {
			cols = pairs
		}
		rows = (pairs + cols - 1) / cols
		return cols, rows
	}
}

// ComputePairGrid derives the full grid geometry from scratch: the
// layout is recomputed on every pair-count change, never incrementally
// adjusted. Cell sizes divide the fixed content area evenly after
// subtracting inter-cell gaps; each cell splits into two photo slots
// around an arrow gutter of arrowSize plus padding on both sides.
func ComputePairGrid(mode string, pairs, arrowSize int) PairGrid {
	cols, rows := gridShape(mode, pairs)

	cellW := (GridContentWidth - (cols-1)*GridGap) / cols
	cellH := (GridContentHeight - (rows-1)*GridGap) / rows
	gutter := arrowSize + 2*ArrowPadding
	slotW := (cellW - gutter) / 2

	capacity := cols * rows
	n := pairs
	if n > capacity {
		n = capacity
	}

	g := PairGrid{Cols: cols, Rows: rows, CellW: cellW, CellH: cellH}
	for i := 0; i < n; i++ {
		col := i % cols
		row := i / cols
		x := GridContentX + col*(cellW+GridGap)
		y := GridContentY + row*(cellH+GridGap)

		cell := Rect{X: x, Y: y, W: cellW, H: cellH}
		before := Rect{X: x, Y: y, W: slotW, H: cellH}
		arrow := Rect{X: x + slotW + ArrowPadding, Y: y + (cellH-arrowSize)/2, W: arrowSize, H: arrowSize}
		after := Rect{X: x + slotW + gutter, Y: y, W: slotW, H: cellH}

		g.Cells = append(g.Cells, PairCell{Cell: cell, Before: before, Arrow: arrow, After: after})
	}
	return g
}
