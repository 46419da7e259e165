// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"testing"

	"github.com/olegiv/opres-go/internal/model"
)

func TestGridShape(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		pairs    int
		wantCols int
		wantRows int
	}{
		{"2x2 fixed", model.Layout2x2, 4, 2, 2},
		{"2x2 ignores pair count", model.Layout2x2, 1, 2, 2},
		{"1x2 side by side", model.Layout1x2, 2, 2, 1},
		{"2x1 stacked", model.Layout2x1, 2, 1, 2},
		{"freeform single pair", "freeform", 1, 1, 1},
		{"freeform caps columns at two", "freeform", 2, 2, 1},
		{"freeform wraps to rows", "freeform", 5, 2, 3},
		{"freeform zero pairs", "freeform", 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := gridShape(tt.mode, tt.pairs)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("gridShape(%q, %d) = (%d, %d), want (%d, %d)",
					tt.mode, tt.pairs, cols, rows, tt.wantCols, tt.wantRows)
			}
		})
	}
}

func TestComputePairGrid2x2(t *testing.T) {
	g := ComputePairGrid(model.Layout2x2, 4, 24)

	if g.Cols != 2 || g.Rows != 2 {
		t.Fatalf("shape = %dx%d", g.Cols, g.Rows)
	}
	if g.CellW != (880-8)/2 || g.CellH != (420-8)/2 {
		t.Errorf("cell = %dx%d", g.CellW, g.CellH)
	}
	if len(g.Cells) != 4 {
		t.Fatalf("cells = %d", len(g.Cells))
	}

	// First cell anchors at the content origin; the fourth is offset by
	// one cell plus gap on both axes.
	if c := g.Cells[0].Cell; c.X != GridContentX || c.Y != GridContentY {
		t.Errorf("cell 0 at (%d,%d)", c.X, c.Y)
	}
	if c := g.Cells[3].Cell; c.X != GridContentX+g.CellW+GridGap || c.Y != GridContentY+g.CellH+GridGap {
		t.Errorf("cell 3 at (%d,%d)", c.X, c.Y)
	}
}

func TestComputePairGridSlotGeometry(t *testing.T) {
	arrowSize := 24
	g := ComputePairGrid(model.Layout1x2, 1, arrowSize)

	c := g.Cells[0]
	gutter := arrowSize + 2*ArrowPadding
	slotW := (g.CellW - gutter) / 2

	if c.Before.W != slotW || c.After.W != slotW {
		t.Errorf("slot widths = %d/%d, want %d", c.Before.W, c.After.W, slotW)
	}
	if c.Arrow.W != arrowSize || c.Arrow.H != arrowSize {
		t.Errorf("arrow = %dx%d", c.Arrow.W, c.Arrow.H)
	}
	if c.Arrow.X != c.Before.X+slotW+ArrowPadding {
		t.Errorf("arrow X = %d", c.Arrow.X)
	}
	if c.After.X != c.Before.X+slotW+gutter {
		t.Errorf("after X = %d", c.After.X)
	}
	// Arrow centers vertically in the cell.
	if c.Arrow.Y != c.Cell.Y+(g.CellH-arrowSize)/2 {
		t.Errorf("arrow Y = %d", c.Arrow.Y)
	}
}

func TestComputePairGridClampsToCapacity(t *testing.T) {
	// Six pairs in a 2x2 mode tile only the first four.
	g := ComputePairGrid(model.Layout2x2, 6, 24)
	if len(g.Cells) != 4 {
		t.Errorf("cells = %d, want capacity 4", len(g.Cells))
	}

	// Freeform grows rows instead of dropping pairs.
	g = ComputePairGrid("freeform", 6, 24)
	if len(g.Cells) != 6 || g.Rows != 3 {
		t.Errorf("freeform cells = %d rows = %d", len(g.Cells), g.Rows)
	}
}
