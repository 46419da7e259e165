// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"strconv"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// Bar-chart plot geometry.
const (
	plotX      = 80
	plotY      = 120
	plotWidth  = 800
	plotHeight = 320
	barGap     = 16
)

func renderBarChart(page model.Page, lang model.Language) *Layout {
	bars := subdoc.Decode[model.Bar](rawString(page, model.KeyBars))

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))
	if len(bars) == 0 {
		return l
	}

	maxVal := 0.0
	for _, b := range bars {
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}

	barW := (plotWidth - (len(bars)-1)*barGap) / len(bars)
	for i, b := range bars {
		h := 0
		if maxVal > 0 {
			h = int(float64(plotHeight) * b.Value / maxVal)
		}
		x := plotX + i*(barW+barGap)
		color := b.Color
		if color == "" {
			color = "#0f62fe"
		}
		l.Nodes = append(l.Nodes,
			Node{
				Kind:       KindBox,
				Rect:       Rect{X: x, Y: plotY + plotHeight - h, W: barW, H: h},
				Background: color,
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: x, Y: plotY + plotHeight + 8, W: barW, H: 20},
				Spans:    plainSpans(b.Label.Get(lang)),
				FontSize: 12,
				Align:    "center",
				Color:    "#161616",
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: x, Y: plotY + plotHeight - h - 22, W: barW, H: 18},
				Spans:    plainSpans(strconv.FormatFloat(b.Value, 'f', -1, 64)),
				FontSize: 12,
				Align:    "center",
				Color:    "#525252",
			},
		)
	}
	return l
}

func renderTimeline(page model.Page, lang model.Language) *Layout {
	entries := subdoc.Decode[model.TimelineEntry](rawString(page, model.KeyEntries))

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))
	if len(entries) == 0 {
		return l
	}

	// Horizontal axis with evenly spaced milestones.
	axisY := 280
	l.Nodes = append(l.Nodes, Node{
		Kind:       KindLine,
		Rect:       Rect{X: 64, Y: axisY, W: 832, H: 2},
		Background: "#8d8d8d",
	})

	step := 832 / len(entries)
	for i, e := range entries {
		cx := 64 + i*step + step/2
		color := e.Color
		if color == "" {
			color = "#0f62fe"
		}
		l.Nodes = append(l.Nodes,
			Node{
				Kind:       KindBox,
				Rect:       Rect{X: cx - 8, Y: axisY - 7, W: 16, H: 16},
				Background: color,
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: cx - step/2 + 8, Y: axisY - 60, W: step - 16, H: 20},
				Spans:    plainSpans(e.Date),
				FontSize: 12,
				Align:    "center",
				Color:    "#525252",
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: cx - step/2 + 8, Y: axisY - 36, W: step - 16, H: 22},
				Spans:    ParseBold(e.Label.Get(lang)),
				FontSize: 14,
				Align:    "center",
				Color:    "#161616",
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: cx - step/2 + 8, Y: axisY + 20, W: step - 16, H: 60},
				Spans:    ParseBold(e.Description.Get(lang)),
				FontSize: 11,
				Align:    "center",
				Color:    "#525252",
			},
		)
	}
	return l
}

func renderFlowChart(page model.Page, lang model.Language) *Layout {
	nodes := subdoc.Decode[model.FlowNode](rawString(page, model.KeyNodes))
	arrows := subdoc.Decode[model.FlowArrow](rawString(page, model.KeyArrows))
	legend := subdoc.Decode[model.LegendEntry](rawString(page, model.KeyLegend))

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))

	byID := make(map[string]model.FlowNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	// Arrows first so node boxes draw over the connector lines.
	for _, a := range arrows {
		src, okS := byID[a.SourceID]
		dst, okT := byID[a.TargetID]
		if !okS || !okT {
			continue
		}
		x1 := src.X + src.Width/2
		y1 := src.Y + src.Height/2
		x2 := dst.X + dst.Width/2
		y2 := dst.Y + dst.Height/2
		l.Nodes = append(l.Nodes, Node{
			Kind:       KindLine,
			Rect:       lineRect(x1, y1, x2, y2),
			Background: "#8d8d8d",
			Spans:      ParseBold(a.Label.Get(lang)),
			FontSize:   11,
		})
	}

	for _, n := range nodes {
		color := n.Color
		if color == "" {
			color = "#0f62fe"
		}
		l.Nodes = append(l.Nodes, Node{
			Kind:       KindBox,
			Rect:       Rect{X: n.X, Y: n.Y, W: n.Width, H: n.Height},
			Background: color,
			Children: []Node{{
				Kind:     KindText,
				Rect:     Rect{X: 4, Y: 0, W: n.Width - 8, H: n.Height},
				Spans:    ParseBold(n.Label.Get(lang)),
				FontSize: 13,
				Align:    "center",
				Color:    "#ffffff",
			}},
		})
	}

	// Legend swatches bottom-left.
	x := 64
	for _, entry := range legend {
		l.Nodes = append(l.Nodes,
			Node{
				Kind:       KindBox,
				Rect:       Rect{X: x, Y: 500, W: 14, H: 14},
				Background: entry.Color,
			},
			Node{
				Kind:     KindText,
				Rect:     Rect{X: x + 20, Y: 498, W: 140, H: 18},
				Spans:    plainSpans(entry.Label.Get(lang)),
				FontSize: 11,
				Color:    "#525252",
			},
		)
		x += 170
	}
	return l
}

// lineRect normalizes two endpoints into a bounding rectangle.
func lineRect(x1, y1, x2, y2 int) Rect {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}
}
