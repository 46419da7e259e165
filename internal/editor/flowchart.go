// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// FlowChartEditor edits flow-chart nodes, arrows and the legend.
// Arrows reference nodes by ID, so node removal cascades into the
// arrow list and both arrays are written in the same user action.
type FlowChartEditor struct {
	pageEditor
	nodes  []model.FlowNode
	arrows []model.FlowArrow
	legend []model.LegendEntry
}

// NewFlowChartEditor opens a flow-chart editor.
func NewFlowChartEditor(s *store.Store, pageID string) *FlowChartEditor {
	e := &FlowChartEditor{pageEditor: pageEditor{store: s, pageID: pageID}}
	e.nodes = subdoc.Decode[model.FlowNode](e.raw(model.KeyNodes))
	e.arrows = subdoc.Decode[model.FlowArrow](e.raw(model.KeyArrows))
	e.legend = subdoc.Decode[model.LegendEntry](e.raw(model.KeyLegend))
	return e
}

// Nodes returns the current decoded node list.
func (e *FlowChartEditor) Nodes() []model.FlowNode { return e.nodes }

// Arrows returns the current decoded arrow list.
func (e *FlowChartEditor) Arrows() []model.FlowArrow { return e.arrows }

// Legend returns the current decoded legend list.
func (e *FlowChartEditor) Legend() []model.LegendEntry { return e.legend }

func (e *FlowChartEditor) writeNodes()  { e.write(model.KeyNodes, subdoc.Encode(e.nodes)) }
func (e *FlowChartEditor) writeArrows() { e.write(model.KeyArrows, subdoc.Encode(e.arrows)) }
func (e *FlowChartEditor) writeLegend() { e.write(model.KeyLegend, subdoc.Encode(e.legend)) }

// AddNode appends a node at a default position.
func (e *FlowChartEditor) AddNode() {
	node := model.FlowNode{
		ID: model.NewRecordID(), X: 80, Y: 120, Width: 160, Height: 64,
		Shape: "rounded", Color: "#0f62fe",
	}
	nodes, ok := subdoc.Append(e.nodes, node, subdoc.FlowNodeBounds)
	if !ok {
		return
	}
	e.nodes = nodes
	e.writeNodes()
}

// RemoveNode deletes a node and every arrow whose source or target
// references it, re-syncing both arrays atomically from the page's
// point of view (one snapshot swap).
func (e *FlowChartEditor) RemoveNode(id string) {
	nodes, ok := subdoc.Remove(e.nodes, id, subdoc.FlowNodeBounds)
	if !ok {
		return
	}
	arrows := make([]model.FlowArrow, 0, len(e.arrows))
	for _, a := range e.arrows {
		if a.SourceID == id || a.TargetID == id {
			continue
		}
		arrows = append(arrows, a)
	}
	e.nodes = nodes
	e.arrows = arrows
	e.writeAll(map[string]string{
		model.KeyNodes:  subdoc.Encode(e.nodes),
		model.KeyArrows: subdoc.Encode(e.arrows),
	})
}

// UpdateNodeLabel sets one language of a node label.
func (e *FlowChartEditor) UpdateNodeLabel(id string, lang model.Language, value string) {
	nodes, ok := subdoc.Update(e.nodes, id, func(n model.FlowNode) model.FlowNode {
		n.Label = n.Label.With(lang, value)
		return n
	})
	if !ok {
		return
	}
	e.nodes = nodes
	e.writeNodes()
}

// MoveNode repositions a node on the canvas, clamped to it.
func (e *FlowChartEditor) MoveNode(id string, x, y int) {
	nodes, ok := subdoc.Update(e.nodes, id, func(n model.FlowNode) model.FlowNode {
		n.X = clamp(x, 0, model.CanvasWidth-n.Width)
		n.Y = clamp(y, 0, model.CanvasHeight-n.Height)
		return n
	})
	if !ok {
		return
	}
	e.nodes = nodes
	e.writeNodes()
}

// SetNodeStyle updates a node's shape and color.
func (e *FlowChartEditor) SetNodeStyle(id, shape, color string) {
	nodes, ok := subdoc.Update(e.nodes, id, func(n model.FlowNode) model.FlowNode {
		if shape != "" {
			n.Shape = shape
		}
		if color != "" {
			n.Color = color
		}
		return n
	})
	if !ok {
		return
	}
	e.nodes = nodes
	e.writeNodes()
}

// AddArrow connects two existing nodes. Unknown endpoints are
// rejected as no-ops.
func (e *FlowChartEditor) AddArrow(sourceID, targetID string) {
	if !e.hasNode(sourceID) || !e.hasNode(targetID) {
		return
	}
	arrow := model.FlowArrow{ID: model.NewRecordID(), SourceID: sourceID, TargetID: targetID, Style: "solid"}
	arrows, ok := subdoc.Append(e.arrows, arrow, subdoc.FlowArrowBounds)
	if !ok {
		return
	}
	e.arrows = arrows
	e.writeArrows()
}

// RemoveArrow deletes one arrow.
func (e *FlowChartEditor) RemoveArrow(id string) {
	arrows, ok := subdoc.Remove(e.arrows, id, subdoc.FlowArrowBounds)
	if !ok {
		return
	}
	e.arrows = arrows
	e.writeArrows()
}

// UpdateArrowLabel sets one language of an arrow label.
func (e *FlowChartEditor) UpdateArrowLabel(id string, lang model.Language, value string) {
	arrows, ok := subdoc.Update(e.arrows, id, func(a model.FlowArrow) model.FlowArrow {
		a.Label = a.Label.With(lang, value)
		return a
	})
	if !ok {
		return
	}
	e.arrows = arrows
	e.writeArrows()
}

// AddLegendEntry appends a legend swatch.
func (e *FlowChartEditor) AddLegendEntry(color string) {
	entry := model.LegendEntry{ID: model.NewRecordID(), Color: color}
	legend, ok := subdoc.Append(e.legend, entry, subdoc.LegendBounds)
	if !ok {
		return
	}
	e.legend = legend
	e.writeLegend()
}

// RemoveLegendEntry deletes a legend swatch.
func (e *FlowChartEditor) RemoveLegendEntry(id string) {
	legend, ok := subdoc.Remove(e.legend, id, subdoc.LegendBounds)
	if !ok {
		return
	}
	e.legend = legend
	e.writeLegend()
}

func (e *FlowChartEditor) hasNode(id string) bool {
	for i := range e.nodes {
		if e.nodes[i].ID == id {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
