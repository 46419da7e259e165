// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"testing"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/store"
)

func TestFlowChartDefaults(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	if len(e.Nodes()) != 1 {
		t.Fatalf("nodes = %d, want 1", len(e.Nodes()))
	}
	if len(e.Arrows()) != 0 || len(e.Legend()) != 0 {
		t.Errorf("arrows = %d, legend = %d, want empty", len(e.Arrows()), len(e.Legend()))
	}
}

func TestFlowChartAddArrowValidatesEndpoints(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	e.AddNode()
	src := e.Nodes()[0].ID
	dst := e.Nodes()[1].ID

	e.AddArrow(src, "no-such-node")
	e.AddArrow("no-such-node", dst)
	if len(e.Arrows()) != 0 {
		t.Fatalf("arrows = %d, unknown endpoints must be rejected", len(e.Arrows()))
	}

	e.AddArrow(src, dst)
	if len(e.Arrows()) != 1 {
		t.Fatalf("arrows = %d after valid add", len(e.Arrows()))
	}
	a := e.Arrows()[0]
	if a.SourceID != src || a.TargetID != dst {
		t.Errorf("arrow endpoints = %q -> %q", a.SourceID, a.TargetID)
	}
}

func TestFlowChartRemoveNodeCascadesArrows(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	e.AddNode()
	e.AddNode()
	n0, n1, n2 := e.Nodes()[0].ID, e.Nodes()[1].ID, e.Nodes()[2].ID
	e.AddArrow(n0, n1)
	e.AddArrow(n1, n2)
	e.AddArrow(n0, n2)

	var notifications int
	unsub := s.Subscribe(func(store.Snapshot) { notifications++ })
	defer unsub()

	e.RemoveNode(n1)

	if len(e.Nodes()) != 2 {
		t.Fatalf("nodes = %d, want 2", len(e.Nodes()))
	}
	if len(e.Arrows()) != 1 {
		t.Fatalf("arrows = %d, want only the n0->n2 arrow to survive", len(e.Arrows()))
	}
	if a := e.Arrows()[0]; a.SourceID != n0 || a.TargetID != n2 {
		t.Errorf("surviving arrow = %q -> %q", a.SourceID, a.TargetID)
	}
	// Node and arrow arrays change in one store mutation.
	if notifications != 1 {
		t.Errorf("notifications = %d, want 1 for the cascade", notifications)
	}

	// Cascade is durable: a fresh editor sees the same shape.
	e2 := NewFlowChartEditor(s, pageID)
	if len(e2.Nodes()) != 2 || len(e2.Arrows()) != 1 {
		t.Errorf("persisted nodes = %d, arrows = %d", len(e2.Nodes()), len(e2.Arrows()))
	}
}

func TestFlowChartRemoveLastNodeRejected(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	e.RemoveNode(e.Nodes()[0].ID)
	if len(e.Nodes()) != 1 {
		t.Errorf("nodes = %d, want the last node preserved", len(e.Nodes()))
	}
}

func TestFlowChartMoveNodeClampsToCanvas(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	id := e.Nodes()[0].ID
	w, h := e.Nodes()[0].Width, e.Nodes()[0].Height

	e.MoveNode(id, -50, 99999)
	n := e.Nodes()[0]
	if n.X != 0 {
		t.Errorf("X = %d, want clamped to 0", n.X)
	}
	if n.Y != model.CanvasHeight-h {
		t.Errorf("Y = %d, want clamped to %d", n.Y, model.CanvasHeight-h)
	}

	e.MoveNode(id, 200, 100)
	n = e.Nodes()[0]
	if n.X != 200 || n.Y != 100 {
		t.Errorf("in-bounds move landed at (%d,%d)", n.X, n.Y)
	}
	if n.Width != w {
		t.Errorf("move changed width to %d", n.Width)
	}
}

func TestFlowChartLabelsAndLegend(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageFlowChart)

	e := NewFlowChartEditor(s, pageID)
	id := e.Nodes()[0].ID

	e.UpdateNodeLabel(id, model.LangEN, "Start")
	e.UpdateNodeLabel(id, model.LangZhCN, "开始")
	if got := e.Nodes()[0].Label; got.En != "Start" || got.ZhCN != "开始" {
		t.Errorf("label = %+v", got)
	}

	e.SetNodeStyle(id, "diamond", "")
	if n := e.Nodes()[0]; n.Shape != "diamond" || n.Color == "" {
		t.Errorf("style = %q/%q, empty color must keep the old one", n.Shape, n.Color)
	}

	e.AddLegendEntry("#da1e28")
	if len(e.Legend()) != 1 || e.Legend()[0].Color != "#da1e28" {
		t.Fatalf("legend = %+v", e.Legend())
	}
	e.RemoveLegendEntry(e.Legend()[0].ID)
	if len(e.Legend()) != 0 {
		t.Error("legend entry not removed")
	}
}
