// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package editor

import (
	"testing"

	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

func TestBulletListEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageBulletList)

	e := NewBulletListEditor(s, pageID)
	if len(e.Items()) != 1 {
		t.Fatalf("default bullets = %d, want 1", len(e.Items()))
	}

	e.AddBullet()
	if len(e.Items()) != 2 {
		t.Fatalf("bullets = %d after add", len(e.Items()))
	}

	first := e.Items()[0].ID
	e.UpdateText(first, model.LangEN, "Intro")
	e.UpdateText(first, model.LangZhTW, "簡介")
	if got := e.Items()[0].Text; got.En != "Intro" || got.ZhTW != "簡介" {
		t.Errorf("bullet text = %+v", got)
	}

	// Indent clamps to 0..2.
	e.SetIndent(first, 5)
	if e.Items()[0].Indent != 2 {
		t.Errorf("indent = %d, want clamped to 2", e.Items()[0].Indent)
	}
	e.SetIndent(first, -1)
	if e.Items()[0].Indent != 0 {
		t.Errorf("indent = %d, want clamped to 0", e.Items()[0].Indent)
	}

	e.Move(first, subdoc.MoveDown)
	if e.Items()[1].ID != first {
		t.Error("move down must swap with the next bullet")
	}

	// Removing down to zero is rejected at the minimum.
	e.Remove(e.Items()[1].ID)
	e.Remove(e.Items()[0].ID)
	if len(e.Items()) != 1 {
		t.Errorf("bullets = %d, want minimum 1 preserved", len(e.Items()))
	}

	// Edits are visible through a fresh editor.
	if len(NewBulletListEditor(s, pageID).Items()) != 1 {
		t.Error("stored bullets diverge from the editor's view")
	}
}

func TestBulletListEditorEnforcesMaximum(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageAgenda)

	e := NewBulletListEditor(s, pageID)
	for i := 0; i < subdoc.BulletBounds.Max+3; i++ {
		e.AddBullet()
	}
	if len(e.Items()) != subdoc.BulletBounds.Max {
		t.Errorf("bullets = %d, want capped at %d", len(e.Items()), subdoc.BulletBounds.Max)
	}
	if got := len(NewBulletListEditor(s, pageID).Items()); got != subdoc.BulletBounds.Max {
		t.Errorf("stored bullets = %d, want capped at %d", got, subdoc.BulletBounds.Max)
	}
}

func TestCardsEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageTeam)

	e := NewCardsEditor(s, pageID)
	if len(e.Items()) != 1 {
		t.Fatalf("default cards = %d, want 1", len(e.Items()))
	}

	e.AddCard()
	id := e.Items()[1].ID
	e.UpdateTitle(id, model.LangEN, "CTO")
	e.UpdateBody(id, model.LangZhCN, "技术负责人")
	e.SetImage(id, "img-abc")

	card := NewCardsEditor(s, pageID).Items()[1]
	if card.Title.En != "CTO" || card.Body.ZhCN != "技术负责人" || card.ImageKey != "img-abc" {
		t.Errorf("card = %+v", card)
	}

	e.Remove(id)
	if len(e.Items()) != 1 {
		t.Errorf("cards = %d after remove", len(e.Items()))
	}
}

func TestTimelineEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageTimeline)

	e := NewTimelineEditor(s, pageID)
	e.AddEntry()
	if len(e.Items()) != 2 {
		t.Fatalf("entries = %d after add", len(e.Items()))
	}
	if e.Items()[1].Color == "" {
		t.Error("new entry must carry the default color")
	}

	id := e.Items()[1].ID
	e.UpdateLabel(id, model.LangEN, "Beta")
	e.UpdateDescription(id, model.LangZhTW, "公開測試")
	e.SetDate(id, "2026-09")

	e.Move(id, subdoc.MoveUp)
	entry := NewTimelineEditor(s, pageID).Items()[0]
	if entry.ID != id || entry.Label.En != "Beta" || entry.Description.ZhTW != "公開測試" || entry.Date != "2026-09" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestGalleryEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PagePhotoGallery)

	e := NewGalleryEditor(s, pageID)
	e.AddPhoto()
	id := e.Items()[1].ID
	e.SetImage(id, "img-sunset")
	e.UpdateCaption(id, model.LangEN, "Sunset")

	photo := NewGalleryEditor(s, pageID).Items()[1]
	if photo.ImageKey != "img-sunset" || photo.Caption.En != "Sunset" {
		t.Errorf("photo = %+v", photo)
	}

	// The last photo cannot be removed.
	e.Remove(e.Items()[1].ID)
	e.Remove(e.Items()[0].ID)
	if len(e.Items()) != 1 {
		t.Errorf("photos = %d, want minimum 1 preserved", len(e.Items()))
	}
}

func TestBarChartEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageBarChart)

	e := NewBarChartEditor(s, pageID)
	e.AddBar()
	id := e.Items()[1].ID
	e.UpdateLabel(id, model.LangEN, "Q3")
	e.SetValue(id, 42.5)

	bar := NewBarChartEditor(s, pageID).Items()[1]
	if bar.Label.En != "Q3" || bar.Value != 42.5 {
		t.Errorf("bar = %+v", bar)
	}

	// The chart has no negative axis.
	e.SetValue(id, -7)
	if got := e.Items()[1].Value; got != 0 {
		t.Errorf("negative value stored as %v, want 0", got)
	}
}

func TestBeforeAfterEditorCycle(t *testing.T) {
	s := testStore(t)
	pageID := s.AddPage(model.PageBeforeAfter)

	e := NewBeforeAfterEditor(s, pageID)
	e.AddPair()
	id := e.Items()[1].ID
	e.SetBeforeImage(id, "img-old")
	e.SetAfterImage(id, "img-new")
	e.UpdateCaption(id, model.LangZhCN, "改造后")

	pair := NewBeforeAfterEditor(s, pageID).Items()[1]
	if pair.BeforeKey != "img-old" || pair.AfterKey != "img-new" || pair.Caption.ZhCN != "改造后" {
		t.Errorf("pair = %+v", pair)
	}

	e.SetLayoutMode(model.Layout2x2)
	page, _ := s.Snapshot().Presentation.PageByID(pageID)
	if mode, _ := page.String(model.KeyLayoutMode); mode != model.Layout2x2 {
		t.Errorf("layout mode = %q", mode)
	}

	// Unknown modes are dropped.
	e.SetLayoutMode("diagonal")
	page, _ = s.Snapshot().Presentation.PageByID(pageID)
	if mode, _ := page.String(model.KeyLayoutMode); mode != model.Layout2x2 {
		t.Errorf("layout mode = %q after bogus mode", mode)
	}

	e.SetArrowSize(500)
	page, _ = s.Snapshot().Presentation.PageByID(pageID)
	if size, _ := page.String(model.KeyArrowSize); size != "64" {
		t.Errorf("arrow size = %q, want clamped to 64", size)
	}
}
