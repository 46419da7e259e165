// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/olegiv/opres-go/internal/model"
)

// collectText flattens every text span of a layout tree for assertions.
func collectText(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		for _, s := range n.Spans {
			sb.WriteString(s.Text)
			sb.WriteString("\n")
		}
		sb.WriteString(collectText(n.Children))
	}
	return sb.String()
}

func TestRegistryRendersEveryType(t *testing.T) {
	reg := NewRegistry()

	for _, pt := range model.AllPageTypes {
		page := model.NewPage(pt)
		l := reg.Render(page, model.LangEN)
		if l == nil {
			t.Fatalf("%s: nil layout", pt)
		}
		if l.Width != model.CanvasWidth || l.Height != model.CanvasHeight {
			t.Errorf("%s: canvas = %dx%d", pt, l.Width, l.Height)
		}
		if l.PageType != pt || l.Language != model.LangEN {
			t.Errorf("%s: layout labeled %s/%s", pt, l.PageType, l.Language)
		}
		if len(l.Nodes) == 0 {
			t.Errorf("%s: empty layout", pt)
		}
	}
}

func TestRenderUnsupportedTypeGetsPlaceholder(t *testing.T) {
	reg := NewRegistry()
	page := model.NewPage(model.PageKPIGrid)

	if reg.Supported(page.Type) {
		t.Fatalf("%s unexpectedly has a renderer", page.Type)
	}

	l := reg.Render(page, model.LangEN)
	want := fmt.Sprintf("Preview not available for %q", string(page.Type))
	if !strings.Contains(collectText(l.Nodes), want) {
		t.Errorf("placeholder text %q missing from layout", want)
	}
}

func TestRenderCoverUsesFields(t *testing.T) {
	reg := NewRegistry()
	page := model.NewPage(model.PageCover)
	page.Content[model.KeyTitle] = model.FieldValue(model.TranslatableField{En: "Launch Plan", ZhTW: "啟動計畫"})

	l := reg.Render(page, model.LangZhTW)
	if !strings.Contains(collectText(l.Nodes), "啟動計畫") {
		t.Error("resolved title missing from layout")
	}

	l = reg.Render(page, model.LangEN)
	if !strings.Contains(collectText(l.Nodes), "Launch Plan") {
		t.Error("English title missing from layout")
	}
}

func TestRenderTableMarksMissingTranslations(t *testing.T) {
	reg := NewRegistry()
	page := model.NewPage(model.PageDataTable)

	// Default cells carry no zh-cn text, so every cell resolves to the
	// visible gap marker.
	l := reg.Render(page, model.LangZhCN)
	if !strings.Contains(collectText(l.Nodes), NoTranslation) {
		t.Errorf("missing translations must surface as %q", NoTranslation)
	}
}

func TestResolveContent(t *testing.T) {
	content := map[string]model.Value{
		"title":  model.FieldValue(model.TranslatableField{En: "Hello", ZhCN: "你好"}),
		"layout": model.StringValue("2x2"),
	}

	got := ResolveContent(content, model.LangZhCN)
	if got["title"] != "你好" {
		t.Errorf("title = %q", got["title"])
	}
	if got["layout"] != "2x2" {
		t.Errorf("plain string must pass through, got %q", got["layout"])
	}

	got = ResolveContent(content, model.LangEN)
	if got["title"] != "Hello" {
		t.Errorf("title = %q", got["title"])
	}
}

func TestResolvePresentation(t *testing.T) {
	p := model.NewPresentation("Deck", "ops")
	r := ResolvePresentation(p, model.LangZhTW)

	if r.Name != "Deck" || r.Language != model.LangZhTW {
		t.Errorf("header = %q/%q", r.Name, r.Language)
	}
	if len(r.Pages) != len(p.Pages) {
		t.Fatalf("pages = %d, want %d", len(r.Pages), len(p.Pages))
	}
	for i, rp := range r.Pages {
		if rp.ID != p.Pages[i].ID || rp.Order != p.Pages[i].Order {
			t.Errorf("page %d identity mismatch", i)
		}
		for k, v := range rp.Content {
			_ = v
			if _, ok := p.Pages[i].Content[k]; !ok {
				t.Errorf("page %d resolved unknown key %q", i, k)
			}
		}
	}
}
