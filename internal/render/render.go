// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render turns page content into fixed-geometry layout trees.
// Every renderer is a pure function from (content, language) to a
// 960×540 tree of absolutely positioned nodes; exporters and the
// preview consume the same output.
package render

import (
	"fmt"
	"strings"

	"github.com/olegiv/opres-go/internal/model"
)

// NoTranslation is rendered in place of missing translated text by the
// table renderers: translation gaps are surfaced, not hidden.
const NoTranslation = "[no translation]"

// NodeKind discriminates layout node types.
type NodeKind string

const (
	KindBox   NodeKind = "box"
	KindText  NodeKind = "text"
	KindImage NodeKind = "image"
	KindLine  NodeKind = "line"
)

// Rect is an absolute pixel rectangle on the canvas.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Node is one positioned element of a layout tree.
type Node struct {
	Kind       NodeKind `json:"kind"`
	Rect       Rect     `json:"rect"`
	Spans      []Span   `json:"spans,omitempty"`
	FontSize   int      `json:"fontSize,omitempty"`
	Align      string   `json:"align,omitempty"`
	Color      string   `json:"color,omitempty"`
	Background string   `json:"background,omitempty"`
	ImageKey   string   `json:"imageKey,omitempty"`
	Children   []Node   `json:"children,omitempty"`
}

// Layout is a rendered page: a flat list of root nodes on the fixed
// canvas.
type Layout struct {
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	PageType model.PageType `json:"pageType"`
	Language model.Language `json:"language"`
	Nodes    []Node         `json:"nodes"`
}

// Renderer renders one page type.
type Renderer interface {
	Render(page model.Page, lang model.Language) *Layout
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(page model.Page, lang model.Language) *Layout

// Render implements Renderer.
func (f RendererFunc) Render(page model.Page, lang model.Language) *Layout {
	return f(page, lang)
}

// Registry maps page types to renderers. Unregistered types fall back
// to a full-canvas placeholder rather than an error.
type Registry struct {
	renderers map[model.PageType]Renderer
}

// NewRegistry returns a registry with every implemented renderer
// wired up.
func NewRegistry() *Registry {
	r := &Registry{renderers: make(map[model.PageType]Renderer)}
	r.Register(model.PageCover, RendererFunc(renderCover))
	r.Register(model.PageAgenda, RendererFunc(renderBullets))
	r.Register(model.PageSectionDivider, RendererFunc(renderSectionDivider))
	r.Register(model.PageBulletList, RendererFunc(renderBullets))
	r.Register(model.PageDataTable, RendererFunc(renderDataTable))
	r.Register(model.PageComparisonTable, RendererFunc(renderComparisonTable))
	r.Register(model.PageTimeline, RendererFunc(renderTimeline))
	r.Register(model.PageFlowChart, RendererFunc(renderFlowChart))
	r.Register(model.PageBeforeAfter, RendererFunc(renderBeforeAfter))
	r.Register(model.PagePhotoGallery, RendererFunc(renderGallery))
	r.Register(model.PageBarChart, RendererFunc(renderBarChart))
	r.Register(model.PageQuote, RendererFunc(renderQuote))
	return r
}

// Register wires a renderer for a page type.
func (r *Registry) Register(t model.PageType, renderer Renderer) {
	r.renderers[t] = renderer
}

// Supported reports whether a page type has a renderer.
func (r *Registry) Supported(t model.PageType) bool {
	_, ok := r.renderers[t]
	return ok
}

// Render renders the page in the given language, falling back to the
// not-available placeholder for page types with no renderer.
func (r *Registry) Render(page model.Page, lang model.Language) *Layout {
	if renderer, ok := r.renderers[page.Type]; ok {
		return renderer.Render(page, lang)
	}
	return renderPlaceholder(page, lang)
}

// renderPlaceholder fills the canvas with the defined non-crashing
// fallback for unimplemented page types.
func renderPlaceholder(page model.Page, lang model.Language) *Layout {
	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, Node{
		Kind:       KindBox,
		Rect:       Rect{X: 0, Y: 0, W: model.CanvasWidth, H: model.CanvasHeight},
		Background: "#f4f4f4",
		Children: []Node{{
			Kind:     KindText,
			Rect:     Rect{X: 0, Y: 250, W: model.CanvasWidth, H: 40},
			Spans:    plainSpans(fmt.Sprintf("Preview not available for %q", string(page.Type))),
			FontSize: 16,
			Align:    "center",
			Color:    "#6f6f6f",
		}},
	})
	return l
}

func newLayout(page model.Page, lang model.Language) *Layout {
	return &Layout{
		Width:    model.CanvasWidth,
		Height:   model.CanvasHeight,
		PageType: page.Type,
		Language: lang,
	}
}

// fieldText resolves a translatable content field for the language.
func fieldText(page model.Page, key string, lang model.Language) string {
	f, ok := page.Field(key)
	if !ok {
		return ""
	}
	return f.Get(lang)
}

// textOrPlaceholder substitutes the no-translation marker for blank
// resolved text.
func textOrPlaceholder(s string) (string, bool) {
	if strings.TrimSpace(s) == "" {
		return NoTranslation, true
	}
	return s, false
}

func plainSpans(s string) []Span {
	return []Span{{Text: s}}
}

// titleNode renders the standard page title band.
func titleNode(page model.Page, lang model.Language) Node {
	return Node{
		Kind:     KindText,
		Rect:     Rect{X: 40, Y: 24, W: 880, H: 56},
		Spans:    ParseBold(fieldText(page, model.KeyTitle, lang)),
		FontSize: 28,
		Color:    "#161616",
	}
}
