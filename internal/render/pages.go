// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

func renderCover(page model.Page, lang model.Language) *Layout {
	l := newLayout(page, lang)

	if key := rawString(page, model.KeyImageKey); key != "" {
		l.Nodes = append(l.Nodes, Node{
			Kind:     KindImage,
			Rect:     Rect{X: 0, Y: 0, W: model.CanvasWidth, H: model.CanvasHeight},
			ImageKey: key,
		})
	}

	l.Nodes = append(l.Nodes,
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 80, Y: 190, W: 800, H: 80},
			Spans:    ParseBold(fieldText(page, model.KeyTitle, lang)),
			FontSize: 44,
			Color:    "#161616",
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 80, Y: 280, W: 800, H: 40},
			Spans:    ParseBold(fieldText(page, model.KeySubtitle, lang)),
			FontSize: 22,
			Color:    "#525252",
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 80, Y: 460, W: 500, H: 24},
			Spans:    plainSpans(fieldText(page, model.KeyAuthor, lang)),
			FontSize: 14,
			Color:    "#525252",
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 640, Y: 460, W: 240, H: 24},
			Spans:    plainSpans(rawString(page, model.KeyDate)),
			FontSize: 14,
			Align:    "right",
			Color:    "#525252",
		},
	)
	return l
}

func renderSectionDivider(page model.Page, lang model.Language) *Layout {
	l := newLayout(page, lang)
	accent := rawString(page, model.KeyAccentColor)
	if accent == "" {
		accent = "#0f62fe"
	}

	l.Nodes = append(l.Nodes,
		Node{
			Kind:       KindBox,
			Rect:       Rect{X: 0, Y: 0, W: 12, H: model.CanvasHeight},
			Background: accent,
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 80, Y: 220, W: 800, H: 60},
			Spans:    ParseBold(fieldText(page, model.KeyTitle, lang)),
			FontSize: 36,
			Color:    "#161616",
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 80, Y: 290, W: 800, H: 32},
			Spans:    ParseBold(fieldText(page, model.KeySubtitle, lang)),
			FontSize: 18,
			Color:    "#525252",
		},
	)
	return l
}

// renderBullets serves both agenda and bullet-list pages: same content
// shape, same geometry.
func renderBullets(page model.Page, lang model.Language) *Layout {
	bullets := subdoc.Decode[model.Bullet](rawString(page, model.KeyBullets))

	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes, titleNode(page, lang))

	y := 110
	lineH := 34
	for _, b := range bullets {
		indent := b.Indent
		if indent < 0 {
			indent = 0
		}
		l.Nodes = append(l.Nodes, Node{
			Kind:     KindText,
			Rect:     Rect{X: 64 + indent*32, Y: y, W: 856 - indent*32, H: lineH},
			Spans:    ParseBold(b.Text.Get(lang)),
			FontSize: 18 - indent*2,
			Color:    "#161616",
		})
		y += lineH
	}
	return l
}

func renderQuote(page model.Page, lang model.Language) *Layout {
	l := newLayout(page, lang)
	l.Nodes = append(l.Nodes,
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 120, Y: 180, W: 720, H: 140},
			Spans:    ParseBold(fieldText(page, model.KeyQuote, lang)),
			FontSize: 30,
			Align:    "center",
			Color:    "#161616",
		},
		Node{
			Kind:     KindText,
			Rect:     Rect{X: 120, Y: 340, W: 720, H: 28},
			Spans:    plainSpans(fieldText(page, model.KeyAttribution, lang)),
			FontSize: 16,
			Align:    "center",
			Color:    "#525252",
		},
	)
	return l
}
