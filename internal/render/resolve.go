// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import "github.com/olegiv/opres-go/internal/model"

// ResolvedPage is one page flattened to plain strings for a single
// language: the shape exporters consume. Translatable fields resolve
// to the requested language; plain strings (scalars and JSON-encoded
// arrays) pass through untouched.
type ResolvedPage struct {
	ID      string            `json:"id"`
	Order   int               `json:"order"`
	Type    model.PageType    `json:"type"`
	Content map[string]string `json:"content"`
}

// ResolvedPresentation is a presentation flattened for one language.
type ResolvedPresentation struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Language model.Language `json:"language"`
	Pages    []ResolvedPage `json:"pages"`
}

// ResolveContent flattens a content dictionary for one language.
func ResolveContent(content map[string]model.Value, lang model.Language) map[string]string {
	out := make(map[string]string, len(content))
	for k, v := range content {
		if v.Kind == model.ValueField {
			out[k] = v.Field.Get(lang)
		} else {
			out[k] = v.Str
		}
	}
	return out
}

// ResolvePage flattens one page for one language.
func ResolvePage(page model.Page, lang model.Language) ResolvedPage {
	return ResolvedPage{
		ID:      page.ID,
		Order:   page.Order,
		Type:    page.Type,
		Content: ResolveContent(page.Content, lang),
	}
}

// ResolvePresentation flattens every page for one language, in page
// order.
func ResolvePresentation(p *model.Presentation, lang model.Language) ResolvedPresentation {
	out := ResolvedPresentation{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Language: lang,
	}
	out.Pages = make([]ResolvedPage, len(p.Pages))
	for i, page := range p.Pages {
		out.Pages[i] = ResolvePage(page, lang)
	}
	return out
}
