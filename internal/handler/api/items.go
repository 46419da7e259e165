// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/opres-go/internal/editor"
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/subdoc"
)

// Shared validation details for the item endpoints.
var (
	detailUnknownField = map[string]string{"field": "Unknown item field for this page type"}
	detailItemLanguage = map[string]string{"language": "Translatable item field requires a valid language"}
	detailItemNumeric  = map[string]string{"value": "Must be a number"}
)

// listItemOps adapts one page's list editor to the generic item
// routes. update returns validation details, nil on success; remove
// and move follow the editors' silent boundary no-op rule.
type listItemOps struct {
	add    func()
	remove func(id string)
	move   func(id string, dir subdoc.Direction)
	update func(id, field string, lang model.Language, value string) map[string]string
}

// listOpsFor builds the item adapter for a page, reporting false for
// page types without a single item list.
func (h *Handler) listOpsFor(page model.Page) (listItemOps, bool) {
	switch page.Type {
	case model.PageAgenda, model.PageBulletList:
		e := editor.NewBulletListEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddBullet,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "text":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateText(id, lang, value)
				case "indent":
					n, err := strconv.Atoi(value)
					if err != nil {
						return detailItemNumeric
					}
					e.SetIndent(id, n)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true

	case model.PageTeam, model.PageKPIGrid, model.PagePricing:
		e := editor.NewCardsEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddCard,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "title":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateTitle(id, lang, value)
				case "body":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateBody(id, lang, value)
				case "imageKey":
					e.SetImage(id, value)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true

	case model.PageTimeline, model.PageFAQ, model.PageRoadmap:
		e := editor.NewTimelineEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddEntry,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "label":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateLabel(id, lang, value)
				case "description":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateDescription(id, lang, value)
				case "date":
					e.SetDate(id, value)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true

	case model.PagePhotoGallery:
		e := editor.NewGalleryEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddPhoto,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "caption":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateCaption(id, lang, value)
				case "imageKey":
					e.SetImage(id, value)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true

	case model.PageBarChart:
		e := editor.NewBarChartEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddBar,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "label":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateLabel(id, lang, value)
				case "value":
					f, err := strconv.ParseFloat(value, 64)
					if err != nil {
						return detailItemNumeric
					}
					e.SetValue(id, f)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true

	case model.PageBeforeAfter:
		e := editor.NewBeforeAfterEditor(h.store, page.ID)
		return listItemOps{
			add:    e.AddPair,
			remove: e.Remove,
			move:   e.Move,
			update: func(id, field string, lang model.Language, value string) map[string]string {
				switch field {
				case "caption":
					if !lang.IsValid() {
						return detailItemLanguage
					}
					e.UpdateCaption(id, lang, value)
				case "beforeKey":
					e.SetBeforeImage(id, value)
				case "afterKey":
					e.SetAfterImage(id, value)
				default:
					return detailUnknownField
				}
				return nil
			},
		}, true
	}
	return listItemOps{}, false
}

// AddItem appends a default item to a list-shaped page. Adds beyond
// the list's maximum leave the page unchanged.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}
	ops, ok := h.listOpsFor(page)
	if !ok {
		WriteBadRequest(w, "Page has no item list", nil)
		return
	}

	ops.add()
	h.writeUpdatedPage(w, page.ID)
}

// RemoveItem deletes one item. Removing below the list's minimum or
// naming an unknown item leaves the page unchanged.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}
	ops, ok := h.listOpsFor(page)
	if !ok {
		WriteBadRequest(w, "Page has no item list", nil)
		return
	}

	ops.remove(chi.URLParam(r, "itemID"))
	h.writeUpdatedPage(w, page.ID)
}

// MoveItemRequest is the request body for a one-step item move.
type MoveItemRequest struct {
	Direction string `json:"direction"`
}

// MoveItem swaps an item with its neighbor; boundary moves succeed
// with an unchanged order.
func (h *Handler) MoveItem(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}
	ops, ok := h.listOpsFor(page)
	if !ok {
		WriteBadRequest(w, "Page has no item list", nil)
		return
	}

	var req MoveItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Direction != "up" && req.Direction != "down" {
		WriteValidationError(w, map[string]string{"direction": "Must be \"up\" or \"down\""})
		return
	}

	ops.move(chi.URLParam(r, "itemID"), subdoc.Direction(req.Direction))
	h.writeUpdatedPage(w, page.ID)
}

// UpdateItemRequest is the request body for an item field update.
// Translatable item fields require a language; scalar fields ignore it.
type UpdateItemRequest struct {
	Field    string `json:"field"`
	Language string `json:"language,omitempty"`
	Value    string `json:"value"`
}

// UpdateItem writes one field of one item.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}
	ops, ok := h.listOpsFor(page)
	if !ok {
		WriteBadRequest(w, "Page has no item list", nil)
		return
	}

	var req UpdateItemRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Field == "" {
		WriteValidationError(w, map[string]string{"field": "Field is required"})
		return
	}

	id := chi.URLParam(r, "itemID")
	if details := ops.update(id, req.Field, model.Language(req.Language), req.Value); details != nil {
		WriteValidationError(w, details)
		return
	}
	h.writeUpdatedPage(w, page.ID)
}

// writeUpdatedPage responds with the current state of one page.
func (h *Handler) writeUpdatedPage(w http.ResponseWriter, pageID string) {
	snap := h.store.Snapshot()
	idx := snap.Presentation.PageIndex(pageID)
	WriteSuccess(w, snap.Presentation.Pages[idx], nil)
}
