// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/opres-go/internal/editor"
	"github.com/olegiv/opres-go/internal/model"
	"github.com/olegiv/opres-go/internal/render"
)

// AddPageRequest is the request body for adding a page.
type AddPageRequest struct {
	Type string `json:"type"`
}

// AddPageResponse carries the ID of the page just created.
type AddPageResponse struct {
	ID string `json:"id"`
}

// AddPage appends a new page of the requested type and selects it.
func (h *Handler) AddPage(w http.ResponseWriter, r *http.Request) {
	var req AddPageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	t := model.PageType(req.Type)
	if !t.IsValid() {
		WriteValidationError(w, map[string]string{"type": "Unknown page type"})
		return
	}

	id := h.store.AddPage(t)
	WriteCreated(w, AddPageResponse{ID: id})
}

// DeletePage removes a page.
func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	h.store.DeletePage(page.ID)
	WriteSuccess(w, h.store.Snapshot().Presentation, nil)
}

// SelectPage marks a page as the edited one.
func (h *Handler) SelectPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	h.store.SelectPage(page.ID)
	WriteSuccess(w, h.store.Snapshot(), nil)
}

// ReorderPageRequest is the request body for a one-step page move.
type ReorderPageRequest struct {
	Direction string `json:"direction"`
}

// ReorderPage swaps a page with its neighbor in the given direction.
// Boundary moves succeed with an unchanged order.
func (h *Handler) ReorderPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	var req ReorderPageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Direction != "up" && req.Direction != "down" {
		WriteValidationError(w, map[string]string{"direction": "Must be \"up\" or \"down\""})
		return
	}

	h.store.ReorderPage(page.ID, req.Direction)
	WriteSuccess(w, h.store.Snapshot().Presentation, nil)
}

// MovePageRequest is the request body for moving a page to an index.
type MovePageRequest struct {
	ToIndex int `json:"to_index"`
}

// MovePage splices a page to the requested position.
func (h *Handler) MovePage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	var req MovePageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	snap := h.store.Snapshot()
	if req.ToIndex < 0 || req.ToIndex >= len(snap.Presentation.Pages) {
		WriteValidationError(w, map[string]string{"to_index": "Target index out of range"})
		return
	}

	h.store.MovePage(page.ID, req.ToIndex)
	WriteSuccess(w, h.store.Snapshot().Presentation, nil)
}

// UpdateFieldRequest is the request body for a content field update.
// Translatable fields require a language; plain string fields ignore it.
type UpdateFieldRequest struct {
	Key      string `json:"key"`
	Language string `json:"language,omitempty"`
	Value    string `json:"value"`
}

// UpdateField writes one content field of a page.
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	var req UpdateFieldRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Key == "" {
		WriteValidationError(w, map[string]string{"key": "Key is required"})
		return
	}

	v, exists := page.Content[req.Key]
	if exists && v.Kind == model.ValueField {
		lang := model.Language(req.Language)
		if !lang.IsValid() {
			WriteValidationError(w, map[string]string{"language": "Translatable field requires a valid language"})
			return
		}
		h.store.UpdateTranslatableField(page.ID, req.Key, lang, req.Value)
	} else {
		h.store.UpdateStringField(page.ID, req.Key, req.Value)
	}

	snap := h.store.Snapshot()
	idx := snap.Presentation.PageIndex(page.ID)
	WriteSuccess(w, snap.Presentation.Pages[idx], nil)
}

// SetStatusRequest is the request body for marking a translation status.
type SetStatusRequest struct {
	Key      string `json:"key"`
	Language string `json:"language"`
	Status   string `json:"status"`
}

// SetTranslationStatus marks a non-English translation of one field as
// reviewed, auto-translated, outdated, or empty.
func (h *Handler) SetTranslationStatus(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	var req SetStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lang := model.Language(req.Language)
	if !lang.IsValid() || lang == model.LangEN {
		WriteValidationError(w, map[string]string{"language": "Must be a non-English content language"})
		return
	}

	status := model.TranslationStatus(req.Status)
	switch status {
	case model.StatusAutoTranslated, model.StatusReviewed, model.StatusOutdated, model.StatusEmpty:
	default:
		WriteValidationError(w, map[string]string{"status": "Unknown translation status"})
		return
	}

	h.store.SetTranslationStatus(page.ID, req.Key, lang, status)

	snap := h.store.Snapshot()
	idx := snap.Presentation.PageIndex(page.ID)
	WriteSuccess(w, snap.Presentation.Pages[idx], nil)
}

// PasteTableRequest is the request body for a tab-separated table import.
type PasteTableRequest struct {
	Text string `json:"text"`
}

// PasteTable replaces all rows of a table page from pasted
// tab-separated text. Column-count mismatches reject the whole paste.
func (h *Handler) PasteTable(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}

	var req PasteTableRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var err error
	switch page.Type {
	case model.PageDataTable:
		err = editor.NewDataTableEditor(h.store, page.ID).Paste(req.Text)
	case model.PageComparisonTable:
		err = editor.NewComparisonTableEditor(h.store, page.ID).Paste(req.Text)
	default:
		WriteBadRequest(w, "Page is not a table page", nil)
		return
	}
	if err != nil {
		WriteValidationError(w, map[string]string{"text": err.Error()})
		return
	}

	snap := h.store.Snapshot()
	idx := snap.Presentation.PageIndex(page.ID)
	WriteSuccess(w, snap.Presentation.Pages[idx], nil)
}

// GetResolvedPage returns a page with every translatable field reduced
// to one language.
func (h *Handler) GetResolvedPage(w http.ResponseWriter, r *http.Request) {
	page, ok := h.requirePage(w, r)
	if !ok {
		return
	}
	lang, ok := h.requestLanguage(w, r)
	if !ok {
		return
	}

	WriteSuccess(w, render.ResolvePage(page, lang), nil)
}

// GetLayout returns the rendered layout tree for a page, served from
// the layout cache. Page, preview-language fallback and cache revision
// all come from one snapshot, so a mutation racing the request can
// never cache a stale render under the new revision's key.
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	id := chi.URLParam(r, "pageID")
	if _, ok := snap.Presentation.PageByID(id); !ok {
		WriteNotFound(w, "Page not found")
		return
	}

	lang := snap.PreviewLanguage
	if q := r.URL.Query().Get("lang"); q != "" {
		lang = model.Language(q)
		if !lang.IsValid() {
			WriteValidationError(w, map[string]string{"lang": "Unsupported language code"})
			return
		}
	}

	layout, err := h.layouts.GetOrRender(r.Context(), h.registry, snap, id, lang)
	if err != nil {
		h.logger.Error("rendering layout", "page", id, "error", err)
		WriteInternalError(w, "Failed to render layout")
		return
	}
	WriteSuccess(w, layout, nil)
}

// requirePage resolves the pageID URL parameter against the current
// snapshot. Writes a 404 and returns false when the page is unknown.
func (h *Handler) requirePage(w http.ResponseWriter, r *http.Request) (model.Page, bool) {
	id := chi.URLParam(r, "pageID")
	snap := h.store.Snapshot()
	page, ok := snap.Presentation.PageByID(id)
	if !ok {
		WriteNotFound(w, "Page not found")
		return model.Page{}, false
	}
	return page, true
}

// requestLanguage reads the lang query parameter, falling back to the
// current preview language when absent.
func (h *Handler) requestLanguage(w http.ResponseWriter, r *http.Request) (model.Language, bool) {
	q := r.URL.Query().Get("lang")
	if q == "" {
		return h.store.Snapshot().PreviewLanguage, true
	}
	lang := model.Language(q)
	if !lang.IsValid() {
		WriteValidationError(w, map[string]string{"lang": "Unsupported language code"})
		return "", false
	}
	return lang, true
}
