// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"net/http"

	"github.com/olegiv/opres-go/internal/model"
)

// GetPresentation returns the full current snapshot: presentation
// content plus selection and preview-language state.
func (h *Handler) GetPresentation(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, h.store.Snapshot(), nil)
}

// SetNameRequest is the request body for renaming the presentation.
type SetNameRequest struct {
	Name string `json:"name"`
}

// SetName renames the presentation.
func (h *Handler) SetName(w http.ResponseWriter, r *http.Request) {
	var req SetNameRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" {
		WriteValidationError(w, map[string]string{"name": "Name is required"})
		return
	}

	h.store.SetName(req.Name)
	WriteSuccess(w, h.store.Snapshot().Presentation, nil)
}

// SetPreviewLanguageRequest is the request body for switching the
// preview language.
type SetPreviewLanguageRequest struct {
	Language string `json:"language"`
}

// SetPreviewLanguage switches the language used by preview rendering.
func (h *Handler) SetPreviewLanguage(w http.ResponseWriter, r *http.Request) {
	var req SetPreviewLanguageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lang := model.Language(req.Language)
	if !lang.IsValid() {
		WriteValidationError(w, map[string]string{"language": "Unsupported language code"})
		return
	}

	h.store.SetPreviewLanguage(lang)
	WriteSuccess(w, h.store.Snapshot(), nil)
}
