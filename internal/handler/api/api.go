// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package api provides REST API handlers for the presentation editor.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/opres-go/internal/cache"
	"github.com/olegiv/opres-go/internal/imagestore"
	"github.com/olegiv/opres-go/internal/render"
	"github.com/olegiv/opres-go/internal/store"
)

// Handler holds shared dependencies for all API handlers.
type Handler struct {
	store    *store.Store
	blobs    *imagestore.SQLiteStore
	layouts  *cache.LayoutCache
	registry *render.Registry
	logger   *slog.Logger
}

// NewHandler creates a new API handler.
func NewHandler(s *store.Store, blobs *imagestore.SQLiteStore, layouts *cache.LayoutCache, logger *slog.Logger) *Handler {
	return &Handler{
		store:    s,
		blobs:    blobs,
		layouts:  layouts,
		registry: render.NewRegistry(),
		logger:   logger,
	}
}

// Routes mounts all editor API routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/status", h.Status)

	r.Get("/presentation", h.GetPresentation)
	r.Get("/presentation/export", h.Export)
	r.Put("/presentation/name", h.SetName)
	r.Put("/presentation/preview-language", h.SetPreviewLanguage)

	r.Post("/pages", h.AddPage)
	r.Delete("/pages/{pageID}", h.DeletePage)
	r.Post("/pages/{pageID}/select", h.SelectPage)
	r.Post("/pages/{pageID}/reorder", h.ReorderPage)
	r.Post("/pages/{pageID}/move", h.MovePage)
	r.Put("/pages/{pageID}/fields", h.UpdateField)
	r.Put("/pages/{pageID}/fields/status", h.SetTranslationStatus)
	r.Post("/pages/{pageID}/items", h.AddItem)
	r.Delete("/pages/{pageID}/items/{itemID}", h.RemoveItem)
	r.Post("/pages/{pageID}/items/{itemID}/move", h.MoveItem)
	r.Put("/pages/{pageID}/items/{itemID}", h.UpdateItem)
	r.Post("/pages/{pageID}/table/paste", h.PasteTable)
	r.Get("/pages/{pageID}/resolved", h.GetResolvedPage)
	r.Get("/pages/{pageID}/layout", h.GetLayout)

	r.Post("/images", h.UploadImage)
	r.Get("/images/{key}", h.GetImage)
}

// Response is the standard API response wrapper.
type Response struct {
	Data any   `json:"data,omitempty"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta contains pagination and other metadata.
type Meta struct {
	Total   int64 `json:"total,omitempty"`
	Page    int   `json:"page,omitempty"`
	PerPage int   `json:"per_page,omitempty"`
	Pages   int   `json:"pages,omitempty"`
}

// ErrorResponse is the standard API error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteSuccess writes a successful JSON response.
func WriteSuccess(w http.ResponseWriter, data any, meta *Meta) {
	WriteJSON(w, http.StatusOK, Response{
		Data: data,
		Meta: meta,
	})
}

// WriteCreated writes a 201 Created JSON response.
func WriteCreated(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Response{
		Data: data,
	})
}

// WriteError writes an error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, code, message string, details map[string]string) {
	WriteJSON(w, statusCode, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// WriteBadRequest writes a 400 Bad Request response.
func WriteBadRequest(w http.ResponseWriter, message string, details map[string]string) {
	WriteError(w, http.StatusBadRequest, "bad_request", message, details)
}

// WriteNotFound writes a 404 Not Found response.
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, "not_found", message, nil)
}

// WriteInternalError writes a 500 Internal Server Error response.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, "internal_error", message, nil)
}

// WriteValidationError writes a 422 Unprocessable Entity response with field errors.
func WriteValidationError(w http.ResponseWriter, fieldErrors map[string]string) {
	WriteError(w, http.StatusUnprocessableEntity, "validation_error", "Validation failed", fieldErrors)
}

// StatusResponse contains API status information.
type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Status returns the API status.
func (h *Handler) Status(w http.ResponseWriter, _ *http.Request) {
	WriteSuccess(w, StatusResponse{
		Status:  "ok",
		Version: "v1",
	}, nil)
}

// decodeBody decodes a JSON request body, writing a 400 on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}
