// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/opres-go/internal/imagestore"
)

// UploadImageResponse carries the key of a stored image.
type UploadImageResponse struct {
	Key      string `json:"key"`
	MimeType string `json:"mime_type"`
	Size     int    `json:"size"`
}

// UploadImage accepts a multipart upload, validates and normalizes it,
// and stores the blob under a fresh key. A rejected upload changes
// nothing.
func (h *Handler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(imagestore.MaxUploadSize); err != nil {
		WriteBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		WriteBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, imagestore.MaxUploadSize+1))
	if err != nil {
		WriteInternalError(w, "Failed to read upload")
		return
	}

	mimeType, err := imagestore.Validate(data)
	if err != nil {
		WriteValidationError(w, map[string]string{"file": err.Error()})
		return
	}

	normalized, err := imagestore.Normalize(data, mimeType)
	if err != nil {
		h.logger.Error("normalizing upload", "error", err)
		WriteInternalError(w, "Failed to process image")
		return
	}

	key := imagestore.NewKey()
	if err := h.blobs.SaveImage(r.Context(), key, mimeType, normalized); err != nil {
		h.logger.Error("saving image", "key", key, "error", err)
		WriteInternalError(w, "Failed to store image")
		return
	}

	WriteCreated(w, UploadImageResponse{
		Key:      key,
		MimeType: mimeType,
		Size:     len(normalized),
	})
}

// GetImage serves a stored blob with its original content type.
func (h *Handler) GetImage(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	encoded, found, err := h.blobs.LoadImage(r.Context(), key)
	if err != nil {
		h.logger.Error("loading image", "key", key, "error", err)
		WriteInternalError(w, "Failed to load image")
		return
	}
	if !found {
		WriteNotFound(w, "Image not found")
		return
	}

	mimeType, _, err := h.blobs.MimeType(r.Context(), key)
	if err != nil || mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		WriteInternalError(w, "Stored image is corrupt")
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
