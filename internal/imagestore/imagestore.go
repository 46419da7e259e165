// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package imagestore is the content-addressed blob cache behind image
// fields. Content is keyed by opaque "img-" keys; the core never
// inspects blobs beyond the MIME and size validation performed before
// a save is accepted.
package imagestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Upload limits.
const (
	MaxUploadSize = 5 * 1024 * 1024 // 5MB

	// Downscale bounds: stored images never exceed 2x the canvas.
	maxStoredWidth  = 1920
	maxStoredHeight = 1080
)

// Allowed image MIME types.
const (
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
	MimeGIF  = "image/gif"
	MimeWebP = "image/webp"
)

// AllowedMimeTypes defines the MIME types that can be uploaded.
var AllowedMimeTypes = map[string]bool{
	MimeJPEG: true,
	MimePNG:  true,
	MimeGIF:  true,
	MimeWebP: true,
}

// Blobs is the storage interface consumed by editors and exporters.
type Blobs interface {
	// LoadImage returns the base64-encoded blob for a key. Missing
	// keys report found=false, not an error.
	LoadImage(ctx context.Context, key string) (data string, found bool, err error)

	// SaveImage stores a validated blob under a key.
	SaveImage(ctx context.Context, key, mimeType string, data []byte) error

	// DeleteImage removes a blob. Missing keys are a no-op.
	DeleteImage(ctx context.Context, key string) error
}

// NewKey returns a fresh opaque image key.
func NewKey() string {
	return "img-" + uuid.New().String()
}

// FileToBase64 reads an uploaded file into its base64 form, enforcing
// the size limit while reading.
func FileToBase64(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return "", fmt.Errorf("reading upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Validate checks an upload before it may be saved: size limit, MIME
// whitelist against the sniffed content type, and a decode check for
// the formats the image library understands. A rejected upload leaves
// the target field untouched.
func Validate(data []byte) (mimeType string, err error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty upload")
	}
	if len(data) > MaxUploadSize {
		return "", fmt.Errorf("file size exceeds maximum allowed (%d bytes)", MaxUploadSize)
	}

	mimeType = http.DetectContentType(data)
	if !AllowedMimeTypes[mimeType] {
		return "", fmt.Errorf("file type %s is not allowed", mimeType)
	}

	// WebP is accepted on the sniffed header alone; the decoder only
	// handles the remaining formats.
	if mimeType != MimeWebP {
		if _, err := imaging.Decode(bytes.NewReader(data)); err != nil {
			return "", fmt.Errorf("decoding image: %w", err)
		}
	}
	return mimeType, nil
}

// Normalize downscales oversized images to the stored bounds, keeping
// aspect ratio. Formats the encoder cannot write pass through
// unchanged.
func Normalize(data []byte, mimeType string) ([]byte, error) {
	if mimeType == MimeWebP || mimeType == MimeGIF {
		return data, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxStoredWidth && bounds.Dy() <= maxStoredHeight {
		return data, nil
	}

	resized := imaging.Fit(img, maxStoredWidth, maxStoredHeight, imaging.Lanczos)
	return encodeImage(resized, mimeType)
}

func encodeImage(img image.Image, mimeType string) ([]byte, error) {
	format := imaging.JPEG
	if mimeType == MimePNG {
		format = imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return nil, fmt.Errorf("encoding image: %w", err)
	}
	return buf.Bytes(), nil
}
