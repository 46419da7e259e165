// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imagestore

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
)

// pngBytes encodes a solid-color image of the given size.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0x0f, G: 0x62, B: 0xfe, A: 0xff})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestNewKeyFormat(t *testing.T) {
	k1 := NewKey()
	k2 := NewKey()
	if !strings.HasPrefix(k1, "img-") {
		t.Errorf("key = %q", k1)
	}
	if k1 == k2 {
		t.Error("keys must be unique")
	}
}

func TestValidate(t *testing.T) {
	valid := pngBytes(t, 10, 10)

	mime, err := Validate(valid)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if mime != MimePNG {
		t.Errorf("mime = %q", mime)
	}

	if _, err := Validate(nil); err == nil {
		t.Error("empty upload must be rejected")
	}
	if _, err := Validate([]byte("plain text, not an image")); err == nil {
		t.Error("non-image content must be rejected")
	}
	if _, err := Validate(make([]byte, MaxUploadSize+1)); err == nil {
		t.Error("oversized upload must be rejected")
	}

	// A valid PNG header followed by garbage sniffs as PNG but fails
	// the decode check.
	corrupt := append([]byte{}, valid[:20]...)
	corrupt = append(corrupt, []byte("garbage")...)
	if _, err := Validate(corrupt); err == nil {
		t.Error("undecodable image must be rejected")
	}
}

func TestFileToBase64EnforcesLimit(t *testing.T) {
	got, err := FileToBase64(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("FileToBase64: %v", err)
	}
	if decoded, _ := base64.StdEncoding.DecodeString(got); string(decoded) != "hello" {
		t.Errorf("round trip = %q", decoded)
	}

	big := bytes.NewReader(make([]byte, MaxUploadSize+1))
	if _, err := FileToBase64(big); err == nil {
		t.Error("oversized reader must be rejected")
	}
}

func TestNormalizeKeepsSmallImages(t *testing.T) {
	data := pngBytes(t, 100, 80)

	out, err := Normalize(data, MimePNG)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("in-bounds image must pass through unchanged")
	}
}

func TestNormalizeDownscalesOversized(t *testing.T) {
	data := pngBytes(t, 2400, 1200)

	out, err := Normalize(data, MimePNG)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decoding normalized image: %v", err)
	}
	b := img.Bounds()
	if b.Dx() > maxStoredWidth || b.Dy() > maxStoredHeight {
		t.Errorf("normalized size = %dx%d", b.Dx(), b.Dy())
	}
	// Aspect ratio 2:1 survives the fit.
	if b.Dx() != 2*b.Dy() {
		t.Errorf("aspect ratio lost: %dx%d", b.Dx(), b.Dy())
	}
}

func TestNormalizePassesThroughUndecodableFormats(t *testing.T) {
	data := []byte("pretend-webp-bytes")

	out, err := Normalize(data, MimeWebP)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Error("webp must pass through unchanged")
	}
}
