// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imagestore

import (
	"context"
	"log/slog"
	"sync"
)

// Loader resolves image keys for display slots asynchronously. Each
// slot carries a generation counter: starting a load bumps the
// generation, and a finished load delivers only while its generation is
// still current. A slot whose key changed mid-flight silently drops the
// stale result instead of flashing the old image.
type Loader struct {
	blobs  Blobs
	logger *slog.Logger

	mu   sync.Mutex
	gens map[string]uint64
}

// NewLoader creates a loader over a blob store.
func NewLoader(blobs Blobs, logger *slog.Logger) *Loader {
	return &Loader{
		blobs:  blobs,
		logger: logger,
		gens:   make(map[string]uint64),
	}
}

// Load fetches the blob for key and calls deliver with its base64 data
// once resolved. An empty or missing key delivers "" immediately so the
// slot clears. Results that lose the generation race are dropped.
func (l *Loader) Load(ctx context.Context, slot, key string, deliver func(data string)) {
	l.mu.Lock()
	l.gens[slot]++
	gen := l.gens[slot]
	l.mu.Unlock()

	if key == "" {
		deliver("")
		return
	}

	go func() {
		data, found, err := l.blobs.LoadImage(ctx, key)
		if err != nil {
			l.logger.Error("loading image", "slot", slot, "key", key, "error", err)
			return
		}
		if !found {
			data = ""
		}
		if !l.current(slot, gen) {
			return
		}
		deliver(data)
	}()
}

// Invalidate bumps a slot's generation so any in-flight load for it is
// discarded on arrival.
func (l *Loader) Invalidate(slot string) {
	l.mu.Lock()
	l.gens[slot]++
	l.mu.Unlock()
}

func (l *Loader) current(slot string, gen uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gens[slot] == gen
}
