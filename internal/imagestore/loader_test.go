// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package imagestore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/olegiv/opres-go/internal/testutil"
)

// blockingBlobs gates LoadImage on a channel so tests can control when
// in-flight loads complete.
type blockingBlobs struct {
	release chan struct{}
	data    map[string]string
}

func (b *blockingBlobs) LoadImage(_ context.Context, key string) (string, bool, error) {
	<-b.release
	data, ok := b.data[key]
	return data, ok, nil
}

func (b *blockingBlobs) SaveImage(context.Context, string, string, []byte) error { return nil }
func (b *blockingBlobs) DeleteImage(context.Context, string) error               { return nil }

func TestLoaderDeliversResolvedData(t *testing.T) {
	blobs := &blockingBlobs{
		release: make(chan struct{}),
		data:    map[string]string{"img-a": "payload-a"},
	}
	l := NewLoader(blobs, testutil.TestLoggerSilent())

	got := make(chan string, 1)
	l.Load(context.Background(), "slot", "img-a", func(data string) { got <- data })
	close(blobs.release)

	select {
	case data := <-got:
		if data != "payload-a" {
			t.Errorf("delivered %q", data)
		}
	case <-time.After(time.Second):
		t.Fatal("load never delivered")
	}
}

func TestLoaderEmptyKeyClearsImmediately(t *testing.T) {
	blobs := &blockingBlobs{release: make(chan struct{})}
	l := NewLoader(blobs, testutil.TestLoggerSilent())

	var got string
	delivered := false
	l.Load(context.Background(), "slot", "", func(data string) {
		got = data
		delivered = true
	})

	// Empty keys deliver synchronously without touching the store.
	if !delivered || got != "" {
		t.Errorf("delivered=%v data=%q", delivered, got)
	}
}

func TestLoaderDropsStaleGenerations(t *testing.T) {
	blobs := &blockingBlobs{
		release: make(chan struct{}),
		data:    map[string]string{"img-old": "stale", "img-new": "fresh"},
	}
	l := NewLoader(blobs, testutil.TestLoggerSilent())

	var mu sync.Mutex
	var deliveries []string
	record := func(data string) {
		mu.Lock()
		deliveries = append(deliveries, data)
		mu.Unlock()
	}

	// Start the old load, then supersede it before it resolves.
	l.Load(context.Background(), "slot", "img-old", record)
	l.Load(context.Background(), "slot", "img-new", record)
	close(blobs.release)

	deadline := time.After(time.Second)
	for {
		mu.Lock()
		n := len(deliveries)
		mu.Unlock()
		if n >= 1 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("no delivery arrived")
		case <-time.After(5 * time.Millisecond):
		}
	}
	// Give the stale goroutine a moment to (incorrectly) deliver.
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(deliveries) != 1 || deliveries[0] != "fresh" {
		t.Errorf("deliveries = %v, want only the fresh result", deliveries)
	}
}

func TestLoaderInvalidateDropsInFlight(t *testing.T) {
	blobs := &blockingBlobs{
		release: make(chan struct{}),
		data:    map[string]string{"img-a": "payload"},
	}
	l := NewLoader(blobs, testutil.TestLoggerSilent())

	delivered := make(chan string, 1)
	l.Load(context.Background(), "slot", "img-a", func(data string) { delivered <- data })
	l.Invalidate("slot")
	close(blobs.release)

	select {
	case data := <-delivered:
		t.Errorf("invalidated load still delivered %q", data)
	case <-time.After(100 * time.Millisecond):
	}
}
