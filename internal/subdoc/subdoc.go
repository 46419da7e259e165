// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package subdoc implements the shared handling for JSON-encoded
// sub-document arrays stored inside page content: permissive decoding,
// whole-array re-encoding, and bounded copy-on-write list operations.
//
// Every editor works through this package instead of reimplementing
// the parse-or-default pattern per page type. Operations that would
// violate a list's cardinality bounds or move past a boundary return
// the input list unchanged together with ok=false; they are
// rejections, not errors.
package subdoc

import "encoding/json"

// Record is any sub-document record addressable by its opaque ID.
type Record interface {
	RecordID() string
}

// Bounds holds the cardinality limits of one sub-document list.
type Bounds struct {
	Min int
	Max int
}

// Per-family cardinality bounds.
var (
	TableColumnBounds   = Bounds{Min: 1, Max: 8}
	TableRowBounds      = Bounds{Min: 1, Max: 20}
	FootnoteBounds      = Bounds{Min: 0, Max: 6}
	BulletBounds        = Bounds{Min: 1, Max: 12}
	CardBounds          = Bounds{Min: 1, Max: 8}
	TimelineBounds      = Bounds{Min: 1, Max: 10}
	FlowNodeBounds      = Bounds{Min: 1, Max: 12}
	FlowArrowBounds     = Bounds{Min: 0, Max: 24}
	LegendBounds        = Bounds{Min: 0, Max: 6}
	PhotoPairBounds     = Bounds{Min: 1, Max: 8}
	GalleryPhotoBounds  = Bounds{Min: 1, Max: 16}
	BarBounds           = Bounds{Min: 1, Max: 12}
	GlossaryEntryBounds = Bounds{Min: 0, Max: 64}
)

// Direction is a one-step move direction within a list.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Decode parses a JSON-encoded sub-document array. Malformed input of
// any kind degrades to the empty list; persisted corruption must never
// block a consumer.
func Decode[T any](raw string) []T {
	if raw == "" {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return []T{}
	}
	if out == nil {
		return []T{}
	}
	return out
}

// Encode serializes a sub-document array back to its JSON form.
func Encode[T any](list []T) string {
	data, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Append returns a new list with rec appended, or the input list
// unchanged when it is already at its maximum.
func Append[T any](list []T, rec T, b Bounds) ([]T, bool) {
	if len(list) >= b.Max {
		return list, false
	}
	out := make([]T, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, rec)
	return out, true
}

// Remove returns a new list without the record whose ID matches, or
// the input unchanged when the ID is unknown or the list is already at
// its minimum.
func Remove[T Record](list []T, id string, b Bounds) ([]T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	return RemoveAt(list, idx, b)
}

// RemoveAt removes the record at idx under the same rules as Remove.
func RemoveAt[T any](list []T, idx int, b Bounds) ([]T, bool) {
	if idx < 0 || idx >= len(list) || len(list) <= b.Min {
		return list, false
	}
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:idx]...)
	out = append(out, list[idx+1:]...)
	return out, true
}

// Move swaps the record with the given ID one step up or down. Moves
// past either boundary leave the list unchanged.
func Move[T Record](list []T, id string, dir Direction) ([]T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	return MoveAt(list, idx, dir)
}

// MoveAt swaps the record at idx one step in the given direction.
func MoveAt[T any](list []T, idx int, dir Direction) ([]T, bool) {
	other := idx - 1
	if dir == MoveDown {
		other = idx + 1
	}
	if idx < 0 || idx >= len(list) || other < 0 || other >= len(list) {
		return list, false
	}
	out := make([]T, len(list))
	copy(out, list)
	out[idx], out[other] = out[other], out[idx]
	return out, true
}

// Update applies fn to the record with the given ID, returning a new
// list. Unknown IDs leave the list unchanged.
func Update[T Record](list []T, id string, fn func(T) T) ([]T, bool) {
	idx := indexOf(list, id)
	if idx < 0 {
		return list, false
	}
	out := make([]T, len(list))
	copy(out, list)
	out[idx] = fn(out[idx])
	return out, true
}

// UpdateAt applies fn to the record at idx.
func UpdateAt[T any](list []T, idx int, fn func(T) T) ([]T, bool) {
	if idx < 0 || idx >= len(list) {
		return list, false
	}
	out := make([]T, len(list))
	copy(out, list)
	out[idx] = fn(out[idx])
	return out, true
}

func indexOf[T Record](list []T, id string) int {
	for i := range list {
		if list[i].RecordID() == id {
			return i
		}
	}
	return -1
}
