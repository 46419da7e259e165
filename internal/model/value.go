// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"encoding/json"
	"fmt"
)

// ValueKind discriminates the two shapes a content dictionary entry
// can take.
type ValueKind string

const (
	// ValueField is a trilingual field with status tracking.
	ValueField ValueKind = "field"
	// ValueString is a plain string: scalars, mode flags, and
	// JSON-encoded sub-document arrays.
	ValueString ValueKind = "string"
)

// Value is one entry of a page content dictionary: either a
// TranslatableField or a plain string. On the wire a field serializes
// as an object and a string as a bare JSON string, matching the
// persisted content shape.
type Value struct {
	Kind  ValueKind
	Field TranslatableField
	Str   string
}

// FieldValue wraps a translatable field as a content value.
func FieldValue(f TranslatableField) Value {
	return Value{Kind: ValueField, Field: f}
}

// StringValue wraps a plain string as a content value.
func StringValue(s string) Value {
	return Value{Kind: ValueString, Str: s}
}

// Clone returns a deep copy of the value.
func (v Value) Clone() Value {
	if v.Kind == ValueField {
		return Value{Kind: ValueField, Field: v.Field.Clone()}
	}
	return v
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Kind == ValueField {
		return json.Marshal(v.Field)
	}
	return json.Marshal(v.Str)
}

// UnmarshalJSON implements json.Unmarshaler. Objects decode as
// translatable fields, strings as plain strings.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = StringValue(s)
		return nil
	}

	var f TranslatableField
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("decoding content value: %w", err)
	}
	if f.Status == nil {
		f.Status = map[Language]TranslationStatus{
			LangZhTW: StatusEmpty,
			LangZhCN: StatusEmpty,
		}
	}
	*v = FieldValue(f)
	return nil
}
