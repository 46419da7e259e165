// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// TranslationStatus tracks how a translated value relates to its
// English source.
type TranslationStatus string

// Translation statuses. A non-English value starts as empty, becomes
// auto-translated or reviewed once populated, and falls back to
// outdated when the English source changes underneath it.
const (
	StatusAutoTranslated TranslationStatus = "auto-translated"
	StatusReviewed       TranslationStatus = "reviewed"
	StatusOutdated       TranslationStatus = "outdated"
	StatusEmpty          TranslationStatus = "empty"
)

// TriText is a plain trilingual value without status tracking, used by
// sub-document records (rows, cards, nodes) where per-value status
// bookkeeping is not carried.
type TriText struct {
	En   string `json:"en"`
	ZhTW string `json:"zh-tw"`
	ZhCN string `json:"zh-cn"`
}

// Get returns the text for the given language.
func (t TriText) Get(lang Language) string {
	switch lang {
	case LangZhTW:
		return t.ZhTW
	case LangZhCN:
		return t.ZhCN
	default:
		return t.En
	}
}

// With returns a copy of the value with the given language replaced.
func (t TriText) With(lang Language, value string) TriText {
	switch lang {
	case LangZhTW:
		t.ZhTW = value
	case LangZhCN:
		t.ZhCN = value
	default:
		t.En = value
	}
	return t
}

// TranslatableField is a trilingual content value with per-language
// translation status. The English value is authoritative.
type TranslatableField struct {
	En     string                         `json:"en"`
	ZhTW   string                         `json:"zh-tw"`
	ZhCN   string                         `json:"zh-cn"`
	Status map[Language]TranslationStatus `json:"translationStatus"`
}

// NewTranslatableField creates a field with the given English source
// text and empty status for every non-English language.
func NewTranslatableField(en string) TranslatableField {
	return TranslatableField{
		En: en,
		Status: map[Language]TranslationStatus{
			LangZhTW: StatusEmpty,
			LangZhCN: StatusEmpty,
		},
	}
}

// Get returns the text for the given language.
func (f TranslatableField) Get(lang Language) string {
	switch lang {
	case LangZhTW:
		return f.ZhTW
	case LangZhCN:
		return f.ZhCN
	default:
		return f.En
	}
}

// StatusOf returns the translation status for a non-English language.
// Unknown languages report empty.
func (f TranslatableField) StatusOf(lang Language) TranslationStatus {
	if s, ok := f.Status[lang]; ok {
		return s
	}
	return StatusEmpty
}

// Clone returns a deep copy of the field.
func (f TranslatableField) Clone() TranslatableField {
	out := f
	out.Status = make(map[Language]TranslationStatus, len(f.Status))
	for k, v := range f.Status {
		out.Status[k] = v
	}
	return out
}

// UpdateField returns a copy of the field with the given language set
// to value. Editing the English source marks every reviewed translation
// as outdated; editing a translation never changes any status.
func UpdateField(f TranslatableField, lang Language, value string) TranslatableField {
	out := f.Clone()
	switch lang {
	case LangEN:
		out.En = value
		for l, s := range out.Status {
			if s == StatusReviewed {
				out.Status[l] = StatusOutdated
			}
		}
	case LangZhTW:
		out.ZhTW = value
	case LangZhCN:
		out.ZhCN = value
	}
	return out
}

// WrapAsTranslatable adapts a plain trilingual record to a full field
// for editor components. The synthesized status is always empty for
// non-English languages; it is display-time only and never written
// back into the owning sub-document.
func WrapAsTranslatable(t TriText) TranslatableField {
	return TranslatableField{
		En:   t.En,
		ZhTW: t.ZhTW,
		ZhCN: t.ZhCN,
		Status: map[Language]TranslationStatus{
			LangZhTW: StatusEmpty,
			LangZhCN: StatusEmpty,
		},
	}
}
