// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the presentation content data model: trilingual
// fields with translation-status tracking, typed pages with content
// dictionaries, and the presentation aggregate.
package model

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported content language code.
type Language string

// Supported content languages. English is the authoritative source
// language; the Chinese variants are derived translations.
const (
	LangEN   Language = "en"
	LangZhTW Language = "zh-tw"
	LangZhCN Language = "zh-cn"
)

// SupportedLanguages lists all content languages in display order.
var SupportedLanguages = []Language{LangEN, LangZhTW, LangZhCN}

// DefaultLanguage is the source language for all content.
const DefaultLanguage = LangEN

// IsValid reports whether l is a supported content language.
func (l Language) IsValid() bool {
	switch l {
	case LangEN, LangZhTW, LangZhCN:
		return true
	}
	return false
}

// languageTags maps supported languages to BCP 47 tags for matching.
var languageTags = []language.Tag{
	language.English,            // en
	language.TraditionalChinese, // zh-tw
	language.SimplifiedChinese,  // zh-cn
}

var languageMatcher = language.NewMatcher(languageTags)

// MatchLanguage finds the best supported language for an arbitrary
// language string (a single code or an Accept-Language header).
// Unparseable input falls back to the default language.
func MatchLanguage(s string) Language {
	if l := Language(strings.ToLower(s)); l.IsValid() {
		return l
	}

	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil || len(tags) == 0 {
		tag, err := language.Parse(s)
		if err != nil {
			return DefaultLanguage
		}
		tags = []language.Tag{tag}
	}

	_, idx, conf := languageMatcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(SupportedLanguages) {
		return DefaultLanguage
	}
	return SupportedLanguages[idx]
}
