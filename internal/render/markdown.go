// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import "regexp"

// Span is a run of text that is either plain or bold.
type Span struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// boldPattern matches one **bold** segment, non-greedy. Double
// asterisks are the only rich-text syntax system-wide: no nesting, no
// other markdown, no escaping of literal **.
var boldPattern = regexp.MustCompile(`\*\*.*?\*\*`)

// ParseBold splits text into alternating plain and bold spans, the
// same way a capture-group split would: plain segments between matches
// are kept even when empty, including a trailing empty segment after a
// final bold run.
func ParseBold(text string) []Span {
	matches := boldPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Span{{Text: text}}
	}

	spans := make([]Span, 0, len(matches)*2+1)
	pos := 0
	for _, m := range matches {
		spans = append(spans, Span{Text: text[pos:m[0]]})
		spans = append(spans, Span{Text: text[m[0]+2 : m[1]-2], Bold: true})
		pos = m[1]
	}
	spans = append(spans, Span{Text: text[pos:]})
	return spans
}
