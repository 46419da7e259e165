// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"reflect"
	"testing"
)

func TestParseBold(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Span
	}{
		{
			name: "plain text",
			in:   "hello world",
			want: []Span{{Text: "hello world"}},
		},
		{
			name: "empty string",
			in:   "",
			want: []Span{{Text: ""}},
		},
		{
			name: "single bold run",
			in:   "a **b** c",
			want: []Span{{Text: "a "}, {Text: "b", Bold: true}, {Text: " c"}},
		},
		{
			name: "leading bold keeps empty plain prefix",
			in:   "**lead** rest",
			want: []Span{{Text: ""}, {Text: "lead", Bold: true}, {Text: " rest"}},
		},
		{
			name: "trailing bold keeps empty plain suffix",
			in:   "rest **tail**",
			want: []Span{{Text: "rest "}, {Text: "tail", Bold: true}, {Text: ""}},
		},
		{
			name: "adjacent bold runs",
			in:   "**a****b**",
			want: []Span{
				{Text: ""}, {Text: "a", Bold: true},
				{Text: ""}, {Text: "b", Bold: true},
				{Text: ""},
			},
		},
		{
			name: "empty bold run",
			in:   "x****y",
			want: []Span{{Text: "x"}, {Text: "", Bold: true}, {Text: "y"}},
		},
		{
			name: "unterminated markers stay literal",
			in:   "half **open",
			want: []Span{{Text: "half **open"}},
		},
		{
			name: "non greedy matching",
			in:   "**a** mid **b**",
			want: []Span{
				{Text: ""}, {Text: "a", Bold: true},
				{Text: " mid "}, {Text: "b", Bold: true},
				{Text: ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseBold(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseBold(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}
