/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package cssname_test

import (
	"testing"

	"bennypowers.dev/shorthand/cssname"
)

func TestToCamel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"padding", "padding"},
		{"border-top-width", "borderTopWidth"},
		{"border-radius", "borderRadius"},
		{"text-decoration", "textDecoration"},
		{"Border-Left", "borderLeft"},
		{"-webkit-box-flex", "WebkitBoxFlex"},
		{"-ms-flex", "msFlex"},
		{"--brand-color", "--brand-color"},
		{"borderLeft", "borderLeft"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cssname.ToCamel(tt.input); got != tt.expected {
				t.Errorf("ToCamel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestToKebab(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"padding", "padding"},
		{"borderTopWidth", "border-top-width"},
		{"borderTopLeftRadius", "border-top-left-radius"},
		{"WebkitBoxFlex", "-webkit-box-flex"},
		{"msFlex", "-ms-flex"},
		{"--brand-color", "--brand-color"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := cssname.ToKebab(tt.input); got != tt.expected {
				t.Errorf("ToKebab(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"borderBottomColor", "flexBasis", "columnGap", "WebkitBoxFlex", "msFlex"} {
		if got := cssname.ToCamel(cssname.ToKebab(name)); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}
