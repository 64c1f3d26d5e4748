/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

// Defaults applied by the multi-value text-decoration syntax.
const (
	DefaultTextDecorationStyle = "solid"
	DefaultTextDecorationColor = "currentColor"
)

// TextDecoration expands text-decoration.
//
// A single value is the CSS 1/2 form and only sets the line. With more than
// one value the level 3 form applies positionally: line, style, color. Values
// are not checked, so a repeated line keyword lands in the style slot.
// See https://www.w3.org/TR/css-text-decor-3/#text-decoration-property
func TextDecoration(value string) *Longhands {
	tokens := Tokenize(value)
	out := NewLonghands()

	if len(tokens) == 1 {
		line := tokens[0]
		if line == "initial" {
			line = "none"
		}
		out.Set("textDecorationLine", line)
		return out
	}

	out.Set("textDecorationLine", tokens[0])
	out.Set("textDecorationStyle", orDefault(at(tokens, 1, ""), DefaultTextDecorationStyle))
	out.Set("textDecorationColor", orDefault(at(tokens, 2, ""), DefaultTextDecorationColor))
	return out
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
