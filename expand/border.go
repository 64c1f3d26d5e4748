/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

// Classify returns the border role a token fills: style keywords first,
// then widths, and anything left over is treated as a color.
func Classify(tok string) Role {
	switch {
	case IsBorderStyle(tok):
		return RoleStyle
	case isWidth(tok):
		return RoleWidth
	default:
		return RoleColor
	}
}

// Border expands a border-like value by token category rather than position.
// Arity is not enforced; when two tokens share a category the later wins.
func Border(value string, naming Naming) *Longhands {
	out := NewLonghands()
	for _, tok := range Tokenize(value) {
		out.Set(naming.Name(Classify(tok)), tok)
	}
	return out
}

// expandBorder handles the bare border shorthand, which is two levels deep:
// border → borderStyle/borderWidth/borderColor → per-edge longhands.
func expandBorder(value string) *Longhands {
	out := NewLonghands()
	Border(value, borderNaming).Each(func(name, val string) {
		out.Merge(Directional(val, circularNaming[name]))
	})
	return out
}
