/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

// distribute applies the CSS 1-to-4 value rule.
// Right falls back to Top, Bottom to Top, and Left to Right. A value counts
// as given when its position exists, even if the token is empty. Tokens past
// the fourth are ignored.
func distribute(tokens []string) [4]string {
	var out [4]string
	if len(tokens) == 0 {
		return out
	}
	out[0] = tokens[0]
	out[1] = at(tokens, 1, out[0])
	out[2] = at(tokens, 2, out[0])
	out[3] = at(tokens, 3, out[1])
	return out
}

// at returns tokens[i], or fallback when i is out of range.
func at(tokens []string, i int, fallback string) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return fallback
}

// Directional expands a box-model value into its four sides.
func Directional(value string, naming Naming) *Longhands {
	values := distribute(Tokenize(value))

	out := NewLonghands()
	for i, side := range sides {
		out.Set(naming.Name(side), values[i])
	}
	return out
}
