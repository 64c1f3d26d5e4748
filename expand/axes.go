/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

// Overflow expands overflow into overflowX and overflowY.
// A missing second value copies the first.
// See https://www.w3.org/TR/css-overflow-3/#overflow-properties
func Overflow(value string) *Longhands {
	tokens := Tokenize(value)

	out := NewLonghands()
	out.Set("overflowX", tokens[0])
	out.Set("overflowY", at(tokens, 1, tokens[0]))
	return out
}

// Gap expands gap into rowGap and columnGap.
// An omitted column gap equals the row gap.
// See https://w3c.github.io/csswg-drafts/css-align/#gap-shorthand
func Gap(value string) *Longhands {
	tokens := Tokenize(value)

	out := NewLonghands()
	out.Set("rowGap", tokens[0])
	out.Set("columnGap", at(tokens, 1, tokens[0]))
	return out
}
