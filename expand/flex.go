/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import "strings"

// Initial values of the flex longhands.
const (
	DefaultFlexGrow   = "0"
	DefaultFlexShrink = "1"
	DefaultFlexBasis  = "auto"
)

// flexKeywords are the single-keyword forms of flex.
// See https://developer.mozilla.org/en-US/docs/Web/CSS/flex#values
var flexKeywords = map[string]string{
	"initial": "0 1 auto",
	"auto":    "1 1 auto",
	"none":    "0 0 auto",
}

// Flex expands the flex shorthand into flexGrow, flexShrink and flexBasis.
// All three are always set: the shorthand resets any component it omits.
func Flex(value string) *Longhands {
	var tokens []string
	if expanded, ok := flexKeywords[strings.TrimSpace(value)]; ok {
		tokens = Tokenize(expanded)
	} else {
		tokens = Tokenize(value)
	}

	// One-value syntax: a unitless integer is a grow factor, anything else a basis.
	if len(tokens) == 1 {
		if IsPureNumber(tokens[0]) {
			tokens = Tokenize(tokens[0] + " 1 0")
		} else {
			tokens = Tokenize("1 1 " + tokens[0])
		}
	}

	grow, shrink, basis := DefaultFlexGrow, DefaultFlexShrink, DefaultFlexBasis
	switch len(tokens) {
	case 2:
		grow = tokens[0]
		if IsPureNumber(tokens[1]) {
			shrink = tokens[1]
		} else {
			basis = tokens[1]
		}
	default:
		grow = tokens[0]
		shrink = at(tokens, 1, shrink)
		basis = at(tokens, 2, basis)
	}

	out := NewLonghands()
	out.Set("flexGrow", grow)
	out.Set("flexShrink", shrink)
	out.Set("flexBasis", basis)
	return out
}
