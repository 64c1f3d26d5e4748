/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import "strings"

// Tokenize splits a shorthand value into its space-separated components.
// Spaces nested inside parentheses do not split, so calc(), var() and other
// function calls stay whole. The result always has at least one element;
// an empty value yields a single empty token.
//
// Parentheses are not required to balance. Repeated spaces at the top level
// produce empty tokens.
func Tokenize(value string) []string {
	trimmed := strings.TrimSpace(value)
	tokens := make([]string, 0, strings.Count(trimmed, " ")+1)

	var current strings.Builder
	depth := 0
	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c == ' ' && depth == 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		} else {
			current.WriteByte(c)
		}

		switch c {
		case '(':
			depth++
		case ')':
			depth--
		}
	}

	return append(tokens, current.String())
}

// splitOn partitions tokens into groups separated by divider tokens.
// There is always at least one group, possibly empty.
func splitOn(tokens []string, divider string) [][]string {
	groups := [][]string{{}}
	for _, tok := range tokens {
		if tok == divider {
			groups = append(groups, []string{})
			continue
		}
		last := len(groups) - 1
		groups[last] = append(groups[last], tok)
	}
	return groups
}
