/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package lint reports suspicious shorthand values.
//
// Expansion is permissive and never fails. Lint surfaces the cases where that
// permissiveness probably hid a mistake, such as a unitless width landing in
// a color slot. Lint never alters expansion results.
package lint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/shorthand/expand"
)

// Issue describes one finding.
type Issue struct {
	// Property is the shorthand or longhand the issue applies to.
	Property string `json:"property"`

	// Value is the offending value.
	Value string `json:"value"`

	// Message explains the finding.
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %q: %s", i.Property, i.Value, i.Message)
}

// colorKeywords are accepted in color slots without parsing.
var colorKeywords = map[string]bool{
	"currentcolor": true,
	"inherit":      true,
	"initial":      true,
	"unset":        true,
	"revert":       true,
	"revert-layer": true,
}

// Check lints a shorthand declaration. It returns nil for properties that
// are not shorthands.
func Check(property, value string) []Issue {
	longhands, ok := expand.Expand(property, value)
	if !ok {
		return nil
	}

	var issues []Issue
	if !Balanced(value) {
		issues = append(issues, Issue{property, value, "unbalanced parentheses"})
	}
	for _, tok := range expand.Tokenize(value) {
		if tok == "" && strings.TrimSpace(value) != "" {
			issues = append(issues, Issue{property, value, "repeated whitespace produces an empty component"})
			break
		}
	}
	return append(issues, CheckLonghands(longhands)...)
}

// CheckLonghands lints expanded longhands. Color longhands must hold a
// parseable color, a var() reference or a color keyword.
func CheckLonghands(longhands *expand.Longhands) []Issue {
	var issues []Issue
	longhands.Each(func(name, value string) {
		if !strings.HasSuffix(name, "Color") || IsColor(value) {
			return
		}
		msg := "not a recognizable color"
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			msg = "unitless number was classified as a color"
		}
		issues = append(issues, Issue{name, value, msg})
	})
	return issues
}

// IsColor reports whether value is acceptable in a color slot.
func IsColor(value string) bool {
	if expand.IsVar(value) || colorKeywords[strings.ToLower(value)] {
		return true
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// Balanced reports whether every parenthesis in value is closed in order.
func Balanced(value string) bool {
	depth := 0
	for _, c := range value {
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}
