/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expand turns CSS shorthand declarations into their longhands.
//
// Property names are camelCase, as in inline style objects: "padding",
// "borderLeft", "borderRadius". Every function in this package is pure and
// safe for concurrent use.
package expand

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// ErrUnsupportedValue is returned when a value cannot be turned into a string.
var ErrUnsupportedValue = errors.New("unsupported shorthand value")

// shorthand pairs an expander with the longhands it can produce.
type shorthand struct {
	expand    func(value string) *Longhands
	longhands []string
}

var shorthands = buildShorthands()

func buildShorthands() map[string]shorthand {
	m := map[string]shorthand{
		"border": {
			expand:    expandBorder,
			longhands: borderLonghands(),
		},
		"flex": {
			expand:    Flex,
			longhands: []string{"flexGrow", "flexShrink", "flexBasis"},
		},
		"borderRadius": {
			expand:    BorderRadius,
			longhands: namesOf(radiusNaming),
		},
		"textDecoration": {
			expand:    TextDecoration,
			longhands: []string{"textDecorationLine", "textDecorationStyle", "textDecorationColor"},
		},
		"overflow": {
			expand:    Overflow,
			longhands: []string{"overflowX", "overflowY"},
		},
		"gap": {
			expand:    Gap,
			longhands: []string{"rowGap", "columnGap"},
		},
	}

	for name, naming := range circularNaming {
		m[name] = shorthand{
			expand:    func(value string) *Longhands { return Directional(value, naming) },
			longhands: namesOf(naming),
		}
	}
	for name, naming := range edgeNaming {
		m[name] = shorthand{
			expand:    func(value string) *Longhands { return Border(value, naming) },
			longhands: namesOf(naming),
		}
	}

	return m
}

func namesOf(n Naming) []string {
	roles := n.Roles()
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = n.Name(r)
	}
	return names
}

func borderLonghands() []string {
	var names []string
	for _, role := range borderNaming.Roles() {
		names = append(names, namesOf(circularNaming[borderNaming.Name(role)])...)
	}
	return names
}

// Expand expands value as the shorthand property.
// It returns false when property is not a recognized shorthand; that is an
// absence of expansion, not a failure.
func Expand(property, value string) (*Longhands, bool) {
	sh, ok := shorthands[property]
	if !ok {
		return nil, false
	}
	return sh.expand(value), true
}

// ExpandValue is like Expand but accepts any scalar value, so the numbers
// 0 and "0" expand identically.
func ExpandValue(property string, value any) (*Longhands, bool, error) {
	if !IsShorthand(property) {
		return nil, false, nil
	}
	s, err := Stringify(value)
	if err != nil {
		return nil, false, err
	}
	out, ok := Expand(property, s)
	return out, ok, nil
}

// Stringify converts a scalar style value to its string form.
func Stringify(value any) (string, error) {
	switch value.(type) {
	case nil, []any, map[string]any:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, value)
	}
	s, err := cast.ToStringE(value)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return s, nil
}

// IsShorthand reports whether property can be expanded.
func IsShorthand(property string) bool {
	_, ok := shorthands[property]
	return ok
}

// LonghandsOf returns the longhand names property can expand to, or nil.
func LonghandsOf(property string) []string {
	sh, ok := shorthands[property]
	if !ok {
		return nil
	}
	return append([]string(nil), sh.longhands...)
}

// Properties returns every supported shorthand name, sorted.
func Properties() []string {
	names := make([]string, 0, len(shorthands))
	for name := range shorthands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
