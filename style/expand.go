/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style

import (
	"fmt"
	"slices"

	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/internal/logger"
)

// Options configures document expansion.
type Options struct {
	// Properties limits expansion to these shorthands (camelCase).
	// Empty means every supported shorthand.
	Properties []string

	// DropUnknown removes declarations that are not expanded.
	// By default they are passed through.
	DropUnknown bool

	// Kebab writes property names in kebab-case instead of camelCase.
	Kebab bool
}

func (o Options) expands(property string) bool {
	if !expand.IsShorthand(property) {
		return false
	}
	return len(o.Properties) == 0 || slices.Contains(o.Properties, property)
}

func (o Options) name(property string) string {
	if o.Kebab {
		return cssname.ToKebab(property)
	}
	return property
}

// Expand replaces every shorthand declaration in doc with its longhands.
// Property names may be camelCase or kebab-case. When a longhand is set more
// than once, the later declaration wins and keeps the earlier position.
// Nested blocks are expanded recursively; doc is not modified.
func Expand(doc *Document, opts Options) (*Document, error) {
	out := &Document{}
	for _, decl := range doc.Declarations {
		property := cssname.ToCamel(decl.Property)

		switch {
		case decl.Kind == Block:
			block, err := Expand(decl.Block, opts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", decl.Property, err)
			}
			out.set(Declaration{Property: decl.Property, Kind: Block, Block: block})

		case opts.expands(property):
			if err := expandDeclaration(out, property, decl, opts); err != nil {
				return nil, err
			}

		case opts.DropUnknown:
			logger.Debug("dropping %s: not an expandable shorthand", decl.Property)

		default:
			decl.Property = opts.name(property)
			out.set(decl)
		}
	}
	return out, nil
}

func expandDeclaration(out *Document, property string, decl Declaration, opts Options) error {
	if decl.Kind == List {
		items := make([]any, len(decl.Values))
		for i, v := range decl.Values {
			items[i] = v
		}
		lists, ok, err := expand.ExpandList(property, items)
		if err != nil {
			return fmt.Errorf("%s: %w", decl.Property, err)
		}
		if !ok {
			logger.Debug("%s: empty list, nothing to expand", decl.Property)
			return nil
		}
		lists.Each(func(name string, values []string) {
			out.set(Declaration{Property: opts.name(name), Kind: List, Values: values})
		})
		return nil
	}

	longhands, _ := expand.Expand(property, decl.Value)
	logger.Debug("expanded %s: %q into %d longhands", decl.Property, decl.Value, longhands.Len())
	longhands.Each(func(name, value string) {
		out.set(Declaration{Property: opts.name(name), Kind: Scalar, Value: value})
	})
	return nil
}
