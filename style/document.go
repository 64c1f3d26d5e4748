/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package style reads, expands and writes style objects: ordered mappings of
// CSS property names to values, as used for inline styles.
package style

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/fs"
)

// ErrInvalidDocument is returned when a style document has an unsupported shape.
var ErrInvalidDocument = errors.New("invalid style document")

// Kind distinguishes the shapes a declaration value can take.
type Kind int

const (
	// Scalar is a single value: "padding": "1px 2px".
	Scalar Kind = iota

	// List is an array of values, one per comma-separated layer.
	List

	// Block is a nested style object, e.g. a pseudo-class or media query.
	Block
)

// Declaration is one property of a style object.
type Declaration struct {
	Property string
	Kind     Kind
	Value    string
	Values   []string
	Block    *Document
}

// Document is an ordered list of declarations.
type Document struct {
	Declarations []Declaration
}

// Len returns the number of top-level declarations.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Declarations)
}

// Get returns the first declaration for property.
func (d *Document) Get(property string) (Declaration, bool) {
	for _, decl := range d.Declarations {
		if decl.Property == property {
			return decl, true
		}
	}
	return Declaration{}, false
}

// set appends decl, or replaces an earlier declaration of the same property
// in place so that later declarations win.
func (d *Document) set(decl Declaration) {
	for i := range d.Declarations {
		if d.Declarations[i].Property == decl.Property {
			d.Declarations[i] = decl
			return
		}
	}
	d.Declarations = append(d.Declarations, decl)
}

// Merge combines documents in order into a new document.
// A property declared in more than one document takes the last value and
// the first position.
func Merge(docs ...*Document) *Document {
	out := &Document{}
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, decl := range doc.Declarations {
			out.set(decl)
		}
	}
	return out
}

// Walk calls fn for every declaration, descending into blocks. path holds
// the enclosing block names, outermost first.
func (d *Document) Walk(fn func(path []string, decl Declaration)) {
	d.walk(nil, fn)
}

func (d *Document) walk(path []string, fn func([]string, Declaration)) {
	if d == nil {
		return
	}
	for _, decl := range d.Declarations {
		if decl.Kind == Block {
			decl.Block.walk(append(path[:len(path):len(path)], decl.Property), fn)
			continue
		}
		fn(path, decl)
	}
}

// ParseFile reads and parses a style document from the filesystem.
func ParseFile(filesystem fs.FileSystem, path string) (*Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse parses a JSON, JSON-with-comments or YAML style document.
// Key order is preserved.
func Parse(data []byte) (*Document, error) {
	data = bytes.TrimPrefix(data, []byte("\xEF\xBB\xBF"))
	if isLikelyJSON(data) {
		return parseJSON(jsonc.ToJSON(data))
	}
	return parseYAML(data)
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '{':
			return true
		default:
			return false
		}
	}
	return false
}

func parseJSON(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if tok != json.Delim('{') {
		return nil, fmt.Errorf("%w: root must be an object", ErrInvalidDocument)
	}
	doc, err := parseJSONObject(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after root object", ErrInvalidDocument)
	}
	return doc, nil
}

// parseJSONObject reads members up to and including the closing brace.
func parseJSONObject(dec *json.Decoder) (*Document, error) {
	doc := &Document{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		key, _ := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}

		decl := Declaration{Property: key}
		switch v := valTok.(type) {
		case json.Delim:
			if v == '{' {
				decl.Kind = Block
				if decl.Block, err = parseJSONObject(dec); err != nil {
					return nil, err
				}
				break
			}
			decl.Kind = List
			if decl.Values, err = parseJSONArray(dec, key); err != nil {
				return nil, err
			}
		default:
			if decl.Value, err = scalar(key, v); err != nil {
				return nil, err
			}
		}
		doc.Declarations = append(doc.Declarations, decl)
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return doc, nil
}

func parseJSONArray(dec *json.Decoder, key string) ([]string, error) {
	values := []string{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
		if _, nested := tok.(json.Delim); nested {
			return nil, fmt.Errorf("%w: %s: list items must be scalars", ErrInvalidDocument, key)
		}
		s, err := scalar(key, tok)
		if err != nil {
			return nil, err
		}
		values = append(values, s)
	}
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return values, nil
}

func scalar(key string, v any) (string, error) {
	s, err := expand.Stringify(v)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidDocument, key, err)
	}
	return s, nil
}

func parseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if root.Kind == 0 {
		return &Document{}, nil
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: YAML root must be a mapping", ErrInvalidDocument)
	}
	return parseYAMLMapping(node)
}

func parseYAMLMapping(node *yaml.Node) (*Document, error) {
	doc := &Document{}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, resolveAlias(node.Content[i+1])

		decl := Declaration{Property: key}
		switch val.Kind {
		case yaml.MappingNode:
			block, err := parseYAMLMapping(val)
			if err != nil {
				return nil, err
			}
			decl.Kind, decl.Block = Block, block
		case yaml.SequenceNode:
			decl.Kind = List
			decl.Values = make([]string, 0, len(val.Content))
			for _, item := range val.Content {
				item = resolveAlias(item)
				if item.Kind != yaml.ScalarNode || item.Tag == "!!null" {
					return nil, fmt.Errorf("%w: %s: list items must be scalars", ErrInvalidDocument, key)
				}
				decl.Values = append(decl.Values, item.Value)
			}
		case yaml.ScalarNode:
			if val.Tag == "!!null" {
				return nil, fmt.Errorf("%w: %s: null value", ErrInvalidDocument, key)
			}
			decl.Value = val.Value
		default:
			return nil, fmt.Errorf("%w: %s: unsupported value", ErrInvalidDocument, key)
		}
		doc.Declarations = append(doc.Declarations, decl)
	}
	return doc, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}
