/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Map is an insertion-ordered mapping from longhand property name to V.
// The zero value is ready to use.
type Map[V any] struct {
	names  []string
	values map[string]V
}

// Longhands maps longhand property names to their expanded values.
type Longhands = Map[string]

// LonghandLists maps longhand property names to one value per expanded list item.
type LonghandLists = Map[[]string]

// NewLonghands returns an empty Longhands map.
func NewLonghands() *Longhands {
	return &Longhands{}
}

// Set assigns value to name. A name keeps the position of its first insertion.
func (m *Map[V]) Set(name string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[name]; !exists {
		m.names = append(m.names, name)
	}
	m.values[name] = value
}

// Get returns the value for name.
func (m *Map[V]) Get(name string) (V, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name has been assigned.
func (m *Map[V]) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.names)
}

// Names returns the longhand names in insertion order.
func (m *Map[V]) Names() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.names...)
}

// Each calls fn for every entry in insertion order.
func (m *Map[V]) Each(fn func(name string, value V)) {
	if m == nil {
		return
	}
	for _, name := range m.names {
		fn(name, m.values[name])
	}
}

// Merge copies every entry of other into m.
func (m *Map[V]) Merge(other *Map[V]) {
	other.Each(m.Set)
}

// ToMap returns a plain map copy, losing order.
func (m *Map[V]) ToMap() map[string]V {
	out := make(map[string]V, m.Len())
	m.Each(func(name string, value V) {
		out[name] = value
	})
	return out
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[name])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the map as a YAML mapping in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range m.names {
		var val yaml.Node
		if err := val.Encode(m.values[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name},
			&val,
		)
	}
	return node, nil
}
