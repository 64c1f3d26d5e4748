/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/shorthand/cssname"
)

// Format represents an output format for expanded style documents.
type Format string

const (
	// FormatJSON outputs an indented JSON object (default).
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML mapping.
	FormatYAML Format = "yaml"

	// FormatCSS outputs a CSS declaration block with kebab-case names.
	FormatCSS Format = "css"

	// FormatMsgpack outputs a MessagePack map.
	FormatMsgpack Format = "msgpack"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatJSON),
		string(FormatYAML),
		string(FormatCSS),
		string(FormatMsgpack),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "css":
		return FormatCSS, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// Extension returns the file extension conventionally used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return ".yaml"
	case FormatCSS:
		return ".css"
	case FormatMsgpack:
		return ".msgpack"
	default:
		return ".json"
	}
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatCSS:
		var sb strings.Builder
		writeCSS(&sb, doc, 0)
		return []byte(sb.String()), nil
	case FormatMsgpack:
		return msgpack.Marshal(doc)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// MarshalJSON encodes the document as an object in declaration order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, decl := range d.Declarations {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(decl.Property)
		if err != nil {
			return nil, err
		}
		var val []byte
		switch decl.Kind {
		case Block:
			val, err = decl.Block.MarshalJSON()
		case List:
			val, err = json.Marshal(decl.Values)
		default:
			val, err = json.Marshal(decl.Value)
		}
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

// MarshalYAML encodes the document as a mapping in declaration order.
func (d *Document) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, decl := range d.Declarations {
		var val yaml.Node
		var err error
		switch decl.Kind {
		case Block:
			var inner any
			if inner, err = decl.Block.MarshalYAML(); err == nil {
				val = *inner.(*yaml.Node)
			}
		case List:
			err = val.Encode(decl.Values)
		default:
			err = val.Encode(decl.Value)
		}
		if err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: decl.Property},
			&val,
		)
	}
	return node, nil
}

// EncodeMsgpack encodes the document as a map in declaration order.
func (d *Document) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(d.Declarations)); err != nil {
		return err
	}
	for _, decl := range d.Declarations {
		if err := enc.EncodeString(decl.Property); err != nil {
			return err
		}
		var err error
		switch decl.Kind {
		case Block:
			err = decl.Block.EncodeMsgpack(enc)
		case List:
			err = enc.Encode(decl.Values)
		default:
			err = enc.EncodeString(decl.Value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeCSS renders declarations one per line. List values are joined with
// commas, and blocks are written as nested rules.
func writeCSS(sb *strings.Builder, doc *Document, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, decl := range doc.Declarations {
		switch decl.Kind {
		case Block:
			fmt.Fprintf(sb, "%s%s {\n", indent, decl.Property)
			writeCSS(sb, decl.Block, depth+1)
			fmt.Fprintf(sb, "%s}\n", indent)
		case List:
			fmt.Fprintf(sb, "%s%s: %s;\n", indent, cssname.ToKebab(decl.Property), strings.Join(decl.Values, ", "))
		default:
			fmt.Fprintf(sb, "%s%s: %s;\n", indent, cssname.ToKebab(decl.Property), decl.Value)
		}
	}
}
