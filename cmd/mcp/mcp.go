/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mcp provides the mcp command, which serves shorthand expansion to
// Model Context Protocol clients over stdio.
package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"bennypowers.dev/shorthand/cssname"
	"bennypowers.dev/shorthand/expand"
	"bennypowers.dev/shorthand/internal/logger"
	"bennypowers.dev/shorthand/internal/version"
	"bennypowers.dev/shorthand/lint"
)

// Cmd is the mcp cobra command.
var Cmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run a Model Context Protocol server on stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout exposing the
expand_shorthand, lint_shorthand and list_shorthands tools.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	// stdout carries the protocol; logs would corrupt it.
	logger.SetOutput(io.Discard)
	return NewServer().Run(cmd.Context(), &mcp.StdioTransport{})
}

// NewServer returns an MCP server with the shorthand tools registered.
func NewServer() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "shorthand",
		Version: version.Get(),
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "expand_shorthand",
		Description: "Expand a CSS shorthand declaration into its longhand properties. Pass several values to expand a comma-separated list.",
	}, expandTool)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint_shorthand",
		Description: "Report suspicious values in a CSS shorthand declaration, such as unparseable colors.",
	}, lintTool)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_shorthands",
		Description: "List the CSS shorthand properties that can be expanded and their longhands.",
	}, listTool)

	return server
}

// ExpandInput is the input of the expand_shorthand tool.
type ExpandInput struct {
	Property string   `json:"property" jsonschema:"shorthand property name in camelCase or kebab-case, e.g. borderTop"`
	Values   []string `json:"values" jsonschema:"one value, or one value per layer of a comma-separated list"`
	Kebab    bool     `json:"kebab,omitempty" jsonschema:"return longhand names in kebab-case"`
}

// Longhand is one expanded property. Values holds one entry per input value.
type Longhand struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ExpandOutput is the result of the expand_shorthand tool, in longhand order.
type ExpandOutput struct {
	Longhands []Longhand `json:"longhands"`
}

func expandTool(ctx context.Context, req *mcp.CallToolRequest, in ExpandInput) (*mcp.CallToolResult, ExpandOutput, error) {
	property := cssname.ToCamel(in.Property)
	if !expand.IsShorthand(property) {
		return nil, ExpandOutput{}, fmt.Errorf("%s: not an expandable shorthand", in.Property)
	}
	if len(in.Values) == 0 {
		return nil, ExpandOutput{}, fmt.Errorf("at least one value is required")
	}

	items := make([]any, len(in.Values))
	for i, v := range in.Values {
		items[i] = v
	}
	lists, _, err := expand.ExpandList(property, items)
	if err != nil {
		return nil, ExpandOutput{}, err
	}

	out := ExpandOutput{Longhands: []Longhand{}}
	lists.Each(func(name string, values []string) {
		if in.Kebab {
			name = cssname.ToKebab(name)
		}
		out.Longhands = append(out.Longhands, Longhand{Name: name, Values: values})
	})
	return nil, out, nil
}

// LintInput is the input of the lint_shorthand tool.
type LintInput struct {
	Property string `json:"property" jsonschema:"shorthand property name in camelCase or kebab-case"`
	Value    string `json:"value" jsonschema:"the shorthand value to check"`
}

// LintOutput is the result of the lint_shorthand tool.
type LintOutput struct {
	Issues []lint.Issue `json:"issues"`
}

func lintTool(ctx context.Context, req *mcp.CallToolRequest, in LintInput) (*mcp.CallToolResult, LintOutput, error) {
	property := cssname.ToCamel(in.Property)
	if !expand.IsShorthand(property) {
		return nil, LintOutput{}, fmt.Errorf("%s: not an expandable shorthand", in.Property)
	}
	issues := lint.Check(property, in.Value)
	if issues == nil {
		issues = []lint.Issue{}
	}
	return nil, LintOutput{Issues: issues}, nil
}

// ListInput is the input of the list_shorthands tool.
type ListInput struct {
	Kebab bool `json:"kebab,omitempty" jsonschema:"return property names in kebab-case"`
}

// Shorthand describes one supported shorthand.
type Shorthand struct {
	Property  string   `json:"property"`
	Longhands []string `json:"longhands"`
}

// ListOutput is the result of the list_shorthands tool.
type ListOutput struct {
	Shorthands []Shorthand `json:"shorthands"`
}

func listTool(ctx context.Context, req *mcp.CallToolRequest, in ListInput) (*mcp.CallToolResult, ListOutput, error) {
	name := func(s string) string { return s }
	if in.Kebab {
		name = cssname.ToKebab
	}

	var out ListOutput
	for _, property := range expand.Properties() {
		longhands := expand.LonghandsOf(property)
		for i, l := range longhands {
			longhands[i] = name(l)
		}
		out.Shorthands = append(out.Shorthands, Shorthand{Property: name(property), Longhands: longhands})
	}
	return nil, out, nil
}
