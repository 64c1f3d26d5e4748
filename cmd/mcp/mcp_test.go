/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mcp

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTool(t *testing.T) {
	_, out, err := expandTool(context.Background(), nil, ExpandInput{
		Property: "border-radius",
		Values:   []string{"1px 2px"},
		Kebab:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, []Longhand{
		{Name: "border-top-left-radius", Values: []string{"1px"}},
		{Name: "border-top-right-radius", Values: []string{"2px"}},
		{Name: "border-bottom-right-radius", Values: []string{"1px"}},
		{Name: "border-bottom-left-radius", Values: []string{"2px"}},
	}, out.Longhands)
}

func TestExpandTool_List(t *testing.T) {
	_, out, err := expandTool(context.Background(), nil, ExpandInput{
		Property: "overflow",
		Values:   []string{"hidden", "scroll auto"},
	})
	require.NoError(t, err)
	assert.Equal(t, []Longhand{
		{Name: "overflowX", Values: []string{"hidden", "scroll"}},
		{Name: "overflowY", Values: []string{"hidden", "auto"}},
	}, out.Longhands)
}

func TestExpandTool_Errors(t *testing.T) {
	_, _, err := expandTool(context.Background(), nil, ExpandInput{Property: "color", Values: []string{"red"}})
	assert.ErrorContains(t, err, "not an expandable shorthand")

	_, _, err = expandTool(context.Background(), nil, ExpandInput{Property: "gap"})
	assert.Error(t, err)
}

func TestLintTool(t *testing.T) {
	_, out, err := lintTool(context.Background(), nil, LintInput{Property: "outline", Value: "1px solid red"})
	require.NoError(t, err)
	assert.Empty(t, out.Issues)
	assert.NotNil(t, out.Issues)

	_, out, err = lintTool(context.Background(), nil, LintInput{Property: "outline", Value: "1px solid 3"})
	require.NoError(t, err)
	require.Len(t, out.Issues, 1)
	assert.Equal(t, "outlineColor", out.Issues[0].Property)
}

func TestListTool(t *testing.T) {
	_, out, err := listTool(context.Background(), nil, ListInput{Kebab: true})
	require.NoError(t, err)
	require.Len(t, out.Shorthands, 16)
	assert.Equal(t, Shorthand{
		Property:  "border",
		Longhands: out.Shorthands[0].Longhands,
	}, out.Shorthands[0])
	assert.Len(t, out.Shorthands[0].Longhands, 12)
	assert.Equal(t, "border-top-style", out.Shorthands[0].Longhands[0])
}

func TestServer_ListTools(t *testing.T) {
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := NewServer().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	res, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"expand_shorthand", "lint_shorthand", "list_shorthands"}, names)

	call, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "expand_shorthand",
		Arguments: map[string]any{"property": "gap", "values": []string{"1px 2px"}},
	})
	require.NoError(t, err)
	assert.False(t, call.IsError)
}
