/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shorthand/style"
)

func mustParse(t *testing.T, data string) *style.Document {
	t.Helper()
	doc, err := style.Parse([]byte(data))
	require.NoError(t, err)
	return doc
}

func TestExpand(t *testing.T) {
	doc := mustParse(t, `{"margin": "0 auto", "color": "red", "gap": 8}`)

	got, err := style.Expand(doc, style.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"marginTop", "marginRight", "marginBottom", "marginLeft",
		"color",
		"rowGap", "columnGap",
	}, properties(got))

	right, _ := got.Get("marginRight")
	assert.Equal(t, "auto", right.Value)
	col, _ := got.Get("columnGap")
	assert.Equal(t, "8", col.Value)
}

func TestExpand_KebabInput(t *testing.T) {
	doc := mustParse(t, `{"border-top": "1px solid red", "background-color": "blue"}`)

	got, err := style.Expand(doc, style.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"borderTopWidth", "borderTopStyle", "borderTopColor", "backgroundColor",
	}, properties(got))
}

func TestExpand_KebabOutput(t *testing.T) {
	doc := mustParse(t, `{"overflow": "hidden auto", "--brand": "red"}`)

	got, err := style.Expand(doc, style.Options{Kebab: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"overflow-x", "overflow-y", "--brand"}, properties(got))
}

func TestExpand_LaterWins(t *testing.T) {
	doc := mustParse(t, `{"paddingTop": "9px", "padding": "1px 2px"}`)

	got, err := style.Expand(doc, style.Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"paddingTop", "paddingRight", "paddingBottom", "paddingLeft"}, properties(got))
	top, _ := got.Get("paddingTop")
	assert.Equal(t, "1px", top.Value)
}

func TestExpand_Properties(t *testing.T) {
	doc := mustParse(t, `{"padding": "1px", "margin": "2px"}`)

	got, err := style.Expand(doc, style.Options{Properties: []string{"margin"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"padding", "marginTop", "marginRight", "marginBottom", "marginLeft"}, properties(got))
}

func TestExpand_DropUnknown(t *testing.T) {
	doc := mustParse(t, `{"color": "red", "gap": "1em", ":focus": {"cursor": "pointer"}}`)

	got, err := style.Expand(doc, style.Options{DropUnknown: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"rowGap", "columnGap", ":focus"}, properties(got))

	focus, _ := got.Get(":focus")
	assert.Equal(t, 0, focus.Block.Len())
}

func TestExpand_Lists(t *testing.T) {
	doc := mustParse(t, `{"overflow": ["hidden", "scroll auto"]}`)

	got, err := style.Expand(doc, style.Options{})
	require.NoError(t, err)

	x, ok := got.Get("overflowX")
	require.True(t, ok)
	assert.Equal(t, style.List, x.Kind)
	assert.Equal(t, []string{"hidden", "scroll"}, x.Values)

	y, _ := got.Get("overflowY")
	assert.Equal(t, []string{"hidden", "auto"}, y.Values)
}

func TestExpand_EmptyListIsDropped(t *testing.T) {
	doc := mustParse(t, `{"padding": [], "color": "red"}`)

	got, err := style.Expand(doc, style.Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"color"}, properties(got))
}

func TestExpand_DoesNotModifyInput(t *testing.T) {
	doc := mustParse(t, `{"padding": "1px", ":hover": {"margin": "2px"}}`)

	_, err := style.Expand(doc, style.Options{Kebab: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"padding", ":hover"}, properties(doc))
	hover, _ := doc.Get(":hover")
	assert.Equal(t, []string{"margin"}, properties(hover.Block))
}
