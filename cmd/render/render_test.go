/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"bytes"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shorthand/expand"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestLonghandRows(t *testing.T) {
	longhands, ok := expand.Expand("borderTop", "1px solid red")
	require.True(t, ok)

	rows := LonghandRows(longhands, false)
	assert.Equal(t, []Row{
		{Name: "borderTopWidth", Value: "1px"},
		{Name: "borderTopStyle", Value: "solid"},
		{Name: "borderTopColor", Value: "red", IsColor: true},
	}, rows)

	kebab := LonghandRows(longhands, true)
	assert.Equal(t, "border-top-color", kebab[2].Name)
}

func TestLonghandRows_VarIsNotSwatched(t *testing.T) {
	longhands, ok := expand.Expand("outline", "var(--c) dashed")
	require.True(t, ok)

	for _, r := range LonghandRows(longhands, false) {
		assert.False(t, r.IsColor, r.Name)
	}
}

func TestListRows(t *testing.T) {
	lists, ok, err := expand.ExpandList("gap", []any{"1px", "2px 3px"})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, []Row{
		{Name: "row-gap", Value: "1px, 2px"},
		{Name: "column-gap", Value: "1px, 3px"},
	}, ListRows(lists, true))
}

func TestColumnWidths(t *testing.T) {
	name, val := ColumnWidths(nil)
	assert.Equal(t, 4, name)
	assert.Equal(t, 5, val)

	name, val = ColumnWidths([]Row{{Name: "paddingBottom", Value: "1px"}})
	assert.Equal(t, 13, name)
	assert.Equal(t, 5, val)
}

func TestColorSwatch(t *testing.T) {
	assert.Empty(t, ColorSwatch("red"), "no swatch when color is disabled")

	color.NoColor = false
	t.Cleanup(func() { color.NoColor = true })
	assert.Equal(t, "\x1b[48;2;255;0;0m  \x1b[0m ", ColorSwatch("red"))
	assert.Empty(t, ColorSwatch("solid"))
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, []Row{
		{Name: "rowGap", Value: "1px"},
		{Name: "columnGap", Value: "2px"},
	}))
	assert.Equal(t, "rowGap     1px\ncolumnGap  2px\n", buf.String())
}

func TestMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Markdown(&buf, []Row{{Name: "gap", Value: "rowGap, columnGap"}}))
	assert.Equal(t, "| Name | Value             |\n|------|-------------------|\n| gap  | rowGap, columnGap |\n", buf.String())
}

func TestCSS(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSS(&buf, []Row{{Name: "overflowX", Value: "hidden"}}))
	assert.Equal(t, "overflow-x: hidden;\n", buf.String())
}

func TestNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Names(&buf, []Row{{Name: "a"}, {Name: "b"}}))
	assert.Equal(t, "a\nb\n", buf.String())
}
