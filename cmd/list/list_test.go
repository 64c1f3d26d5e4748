/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestShorthands(t *testing.T) {
	all := shorthands(false)
	assert.Equal(t, 16, all.Len())

	gap, ok := all.Get("gap")
	require.True(t, ok)
	assert.Equal(t, []string{"rowGap", "columnGap"}, gap)

	outline, _ := all.Get("outline")
	assert.Equal(t, []string{"outlineStyle", "outlineWidth", "outlineColor"}, outline)

	kebab := shorthands(true)
	radius, ok := kebab.Get("border-radius")
	require.True(t, ok)
	assert.Equal(t, "border-top-left-radius", radius[0])
}

func TestListTo_Names(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listTo(&buf, "names", false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 16)
	assert.Equal(t, "border", lines[0])
	assert.Equal(t, "textDecoration", lines[15])
}

func TestListTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listTo(&buf, "json", true))

	var got map[string][]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, []string{"overflow-x", "overflow-y"}, got["overflow"])
	assert.Contains(t, got, "text-decoration")
}

func TestListTo_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listTo(&buf, "table", false))
	assert.Contains(t, buf.String(), "overflow        overflowX, overflowY\n")
}

func TestListTo_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, listTo(&buf, "markdown", false))
	assert.True(t, strings.HasPrefix(buf.String(), "| Name "))
}

func TestListTo_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, listTo(&buf, "xml", false))
}
