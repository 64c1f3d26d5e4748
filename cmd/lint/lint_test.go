/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package lint

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lintlib "bennypowers.dev/shorthand/lint"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func TestLintTo_Clean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lintTo(&buf, "border-top", "1px solid red", "text"))
	assert.Empty(t, buf.String())
}

func TestLintTo_Issues(t *testing.T) {
	var buf bytes.Buffer
	err := lintTo(&buf, "borderTop", "solid red 2", "text")
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Equal(t,
		"warning: borderTopColor: \"2\": unitless number was classified as a color\n",
		buf.String())
}

func TestLintTo_JSON(t *testing.T) {
	var buf bytes.Buffer
	err := lintTo(&buf, "outline", "1px solid notacolor", "json")
	assert.ErrorIs(t, err, ErrIssuesFound)

	var issues []lintlib.Issue
	require.NoError(t, json.Unmarshal(buf.Bytes(), &issues))
	require.Len(t, issues, 1)
	assert.Equal(t, "outlineColor", issues[0].Property)
	assert.Equal(t, "notacolor", issues[0].Value)
}

func TestLintTo_JSONClean(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, lintTo(&buf, "gap", "1px", "json"))
	assert.Equal(t, "[]\n", buf.String())
}

func TestLintTo_UnknownProperty(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, lintTo(&buf, "color", "red", "text"))
}
