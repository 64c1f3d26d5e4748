/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintVersion(t *testing.T) {
	color.NoColor = true

	var text bytes.Buffer
	require.NoError(t, printVersion(&text, "text"))
	assert.True(t, strings.HasPrefix(text.String(), "shorthand "))

	var js bytes.Buffer
	require.NoError(t, printVersion(&js, "json"))
	var info map[string]string
	require.NoError(t, json.Unmarshal(js.Bytes(), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "gitCommit")

	assert.Error(t, printVersion(&js, "xml"))
}
