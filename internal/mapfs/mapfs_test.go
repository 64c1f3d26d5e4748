/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package mapfs_test

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/shorthand/internal/mapfs"
)

func TestMapFileSystem(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/in/a.json", "{}", 0644)

	require.NoError(t, mfs.MkdirAll("/out", 0755))
	require.NoError(t, mfs.WriteFile("/out/a.css", []byte("x: y;\n"), 0644))

	data, err := mfs.ReadFile("/out/a.css")
	require.NoError(t, err)
	assert.Equal(t, "x: y;\n", string(data))

	assert.True(t, mfs.Exists("/in"))
	assert.True(t, mfs.Exists("/in/a.json"))
	assert.False(t, mfs.Exists("/in/b.json"))
	assert.Equal(t, []string{"/in/a.json", "/out/a.css"}, mfs.Files())

	info, err := mfs.Stat("/out")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMapFileSystem_WalkDir(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/root/b.json", "", 0644)
	mfs.AddFile("/root/sub/a.json", "", 0644)

	var seen []string
	err := fs.WalkDir(mfs, "/root", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			seen = append(seen, path)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/root/b.json", "/root/sub/a.json"}, seen)
}

func TestMapFileSystem_WriteUnderFile(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/a", "", 0644)
	assert.Error(t, mfs.WriteFile("/a/b", nil, 0644))
	assert.Error(t, mfs.MkdirAll("/a", 0755))
}
