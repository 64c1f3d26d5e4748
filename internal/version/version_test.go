/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func stubVars(t *testing.T, v, commit, tag, dirty string) {
	t.Helper()
	ov, oc, ot, od := Version, GitCommit, GitTag, GitDirty
	Version, GitCommit, GitTag, GitDirty = v, commit, tag, dirty
	t.Cleanup(func() { Version, GitCommit, GitTag, GitDirty = ov, oc, ot, od })
}

func TestGet(t *testing.T) {
	devel := &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}
	stamped := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name                     string
		version, commit, tag, dt string
		info                     *debug.BuildInfo
		want                     string
	}{
		{"ldflags version", "v1.2.3", "unknown", "unknown", "", devel, "v1.2.3"},
		{"module version", "dev", "unknown", "unknown", "", &debug.BuildInfo{Main: debug.Module{Version: "v0.4.0"}}, "v0.4.0"},
		{"tag and commit", "dev", "abcdef0123", "v1.0.0", "", devel, "v1.0.0-abcdef0"},
		{"dirty tag", "dev", "abcdef0123", "v1.0.0", "dirty", devel, "v1.0.0-abcdef0-dirty"},
		{"vcs stamp", "dev", "unknown", "unknown", "", stamped, "dev-0123456-dirty"},
		{"nothing", "dev", "unknown", "unknown", "", nil, "dev"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubVars(t, tt.version, tt.commit, tt.tag, tt.dt)
			stubBuildInfo(t, tt.info)
			assert.Equal(t, tt.want, Get())
		})
	}
}

func TestInfo_VCSFallback(t *testing.T) {
	stubVars(t, "dev", "unknown", "unknown", "")
	stubBuildInfo(t, &debug.BuildInfo{
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "feedface"}},
	})

	info := Info()
	assert.Equal(t, "feedface", info["gitCommit"])
	assert.Equal(t, "", info["gitDirty"])
	assert.Equal(t, "dev-feedfac", info["version"])
}
