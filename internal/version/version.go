/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the shorthand CLI.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	GitTag    = "unknown"
	BuildTime = "unknown"
	GitDirty  = ""
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get returns the version string for the application.
func Get() string {
	if Version != "dev" {
		return Version
	}

	if info, ok := readBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}

	if GitTag != "unknown" && GitCommit != "unknown" {
		version := GitTag
		if GitCommit != "" {
			commitSuffix := shortCommit(GitCommit)
			if !strings.HasSuffix(GitTag, commitSuffix) {
				version = fmt.Sprintf("%s-%s", GitTag, commitSuffix)
			}
		}
		if GitDirty == "dirty" {
			version += "-dirty"
		}
		return version
	}

	if commit, dirty := vcs(); commit != "" {
		version := "dev-" + shortCommit(commit)
		if dirty {
			version += "-dirty"
		}
		return version
	}

	return "dev"
}

// Info returns detailed build information.
// Commit and dirty state fall back to the VCS stamp embedded by go build.
func Info() map[string]string {
	commit, dirty := GitCommit, GitDirty
	if commit == "unknown" {
		if rev, modified := vcs(); rev != "" {
			commit = rev
			if modified {
				dirty = "dirty"
			}
		}
	}
	return map[string]string{
		"version":   Get(),
		"gitCommit": commit,
		"gitTag":    GitTag,
		"buildTime": BuildTime,
		"gitDirty":  dirty,
	}
}

// vcs reads the vcs.revision and vcs.modified build settings.
func vcs() (revision string, modified bool) {
	info, ok := readBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return revision, modified
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
