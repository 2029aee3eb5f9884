// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Freeman45

package models

import "fmt"

// AppBuildInfo carries build-time metadata stamped into the binary via
// linker flags and printed on startup for release traceability.
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
// Empty values are normalized to "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: orNA(version),
		date:    orNA(date),
		commit:  orNA(commit),
	}
}

// Version returns the semantic version string of the build.
func (a AppBuildInfo) Version() string { return a.version }

// Date returns the build timestamp string.
func (a AppBuildInfo) Date() string { return a.date }

// Commit returns the source-control commit hash used for the build.
func (a AppBuildInfo) Commit() string { return a.commit }

// String renders the metadata in the three-line format expected by
// startup logs.
func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.version, a.date, a.commit)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}
