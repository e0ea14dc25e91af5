// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package models

import "fmt"

// BuildInfo carries build-time metadata injected via linker flags and
// shown by the version command.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo fills in "N/A" for any metadata the build did not inject.
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("version %s (built %s, commit %s)", b.Version, b.Date, b.Commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
