// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package main

import (
	"os"

	"github.com/vkarasev/go-casper-client/internal/command"
	"github.com/vkarasev/go-casper-client/models"
)

// Populated by the linker, e.g.
// go build -ldflags "-X main.buildVersion=v1.0.0".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	os.Exit(command.Execute(info))
}
