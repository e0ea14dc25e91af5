// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package models defines the JSON payloads exchanged with a Casper node
// over JSON-RPC, plus the client's own persistence records.
package models

import "github.com/vkarasev/go-casper-client/internal/casper"

// PutDeployResult is the node's reply to account_put_deploy.
type PutDeployResult struct {
	APIVersion string        `json:"api_version"`
	DeployHash casper.Digest `json:"deploy_hash"`
}
