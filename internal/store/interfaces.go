// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package store persists the client's submission history in a local
// SQLite database: one row per deploy sent to a node, so past deploy
// hashes can be listed and re-queried.
package store

import (
	"context"

	"github.com/vkarasev/go-casper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SubmissionFilter narrows ListSubmissions. Zero fields match everything.
type SubmissionFilter struct {
	// ChainName restricts rows to one network.
	ChainName string
	// Kind restricts rows to one submission kind.
	Kind string
	// Status restricts rows to one status.
	Status string
	// Limit caps the number of rows returned, newest first. Zero means
	// no cap.
	Limit uint64
}

// SubmissionRepository is the local deploy-submission history.
type SubmissionRepository interface {
	// SaveSubmission inserts one history row and returns it with the
	// assigned ID. Returns [ErrDuplicateSubmission] if the deploy hash
	// was already recorded.
	SaveSubmission(ctx context.Context, sub models.DeploySubmission) (models.DeploySubmission, error)

	// GetByDeployHash returns the row for a deploy hash, or
	// [ErrSubmissionNotFound].
	GetByDeployHash(ctx context.Context, deployHash string) (models.DeploySubmission, error)

	// ListSubmissions returns history rows matching the filter, newest
	// first.
	ListSubmissions(ctx context.Context, filter SubmissionFilter) ([]models.DeploySubmission, error)

	// UpdateStatus resolves a row's status once execution results are
	// known. Returns [ErrSubmissionNotFound] for an unknown hash.
	UpdateStatus(ctx context.Context, deployHash, status string) error
}
