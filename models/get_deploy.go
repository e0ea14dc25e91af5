package models

import (
	"encoding/json"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/deploy"
)

// GetDeployResult is the node's reply to info_get_deploy.
type GetDeployResult struct {
	APIVersion       string            `json:"api_version"`
	Deploy           deploy.Deploy     `json:"deploy"`
	ExecutionResults []ExecutionResult `json:"execution_results"`
}

// Executed reports whether any block has executed the deploy yet.
func (r *GetDeployResult) Executed() bool {
	return len(r.ExecutionResults) > 0
}

// ExecutionResult ties a deploy's execution outcome to the block that
// included it.
type ExecutionResult struct {
	BlockHash casper.Digest   `json:"block_hash"`
	Result    ExecutionStatus `json:"result"`
}

// ExecutionStatus is the node's externally tagged execution outcome.
// Exactly one of Success or Failure is set; Raw keeps the full payload
// for display.
type ExecutionStatus struct {
	Success *ExecutionSuccess `json:"Success,omitempty"`
	Failure *ExecutionFailure `json:"Failure,omitempty"`
}

type ExecutionSuccess struct {
	Cost      string          `json:"cost"`
	Transfers []string        `json:"transfers,omitempty"`
	Effect    json.RawMessage `json:"effect,omitempty"`
}

type ExecutionFailure struct {
	Cost         string          `json:"cost"`
	ErrorMessage string          `json:"error_message"`
	Effect       json.RawMessage `json:"effect,omitempty"`
}
