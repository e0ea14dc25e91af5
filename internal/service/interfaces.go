// Package service orchestrates deploy construction, signing, submission
// and node queries on top of the transport adapter and the local history
// store.
package service

import (
	"context"

	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/internal/store"
	"github.com/vkarasev/go-casper-client/models"
)

// DeployService builds, signs, submits and tracks deploys.
type DeployService interface {
	// MakeDeploy assembles a deploy from the CLI boundary params. With a
	// secret key in deployParams the result is signed; otherwise it is
	// unsigned, for later sign-deploy.
	MakeDeploy(deployParams DeployStrParams, session SessionStrParams, payment PaymentStrParams) (*deploy.Deploy, error)

	// SignDeploy adds an approval by the key at secretKeyPath.
	SignDeploy(d *deploy.Deploy, secretKeyPath string) error

	// SendDeploy submits a pre-built, signed deploy and records it in
	// the local history under the given submission kind.
	SendDeploy(ctx context.Context, d *deploy.Deploy, kind string) (models.PutDeployResult, error)

	// PutDeploy makes and submits a deploy in one step.
	PutDeploy(ctx context.Context, deployParams DeployStrParams, session SessionStrParams, payment PaymentStrParams) (models.PutDeployResult, error)

	// Transfer makes and submits a native transfer.
	Transfer(ctx context.Context, transfer TransferStrParams, deployParams DeployStrParams, payment PaymentStrParams) (models.PutDeployResult, error)

	// WaitDeploy polls the node until the deploy has execution results
	// or the configured timeout expires, then resolves the history row.
	WaitDeploy(ctx context.Context, deployHash string) (models.GetDeployResult, error)
}

// QueryService wraps the read-only node RPCs and the local history.
type QueryService interface {
	// GetDeploy fetches a deploy by hex hash.
	GetDeploy(ctx context.Context, deployHash string, finalizedApprovals bool) (models.GetDeployResult, error)

	// GetBalance reads a purse balance. An empty stateRootHash resolves
	// the latest state root first.
	GetBalance(ctx context.Context, stateRootHash, purse string) (models.GetBalanceResult, error)

	// GetStateRootHash returns the state root at the identified block,
	// or the latest when blockID is empty.
	GetStateRootHash(ctx context.Context, blockID string) (models.GetStateRootHashResult, error)

	// GetBlock fetches the identified block, or the latest when blockID
	// is empty.
	GetBlock(ctx context.Context, blockID string) (models.GetBlockResult, error)

	// GetPeers lists the node's peers.
	GetPeers(ctx context.Context) (models.GetPeersResult, error)

	// GetNodeStatus reports the node's status.
	GetNodeStatus(ctx context.Context) (models.GetNodeStatusResult, error)

	// History lists locally recorded submissions.
	History(ctx context.Context, filter store.SubmissionFilter) ([]models.DeploySubmission, error)
}
