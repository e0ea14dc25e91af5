// Package workers runs the background polling the client needs: watching
// a submitted deploy until the network reports execution results.
package workers

import (
	"context"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// DeployPoller waits for a deploy to be executed on chain.
type DeployPoller interface {
	// Wait re-queries info_get_deploy on a ticker until execution
	// results appear, the configured timeout elapses, or ctx is
	// cancelled.
	Wait(ctx context.Context, deployHash casper.Digest) (models.GetDeployResult, error)
}
