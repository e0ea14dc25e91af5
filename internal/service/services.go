package service

import (
	"github.com/vkarasev/go-casper-client/internal/adapter"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/internal/store"
	"github.com/vkarasev/go-casper-client/internal/workers"
)

// Services bundles the client's service layer.
type Services struct {
	DeployService DeployService
	QueryService  QueryService
}

// NewServices wires the service layer over a node adapter and the local
// history store.
func NewServices(
	nodeAdapter adapter.NodeAdapter,
	history store.SubmissionRepository,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *Services {
	poller := workers.NewDeployPoller(nodeAdapter, cfg.Workers, log)

	return &Services{
		DeployService: NewDeployService(nodeAdapter, history, poller, cfg.Deploy, cfg.Node.Address, log),
		QueryService:  NewQueryService(nodeAdapter, history),
	}
}
