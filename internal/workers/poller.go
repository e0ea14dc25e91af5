package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vkarasev/go-casper-client/internal/adapter"
	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/models"
)

// ErrWaitTimeout is returned when a deploy shows no execution results
// within the configured poll timeout.
var ErrWaitTimeout = errors.New("timed out waiting for deploy execution")

type deployPoller struct {
	adapter  adapter.NodeAdapter
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger
}

// NewDeployPoller creates a [DeployPoller] that re-queries the node every
// cfg.PollInterval, giving up after cfg.PollTimeout.
func NewDeployPoller(nodeAdapter adapter.NodeAdapter, cfg config.ClientWorkers, log *logger.Logger) DeployPoller {
	return &deployPoller{
		adapter:  nodeAdapter,
		interval: cfg.PollInterval,
		timeout:  cfg.PollTimeout,
		logger:   log,
	}
}

// Wait implements [DeployPoller]. It queries once immediately, then on
// every tick. A deploy the node does not know yet is not an error; the
// poller keeps asking until the timeout.
func (p *deployPoller) Wait(ctx context.Context, deployHash casper.Digest) (models.GetDeployResult, error) {
	waitCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	t := time.NewTicker(p.interval)
	defer t.Stop()

	var lastErr error
	for {
		result, err := p.adapter.GetDeploy(waitCtx, deployHash, false)
		switch {
		case err != nil:
			lastErr = err
			p.logger.Debug().Err(err).Str("deploy_hash", deployHash.String()).Msg("poll attempt failed")
		case result.Executed():
			return result, nil
		default:
			lastErr = nil
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return models.GetDeployResult{}, ctx.Err()
			}
			if lastErr != nil {
				return models.GetDeployResult{}, fmt.Errorf("%w: last error: %v", ErrWaitTimeout, lastErr)
			}
			return models.GetDeployResult{}, ErrWaitTimeout
		case <-t.C:
		}
	}
}
