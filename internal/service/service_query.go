package service

import (
	"context"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/adapter"
	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/store"
	"github.com/vkarasev/go-casper-client/models"
)

type queryService struct {
	adapter adapter.NodeAdapter
	history store.SubmissionRepository
}

// NewQueryService constructs a [QueryService] over the node adapter and
// the local history.
func NewQueryService(nodeAdapter adapter.NodeAdapter, history store.SubmissionRepository) QueryService {
	return &queryService{adapter: nodeAdapter, history: history}
}

// GetDeploy implements [QueryService].
func (s *queryService) GetDeploy(ctx context.Context, deployHash string, finalizedApprovals bool) (models.GetDeployResult, error) {
	hash, err := casper.ParseDigest(deployHash)
	if err != nil {
		return models.GetDeployResult{}, fmt.Errorf("deploy hash: %w", err)
	}
	return s.adapter.GetDeploy(ctx, hash, finalizedApprovals)
}

// GetBalance implements [QueryService]. An empty stateRootHash is
// resolved against the latest block first.
func (s *queryService) GetBalance(ctx context.Context, stateRootHash, purse string) (models.GetBalanceResult, error) {
	uref, err := casper.ParseURef(purse)
	if err != nil {
		return models.GetBalanceResult{}, fmt.Errorf("purse: %w", err)
	}

	var root casper.Digest
	if stateRootHash == "" {
		latest, err := s.adapter.GetStateRootHash(ctx, nil)
		if err != nil {
			return models.GetBalanceResult{}, fmt.Errorf("resolve state root hash: %w", err)
		}
		if latest.StateRootHash == nil {
			return models.GetBalanceResult{}, fmt.Errorf("node reported no state root hash")
		}
		root = *latest.StateRootHash
	} else {
		root, err = casper.ParseDigest(stateRootHash)
		if err != nil {
			return models.GetBalanceResult{}, fmt.Errorf("state root hash: %w", err)
		}
	}

	return s.adapter.GetBalance(ctx, root, uref)
}

// GetStateRootHash implements [QueryService].
func (s *queryService) GetStateRootHash(ctx context.Context, blockID string) (models.GetStateRootHashResult, error) {
	block, err := models.ParseBlockIdentifier(blockID)
	if err != nil {
		return models.GetStateRootHashResult{}, err
	}
	return s.adapter.GetStateRootHash(ctx, block)
}

// GetBlock implements [QueryService].
func (s *queryService) GetBlock(ctx context.Context, blockID string) (models.GetBlockResult, error) {
	block, err := models.ParseBlockIdentifier(blockID)
	if err != nil {
		return models.GetBlockResult{}, err
	}
	return s.adapter.GetBlock(ctx, block)
}

// GetPeers implements [QueryService].
func (s *queryService) GetPeers(ctx context.Context) (models.GetPeersResult, error) {
	return s.adapter.GetPeers(ctx)
}

// GetNodeStatus implements [QueryService].
func (s *queryService) GetNodeStatus(ctx context.Context) (models.GetNodeStatusResult, error) {
	return s.adapter.GetNodeStatus(ctx)
}

// History implements [QueryService].
func (s *queryService) History(ctx context.Context, filter store.SubmissionFilter) ([]models.DeploySubmission, error) {
	return s.history.ListSubmissions(ctx, filter)
}
