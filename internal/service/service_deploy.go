package service

import (
	"context"
	"fmt"

	"github.com/vkarasev/go-casper-client/internal/adapter"
	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/internal/keys"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/internal/store"
	"github.com/vkarasev/go-casper-client/internal/workers"
	"github.com/vkarasev/go-casper-client/models"
)

type deployService struct {
	adapter  adapter.NodeAdapter
	history  store.SubmissionRepository
	poller   workers.DeployPoller
	defaults config.ClientDeploy
	nodeAddr string
	logger   *logger.Logger
}

// NewDeployService constructs a [DeployService]. The defaults fill in
// chain name, TTL, gas price and signing key when the per-call params
// leave them empty; nodeAddr is recorded in history rows.
func NewDeployService(
	nodeAdapter adapter.NodeAdapter,
	history store.SubmissionRepository,
	poller workers.DeployPoller,
	defaults config.ClientDeploy,
	nodeAddr string,
	log *logger.Logger,
) DeployService {
	return &deployService{
		adapter:  nodeAdapter,
		history:  history,
		poller:   poller,
		defaults: defaults,
		nodeAddr: nodeAddr,
		logger:   log,
	}
}

// MakeDeploy implements [DeployService].
func (s *deployService) MakeDeploy(deployParams DeployStrParams, session SessionStrParams, payment PaymentStrParams) (*deploy.Deploy, error) {
	sessionItem, err := session.Item()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	paymentItem, err := payment.Item()
	if err != nil {
		return nil, fmt.Errorf("payment: %w", err)
	}

	return s.build(deployParams, sessionItem, paymentItem)
}

// SignDeploy implements [DeployService].
func (s *deployService) SignDeploy(d *deploy.Deploy, secretKeyPath string) error {
	key, err := keys.LoadSecretKeyFile(secretKeyPath)
	if err != nil {
		return err
	}
	return d.Sign(key)
}

// SendDeploy implements [DeployService]. History write failures never
// fail the submission; they are logged as warnings.
func (s *deployService) SendDeploy(ctx context.Context, d *deploy.Deploy, kind string) (models.PutDeployResult, error) {
	if err := d.ValidateForSend(); err != nil {
		return models.PutDeployResult{}, err
	}

	result, err := s.adapter.PutDeploy(ctx, d)
	if err != nil {
		return models.PutDeployResult{}, err
	}

	s.record(ctx, d, result, kind, "", "")
	return result, nil
}

// PutDeploy implements [DeployService].
func (s *deployService) PutDeploy(ctx context.Context, deployParams DeployStrParams, session SessionStrParams, payment PaymentStrParams) (models.PutDeployResult, error) {
	d, err := s.MakeDeploy(deployParams, session, payment)
	if err != nil {
		return models.PutDeployResult{}, err
	}
	if err = d.ValidateForSend(); err != nil {
		return models.PutDeployResult{}, err
	}

	result, err := s.adapter.PutDeploy(ctx, d)
	if err != nil {
		return models.PutDeployResult{}, err
	}

	s.record(ctx, d, result, models.SubmissionPutDeploy, payment.Amount, "")
	return result, nil
}

// Transfer implements [DeployService].
func (s *deployService) Transfer(ctx context.Context, transfer TransferStrParams, deployParams DeployStrParams, payment PaymentStrParams) (models.PutDeployResult, error) {
	sessionItem, err := transfer.Item()
	if err != nil {
		return models.PutDeployResult{}, err
	}
	paymentItem, err := payment.Item()
	if err != nil {
		return models.PutDeployResult{}, fmt.Errorf("payment: %w", err)
	}

	d, err := s.build(deployParams, sessionItem, paymentItem)
	if err != nil {
		return models.PutDeployResult{}, err
	}
	if err = d.ValidateForSend(); err != nil {
		return models.PutDeployResult{}, err
	}

	result, err := s.adapter.PutDeploy(ctx, d)
	if err != nil {
		return models.PutDeployResult{}, err
	}

	s.record(ctx, d, result, models.SubmissionTransfer, transfer.Amount, transfer.TargetAccount)
	return result, nil
}

// WaitDeploy implements [DeployService]. The history row, when present,
// is resolved to success or failure based on the execution results.
func (s *deployService) WaitDeploy(ctx context.Context, deployHash string) (models.GetDeployResult, error) {
	hash, err := casper.ParseDigest(deployHash)
	if err != nil {
		return models.GetDeployResult{}, fmt.Errorf("deploy hash: %w", err)
	}

	result, err := s.poller.Wait(ctx, hash)
	if err != nil {
		return models.GetDeployResult{}, err
	}

	status := models.SubmissionSuccess
	for _, er := range result.ExecutionResults {
		if er.Result.Failure != nil {
			status = models.SubmissionFailure
		}
	}
	if err := s.history.UpdateStatus(ctx, hash.String(), status); err != nil {
		s.logger.Warn().Err(err).Str("deploy_hash", hash.String()).Msg("could not resolve history row")
	}

	return result, nil
}

// build assembles a deploy from the header params and resolved items,
// filling gaps from the configured defaults.
func (s *deployService) build(deployParams DeployStrParams, sessionItem, paymentItem deploy.ExecutableItem) (*deploy.Deploy, error) {
	if deployParams.ChainName == "" {
		deployParams.ChainName = s.defaults.ChainName
	}
	if deployParams.SecretKeyPath == "" {
		deployParams.SecretKeyPath = s.defaults.SecretKeyPath
	}

	b := deploy.NewBuilder(deployParams.ChainName, sessionItem).WithPayment(paymentItem)
	if err := deployParams.apply(b); err != nil {
		return nil, err
	}

	if deployParams.TTL == "" && s.defaults.TTL > 0 {
		b.WithTTL(casper.TimeDiff(s.defaults.TTL.Milliseconds()))
	}
	if deployParams.GasPrice == "" && s.defaults.GasPrice > 0 {
		b.WithGasPrice(s.defaults.GasPrice)
	}

	return b.Build()
}

func (s *deployService) record(ctx context.Context, d *deploy.Deploy, result models.PutDeployResult, kind, amount, target string) {
	sub := models.DeploySubmission{
		DeployHash:  result.DeployHash.String(),
		ChainName:   d.Header.ChainName,
		NodeAddress: s.nodeAddr,
		Kind:        kind,
		Amount:      amount,
		Target:      target,
		Status:      models.SubmissionPending,
	}
	if _, err := s.history.SaveSubmission(ctx, sub); err != nil {
		s.logger.Warn().Err(err).Str("deploy_hash", sub.DeployHash).Msg("could not record submission")
	}
}
