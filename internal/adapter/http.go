package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/models"
)

// rpcPath is the node's JSON-RPC endpoint, relative to its base address.
const rpcPath = "/rpc"

type httpNodeAdapter struct {
	client *HTTPClient

	rpcID   string
	verbose bool
	logger  *logger.Logger
}

// NewHTTPNodeAdapter constructs the HTTP implementation of [NodeAdapter].
// It normalises and validates the base URL from nodeCfg.Address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if nodeCfg.Address is empty or cannot be parsed as a
// valid URL.
func NewHTTPNodeAdapter(nodeCfg config.ClientNode, log *logger.Logger) (NodeAdapter, error) {
	client := NewHTTPClient()
	baseURL, err := normalizeBaseURL(nodeCfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid node address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(nodeCfg.RequestTimeout)

	return &httpNodeAdapter{
		client:  client,
		rpcID:   nodeCfg.RPCID,
		verbose: nodeCfg.Verbose,
		logger:  log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// call performs one JSON-RPC round trip: envelope the params under a
// fresh request id, POST to /rpc, map transport and RPC-level errors, and
// decode the result payload into result.
func (h *httpNodeAdapter) call(ctx context.Context, method string, params, result any) error {
	id := h.rpcID
	if id == "" {
		id = uuid.NewString()
	}
	reqEnvelope := rpcRequest{
		JSONRPC: jsonRPCVersion,
		ID:      id,
		Method:  method,
		Params:  params,
	}

	if h.verbose {
		if body, err := json.Marshal(reqEnvelope); err == nil {
			h.logger.Debug().Str("method", method).RawJSON("request", body).Msg("rpc request")
		}
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(reqEnvelope).
		Post(rpcPath)
	if err != nil {
		return fmt.Errorf("%s request: %w", method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	var respEnvelope rpcResponse
	if err = json.Unmarshal(resp.Body(), &respEnvelope); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}

	if h.verbose {
		h.logger.Debug().Str("method", method).RawJSON("response", resp.Body()).Msg("rpc response")
	}

	if respEnvelope.Error != nil {
		return fmt.Errorf("%s: %w", method, respEnvelope.Error)
	}
	if result == nil {
		return nil
	}
	if err = json.Unmarshal(respEnvelope.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

type putDeployParams struct {
	Deploy *deploy.Deploy `json:"deploy"`
}

type getDeployParams struct {
	DeployHash         casper.Digest `json:"deploy_hash"`
	FinalizedApprovals bool          `json:"finalized_approvals,omitempty"`
}

type getBalanceParams struct {
	StateRootHash string `json:"state_root_hash"`
	PurseURef     string `json:"purse_uref"`
}

type blockParams struct {
	BlockIdentifier *models.BlockIdentifier `json:"block_identifier,omitempty"`
}

// PutDeploy implements [NodeAdapter].
func (h *httpNodeAdapter) PutDeploy(ctx context.Context, d *deploy.Deploy) (models.PutDeployResult, error) {
	var result models.PutDeployResult
	err := h.call(ctx, methodPutDeploy, putDeployParams{Deploy: d}, &result)
	return result, err
}

// GetDeploy implements [NodeAdapter].
func (h *httpNodeAdapter) GetDeploy(ctx context.Context, deployHash casper.Digest, finalizedApprovals bool) (models.GetDeployResult, error) {
	var result models.GetDeployResult
	err := h.call(ctx, methodGetDeploy, getDeployParams{
		DeployHash:         deployHash,
		FinalizedApprovals: finalizedApprovals,
	}, &result)
	return result, err
}

// GetBalance implements [NodeAdapter].
func (h *httpNodeAdapter) GetBalance(ctx context.Context, stateRootHash casper.Digest, purse casper.URef) (models.GetBalanceResult, error) {
	var result models.GetBalanceResult
	err := h.call(ctx, methodGetBalance, getBalanceParams{
		StateRootHash: stateRootHash.String(),
		PurseURef:     purse.FormattedString(),
	}, &result)
	return result, err
}

// GetStateRootHash implements [NodeAdapter].
func (h *httpNodeAdapter) GetStateRootHash(ctx context.Context, block *models.BlockIdentifier) (models.GetStateRootHashResult, error) {
	var result models.GetStateRootHashResult
	err := h.call(ctx, methodGetStateRootHash, blockParams{BlockIdentifier: block}, &result)
	return result, err
}

// GetBlock implements [NodeAdapter].
func (h *httpNodeAdapter) GetBlock(ctx context.Context, block *models.BlockIdentifier) (models.GetBlockResult, error) {
	var result models.GetBlockResult
	err := h.call(ctx, methodGetBlock, blockParams{BlockIdentifier: block}, &result)
	return result, err
}

// GetPeers implements [NodeAdapter].
func (h *httpNodeAdapter) GetPeers(ctx context.Context) (models.GetPeersResult, error) {
	var result models.GetPeersResult
	err := h.call(ctx, methodGetPeers, nil, &result)
	return result, err
}

// GetNodeStatus implements [NodeAdapter].
func (h *httpNodeAdapter) GetNodeStatus(ctx context.Context) (models.GetNodeStatusResult, error) {
	var result models.GetNodeStatusResult
	err := h.call(ctx, methodGetStatus, nil, &result)
	return result, err
}
