// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package adapter provides the transport layer for talking to a Casper
// node over its JSON-RPC 2.0 HTTP endpoint.
//
// The primary abstraction is [NodeAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPNodeAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, and JSON-RPC error objects surface as [*RPCError], so
// callers can use [errors.Is] and [errors.As] for transport-agnostic
// error handling.
package adapter

import (
	"context"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/node_adapter_mock.go -package=mock

// NodeAdapter defines the RPC surface of a Casper node that this client
// uses. Implementations own serialisation and error mapping.
type NodeAdapter interface {
	// PutDeploy submits a signed deploy via account_put_deploy and
	// returns the deploy hash the node accepted.
	PutDeploy(ctx context.Context, d *deploy.Deploy) (models.PutDeployResult, error)

	// GetDeploy fetches a deploy and its execution results via
	// info_get_deploy. With finalizedApprovals set, the node substitutes
	// the approvals as finalized on chain.
	GetDeploy(ctx context.Context, deployHash casper.Digest, finalizedApprovals bool) (models.GetDeployResult, error)

	// GetBalance reads a purse balance via state_get_balance under the
	// given state root.
	GetBalance(ctx context.Context, stateRootHash casper.Digest, purse casper.URef) (models.GetBalanceResult, error)

	// GetStateRootHash returns the state root hash via
	// chain_get_state_root_hash. A nil block identifier means the most
	// recent block.
	GetStateRootHash(ctx context.Context, block *models.BlockIdentifier) (models.GetStateRootHashResult, error)

	// GetBlock fetches a block via chain_get_block. A nil block
	// identifier means the most recent block.
	GetBlock(ctx context.Context, block *models.BlockIdentifier) (models.GetBlockResult, error)

	// GetPeers lists the node's connected peers via info_get_peers.
	GetPeers(ctx context.Context) (models.GetPeersResult, error)

	// GetNodeStatus reports the node's status via info_get_status.
	GetNodeStatus(ctx context.Context) (models.GetNodeStatusResult, error)
}
