// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package command

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/adapter"
	"github.com/vkarasev/go-casper-client/internal/config"
	"github.com/vkarasev/go-casper-client/internal/logger"
	"github.com/vkarasev/go-casper-client/internal/service"
	"github.com/vkarasev/go-casper-client/internal/store"
)

// appOptions tells newApp which heavyweight dependencies the invoking
// command actually needs. Purely local commands (make-deploy, keygen)
// skip both the node connection and the submission store.
type appOptions struct {
	needNode  bool
	needStore bool
}

// app bundles the wired dependencies for a single command invocation.
type app struct {
	cfg      *config.ClientConfig
	log      *logger.Logger
	db       *store.DB
	services *service.Services
}

func newApp(cmd *cobra.Command, opts appOptions) (*app, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	applyGlobalFlags(cmd, cfg)

	level := zerolog.InfoLevel
	if cfg.Node.Verbose {
		level = zerolog.DebugLevel
	}
	log := logger.NewClientLogger("casper-client", level)

	var nodeAdapter adapter.NodeAdapter
	if opts.needNode {
		if cfg.Node.Address == "" {
			return nil, errors.New("node address is required: pass --node-address or set CASPER_NODE_ADDRESS")
		}
		nodeAdapter, err = adapter.NewHTTPNodeAdapter(cfg.Node, log)
		if err != nil {
			return nil, fmt.Errorf("connect to node: %w", err)
		}
	}

	var (
		db      *store.DB
		history store.SubmissionRepository
	)
	if opts.needStore {
		db, err = store.NewConnectSQLite(cmd.Context(), cfg.Storage.DB, log)
		if err != nil {
			return nil, fmt.Errorf("open submission store: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate submission store: %w", err)
		}
		history = store.NewSubmissionRepository(db, log)
	}

	return &app{
		cfg:      cfg,
		log:      log,
		db:       db,
		services: service.NewServices(nodeAdapter, history, cfg, log),
	}, nil
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warn().Err(err).Msg("closing submission store")
		}
	}
}

// applyGlobalFlags overlays the persistent flags that were explicitly set
// on top of the merged configuration. Unset flags leave env/JSON/default
// values untouched.
func applyGlobalFlags(cmd *cobra.Command, cfg *config.ClientConfig) {
	flags := cmd.Flags()
	if flags.Changed(flagNodeAddress) {
		cfg.Node.Address, _ = flags.GetString(flagNodeAddress)
	}
	if flags.Changed(flagVerbose) {
		cfg.Node.Verbose, _ = flags.GetBool(flagVerbose)
	}
	if flags.Changed(flagRPCID) {
		cfg.Node.RPCID, _ = flags.GetString(flagRPCID)
	}
	if flags.Changed(flagTimeout) {
		var d time.Duration
		d, _ = flags.GetDuration(flagTimeout)
		cfg.Node.RequestTimeout = d
	}
}
