// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

// Package command wires the casper-client CLI: one file per subcommand,
// shared flag sets for deploy construction, and a per-invocation app
// container that assembles config, logging, the node adapter and the
// local submission store.
package command

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/models"
)

// Names of the persistent flags shared by every subcommand.
const (
	flagNodeAddress = "node-address"
	flagVerbose     = "verbose"
	flagRPCID       = "rpc-id"
	flagTimeout     = "timeout"
)

// NewRootCmd builds the casper-client command tree.
func NewRootCmd(info models.BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "casper-client",
		Short:         "A client for interacting with the Casper network",
		Version:       info.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringP(flagNodeAddress, "n", "", "address of the node's JSON-RPC server, e.g. http://localhost:7777")
	pf.BoolP(flagVerbose, "v", false, "log the JSON-RPC request and response envelopes")
	pf.String(flagRPCID, "", "JSON-RPC identifier to use for every request; a random one is generated when unset")
	pf.Duration(flagTimeout, time.Duration(0), "timeout for a single request to the node")

	rootCmd.AddCommand(
		newPutDeployCmd(),
		newMakeDeployCmd(),
		newSignDeployCmd(),
		newSendDeployCmd(),
		newTransferCmd(),
		newGetDeployCmd(),
		newGetBalanceCmd(),
		newGetStateRootHashCmd(),
		newGetBlockCmd(),
		newGetPeersCmd(),
		newGetNodeStatusCmd(),
		newKeygenCmd(),
		newAccountAddressCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

// Execute runs the command tree and reports the process exit code.
// Errors are printed exactly once, here.
func Execute(info models.BuildInfo) int {
	if err := NewRootCmd(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("error: %v", err)))
		return 1
	}
	return 0
}
