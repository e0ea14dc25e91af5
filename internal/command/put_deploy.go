// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Vadim Karasev

package command

import (
	"github.com/spf13/cobra"
)

func newPutDeployCmd() *cobra.Command {
	var (
		deployFlags  deployFlagSet
		sessionFlags sessionFlagSet
		paymentFlags paymentFlagSet
		wait         bool
	)

	cmd := &cobra.Command{
		Use:   "put-deploy",
		Short: "Create a deploy and send it to the network for execution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true, needStore: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.DeployService.PutDeploy(
				cmd.Context(),
				deployFlags.params(),
				sessionFlags.params(),
				paymentFlags.params(),
			)
			if err != nil {
				return err
			}
			if err := printResponse(cmd.OutOrStdout(), result); err != nil {
				return err
			}

			if !wait {
				return nil
			}
			execution, err := app.services.DeployService.WaitDeploy(cmd.Context(), result.DeployHash.String())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), execution)
		},
	}

	deployFlags.register(cmd.Flags())
	sessionFlags.register(cmd.Flags())
	paymentFlags.register(cmd.Flags())
	cmd.Flags().BoolVar(&wait, "wait", false, "poll the node until the deploy is executed and print the execution results")

	return cmd
}
