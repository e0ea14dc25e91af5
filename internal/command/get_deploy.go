package command

import (
	"github.com/spf13/cobra"
)

func newGetDeployCmd() *cobra.Command {
	var finalizedApprovals bool

	cmd := &cobra.Command{
		Use:   "get-deploy DEPLOY_HASH",
		Short: "Retrieve a stored deploy and its execution results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp(cmd, appOptions{needNode: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.QueryService.GetDeploy(cmd.Context(), args[0], finalizedApprovals)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().BoolVar(&finalizedApprovals, "finalized-approvals", false, "return the approvals finalized in the block rather than the originally received ones")

	return cmd
}
