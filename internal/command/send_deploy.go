package command

import (
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/deploy"
	"github.com/vkarasev/go-casper-client/models"
)

func newSendDeployCmd() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "send-deploy",
		Short: "Send a previously created deploy file to the network for execution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true, needStore: true})
			if err != nil {
				return err
			}
			defer app.Close()

			d, err := deploy.ReadFile(input)
			if err != nil {
				return err
			}
			result, err := app.services.DeployService.SendDeploy(cmd.Context(), d, models.SubmissionSendDeploy)
			if err != nil {
				return err
			}
			return printResponse(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file containing the signed deploy to send")
	cmd.MarkFlagRequired("input")

	return cmd
}
