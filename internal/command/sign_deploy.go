package command

import (
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/deploy"
)

func newSignDeployCmd() *cobra.Command {
	var (
		input     string
		output    string
		secretKey string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "sign-deploy",
		Short: "Add a signature to an existing deploy file",
		Long: "Add a signature to an existing deploy file.\n" +
			"The deploy may already carry approvals; the new one is appended.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			d, err := deploy.ReadFile(input)
			if err != nil {
				return err
			}
			if err := app.services.DeployService.SignDeploy(d, secretKey); err != nil {
				return err
			}
			if output == "" {
				return d.Write(cmd.OutOrStdout())
			}
			return d.WriteFile(output, force)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "file containing the deploy to sign")
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the signed deploy to; stdout when unset")
	cmd.Flags().StringVarP(&secretKey, "secret-key", "k", "", "path to the PEM-encoded secret key to sign with")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("secret-key")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return cmd
}
