package command

import (
	"github.com/spf13/cobra"
)

func newMakeDeployCmd() *cobra.Command {
	var (
		deployFlags  deployFlagSet
		sessionFlags sessionFlagSet
		paymentFlags paymentFlagSet
		output       string
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "make-deploy",
		Short: "Create a deploy and write it to a file or stdout without sending it",
		Long: "Create a deploy and write it to a file or stdout without sending it.\n" +
			"The deploy may be left unsigned and signed later with sign-deploy.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{})
			if err != nil {
				return err
			}
			defer app.Close()

			d, err := app.services.DeployService.MakeDeploy(
				deployFlags.params(),
				sessionFlags.params(),
				paymentFlags.params(),
			)
			if err != nil {
				return err
			}
			if output == "" {
				return d.Write(cmd.OutOrStdout())
			}
			return d.WriteFile(output, force)
		},
	}

	deployFlags.register(cmd.Flags())
	sessionFlags.register(cmd.Flags())
	paymentFlags.register(cmd.Flags())
	cmd.Flags().StringVarP(&output, "output", "o", "", "file to write the deploy to; stdout when unset")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite the output file if it exists")

	return cmd
}
