package command

import (
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/service"
)

func newTransferCmd() *cobra.Command {
	var (
		deployFlags  deployFlagSet
		paymentFlags paymentFlagSet
		amount       string
		target       string
		sourcePurse  string
		transferID   string
		wait         bool
	)

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer funds between purses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true, needStore: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.DeployService.Transfer(
				cmd.Context(),
				service.TransferStrParams{
					Amount:        amount,
					TargetAccount: target,
					SourcePurse:   sourcePurse,
					TransferID:    transferID,
				},
				deployFlags.params(),
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
	paymentFlags.register(cmd.Flags())
	cmd.Flags().StringVarP(&amount, "amount", "a", "", "number of motes to transfer")
	cmd.Flags().StringVarP(&target, "target-account", "t", "", "hex-encoded public key of the account to transfer to")
	cmd.Flags().StringVar(&sourcePurse, "source-purse", "", "URef of the purse to transfer from; defaults to the account's main purse")
	cmd.Flags().StringVar(&transferID, "transfer-id", "", "user-defined identifier permanently associated with the transfer")
	cmd.Flags().BoolVar(&wait, "wait", false, "poll the node until the transfer is executed and print the execution results")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("target-account")

	return cmd
}
