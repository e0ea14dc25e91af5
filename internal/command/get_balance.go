package command

import (
	"github.com/spf13/cobra"
)

func newGetBalanceCmd() *cobra.Command {
	var (
		purseURef     string
		stateRootHash string
	)

	cmd := &cobra.Command{
		Use:   "get-balance",
		Short: "Retrieve the balance of a purse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.QueryService.GetBalance(cmd.Context(), stateRootHash, purseURef)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&purseURef, "purse-uref", "p", "", "formatted URef of the purse, e.g. uref-<hex>-007")
	cmd.Flags().StringVarP(&stateRootHash, "state-root-hash", "s", "", "hex-encoded state root hash; the latest one is fetched when unset")
	cmd.MarkFlagRequired("purse-uref")

	return cmd
}
