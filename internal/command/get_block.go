package command

import (
	"github.com/spf13/cobra"
)

func newGetBlockCmd() *cobra.Command {
	var blockID string

	cmd := &cobra.Command{
		Use:   "get-block",
		Short: "Retrieve a block from the network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.QueryService.GetBlock(cmd.Context(), blockID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&blockID, "block-identifier", "b", "", "hex-encoded block hash or block height; the latest block when unset")

	return cmd
}
