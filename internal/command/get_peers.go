package command

import (
	"github.com/spf13/cobra"
)

func newGetPeersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-peers",
		Short: "Retrieve the list of peers connected to the node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needNode: true})
			if err != nil {
				return err
			}
			defer app.Close()

			result, err := app.services.QueryService.GetPeers(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}
