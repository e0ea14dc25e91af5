package command

import (
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/store"
)

func newHistoryCmd() *cobra.Command {
	var filter store.SubmissionFilter

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List deploys previously submitted from this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApp(cmd, appOptions{needStore: true})
			if err != nil {
				return err
			}
			defer app.Close()

			submissions, err := app.services.QueryService.History(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), submissions)
		},
	}

	cmd.Flags().StringVar(&filter.ChainName, "chain-name", "", "only show submissions to this chain")
	cmd.Flags().StringVar(&filter.Kind, "kind", "", "only show submissions of this kind: put-deploy, transfer or send-deploy")
	cmd.Flags().StringVar(&filter.Status, "status", "", "only show submissions with this status: pending, success or failure")
	cmd.Flags().Uint64VarP(&filter.Limit, "limit", "l", 0, "maximum number of submissions to show; all when zero")

	return cmd
}
