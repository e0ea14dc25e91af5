package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/keys"
)

func newKeygenCmd() *cobra.Command {
	var (
		algorithm string
		force     bool
	)

	cmd := &cobra.Command{
		Use:   "keygen [DIR]",
		Short: "Generate account key files in the given directory",
		Long: "Generate account key files in the given directory (default: the current one).\n" +
			"Writes secret_key.pem, public_key.pem and public_key_hex.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}

			key, err := keys.Generate(algorithm)
			if err != nil {
				return err
			}
			if err := keys.WriteKeyPair(dir, key, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote files to %s\n", dir)
			fmt.Fprintf(cmd.OutOrStdout(), "Public key: %s\n", key.PublicKey().Hex())
			return nil
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", keys.AlgorithmEd25519, "signature algorithm, 'ed25519' or 'secp256k1'")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing key files")

	return cmd
}
