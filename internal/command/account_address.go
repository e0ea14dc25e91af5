package command

import (
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/vkarasev/go-casper-client/internal/casper"
	"github.com/vkarasev/go-casper-client/internal/keys"
)

func newAccountAddressCmd() *cobra.Command {
	var (
		publicKey string
		copyToCB  bool
	)

	cmd := &cobra.Command{
		Use:   "account-address",
		Short: "Derive the account hash from a public key",
		Long: "Derive the account hash from a public key.\n" +
			"The key may be given as a hex string or as a path to a PEM or hex file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pub, err := resolvePublicKey(publicKey)
			if err != nil {
				return err
			}

			address := pub.AccountHash().FormattedString()
			fmt.Fprintln(cmd.OutOrStdout(), address)

			if copyToCB {
				if err := clipboard.WriteAll(address); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&publicKey, "public-key", "p", "", "hex-encoded public key, or path to a public key PEM or hex file")
	cmd.Flags().BoolVarP(&copyToCB, "copy", "c", false, "copy the account hash to the system clipboard")
	cmd.MarkFlagRequired("public-key")

	return cmd
}

// resolvePublicKey accepts a hex public key directly or reads it from a
// file, either PEM encoded or a bare hex string.
func resolvePublicKey(value string) (casper.PublicKey, error) {
	if pub, err := casper.ParsePublicKey(value); err == nil {
		return pub, nil
	}

	data, err := os.ReadFile(value)
	if err != nil {
		return casper.PublicKey{}, fmt.Errorf("public key %q is neither a hex key nor a readable file: %w", value, err)
	}
	if strings.Contains(string(data), "-----BEGIN") {
		return keys.ParsePublicKeyPEM(data)
	}
	return casper.ParsePublicKey(strings.TrimSpace(string(data)))
}
