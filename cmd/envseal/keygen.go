package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/envseal/envseal-go/internal/crypto"
)

var (
	keygenBits int
	keygenOut  string
)

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an RSA keypair for envelope encryption",
	Long: `Generates an RSA keypair and writes <prefix>.pub.pem and
<prefix>.key.pem. The private key file is created with mode 0600.
Without --out the keys are printed to stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pair, err := crypto.GenerateKeyPair(keygenBits)
		if err != nil {
			return err
		}

		if keygenOut == "" {
			fmt.Print(pair.PublicKeyPEM)
			fmt.Print(pair.PrivateKeyPEM)
			return nil
		}

		pubPath := keygenOut + ".pub.pem"
		privPath := keygenOut + ".key.pem"

		if err := os.WriteFile(pubPath, []byte(pair.PublicKeyPEM), 0o644); err != nil {
			return fmt.Errorf("write public key: %w", err)
		}
		if err := os.WriteFile(privPath, []byte(pair.PrivateKeyPEM), 0o600); err != nil {
			return fmt.Errorf("write private key: %w", err)
		}

		log.WithField("bits", keygenBits).Info("generated keypair")
		fmt.Println(pubPath)
		fmt.Println(privPath)
		return nil
	},
}

func init() {
	keygenCmd.Flags().IntVarP(&keygenBits, "bits", "b", crypto.MinRSABits, "RSA modulus size in bits")
	keygenCmd.Flags().StringVarP(&keygenOut, "out", "o", "", "output file prefix")
	rootCmd.AddCommand(keygenCmd)
}
