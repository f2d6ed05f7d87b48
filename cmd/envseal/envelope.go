package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	envseal "github.com/envseal/envseal-go"
)

var (
	publicKeyPath  string
	privateKeyPath string
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt [payload.json]",
	Short: "Encrypt a JSON payload into a transport envelope",
	Long: `Reads a JSON payload from the given file or stdin and prints the
envelope transport string. A fresh symmetric key is generated per call,
so repeated runs on the same payload produce different envelopes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPEM, err := loadKeyPEM(publicKeyPath, "ENVSEAL_PUBLIC_KEY")
		if err != nil {
			return err
		}

		data, err := readInput(args)
		if err != nil {
			return err
		}

		var payload any
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("payload must be valid JSON: %w", err)
		}

		envelope, err := envseal.EncryptEnvelope(payload, keyPEM)
		if err != nil {
			return err
		}

		fmt.Println(envelope)
		return nil
	},
}

var decryptCmd = &cobra.Command{
	Use:   "decrypt [envelope.txt]",
	Short: "Decrypt a transport envelope back to its JSON payload",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keyPEM, err := loadKeyPEM(privateKeyPath, "ENVSEAL_PRIVATE_KEY")
		if err != nil {
			return err
		}

		data, err := readInput(args)
		if err != nil {
			return err
		}

		payload, err := envseal.DecryptEnvelope(string(data), keyPEM)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

func init() {
	encryptCmd.Flags().StringVarP(&publicKeyPath, "public-key", "p", "", "path to the recipient's RSA public key (PEM)")
	decryptCmd.Flags().StringVarP(&privateKeyPath, "private-key", "k", "", "path to the RSA private key (PEM)")
	rootCmd.AddCommand(encryptCmd, decryptCmd)
}
