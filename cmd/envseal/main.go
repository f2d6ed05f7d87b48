package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "envseal",
	Short: "Hybrid envelope encryption and token inspection",
	Long: `envseal encrypts JSON payloads into hybrid RSA/AES envelopes, decrypts
them, and inspects JWT structure without verifying signatures.

Key paths can be passed as flags or through ENVSEAL_PUBLIC_KEY and
ENVSEAL_PRIVATE_KEY (a .env file in the working directory is honored).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	// A .env in the working directory may supply default key paths;
	// its absence is not an error.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded .env")
	}

	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// loadKeyPEM resolves key material from a flag path or an environment
// variable holding a path. The key text itself is never logged.
func loadKeyPEM(flagPath, envVar string) (string, error) {
	path := flagPath
	if path == "" {
		path = os.Getenv(envVar)
	}
	if path == "" {
		return "", fmt.Errorf("no key file given (flag or %s)", envVar)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read key file: %w", err)
	}

	log.WithField("path", path).Debug("loaded key file")
	return string(data), nil
}

// readInput returns the contents of the optional file argument, or stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}
