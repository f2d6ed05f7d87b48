package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	envseal "github.com/envseal/envseal-go"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect and construct unsigned JWTs",
}

var tokenDecodeCmd = &cobra.Command{
	Use:   "decode <token>",
	Short: "Decode a token's header and claims without verification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token := strings.TrimSpace(args[0])

		claims, err := envseal.ParseToken(token)
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(map[string]any{
			"header": envseal.Header(token),
			"claims": claims,
		}, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(out))
		return nil
	},
}

var tokenInfoCmd = &cobra.Command{
	Use:   "info <token>",
	Short: "Show a token's validity, user and expiry summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		summary := envseal.Summarize(strings.TrimSpace(args[0]))
		if summary == nil {
			return fmt.Errorf("not a decodable token")
		}

		fmt.Printf("valid:     %t\n", summary.Valid)
		fmt.Printf("remaining: %s\n", summary.Remaining)
		fmt.Printf("user:      %s\n", summary.UserID)
		fmt.Printf("role:      %s\n", summary.Role)
		fmt.Printf("expires:   %s\n", summary.ExpiresAt)
		return nil
	},
}

var tokenMockCmd = &cobra.Command{
	Use:   "mock [claims.json]",
	Short: "Build an unsigned token from partial claims",
	Long: `Builds a three-segment token from the given claims JSON (file or
stdin; pass no argument and close stdin for an empty claim set). Absent
recognized fields receive defaults. The third segment is a placeholder,
not a signature: the result carries no trust.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		claims := map[string]any{}

		data, err := readInput(args)
		if err != nil {
			return err
		}
		if len(data) > 0 {
			if err := json.Unmarshal(data, &claims); err != nil {
				return fmt.Errorf("claims must be a JSON object: %w", err)
			}
		}

		token, err := envseal.EncodeToken(claims)
		if err != nil {
			return err
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenDecodeCmd, tokenInfoCmd, tokenMockCmd)
	rootCmd.AddCommand(tokenCmd)
}
