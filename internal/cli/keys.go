package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/cyphera/cyphera-tax/libs/go/constants"
	"github.com/cyphera/cyphera-tax/libs/go/helpers"
	"github.com/cyphera/cyphera-tax/libs/go/middleware"
	"github.com/cyphera/cyphera-tax/libs/go/types/business"
	"github.com/spf13/cobra"
)

// Secrets are printed once for the operator to store in Secrets Manager; nothing here logs them.
func newKeysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Generate API keys, encryption keys and admin tokens",
	}
	cmd.AddCommand(newAPIKeyCommand(), newEncryptionKeyCommand(), newAdminTokenCommand())
	return cmd
}

func newAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "api-key",
		Short: "Generate an API key and the bcrypt hash the server checks it against",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _, err := helpers.GenerateAPIKey()
			if err != nil {
				return err
			}
			hash, err := helpers.HashAPIKey(key)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "api_key: %s\n", key)
			fmt.Fprintf(out, "api_key_hash: %s\n", hash)
			return nil
		},
	}
}

func newEncryptionKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encryption-key",
		Short: "Generate a base64 field encryption key for SSN storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := helpers.GenerateFieldEncryptionKey()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
}

func newAdminTokenCommand() *cobra.Command {
	var (
		subject   string
		role      string
		ttl       time.Duration
		secretEnv string
	)

	cmd := &cobra.Command{
		Use:   "admin-token",
		Short: "Sign a bearer token for the admin routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv(secretEnv)
			if secret == "" {
				return fmt.Errorf("%s is not set", secretEnv)
			}
			if subject == "" {
				return fmt.Errorf("--subject is required")
			}
			token, err := middleware.SignPrincipalToken([]byte(secret), business.Principal{Subject: subject, Role: role}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject")
	cmd.Flags().StringVar(&role, "role", constants.AdminRole, "Token role")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	cmd.Flags().StringVar(&secretEnv, "secret-env", "ADMIN_JWT_SECRET", "Environment variable holding the signing secret")

	return cmd
}
