// Package token mints access tokens for local development and testing.
package token

import (
	"fmt"

	"github.com/spf13/cobra"

	"caseline/internal/infrastructure/auth"
	"caseline/internal/infrastructure/config"
	"caseline/internal/shared/authorization"
)

var (
	env    string
	role   string
	openID string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Long:  `Generate a signed access token for the given role and identity, for use against a local server.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&role, "role", "r", "ip", "Role of the principal (ip, sp, admin)")
	cmd.Flags().StringVarP(&openID, "openid", "o", "", "External identity of the principal (required)")
	cmd.MarkFlagRequired("openid")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	parsed, ok := authorization.ParseRole(role)
	if !ok {
		return fmt.Errorf("unknown role %q", role)
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	jwtService := auth.NewJWTService(&cfg.Auth.JWT)
	token, err := jwtService.Generate(openID, parsed)
	if err != nil {
		return fmt.Errorf("failed to generate token: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
