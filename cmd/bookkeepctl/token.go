package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bookkeephq/bookkeep/pkg/config"
	"github.com/bookkeephq/bookkeep/pkg/identity"
)

func newTokenCmd() *cobra.Command {
	var (
		userID string
		email  string
		expiry time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development bearer token",
		Long: `Mint an HS256 bearer token for a server running with BKP_AUTH_ENABLED=true.
The signing secret is read from BKP_JWT_SECRET and must match the server's.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := config.GetEnvOrDefault("BKP_JWT_SECRET", "very-secure-jwt-secret")
			issuer := config.GetEnvOrDefault("BKP_JWT_ISSUER", "bookkeep")

			token, err := identity.NewDevToken(secret, issuer, userID, email, expiry)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "subject claim (opaque user id)")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&expiry, "expiry", time.Hour, "token lifetime")
	cmd.MarkFlagRequired("user")
	cmd.MarkFlagRequired("email")
	return cmd
}
