// bookkeepctl is a small operator CLI for the BookKeep API. It talks to the
// HTTP surface rather than the database so it exercises the same code paths
// as the web client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	authToken string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bookkeepctl",
		Short: "Operator CLI for the BookKeep API",
		Long: `bookkeepctl drives the BookKeep library-inventory API from the terminal:
check server health, browse and edit the book catalog, and inspect or claim
role assignments.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&serverURL, "server", envOrDefault("BKP_SERVER_URL", "http://localhost:5000"), "base URL of the BookKeep API")
	rootCmd.PersistentFlags().StringVar(&authToken, "token", os.Getenv("BKP_TOKEN"), "bearer token (when the server runs with auth enabled)")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newBooksCmd())
	rootCmd.AddCommand(newRoleCmd())
	rootCmd.AddCommand(newTokenCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := newAPIClient(serverURL, authToken)
			status, err := client.Health(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println(status)
			return nil
		},
	}
}
