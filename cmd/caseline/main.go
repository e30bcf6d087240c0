package main

import (
	"os"

	"github.com/spf13/cobra"

	"caseline/internal/interfaces/cli/migrate"
	"caseline/internal/interfaces/cli/server"
	"caseline/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "caseline",
		Short: "Caseline - case management backend",
		Long:  `Caseline is the backend service for the case management platform: profiles, tickets, and notifications.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
