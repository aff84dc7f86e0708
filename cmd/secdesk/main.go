package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"secdesk/internal/interfaces/cli/importcmd"
	"secdesk/internal/interfaces/cli/migrate"
	"secdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "secdesk",
		Short: "secdesk - security incident and ticket tracking service",
		Long:  `secdesk is a service for tracking security incidents, support tickets, and datasets, with user accounts and CSV-based seeding.`,
	}

	rootCmd.AddCommand(server.NewCommand())
	rootCmd.AddCommand(migrate.NewCommand())
	rootCmd.AddCommand(importcmd.NewCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
