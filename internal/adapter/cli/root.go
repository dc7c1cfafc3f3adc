package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand builds the service CLI. Running it without a subcommand serves the API.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "autocare-api",
		Short:         "Vehicle-service job lifecycle API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewMigrateCommand())
	cmd.AddCommand(NewTokenCommand())

	return cmd
}
