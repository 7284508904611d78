package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"land-marketplace-service/cmd/api/app"
	"land-marketplace-service/cmd/api/server"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and gRPC servers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		RunE: func(*cobra.Command, []string) error {
			return app.Migrate(configPath)
		},
	}

	root := &cobra.Command{
		Use:           "landsvc",
		Short:         "Land marketplace backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serveCmd.RunE,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "directory containing app.env (defaults to $CONFIG_PATH or .)")
	root.AddCommand(serveCmd, migrateCmd)

	return root
}

func serve(ctx context.Context, configPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := server.WithSignal(ctx)
	defer stop()

	a, err := app.New(configPath)
	if err != nil {
		return fmt.Errorf("application exited with error: %w", err)
	}

	return a.Run(ctx)
}
