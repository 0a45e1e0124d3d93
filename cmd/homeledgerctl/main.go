package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"homeledger/internal/config"
	"homeledger/internal/database"
	"homeledger/internal/logger"
	"homeledger/internal/services"

	"github.com/spf13/cobra"
)

var (
	migrationsDir string
	batchSize     int

	rootCmd = &cobra.Command{
		Use:           "homeledgerctl",
		Short:         "Operational commands for the HomeLedger database",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Init(os.Getenv("ENV"))
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back SQL migrations",
	}

	migrateUpCmd = &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				if err := m.Up(); err != nil {
					return err
				}
				logger.Get().Info("Migrations applied successfully")
				return nil
			})
		},
	}

	migrateDownCmd = &cobra.Command{
		Use:   "down [N]",
		Short: "Roll back N migrations (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n < 1 {
					return fmt.Errorf("invalid step count %q", args[0])
				}
				steps = n
			}
			return withMigrator(func(m *database.Migrator) error {
				if err := m.Down(steps); err != nil {
					return err
				}
				logger.Get().Infof("Rolled back %d migration(s)", steps)
				return nil
			})
		},
	}

	migrateVersionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return fmt.Errorf("failed to get version: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty: %v)\n", version, dirty)
				return nil
			})
		},
	}

	backfillCmd = &cobra.Command{
		Use:   "backfill-home-ids",
		Short: "Fill in missing purchase home ids from their areas and rooms",
		Long: `backfill-home-ids walks live purchases without a home and sets the home
their areas and rooms point to. Purchases whose items point at more than one
home are reported as ambiguous and left alone. It is safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			dbManager, err := database.NewManager(database.NewConfig(cfg))
			if err != nil {
				return err
			}
			defer dbManager.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := services.NewBackfillService(dbManager.DB(), nil)
			res, err := svc.BackfillHomeIDs(ctx, batchSize)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "updated:   %d\nskipped:   %d\nambiguous: %d\nfailed:    %d\n",
				res.Updated, res.Skipped, res.Ambiguous, res.Failed)
			for _, id := range res.AmbiguousIDs {
				fmt.Fprintf(out, "ambiguous purchase %s\n", id)
			}
			for _, id := range res.FailedIDs {
				fmt.Fprintf(out, "failed purchase %s\n", id)
			}
			if res.Failed > 0 {
				return fmt.Errorf("%d purchase(s) could not be updated", res.Failed)
			}
			return nil
		},
	}
)

func withMigrator(fn func(*database.Migrator) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	m, err := database.NewMigrator(database.NewConfig(cfg).URL(), migrationsDir)
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func init() {
	migrateCmd.PersistentFlags().StringVar(&migrationsDir, "dir", database.DefaultMigrationsDir, "Directory holding the SQL migrations")
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)

	backfillCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Purchases per batch (0 uses the service default)")

	rootCmd.AddCommand(migrateCmd, backfillCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Sync()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
