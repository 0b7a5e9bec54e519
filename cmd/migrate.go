package main

import (
	"context"
	"fmt"

	"clinic-scheduler/cmd/bootstrap"
	"clinic-scheduler/internal/infra/migrate"
	"clinic-scheduler/internal/pkg/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	// migrate up
	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator(cmd)
			if err != nil {
				return err
			}

			count, err := migrator.Up(context.Background())
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "", "Migration directory URL (overrides MIGRATIONS_DIR_URL)")
	cmd.AddCommand(upCmd)

	// migrate status
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			migrator, err := newMigrator(cmd)
			if err != nil {
				return err
			}

			st, err := migrator.Status(context.Background())
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-20s %s\n", "CURRENT", st.Current)
			fmt.Printf("%-20s %s\n", "NEXT", st.Next)
			fmt.Printf("%-20s %d\n", "PENDING", st.Pending)
			return nil
		},
	}
	statusCmd.Flags().String("dir", "", "Migration directory URL (overrides MIGRATIONS_DIR_URL)")
	cmd.AddCommand(statusCmd)

	return cmd
}

func newMigrator(cmd *cobra.Command) (*migrate.Migrator, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
		cfg.Migration.DirURL = dir
	}
	return migrate.NewMigrator(cfg, bootstrap.NewLogger(cfg))
}
