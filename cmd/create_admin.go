package main

import (
	"context"
	"fmt"
	"time"

	"clinic-scheduler/cmd/bootstrap"
	"clinic-scheduler/internal/usecase/commands"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func createAdminCmd() *cobra.Command {
	var in commands.CreateAdminInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var authCmds commands.AuthCommands
			app := fx.New(
				bootstrap.CoreModule,
				fx.Populate(&authCmds),
				fx.NopLogger,
			)

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := app.Start(ctx); err != nil {
				return fmt.Errorf("failed to start application: %w", err)
			}
			defer func() { _ = app.Stop(context.Background()) }()

			id, err := authCmds.CreateAdmin(ctx, in)
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}

			fmt.Printf("Created admin %s (%s)\n", in.Email, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&in.Email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&in.Password, "password", "", "Admin password")
	cmd.Flags().StringVar(&in.Name, "name", "Administrator", "Display name of the admin's doctor profile")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
