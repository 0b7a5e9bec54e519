// Package migrate applies the SQL migrations with the atlas CLI.
package migrate

import (
	"context"
	"log/slog"

	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

type Migrator struct {
	client *atlasexec.Client
	dbURL  string
	dirURL string
	logger *slog.Logger
}

func NewMigrator(cfg config.Config, logger *slog.Logger) (*Migrator, error) {
	client, err := atlasexec.NewClient(".", cfg.Migration.AtlasBin)
	if err != nil {
		return nil, errs.Wrap(err, "init atlas client")
	}
	return &Migrator{
		client: client,
		dbURL:  cfg.DB.BuildDSN(),
		dirURL: cfg.Migration.DirURL,
		logger: logger,
	}, nil
}

// Up applies every pending migration and returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	res, err := m.client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    m.dbURL,
		DirURL: m.dirURL,
	})
	if err != nil {
		return 0, errs.Wrap(err, "apply migrations")
	}
	m.logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return len(res.Applied), nil
}

type Status struct {
	Current string
	Next    string
	Pending int
}

func (m *Migrator) Status(ctx context.Context) (*Status, error) {
	res, err := m.client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
		URL:    m.dbURL,
		DirURL: m.dirURL,
	})
	if err != nil {
		return nil, errs.Wrap(err, "read migration status")
	}
	return &Status{
		Current: res.Current,
		Next:    res.Next,
		Pending: len(res.Pending),
	}, nil
}
