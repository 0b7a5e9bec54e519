// Package jobs runs the periodic maintenance commands.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"clinic-scheduler/internal/pkg/config"
	"clinic-scheduler/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const jobTimeout = time.Minute

type Scheduler struct {
	cron        *cron.Cron
	maintenance commands.MaintenanceCommands
	cfg         config.JobsConfig
	logger      *slog.Logger
}

func NewScheduler(maintenance commands.MaintenanceCommands, cfg config.JobsConfig, loc *time.Location, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(cron.WithLocation(loc)),
		maintenance: maintenance,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the jobs and starts the cron loop. A malformed spec
// fails Start.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.CompleteAppointmentsSpec, s.run("complete-appointments", s.maintenance.CompleteEndedAppointments)); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc(s.cfg.PruneSlotsSpec, s.run("prune-slots", s.maintenance.PruneExpiredSlots)); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("maintenance scheduler started", "entries", len(s.cron.Entries()))
	return nil
}

// Stop waits for running jobs or until ctx ends.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
	s.logger.Info("maintenance scheduler stopped")
}

func (s *Scheduler) run(name string, job func(context.Context) (int64, error)) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := job(ctx)
		if err != nil {
			s.logger.Error("maintenance job failed", "job", name, "error", err.Error())
			return
		}
		s.logger.Debug("maintenance job finished", "job", name, "affected", n)
	}
}
