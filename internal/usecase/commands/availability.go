package commands

import (
	"context"
	"log/slog"
	"slices"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/doctor"
	"clinic-scheduler/internal/pkg/clock"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"
)

type RegenerateMonthInput struct {
	ProviderID int64
	Month      availability.Month
	Template   availability.Template
}

type RegenerateMonthResult struct {
	ProviderID      int64
	Month           string
	Created         int
	PreservedBooked int
	// Slots is every slot of the provider month after regeneration.
	Slots []availability.Slot
}

type AvailabilityCommands interface {
	RegenerateMonth(ctx context.Context, in RegenerateMonthInput) (*RegenerateMonthResult, error)
}

type availabilityCommandsImpl struct {
	uow       shared.UnitOfWork
	reads     shared.AvailabilityReader
	events    shared.EventPublisher
	clock     clock.Clock
	horizon   availability.Horizon
	generator availability.Generator
}

func NewAvailabilityCommands(
	uow shared.UnitOfWork,
	reads shared.AvailabilityReader,
	events shared.EventPublisher,
	clk clock.Clock,
	horizon availability.Horizon,
	generator availability.Generator,
) AvailabilityCommands {
	return &availabilityCommandsImpl{
		uow:       uow,
		reads:     reads,
		events:    events,
		clock:     clk,
		horizon:   horizon,
		generator: generator,
	}
}

// RegenerateMonth replaces the unbooked slots of one provider month with
// the expansion of the template. Booked slots are kept and generated
// candidates that start at the same instant are skipped.
func (uc *availabilityCommandsImpl) RegenerateMonth(ctx context.Context, in RegenerateMonthInput) (*RegenerateMonthResult, error) {
	if in.Template.IsZero() {
		return nil, errs.Wrap(availability.ErrInvalidTemplate, "template is required")
	}
	if in.Month.IsZero() {
		return nil, availability.ErrInvalidMonth
	}

	exists, err := uc.reads.DoctorExists(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.Wrapf(doctor.ErrNotFound, "provider %d", in.ProviderID)
	}

	now := uc.clock.Now()
	if err := uc.horizon.Check(in.Month, now); err != nil {
		return nil, err
	}

	label := in.Month.Label()
	var result *RegenerateMonthResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockProviderMonth(ctx, in.ProviderID, label); err != nil {
			return err
		}

		if _, err := tx.Slots().DeleteUnbookedInMonth(ctx, in.ProviderID, label); err != nil {
			return err
		}

		survivors, err := tx.Slots().ListInMonth(ctx, in.ProviderID, label)
		if err != nil {
			return err
		}

		taken := make(map[availability.SlotKey]struct{}, len(survivors))
		for _, s := range survivors {
			taken[s.Key()] = struct{}{}
		}

		slots := slices.Clone(survivors)
		created := 0
		for candidate := range uc.generator.Month(in.Month, in.Template, in.ProviderID) {
			if _, dup := taken[candidate.Key()]; dup {
				continue
			}
			saved, err := tx.Slots().Insert(ctx, candidate)
			if err != nil {
				return err
			}
			taken[saved.Key()] = struct{}{}
			slots = append(slots, saved)
			created++
		}

		err = tx.Templates().Upsert(ctx, availability.MonthTemplate{
			ProviderID: in.ProviderID,
			Month:      label,
			Template:   in.Template,
			UpdatedAt:  now,
		})
		if err != nil {
			return err
		}

		slices.SortFunc(slots, availability.CompareByStart)
		result = &RegenerateMonthResult{
			ProviderID:      in.ProviderID,
			Month:           label,
			Created:         created,
			PreservedBooked: len(survivors),
			Slots:           slots,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Regenerated provider month",
		"provider_id", in.ProviderID,
		"month", label,
		"created", result.Created,
		"preserved", result.PreservedBooked)

	uc.events.Publish(ctx, shared.Event{
		Type:      shared.EventSlotsRegenerated,
		Timestamp: now,
		Payload: shared.SlotsRegeneratedPayload{
			ProviderID:      result.ProviderID,
			Month:           result.Month,
			Created:         result.Created,
			PreservedBooked: result.PreservedBooked,
		},
	})

	return result, nil
}
