package usecase

import (
	"context"
	"sync"
	"time"

	"clinic-scheduler/internal/domain/availability"
	"clinic-scheduler/internal/domain/calendar"
	"clinic-scheduler/internal/pkg/errs"
	"clinic-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

// SelectionService keeps the slot each signed-in user has picked in the
// calendar. Selections live in process memory only.
type SelectionService interface {
	Select(ctx context.Context, principal shared.Principal, slotID int64) (calendar.Selection, error)
	Current(ctx context.Context, principal shared.Principal) (calendar.Selection, error)
	Clear(principal shared.Principal)
}

type selectionServiceImpl struct {
	reads shared.AvailabilityReader
	loc   *time.Location

	mu         sync.Mutex
	selections map[uuid.UUID]calendar.Selection
}

func NewSelectionService(reads shared.AvailabilityReader, loc *time.Location) SelectionService {
	return &selectionServiceImpl{
		reads:      reads,
		loc:        loc,
		selections: make(map[uuid.UUID]calendar.Selection),
	}
}

func (s *selectionServiceImpl) Select(ctx context.Context, principal shared.Principal, slotID int64) (calendar.Selection, error) {
	slot, err := s.reads.SlotByID(ctx, slotID)
	if err != nil {
		return calendar.Selection{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	sel := s.selections[principal.UserID].Select(slot.In(s.loc))
	s.selections[principal.UserID] = sel
	return sel, nil
}

// Current re-reads the selected slot so a booking made elsewhere shows up
// as not bookable. A slot that disappeared clears the selection. A Select
// or Clear that lands during the re-read wins over the refreshed copy.
func (s *selectionServiceImpl) Current(ctx context.Context, principal shared.Principal) (calendar.Selection, error) {
	s.mu.Lock()
	sel, ok := s.selections[principal.UserID]
	s.mu.Unlock()
	if !ok || !sel.HasSelection() {
		return calendar.Selection{}, nil
	}

	cur, _ := sel.Current()
	fresh, err := s.reads.SlotByID(ctx, cur.ID())
	if err != nil && !errs.Is(err, availability.ErrSlotNotFound) {
		return calendar.Selection{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.selections[principal.UserID]
	if !holds(latest, cur.ID()) {
		return latest, nil
	}
	if err != nil {
		delete(s.selections, principal.UserID)
		return calendar.Selection{}, nil
	}
	latest = latest.Select(fresh.In(s.loc))
	s.selections[principal.UserID] = latest
	return latest, nil
}

func holds(sel calendar.Selection, slotID int64) bool {
	cur, ok := sel.Current()
	return ok && cur.ID() == slotID
}

func (s *selectionServiceImpl) Clear(principal shared.Principal) {
	s.mu.Lock()
	delete(s.selections, principal.UserID)
	s.mu.Unlock()
}
