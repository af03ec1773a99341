package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
)

// FreeSlotDTO is a data transfer object for a free interval.
type FreeSlotDTO struct {
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
}

// FreeSlotsQuery contains the parameters for finding free slots.
type FreeSlotsQuery struct {
	Day         domain.Day
	MinDuration time.Duration
}

// FreeSlotsHandler handles the FreeSlotsQuery.
type FreeSlotsHandler struct {
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
	now           func() time.Time
}

// NewFreeSlotsHandler creates a new FreeSlotsHandler.
func NewFreeSlotsHandler(timetableRepo domain.TimetableRepository, eng *engine.Engine) *FreeSlotsHandler {
	return &FreeSlotsHandler{
		timetableRepo: timetableRepo,
		engine:        eng,
		now:           time.Now,
	}
}

// Handle executes the FreeSlotsQuery against the stored timetable.
func (h *FreeSlotsHandler) Handle(ctx context.Context, query FreeSlotsQuery) ([]FreeSlotDTO, error) {
	tt, err := h.timetableRepo.FindByDay(ctx, query.Day)
	if err != nil {
		return nil, err
	}

	slots := h.engine.FreeSlots(tt, query.Day, query.MinDuration, h.now())

	out := make([]FreeSlotDTO, len(slots))
	for i, s := range slots {
		out[i] = FreeSlotDTO{
			StartTime:   s.Start,
			EndTime:     s.End,
			DurationMin: int(s.Duration().Minutes()),
		}
	}
	return out, nil
}
