package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/dayplan/internal/timetable/domain"
	"github.com/felixgeelhaar/dayplan/internal/timetable/engine"
	"github.com/google/uuid"
)

// TimeBlockDTO is a data transfer object for timetable blocks.
type TimeBlockDTO struct {
	ID          uuid.UUID
	BlockType   string
	TaskID      uuid.UUID
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	DurationMin int
	Fixed       bool
}

// TimetableDTO is a data transfer object for a day's timetable.
type TimetableDTO struct {
	Day            domain.Day
	Blocks         []TimeBlockDTO
	TaskCount      int
	BreakCount     int
	UtilizationPct int
}

// GetTimetableQuery contains the parameters for getting a stored timetable.
type GetTimetableQuery struct {
	Day domain.Day
}

// GetTimetableHandler handles the GetTimetableQuery.
type GetTimetableHandler struct {
	timetableRepo domain.TimetableRepository
	engine        *engine.Engine
}

// NewGetTimetableHandler creates a new GetTimetableHandler.
func NewGetTimetableHandler(timetableRepo domain.TimetableRepository, eng *engine.Engine) *GetTimetableHandler {
	return &GetTimetableHandler{timetableRepo: timetableRepo, engine: eng}
}

// Handle executes the GetTimetableQuery. A day with no stored timetable
// yields an empty DTO rather than an error.
func (h *GetTimetableHandler) Handle(ctx context.Context, query GetTimetableQuery) (*TimetableDTO, error) {
	tt, err := h.timetableRepo.FindByDay(ctx, query.Day)
	if err != nil {
		return nil, err
	}
	return h.toTimetableDTO(query.Day, tt), nil
}

func (h *GetTimetableHandler) toTimetableDTO(day domain.Day, tt domain.Timetable) *TimetableDTO {
	blocks := make([]TimeBlockDTO, len(tt))
	taskCount := 0
	breakCount := 0

	for i, b := range tt {
		blocks[i] = TimeBlockDTO{
			ID:          b.ID,
			BlockType:   string(b.Type),
			TaskID:      b.TaskID,
			Title:       b.Title,
			StartTime:   b.Start,
			EndTime:     b.End,
			DurationMin: int(b.End.Sub(b.Start).Minutes()),
			Fixed:       b.Fixed,
		}
		switch b.Type {
		case domain.BlockTypeTask:
			taskCount++
		case domain.BlockTypeBreak:
			breakCount++
		}
	}

	return &TimetableDTO{
		Day:            day,
		Blocks:         blocks,
		TaskCount:      taskCount,
		BreakCount:     breakCount,
		UtilizationPct: int(h.engine.Utilization(tt)),
	}
}
