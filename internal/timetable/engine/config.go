package engine

import "time"

// Config contains the scheduling policy knobs. The defaults mirror the
// planner's standing behavior; callers may tune them, the engine treats
// every value as policy rather than physical law.
type Config struct {
	// DayStart and DayEnd are offsets from midnight bounding the working
	// window.
	DayStart time.Duration
	DayEnd   time.Duration

	// Granule is the discretization unit for slot search.
	Granule time.Duration

	// LeadTime is how far past "now" the window start is pushed when
	// generating for the current day, before rounding up to a granule.
	LeadTime time.Duration

	// FocusLimit is the continuous work accumulated before the allocator
	// demands a gap; RecoveryFocus is the accumulation that demands the
	// longer gap.
	FocusLimit    time.Duration
	RecoveryFocus time.Duration
	MinGap        time.Duration
	RecoveryGap   time.Duration

	// Break insertion thresholds.
	ShortBreak         time.Duration
	LongBreak          time.Duration
	RestBreak          time.Duration
	ShortBreakMinWork  time.Duration // earlier task length warranting a short break
	NaturalResetGap    time.Duration // a gap this large resets continuous work on its own
	LongBreakFocus     time.Duration // continuous work warranting a long break

	// Recurrence lookahead for conflict clearing when a block is added.
	DailyLookaheadDays  int
	WeeklyLookaheadDays int

	Scoring ScoringConfig
}

// ScoringConfig holds the prioritizer weights. Priority and category
// weights live on their value objects; these are the deadline tiers and
// the length penalty.
type ScoringConfig struct {
	UrgentWindow  time.Duration // deadline within this → UrgentWeight
	SoonWindow    time.Duration
	WeekWindow    time.Duration
	UrgentWeight  int
	SoonWeight    int
	WeekWeight    int
	DistantWeight int

	LongTask        time.Duration // above this → LongPenalty
	VeryLongTask    time.Duration // above this → VeryLongPenalty
	LongPenalty     int
	VeryLongPenalty int
}

// DefaultConfig returns the standing policy: a 06:00–23:00 working window,
// 15-minute granules, and the recovery heuristics described in the README.
func DefaultConfig() Config {
	return Config{
		DayStart: 6 * time.Hour,
		DayEnd:   23 * time.Hour,

		Granule:  15 * time.Minute,
		LeadTime: 15 * time.Minute,

		FocusLimit:    90 * time.Minute,
		RecoveryFocus: 120 * time.Minute,
		MinGap:        15 * time.Minute,
		RecoveryGap:   30 * time.Minute,

		ShortBreak:        15 * time.Minute,
		LongBreak:         30 * time.Minute,
		RestBreak:         15 * time.Minute,
		ShortBreakMinWork: 45 * time.Minute,
		NaturalResetGap:   60 * time.Minute,
		LongBreakFocus:    90 * time.Minute,

		DailyLookaheadDays:  7,
		WeeklyLookaheadDays: 28,

		Scoring: ScoringConfig{
			UrgentWindow:  24 * time.Hour,
			SoonWindow:    48 * time.Hour,
			WeekWindow:    168 * time.Hour,
			UrgentWeight:  80,
			SoonWeight:    60,
			WeekWeight:    40,
			DistantWeight: 15,

			LongTask:        120 * time.Minute,
			VeryLongTask:    180 * time.Minute,
			LongPenalty:     10,
			VeryLongPenalty: 15,
		},
	}
}
