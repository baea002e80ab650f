package game

import "time"

// Derived status/period display values. These come from wall-clock elapsed
// time only and are independent of the stored Period column, which changes
// through the operator PUT.
const (
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"

	DerivedFirstHalf  = "First Half"
	DerivedSecondHalf = "Second Half"
	DerivedFullTime   = "Full-Time"
)

// StatusPeriod is the result of the wall-clock derivation.
type StatusPeriod struct {
	Status string
	Period string
}

// CalculateGameStatusAndPeriod classifies a game purely from its scheduled
// start and the current time. It knows nothing about stoppage time, pauses
// or operator overrides. The 45 and 90 minute boundaries fall into the
// later bracket.
func CalculateGameStatusAndPeriod(start, now time.Time) StatusPeriod {
	if !now.After(start) {
		return StatusPeriod{Status: StatusScheduled}
	}

	elapsed := int(now.Sub(start).Minutes())
	switch {
	case elapsed < 45:
		return StatusPeriod{Status: StatusInProgress, Period: DerivedFirstHalf}
	case elapsed < 90:
		return StatusPeriod{Status: StatusInProgress, Period: DerivedSecondHalf}
	default:
		return StatusPeriod{Status: StatusCompleted, Period: DerivedFullTime}
	}
}
