package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGameStatusAndPeriod(t *testing.T) {
	now := time.Date(2026, 3, 14, 16, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		start      time.Time
		wantStatus string
		wantPeriod string
	}{
		{
			name:       "start in the future",
			start:      now.Add(2 * time.Hour),
			wantStatus: StatusScheduled,
			wantPeriod: "",
		},
		{
			name:       "start equals now",
			start:      now,
			wantStatus: StatusScheduled,
			wantPeriod: "",
		},
		{
			name:       "44 minutes in",
			start:      now.Add(-44 * time.Minute),
			wantStatus: StatusInProgress,
			wantPeriod: DerivedFirstHalf,
		},
		{
			name:       "exactly 45 minutes in",
			start:      now.Add(-45 * time.Minute),
			wantStatus: StatusInProgress,
			wantPeriod: DerivedSecondHalf,
		},
		{
			name:       "89 minutes in",
			start:      now.Add(-89 * time.Minute),
			wantStatus: StatusInProgress,
			wantPeriod: DerivedSecondHalf,
		},
		{
			name:       "exactly 90 minutes in",
			start:      now.Add(-90 * time.Minute),
			wantStatus: StatusCompleted,
			wantPeriod: DerivedFullTime,
		},
		{
			name:       "hours after the final whistle",
			start:      now.Add(-5 * time.Hour),
			wantStatus: StatusCompleted,
			wantPeriod: DerivedFullTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateGameStatusAndPeriod(tt.start, now)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantPeriod, got.Period)
		})
	}
}

func TestValidPeriodTransition(t *testing.T) {
	for _, p := range []Period{PeriodFirst, PeriodHalftime, PeriodSecond, PeriodFulltime} {
		assert.True(t, ValidPeriodTransition(p), "period %q should be accepted", p)
	}
	for _, p := range []Period{PeriodPending, "", "paused", "extra-time"} {
		assert.False(t, ValidPeriodTransition(p), "period %q should be rejected", p)
	}
}
