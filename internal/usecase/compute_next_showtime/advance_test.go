package compute_next_showtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ShowtimeService/internal/domain"
	"github.com/m04kA/SMC-ShowtimeService/pkg/types"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name       string
		in         AdvanceInput
		wantTime   types.TimeString
		wantNext   time.Time
		wantRolled bool
	}{
		{
			name:     "no rounding",
			in:       AdvanceInput{Anchor: at(5, 14, 0), DurationMinutes: 90, GapMinutes: 10},
			wantTime: "15:40",
			wantNext: at(5, 15, 40),
		},
		{
			name:     "gap hours count as 60 minutes",
			in:       AdvanceInput{Anchor: at(5, 10, 0), DurationMinutes: 100, GapHours: 1, GapMinutes: 5},
			wantTime: "12:45",
			wantNext: at(5, 12, 45),
		},
		{
			name:     "round up to five",
			in:       AdvanceInput{Anchor: at(5, 10, 0), DurationMinutes: 97, Rounding: domain.RoundingFive},
			wantTime: "11:40",
			wantNext: at(5, 11, 40),
		},
		{
			name:     "round up to ten",
			in:       AdvanceInput{Anchor: at(5, 10, 0), DurationMinutes: 91, Rounding: domain.RoundingTen},
			wantTime: "11:40",
			wantNext: at(5, 11, 40),
		},
		{
			name:     "already on boundary stays",
			in:       AdvanceInput{Anchor: at(5, 10, 0), DurationMinutes: 120, Rounding: domain.RoundingTen},
			wantTime: "12:00",
			wantNext: at(5, 12, 0),
		},
		{
			name:     "raw addition crosses midnight",
			in:       AdvanceInput{Anchor: at(5, 23, 50), DurationMinutes: 100, Rounding: domain.RoundingFive},
			wantTime: "01:30",
			wantNext: at(6, 1, 30),
		},
		{
			name:     "raw addition crosses midnight without rounding",
			in:       AdvanceInput{Anchor: at(5, 23, 0), DurationMinutes: 90},
			wantTime: "00:30",
			wantNext: at(6, 0, 30),
		},
		{
			name:       "rounding pushes to 24:00",
			in:         AdvanceInput{Anchor: at(5, 22, 0), DurationMinutes: 118, Rounding: domain.RoundingFive},
			wantTime:   "00:00",
			wantNext:   at(6, 0, 0),
			wantRolled: true,
		},
		{
			name:       "ten minute rounding pushes to 24:00",
			in:         AdvanceInput{Anchor: at(5, 23, 0), DurationMinutes: 51, Rounding: domain.RoundingTen},
			wantTime:   "00:00",
			wantNext:   at(6, 0, 0),
			wantRolled: true,
		},
		{
			name:     "no rounding keeps odd minutes",
			in:       AdvanceInput{Anchor: at(5, 22, 0), DurationMinutes: 118},
			wantTime: "23:58",
			wantNext: at(5, 23, 58),
		},
		{
			name:     "zero shift",
			in:       AdvanceInput{Anchor: at(5, 9, 3), Rounding: domain.RoundingNone},
			wantTime: "09:03",
			wantNext: at(5, 9, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.in)

			assert.Equal(t, tt.wantTime, got.Time)
			assert.True(t, tt.wantNext.Equal(got.Next), "next: want %s, got %s", tt.wantNext, got.Next)
			assert.Equal(t, tt.wantRolled, got.DateRolledOver)
		})
	}
}

func TestAdvance_RoundingProducesMultiples(t *testing.T) {
	modes := []domain.RoundingMode{domain.RoundingFive, domain.RoundingTen}

	for _, mode := range modes {
		for duration := 0; duration < 24*60; duration += 7 {
			got := Advance(AdvanceInput{
				Anchor:          at(5, 13, 17),
				DurationMinutes: duration,
				GapMinutes:      3,
				Rounding:        mode,
			})

			assert.Zero(t, got.Time.Minute()%mode.Step(), "mode=%d duration=%d time=%s", mode, duration, got.Time)
			assert.NoError(t, got.Time.Validate())
		}
	}
}
