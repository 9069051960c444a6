package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func TestClassifyWindow(t *testing.T) {
	today := date(2024, time.November, 8)

	tests := []struct {
		name       string
		date       time.Time
		windowDays int
		want       domain.WindowClass
	}{
		{name: "yesterday is past", date: date(2024, time.November, 7), windowDays: 30, want: domain.WindowPast},
		{name: "today is in window", date: today, windowDays: 30, want: domain.WindowIn},
		{name: "tomorrow is in window", date: date(2024, time.November, 9), windowDays: 30, want: domain.WindowIn},
		{name: "window boundary is inclusive", date: date(2024, time.December, 8), windowDays: 30, want: domain.WindowIn},
		{name: "one past the boundary is beyond", date: date(2024, time.December, 9), windowDays: 30, want: domain.WindowBeyond},
		{name: "far future is beyond", date: date(2025, time.June, 1), windowDays: 30, want: domain.WindowBeyond},
		{name: "zero-day window keeps only today", date: date(2024, time.November, 9), windowDays: 0, want: domain.WindowBeyond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWindow(tt.date, today, tt.windowDays))
		})
	}
}

func TestClassifyWindow_IgnoresTimeOfDay(t *testing.T) {
	// A late-evening "today" must not push the morning of the same date
	// into the past.
	today := time.Date(2024, 11, 8, 23, 30, 0, 0, time.UTC)
	sameDay := time.Date(2024, 11, 8, 8, 0, 0, 0, time.UTC)

	assert.Equal(t, domain.WindowIn, ClassifyWindow(sameDay, today, 14))
}
