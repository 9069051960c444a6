package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func pts(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to completed skips confirmation", from: StatusPending, to: StatusCompleted, want: false},
		{name: "confirmed to completed", from: StatusConfirmed, to: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, to: StatusCancelled, want: true},
		{name: "confirmed back to pending", from: StatusConfirmed, to: StatusPending, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusConfirmed, want: false},
		{name: "cancelled cannot be re-cancelled", from: StatusCancelled, to: StatusCancelled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.to))
		})
	}
}

func TestBooking_OccupiesCapacity(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).OccupiesCapacity())
	assert.True(t, (&Booking{Status: StatusConfirmed}).OccupiesCapacity())
	assert.False(t, (&Booking{Status: StatusCompleted}).OccupiesCapacity())
	assert.False(t, (&Booking{Status: StatusCancelled}).OccupiesCapacity())
}

func TestBooking_StartsAt(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
	}
	assert.Equal(t, time.Date(2024, 11, 8, 14, 0, 0, 0, time.UTC), b.StartsAt())
}

func TestBooking_WithinCancellationCutoff(t *testing.T) {
	b := &Booking{
		BookingDate: time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC),
		StartTime:   "14:00",
		Status:      StatusConfirmed,
	}

	// 4 hours before start, cutoff 3h: still cancellable.
	now := time.Date(2024, 11, 8, 10, 0, 0, 0, time.UTC)
	assert.True(t, b.WithinCancellationCutoff(now, 3))

	// Exactly at the cutoff boundary: still cancellable.
	now = time.Date(2024, 11, 8, 11, 0, 0, 0, time.UTC)
	assert.True(t, b.WithinCancellationCutoff(now, 3))

	// 2 hours before start, cutoff 3h: too late.
	now = time.Date(2024, 11, 8, 12, 0, 0, 0, time.UTC)
	assert.False(t, b.WithinCancellationCutoff(now, 3))
}

func TestBlockedSlot_Covers(t *testing.T) {
	date := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	slot := pts("14:00")

	fullDay := &BlockedSlot{Date: date}
	assert.True(t, fullDay.IsFullDay())
	assert.True(t, fullDay.Covers(date, "10:00"))
	assert.True(t, fullDay.Covers(date, "14:00"))
	assert.False(t, fullDay.Covers(date.AddDate(0, 0, 1), "10:00"))

	slotLevel := &BlockedSlot{Date: date, StartTime: slot}
	assert.False(t, slotLevel.IsFullDay())
	assert.True(t, slotLevel.Covers(date, "14:00"))
	assert.False(t, slotLevel.Covers(date, "10:00"))
}
