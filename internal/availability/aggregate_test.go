package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

func TestAggregateBookings(t *testing.T) {
	d1 := date(2024, time.November, 8)
	d2 := date(2024, time.November, 9)

	bookings := []*domain.Booking{
		{ID: 1, BookingDate: d1, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: d1, StartTime: "10:00", Status: domain.StatusPending},
		{ID: 3, BookingDate: d1, StartTime: "10:40", Status: domain.StatusConfirmed},
		{ID: 4, BookingDate: d2, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 5, BookingDate: d1, StartTime: "10:00", Status: domain.StatusCancelled},
		{ID: 6, BookingDate: d1, StartTime: "12:40", Status: domain.StatusCompleted},
	}

	got := AggregateBookings(bookings)

	assert.Equal(t, 2, got[NewSlotKey(d1, "10:00")])
	assert.Equal(t, 1, got[NewSlotKey(d1, "10:40")])
	assert.Equal(t, 1, got[NewSlotKey(d2, "10:00")])

	// Terminal statuses never occupy capacity; absent pairs read as zero.
	assert.Zero(t, got[NewSlotKey(d1, "12:40")])
	assert.Zero(t, got[NewSlotKey(d2, "10:40")])
	assert.Len(t, got, 3)
}

func TestAggregateBookings_Stable(t *testing.T) {
	d := date(2024, time.November, 8)
	bookings := []*domain.Booking{
		{ID: 1, BookingDate: d, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: d, StartTime: "10:00", Status: domain.StatusConfirmed},
	}

	first := AggregateBookings(bookings)
	second := AggregateBookings(bookings)
	assert.Equal(t, first, second)
}

func TestAggregateBookings_Empty(t *testing.T) {
	got := AggregateBookings(nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
