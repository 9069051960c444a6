package get_day_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	return s.bookings, nil
}

type stubScheduleRepo struct {
	overrides []*domain.CapacityOverride
	blocks    []*domain.BlockedSlot
}

func (s *stubScheduleRepo) ListOverridesByRange(_ context.Context, _, _ time.Time) ([]*domain.CapacityOverride, error) {
	return s.overrides, nil
}

func (s *stubScheduleRepo) ListBlocksByRange(_ context.Context, _, _ time.Time) ([]*domain.BlockedSlot, error) {
	return s.blocks, nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDefaults() domain.WeekdayCapacities {
	return domain.WeekdayCapacities{
		time.Sunday:    3,
		time.Monday:    2,
		time.Tuesday:   2,
		time.Wednesday: 2,
		time.Thursday:  3,
		time.Friday:    3,
		time.Saturday:  3,
	}
}

func newTestUseCase(bookings *stubBookingRepo, schedule *stubScheduleRepo) *UseCase {
	uc := NewUseCase(
		bookings,
		schedule,
		[]types.TimeString{"10:00", "10:40"},
		testDefaults(),
		30,
		nopLogger{},
	)
	uc.timeProvider = fixedClock{now: time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_DayDetail(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC) // Monday, capacity 2
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BookingDate: date, StartTime: "10:00", Status: domain.StatusConfirmed},
	}}

	resp, err := newTestUseCase(bookings, &stubScheduleRepo{}).Execute(context.Background(), &Request{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, "2025-03-10", resp.Date)
	assert.Equal(t, "in_window", resp.Window)
	assert.Equal(t, "limited", resp.Status)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "10:00", resp.Slots[0].StartTime)
	assert.Equal(t, "limited", resp.Slots[0].Status)
	assert.Equal(t, 1, resp.Slots[0].Booked)
	assert.Equal(t, 1, resp.Slots[0].Remaining)

	assert.Equal(t, "10:40", resp.Slots[1].StartTime)
	assert.Equal(t, "available", resp.Slots[1].Status)
}

func TestExecute_BlockedDay(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	schedule := &stubScheduleRepo{blocks: []*domain.BlockedSlot{{ID: 1, Date: date}}}

	resp, err := newTestUseCase(&stubBookingRepo{}, schedule).Execute(context.Background(), &Request{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, "blocked", resp.Status)
	for _, s := range resp.Slots {
		assert.Equal(t, "blocked", s.Status)
		assert.Zero(t, s.Remaining)
	}
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{Date: "10.03.2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BeyondWindow(t *testing.T) {
	resp, err := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}).
		Execute(context.Background(), &Request{Date: "2025-05-01"})
	require.NoError(t, err)

	assert.Equal(t, "beyond_window", resp.Window)
	assert.Equal(t, "blocked", resp.Status)
}
