package get_month_availability

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

func dayByDate(t *testing.T, resp *Response, date string) DayResponse {
	t.Helper()
	for _, d := range resp.Days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("day %s not found in grid", date)
	return DayResponse{}
}

func TestExecute_MonthGrid(t *testing.T) {
	resp, err := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{}).
		Execute(context.Background(), &Request{Month: "2025-03"})
	require.NoError(t, err)

	assert.Equal(t, "2025-03", resp.Month)

	// Март 2025: сетка с воскресенья 23 февраля по субботу 5 апреля
	require.Len(t, resp.Days, 42)
	assert.Zero(t, len(resp.Days)%7)

	first := resp.Days[0]
	assert.Equal(t, "2025-02-23", first.Date)
	assert.True(t, first.OutsideMonth)
	assert.Equal(t, "past", first.Window)
	assert.Equal(t, "blocked", first.Status)

	last := resp.Days[len(resp.Days)-1]
	assert.Equal(t, "2025-04-05", last.Date)
	assert.True(t, last.OutsideMonth)
	assert.Equal(t, "beyond_window", last.Window)
	assert.Equal(t, "blocked", last.Status)

	today := dayByDate(t, resp, "2025-03-01")
	assert.False(t, today.OutsideMonth)
	assert.Equal(t, "in_window", today.Window)

	// Окно в 30 дней включает последний день месяца
	assert.Equal(t, "in_window", dayByDate(t, resp, "2025-03-31").Window)
	assert.Equal(t, "beyond_window", dayByDate(t, resp, "2025-04-01").Window)
}

func TestExecute_BookedAndBlockedDays(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC) // capacity 2
	bookings := &stubBookingRepo{bookings: []*domain.Booking{
		{ID: 1, BookingDate: monday, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: monday, StartTime: "10:00", Status: domain.StatusPending},
	}}
	schedule := &stubScheduleRepo{blocks: []*domain.BlockedSlot{
		{ID: 1, Date: time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)},
	}}

	resp, err := newTestUseCase(bookings, schedule).
		Execute(context.Background(), &Request{Month: "2025-03"})
	require.NoError(t, err)

	// Один слот занят полностью, второй свободен - день деградирует до limited
	monday10 := dayByDate(t, resp, "2025-03-10")
	assert.Equal(t, "limited", monday10.Status)

	// Каждый день несёт послотовую детализацию
	require.Len(t, monday10.Slots, 2)
	assert.Equal(t, "10:00", monday10.Slots[0].StartTime)
	assert.Equal(t, "full", monday10.Slots[0].Status)
	assert.Equal(t, 2, monday10.Slots[0].Booked)
	assert.Zero(t, monday10.Slots[0].Remaining)
	assert.Equal(t, "10:40", monday10.Slots[1].StartTime)
	assert.Equal(t, "available", monday10.Slots[1].Status)
	assert.Equal(t, 2, monday10.Slots[1].Remaining)

	// Блокировка всего дня
	blocked := dayByDate(t, resp, "2025-03-12")
	assert.Equal(t, "blocked", blocked.Status)
	require.Len(t, blocked.Slots, 2)
	for _, s := range blocked.Slots {
		assert.Equal(t, "blocked", s.Status)
		assert.Zero(t, s.Remaining)
	}

	// Соседний день без записей открыт
	assert.Equal(t, "available", dayByDate(t, resp, "2025-03-11").Status)
}

func TestExecute_InvalidMonth(t *testing.T) {
	uc := newTestUseCase(&stubBookingRepo{}, &stubScheduleRepo{})

	_, err := uc.Execute(context.Background(), &Request{Month: "03.2025"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
