package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberService/internal/service/bookings/models"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// stubRepo минимальная заглушка репозитория записей
type stubRepo struct {
	bookings map[int64]*domain.Booking

	cancelled      []int64
	statusUpdates  map[int64]domain.BookingStatus
	lastFilter     domain.BookingsFilter
	filterBookings []*domain.Booking
}

func newStubRepo(bookings ...*domain.Booking) *stubRepo {
	m := make(map[int64]*domain.Booking)
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &stubRepo{bookings: m, statusUpdates: make(map[int64]domain.BookingStatus)}
}

func (s *stubRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.bookings[b.ID] = b
	return b, nil
}

func (s *stubRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (s *stubRepo) GetByCustomerID(_ context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if b.CustomerID != customerID {
			continue
		}
		if status != nil && b.Status != *status {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *stubRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	s.lastFilter = filter
	return s.filterBookings, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.statusUpdates[id] = status
	return nil
}

func (s *stubRepo) Cancel(_ context.Context, id int64, _ int64, _ string) error {
	if _, ok := s.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

// stubAdmins считает администратором только пользователя 99
type stubAdmins struct{}

func (stubAdmins) IsAdmin(userID int64) bool { return userID == 99 }

// fixedClock возвращает фиксированное время
type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// nopLogger глушит логирование в тестах
type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(repo *stubRepo, now time.Time) *Service {
	return NewService(repo, stubAdmins{}, fixedClock{now: now}, 3, nopLogger{})
}

func confirmedBooking(id, customerID int64, date time.Time, slot string) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		TicketRef:   "TCK-TEST",
		CustomerID:  customerID,
		BookingDate: date,
		StartTime:   types.TimeString(slot),
		Status:      domain.StatusConfirmed,
	}
}

func TestGetByID_AccessControl(t *testing.T) {
	booking := confirmedBooking(1, 10, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), "10:00")
	svc := newTestService(newStubRepo(booking), time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC))

	t.Run("owner can read own booking", func(t *testing.T) {
		got, err := svc.GetByID(context.Background(), 1, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 99)
		require.NoError(t, err)
	})

	t.Run("stranger is denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, 42)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 777, 10)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestCancel_CutoffRules(t *testing.T) {
	bookingDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	t.Run("customer cancels well before cutoff", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "14:00"))
		svc := newTestService(repo, time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 10, CancellationReason: "plans changed"})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("customer blocked inside cutoff", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "14:00"))
		svc := newTestService(repo, time.Date(2025, time.March, 10, 12, 30, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 10})
		assert.ErrorIs(t, err, ErrCancellationCutoff)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("boundary is exactly allowed", func(t *testing.T) {
		// Ровно за 3 часа до начала - отмена ещё возможна.
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "14:00"))
		svc := newTestService(repo, time.Date(2025, time.March, 10, 11, 0, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 10})
		require.NoError(t, err)
	})

	t.Run("admin ignores cutoff", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "14:00"))
		svc := newTestService(repo, time.Date(2025, time.March, 10, 13, 55, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 99, CancellationReason: "barber sick"})
		require.NoError(t, err)
		assert.Equal(t, []int64{1}, repo.cancelled)
	})

	t.Run("stranger cannot cancel", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "14:00"))
		svc := newTestService(repo, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 42})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("terminal booking cannot be cancelled", func(t *testing.T) {
		b := confirmedBooking(1, 10, bookingDate, "14:00")
		b.Status = domain.StatusCompleted
		repo := newStubRepo(b)
		svc := newTestService(repo, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

		err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: 10})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	bookingDate := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	t.Run("admin confirms pending booking", func(t *testing.T) {
		b := confirmedBooking(1, 10, bookingDate, "10:00")
		b.Status = domain.StatusPending
		repo := newStubRepo(b)
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 99, Status: "confirmed"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])
	})

	t.Run("non-admin is denied", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "10:00"))
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 10, Status: "completed"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("illegal transition rejected", func(t *testing.T) {
		b := confirmedBooking(1, 10, bookingDate, "10:00")
		b.Status = domain.StatusCompleted
		repo := newStubRepo(b)
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 99, Status: "confirmed"})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		repo := newStubRepo(confirmedBooking(1, 10, bookingDate, "10:00"))
		svc := newTestService(repo, now)

		err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{UserID: 99, Status: "no_show"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetDayBookings_AdminOnly(t *testing.T) {
	date := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	repo := newStubRepo()
	repo.filterBookings = []*domain.Booking{confirmedBooking(1, 10, date, "10:00")}
	svc := newTestService(repo, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))

	t.Run("non-admin denied", func(t *testing.T) {
		_, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{UserID: 10, Date: date})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin gets single-date filter", func(t *testing.T) {
		resp, err := svc.GetDayBookings(context.Background(), &models.GetDayBookingsRequest{UserID: 99, Date: date})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)
		require.NotNil(t, repo.lastFilter.StartDate)
		require.NotNil(t, repo.lastFilter.EndDate)
		assert.True(t, repo.lastFilter.StartDate.Equal(*repo.lastFilter.EndDate))
	})
}
