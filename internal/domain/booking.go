package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a chair appointment in the shop
type Booking struct {
	ID          int64
	TicketRef   string // public reference exposed to customers and the admin console
	CustomerID  int64
	BookingDate time.Time
	StartTime   types.TimeString
	Status      BookingStatus

	// Denormalized data for history
	CustomerName string
	ServiceName  string
	Notes        *string

	CancellationReason *string
	CancelledBy        *int64
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity returns true if the booking counts toward slot occupancy.
// Completed and cancelled bookings never occupy a seat.
func (b *Booking) OccupiesCapacity() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking is in a cancellable state
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking reached a final state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanTransitionTo validates a status transition against the booking
// state machine: pending -> confirmed -> completed, with cancellation
// allowed from pending and confirmed. Terminal states accept nothing.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// StartsAt combines the booking date and slot time into a single moment
// in the booking date's location.
func (b *Booking) StartsAt() time.Time {
	t, err := time.Parse(TimeFormat, b.StartTime.String())
	if err != nil {
		// Malformed slot time: fall back to midnight of the booking date.
		return time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
			0, 0, 0, 0, b.BookingDate.Location())
	}
	return time.Date(b.BookingDate.Year(), b.BookingDate.Month(), b.BookingDate.Day(),
		t.Hour(), t.Minute(), 0, 0, b.BookingDate.Location())
}

// WithinCancellationCutoff returns true if the booking starts at least
// cutoffHours after now. Customer-initiated cancellation requires this;
// admin cancellation does not.
func (b *Booking) WithinCancellationCutoff(now time.Time, cutoffHours int) bool {
	return !b.StartsAt().Before(now.Add(time.Duration(cutoffHours) * time.Hour))
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	CustomerID      *int64            // Фильтр по клиенту (опционально)
	StartDate       *time.Time        // Начало периода (опционально)
	EndDate         *time.Time        // Конец периода (опционально)
	StartTime       *types.TimeString // Фильтр по слоту (опционально)
	Status          *BookingStatus    // Фильтр по статусу (опционально)
	IncludeInactive bool              // Включать ли завершённые и отменённые
}
