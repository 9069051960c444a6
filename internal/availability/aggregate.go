package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// SlotKey identifies one date+slot pair in an occupancy map.
// The date component is the "YYYY-MM-DD" string so the key is comparable
// regardless of time.Time location or monotonic clock noise.
type SlotKey struct {
	Date      string
	StartTime types.TimeString
}

// NewSlotKey builds the occupancy key for a date and slot time
func NewSlotKey(date time.Time, slot types.TimeString) SlotKey {
	return SlotKey{
		Date:      date.Format(domain.DateFormat),
		StartTime: slot,
	}
}

// AggregateBookings groups bookings into an occupancy count per date+slot.
// Only pending and confirmed bookings occupy capacity; completed and
// cancelled ones are skipped. Pairs with no bookings are absent from the
// map and read as zero.
func AggregateBookings(bookings []*domain.Booking) map[SlotKey]int {
	occupancy := make(map[SlotKey]int, len(bookings))

	for _, b := range bookings {
		if !b.OccupiesCapacity() {
			continue
		}
		occupancy[NewSlotKey(b.BookingDate, b.StartTime)]++
	}

	return occupancy
}
