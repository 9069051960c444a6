package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// SlotStatus is the presentation status of one date+slot pair
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotLimited   SlotStatus = "limited"
	SlotFull      SlotStatus = "full"
	SlotBlocked   SlotStatus = "blocked"
	SlotPast      SlotStatus = "past"
)

// WindowClass classifies a date against the rolling booking window
type WindowClass string

const (
	WindowPast   WindowClass = "past"
	WindowIn     WindowClass = "in_window"
	WindowBeyond WindowClass = "beyond_window"
)

// SlotAvailability is a derived projection, never persisted: the seat
// arithmetic and status for one slot on one date.
type SlotAvailability struct {
	StartTime types.TimeString
	Capacity  int
	Booked    int
	Remaining int
	Status    SlotStatus
}

// IsBookable returns true if at least one seat can still be taken
func (s *SlotAvailability) IsBookable() bool {
	return s.Status == SlotAvailable || s.Status == SlotLimited
}

// DayAvailability aggregates the slot projections for a single date
type DayAvailability struct {
	Date         time.Time
	Window       WindowClass
	OutsideMonth bool // padding cell of a month grid
	DayStatus    SlotStatus
	Slots        []SlotAvailability
}
