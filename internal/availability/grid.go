// Package availability is the slot availability and capacity resolution
// engine. Every screen (customer date picker, admin calendar, blocking
// settings) calls into this one package instead of re-deriving the rules.
//
// All functions are pure: no clock reads, no I/O, no shared state. The
// caller always injects "today"/"now", so results are deterministic and
// safe to compute concurrently.
package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
)

// View is the calendar granularity a grid is built for
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// GridCell is one date cell of a calendar grid
type GridCell struct {
	Date         time.Time
	OutsideMonth bool // padding day from an adjacent month (month view only)
}

// BuildGrid produces the ordered date cells for the view containing ref.
//
// Month grids start on the Sunday on/before the 1st and end on the
// Saturday on/after the last day, so the cell count is always a multiple
// of 7. Padding cells are tagged OutsideMonth but are still evaluated by
// the engine. Week grids are the 7 days starting on the Sunday of ref's
// week; day grids are a singleton.
func BuildGrid(ref time.Time, view View) []GridCell {
	ref = domain.DateOnly(ref)

	switch view {
	case ViewWeek:
		start := startOfWeek(ref)
		cells := make([]GridCell, 0, 7)
		for i := 0; i < 7; i++ {
			cells = append(cells, GridCell{Date: start.AddDate(0, 0, i)})
		}
		return cells

	case ViewDay:
		return []GridCell{{Date: ref}}

	default: // ViewMonth
		firstOfMonth := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		start := startOfWeek(firstOfMonth)
		end := endOfWeek(lastOfMonth)

		cells := make([]GridCell, 0, 42)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			cells = append(cells, GridCell{
				Date:         d,
				OutsideMonth: d.Month() != ref.Month(),
			})
		}
		return cells
	}
}

// startOfWeek returns the Sunday on/before d
func startOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// endOfWeek returns the Saturday on/after d
func endOfWeek(d time.Time) time.Time {
	return d.AddDate(0, 0, int(time.Saturday-d.Weekday()))
}
