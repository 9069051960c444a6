package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// ResolveCapacity computes the effective seat capacity for one date+slot.
//
// Precedence, first match wins:
//  1. full-day block on the date          -> (0, blocked)
//  2. slot-level block on date+slot       -> (0, blocked)
//  3. active override for date+slot       -> (override capacity, open)
//  4. weekday default from configuration  -> (default capacity, open)
//
// A full-day block therefore dominates any override for the same date,
// and a slot block dominates an override for the same slot.
func ResolveCapacity(
	date time.Time,
	slot types.TimeString,
	overrides []*domain.CapacityOverride,
	blocks []*domain.BlockedSlot,
	defaults domain.WeekdayCapacities,
) (capacity int, blocked bool) {
	for _, b := range blocks {
		if b.IsFullDay() && domain.SameDate(b.Date, date) {
			return 0, true
		}
	}

	for _, b := range blocks {
		if b.Covers(date, slot) {
			return 0, true
		}
	}

	if o := pickOverride(date, slot, overrides); o != nil {
		return o.Capacity, false
	}

	return defaults.Capacity(date.Weekday()), false
}

// pickOverride selects the applicable active override for date+slot.
// Write-side validation keeps at most one active override per pair; if
// the data still contains several, the most recently created wins so the
// read path stays deterministic. Callers detect the anomaly separately
// via DuplicateOverrides.
func pickOverride(date time.Time, slot types.TimeString, overrides []*domain.CapacityOverride) *domain.CapacityOverride {
	var picked *domain.CapacityOverride
	for _, o := range overrides {
		if !o.AppliesTo(date, slot) {
			continue
		}
		if picked == nil || o.CreatedAt.After(picked.CreatedAt) ||
			(o.CreatedAt.Equal(picked.CreatedAt) && o.ID > picked.ID) {
			picked = o
		}
	}
	return picked
}

// DuplicateOverrides returns a "YYYY-MM-DD HH:MM" key for every date+slot
// pair covered by more than one active override. The read path resolves
// these deterministically; callers log the keys as a data-integrity
// warning for operators instead of failing the request.
func DuplicateOverrides(overrides []*domain.CapacityOverride) []string {
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, o := range overrides {
		if !o.Active {
			continue
		}
		key := fmt.Sprintf("%s %s", o.Date.Format(domain.DateFormat), o.StartTime)
		if counts[key] == 1 {
			order = append(order, key)
		}
		counts[key]++
	}

	return order
}
