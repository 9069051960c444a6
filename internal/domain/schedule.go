package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// CapacityOverride is an admin-set seat capacity for one date and slot,
// superseding the weekday default while active.
type CapacityOverride struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	Capacity  int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppliesTo returns true if the override is active and targets the given date and slot
func (o *CapacityOverride) AppliesTo(date time.Time, slot types.TimeString) bool {
	return o.Active && SameDate(o.Date, date) && o.StartTime == slot
}

// BlockedSlot is an admin-set closure. A nil StartTime closes the whole day.
type BlockedSlot struct {
	ID        int64
	Date      time.Time
	StartTime *types.TimeString // nil = весь день закрыт
	Reason    *string
	CreatedAt time.Time
}

// IsFullDay returns true if the block closes the entire day
func (b *BlockedSlot) IsFullDay() bool {
	return b.StartTime == nil
}

// Covers returns true if the block applies to the given date and slot.
// A full-day block covers every slot on its date.
func (b *BlockedSlot) Covers(date time.Time, slot types.TimeString) bool {
	if !SameDate(b.Date, date) {
		return false
	}
	return b.IsFullDay() || *b.StartTime == slot
}

// WeekdayCapacities is the default seat capacity per day of week.
// It is configuration, not a persisted entity: shop owners tune it in
// config.toml without a code change.
type WeekdayCapacities map[time.Weekday]int

// Capacity returns the default capacity for the given weekday (0 when unset)
func (w WeekdayCapacities) Capacity(day time.Weekday) int {
	return w[day]
}

// SameDate reports whether two timestamps fall on the same calendar day,
// ignoring time of day.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DateOnly normalizes a timestamp to midnight in its own location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
