package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// ClassifySlot derives the presentation status of one slot. Rules apply
// in order; the earlier rule always wins:
//
//  1. date is past                 -> past
//  2. date is beyond the window    -> blocked
//  3. capacity resolver blocked it -> blocked
//  4. booked >= capacity           -> full
//  5. one or zero seats remain     -> limited (zero only via capacity 0)
//  6. otherwise                    -> available
//
// The ordering is the tie-break contract: an explicit block beats any
// remaining capacity, and the window beats an override that would
// otherwise open the slot.
func ClassifySlot(window domain.WindowClass, blocked bool, capacity, booked int) domain.SlotStatus {
	switch {
	case window == domain.WindowPast:
		return domain.SlotPast
	case window == domain.WindowBeyond:
		return domain.SlotBlocked
	case blocked:
		return domain.SlotBlocked
	case booked >= capacity:
		return domain.SlotFull
	case capacity-booked <= 1:
		return domain.SlotLimited
	default:
		return domain.SlotAvailable
	}
}

// Remaining computes the open seat count, clamped at zero
func Remaining(capacity, booked int) int {
	if booked >= capacity {
		return 0
	}
	return capacity - booked
}

// SlotSet unions the shop's base slot times with every slot time present
// in the supplied bookings, overrides and blocks for the evaluated range.
// A booking at a time outside the base set must still be shown, never
// dropped. The result is sorted and de-duplicated.
func SlotSet(
	base []types.TimeString,
	bookings []*domain.Booking,
	overrides []*domain.CapacityOverride,
	blocks []*domain.BlockedSlot,
) []types.TimeString {
	seen := make(map[types.TimeString]struct{}, len(base))
	slots := make([]types.TimeString, 0, len(base))

	add := func(ts types.TimeString) {
		if ts.IsZero() {
			return
		}
		if _, ok := seen[ts]; ok {
			return
		}
		seen[ts] = struct{}{}
		slots = append(slots, ts)
	}

	for _, ts := range base {
		add(ts)
	}
	for _, b := range bookings {
		add(b.StartTime)
	}
	for _, o := range overrides {
		add(o.StartTime)
	}
	for _, b := range blocks {
		if b.StartTime != nil {
			add(*b.StartTime)
		}
	}

	sort.Slice(slots, func(i, j int) bool { return slots[i].IsBefore(slots[j]) })
	return slots
}

// DayInputs carries everything BuildDay needs. Today is always injected;
// the engine never reads a clock.
type DayInputs struct {
	Today      time.Time
	WindowDays int
	BaseSlots  []types.TimeString
	Defaults   domain.WeekdayCapacities
	Overrides  []*domain.CapacityOverride
	Blocks     []*domain.BlockedSlot
	Occupancy  map[SlotKey]int
}

// BuildDay evaluates every candidate slot for one date and reduces the
// day-level status. It is the single entry point the month, week and day
// endpoints share.
func BuildDay(date time.Time, in DayInputs) domain.DayAvailability {
	window := ClassifyWindow(date, in.Today, in.WindowDays)
	slotTimes := SlotSet(in.BaseSlots, nil, in.Overrides, in.Blocks)

	// Bookings at times outside the base set (legacy slot grids, manual
	// admin entries) are unioned in from the occupancy keys.
	dateKey := date.Format(domain.DateFormat)
	for key := range in.Occupancy {
		if key.Date == dateKey && !containsSlot(slotTimes, key.StartTime) {
			slotTimes = append(slotTimes, key.StartTime)
		}
	}
	sort.Slice(slotTimes, func(i, j int) bool { return slotTimes[i].IsBefore(slotTimes[j]) })

	slots := make([]domain.SlotAvailability, 0, len(slotTimes))
	for _, slot := range slotTimes {
		capacity, blocked := ResolveCapacity(date, slot, in.Overrides, in.Blocks, in.Defaults)
		booked := in.Occupancy[NewSlotKey(date, slot)]

		slots = append(slots, domain.SlotAvailability{
			StartTime: slot,
			Capacity:  capacity,
			Booked:    booked,
			Remaining: Remaining(capacity, booked),
			Status:    ClassifySlot(window, blocked, capacity, booked),
		})
	}

	return domain.DayAvailability{
		Date:      domain.DateOnly(date),
		Window:    window,
		DayStatus: ReduceDayStatus(slots),
		Slots:     slots,
	}
}

func containsSlot(slots []types.TimeString, ts types.TimeString) bool {
	for _, s := range slots {
		if s == ts {
			return true
		}
	}
	return false
}

// ReduceDayStatus collapses per-slot statuses into the month-view day
// status: all blocked/past -> blocked; any full with nothing bookable ->
// full; otherwise the most constrained open signal wins, and a full slot
// next to open ones degrades the day to limited.
func ReduceDayStatus(slots []domain.SlotAvailability) domain.SlotStatus {
	if len(slots) == 0 {
		return domain.SlotBlocked
	}

	var open, full, limited bool
	closedOnly := true

	for _, s := range slots {
		switch s.Status {
		case domain.SlotBlocked, domain.SlotPast:
			continue
		case domain.SlotFull:
			full = true
		case domain.SlotLimited:
			open = true
			limited = true
		case domain.SlotAvailable:
			open = true
		}
		closedOnly = false
	}

	switch {
	case closedOnly:
		return domain.SlotBlocked
	case full && !open:
		return domain.SlotFull
	case limited || full:
		return domain.SlotLimited
	default:
		return domain.SlotAvailable
	}
}
