package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

func TestClassifySlot(t *testing.T) {
	tests := []struct {
		name     string
		window   domain.WindowClass
		blocked  bool
		capacity int
		booked   int
		want     domain.SlotStatus
	}{
		{name: "past wins over everything", window: domain.WindowPast, blocked: false, capacity: 5, booked: 0, want: domain.SlotPast},
		{name: "past wins even when blocked", window: domain.WindowPast, blocked: true, capacity: 0, booked: 0, want: domain.SlotPast},
		{name: "beyond window renders blocked", window: domain.WindowBeyond, blocked: false, capacity: 5, booked: 0, want: domain.SlotBlocked},
		{name: "explicit block beats open capacity", window: domain.WindowIn, blocked: true, capacity: 5, booked: 0, want: domain.SlotBlocked},
		{name: "full when booked equals capacity", window: domain.WindowIn, blocked: false, capacity: 2, booked: 2, want: domain.SlotFull},
		{name: "full when overbooked", window: domain.WindowIn, blocked: false, capacity: 2, booked: 3, want: domain.SlotFull},
		{name: "limited at one remaining seat", window: domain.WindowIn, blocked: false, capacity: 3, booked: 2, want: domain.SlotLimited},
		{name: "limited with capacity one and empty", window: domain.WindowIn, blocked: false, capacity: 1, booked: 0, want: domain.SlotLimited},
		{name: "available with two or more seats", window: domain.WindowIn, blocked: false, capacity: 2, booked: 0, want: domain.SlotAvailable},
		{name: "zero capacity without block reads full", window: domain.WindowIn, blocked: false, capacity: 0, booked: 0, want: domain.SlotFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySlot(tt.window, tt.blocked, tt.capacity, tt.booked))
		})
	}
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 2, Remaining(3, 1))
	assert.Equal(t, 0, Remaining(3, 3))
	assert.Equal(t, 0, Remaining(2, 5), "remaining is clamped at zero")
}

func TestSlotSet_UnionsDynamicSlots(t *testing.T) {
	base := []types.TimeString{"10:00", "10:40", "11:20"}
	d := date(2024, time.November, 8)

	bookings := []*domain.Booking{
		{BookingDate: d, StartTime: "09:15", Status: domain.StatusConfirmed}, // legacy slot outside base grid
		{BookingDate: d, StartTime: "10:00", Status: domain.StatusConfirmed},
	}
	overrides := []*domain.CapacityOverride{
		{Date: d, StartTime: "12:40", Capacity: 5, Active: true},
	}
	blocks := []*domain.BlockedSlot{
		{Date: d, StartTime: slotPtr("14:00")},
		{Date: d}, // full-day block carries no slot time
	}

	got := SlotSet(base, bookings, overrides, blocks)

	assert.Equal(t, []types.TimeString{"09:15", "10:00", "10:40", "11:20", "12:40", "14:00"}, got)
}

func TestBuildDay_DefaultCapacityScenario(t *testing.T) {
	// Monday, default rule capacity 2, no bookings, no override, no block.
	monday := date(2024, time.November, 4)
	today := date(2024, time.November, 1)

	day := BuildDay(monday, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00", "10:40"},
		Defaults:   testDefaults(),
	})

	require.Len(t, day.Slots, 2)
	assert.Equal(t, domain.WindowIn, day.Window)
	assert.Equal(t, domain.SlotAvailable, day.DayStatus)
	for _, s := range day.Slots {
		assert.Equal(t, domain.SlotAvailable, s.Status)
		assert.Equal(t, 2, s.Remaining)
		assert.Equal(t, 2, s.Capacity)
	}
}

func TestBuildDay_LimitedScenario(t *testing.T) {
	// Thursday, default capacity 3, two confirmed bookings at 10:00.
	thursday := date(2024, time.November, 7)
	today := date(2024, time.November, 1)

	occupancy := AggregateBookings([]*domain.Booking{
		{ID: 1, BookingDate: thursday, StartTime: "10:00", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: thursday, StartTime: "10:00", Status: domain.StatusConfirmed},
	})

	day := BuildDay(thursday, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00", "10:40"},
		Defaults:   testDefaults(),
		Occupancy:  occupancy,
	})

	require.Len(t, day.Slots, 2)
	assert.Equal(t, domain.SlotLimited, day.Slots[0].Status)
	assert.Equal(t, 1, day.Slots[0].Remaining)
	assert.Equal(t, domain.SlotAvailable, day.Slots[1].Status)
	assert.Equal(t, domain.SlotLimited, day.DayStatus)
}

func TestBuildDay_OverrideRaisesCapacity(t *testing.T) {
	// Friday 12:40, default 3, active override capacity 5, 3 bookings.
	friday := date(2024, time.November, 8)
	today := date(2024, time.November, 1)

	occupancy := AggregateBookings([]*domain.Booking{
		{ID: 1, BookingDate: friday, StartTime: "12:40", Status: domain.StatusConfirmed},
		{ID: 2, BookingDate: friday, StartTime: "12:40", Status: domain.StatusPending},
		{ID: 3, BookingDate: friday, StartTime: "12:40", Status: domain.StatusConfirmed},
	})

	day := BuildDay(friday, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"12:40"},
		Defaults:   testDefaults(),
		Overrides: []*domain.CapacityOverride{
			{ID: 1, Date: friday, StartTime: "12:40", Capacity: 5, Active: true},
		},
		Occupancy: occupancy,
	})

	require.Len(t, day.Slots, 1)
	assert.Equal(t, domain.SlotAvailable, day.Slots[0].Status)
	assert.Equal(t, 2, day.Slots[0].Remaining)
}

func TestBuildDay_BlockTrumpsOverride(t *testing.T) {
	// Slot-level block and a capacity-5 override on 2024-11-08 14:00.
	d := date(2024, time.November, 8)
	today := date(2024, time.November, 1)

	day := BuildDay(d, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"14:00"},
		Defaults:   testDefaults(),
		Overrides: []*domain.CapacityOverride{
			{ID: 1, Date: d, StartTime: "14:00", Capacity: 5, Active: true},
		},
		Blocks: []*domain.BlockedSlot{
			{ID: 1, Date: d, StartTime: slotPtr("14:00")},
		},
	})

	require.Len(t, day.Slots, 1)
	assert.Equal(t, domain.SlotBlocked, day.Slots[0].Status)
	assert.Zero(t, day.Slots[0].Remaining)
	assert.Equal(t, domain.SlotBlocked, day.DayStatus)
}

func TestBuildDay_PastDateAlwaysPast(t *testing.T) {
	d := date(2024, time.November, 1)
	today := date(2024, time.November, 8)

	day := BuildDay(d, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00", "10:40"},
		Defaults:   testDefaults(),
		Overrides: []*domain.CapacityOverride{
			{ID: 1, Date: d, StartTime: "10:00", Capacity: 9, Active: true},
		},
	})

	assert.Equal(t, domain.WindowPast, day.Window)
	for _, s := range day.Slots {
		assert.Equal(t, domain.SlotPast, s.Status)
	}
	assert.Equal(t, domain.SlotBlocked, day.DayStatus)
}

func TestBuildDay_BeyondWindowAlwaysBlocked(t *testing.T) {
	d := date(2025, time.January, 20)
	today := date(2024, time.November, 8)

	day := BuildDay(d, DayInputs{
		Today:      today,
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00"},
		Defaults:   testDefaults(),
	})

	assert.Equal(t, domain.WindowBeyond, day.Window)
	assert.Equal(t, domain.SlotBlocked, day.Slots[0].Status)
	assert.Equal(t, domain.SlotBlocked, day.DayStatus)
}

func TestBuildDay_Idempotent(t *testing.T) {
	d := date(2024, time.November, 8)
	in := DayInputs{
		Today:      date(2024, time.November, 1),
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00", "10:40", "12:40"},
		Defaults:   testDefaults(),
		Overrides: []*domain.CapacityOverride{
			{ID: 1, Date: d, StartTime: "10:40", Capacity: 1, Active: true},
		},
		Occupancy: map[SlotKey]int{
			NewSlotKey(d, "10:00"): 2,
		},
	}

	first := BuildDay(d, in)
	second := BuildDay(d, in)
	assert.Equal(t, first, second)
}

func TestBuildDay_IncludesBookedOnlySlots(t *testing.T) {
	// A booking at a time outside the base grid still shows up.
	d := date(2024, time.November, 8)

	day := BuildDay(d, DayInputs{
		Today:      date(2024, time.November, 1),
		WindowDays: 30,
		BaseSlots:  []types.TimeString{"10:00"},
		Defaults:   testDefaults(),
		Occupancy: map[SlotKey]int{
			NewSlotKey(d, "09:15"): 1,
		},
	})

	require.Len(t, day.Slots, 2)
	assert.Equal(t, types.TimeString("09:15"), day.Slots[0].StartTime)
	assert.Equal(t, 1, day.Slots[0].Booked)
}

func TestReduceDayStatus(t *testing.T) {
	tests := []struct {
		name  string
		slots []domain.SlotAvailability
		want  domain.SlotStatus
	}{
		{
			name:  "no slots reads blocked",
			slots: nil,
			want:  domain.SlotBlocked,
		},
		{
			name: "all blocked",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotBlocked}, {Status: domain.SlotBlocked},
			},
			want: domain.SlotBlocked,
		},
		{
			name: "all past",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotPast}, {Status: domain.SlotPast},
			},
			want: domain.SlotBlocked,
		},
		{
			name: "all full",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotFull}, {Status: domain.SlotFull},
			},
			want: domain.SlotFull,
		},
		{
			name: "full and blocked only",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotFull}, {Status: domain.SlotBlocked},
			},
			want: domain.SlotFull,
		},
		{
			name: "full next to available degrades to limited",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotFull}, {Status: domain.SlotAvailable},
			},
			want: domain.SlotLimited,
		},
		{
			name: "limited wins over available",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotAvailable}, {Status: domain.SlotLimited},
			},
			want: domain.SlotLimited,
		},
		{
			name: "all available",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotAvailable}, {Status: domain.SlotAvailable},
			},
			want: domain.SlotAvailable,
		},
		{
			name: "available next to blocked stays available",
			slots: []domain.SlotAvailability{
				{Status: domain.SlotBlocked}, {Status: domain.SlotAvailable},
			},
			want: domain.SlotAvailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReduceDayStatus(tt.slots))
		})
	}
}
