package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-BarberService/internal/domain"
	"github.com/m04kA/SMC-BarberService/pkg/types"
)

// Default weekly rule used across the engine tests: Mon-Wed 2 chairs,
// Thu-Sun 3 chairs.
func testDefaults() domain.WeekdayCapacities {
	return domain.WeekdayCapacities{
		time.Monday:    2,
		time.Tuesday:   2,
		time.Wednesday: 2,
		time.Thursday:  3,
		time.Friday:    3,
		time.Saturday:  3,
		time.Sunday:    3,
	}
}

func slotPtr(s string) *types.TimeString {
	ts := types.TimeString(s)
	return &ts
}

func TestResolveCapacity_WeekdayDefault(t *testing.T) {
	monday := date(2024, time.November, 4)
	thursday := date(2024, time.November, 7)

	capacity, blocked := ResolveCapacity(monday, "10:00", nil, nil, testDefaults())
	assert.False(t, blocked)
	assert.Equal(t, 2, capacity)

	capacity, blocked = ResolveCapacity(thursday, "10:00", nil, nil, testDefaults())
	assert.False(t, blocked)
	assert.Equal(t, 3, capacity)
}

func TestResolveCapacity_ActiveOverrideWins(t *testing.T) {
	friday := date(2024, time.November, 8)
	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: friday, StartTime: "12:40", Capacity: 5, Active: true},
	}

	capacity, blocked := ResolveCapacity(friday, "12:40", overrides, nil, testDefaults())
	assert.False(t, blocked)
	assert.Equal(t, 5, capacity)

	// Other slots on the same date keep the weekday default.
	capacity, _ = ResolveCapacity(friday, "10:00", overrides, nil, testDefaults())
	assert.Equal(t, 3, capacity)
}

func TestResolveCapacity_InactiveOverrideIgnored(t *testing.T) {
	friday := date(2024, time.November, 8)
	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: friday, StartTime: "12:40", Capacity: 5, Active: false},
	}

	capacity, blocked := ResolveCapacity(friday, "12:40", overrides, nil, testDefaults())
	assert.False(t, blocked)
	assert.Equal(t, 3, capacity)
}

func TestResolveCapacity_SlotBlockTrumpsOverride(t *testing.T) {
	d := date(2024, time.November, 8)
	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: d, StartTime: "14:00", Capacity: 5, Active: true},
	}
	blocks := []*domain.BlockedSlot{
		{ID: 1, Date: d, StartTime: slotPtr("14:00")},
	}

	capacity, blocked := ResolveCapacity(d, "14:00", overrides, blocks, testDefaults())
	assert.True(t, blocked)
	assert.Zero(t, capacity)
}

func TestResolveCapacity_FullDayBlockTrumpsEverything(t *testing.T) {
	d := date(2024, time.November, 8)
	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: d, StartTime: "10:00", Capacity: 5, Active: true},
	}
	blocks := []*domain.BlockedSlot{
		{ID: 1, Date: d}, // nil StartTime = whole day
	}

	for _, slot := range []types.TimeString{"10:00", "10:40", "14:00"} {
		capacity, blocked := ResolveCapacity(d, slot, overrides, blocks, testDefaults())
		assert.True(t, blocked, "slot %s", slot)
		assert.Zero(t, capacity, "slot %s", slot)
	}
}

func TestResolveCapacity_BlockOnOtherDateIgnored(t *testing.T) {
	d := date(2024, time.November, 8)
	blocks := []*domain.BlockedSlot{
		{ID: 1, Date: date(2024, time.November, 9)},
	}

	capacity, blocked := ResolveCapacity(d, "10:00", nil, blocks, testDefaults())
	assert.False(t, blocked)
	assert.Equal(t, 3, capacity)
}

func TestResolveCapacity_DuplicateOverridesNewestWins(t *testing.T) {
	d := date(2024, time.November, 8)
	older := time.Date(2024, 10, 1, 9, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 10, 5, 9, 0, 0, 0, time.UTC)

	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: d, StartTime: "10:00", Capacity: 4, Active: true, CreatedAt: older},
		{ID: 2, Date: d, StartTime: "10:00", Capacity: 6, Active: true, CreatedAt: newer},
	}

	capacity, _ := ResolveCapacity(d, "10:00", overrides, nil, testDefaults())
	assert.Equal(t, 6, capacity)

	// Same result regardless of slice order.
	overrides[0], overrides[1] = overrides[1], overrides[0]
	capacity, _ = ResolveCapacity(d, "10:00", overrides, nil, testDefaults())
	assert.Equal(t, 6, capacity)
}

func TestDuplicateOverrides(t *testing.T) {
	d := date(2024, time.November, 8)

	overrides := []*domain.CapacityOverride{
		{ID: 1, Date: d, StartTime: "10:00", Capacity: 4, Active: true},
		{ID: 2, Date: d, StartTime: "10:00", Capacity: 6, Active: true},
		{ID: 3, Date: d, StartTime: "12:40", Capacity: 5, Active: true},
		{ID: 4, Date: d, StartTime: "12:40", Capacity: 2, Active: false}, // inactive, no collision
	}

	dups := DuplicateOverrides(overrides)
	assert.Equal(t, []string{"2024-11-08 10:00"}, dups)

	assert.Empty(t, DuplicateOverrides(nil))
}
