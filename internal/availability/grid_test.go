package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildGrid_Month(t *testing.T) {
	// November 2024: the 1st is a Friday, the 30th a Saturday.
	cells := BuildGrid(date(2024, time.November, 15), ViewMonth)

	require.NotEmpty(t, cells)
	assert.Zero(t, len(cells)%7, "month grid must be whole weeks")

	// Grid starts on the Sunday before the 1st and ends on a Saturday.
	assert.Equal(t, date(2024, time.October, 27), cells[0].Date)
	assert.Equal(t, time.Sunday, cells[0].Date.Weekday())
	assert.Equal(t, time.Saturday, cells[len(cells)-1].Date.Weekday())

	// Padding cells are tagged, month days are not.
	assert.True(t, cells[0].OutsideMonth)
	for _, c := range cells {
		assert.Equal(t, c.Date.Month() != time.November, c.OutsideMonth, "cell %s", c.Date)
	}

	// The month's days form a contiguous subsequence.
	var monthDays []time.Time
	for _, c := range cells {
		if !c.OutsideMonth {
			monthDays = append(monthDays, c.Date)
		}
	}
	require.Len(t, monthDays, 30)
	assert.Equal(t, date(2024, time.November, 1), monthDays[0])
	for i := 1; i < len(monthDays); i++ {
		assert.Equal(t, monthDays[i-1].AddDate(0, 0, 1), monthDays[i])
	}
}

func TestBuildGrid_MonthStartingOnSunday(t *testing.T) {
	// December 2024 starts on a Sunday: no leading padding.
	cells := BuildGrid(date(2024, time.December, 1), ViewMonth)

	assert.Equal(t, date(2024, time.December, 1), cells[0].Date)
	assert.False(t, cells[0].OutsideMonth)
	assert.Zero(t, len(cells)%7)
}

func TestBuildGrid_February(t *testing.T) {
	// Leap February 2024.
	cells := BuildGrid(date(2024, time.February, 10), ViewMonth)

	assert.Zero(t, len(cells)%7)
	inMonth := 0
	for _, c := range cells {
		if !c.OutsideMonth {
			inMonth++
		}
	}
	assert.Equal(t, 29, inMonth)
}

func TestBuildGrid_Week(t *testing.T) {
	// 2024-11-08 is a Friday; its week starts Sunday 2024-11-03.
	cells := BuildGrid(date(2024, time.November, 8), ViewWeek)

	require.Len(t, cells, 7)
	assert.Equal(t, date(2024, time.November, 3), cells[0].Date)
	assert.Equal(t, date(2024, time.November, 9), cells[6].Date)
	for _, c := range cells {
		assert.False(t, c.OutsideMonth)
	}
}

func TestBuildGrid_WeekFromSunday(t *testing.T) {
	cells := BuildGrid(date(2024, time.November, 3), ViewWeek)
	assert.Equal(t, date(2024, time.November, 3), cells[0].Date)
}

func TestBuildGrid_Day(t *testing.T) {
	cells := BuildGrid(time.Date(2024, 11, 8, 17, 45, 0, 0, time.UTC), ViewDay)

	require.Len(t, cells, 1)
	// Time of day is normalized away.
	assert.Equal(t, date(2024, time.November, 8), cells[0].Date)
}
