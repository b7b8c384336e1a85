package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseYMD(t *testing.T) {
	got, err := ParseYMD("2026-01-05")
	require.NoError(t, err)
	assert.Equal(t, day(2026, time.January, 5), got)

	_, err = ParseYMD("05/01/2026")
	assert.Error(t, err)
}

func TestFormatYMD(t *testing.T) {
	assert.Equal(t, "2026-01-05", FormatYMD(day(2026, time.January, 5)))
}

func TestMondayOf(t *testing.T) {
	monday := day(2026, time.January, 5)

	assert.Equal(t, monday, MondayOf(monday))
	assert.Equal(t, monday, MondayOf(day(2026, time.January, 7)))
	// Sunday belongs to the week that started the previous Monday.
	assert.Equal(t, monday, MondayOf(day(2026, time.January, 11)))
	assert.Equal(t, monday, MondayOf(time.Date(2026, time.January, 8, 23, 45, 0, 0, time.UTC)))
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(day(2026, time.January, 7), 0)

	require.Len(t, dates, 7)
	assert.Equal(t, day(2026, time.January, 5), dates[0])
	assert.Equal(t, day(2026, time.January, 11), dates[6])
	assert.Equal(t, time.Monday, dates[0].Weekday())
	assert.Equal(t, time.Sunday, dates[6].Weekday())
}

func TestWeekDatesOffset(t *testing.T) {
	next := WeekDates(day(2026, time.January, 7), 1)
	prev := WeekDates(day(2026, time.January, 7), -1)

	assert.Equal(t, day(2026, time.January, 12), next[0])
	assert.Equal(t, day(2025, time.December, 29), prev[0])
}

func TestFormatRangeLabel(t *testing.T) {
	got := FormatRangeLabel(day(2026, time.January, 2), day(2026, time.January, 8))
	assert.Equal(t, "2 Jan – 8 Jan 2026", got)

	// Ranges crossing a year boundary keep only the end year.
	got = FormatRangeLabel(day(2025, time.December, 29), day(2026, time.January, 4))
	assert.Equal(t, "29 Dec – 4 Jan 2026", got)
}

func TestSlots(t *testing.T) {
	require.Len(t, SlotOrder, 6)
	assert.Equal(t, SlotBreakfast, SlotOrder[0])
	assert.Equal(t, SlotDinnerPudding, SlotOrder[5])

	for _, s := range SlotOrder {
		assert.True(t, IsValidSlot(s), s)
		assert.NotEmpty(t, SlotLabel[s])
	}
	assert.False(t, IsValidSlot("brunch"))
}
