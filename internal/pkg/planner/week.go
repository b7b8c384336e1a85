package planner

import (
	"fmt"
	"time"
)

const ymdLayout = "2006-01-02"

// ParseYMD parses a YYYY-MM-DD calendar day.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.Parse(ymdLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatYMD renders a calendar day as YYYY-MM-DD.
func FormatYMD(t time.Time) string {
	return t.Format(ymdLayout)
}

// MondayOf returns the Monday of the week containing t, at midnight in
// t's location. Weeks run Monday through Sunday.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return day.AddDate(0, 0, -offset)
}

// WeekDates returns the seven days of the week containing t, Monday
// first, shifted by weekOffset whole weeks.
func WeekDates(t time.Time, weekOffset int) []time.Time {
	start := MondayOf(t).AddDate(0, 0, weekOffset*7)
	out := make([]time.Time, 7)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

// FormatRangeLabel renders an inclusive date range the way the plan
// header shows it, e.g. "2 Jan – 8 Jan 2026".
func FormatRangeLabel(start, end time.Time) string {
	return fmt.Sprintf("%s – %s", start.Format("2 Jan"), end.Format("2 Jan 2006"))
}

// FormatShortDate renders a day as "2 Jan" for list headers.
func FormatShortDate(t time.Time) string {
	return t.Format("2 Jan")
}
