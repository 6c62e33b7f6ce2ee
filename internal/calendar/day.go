package calendar

import (
	"strconv"
	"time"

	"github.com/HHoofs/shift/internal/holidaycalendar"
)

// Day wraps a calendar date, truncated to midnight UTC so equality and
// ordering never trip over time-of-day or location noise.
type Day struct {
	date time.Time
}

// NewDay builds a Day from a time.Time, truncating to the calendar date.
func NewDay(t time.Time) Day {
	y, m, d := t.Date()
	return Day{date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Date returns the underlying date.
func (d Day) Date() time.Time { return d.date }

// WeekDay returns the ISO-8601 week-day, 1 (Monday) through 7 (Sunday).
func (d Day) WeekDay() int {
	wd := int(d.date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// WeekNumber returns the ISO-8601 week number.
func (d Day) WeekNumber() int {
	_, week := d.date.ISOWeek()
	return week
}

// ISOYear returns the ISO-8601 week-numbering year, which can differ from
// the calendar year for dates near year boundaries.
func (d Day) ISOYear() int {
	year, _ := d.date.ISOWeek()
	return year
}

// Month returns the calendar month, 1..12.
func (d Day) Month() int { return int(d.date.Month()) }

// IsWeekend reports whether the week-day is Saturday (6) or Sunday (7).
func (d Day) IsWeekend() bool { return d.WeekDay() > 5 }

// IsHoliday delegates to the supplied regional calendar.
func (d Day) IsHoliday(cal holidaycalendar.Calendar) bool {
	if cal == nil {
		cal = holidaycalendar.None
	}
	return cal.IsHoliday(d.date)
}

// Before reports whether d is strictly before other.
func (d Day) Before(other Day) bool { return d.date.Before(other.date) }

// After reports whether d is strictly after other.
func (d Day) After(other Day) bool { return d.date.After(other.date) }

// Equal reports whether d and other are the same calendar date.
func (d Day) Equal(other Day) bool { return d.date.Equal(other.date) }

// AddDays returns the day n calendar days after d.
func (d Day) AddDays(n int) Day { return Day{date: d.date.AddDate(0, 0, n)} }

// String renders a readable label, e.g. "Monday 4 February 2002 (week: 6)".
func (d Day) String() string {
	return d.date.Format("Monday 2 January 2006") + " (week: " + strconv.Itoa(d.WeekNumber()) + ")"
}
