// Package holidaycalendar supplies the single external collaborator the
// calendar module needs: a pure predicate answering "is this date a public
// holiday". It is consumed as a narrow interface (per the design's external
// interfaces) so the calendar module never depends on a concrete region.
package holidaycalendar

import "time"

// Calendar answers whether a date is a public holiday in some fixed region.
// Implementations must be pure and deterministic: the same date always
// yields the same answer, with no I/O and no clock reads.
type Calendar interface {
	IsHoliday(date time.Time) bool
}

// None is a Calendar that never reports a holiday. Useful as a default for
// callers that have no regional calendar wired up.
var None Calendar = noneCalendar{}

type noneCalendar struct{}

func (noneCalendar) IsHoliday(time.Time) bool { return false }

// NL is a fixed-region calendar for the Netherlands, the region the source
// system hard-coded (`holidays.country_holidays("NL")`). It covers the
// nationally recognized fixed-date holidays plus the Easter-derived ones,
// computed offline with no network access so the predicate stays pure.
type nl struct{}

// NL is the package-level Netherlands holiday calendar.
var NL Calendar = nl{}

func (nl) IsHoliday(date time.Time) bool {
	y, m, d := date.Date()

	switch {
	case m == time.January && d == 1: // Nieuwjaarsdag
		return true
	case m == time.April && d == 27: // Koningsdag
		return true
	case m == time.May && d == 5: // Bevrijdingsdag (not a fully recognized rest day every year, but observed)
		return true
	case m == time.December && d == 25: // Eerste Kerstdag
		return true
	case m == time.December && d == 26: // Tweede Kerstdag
		return true
	}

	easter := easterSunday(y)
	movable := map[time.Time]struct{}{
		easter:                       {},                    // Eerste Paasdag
		easter.AddDate(0, 0, 1):      {},                    // Tweede Paasdag
		easter.AddDate(0, 0, 39):     {},                    // Hemelvaartsdag
		easter.AddDate(0, 0, 49):     {},                    // Eerste Pinksterdag
		easter.AddDate(0, 0, 50):     {},                    // Tweede Pinksterdag
	}
	normalized := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	_, ok := movable[normalized]
	return ok
}

// easterSunday computes the Gregorian Easter Sunday for year y using the
// anonymous Gregorian algorithm.
func easterSunday(y int) time.Time {
	a := y % 19
	b := y / 100
	c := y % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(y, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
