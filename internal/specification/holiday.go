package specification

import (
	"sort"

	"github.com/HHoofs/shift/internal/calendar"
)

// Holiday spans an inclusive range of shifts, within one period family,
// that are all categorically unavailable. Its spec_type is fixed to
// UnavailableCor.
type Holiday struct {
	FirstShift calendar.Shift
	LastShift  calendar.Shift
	// Periods is the period family both FirstShift.Period and
	// LastShift.Period belong to; it is required explicitly in Go since
	// there is no runtime "same enum class" check available the way the
	// Python source inspects `type(self.last_shift.period)`.
	Periods []calendar.Period
}

// SpecForShift implements Specification. It panics if FirstShift and
// LastShift do not belong to the same period family — a programmer error,
// matching the source's ValueError.
func (h Holiday) SpecForShift(shift calendar.Shift) (SpecType, bool) {
	for _, s := range h.Shifts() {
		if shift.Equal(s) {
			return UnavailableCor, true
		}
	}
	return 0, false
}

// Shifts returns the inclusive shift range [FirstShift, LastShift].
func (h Holiday) Shifts() []calendar.Shift {
	if !periodBelongsTo(h.FirstShift.Period, h.Periods) || !periodBelongsTo(h.LastShift.Period, h.Periods) {
		panic("specification: Holiday.FirstShift and LastShift must share the same period family")
	}
	return calendar.ShiftRange(h.FirstShift, h.LastShift, h.Periods, true)
}

// Days returns the distinct days spanned by the holiday.
func (h Holiday) Days() []calendar.Day {
	seen := map[int64]calendar.Day{}
	for _, shift := range h.Shifts() {
		seen[shift.Day.Date().Unix()] = shift.Day
	}
	days := make([]calendar.Day, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// NShifts returns the number of shifts spanned by the holiday.
func (h Holiday) NShifts() int { return len(h.Shifts()) }

// NDays returns the number of distinct days spanned by the holiday.
func (h Holiday) NDays() int { return len(h.Days()) }

func periodBelongsTo(period calendar.Period, family []calendar.Period) bool {
	for _, p := range family {
		if p.Equal(period) {
			return true
		}
	}
	return false
}
