package constraint

import (
	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// MaxConsecutiveShifts forbids more than Max assigned shifts within any
// sliding Window over the slots whose period is in Periods and whose day's
// week-day is in WeekDays. The default (window=2, max=1) forbids back-to-
// back shift pairs such as an evening shift immediately followed by the
// next day's day shift.
type MaxConsecutiveShifts struct {
	baseConstraint
	WeekDays []int
	Periods  []calendar.Period
	Max      int
	Window   int
}

// NewMaxConsecutiveShifts returns a MaxConsecutiveShifts constraint with
// the source's defaults (all week days, DayAndEvening periods, max=1,
// window=2) overridable via the returned pointer's fields.
func NewMaxConsecutiveShifts() *MaxConsecutiveShifts {
	return &MaxConsecutiveShifts{
		WeekDays: calendar.AllWeekDays,
		Periods:  calendar.DayAndEvening,
		Max:      1,
		Window:   2,
	}
}

// AddConstraint implements PlanningConstraint. The slot stream is filtered
// to Periods *before* windowing, so a window can span a day boundary when
// intervening periods are excluded from Periods.
func (m *MaxConsecutiveShifts) AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	filtered := filterByPeriod(slots, m.Periods)

	for _, window := range calendar.GetConsecutiveShifts(filtered, m.WeekDays, m.Window) {
		shifts := make([]calendar.Shift, len(window))
		for i, slot := range window {
			shifts[i] = slot.Shift
		}
		for _, id := range m.employeeIDs {
			program.AddLessOrEqual(terms(table, id, shifts), float64(m.Max))
		}
	}
}

func filterByPeriod(slots []calendar.Slot, periods []calendar.Period) []calendar.Slot {
	allowed := make(map[int]struct{}, len(periods))
	for _, p := range periods {
		allowed[p.Value()] = struct{}{}
	}
	var out []calendar.Slot
	for _, slot := range slots {
		if _, ok := allowed[slot.Period.Value()]; ok {
			out = append(out, slot)
		}
	}
	return out
}
