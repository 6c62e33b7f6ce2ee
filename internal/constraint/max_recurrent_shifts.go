package constraint

import (
	"sort"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// MaxRecurrentShifts caps, per employee, the number of assignments on
// WeekDays (default: the weekend, {6,7}) within any pair of consecutive
// ISO weeks. The window rolls forward one week at a time, emitting one
// constraint per overlapping two-week pair (len(weeks)-1 constraints for
// len(weeks) distinct weeks) — the Open-Question resolution from the
// design notes.
type MaxRecurrentShifts struct {
	baseConstraint
	WeekDays []int
	Periods  []calendar.Period
	Max      int
}

// NewMaxRecurrentShifts returns a MaxRecurrentShifts constraint defaulting
// to the weekend (week days 6 and 7).
func NewMaxRecurrentShifts() *MaxRecurrentShifts {
	return &MaxRecurrentShifts{
		WeekDays: []int{6, 7},
		Periods:  calendar.DayAndEvening,
		Max:      1,
	}
}

type isoWeek struct {
	year, number int
}

// AddConstraint implements PlanningConstraint.
func (m *MaxRecurrentShifts) AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	sorted := make([]calendar.Slot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Shift.Less(sorted[j].Shift) })

	weeksInOrder, slotsByWeek := groupByISOWeek(sorted)
	if len(weeksInOrder) < 2 {
		return
	}

	for _, pair := range calendar.Windows(weeksInOrder, 2) {
		union := append(append([]calendar.Slot{}, slotsByWeek[pair[0]]...), slotsByWeek[pair[1]]...)
		shifts := make([]calendar.Shift, 0, len(union))
		for _, slot := range union {
			if containsWeekDay(m.WeekDays, slot.Day.WeekDay()) {
				shifts = append(shifts, slot.Shift)
			}
		}
		for _, id := range m.employeeIDs {
			program.AddLessOrEqual(terms(table, id, shifts), float64(m.Max))
		}
	}
}

// groupByISOWeek partitions sorted slots by (ISOYear, WeekNumber), keeping
// the first-seen week order.
func groupByISOWeek(sorted []calendar.Slot) ([]isoWeek, map[isoWeek][]calendar.Slot) {
	var order []isoWeek
	grouped := map[isoWeek][]calendar.Slot{}
	for _, slot := range sorted {
		key := isoWeek{year: slot.Day.ISOYear(), number: slot.Day.WeekNumber()}
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], slot)
	}
	return order, grouped
}

func containsWeekDay(weekDays []int, wd int) bool {
	for _, w := range weekDays {
		if w == wd {
			return true
		}
	}
	return false
}
