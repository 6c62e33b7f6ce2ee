package constraint

import (
	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// ShiftsPerDay caps every applicable employee at N shifts per day. Only
// N=1 is supported; any other value is a programmer error.
type ShiftsPerDay struct {
	baseConstraint
	N int
}

// NewShiftsPerDay returns a ShiftsPerDay constraint. It panics if n != 1.
func NewShiftsPerDay(n int) *ShiftsPerDay {
	if n != 1 {
		panic("constraint: ShiftsPerDay only supports N == 1")
	}
	return &ShiftsPerDay{N: n}
}

// AddConstraint implements PlanningConstraint.
func (s *ShiftsPerDay) AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	for _, daySlots := range groupByDay(slots) {
		shifts := make([]calendar.Shift, len(daySlots))
		for i, slot := range daySlots {
			shifts[i] = slot.Shift
		}
		for _, id := range s.employeeIDs {
			program.AddAtMostOne(boolVars(table, id, shifts))
		}
	}
}

// groupByDay partitions slots into contiguous runs sharing the same day,
// assuming slots arrive already sorted by (day, period) — the invariant
// Planning.Slots() guarantees.
func groupByDay(slots []calendar.Slot) [][]calendar.Slot {
	var groups [][]calendar.Slot
	var current []calendar.Slot
	for _, slot := range slots {
		if len(current) > 0 && !current[0].Day.Equal(slot.Day) {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, slot)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}
