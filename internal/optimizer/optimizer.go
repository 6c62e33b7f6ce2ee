// Package optimizer builds the secondary objective: push each employee
// toward a small, recurring set of week-days rather than thin spreading
// across many distinct ones.
package optimizer

import (
	"fmt"
	"sort"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// VarTable looks up the decision variable for one (employee id, shift)
// pair. Restated rather than imported from constraint/distribution, the
// same way those two restate it from each other — the optimizer has no
// reason to depend on either.
type VarTable interface {
	Get(employeeID int, shift calendar.Shift) cpmodel.BoolVar
}

// PlanningOptimization builds the objective over EmployeeIDs and WeekDays
// (default: all seven). For every (employee, week-day) pair it allocates an
// any_{e,w} indicator (1 iff the employee works that week-day at least
// once) and accumulates n_{e,w}, the count of assignments on that
// week-day. It then allocates peak_e = max_w n_{e,w} per employee. The
// objective minimizes Σ any_{e,w} − Σ peak_e: the first term penalises
// spreading thinly over many week-days, the second rewards concentrating
// repeat assignments on a recurring few.
type PlanningOptimization struct {
	EmployeeIDs []int
	WeekDays    []int
}

// NewPlanningOptimization returns a PlanningOptimization over employeeIDs,
// defaulting WeekDays to the full ISO range.
func NewPlanningOptimization(employeeIDs []int) *PlanningOptimization {
	return &PlanningOptimization{
		EmployeeIDs: employeeIDs,
		WeekDays:    calendar.AllWeekDays,
	}
}

// AddObjective installs the any_{e,w} / peak_e helper variables and the
// resulting minimization objective into program.
func (o *PlanningOptimization) AddObjective(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	byWeekDay := groupByWeekDay(slots)

	var objective []cpmodel.IntTerm
	for _, id := range o.EmployeeIDs {
		sums := make([][]cpmodel.BoolVar, 0, len(o.WeekDays))

		for _, wd := range o.WeekDays {
			daySlots := byWeekDay[wd]
			vars := make([]cpmodel.BoolVar, len(daySlots))
			for i, slot := range daySlots {
				vars[i] = table.Get(id, slot.Shift)
			}

			anyVar := program.NewIntVar(0, 1, fmt.Sprintf("any(employee=%d, week_day=%d)", id, wd))
			program.AddMaxEquality(anyVar, vars)
			objective = append(objective, cpmodel.IntTerm{Coefficient: 1, IntVar: anyVar})

			sums = append(sums, vars)
		}

		peakVar := program.NewIntVar(0, len(slots), fmt.Sprintf("peak(employee=%d)", id))
		program.AddIntSumMaxEquality(peakVar, sums)
		objective = append(objective, cpmodel.IntTerm{Coefficient: -1, IntVar: peakVar})
	}

	program.SetObjectiveMinimize(objective)
}

// groupByWeekDay partitions slots by their day's ISO week-day.
func groupByWeekDay(slots []calendar.Slot) map[int][]calendar.Slot {
	grouped := map[int][]calendar.Slot{}
	for _, slot := range slots {
		wd := slot.Day.WeekDay()
		grouped[wd] = append(grouped[wd], slot)
	}
	for wd := range grouped {
		sort.Slice(grouped[wd], func(i, j int) bool { return grouped[wd][i].Shift.Less(grouped[wd][j].Shift) })
	}
	return grouped
}
