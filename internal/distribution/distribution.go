// Package distribution implements the catalog of pro-rating distributions
// (bounding assignment counts per employee, proportional to contract
// hours) and their linear encodings against a cpmodel.Program.
package distribution

import (
	"math"
	"sort"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// VarTable looks up the decision variable for one (employee id, shift)
// pair. Mirrors constraint.VarTable; distributions never import the
// constraint package, so the interface is restated rather than shared.
type VarTable interface {
	Get(employeeID int, shift calendar.Shift) cpmodel.BoolVar
}

// PlanningDistribution bounds the count of assignments one employee
// receives over some subset of slots, proportional to that employee's
// contract hours against the total.
type PlanningDistribution interface {
	AddDistribution(slots []calendar.Slot, program cpmodel.Program, table VarTable, employeeHours map[int]int)
}

// Distributions aggregates the full catalog for one planning: n_shifts then
// n_shifts_monthly, in insertion order.
type Distributions struct {
	nShifts        []*NShifts
	nShiftsMonthly []*NShiftsMonthly
}

// NewDistributions returns an empty aggregator.
func NewDistributions() *Distributions {
	return &Distributions{}
}

// Add installs distribution into the aggregator, dispatching by concrete
// type.
func (d *Distributions) Add(pd PlanningDistribution) {
	switch v := pd.(type) {
	case *NShifts:
		d.nShifts = append(d.nShifts, v)
	case *NShiftsMonthly:
		d.nShiftsMonthly = append(d.nShiftsMonthly, v)
	default:
		panic("distribution: unknown PlanningDistribution variant")
	}
}

// All returns every installed distribution in stable iteration order:
// n_shifts first, then n_shifts_monthly, each list in declaration order.
func (d *Distributions) All() []PlanningDistribution {
	var all []PlanningDistribution
	for _, v := range d.nShifts {
		all = append(all, v)
	}
	for _, v := range d.nShiftsMonthly {
		all = append(all, v)
	}
	return all
}

// getBounds computes the (lower, upper) integer window around v, widened
// by offset on both sides. When v is already integral the window is
// symmetric around that integer; otherwise it spans the floor and the
// ceiling. The integrality check is made on v itself, not on its floor,
// which is the integer-safe fix: a naive variant floors first and then asks the
// (already-integral) floor whether it is integral, which is always true
// and silently collapses the upper bound.
func getBounds(v float64, offset int) (int, int) {
	lower := int(math.Floor(v))
	if v == math.Trunc(v) {
		return lower - offset, lower + offset
	}
	upper := int(math.Ceil(v))
	return lower - offset, upper + offset
}

// distribute emits, for each (employeeID, hours) pair in employeeHours, a
// bound lo <= sum(x[employeeID, shift] for shift in slots) <= hi where
// lo/hi are getBounds(expected share, offset) and the expected share is
// the employee's hours as a fraction of total_hours times total_shifts
// (the sum of slots' NEmployees).
func distribute(slots []calendar.Slot, program cpmodel.Program, table VarTable, employeeHours map[int]int, offset int) {
	totalHours := 0
	for _, hours := range employeeHours {
		totalHours += hours
	}
	if totalHours == 0 {
		return
	}

	totalShifts := 0
	for _, slot := range slots {
		totalShifts += slot.NEmployees
	}

	shifts := make([]calendar.Shift, len(slots))
	for i, slot := range slots {
		shifts[i] = slot.Shift
	}

	ids := make([]int, 0, len(employeeHours))
	for id := range employeeHours {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		expected := float64(employeeHours[id]) / float64(totalHours) * float64(totalShifts)
		lo, hi := getBounds(expected, offset)

		terms := make([]cpmodel.Term, len(shifts))
		for i, shift := range shifts {
			terms[i] = cpmodel.Term{Coefficient: 1, Var: table.Get(id, shift)}
		}
		program.AddLinear(terms, float64(lo), float64(hi))
	}
}

// NShifts bounds each employee's total assignment count across the full
// slot set.
type NShifts struct {
	Offset int
}

// NewNShifts returns an NShifts distribution with the given offset.
func NewNShifts(offset int) *NShifts {
	return &NShifts{Offset: offset}
}

// AddDistribution implements PlanningDistribution.
func (n *NShifts) AddDistribution(slots []calendar.Slot, program cpmodel.Program, table VarTable, employeeHours map[int]int) {
	distribute(slots, program, table, employeeHours, n.Offset)
}

// NShiftsMonthly bounds each employee's assignment count within each
// calendar month independently. Slots must already be sorted by day; the
// caller is responsible for that ordering.
type NShiftsMonthly struct {
	Offset int
}

// NewNShiftsMonthly returns an NShiftsMonthly distribution with the given
// offset.
func NewNShiftsMonthly(offset int) *NShiftsMonthly {
	return &NShiftsMonthly{Offset: offset}
}

// AddDistribution implements PlanningDistribution.
func (n *NShiftsMonthly) AddDistribution(slots []calendar.Slot, program cpmodel.Program, table VarTable, employeeHours map[int]int) {
	for _, monthSlots := range groupByMonth(slots) {
		distribute(monthSlots, program, table, employeeHours, n.Offset)
	}
}

// groupByMonth partitions slots into contiguous runs sharing the same
// calendar month, assuming slots arrive sorted by day.
func groupByMonth(slots []calendar.Slot) [][]calendar.Slot {
	var groups [][]calendar.Slot
	var current []calendar.Slot
	for _, slot := range slots {
		if len(current) > 0 && current[0].Day.Month() != slot.Day.Month() {
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
