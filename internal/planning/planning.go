package planning

import (
	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/constraint"
	"github.com/HHoofs/shift/internal/distribution"
	"github.com/HHoofs/shift/internal/specification"
)

// Planning is the declarative input to the whole pipeline: a horizon, a
// period family, a shift duration, a coverage target, the employee roster,
// and the Constraints/Distributions that apply.
//
// Planning owns its Constraints and Distributions; the solver builder only
// ever borrows them to install relations into a cpmodel.Program.
type Planning struct {
	FirstDay          calendar.Day
	LastDay           calendar.Day
	Periods           []calendar.Period
	ShiftDuration     int
	EmployeesPerShift int
	Employees         map[int]Employee // employee id -> Employee
	Constraints       *constraint.Constraints
	Distributions     *distribution.Distributions
}

// NewPlanning builds a Planning over [firstDay, lastDay] and panics if the
// range is reversed or no periods are supplied — both programmer errors,
// per the design's error taxonomy.
func NewPlanning(firstDay, lastDay calendar.Day, periods []calendar.Period, shiftDuration, employeesPerShift int) *Planning {
	if lastDay.Before(firstDay) {
		panic("planning: last_day is before first_day")
	}
	if len(periods) == 0 {
		panic("planning: periods must be non-empty")
	}
	return &Planning{
		FirstDay:          firstDay,
		LastDay:           lastDay,
		Periods:           periods,
		ShiftDuration:     shiftDuration,
		EmployeesPerShift: employeesPerShift,
		Employees:         map[int]Employee{},
		Constraints:       constraint.NewConstraints(),
		Distributions:     distribution.NewDistributions(),
	}
}

// AddEmployee enrolls e in the planning's roster, keyed by e.ID.
func (p *Planning) AddEmployee(e Employee) {
	p.Employees[e.ID] = e
}

// EmployeeIDs returns the ids of every enrolled employee, sorted ascending
// for deterministic downstream enumeration.
func (p *Planning) EmployeeIDs() []int {
	ids := make([]int, 0, len(p.Employees))
	for id := range p.Employees {
		ids = append(ids, id)
	}
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
	return ids
}

// EmployeeHours returns the enrolled roster's contract hours as an
// employee id -> hours map, the shape internal/distribution consumes.
func (p *Planning) EmployeeHours() map[int]int {
	hours := make(map[int]int, len(p.Employees))
	for id, e := range p.Employees {
		hours[id] = e.ContractHours
	}
	return hours
}

// Shifts enumerates every shift of the planning's horizon, across all of
// its periods, in (day, period) order.
func (p *Planning) Shifts() []calendar.Shift {
	first := calendar.NewShift(calendar.MinPeriod(p.Periods), p.FirstDay)
	last := calendar.NewShift(calendar.MaxPeriod(p.Periods), p.LastDay)
	return calendar.ShiftRange(first, last, p.Periods, true)
}

// AddSpecifications translates spec's blocked shifts, over this planning's
// full horizon, into a SpecificShifts constraint for spec's owning
// employee. This is the specifications-to-constraints bridge the system
// overview's dependency order (Calendar -> Specifications -> Planning ->
// Solver builder -> Optimizer) describes: Specifications never touches a
// cpmodel.Program directly, it only ever feeds a concrete constraint. A
// spec with no blocked shifts over the horizon is a no-op.
func (p *Planning) AddSpecifications(spec *specification.Specifications) {
	shifts := p.Shifts()
	if len(shifts) == 0 {
		return
	}

	blocked := spec.BlockedShifts(shifts[0], shifts[len(shifts)-1])
	if len(blocked) == 0 {
		return
	}

	overrides := make([]constraint.SpecificShiftOverride, len(blocked))
	for i, shift := range blocked {
		overrides[i] = constraint.SpecificShiftOverride{Shift: shift, Blocked: true}
	}
	p.Constraints.Add(constraint.NewSpecificShifts(overrides...), spec.EmployeeID)
}

// Slots returns one Slot per shift, each demanding EmployeesPerShift
// assignments.
func (p *Planning) Slots() []calendar.Slot {
	shifts := p.Shifts()
	slots := make([]calendar.Slot, len(shifts))
	for i, shift := range shifts {
		shift.DurationHours = p.ShiftDuration
		slots[i] = calendar.NewSlot(shift, p.EmployeesPerShift)
	}
	return slots
}
