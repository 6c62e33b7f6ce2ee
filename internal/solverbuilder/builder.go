// Package solverbuilder owns the decision-variable table and drives
// constraints, distributions and the optimizer objective into a
// cpmodel.Program.
package solverbuilder

import (
	"fmt"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/constraint"
	"github.com/HHoofs/shift/internal/cpmodel"
	"github.com/HHoofs/shift/internal/distribution"
)

// Solver allocates one boolean decision variable per (employee id, shift)
// pair in the Cartesian product of employeeIDs x shifts, and drives
// constraints/distributions/the optimizer against them. Variable names are
// a diagnostic-only human label; nothing in the package parses them back.
type Solver struct {
	PlanningID string

	employeeIDs []int
	shifts      []calendar.Shift
	vars        map[int]map[shiftKey]cpmodel.BoolVar

	addedConstraints   map[constraint.PlanningConstraint]struct{}
	addedDistributions map[distribution.PlanningDistribution]struct{}
}

type shiftKey struct {
	period int
	day    int64
}

func keyOf(shift calendar.Shift) shiftKey {
	return shiftKey{period: shift.Period.Value(), day: shift.Day.Date().Unix()}
}

// New allocates a Solver's variable table for planningID over employeeIDs
// and shifts, registering one boolean variable per pair with program.
func New(planningID string, employeeIDs []int, shifts []calendar.Shift, program cpmodel.Program) *Solver {
	s := &Solver{
		PlanningID:         planningID,
		employeeIDs:        employeeIDs,
		shifts:             shifts,
		vars:               make(map[int]map[shiftKey]cpmodel.BoolVar, len(employeeIDs)),
		addedConstraints:   map[constraint.PlanningConstraint]struct{}{},
		addedDistributions: map[distribution.PlanningDistribution]struct{}{},
	}

	for _, id := range employeeIDs {
		row := make(map[shiftKey]cpmodel.BoolVar, len(shifts))
		for _, shift := range shifts {
			name := fmt.Sprintf("Slot <Employee: %d; Shift: %s>", id, shift)
			row[keyOf(shift)] = program.NewBoolVar(name)
		}
		s.vars[id] = row
	}

	return s
}

// Get implements constraint.VarTable and distribution.VarTable. It panics
// if employeeID is not one the solver allocated variables for — a
// programmer error, per the design's error taxonomy.
func (s *Solver) Get(employeeID int, shift calendar.Shift) cpmodel.BoolVar {
	row, ok := s.vars[employeeID]
	if !ok {
		panic(fmt.Sprintf("solverbuilder: employee id %d is not in the planning", employeeID))
	}
	return row[keyOf(shift)]
}

// EmployeeIDs returns the ids the solver allocated variables for.
func (s *Solver) EmployeeIDs() []int { return s.employeeIDs }

// Shifts returns the shifts the solver allocated variables for.
func (s *Solver) Shifts() []calendar.Shift { return s.shifts }

// AddConstraints installs every constraint in constraints' catalog against
// slots and program. Constraints are always (re)installed; calling this
// twice with the same catalog doubles the emitted relations. addedConstraints
// records which constraint objects have ever been passed through this
// Solver; it is never consulted to suppress a call, and the Solver exposes
// no method to read it.
func (s *Solver) AddConstraints(slots []calendar.Slot, program cpmodel.Program, constraints *constraint.Constraints) {
	for _, c := range constraints.All() {
		c.AddConstraint(slots, program, s)
		s.addedConstraints[c] = struct{}{}
	}
}

// AddDistributions installs every distribution in distributions' catalog
// against slots and program. Distributions are always (re)installed; calling
// this twice with the same catalog doubles the emitted linear constraints;
// the repeated relations are redundant, so the feasible region is
// unchanged. addedDistributions records which distribution objects have
// ever been passed through; the Solver exposes no method to read it.
func (s *Solver) AddDistributions(slots []calendar.Slot, program cpmodel.Program, distributions *distribution.Distributions, employeeHours map[int]int) {
	for _, d := range distributions.All() {
		d.AddDistribution(slots, program, s, employeeHours)
		s.addedDistributions[d] = struct{}{}
	}
}
