// Package constraint implements the catalog of planning constraints
// (coverage, rest, forbidden patterns, per-employee overrides) and their
// linear encodings against a cpmodel.Program.
package constraint

import (
	"log"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// VarTable looks up the decision variable for one (employee id, shift)
// pair. The solver builder owns the concrete table; constraints only ever
// read from it.
type VarTable interface {
	Get(employeeID int, shift calendar.Shift) cpmodel.BoolVar
}

// PlanningConstraint is a single named rule that knows how to install
// itself into a cpmodel.Program. Every concrete constraint implements this
// with one method, per the design's "tagged variant" guidance — no
// inheritance chains.
type PlanningConstraint interface {
	// EmployeeIDs returns the ids this constraint applies to.
	EmployeeIDs() []int
	// SetEmployeeIDs overrides the ids this constraint applies to; used by
	// Constraints.Add to apply the aggregator's default id list.
	SetEmployeeIDs(ids []int)
	// AddConstraint installs the constraint's relations for the given
	// slots into program, using table to resolve decision variables.
	AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable)
}

// Constraints aggregates the full catalog for one planning: the two
// singleton constraints (WorkersPerShift, ShiftsPerDay) plus the three
// repeatable lists, iterated in a fixed, stable order.
type Constraints struct {
	DefaultEmployeeIDs []int

	workersPerShift *WorkersPerShift
	shiftsPerDay    *ShiftsPerDay

	specificShifts       []*SpecificShifts
	maxConsecutiveShifts []*MaxConsecutiveShifts
	maxRecurrentShifts   []*MaxRecurrentShifts
}

// NewConstraints returns an empty aggregator.
func NewConstraints() *Constraints {
	return &Constraints{}
}

// Add installs constraint into the aggregator, dispatching by concrete
// type. If employeeIDs is non-empty it overrides the constraint's id list;
// otherwise DefaultEmployeeIDs is used. Replacing a previously set
// singleton (WorkersPerShift, ShiftsPerDay) logs a warning and keeps the
// newest value — last-writer-wins, a non-fatal planning warning per the
// design's error taxonomy.
func (c *Constraints) Add(pc PlanningConstraint, employeeIDs ...int) {
	ids := employeeIDs
	if len(ids) == 0 {
		ids = c.DefaultEmployeeIDs
	}
	pc.SetEmployeeIDs(ids)

	switch v := pc.(type) {
	case *WorkersPerShift:
		if c.workersPerShift != nil {
			log.Println("constraint: replacing existing workers-per-shift constraint")
		}
		c.workersPerShift = v
	case *ShiftsPerDay:
		if c.shiftsPerDay != nil {
			log.Println("constraint: replacing existing shifts-per-day constraint")
		}
		c.shiftsPerDay = v
	case *SpecificShifts:
		c.specificShifts = append(c.specificShifts, v)
	case *MaxConsecutiveShifts:
		c.maxConsecutiveShifts = append(c.maxConsecutiveShifts, v)
	case *MaxRecurrentShifts:
		c.maxRecurrentShifts = append(c.maxRecurrentShifts, v)
	default:
		panic("constraint: unknown PlanningConstraint variant")
	}
}

// All returns every installed constraint in stable iteration order:
// WorkersPerShift, ShiftsPerDay, then the three lists in declaration order.
func (c *Constraints) All() []PlanningConstraint {
	var all []PlanningConstraint
	if c.workersPerShift != nil {
		all = append(all, c.workersPerShift)
	}
	if c.shiftsPerDay != nil {
		all = append(all, c.shiftsPerDay)
	}
	for _, v := range c.specificShifts {
		all = append(all, v)
	}
	for _, v := range c.maxConsecutiveShifts {
		all = append(all, v)
	}
	for _, v := range c.maxRecurrentShifts {
		all = append(all, v)
	}
	return all
}

// baseConstraint factors the EmployeeIDs/SetEmployeeIDs bookkeeping every
// concrete constraint needs.
type baseConstraint struct {
	employeeIDs []int
}

// EmployeeIDs implements PlanningConstraint.
func (b *baseConstraint) EmployeeIDs() []int { return b.employeeIDs }

// SetEmployeeIDs implements PlanningConstraint.
func (b *baseConstraint) SetEmployeeIDs(ids []int) { b.employeeIDs = ids }

func terms(table VarTable, employeeID int, shifts []calendar.Shift) []cpmodel.Term {
	ts := make([]cpmodel.Term, len(shifts))
	for i, shift := range shifts {
		ts[i] = cpmodel.Term{Coefficient: 1, Var: table.Get(employeeID, shift)}
	}
	return ts
}

func boolVars(table VarTable, employeeID int, shifts []calendar.Shift) []cpmodel.BoolVar {
	vs := make([]cpmodel.BoolVar, len(shifts))
	for i, shift := range shifts {
		vs[i] = table.Get(employeeID, shift)
	}
	return vs
}
