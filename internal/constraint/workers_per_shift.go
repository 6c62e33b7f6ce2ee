package constraint

import (
	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
)

// WorkersPerShift requires that, for every slot, exactly slot.NEmployees
// of the applicable employees are assigned to it.
type WorkersPerShift struct {
	baseConstraint
}

// NewWorkersPerShift returns a WorkersPerShift constraint.
func NewWorkersPerShift() *WorkersPerShift {
	return &WorkersPerShift{}
}

// AddConstraint implements PlanningConstraint. If slot.NEmployees exceeds
// len(employeeIDs), the emitted equality is simply unsatisfiable; the
// builder does not inspect this, per the design's "builder never inspects
// feasibility" — it only shows up later as a solver INFEASIBLE status.
func (w *WorkersPerShift) AddConstraint(slots []calendar.Slot, program cpmodel.Program, table VarTable) {
	for _, slot := range slots {
		ts := make([]cpmodel.Term, len(w.employeeIDs))
		for i, id := range w.employeeIDs {
			ts[i] = cpmodel.Term{Coefficient: 1, Var: table.Get(id, slot.Shift)}
		}
		program.AddEqual(ts, float64(slot.NEmployees))
	}
}
