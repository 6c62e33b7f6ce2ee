// Package planning declares the declarative planning input: the employee
// roster, the scheduling horizon, and (by composition) the constraints and
// distributions that apply to it.
package planning

// Employee is a worker with a contracted weekly workload. Equality (Equal)
// is by ID; two Employee values with the same ID are considered the same
// employee regardless of other fields.
type Employee struct {
	ID              int
	Name            string
	ContractHours   int
	SpecificationID *int
}

// Equal reports whether e and other are the same employee, by ID only.
func (e Employee) Equal(other Employee) bool { return e.ID == other.ID }

// String renders the employee's display name.
func (e Employee) String() string { return e.Name }
