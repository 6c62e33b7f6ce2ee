// Package recording implements cpmodel.Program as an in-memory recorder:
// it allocates variables and appends constraint/objective records without
// ever solving anything. Unit tests use it to assert structural properties
// (variable counts, per-constraint bounds, coefficient sets) the way the
// design notes recommend, instead of driving a real solver end to end.
package recording

import (
	"fmt"
	"math"

	"github.com/HHoofs/shift/internal/cpmodel"
)

// BoolVar is a recorded boolean variable.
type BoolVar struct {
	name  string
	index int
}

// Name implements cpmodel.BoolVar.
func (v *BoolVar) Name() string { return v.name }

// Index returns the allocation order of the variable, useful for golden
// assertions on variable counts.
func (v *BoolVar) Index() int { return v.index }

// IntVar is a recorded integer variable.
type IntVar struct {
	name       string
	lower, upp int
	index      int
}

// Name implements cpmodel.IntVar.
func (v *IntVar) Name() string { return v.name }

// Lower implements cpmodel.IntVar.
func (v *IntVar) Lower() int { return v.lower }

// Upper implements cpmodel.IntVar.
func (v *IntVar) Upper() int { return v.upp }

// Index returns the allocation order of the variable.
func (v *IntVar) Index() int { return v.index }

// LinearConstraint records one installed linear relation, in the solver's
// original terms (before any backend-specific lowering).
type LinearConstraint struct {
	Terms []cpmodel.Term
	Lower float64
	Upper float64
}

// MaxEqualityConstraint records one AddMaxEquality / AddIntSumMaxEquality
// call.
type MaxEqualityConstraint struct {
	Target cpmodel.IntVar
	Vars   []cpmodel.BoolVar
	Sums   [][]cpmodel.BoolVar
}

// Program is the structural test double for cpmodel.Program.
type Program struct {
	BoolVars []*BoolVar
	IntVars  []*IntVar

	LinearConstraints []LinearConstraint
	MaxEqualities     []MaxEqualityConstraint

	Objective []cpmodel.IntTerm
}

// New returns an empty recording Program.
func New() *Program {
	return &Program{}
}

// NewBoolVar implements cpmodel.Program.
func (p *Program) NewBoolVar(name string) cpmodel.BoolVar {
	v := &BoolVar{name: name, index: len(p.BoolVars)}
	p.BoolVars = append(p.BoolVars, v)
	return v
}

// NewIntVar implements cpmodel.Program.
func (p *Program) NewIntVar(lower, upper int, name string) cpmodel.IntVar {
	v := &IntVar{name: name, lower: lower, upp: upper, index: len(p.IntVars)}
	p.IntVars = append(p.IntVars, v)
	return v
}

// AddLinear implements cpmodel.Program.
func (p *Program) AddLinear(terms []cpmodel.Term, lower, upper float64) {
	p.LinearConstraints = append(p.LinearConstraints, LinearConstraint{Terms: terms, Lower: lower, Upper: upper})
}

// AddEqual implements cpmodel.Program.
func (p *Program) AddEqual(terms []cpmodel.Term, value float64) {
	p.AddLinear(terms, value, value)
}

// AddLessOrEqual implements cpmodel.Program.
func (p *Program) AddLessOrEqual(terms []cpmodel.Term, value float64) {
	p.AddLinear(terms, math.Inf(-1), value)
}

// AddAtMostOne implements cpmodel.Program.
func (p *Program) AddAtMostOne(vars []cpmodel.BoolVar) {
	p.AddLessOrEqual(toTerms(vars), 1)
}

// AddExactlyOne implements cpmodel.Program.
func (p *Program) AddExactlyOne(vars []cpmodel.BoolVar) {
	p.AddEqual(toTerms(vars), 1)
}

// AddMaxEquality implements cpmodel.Program.
func (p *Program) AddMaxEquality(target cpmodel.IntVar, vars []cpmodel.BoolVar) {
	p.MaxEqualities = append(p.MaxEqualities, MaxEqualityConstraint{Target: target, Vars: vars})
}

// AddIntSumMaxEquality implements cpmodel.Program.
func (p *Program) AddIntSumMaxEquality(target cpmodel.IntVar, sums [][]cpmodel.BoolVar) {
	p.MaxEqualities = append(p.MaxEqualities, MaxEqualityConstraint{Target: target, Sums: sums})
}

// SetObjectiveMinimize implements cpmodel.Program.
func (p *Program) SetObjectiveMinimize(terms []cpmodel.IntTerm) {
	p.Objective = terms
}

func toTerms(vars []cpmodel.BoolVar) []cpmodel.Term {
	terms := make([]cpmodel.Term, len(vars))
	for i, v := range vars {
		terms[i] = cpmodel.Term{Coefficient: 1, Var: v}
	}
	return terms
}

// String renders a short human summary, useful when debugging a failing
// golden assertion.
func (p *Program) String() string {
	return fmt.Sprintf(
		"recording.Program{bools:%d ints:%d linear:%d maxeq:%d}",
		len(p.BoolVars), len(p.IntVars), len(p.LinearConstraints), len(p.MaxEqualities),
	)
}
