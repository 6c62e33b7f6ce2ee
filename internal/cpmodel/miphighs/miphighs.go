// Package miphighs implements cpmodel.Program over a real MIP solver:
// github.com/nextmv-io/go-mip builds the model, github.com/nextmv-io/go-highs
// solves it. This is the one concrete adapter the CLI (cmd/roster) wires up;
// the core library only ever sees the cpmodel.Program interface.
//
// HiGHS speaks mixed-integer programming, not native CP-SAT constructs, so
// AddAtMostOne/AddExactlyOne/AddMaxEquality/AddIntSumMaxEquality are lowered
// to plain linear relations here instead of using any solver-native
// primitive.
package miphighs

import (
	"fmt"
	"math"

	"github.com/nextmv-io/go-highs"
	"github.com/nextmv-io/go-mip"

	"github.com/HHoofs/shift/internal/cpmodel"
)

// BoolVar wraps a mip.Bool with the diagnostic name cpmodel callers supply.
// go-mip variables carry no name of their own, so the name only ever
// surfaces in our own error messages and logs.
type BoolVar struct {
	name string
	v    mip.Bool
}

// Name implements cpmodel.BoolVar.
func (b *BoolVar) Name() string { return b.name }

// Mip exposes the underlying mip.Bool, for callers (cmd/roster) that need
// to read a raw mip.Solution directly rather than through
// cpmodel.Solution.
func (b *BoolVar) Mip() mip.Bool { return b.v }

// IntVar wraps a mip.Int with bounds and a diagnostic name.
type IntVar struct {
	name       string
	lower, upp int
	v          mip.Int
}

// Name implements cpmodel.IntVar.
func (i *IntVar) Name() string { return i.name }

// Lower implements cpmodel.IntVar.
func (i *IntVar) Lower() int { return i.lower }

// Upper implements cpmodel.IntVar.
func (i *IntVar) Upper() int { return i.upp }

// Program is a cpmodel.Program backed by a mip.Model.
type Program struct {
	model mip.Model
}

// New returns a Program wrapping a fresh mip.Model, minimizing by default
// (the only direction the builder ever uses).
func New() *Program {
	m := mip.NewModel()
	m.Objective().SetMinimize()
	return &Program{model: m}
}

// Model exposes the underlying mip.Model, e.g. so the caller can hand it to
// a solver.
func (p *Program) Model() mip.Model { return p.model }

// NewBoolVar implements cpmodel.Program.
func (p *Program) NewBoolVar(name string) cpmodel.BoolVar {
	return &BoolVar{name: name, v: p.model.NewBool()}
}

// NewIntVar implements cpmodel.Program.
func (p *Program) NewIntVar(lower, upper int, name string) cpmodel.IntVar {
	return &IntVar{name: name, lower: lower, upp: upper, v: p.model.NewInt(lower, upper)}
}

// AddLinear implements cpmodel.Program. HiGHS constraints are single-sided,
// so a double-bounded relation lowers to (at most) two LessThanOrEqual
// constraints: the upper bound as given, and the lower bound restated on
// the negated terms.
func (p *Program) AddLinear(terms []cpmodel.Term, lower, upper float64) {
	if !math.IsInf(upper, 1) {
		c := p.model.NewConstraint(mip.LessThanOrEqual, upper)
		for _, t := range terms {
			c.NewTerm(t.Coefficient, mustBool(t.Var).v)
		}
	}
	if !math.IsInf(lower, -1) {
		c := p.model.NewConstraint(mip.LessThanOrEqual, -lower)
		for _, t := range terms {
			c.NewTerm(-t.Coefficient, mustBool(t.Var).v)
		}
	}
}

// AddEqual implements cpmodel.Program.
func (p *Program) AddEqual(terms []cpmodel.Term, value float64) {
	c := p.model.NewConstraint(mip.Equal, value)
	for _, t := range terms {
		c.NewTerm(t.Coefficient, mustBool(t.Var).v)
	}
}

// AddLessOrEqual implements cpmodel.Program.
func (p *Program) AddLessOrEqual(terms []cpmodel.Term, value float64) {
	c := p.model.NewConstraint(mip.LessThanOrEqual, value)
	for _, t := range terms {
		c.NewTerm(t.Coefficient, mustBool(t.Var).v)
	}
}

// AddAtMostOne implements cpmodel.Program as sum(vars) <= 1.
func (p *Program) AddAtMostOne(vars []cpmodel.BoolVar) {
	p.AddLessOrEqual(toTerms(vars), 1)
}

// AddExactlyOne implements cpmodel.Program as sum(vars) == 1.
func (p *Program) AddExactlyOne(vars []cpmodel.BoolVar) {
	p.AddEqual(toTerms(vars), 1)
}

// AddMaxEquality implements cpmodel.Program as the standard binary-OR
// encoding: target >= v for every v (forces target up when any v is set),
// and target <= sum(vars) (forbids target from floating up when every v is
// 0). This is exact because vars are 0/1.
func (p *Program) AddMaxEquality(target cpmodel.IntVar, vars []cpmodel.BoolVar) {
	t := mustInt(target)
	if len(vars) == 0 {
		c := p.model.NewConstraint(mip.Equal, 0)
		c.NewTerm(1, t.v)
		return
	}
	for _, v := range vars {
		c := p.model.NewConstraint(mip.LessThanOrEqual, 0)
		c.NewTerm(1, mustBool(v).v)
		c.NewTerm(-1, t.v)
	}
	upper := p.model.NewConstraint(mip.LessThanOrEqual, 0)
	upper.NewTerm(1, t.v)
	for _, v := range vars {
		upper.NewTerm(-1, mustBool(v).v)
	}
}

// AddIntSumMaxEquality implements cpmodel.Program as target = max_i(sum_i),
// where each sum_i is itself a sum of bool vars. Unlike AddMaxEquality, the
// terms being maxed aren't individually binary, so the plain upper-bound
// trick isn't exact; a selector-indicator encoding is used instead: one
// boolean y_i per candidate sum with sum(y_i) == 1, target <= sum_i +
// M*(1-y_i) for every i (so only the selected sum constrains target from
// above), and target >= sum_i for every i (so target can never be below
// the true max).
func (p *Program) AddIntSumMaxEquality(target cpmodel.IntVar, sums [][]cpmodel.BoolVar) {
	t := mustInt(target)
	if len(sums) == 0 {
		c := p.model.NewConstraint(mip.Equal, 0)
		c.NewTerm(1, t.v)
		return
	}

	bigM := float64(t.Upper())

	selectors := make([]mip.Bool, len(sums))
	selectSum := p.model.NewConstraint(mip.Equal, 1)
	for i := range sums {
		selectors[i] = p.model.NewBool()
		selectSum.NewTerm(1, selectors[i])
	}

	for i, sum := range sums {
		// target >= sum_i  =>  sum_i - target <= 0
		lower := p.model.NewConstraint(mip.LessThanOrEqual, 0)
		for _, v := range sum {
			lower.NewTerm(1, mustBool(v).v)
		}
		lower.NewTerm(-1, t.v)

		// target <= sum_i + M*(1-y_i)  =>  target - sum_i + M*y_i <= M
		upper := p.model.NewConstraint(mip.LessThanOrEqual, bigM)
		upper.NewTerm(1, t.v)
		for _, v := range sum {
			upper.NewTerm(-1, mustBool(v).v)
		}
		upper.NewTerm(bigM, selectors[i])
	}
}

// SetObjectiveMinimize implements cpmodel.Program.
func (p *Program) SetObjectiveMinimize(terms []cpmodel.IntTerm) {
	obj := p.model.Objective()
	obj.SetMinimize()
	for _, t := range terms {
		switch {
		case t.BoolVar != nil:
			obj.NewTerm(t.Coefficient, mustBool(t.BoolVar).v)
		case t.IntVar != nil:
			obj.NewTerm(t.Coefficient, mustInt(t.IntVar).v)
		}
	}
}

func toTerms(vars []cpmodel.BoolVar) []cpmodel.Term {
	terms := make([]cpmodel.Term, len(vars))
	for i, v := range vars {
		terms[i] = cpmodel.Term{Coefficient: 1, Var: v}
	}
	return terms
}

func mustBool(v cpmodel.BoolVar) *BoolVar {
	b, ok := v.(*BoolVar)
	if !ok {
		panic(fmt.Sprintf("miphighs: %T is not a miphighs.BoolVar", v))
	}
	return b
}

func mustInt(v cpmodel.IntVar) *IntVar {
	i, ok := v.(*IntVar)
	if !ok {
		panic(fmt.Sprintf("miphighs: %T is not a miphighs.IntVar", v))
	}
	return i
}

// Solve submits the program to HiGHS and adapts its result to
// cpmodel.Solution.
func (p *Program) Solve(options mip.SolveOptions) (*Solution, error) {
	solver := highs.NewSolver(p.model)
	solution, err := solver.Solve(options)
	if err != nil {
		return nil, fmt.Errorf("miphighs: solve: %w", err)
	}
	return &Solution{solution: solution}, nil
}

// Solution adapts a mip.Solution to cpmodel.Solution.
type Solution struct {
	solution mip.Solution
}

// Status implements cpmodel.Solution.
func (s *Solution) Status() cpmodel.Status {
	switch {
	case s.solution == nil:
		return cpmodel.StatusUnknown
	case s.solution.IsOptimal():
		return cpmodel.StatusOptimal
	case s.solution.IsSubOptimal():
		return cpmodel.StatusFeasible
	default:
		return cpmodel.StatusInfeasible
	}
}

// Value implements cpmodel.Solution.
func (s *Solution) Value(v cpmodel.BoolVar) int {
	if s.solution.Value(mustBool(v).v) >= 0.9 {
		return 1
	}
	return 0
}

// IntValue implements cpmodel.Solution.
func (s *Solution) IntValue(v cpmodel.IntVar) int {
	return int(math.Round(s.solution.Value(mustInt(v).v)))
}

// Stats implements cpmodel.Solution.
func (s *Solution) Stats() cpmodel.Stats {
	return cpmodel.Stats{}
}
