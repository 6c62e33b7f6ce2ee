package solverbuilder_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/constraint"
	"github.com/HHoofs/shift/internal/cpmodel/recording"
	"github.com/HHoofs/shift/internal/distribution"
	"github.com/HHoofs/shift/internal/solverbuilder"
)

func day(y int, m time.Month, d int) calendar.Day {
	return calendar.NewDay(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func weekShifts() []calendar.Shift {
	var shifts []calendar.Shift
	start := day(2002, time.February, 4)
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		for _, p := range calendar.DayAndEvening {
			shifts = append(shifts, calendar.NewShift(p, d))
		}
	}
	return shifts
}

func TestSolverAllocatesCartesianProductOfVariables(t *testing.T) {
	shifts := weekShifts()
	var ids []int
	for i := 0; i < 10; i++ {
		ids = append(ids, i)
	}

	program := recording.New()
	solverbuilder.New("planning-1", ids, shifts, program)

	assert.Len(t, program.BoolVars, 10*7*2)
}

func TestSolverAddConstraintsReappliedDoublesLinearConstraints(t *testing.T) {
	shifts := weekShifts()
	ids := []int{0, 1}

	program := recording.New()
	s := solverbuilder.New("planning-1", ids, shifts, program)

	var slots []calendar.Slot
	for _, shift := range shifts {
		slots = append(slots, calendar.NewSlot(shift, 1))
	}

	cs := constraint.NewConstraints()
	cs.DefaultEmployeeIDs = ids
	cs.Add(constraint.NewWorkersPerShift())

	s.AddConstraints(slots, program, cs)
	before := len(program.LinearConstraints)
	s.AddConstraints(slots, program, cs)

	require.Equal(t, before*2, len(program.LinearConstraints))
}

func TestSolverAddDistributionsReappliedDoublesLinearConstraints(t *testing.T) {
	shifts := weekShifts()
	ids := []int{0, 1}

	program := recording.New()
	s := solverbuilder.New("planning-1", ids, shifts, program)

	var slots []calendar.Slot
	for _, shift := range shifts {
		slots = append(slots, calendar.NewSlot(shift, 1))
	}

	ds := distribution.NewDistributions()
	ds.Add(distribution.NewNShifts(0))
	hours := map[int]int{0: 1, 1: 1}

	s.AddDistributions(slots, program, ds, hours)
	before := len(program.LinearConstraints)
	s.AddDistributions(slots, program, ds, hours)

	assert.Equal(t, before*2, len(program.LinearConstraints))
}
