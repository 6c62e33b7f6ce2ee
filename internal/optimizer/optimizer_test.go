package optimizer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/cpmodel"
	"github.com/HHoofs/shift/internal/cpmodel/recording"
	"github.com/HHoofs/shift/internal/optimizer"
)

type fakeTable struct {
	program *recording.Program
	vars    map[int]map[calendar.Shift]cpmodel.BoolVar
}

func newFakeTable(program *recording.Program, employeeIDs []int, shifts []calendar.Shift) *fakeTable {
	t := &fakeTable{program: program, vars: map[int]map[calendar.Shift]cpmodel.BoolVar{}}
	for _, id := range employeeIDs {
		t.vars[id] = map[calendar.Shift]cpmodel.BoolVar{}
		for _, shift := range shifts {
			t.vars[id][shift] = program.NewBoolVar(shift.String())
		}
	}
	return t
}

func (t *fakeTable) Get(employeeID int, shift calendar.Shift) cpmodel.BoolVar {
	return t.vars[employeeID][shift]
}

func day(y int, m time.Month, d int) calendar.Day {
	return calendar.NewDay(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

func TestPlanningOptimizationBuildsOneAnyAndPeakPerEmployee(t *testing.T) {
	var shifts []calendar.Shift
	var slots []calendar.Slot
	start := day(2024, time.January, 1) // Monday
	for i := 0; i < 7; i++ {
		d := start.AddDays(i)
		s := calendar.NewShift(calendar.Day, d)
		shifts = append(shifts, s)
		slots = append(slots, calendar.NewSlot(s, 1))
	}
	ids := []int{1, 2}
	program := recording.New()
	table := newFakeTable(program, ids, shifts)

	o := optimizer.NewPlanningOptimization(ids)
	o.AddObjective(slots, program, table)

	// 7 week days * 2 employees any_{e,w} IntVars + 2 peak_e IntVars.
	require.Len(t, program.IntVars, 7*2+2)
	require.Len(t, program.MaxEqualities, 7*2+2)
	require.Len(t, program.Objective, 7*2+2)

	var anyCount, peakCount int
	for _, term := range program.Objective {
		switch term.Coefficient {
		case 1:
			anyCount++
		case -1:
			peakCount++
		}
	}
	assert.Equal(t, 14, anyCount)
	assert.Equal(t, 2, peakCount)
}

func TestPlanningOptimizationPeakVarDomainSpansAllSlots(t *testing.T) {
	shift := calendar.NewShift(calendar.Day, day(2024, time.January, 1))
	slots := []calendar.Slot{calendar.NewSlot(shift, 1)}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, []calendar.Shift{shift})

	o := optimizer.NewPlanningOptimization(ids)
	o.WeekDays = []int{1}
	o.AddObjective(slots, program, table)

	var peakVar *recording.IntVar
	for _, v := range program.IntVars {
		if v.Upper() == len(slots) && v.Lower() == 0 && v.Name() == "peak(employee=1)" {
			peakVar = v
		}
	}
	require.NotNil(t, peakVar)
	assert.Equal(t, 0, peakVar.Lower())
	assert.Equal(t, len(slots), peakVar.Upper())
}
