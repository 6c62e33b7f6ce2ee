package constraint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/constraint"
	"github.com/HHoofs/shift/internal/cpmodel"
	"github.com/HHoofs/shift/internal/cpmodel/recording"
)

// fakeTable hands out one distinct bool var per (employeeID, shift), naming
// it the way the real solver builder would so failures are easy to read.
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

func TestWorkersPerShiftRequiresExactCoverage(t *testing.T) {
	slots := []calendar.Slot{
		calendar.NewSlot(calendar.NewShift(calendar.Day, day(2024, 1, 1)), 2),
		calendar.NewSlot(calendar.NewShift(calendar.Evening, day(2024, 1, 1)), 1),
	}
	ids := []int{1, 2, 3}
	program := recording.New()
	table := newFakeTable(program, ids, []calendar.Shift{slots[0].Shift, slots[1].Shift})

	c := constraint.NewWorkersPerShift()
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 2)
	assert.Equal(t, 2.0, program.LinearConstraints[0].Lower)
	assert.Equal(t, 2.0, program.LinearConstraints[0].Upper)
	assert.Len(t, program.LinearConstraints[0].Terms, 3)
	assert.Equal(t, 1.0, program.LinearConstraints[1].Lower)
}

func TestShiftsPerDayGroupsByDayOnly(t *testing.T) {
	slots := []calendar.Slot{
		calendar.NewSlot(calendar.NewShift(calendar.Day, day(2024, 1, 1)), 1),
		calendar.NewSlot(calendar.NewShift(calendar.Evening, day(2024, 1, 1)), 1),
		calendar.NewSlot(calendar.NewShift(calendar.Day, day(2024, 1, 2)), 1),
	}
	ids := []int{1}
	program := recording.New()
	shifts := []calendar.Shift{slots[0].Shift, slots[1].Shift, slots[2].Shift}
	table := newFakeTable(program, ids, shifts)

	c := constraint.NewShiftsPerDay(1)
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 2)
	assert.Len(t, program.LinearConstraints[0].Terms, 2)
	assert.Len(t, program.LinearConstraints[1].Terms, 1)
}

func TestShiftsPerDayPanicsOnUnsupportedN(t *testing.T) {
	assert.Panics(t, func() { constraint.NewShiftsPerDay(2) })
}

func TestSpecificShiftsBlocksAndForces(t *testing.T) {
	blockedShift := calendar.NewShift(calendar.Day, day(2024, 1, 1))
	forcedShift := calendar.NewShift(calendar.Evening, day(2024, 1, 1))
	slots := []calendar.Slot{
		calendar.NewSlot(blockedShift, 1),
		calendar.NewSlot(forcedShift, 1),
	}
	ids := []int{7}
	program := recording.New()
	table := newFakeTable(program, ids, []calendar.Shift{blockedShift, forcedShift})

	c := constraint.NewSpecificShifts(
		constraint.SpecificShiftOverride{Shift: blockedShift, Blocked: true},
		constraint.SpecificShiftOverride{Shift: forcedShift, Blocked: false},
	)
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 2)
	assert.Equal(t, 0.0, program.LinearConstraints[0].Upper)
	assert.Equal(t, 1.0, program.LinearConstraints[1].Lower)
	assert.Equal(t, 1.0, program.LinearConstraints[1].Upper)
}

func TestSpecificShiftsRequiresExactlyOneEmployee(t *testing.T) {
	program := recording.New()
	table := newFakeTable(program, nil, nil)
	c := constraint.NewSpecificShifts()
	c.SetEmployeeIDs([]int{1, 2})
	assert.Panics(t, func() { c.AddConstraint(nil, program, table) })
}

func TestSpecificShiftsIgnoresOverridesOutsideSlots(t *testing.T) {
	shift := calendar.NewShift(calendar.Day, day(2024, 1, 1))
	other := calendar.NewShift(calendar.Day, day(2024, 1, 2))
	slots := []calendar.Slot{calendar.NewSlot(shift, 1)}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, []calendar.Shift{shift})

	c := constraint.NewSpecificShifts(constraint.SpecificShiftOverride{Shift: other, Blocked: true})
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	assert.Empty(t, program.LinearConstraints)
}

func TestMaxConsecutiveShiftsDefaultForbidsBackToBack(t *testing.T) {
	// Evening on Monday followed immediately by Day on Tuesday: a single
	// width-2 window over the default DayAndEvening filter.
	monday := day(2024, 1, 1)
	tuesday := day(2024, 1, 2)
	shifts := []calendar.Shift{
		calendar.NewShift(calendar.Day, monday),
		calendar.NewShift(calendar.Evening, monday),
		calendar.NewShift(calendar.Day, tuesday),
		calendar.NewShift(calendar.Evening, tuesday),
	}
	var slots []calendar.Slot
	for _, s := range shifts {
		slots = append(slots, calendar.NewSlot(s, 1))
	}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, shifts)

	c := constraint.NewMaxConsecutiveShifts()
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 3)
	for _, lc := range program.LinearConstraints {
		assert.Equal(t, 1.0, lc.Upper)
		assert.Len(t, lc.Terms, 2)
	}
}

func TestMaxConsecutiveShiftsFiltersPeriodBeforeWindowing(t *testing.T) {
	// Restricting Periods to just Day means the evening shifts never enter
	// the window at all, so a day-evening-day run windows over days only.
	monday := day(2024, 1, 1)
	tuesday := day(2024, 1, 2)
	wednesday := day(2024, 1, 3)
	dayMon := calendar.NewShift(calendar.Day, monday)
	eveMon := calendar.NewShift(calendar.Evening, monday)
	dayTue := calendar.NewShift(calendar.Day, tuesday)
	dayWed := calendar.NewShift(calendar.Day, wednesday)
	shifts := []calendar.Shift{dayMon, eveMon, dayTue, dayWed}
	var slots []calendar.Slot
	for _, s := range shifts {
		slots = append(slots, calendar.NewSlot(s, 1))
	}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, shifts)

	c := constraint.NewMaxConsecutiveShifts()
	c.Periods = []calendar.Period{calendar.Day}
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 2)
	assert.ElementsMatch(t,
		[]cpmodel.BoolVar{table.Get(1, dayMon), table.Get(1, dayTue)},
		[]cpmodel.BoolVar{program.LinearConstraints[0].Terms[0].Var, program.LinearConstraints[0].Terms[1].Var},
	)
}

func TestMaxRecurrentShiftsRollsWeekByWeek(t *testing.T) {
	// Three consecutive Sundays span two overlapping week pairs, so two
	// constraints should be emitted (len(weeks)-1).
	sundays := []calendar.Day{day(2024, 1, 7), day(2024, 1, 14), day(2024, 1, 21)}
	var shifts []calendar.Shift
	var slots []calendar.Slot
	for _, sun := range sundays {
		s := calendar.NewShift(calendar.Day, sun)
		shifts = append(shifts, s)
		slots = append(slots, calendar.NewSlot(s, 1))
	}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, shifts)

	c := constraint.NewMaxRecurrentShifts()
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 2)
	assert.Len(t, program.LinearConstraints[0].Terms, 2)
	assert.Len(t, program.LinearConstraints[1].Terms, 2)
}

func TestMaxRecurrentShiftsIgnoresNonMatchingWeekDays(t *testing.T) {
	mondays := []calendar.Day{day(2024, 1, 1), day(2024, 1, 8)}
	var shifts []calendar.Shift
	var slots []calendar.Slot
	for _, m := range mondays {
		s := calendar.NewShift(calendar.Day, m)
		shifts = append(shifts, s)
		slots = append(slots, calendar.NewSlot(s, 1))
	}
	ids := []int{1}
	program := recording.New()
	table := newFakeTable(program, ids, shifts)

	c := constraint.NewMaxRecurrentShifts() // defaults to weekend days
	c.SetEmployeeIDs(ids)
	c.AddConstraint(slots, program, table)

	require.Len(t, program.LinearConstraints, 1)
	assert.Empty(t, program.LinearConstraints[0].Terms)
}

func TestConstraintsAllReturnsStableOrder(t *testing.T) {
	c := constraint.NewConstraints()
	c.DefaultEmployeeIDs = []int{1}
	c.Add(constraint.NewMaxRecurrentShifts())
	c.Add(constraint.NewShiftsPerDay(1))
	c.Add(constraint.NewWorkersPerShift())
	c.Add(constraint.NewMaxConsecutiveShifts())
	c.Add(constraint.NewSpecificShifts(), 1)

	all := c.All()
	require.Len(t, all, 5)
	assert.IsType(t, &constraint.WorkersPerShift{}, all[0])
	assert.IsType(t, &constraint.ShiftsPerDay{}, all[1])
	assert.IsType(t, &constraint.SpecificShifts{}, all[2])
	assert.IsType(t, &constraint.MaxConsecutiveShifts{}, all[3])
	assert.IsType(t, &constraint.MaxRecurrentShifts{}, all[4])
}

func TestConstraintsAddUnknownVariantPanics(t *testing.T) {
	c := constraint.NewConstraints()
	assert.Panics(t, func() { c.Add(unknownConstraint{}) })
}

type unknownConstraint struct{ constraint.PlanningConstraint }
