package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nextmv-io/sdk/model"

	"github.com/HHoofs/shift/internal/calendar"
	"github.com/HHoofs/shift/internal/constraint"
	"github.com/HHoofs/shift/internal/cpmodel/miphighs"
	"github.com/HHoofs/shift/internal/distribution"
	"github.com/HHoofs/shift/internal/holidaycalendar"
	"github.com/HHoofs/shift/internal/optimizer"
	"github.com/HHoofs/shift/internal/planning"
	"github.com/HHoofs/shift/internal/solverbuilder"
	"github.com/HHoofs/shift/internal/specification"
)

// namedPeriods is the set of period names the CLI layer knows how to
// resolve; a request naming anything else is a malformed request, not a
// programmer error, so it is reported rather than panicked on.
var namedPeriods = map[string]calendar.Period{
	"day":     calendar.Day,
	"evening": calendar.Evening,
}

// build translates a JSON planning request into a Planning, a populated
// Solver, and the miphighs.Program the solver's variables were registered
// against. planningID is a fresh uuid, carried into the output for
// traceability across runs.
func build(in input) (planningID string, pln *planning.Planning, program *miphighs.Program, solver *solverbuilder.Solver, err error) {
	periods, err := resolvePeriods(in.Periods)
	if err != nil {
		return "", nil, nil, nil, err
	}

	pln = planning.NewPlanning(
		calendar.NewDay(in.FirstDay),
		calendar.NewDay(in.LastDay),
		periods,
		in.ShiftDuration,
		in.EmployeesPerShift,
	)

	for _, e := range in.Employees {
		pln.AddEmployee(planning.Employee{ID: e.ID, Name: e.Name, ContractHours: e.ContractHours})
	}
	employeeIDs := pln.EmployeeIDs()

	pln.Constraints.DefaultEmployeeIDs = employeeIDs
	pln.Constraints.Add(constraint.NewWorkersPerShift())
	pln.Constraints.Add(constraint.NewShiftsPerDay(1))

	periodLookup := model.NewMultiMap(
		func(name ...string) calendar.Period { return namedPeriods[name[0]] },
		in.Periods,
	)

	for _, s := range in.SpecificShifts {
		var overrides []constraint.SpecificShiftOverride
		for _, o := range s.Blocked {
			if _, ok := namedPeriods[o.Period]; !ok {
				return "", nil, nil, nil, fmt.Errorf("build: unknown period %q", o.Period)
			}
			overrides = append(overrides, constraint.SpecificShiftOverride{
				Shift:   calendar.NewShift(periodLookup.Get(o.Period), calendar.NewDay(o.Day)),
				Blocked: true,
			})
		}
		for _, o := range s.Forced {
			if _, ok := namedPeriods[o.Period]; !ok {
				return "", nil, nil, nil, fmt.Errorf("build: unknown period %q", o.Period)
			}
			overrides = append(overrides, constraint.SpecificShiftOverride{
				Shift:   calendar.NewShift(periodLookup.Get(o.Period), calendar.NewDay(o.Day)),
				Blocked: false,
			})
		}
		pln.Constraints.Add(constraint.NewSpecificShifts(overrides...), s.EmployeeID)
	}

	for _, m := range in.MaxConsecutiveShifts {
		c := constraint.NewMaxConsecutiveShifts()
		if len(m.WeekDays) > 0 {
			c.WeekDays = m.WeekDays
		}
		if len(m.Periods) > 0 {
			ps, perr := resolvePeriods(m.Periods)
			if perr != nil {
				return "", nil, nil, nil, perr
			}
			c.Periods = ps
		}
		if m.Max > 0 {
			c.Max = m.Max
		}
		if m.Window > 0 {
			c.Window = m.Window
		}
		pln.Constraints.Add(c, m.EmployeeIDs...)
	}

	for _, m := range in.MaxRecurrentShifts {
		c := constraint.NewMaxRecurrentShifts()
		if len(m.WeekDays) > 0 {
			c.WeekDays = m.WeekDays
		}
		if len(m.Periods) > 0 {
			ps, perr := resolvePeriods(m.Periods)
			if perr != nil {
				return "", nil, nil, nil, perr
			}
			c.Periods = ps
		}
		if m.Max > 0 {
			c.Max = m.Max
		}
		pln.Constraints.Add(c, m.EmployeeIDs...)
	}

	pln.Distributions.Add(distribution.NewNShifts(offsetOf(in.NShifts)))
	pln.Distributions.Add(distribution.NewNShiftsMonthly(offsetOf(in.NShiftsMonthly)))

	// Every employee gets a Specifications record marking the region's
	// public holidays UNAVAILABLE_COR; Planning.AddSpecifications bridges
	// that into a per-employee SpecificShifts constraint, exercising the
	// full Calendar -> Specifications -> Planning -> Solver builder chain.
	cal := holidaycalendar.None
	if in.HolidayCalendar == "nl" {
		cal = holidaycalendar.NL
	}
	for _, employeeID := range employeeIDs {
		spec := specification.NewSpecifications(employeeID)
		for day := pln.FirstDay; !day.After(pln.LastDay); day = day.AddDays(1) {
			if day.IsHoliday(cal) {
				spec.Add(specification.SpecificDay{SpecType: specification.UnavailableCor, Day: day})
			}
		}
		pln.AddSpecifications(spec)
	}

	slots := pln.Slots()
	program = miphighs.New()
	solver = solverbuilder.New(uuid.NewString(), employeeIDs, pln.Shifts(), program)

	solver.AddConstraints(slots, program, pln.Constraints)
	solver.AddDistributions(slots, program, pln.Distributions, pln.EmployeeHours())

	if in.Optimize {
		opt := optimizer.NewPlanningOptimization(employeeIDs)
		opt.AddObjective(slots, program, solver)
	}

	return solver.PlanningID, pln, program, solver, nil
}

func resolvePeriods(names []string) ([]calendar.Period, error) {
	periods := make([]calendar.Period, 0, len(names))
	for _, name := range names {
		p, ok := namedPeriods[name]
		if !ok {
			return nil, fmt.Errorf("build: unknown period %q", name)
		}
		periods = append(periods, p)
	}
	return periods, nil
}

func offsetOf(n *nShifts) int {
	if n == nil {
		return 0
	}
	return n.Offset
}
