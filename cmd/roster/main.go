// Command roster reads a JSON planning request, drives the shift library
// to build a constraint program, submits it to HiGHS, and prints a JSON
// solution — the same shape Nextmv community templates use.
package main

import (
	"context"
	"log"

	"github.com/nextmv-io/sdk/mip"
	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/schema"

	"github.com/HHoofs/shift/internal/cpmodel/miphighs"
	"github.com/HHoofs/shift/internal/solverbuilder"
)

func main() {
	runner := run.CLI(solver)
	if err := runner.Run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func solver(_ context.Context, in input, opts options) (schema.Output, error) {
	planningID, _, program, builder, err := build(in)
	if err != nil {
		return schema.Output{}, err
	}

	mipSolver, err := mip.NewSolver(mip.Highs, program.Model())
	if err != nil {
		return schema.Output{}, err
	}

	solution, err := mipSolver.Solve(opts.Solve)
	if err != nil {
		return schema.Output{}, err
	}

	out := mip.Format(opts, format(planningID, builder, solution), solution)
	out.Statistics.Result.Custom = mip.DefaultCustomResultStatistics(program.Model(), solution)

	return out, nil
}

// format builds the custom output from a solved mip.Solution, reading each
// (employee, shift) variable's raw mip.Bool back out of the solver
// builder's table.
func format(planningID string, builder *solverbuilder.Solver, solution mip.Solution) output {
	if !solution.IsOptimal() && !solution.IsSubOptimal() {
		return output{PlanningID: planningID}
	}

	out := output{PlanningID: planningID}
	counts := map[int]int{}

	for _, shift := range builder.Shifts() {
		for _, employeeID := range builder.EmployeeIDs() {
			v, ok := builder.Get(employeeID, shift).(*miphighs.BoolVar)
			if !ok || solution.Value(v.Mip()) < 0.9 {
				continue
			}
			out.AssignedShifts = append(out.AssignedShifts, outputAssignment{
				EmployeeID: employeeID,
				Day:        shift.Day.Date(),
				Period:     shift.Period.Name(),
			})
			counts[employeeID]++
		}
	}

	for _, employeeID := range builder.EmployeeIDs() {
		out.EmployeeHours = append(out.EmployeeHours, employeeLoad{
			EmployeeID: employeeID,
			NShifts:    counts[employeeID],
		})
	}

	return out
}
