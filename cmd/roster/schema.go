package main

import (
	"time"

	"github.com/nextmv-io/sdk/mip"
)

// input represents the JSON planning request read from stdin or a file.
type input struct {
	FirstDay             time.Time        `json:"first_day"`
	LastDay              time.Time        `json:"last_day"`
	Periods              []string         `json:"periods"`
	ShiftDuration        int              `json:"shift_duration"`
	EmployeesPerShift    int              `json:"employees_per_shift"`
	HolidayCalendar      string           `json:"holiday_calendar"`
	Employees            []employee       `json:"employees"`
	SpecificShifts       []specificShifts `json:"specific_shifts"`
	MaxConsecutiveShifts []maxConsecutive `json:"max_consecutive_shifts"`
	MaxRecurrentShifts   []maxRecurrent   `json:"max_recurrent_shifts"`
	NShifts              *nShifts         `json:"n_shifts"`
	NShiftsMonthly       *nShifts         `json:"n_shifts_monthly"`
	Optimize             bool             `json:"optimize"`
}

// employee holds one roster participant's id and contract hours.
type employee struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	ContractHours int    `json:"contract_hours"`
}

// shiftOverride names one (period, day) pair by period name (e.g. "day",
// "evening") and a calendar date.
type shiftOverride struct {
	Day    time.Time `json:"day"`
	Period string    `json:"period"`
}

// specificShifts blocks or forces a list of shifts for one employee.
type specificShifts struct {
	EmployeeID int             `json:"employee_id"`
	Blocked    []shiftOverride `json:"blocked"`
	Forced     []shiftOverride `json:"forced"`
}

// maxConsecutive configures one MaxConsecutiveShifts constraint.
type maxConsecutive struct {
	EmployeeIDs []int    `json:"employee_ids"`
	WeekDays    []int    `json:"week_days"`
	Periods     []string `json:"periods"`
	Max         int      `json:"max"`
	Window      int      `json:"window"`
}

// maxRecurrent configures one MaxRecurrentShifts constraint.
type maxRecurrent struct {
	EmployeeIDs []int    `json:"employee_ids"`
	WeekDays    []int    `json:"week_days"`
	Periods     []string `json:"periods"`
	Max         int      `json:"max"`
}

// nShifts configures an NShifts/NShiftsMonthly distribution.
type nShifts struct {
	Offset int `json:"offset"`
}

// options holds custom configuration data, following the teacher's pattern
// of embedding mip.SolveOptions under a dedicated JSON key.
type options struct {
	Solve mip.SolveOptions `json:"solve" usage:"holds fields to configure the solver"`
}

// output holds the output data of the solution.
type output struct {
	PlanningID    string              `json:"planning_id"`
	AssignedShifts []outputAssignment `json:"assigned_shifts"`
	EmployeeHours  []employeeLoad     `json:"employee_hours"`
}

// outputAssignment reports one (employee, shift) assignment the solver
// selected.
type outputAssignment struct {
	EmployeeID int       `json:"employee_id"`
	Day        time.Time `json:"day"`
	Period     string    `json:"period"`
}

// employeeLoad reports how many shifts the solution assigned one employee.
type employeeLoad struct {
	EmployeeID int `json:"employee_id"`
	NShifts    int `json:"n_shifts"`
}
