package calendar

import "fmt"

// RegularShiftDuration is the default shift length, in hours.
const RegularShiftDuration = 8

// Shift identifies an atomic work assignment slot by (day, period).
// Duration participates in hashing (via Key) but not in equality, matching
// the source's deliberate split between `__eq__` and `__hash__`.
type Shift struct {
	Period        Period
	Day           Day
	DurationHours int
}

// NewShift builds a Shift with the regular duration.
func NewShift(period Period, day Day) Shift {
	return Shift{Period: period, Day: day, DurationHours: RegularShiftDuration}
}

// Less orders shifts lexicographically by (day, period).
func (s Shift) Less(other Shift) bool {
	if s.Day.Before(other.Day) {
		return true
	}
	if s.Day.Equal(other.Day) {
		return s.Period.Less(other.Period)
	}
	return false
}

// Equal compares shifts by (day, period) only, ignoring duration.
func (s Shift) Equal(other Shift) bool {
	return s.Day.Equal(other.Day) && s.Period.Equal(other.Period)
}

// shiftKey is the comparable projection of a Shift usable as a map key.
// Unlike Equal, it distinguishes shifts with different durations, matching
// the source's `__hash__` including duration.
type shiftKey struct {
	period   int
	day      int64
	duration int
}

// Key returns a comparable value suitable for use as a Go map key.
func (s Shift) Key() shiftKey {
	return shiftKey{period: s.Period.Value(), day: s.Day.Date().Unix(), duration: s.DurationHours}
}

// String renders a diagnostic label, e.g. "evening shift on Monday ...".
func (s Shift) String() string {
	return fmt.Sprintf("%s shift on %s", s.Period.Name(), s.Day)
}

// GetDay returns the shift's day. It exists so GetConsecutiveShifts can be
// generic over any type that embeds Shift (Shift itself, or Slot).
func (s Shift) GetDay() Day { return s.Day }

// Slot is a demanded Shift: it requires NEmployees assignments.
type Slot struct {
	Shift
	NEmployees int
}

// NewSlot builds a Slot demanding n employees for shift.
func NewSlot(shift Shift, n int) Slot {
	if n < 1 {
		panic("calendar: Slot requires NEmployees >= 1")
	}
	return Slot{Shift: shift, NEmployees: n}
}

// String renders a diagnostic label for the slot.
func (s Slot) String() string {
	return fmt.Sprintf("slot %s, for %d employee(s)", s.Shift, s.NEmployees)
}

// Planned is a Shift together with the set of employee ids assigned to it.
type Planned struct {
	Shift
	EmployeeIDs map[int]struct{}
}

// NewPlanned builds an empty Planned for shift.
func NewPlanned(shift Shift) Planned {
	return Planned{Shift: shift, EmployeeIDs: map[int]struct{}{}}
}

// IsComplete reports whether at least target employees are assigned.
func (p Planned) IsComplete(target int) bool {
	return len(p.EmployeeIDs) >= target
}

// String renders a diagnostic label, including the assigned ids when any.
func (p Planned) String() string {
	repr := "planned " + p.Shift.String()
	if len(p.EmployeeIDs) > 0 {
		repr += fmt.Sprintf(", for ids: %v", sortedIDs(p.EmployeeIDs))
	}
	return repr
}

func sortedIDs(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// ShiftRange enumerates the Cartesian product of days in [start.Day,
// end.Day] and sorted(periods), trimmed so the first yielded shift is >=
// start and the last is <= end (inclusive=true) or < end (inclusive=false).
// It panics if end is before start, matching the source's ValueError on a
// reversed range (a programmer error, not a recoverable one).
func ShiftRange(start, end Shift, periods []Period, inclusive bool) []Shift {
	if end.Less(start) {
		panic("calendar: ShiftRange end is before start")
	}

	sortedPeriods := SortPeriods(periods)

	var shifts []Shift
	for day := start.Day; !day.After(end.Day); day = day.AddDays(1) {
		for _, period := range sortedPeriods {
			shift := NewShift(period, day)
			if shift.Less(start) {
				continue
			}
			if inclusive && end.Less(shift) {
				continue
			}
			if !inclusive && !shift.Less(end) {
				continue
			}
			shifts = append(shifts, shift)
		}
	}
	return shifts
}

// Windows returns every contiguous, overlapping window of length n over
// items, in input order — the single generic sliding-window primitive
// shared by GetConsecutiveShifts and the recurrent-week roll in
// MaxRecurrentShifts.
func Windows[T any](items []T, n int) [][]T {
	if n <= 0 || len(items) < n {
		return nil
	}
	windows := make([][]T, 0, len(items)-n+1)
	for i := 0; i+n <= len(items); i++ {
		window := make([]T, n)
		copy(window, items[i:i+n])
		windows = append(windows, window)
	}
	return windows
}

// dayed is satisfied by Shift and any type embedding it (e.g. Slot), so
// GetConsecutiveShifts can window over either without duplicating logic.
type dayed interface {
	GetDay() Day
}

// GetConsecutiveShifts yields every sliding window of width n over shifts,
// keeping only windows where every element's week-day is in weekDays.
func GetConsecutiveShifts[T dayed](shifts []T, weekDays []int, n int) [][]T {
	allowed := make(map[int]struct{}, len(weekDays))
	for _, wd := range weekDays {
		allowed[wd] = struct{}{}
	}

	var out [][]T
	for _, window := range Windows(shifts, n) {
		ok := true
		for _, shift := range window {
			if _, found := allowed[shift.GetDay().WeekDay()]; !found {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, window)
		}
	}
	return out
}

// AllWeekDays is the full ISO week-day range, 1..7.
var AllWeekDays = []int{1, 2, 3, 4, 5, 6, 7}
