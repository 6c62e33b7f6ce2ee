// Package specification implements per-employee preference records and
// their aggregation into blocked-day/blocked-shift lists.
package specification

// SpecType ranks an employee's disposition toward a shift. Smaller values
// are stronger negatives; UNAVAILABLE_COR dominates everything else under
// MinForShift.
type SpecType int

const (
	// UnavailableCor marks a shift as categorically unavailable (e.g. a
	// holiday booking) — the strongest possible negative.
	UnavailableCor SpecType = -9
	// Unavailable marks a shift the employee cannot work.
	Unavailable SpecType = -2
	// NotPreferred marks a shift the employee would rather not work.
	NotPreferred SpecType = -1
	// Preferred marks a shift the employee would like to work.
	Preferred SpecType = 1
	// Mandatory marks a shift the employee must work.
	Mandatory SpecType = 2
)
