// Package calendar implements deterministic generation and ordering of
// shift periods, days and shifts, plus the sliding-window iteration used by
// the planning constraints.
package calendar

import "sort"

// Period is a totally ordered, hashable tag for a recurring daily slice of
// work (e.g. "day", "evening"). Values within a family are declared
// together so that sorting a family is deterministic.
type Period struct {
	value int
	name  string
}

// Value returns the ordinal used for ordering and hashing.
func (p Period) Value() int { return p.value }

// Name returns the human-readable label.
func (p Period) Name() string { return p.name }

// Less orders periods by their ordinal value.
func (p Period) Less(other Period) bool { return p.value < other.value }

// Equal compares periods by ordinal value.
func (p Period) Equal(other Period) bool { return p.value == other.value }

var (
	// Day is the first period of the default two-period family.
	Day = Period{value: 1, name: "day"}
	// Evening is the second period of the default two-period family.
	Evening = Period{value: 2, name: "evening"}
)

// DayAndEvening is the default period family, matching the source's
// `DayAndEvening(Period)` enum.
var DayAndEvening = []Period{Day, Evening}

// SortPeriods returns a sorted copy of periods, ascending by value.
func SortPeriods(periods []Period) []Period {
	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Less(sorted[j]) })
	return sorted
}

// MinPeriod returns the smallest-valued period in the family.
func MinPeriod(periods []Period) Period {
	sorted := SortPeriods(periods)
	return sorted[0]
}

// MaxPeriod returns the largest-valued period in the family.
func MaxPeriod(periods []Period) Period {
	sorted := SortPeriods(periods)
	return sorted[len(sorted)-1]
}
