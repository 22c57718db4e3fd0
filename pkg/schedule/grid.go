package schedule

import "fmt"

// TimeSlot is one cell of the calendar time grid. It is purely derived and
// never persisted; the IsHour flag only drives rendering emphasis.
type TimeSlot struct {
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	IsHour bool   `json:"is_hour"`
	Label  string `json:"label"`
}

// BuildGrid converts business opening hours into the discrete slot sequence
// shown on the calendar. It emits one slot per granularity step from
// startHour:00 up to and including the endHour:00 closing boundary, so a
// grid from 8 to 22 at 30-minute granularity has 29 slots.
func BuildGrid(startHour, endHour, granularityMin int) ([]TimeSlot, error) {
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return nil, fmt.Errorf("invalid grid bounds: start=%d end=%d", startHour, endHour)
	}
	if granularityMin <= 0 || 60%granularityMin != 0 {
		return nil, fmt.Errorf("granularity must evenly divide 60, got %d", granularityMin)
	}

	startMin := startHour * 60
	endMin := endHour * 60
	slots := make([]TimeSlot, 0, (endMin-startMin)/granularityMin+1)
	for m := startMin; m <= endMin; m += granularityMin {
		slots = append(slots, TimeSlot{
			Hour:   m / 60,
			Minute: m % 60,
			IsHour: m%60 == 0,
			Label:  FormatMinutes(m),
		})
	}
	return slots, nil
}
