package schedule

import (
	"bookwell/pkg/model"
)

// Placement positions an appointment on the time grid in pixels.
type Placement struct {
	OffsetPx float64 `json:"offset_px"`
	ExtentPx float64 `json:"extent_px"`
}

// Place maps an appointment's start and duration onto a grid anchored at
// gridStartHour. Appointments outside the grid are not clipped here: callers
// must exclude out-of-range appointments or accept negative / overflowing
// offsets.
func Place(a *model.Appointment, gridStartHour, granularityMin int, slotHeightPx float64) (Placement, error) {
	start, err := MinutesOfDay(a.StartTime)
	if err != nil {
		return Placement{}, err
	}

	g := float64(granularityMin)
	return Placement{
		OffsetPx: float64(start-gridStartHour*60) / g * slotHeightPx,
		ExtentPx: float64(a.DurationMin) / g * slotHeightPx,
	}, nil
}
