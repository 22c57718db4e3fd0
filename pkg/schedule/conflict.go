package schedule

import (
	"fmt"

	"bookwell/pkg/model"
)

type ConflictReason string

const (
	OutsideWorkingHours ConflictReason = "outside_working_hours"
	DuringBreak         ConflictReason = "during_break"
	OverlapsAppointment ConflictReason = "overlaps_appointment"
)

// Conflict describes why a candidate appointment cannot be booked.
// AppointmentID is set only for OverlapsAppointment.
type Conflict struct {
	Reason        ConflictReason `json:"reason"`
	AppointmentID string         `json:"appointment_id,omitempty"`
	Message       string         `json:"message"`
}

func (c *Conflict) Error() string {
	return fmt.Sprintf("%s: %s", c.Reason, c.Message)
}

// CheckBooking validates a candidate appointment against a staff member's
// working hours for that day and the existing appointments on the same staff
// and date. A nil Conflict means the slot is bookable. The non-nil error
// return is reserved for malformed time strings, which validated records
// never carry.
//
// Existing appointments with status cancelled do not block the slot, and
// neither does the candidate's own id (the reschedule path re-checks against
// a set that still contains the old version).
func CheckBooking(candidate *model.Appointment, existing []*model.Appointment, hours *model.WorkingHours) (*Conflict, error) {
	start, err := MinutesOfDay(candidate.StartTime)
	if err != nil {
		return nil, err
	}
	end := start + candidate.DurationMin

	if hours == nil || !hours.IsWorking {
		return &Conflict{
			Reason:  OutsideWorkingHours,
			Message: "staff member does not work on this day",
		}, nil
	}

	dayStart, err := MinutesOfDay(hours.StartTime)
	if err != nil {
		return nil, err
	}
	dayEnd, err := MinutesOfDay(hours.EndTime)
	if err != nil {
		return nil, err
	}
	if start < dayStart || end > dayEnd {
		return &Conflict{
			Reason: OutsideWorkingHours,
			Message: fmt.Sprintf("appointment %s-%s is outside working hours %s-%s",
				FormatMinutes(start), FormatMinutes(end), hours.StartTime, hours.EndTime),
		}, nil
	}

	if hours.HasBreak() {
		breakStart, err := MinutesOfDay(hours.BreakStart)
		if err != nil {
			return nil, err
		}
		breakEnd, err := MinutesOfDay(hours.BreakEnd)
		if err != nil {
			return nil, err
		}
		if Overlaps(start, end, breakStart, breakEnd) {
			return &Conflict{
				Reason: DuringBreak,
				Message: fmt.Sprintf("appointment %s-%s falls in the break %s-%s",
					FormatMinutes(start), FormatMinutes(end), hours.BreakStart, hours.BreakEnd),
			}, nil
		}
	}

	for _, other := range existing {
		if other.ID != "" && other.ID == candidate.ID {
			continue
		}
		if other.Status == model.StatusCancelled {
			continue
		}
		otherStart, err := MinutesOfDay(other.StartTime)
		if err != nil {
			return nil, err
		}
		otherEnd := otherStart + other.DurationMin
		if Overlaps(start, end, otherStart, otherEnd) {
			return &Conflict{
				Reason:        OverlapsAppointment,
				AppointmentID: other.ID,
				Message: fmt.Sprintf("slot overlaps existing appointment %s (%s-%s)",
					other.ID, other.StartTime, FormatMinutes(otherEnd)),
			}, nil
		}
	}

	return nil, nil
}
