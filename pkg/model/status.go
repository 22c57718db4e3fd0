package model

// Status is the appointment lifecycle state. Transitions are governed by
// schedule.TransitionPolicy; the stored value is the only side effect.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusArrived   Status = "arrived"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

// AllStatuses lists every status in a stable order, used for zero-filled
// per-status counters.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusArrived,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusArrived, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Closed reports whether the appointment reached a terminal outcome.
// Closed appointments are excluded from conflict checks only when cancelled;
// see schedule.CheckBooking.
func (s Status) Closed() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}
