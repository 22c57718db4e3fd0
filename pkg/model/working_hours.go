package model

import "time"

// WorkingHours is one staff member's hours for a single weekday.
// Weekday follows ISO-8601: Monday = 1 .. Sunday = 7.
// An empty BreakStart/BreakEnd pair means the day has no break.
type WorkingHours struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	BusinessID string    `json:"business_id" bson:"business_id" validate:"required,mongodb"`
	StaffID    string    `json:"staff_id" bson:"staff_id" validate:"required,mongodb"`
	Weekday    int       `json:"weekday" bson:"weekday" validate:"required,min=1,max=7"`
	IsWorking  bool      `json:"is_working" bson:"is_working"`
	StartTime  string    `json:"start_time,omitempty" bson:"start_time,omitempty" validate:"omitempty,hhmm_time"`
	EndTime    string    `json:"end_time,omitempty" bson:"end_time,omitempty" validate:"omitempty,hhmm_time"`
	BreakStart string    `json:"break_start,omitempty" bson:"break_start,omitempty" validate:"omitempty,hhmm_time"`
	BreakEnd   string    `json:"break_end,omitempty" bson:"break_end,omitempty" validate:"omitempty,hhmm_time"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// HasBreak reports whether the day carries a break interval.
func (w *WorkingHours) HasBreak() bool {
	return w.BreakStart != "" && w.BreakEnd != ""
}
