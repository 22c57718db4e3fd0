package schedule

import (
	"testing"

	"bookwell/pkg/model"
)

func mondayHours() *model.WorkingHours {
	return &model.WorkingHours{
		StaffID:   "507f1f77bcf86cd799439011",
		Weekday:   1,
		IsWorking: true,
		StartTime: "09:00",
		EndTime:   "17:00",
	}
}

func mondayHoursWithBreak() *model.WorkingHours {
	h := mondayHours()
	h.BreakStart = "13:00"
	h.BreakEnd = "14:00"
	return h
}

func candidate(start string, durationMin int) *model.Appointment {
	return &model.Appointment{
		StaffID:     "507f1f77bcf86cd799439011",
		Date:        "2026-03-02",
		StartTime:   start,
		DurationMin: durationMin,
		Status:      model.StatusPending,
	}
}

func existing(id, start string, durationMin int, status model.Status) *model.Appointment {
	a := candidate(start, durationMin)
	a.ID = id
	a.Status = status
	return a
}

func TestCheckBooking_WorkingHours(t *testing.T) {
	tests := []struct {
		name       string
		hours      *model.WorkingHours
		start      string
		duration   int
		wantReason ConflictReason
		wantOk     bool
	}{
		{
			name:   "inside working hours",
			hours:  mondayHours(),
			start:  "09:00", duration: 60,
			wantOk: true,
		},
		{
			name:   "ends exactly at closing",
			hours:  mondayHours(),
			start:  "16:00", duration: 60,
			wantOk: true,
		},
		{
			name:       "non working day",
			hours:      &model.WorkingHours{IsWorking: false},
			start:      "10:00", duration: 30,
			wantReason: OutsideWorkingHours,
		},
		{
			name:       "missing hours record",
			hours:      nil,
			start:      "10:00", duration: 30,
			wantReason: OutsideWorkingHours,
		},
		{
			name:       "starts before opening",
			hours:      mondayHours(),
			start:      "08:30", duration: 60,
			wantReason: OutsideWorkingHours,
		},
		{
			name:       "runs past closing",
			hours:      mondayHours(),
			start:      "16:30", duration: 60,
			wantReason: OutsideWorkingHours,
		},
		{
			name:       "intersects break",
			hours:      mondayHoursWithBreak(),
			start:      "13:15", duration: 30,
			wantReason: DuringBreak,
		},
		{
			name:   "ends exactly at break start",
			hours:  mondayHoursWithBreak(),
			start:  "12:00", duration: 60,
			wantOk: true,
		},
		{
			name:   "starts exactly at break end",
			hours:  mondayHoursWithBreak(),
			start:  "14:00", duration: 30,
			wantOk: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, err := CheckBooking(candidate(tt.start, tt.duration), nil, tt.hours)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantOk {
				if conflict != nil {
					t.Fatalf("expected bookable, got conflict %+v", conflict)
				}
				return
			}
			if conflict == nil {
				t.Fatal("expected conflict, got none")
			}
			if conflict.Reason != tt.wantReason {
				t.Errorf("expected reason %s, got %s", tt.wantReason, conflict.Reason)
			}
		})
	}
}

func TestCheckBooking_Overlap(t *testing.T) {
	confirmed := existing("a1", "10:00", 60, model.StatusConfirmed)

	tests := []struct {
		name     string
		existing []*model.Appointment
		start    string
		duration int
		wantOk   bool
		wantID   string
	}{
		{
			name:     "back to back after existing is legal",
			existing: []*model.Appointment{confirmed},
			start:    "11:00", duration: 30,
			wantOk: true,
		},
		{
			name:     "back to back before existing is legal",
			existing: []*model.Appointment{confirmed},
			start:    "09:00", duration: 60,
			wantOk: true,
		},
		{
			name:     "partial overlap rejected",
			existing: []*model.Appointment{confirmed},
			start:    "10:30", duration: 45,
			wantID: "a1",
		},
		{
			name:     "candidate swallows existing",
			existing: []*model.Appointment{confirmed},
			start:    "09:30", duration: 120,
			wantID: "a1",
		},
		{
			name:     "cancelled appointments release the slot",
			existing: []*model.Appointment{existing("a2", "10:00", 60, model.StatusCancelled)},
			start:    "10:00", duration: 60,
			wantOk: true,
		},
		{
			name: "completed appointments still block",
			existing: []*model.Appointment{
				existing("a3", "10:00", 60, model.StatusCompleted),
			},
			start:  "10:30", duration: 30,
			wantID: "a3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflict, err := CheckBooking(candidate(tt.start, tt.duration), tt.existing, mondayHours())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantOk {
				if conflict != nil {
					t.Fatalf("expected bookable, got conflict %+v", conflict)
				}
				return
			}
			if conflict == nil {
				t.Fatal("expected overlap conflict, got none")
			}
			if conflict.Reason != OverlapsAppointment {
				t.Errorf("expected reason %s, got %s", OverlapsAppointment, conflict.Reason)
			}
			if conflict.AppointmentID != tt.wantID {
				t.Errorf("expected conflicting id %s, got %s", tt.wantID, conflict.AppointmentID)
			}
		})
	}
}

func TestCheckBooking_RescheduleSkipsSelf(t *testing.T) {
	moved := existing("a1", "10:00", 60, model.StatusConfirmed)

	reschedule := candidate("10:30", 60)
	reschedule.ID = "a1"

	conflict, err := CheckBooking(reschedule, []*model.Appointment{moved}, mondayHours())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflict != nil {
		t.Errorf("reschedule must not conflict with its own previous slot, got %+v", conflict)
	}
}

func TestCheckBooking_MalformedTime(t *testing.T) {
	bad := candidate("nine", 30)
	if _, err := CheckBooking(bad, nil, mondayHours()); err == nil {
		t.Error("expected error for malformed start time")
	}
}
