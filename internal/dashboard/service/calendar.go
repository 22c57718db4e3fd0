package service

import (
	"context"
	"time"

	"bookwell/pkg/config"
	apperrors "bookwell/pkg/errors"
	"bookwell/pkg/model"
	"bookwell/pkg/schedule"
)

// AllStaff selects every staff member of the business for the calendar view.
const AllStaff = "all"

// maxWindowDays caps the calendar window at one week.
const maxWindowDays = 7

type CalendarItem struct {
	Appointment *model.Appointment `json:"appointment"`
	Placement   schedule.Placement `json:"placement"`
}

type CalendarDay struct {
	Date         string              `json:"date"`
	Appointments []CalendarItem      `json:"appointments"`
	Hours        *model.WorkingHours `json:"hours,omitempty"`
}

type CalendarView struct {
	FromDate string              `json:"from_date"`
	StaffID  string              `json:"staff_id"`
	Slots    []schedule.TimeSlot `json:"slots"`
	Days     []CalendarDay       `json:"days"`
}

type CalendarService interface {
	View(ctx context.Context, businessID, staffID, fromDate string, days int) (*CalendarView, error)
}

type calendarService struct {
	appointments AppointmentSource
	hours        HoursSource
	cfg          *config.Config
}

func NewCalendarService(appointments AppointmentSource, hours HoursSource, cfg *config.Config) CalendarService {
	return &calendarService{
		appointments: appointments,
		hours:        hours,
		cfg:          cfg,
	}
}

// View assembles the calendar window starting at fromDate: the shared time
// grid, then per day each appointment with its pixel placement and the staff
// member's hours for that weekday. Day and week views are the same call with
// days = 1 or 7. Cancelled appointments stay in the view so the UI can render
// them struck through. Appointments falling outside the configured grid are
// dropped with a warning rather than clipped.
func (s *calendarService) View(ctx context.Context, businessID, staffID, fromDate string, days int) (*CalendarView, error) {
	if businessID == "" || fromDate == "" {
		return nil, apperrors.InvalidInput("BusinessID and date are required")
	}
	start, err := time.Parse("2006-01-02", fromDate)
	if err != nil {
		return nil, apperrors.InvalidInput("Date must be in YYYY-MM-DD format")
	}
	if days == 0 {
		days = 1
	}
	if days < 1 || days > maxWindowDays {
		return nil, apperrors.InvalidInput("Days must be between 1 and 7")
	}
	if staffID == "" {
		staffID = AllStaff
	}

	slots, err := schedule.BuildGrid(s.cfg.CalendarStartHour, s.cfg.CalendarEndHour, s.cfg.SlotGranularityMin)
	if err != nil {
		return nil, apperrors.Internal("Failed to build calendar grid", err)
	}

	searchStaff := staffID
	if searchStaff == AllStaff {
		searchStaff = ""
	}
	toDate := start.AddDate(0, 0, days-1).Format("2006-01-02")

	appts, err := s.appointments.RangeAppointments(businessID, searchStaff, fromDate, toDate)
	if err != nil {
		s.cfg.Log.Error("Failed to load appointments for calendar",
			"business_id", businessID,
			"staff_id", staffID,
			"from", fromDate,
			"to", toDate,
			"error", err,
		)
		return nil, apperrors.Unavailable("appointments")
	}

	byDate := map[string][]*model.Appointment{}
	for _, appt := range appts {
		byDate[appt.Date] = append(byDate[appt.Date], appt)
	}

	var hoursByWeekday map[int]*model.WorkingHours
	if staffID != AllStaff {
		hoursByWeekday = s.weekHours(staffID)
	}

	view := &CalendarView{
		FromDate: fromDate,
		StaffID:  staffID,
		Slots:    slots,
		Days:     make([]CalendarDay, 0, days),
	}

	for i := 0; i < days; i++ {
		dayTime := start.AddDate(0, 0, i)
		date := dayTime.Format("2006-01-02")

		day := CalendarDay{
			Date:         date,
			Appointments: s.placeAppointments(byDate[date]),
		}
		if hoursByWeekday != nil {
			day.Hours = hoursByWeekday[isoWeekday(dayTime)]
		}
		view.Days = append(view.Days, day)
	}

	return view, nil
}

// placeAppointments computes grid placements for one day's appointments,
// dropping malformed or out-of-grid entries.
func (s *calendarService) placeAppointments(appts []*model.Appointment) []CalendarItem {
	gridStart := s.cfg.CalendarStartHour * 60
	gridEnd := s.cfg.CalendarEndHour * 60

	items := make([]CalendarItem, 0, len(appts))
	for _, appt := range appts {
		start, err := schedule.MinutesOfDay(appt.StartTime)
		if err != nil {
			s.cfg.Log.Warn("Skipping appointment with malformed start time",
				"appointment_id", appt.ID,
				"start_time", appt.StartTime,
			)
			continue
		}
		if start < gridStart || start+appt.DurationMin > gridEnd {
			s.cfg.Log.Warn("Skipping appointment outside the calendar grid",
				"appointment_id", appt.ID,
				"start_time", appt.StartTime,
				"duration_min", appt.DurationMin,
			)
			continue
		}

		placement, err := schedule.Place(appt, s.cfg.CalendarStartHour, s.cfg.SlotGranularityMin, s.cfg.SlotHeightPx)
		if err != nil {
			s.cfg.Log.Warn("Skipping unplaceable appointment",
				"appointment_id", appt.ID,
				"error", err,
			)
			continue
		}

		items = append(items, CalendarItem{
			Appointment: appt,
			Placement:   placement,
		})
	}
	return items
}

func (s *calendarService) weekHours(staffID string) map[int]*model.WorkingHours {
	week, err := s.hours.Week(staffID)
	if err != nil {
		s.cfg.Log.Warn("Failed to load working hours for calendar",
			"staff_id", staffID,
			"error", err,
		)
		return nil
	}

	byWeekday := make(map[int]*model.WorkingHours, len(week))
	for _, day := range week {
		byWeekday[day.Weekday] = day
	}
	return byWeekday
}

func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday
}
