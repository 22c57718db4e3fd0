package service

import (
	"context"

	"bookwell/pkg/config"
	apperrors "bookwell/pkg/errors"
	"bookwell/pkg/model"
	"bookwell/pkg/schedule"
)

type AnalyticsService interface {
	Statistics(ctx context.Context, businessID, staffID string, r schedule.DateRange, statusFilter model.Status) (*schedule.Snapshot, error)
	TimeSeries(ctx context.Context, businessID, staffID string, r schedule.DateRange) ([]schedule.TimeSeriesPoint, error)
}

type analyticsService struct {
	appointments AppointmentSource
	cfg          *config.Config
}

func NewAnalyticsService(appointments AppointmentSource, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		appointments: appointments,
		cfg:          cfg,
	}
}

func (s *analyticsService) Statistics(ctx context.Context, businessID, staffID string, r schedule.DateRange, statusFilter model.Status) (*schedule.Snapshot, error) {
	appts, err := s.load(businessID, staffID, r)
	if err != nil {
		return nil, err
	}

	snap := schedule.Aggregate(appts, r, statusFilter)

	s.cfg.Log.Debug("Statistics computed",
		"business_id", businessID,
		"staff_id", staffID,
		"range", r.Label(),
		"total_count", snap.TotalCount,
	)
	return snap, nil
}

func (s *analyticsService) TimeSeries(ctx context.Context, businessID, staffID string, r schedule.DateRange) ([]schedule.TimeSeriesPoint, error) {
	appts, err := s.load(businessID, staffID, r)
	if err != nil {
		return nil, err
	}

	return schedule.TimeSeries(appts, r), nil
}

func (s *analyticsService) load(businessID, staffID string, r schedule.DateRange) ([]*model.Appointment, error) {
	if businessID == "" {
		return nil, apperrors.InvalidInput("BusinessID is required")
	}
	if r.Start == "" || r.End == "" {
		return nil, apperrors.InvalidInput("Both 'from' and 'to' dates are required")
	}
	if r.Start > r.End {
		return nil, apperrors.InvalidInput("'from' date must not be after 'to' date")
	}

	appts, err := s.appointments.RangeAppointments(businessID, staffID, r.Start, r.End)
	if err != nil {
		s.cfg.Log.Error("Failed to load appointments for analytics",
			"business_id", businessID,
			"staff_id", staffID,
			"range", r.Label(),
			"error", err,
		)
		return nil, apperrors.Unavailable("appointments")
	}

	return appts, nil
}
