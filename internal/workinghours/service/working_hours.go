package service

import (
	"context"
	"errors"

	wherrors "bookwell/internal/workinghours/errors"
	"bookwell/internal/workinghours/repository"
	"bookwell/internal/workinghours/validator"
	"bookwell/pkg/config"
	apperrors "bookwell/pkg/errors"
	"bookwell/pkg/model"
)

type WorkingHoursService interface {
	SetWeek(ctx context.Context, staffID string, week []*model.WorkingHours) error
	SetDay(ctx context.Context, staffID string, day *model.WorkingHours) error
	GetWeek(ctx context.Context, staffID string) ([]*model.WorkingHours, error)
	GetDay(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error)
}

type workingHoursService struct {
	repo      repository.WorkingHoursRepository
	validator *validator.WorkingHoursValidator
	cfg       *config.Config
}

func NewWorkingHoursService(
	repo repository.WorkingHoursRepository,
	validator *validator.WorkingHoursValidator,
	cfg *config.Config,
) WorkingHoursService {
	return &workingHoursService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *workingHoursService) SetWeek(ctx context.Context, staffID string, week []*model.WorkingHours) error {
	if staffID == "" {
		return apperrors.InvalidInput("Staff ID cannot be empty")
	}
	if len(week) == 0 {
		return apperrors.InvalidInput("At least one weekday entry is required")
	}

	seen := map[int]bool{}
	for _, day := range week {
		day.StaffID = staffID
		if seen[day.Weekday] {
			return apperrors.InvalidInput("Duplicate weekday entries in week definition")
		}
		seen[day.Weekday] = true

		if err := s.validator.Validate(day); err != nil {
			s.cfg.Log.Warn("Working hours validation failed", "staff_id", staffID, "weekday", day.Weekday, "error", err)
			return apperrors.Validation("Working hours validation failed", map[string]any{"error": err.Error()})
		}
	}

	for _, day := range week {
		if err := s.repo.Upsert(ctx, day); err != nil {
			s.cfg.Log.Error("Failed to save working hours", "staff_id", staffID, "weekday", day.Weekday, "error", err)
			return apperrors.Internal("Failed to save working hours", err)
		}
	}

	s.cfg.Log.Info("Working hours updated", "staff_id", staffID, "days", len(week))
	return nil
}

func (s *workingHoursService) SetDay(ctx context.Context, staffID string, day *model.WorkingHours) error {
	if staffID == "" {
		return apperrors.InvalidInput("Staff ID cannot be empty")
	}
	day.StaffID = staffID

	if err := s.validator.Validate(day); err != nil {
		s.cfg.Log.Warn("Working hours validation failed", "staff_id", staffID, "weekday", day.Weekday, "error", err)
		return apperrors.Validation("Working hours validation failed", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Upsert(ctx, day); err != nil {
		s.cfg.Log.Error("Failed to save working hours", "staff_id", staffID, "weekday", day.Weekday, "error", err)
		return apperrors.Internal("Failed to save working hours", err)
	}

	s.cfg.Log.Info("Working hours updated", "staff_id", staffID, "weekday", day.Weekday)
	return nil
}

// GetWeek returns all seven weekdays in order. Days without a stored entry
// come back as non-working placeholders so clients always see a full week.
func (s *workingHoursService) GetWeek(ctx context.Context, staffID string) ([]*model.WorkingHours, error) {
	if staffID == "" {
		return nil, apperrors.InvalidInput("Staff ID cannot be empty")
	}

	stored, err := s.repo.FindByStaff(ctx, staffID)
	if err != nil {
		s.cfg.Log.Error("Failed to load working hours", "staff_id", staffID, "error", err)
		return nil, apperrors.Internal("Failed to load working hours", err)
	}

	byWeekday := map[int]*model.WorkingHours{}
	for _, day := range stored {
		byWeekday[day.Weekday] = day
	}

	week := make([]*model.WorkingHours, 0, 7)
	for weekday := 1; weekday <= 7; weekday++ {
		if day, ok := byWeekday[weekday]; ok {
			week = append(week, day)
			continue
		}
		week = append(week, &model.WorkingHours{
			StaffID:   staffID,
			Weekday:   weekday,
			IsWorking: false,
		})
	}

	return week, nil
}

// GetDay returns the stored entry for one weekday, or a non-working
// placeholder when none exists.
func (s *workingHoursService) GetDay(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error) {
	if staffID == "" {
		return nil, apperrors.InvalidInput("Staff ID cannot be empty")
	}
	if weekday < 1 || weekday > 7 {
		return nil, apperrors.InvalidInput(wherrors.ErrInvalidWeekday.Error())
	}

	day, err := s.repo.FindByStaffAndWeekday(ctx, staffID, weekday)
	if err != nil {
		if errors.Is(err, wherrors.ErrNotFound) {
			return &model.WorkingHours{
				StaffID:   staffID,
				Weekday:   weekday,
				IsWorking: false,
			}, nil
		}
		s.cfg.Log.Error("Failed to load working hours", "staff_id", staffID, "weekday", weekday, "error", err)
		return nil, apperrors.Internal("Failed to load working hours", err)
	}

	return day, nil
}
