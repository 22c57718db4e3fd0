package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	appterrors "bookwell/internal/appointments/errors"
	"bookwell/internal/appointments/repository"
	"bookwell/internal/appointments/validator"
	wherrors "bookwell/internal/workinghours/errors"
	"bookwell/pkg/config"
	apperrors "bookwell/pkg/errors"
	"bookwell/pkg/model"
	"bookwell/pkg/sanitizer"
	"bookwell/pkg/schedule"

	"go.mongodb.org/mongo-driver/mongo"
)

// HoursProvider resolves a staff member's working hours for an ISO weekday
// (Monday = 1). A wherrors.ErrNotFound result means the day is not
// configured, which the conflict check treats as a non-working day.
type HoursProvider interface {
	FindByStaffAndWeekday(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error)
}

// EventSink receives appointment lifecycle notifications. Implementations
// must not fail the calling operation.
type EventSink interface {
	Created(ctx context.Context, appt *model.Appointment)
	Rescheduled(ctx context.Context, appt *model.Appointment)
	StatusChanged(ctx context.Context, appt *model.Appointment, prev model.Status)
}

type AppointmentService interface {
	Create(ctx context.Context, appt *model.Appointment) error
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Appointment, int64, error)
	Update(ctx context.Context, id string, updates *model.AppointmentUpdate) (*model.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error)
	CanBook(ctx context.Context, appt *model.Appointment) (*schedule.Conflict, error)
	SearchByStaffAndDate(ctx context.Context, staffID string, date string) ([]*model.Appointment, error)
	SearchByDateRange(ctx context.Context, businessID string, staffID string, fromDate, toDate string, limit int, offset int64) ([]*model.Appointment, int64, error)
}

type appointmentService struct {
	repo      repository.AppointmentRepository
	lockRepo  repository.SlotLockRepository
	hours     HoursProvider
	events    EventSink
	validator *validator.AppointmentValidator
	policy    schedule.TransitionPolicy
	cfg       *config.Config
}

func NewAppointmentService(
	repo repository.AppointmentRepository,
	lockRepo repository.SlotLockRepository,
	hours HoursProvider,
	events EventSink,
	validator *validator.AppointmentValidator,
	cfg *config.Config,
) AppointmentService {
	return &appointmentService{
		repo:      repo,
		lockRepo:  lockRepo,
		hours:     hours,
		events:    events,
		validator: validator,
		policy:    schedule.PolicyByName(cfg.StatusPolicy),
		cfg:       cfg,
	}
}

func (s *appointmentService) Create(ctx context.Context, appt *model.Appointment) error {
	s.applyDefaults(appt)
	s.sanitize(appt)
	if err := s.validate(appt); err != nil {
		return err
	}

	hours, err := s.hoursForDate(ctx, appt.StaffID, appt.Date)
	if err != nil {
		return err
	}

	// Acquire advisory lock to prevent race conditions
	lockID, err := s.acquireSlotLock(ctx, appt.StaffID, appt.Date)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, appt, hours); err != nil {
			return err
		}
		if err := s.repo.Create(sessCtx, appt); err != nil {
			return apperrors.Internal("Failed to create appointment", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to create appointment", "error", err)
		return err
	}

	if s.events != nil {
		s.events.Created(ctx, appt)
	}

	s.cfg.Log.Info("Appointment created successfully",
		"id", appt.ID,
		"business_id", appt.BusinessID,
		"staff_id", appt.StaffID,
		"date", appt.Date,
		"start_time", appt.StartTime,
	)
	return nil
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, appterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Appointment", id)
		}
		if errors.Is(err, appterrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid appointment ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve appointment", err)
	}

	return appt, nil
}

func (s *appointmentService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Appointment, int64, error) {
	var count int64
	var appts []*model.Appointment
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count appointments", "error", errCount)
			errCount = apperrors.Internal("Failed to count appointments", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		appts, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list appointments", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve appointments", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return appts, count, nil
}

func (s *appointmentService) Update(ctx context.Context, id string, updates *model.AppointmentUpdate) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.Status.Closed() {
		return nil, apperrors.Conflict(fmt.Sprintf("Cannot modify an appointment in status '%s'", existing.Status))
	}
	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Appointment update validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return nil, err
	}

	rescheduled := merged.Date != existing.Date ||
		merged.StartTime != existing.StartTime ||
		merged.DurationMin != existing.DurationMin

	hours, err := s.hoursForDate(ctx, merged.StaffID, merged.Date)
	if err != nil {
		return nil, err
	}

	lockID, err := s.acquireSlotLock(ctx, merged.StaffID, merged.Date)
	if err != nil {
		return nil, err
	}
	defer func() {
		if releaseErr := s.releaseSlotLock(ctx, lockID); releaseErr != nil {
			s.cfg.Log.Warn("Failed to release slot lock", "lock_id", lockID, "error", releaseErr)
		}
	}()

	err = s.repo.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		if err := s.verifySlotFree(sessCtx, merged, hours); err != nil {
			return err
		}
		if _, err := s.repo.Update(sessCtx, id, merged); err != nil {
			return apperrors.Internal("Failed to update appointment", err)
		}
		return nil
	})
	if err != nil {
		s.cfg.Log.Error("Failed to update appointment", "id", id, "error", err)
		return nil, err
	}

	if rescheduled && s.events != nil {
		s.events.Rescheduled(ctx, merged)
	}

	s.cfg.Log.Info("Appointment updated successfully", "id", id, "rescheduled", rescheduled)
	return merged, nil
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id string, status model.Status) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}
	if !status.Valid() {
		return nil, apperrors.InvalidInput(fmt.Sprintf("%s: %q", appterrors.ErrInvalidStatus, status))
	}

	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	prev := existing.Status
	if prev == status {
		return existing, nil
	}

	if !s.policy.Allow(prev, status) {
		return nil, apperrors.Conflict(fmt.Sprintf("Status transition '%s' -> '%s' is not allowed", prev, status))
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Appointment", id)
		}
		return nil, apperrors.Internal("Failed to update appointment status", err)
	}

	existing.Status = status
	if s.events != nil {
		s.events.StatusChanged(ctx, existing, prev)
	}

	s.cfg.Log.Info("Appointment status updated", "id", id, "from", prev, "to", status)
	return existing, nil
}

// CanBook performs a read-only availability check for a candidate slot.
// It does not take the advisory lock, so a positive answer can still lose
// a race against a concurrent Create.
func (s *appointmentService) CanBook(ctx context.Context, appt *model.Appointment) (*schedule.Conflict, error) {
	s.applyDefaults(appt)
	s.sanitize(appt)
	if err := s.validate(appt); err != nil {
		return nil, err
	}

	hours, err := s.hoursForDate(ctx, appt.StaffID, appt.Date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByStaffAndDate(ctx, appt.StaffID, appt.Date)
	if err != nil {
		return nil, apperrors.Internal("Failed to check existing appointments", err)
	}

	conflict, err := schedule.CheckBooking(appt, existing, hours)
	if err != nil {
		return nil, apperrors.Internal("Failed to evaluate slot", err)
	}
	return conflict, nil
}

func (s *appointmentService) SearchByStaffAndDate(ctx context.Context, staffID string, date string) ([]*model.Appointment, error) {
	if staffID == "" || date == "" {
		return nil, apperrors.InvalidInput("StaffID and date are required")
	}

	appts, err := s.repo.FindByStaffAndDate(ctx, staffID, date)
	if err != nil {
		s.cfg.Log.Error("Failed to search appointments by staff and date",
			"staff_id", staffID,
			"date", date,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to search appointments", err)
	}

	return appts, nil
}

func (s *appointmentService) SearchByDateRange(ctx context.Context, businessID string, staffID string, fromDate, toDate string, limit int, offset int64) ([]*model.Appointment, int64, error) {
	if businessID == "" {
		return nil, 0, apperrors.InvalidInput("BusinessID is required")
	}

	var count int64
	var appts []*model.Appointment
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		var err error
		count, err = s.repo.CountByBusinessAndDateRange(ctx, businessID, staffID, fromDate, toDate)
		if err != nil {
			s.cfg.Log.Error("Failed to count appointments by search",
				"business_id", businessID,
				"staff_id", staffID,
				"error", err,
			)
			errCount = apperrors.Internal("Failed to count appointments", err)
		}
	}()

	go func() {
		defer wg.Done()
		var err error
		appts, err = s.repo.FindByBusinessAndDateRange(ctx, businessID, staffID, fromDate, toDate, limit, offset)
		if err != nil {
			s.cfg.Log.Error("Failed to search appointments",
				"business_id", businessID,
				"staff_id", staffID,
				"limit", limit,
				"offset", offset,
				"error", err,
			)
			errFind = apperrors.Internal("Failed to search appointments", err)
		}
	}()

	wg.Wait()

	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	s.cfg.Log.Debug("Appointment search completed",
		"business_id", businessID,
		"staff_id", staffID,
		"count", len(appts),
		"total_count", count,
	)
	return appts, count, nil
}

// --- Helpers ---

func (s *appointmentService) sanitize(a *model.Appointment) {
	a.ClientName = sanitizer.NormalizeName(a.ClientName)
	a.ClientPhone = sanitizer.NormalizePhone(a.ClientPhone)
	a.ServiceLabel = sanitizer.NormalizeServiceLabel(a.ServiceLabel)
	a.Comment = sanitizer.NormalizeComment(a.Comment)
}

func (s *appointmentService) applyDefaults(a *model.Appointment) {
	if a.Status == "" {
		a.Status = model.StatusPending
	}
	if a.DurationMin == 0 {
		a.DurationMin = s.cfg.DefaultDurationMin
	}
}

func (s *appointmentService) mergeUpdates(existing *model.Appointment, updates *model.AppointmentUpdate) *model.Appointment {
	merged := *existing

	if updates.Date != "" {
		merged.Date = updates.Date
	}
	if updates.StartTime != "" {
		merged.StartTime = updates.StartTime
	}
	if updates.DurationMin != nil {
		merged.DurationMin = *updates.DurationMin
	}
	if updates.Price != nil {
		merged.Price = *updates.Price
	}
	if updates.ServiceID != "" {
		merged.ServiceID = updates.ServiceID
	}
	if updates.ServiceLabel != "" {
		merged.ServiceLabel = updates.ServiceLabel
	}
	if updates.Comment != nil {
		merged.Comment = *updates.Comment
	}

	return &merged
}

func (s *appointmentService) validate(appt *model.Appointment) error {
	if err := s.validator.Validate(appt); err != nil {
		s.cfg.Log.Warn("Appointment validation failed", "error", err)
		return apperrors.Validation("Appointment validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}

// verifySlotFree re-reads the day's appointments inside the transaction and
// runs the conflict check against the fresh set.
func (s *appointmentService) verifySlotFree(ctx context.Context, appt *model.Appointment, hours *model.WorkingHours) error {
	existing, err := s.repo.FindByStaffAndDate(ctx, appt.StaffID, appt.Date)
	if err != nil {
		return apperrors.Internal("Failed to check existing appointments", err)
	}

	conflict, err := schedule.CheckBooking(appt, existing, hours)
	if err != nil {
		return apperrors.Internal("Failed to evaluate slot", err)
	}
	if conflict != nil {
		return apperrors.Conflict(conflict.Message).WithDetails(map[string]any{
			"reason":         string(conflict.Reason),
			"appointment_id": conflict.AppointmentID,
		})
	}
	return nil
}

func (s *appointmentService) hoursForDate(ctx context.Context, staffID string, date string) (*model.WorkingHours, error) {
	weekday, err := isoWeekday(date)
	if err != nil {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Invalid date: %s", date))
	}

	hours, err := s.hours.FindByStaffAndWeekday(ctx, staffID, weekday)
	if err != nil {
		if errors.Is(err, wherrors.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.Internal("Failed to load working hours", err)
	}
	return hours, nil
}

// isoWeekday maps a YYYY-MM-DD date to ISO weekday numbering (Monday = 1,
// Sunday = 7).
func isoWeekday(date string) (int, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, err
	}
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return weekday, nil
}

// acquireSlotLock creates an advisory lock covering the staff member's whole
// day. Coarser than a per-slot lock but keeps the lock id independent of the
// requested time, so two candidates for different times on the same day
// serialize instead of racing the overlap check.
func (s *appointmentService) acquireSlotLock(ctx context.Context, staffID, date string) (string, error) {
	lockID := fmt.Sprintf("slot_lock_%s_%s", staffID, date)

	lock := &model.SlotLock{
		ID:        lockID,
		ExpiresAt: time.Now().Add(s.cfg.SlotLockTTL),
	}

	_, err := s.lockRepo.Create(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", apperrors.ConcurrencyConflict("This time slot is currently being booked by another request. Please try again.")
		}
		return "", apperrors.Internal("Failed to acquire slot lock", err)
	}

	return lockID, nil
}

// releaseSlotLock removes the advisory lock
func (s *appointmentService) releaseSlotLock(ctx context.Context, lockID string) error {
	return s.lockRepo.Delete(ctx, lockID)
}
