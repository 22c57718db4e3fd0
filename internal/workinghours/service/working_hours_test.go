package service

import (
	"context"
	"fmt"
	"testing"

	wherrors "bookwell/internal/workinghours/errors"
	"bookwell/internal/workinghours/validator"
	"bookwell/pkg/config"
	apperrors "bookwell/pkg/errors"
	"bookwell/pkg/logger"
	"bookwell/pkg/model"
)

type mockHoursRepo struct {
	upsertFn  func(ctx context.Context, hours *model.WorkingHours) error
	findFn    func(ctx context.Context, staffID string) ([]*model.WorkingHours, error)
	findDayFn func(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error)
	saved     []*model.WorkingHours
}

func (m *mockHoursRepo) Upsert(ctx context.Context, hours *model.WorkingHours) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, hours)
	}
	m.saved = append(m.saved, hours)
	return nil
}

func (m *mockHoursRepo) FindByStaff(ctx context.Context, staffID string) ([]*model.WorkingHours, error) {
	return m.findFn(ctx, staffID)
}

func (m *mockHoursRepo) FindByStaffAndWeekday(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error) {
	return m.findDayFn(ctx, staffID, weekday)
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Log: logger.New(logger.Config{Level: "ERROR", Service: "test"}),
	}
}

const (
	testBusiness = "64a000000000000000000001"
	testStaff    = "64a000000000000000000002"
)

func workingDay(weekday int) *model.WorkingHours {
	return &model.WorkingHours{
		BusinessID: testBusiness,
		StaffID:    testStaff,
		Weekday:    weekday,
		IsWorking:  true,
		StartTime:  "09:00",
		EndTime:    "17:00",
	}
}

func newTestService(repo *mockHoursRepo, cfg *config.Config) WorkingHoursService {
	return NewWorkingHoursService(repo, validator.NewWorkingHoursValidator(cfg.Log), cfg)
}

func TestSetWeek_SavesAllDays(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockHoursRepo{}
	svc := newTestService(repo, cfg)

	week := []*model.WorkingHours{workingDay(1), workingDay(2), workingDay(3)}
	if err := svc.SetWeek(context.Background(), testStaff, week); err != nil {
		t.Fatalf("SetWeek() error = %v", err)
	}

	if len(repo.saved) != 3 {
		t.Fatalf("saved %d days, want 3", len(repo.saved))
	}
	for _, day := range repo.saved {
		if day.StaffID != testStaff {
			t.Errorf("day %d staff = %q, want %q", day.Weekday, day.StaffID, testStaff)
		}
	}
}

func TestSetWeek_RejectsDuplicateWeekday(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(&mockHoursRepo{}, cfg)

	week := []*model.WorkingHours{workingDay(1), workingDay(1)}
	err := svc.SetWeek(context.Background(), testStaff, week)
	if err == nil {
		t.Fatal("expected error for duplicate weekday")
	}
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeInvalidInput {
		t.Fatalf("error = %v, want invalid input", err)
	}
}

func TestSetDay_ValidationFailures(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(&mockHoursRepo{}, cfg)

	tests := []struct {
		name   string
		mutate func(d *model.WorkingHours)
	}{
		{"end before start", func(d *model.WorkingHours) { d.StartTime = "17:00"; d.EndTime = "09:00" }},
		{"missing times on working day", func(d *model.WorkingHours) { d.StartTime = ""; d.EndTime = "" }},
		{"break outside hours", func(d *model.WorkingHours) { d.BreakStart = "08:00"; d.BreakEnd = "08:30" }},
		{"half break pair", func(d *model.WorkingHours) { d.BreakStart = "12:00" }},
		{"inverted break", func(d *model.WorkingHours) { d.BreakStart = "14:00"; d.BreakEnd = "13:00" }},
		{"weekday out of range", func(d *model.WorkingHours) { d.Weekday = 8 }},
		{"bad time format", func(d *model.WorkingHours) { d.StartTime = "9am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := workingDay(1)
			tt.mutate(day)
			err := svc.SetDay(context.Background(), testStaff, day)
			if err == nil {
				t.Fatal("expected validation error")
			}
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.Code != apperrors.CodeValidation {
				t.Fatalf("error = %v, want validation", err)
			}
		})
	}
}

func TestSetDay_NonWorkingDayNeedsNoTimes(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockHoursRepo{}
	svc := newTestService(repo, cfg)

	day := &model.WorkingHours{
		BusinessID: testBusiness,
		StaffID:    testStaff,
		Weekday:    6,
		IsWorking:  false,
	}
	if err := svc.SetDay(context.Background(), testStaff, day); err != nil {
		t.Fatalf("SetDay() error = %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved %d days, want 1", len(repo.saved))
	}
}

func TestGetWeek_FillsMissingDays(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockHoursRepo{
		findFn: func(ctx context.Context, staffID string) ([]*model.WorkingHours, error) {
			return []*model.WorkingHours{workingDay(2), workingDay(4)}, nil
		},
	}
	svc := newTestService(repo, cfg)

	week, err := svc.GetWeek(context.Background(), testStaff)
	if err != nil {
		t.Fatalf("GetWeek() error = %v", err)
	}

	if len(week) != 7 {
		t.Fatalf("week has %d days, want 7", len(week))
	}
	for i, day := range week {
		wantWeekday := i + 1
		if day.Weekday != wantWeekday {
			t.Errorf("position %d weekday = %d, want %d", i, day.Weekday, wantWeekday)
		}
		wantWorking := wantWeekday == 2 || wantWeekday == 4
		if day.IsWorking != wantWorking {
			t.Errorf("weekday %d IsWorking = %v, want %v", wantWeekday, day.IsWorking, wantWorking)
		}
	}
}

func TestGetDay_DefaultsToNonWorking(t *testing.T) {
	cfg := testConfig(t)
	repo := &mockHoursRepo{
		findDayFn: func(ctx context.Context, staffID string, weekday int) (*model.WorkingHours, error) {
			return nil, fmt.Errorf("%w: staff %s weekday %d", wherrors.ErrNotFound, staffID, weekday)
		},
	}
	svc := newTestService(repo, cfg)

	day, err := svc.GetDay(context.Background(), testStaff, 3)
	if err != nil {
		t.Fatalf("GetDay() error = %v", err)
	}
	if day.IsWorking {
		t.Error("missing day should come back non-working")
	}
	if day.Weekday != 3 {
		t.Errorf("weekday = %d, want 3", day.Weekday)
	}
}

func TestGetDay_RejectsBadWeekday(t *testing.T) {
	cfg := testConfig(t)
	svc := newTestService(&mockHoursRepo{}, cfg)

	for _, weekday := range []int{0, 8, -1} {
		if _, err := svc.GetDay(context.Background(), testStaff, weekday); err == nil {
			t.Errorf("GetDay(weekday=%d) expected error", weekday)
		}
	}
}
