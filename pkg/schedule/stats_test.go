package schedule

import (
	"reflect"
	"testing"

	"bookwell/pkg/model"
)

func statAppt(date string, price int64, status model.Status, serviceID, label string) *model.Appointment {
	return &model.Appointment{
		Date:         date,
		Price:        price,
		Status:       status,
		ServiceID:    serviceID,
		ServiceLabel: label,
		StartTime:    "10:00",
		DurationMin:  30,
	}
}

func TestAggregate_RevenueAndCompletionRate(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-02", 2000, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-03", 5000, model.StatusCancelled, "s2", "Massage"),
		statAppt("2026-03-04", 1500, model.StatusPending, "s1", "Haircut"),
	}
	r := DateRange{Start: "2026-03-01", End: "2026-03-31"}

	snap := Aggregate(appts, r, "")

	if snap.TotalCount != 3 {
		t.Errorf("expected 3 appointments, got %d", snap.TotalCount)
	}
	if snap.TotalRevenue != 8500 {
		t.Errorf("expected revenue 8500, got %d", snap.TotalRevenue)
	}
	// Denominator: 3 - 1 cancelled - 1 pending = 1 decided, 1 completed.
	if snap.CompletionRate != 100 {
		t.Errorf("expected completion rate 100, got %v", snap.CompletionRate)
	}
	if snap.AverageValue != 8500/3 {
		t.Errorf("expected average %d, got %d", int64(8500/3), snap.AverageValue)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-02", 2000, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-03", 3000, model.StatusConfirmed, "s2", "Massage"),
		statAppt("2026-03-05", 1000, model.StatusNoShow, "s1", "Haircut"),
	}
	r := DateRange{Start: "2026-03-01", End: "2026-03-31"}

	first := Aggregate(appts, r, "")
	second := Aggregate(appts, r, "")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation is not idempotent:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_EmptySet(t *testing.T) {
	snap := Aggregate(nil, DateRange{Start: "2026-03-01", End: "2026-03-31"}, "")

	if snap.TotalCount != 0 || snap.TotalRevenue != 0 {
		t.Errorf("expected zero totals, got %+v", snap)
	}
	if snap.AverageValue != 0 {
		t.Errorf("average of empty set must be 0, got %d", snap.AverageValue)
	}
	if snap.CompletionRate != 0 {
		t.Errorf("completion rate of empty set must be 0, got %v", snap.CompletionRate)
	}
	if len(snap.StatusCounts) != len(model.AllStatuses) {
		t.Errorf("expected all %d status keys zero-filled, got %d", len(model.AllStatuses), len(snap.StatusCounts))
	}
	for status, count := range snap.StatusCounts {
		if count != 0 {
			t.Errorf("expected zero count for %s, got %d", status, count)
		}
	}
}

func TestAggregate_ZeroDenominator(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-02", 2000, model.StatusPending, "s1", "Haircut"),
		statAppt("2026-03-03", 5000, model.StatusCancelled, "s2", "Massage"),
	}
	snap := Aggregate(appts, DateRange{Start: "2026-03-01", End: "2026-03-31"}, "")

	if snap.CompletionRate != 0 {
		t.Errorf("expected completion rate 0 with no decided appointments, got %v", snap.CompletionRate)
	}
}

func TestAggregate_DateRangeAndStatusFilter(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-02-28", 1000, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-01", 2000, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-31", 3000, model.StatusConfirmed, "s2", "Massage"),
		statAppt("2026-04-01", 4000, model.StatusCompleted, "s1", "Haircut"),
	}
	r := DateRange{Start: "2026-03-01", End: "2026-03-31"}

	all := Aggregate(appts, r, "")
	if all.TotalCount != 2 || all.TotalRevenue != 5000 {
		t.Errorf("range boundaries are inclusive: expected 2/5000, got %d/%d", all.TotalCount, all.TotalRevenue)
	}

	completed := Aggregate(appts, r, model.StatusCompleted)
	if completed.TotalCount != 1 || completed.TotalRevenue != 2000 {
		t.Errorf("status filter: expected 1/2000, got %d/%d", completed.TotalCount, completed.TotalRevenue)
	}
}

func TestAggregate_TopServices(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-01", 100, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-01", 100, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-01", 100, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-02", 500, model.StatusCompleted, "s2", "Massage"),
		statAppt("2026-03-02", 500, model.StatusCompleted, "s2", "Massage"),
		statAppt("2026-03-02", 200, model.StatusCompleted, "s3", "Manicure"),
		statAppt("2026-03-02", 200, model.StatusCompleted, "s4", "Pedicure"),
		statAppt("2026-03-02", 200, model.StatusCompleted, "s5", "Coloring"),
		statAppt("2026-03-02", 200, model.StatusCompleted, "s6", "Wax"),
	}
	r := DateRange{Start: "2026-03-01", End: "2026-03-31"}

	snap := Aggregate(appts, r, "")

	if len(snap.TopServices) != TopServicesLimit {
		t.Fatalf("expected top list truncated to %d, got %d", TopServicesLimit, len(snap.TopServices))
	}
	if snap.TopServices[0].Label != "Haircut" || snap.TopServices[0].Count != 3 {
		t.Errorf("expected Haircut x3 first, got %+v", snap.TopServices[0])
	}
	if snap.TopServices[1].Label != "Massage" || snap.TopServices[1].Revenue != 1000 {
		t.Errorf("expected Massage with revenue 1000 second, got %+v", snap.TopServices[1])
	}
	// Equal counts keep first-seen order.
	if snap.TopServices[2].Label != "Manicure" || snap.TopServices[3].Label != "Pedicure" {
		t.Errorf("expected stable tie-break, got %+v", snap.TopServices[2:])
	}
}

func TestAggregate_UnknownService(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-01", 100, model.StatusCompleted, "", ""),
		statAppt("2026-03-01", 200, model.StatusCompleted, "", ""),
	}
	snap := Aggregate(appts, DateRange{Start: "2026-03-01", End: "2026-03-31"}, "")

	if len(snap.TopServices) != 1 {
		t.Fatalf("expected one service group, got %d", len(snap.TopServices))
	}
	if snap.TopServices[0].Label != UnknownServiceLabel {
		t.Errorf("expected label %q, got %q", UnknownServiceLabel, snap.TopServices[0].Label)
	}
	if snap.TopServices[0].Count != 2 || snap.TopServices[0].Revenue != 300 {
		t.Errorf("unexpected unknown-service group: %+v", snap.TopServices[0])
	}
}

func TestTimeSeries(t *testing.T) {
	appts := []*model.Appointment{
		statAppt("2026-03-03", 300, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-01", 100, model.StatusCompleted, "s1", "Haircut"),
		statAppt("2026-03-01", 150, model.StatusConfirmed, "s2", "Massage"),
		statAppt("2026-04-05", 999, model.StatusCompleted, "s1", "Haircut"),
	}
	points := TimeSeries(appts, DateRange{Start: "2026-03-01", End: "2026-03-31"})

	want := []TimeSeriesPoint{
		{Date: "2026-03-01", Revenue: 250, Count: 2},
		{Date: "2026-03-03", Revenue: 300, Count: 1},
	}
	if !reflect.DeepEqual(points, want) {
		t.Errorf("expected %+v, got %+v", want, points)
	}
}
