package schedule

import (
	"testing"

	"bookwell/pkg/model"
)

func TestPermissivePolicy(t *testing.T) {
	policy := PermissivePolicy{}

	for _, from := range model.AllStatuses {
		for _, to := range model.AllStatuses {
			if !policy.Allow(from, to) {
				t.Errorf("permissive policy must allow %s -> %s", from, to)
			}
		}
	}

	if policy.Allow("bogus", model.StatusPending) {
		t.Error("permissive policy must reject unknown statuses")
	}
}

func TestLifecyclePolicy(t *testing.T) {
	policy := LifecyclePolicy{}

	tests := []struct {
		from  model.Status
		to    model.Status
		allow bool
	}{
		{model.StatusPending, model.StatusConfirmed, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPending, model.StatusCompleted, false},
		{model.StatusConfirmed, model.StatusArrived, true},
		{model.StatusConfirmed, model.StatusNoShow, true},
		{model.StatusArrived, model.StatusCompleted, true},
		{model.StatusCompleted, model.StatusPending, false},
		{model.StatusCancelled, model.StatusConfirmed, false},
		{model.StatusNoShow, model.StatusArrived, false},
	}

	for _, tt := range tests {
		if got := policy.Allow(tt.from, tt.to); got != tt.allow {
			t.Errorf("%s -> %s: expected %v, got %v", tt.from, tt.to, tt.allow, got)
		}
	}
}

func TestPolicyByName(t *testing.T) {
	if _, ok := PolicyByName("lifecycle").(LifecyclePolicy); !ok {
		t.Error("expected lifecycle policy for name 'lifecycle'")
	}
	if _, ok := PolicyByName("").(PermissivePolicy); !ok {
		t.Error("expected permissive policy for empty name")
	}
	if _, ok := PolicyByName("anything-else").(PermissivePolicy); !ok {
		t.Error("expected permissive policy for unknown name")
	}
}

func TestStatusClosed(t *testing.T) {
	closed := map[model.Status]bool{
		model.StatusCompleted: true,
		model.StatusCancelled: true,
		model.StatusNoShow:    true,
	}
	for _, s := range model.AllStatuses {
		if s.Closed() != closed[s] {
			t.Errorf("%s: expected Closed=%v", s, closed[s])
		}
	}
}
