package schedule

import "bookwell/pkg/model"

// TransitionPolicy decides whether a status change is legal. The platform
// historically allows any transition via an explicit staff action; the
// lifecycle policy below is the opt-in restricted variant.
type TransitionPolicy interface {
	Allow(from, to model.Status) bool
}

// PermissivePolicy allows every transition between valid statuses.
type PermissivePolicy struct{}

func (PermissivePolicy) Allow(from, to model.Status) bool {
	return from.Valid() && to.Valid()
}

// LifecyclePolicy restricts transitions to the forward appointment flow plus
// cancellation. Closed statuses are terminal.
type LifecyclePolicy struct{}

var lifecycleTransitions = map[model.Status][]model.Status{
	model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
	model.StatusConfirmed: {model.StatusArrived, model.StatusCancelled, model.StatusNoShow},
	model.StatusArrived:   {model.StatusCompleted, model.StatusCancelled},
}

func (LifecyclePolicy) Allow(from, to model.Status) bool {
	for _, next := range lifecycleTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PolicyByName resolves a configured policy name, defaulting to permissive.
func PolicyByName(name string) TransitionPolicy {
	if name == "lifecycle" {
		return LifecyclePolicy{}
	}
	return PermissivePolicy{}
}
