// Package order holds confirmed orders and their status lifecycle.
package order

import (
	"fmt"

	"cafe-pos/internal/model"
)

// rank orders the forward path Pending -> Preparing -> Completed.
var rank = map[model.OrderStatus]int{
	model.StatusPending:   0,
	model.StatusPreparing: 1,
	model.StatusCompleted: 2,
}

// IsTerminal reports whether no further transitions leave s.
func IsTerminal(s model.OrderStatus) bool {
	return s == model.StatusCompleted || s == model.StatusCancelled
}

// CanTransition checks a status change.
//
// Forward moves are allowed and may skip Preparing. Cancelled is reachable
// from Pending or Preparing. Completed and Cancelled are final. Asking for
// the current status is accepted as a no-op.
func CanTransition(from, to model.OrderStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: %q", model.ErrInvalidStatus, to)
	}
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return fmt.Errorf("%w: %s is final", model.ErrInvalidTransition, from)
	}
	if to == model.StatusCancelled {
		return nil
	}
	if rank[to] > rank[from] {
		return nil
	}
	return fmt.Errorf("%w: %s to %s", model.ErrInvalidTransition, from, to)
}

// NextStatuses lists the statuses reachable from s, in lifecycle order.
func NextStatuses(s model.OrderStatus) []model.OrderStatus {
	out := make([]model.OrderStatus, 0, 3)
	for _, to := range []model.OrderStatus{
		model.StatusPending,
		model.StatusPreparing,
		model.StatusCompleted,
		model.StatusCancelled,
	} {
		if to != s && CanTransition(s, to) == nil {
			out = append(out, to)
		}
	}
	return out
}
