package order

import (
	"testing"

	"cafe-pos/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from model.OrderStatus
		to   model.OrderStatus
		ok   bool
	}{
		{model.StatusPending, model.StatusPreparing, true},
		{model.StatusPreparing, model.StatusCompleted, true},
		{model.StatusPending, model.StatusCompleted, true},
		{model.StatusPending, model.StatusCancelled, true},
		{model.StatusPreparing, model.StatusCancelled, true},
		{model.StatusPending, model.StatusPending, true},
		{model.StatusCompleted, model.StatusCompleted, true},
		{model.StatusPreparing, model.StatusPending, false},
		{model.StatusCompleted, model.StatusCancelled, false},
		{model.StatusCompleted, model.StatusPreparing, false},
		{model.StatusCancelled, model.StatusPending, false},
		{model.StatusCancelled, model.StatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			err := CanTransition(tt.from, tt.to)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, model.ErrInvalidTransition)
			}
		})
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.ErrorIs(t, CanTransition(model.StatusPending, "Shipped"), model.ErrInvalidStatus)
}

func TestNextStatuses(t *testing.T) {
	assert.Equal(t,
		[]model.OrderStatus{model.StatusPreparing, model.StatusCompleted, model.StatusCancelled},
		NextStatuses(model.StatusPending))
	assert.Equal(t,
		[]model.OrderStatus{model.StatusCompleted, model.StatusCancelled},
		NextStatuses(model.StatusPreparing))
	assert.Empty(t, NextStatuses(model.StatusCompleted))
	assert.Empty(t, NextStatuses(model.StatusCancelled))
}
