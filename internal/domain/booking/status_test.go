package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusCreated, StatusConfirmed, true},
		{StatusCreated, StatusInProgress, true},
		{StatusCreated, StatusCompleted, true},
		{StatusCreated, StatusCancelled, true},
		{StatusConfirmed, StatusInProgress, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusCreated, false},
		{StatusInProgress, StatusCompleted, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusConfirmed, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusCreated, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCompleted, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestStatusSelfTransitionsRejected(t *testing.T) {
	for status := range validTransitions {
		assert.False(t, status.CanTransitionTo(status), "self transition allowed for %s", status)
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusCreated.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"created", "confirmed", "in_progress", "completed", "cancelled"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "pending", "CONFIRMED", "done"} {
		_, err := ParseStatus(invalid)
		assert.Error(t, err, "expected error for %q", invalid)
	}
}

func TestUnknownStatusCannotTransition(t *testing.T) {
	unknown := Status("pending")
	assert.False(t, unknown.IsValid())
	assert.False(t, unknown.CanTransitionTo(StatusConfirmed))
	assert.True(t, unknown.IsTerminal())
}
