package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncidentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    IncidentStatus
		to      IncidentStatus
		allowed bool
	}{
		{"reported to verifying", StatusReported, StatusVerifying, true},
		{"reported to active", StatusReported, StatusActive, true},
		{"reported to dismissed", StatusReported, StatusDismissed, true},
		{"reported to resolved", StatusReported, StatusResolved, false},
		{"verifying to active", StatusVerifying, StatusActive, true},
		{"verifying to dismissed", StatusVerifying, StatusDismissed, true},
		{"verifying to reported", StatusVerifying, StatusReported, false},
		{"active to resolved", StatusActive, StatusResolved, true},
		{"active to dismissed", StatusActive, StatusDismissed, false},
		{"active to reported", StatusActive, StatusReported, false},
		{"resolved is terminal", StatusResolved, StatusActive, false},
		{"resolved cannot re-resolve", StatusResolved, StatusResolved, false},
		{"dismissed is terminal", StatusDismissed, StatusActive, false},
		{"unknown status has no transitions", IncidentStatus("bogus"), StatusActive, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestIncidentStatus_Terminal(t *testing.T) {
	assert.True(t, StatusResolved.Terminal())
	assert.True(t, StatusDismissed.Terminal())
	assert.False(t, StatusReported.Terminal())
	assert.False(t, StatusVerifying.Terminal())
	assert.False(t, StatusActive.Terminal())
}

func TestIncidentStatus_Valid(t *testing.T) {
	assert.True(t, StatusReported.Valid())
	assert.True(t, StatusDismissed.Valid())
	assert.False(t, IncidentStatus("archived").Valid())
	assert.False(t, IncidentStatus("").Valid())
}

func TestTaskStatus_Valid(t *testing.T) {
	assert.True(t, TaskPending.Valid())
	assert.True(t, TaskInProgress.Valid())
	assert.True(t, TaskCompleted.Valid())
	assert.False(t, TaskStatus("done").Valid())
}

func TestIncidentSeverity_Valid(t *testing.T) {
	assert.True(t, SeverityLow.Valid())
	assert.True(t, SeverityCritical.Valid())
	assert.False(t, IncidentSeverity("extreme").Valid())
}

func TestActor_CanCommand(t *testing.T) {
	assert.True(t, Actor{Role: RoleCoordinator}.CanCommand())
	assert.True(t, Actor{Role: RoleAdmin}.CanCommand())
	assert.False(t, Actor{Role: RoleVolunteer}.CanCommand())
	assert.False(t, Actor{Role: RoleCommunity}.CanCommand())
	assert.False(t, Actor{Role: RoleResourceManager}.CanCommand())
}
