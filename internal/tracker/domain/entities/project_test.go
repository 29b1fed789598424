package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"planboard/internal/tracker/domain/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewProject(t *testing.T) {
	project := entities.NewProject("Site", "Rebuild marketing site", date(2099, 1, 1), date(2099, 2, 1), "manager-id")

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, entities.StatusPlanned, project.Status)
	assert.Equal(t, "manager-id", project.ManagerID)
}

func TestIsLateAt(t *testing.T) {
	start := date(2099, 1, 1)
	end := date(2099, 2, 1)

	tests := []struct {
		name   string
		status entities.ProjectStatus
		now    time.Time
		late   bool
	}{
		{name: "planned before deadline", status: entities.StatusPlanned, now: date(2099, 1, 15), late: false},
		{name: "planned on deadline", status: entities.StatusPlanned, now: end, late: false},
		{name: "planned past deadline", status: entities.StatusPlanned, now: date(2099, 2, 2), late: true},
		{name: "in progress past deadline", status: entities.StatusInProgress, now: date(2099, 2, 2), late: true},
		{name: "cancelled past deadline", status: entities.StatusCancelled, now: date(2099, 2, 2), late: true},
		{name: "completed past deadline", status: entities.StatusCompleted, now: date(2099, 2, 2), late: false},
		{name: "completed far past deadline", status: entities.StatusCompleted, now: date(2150, 1, 1), late: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := entities.NewProject("Site", "Rebuild marketing site", start, end, "manager-id")
			project.Status = tt.status
			assert.Equal(t, tt.late, project.IsLateAt(tt.now))
		})
	}
}

// Сценарий: проект не просрочен, "сейчас" переходит за дату завершения,
// затем проект завершается.
func TestIsLateAtScenario(t *testing.T) {
	project := entities.NewProject("Site", "Rebuild marketing site", date(2099, 1, 1), date(2099, 2, 1), "manager-id")

	assert.False(t, project.IsLateAt(date(2099, 1, 10)))

	now := date(2099, 2, 2)
	assert.True(t, project.IsLateAt(now))

	project.Status = entities.StatusCompleted
	assert.False(t, project.IsLateAt(now))
}

func TestPlannedDuration(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{name: "one month", start: date(2099, 1, 1), end: date(2099, 2, 1), expected: 31},
		{name: "same day", start: date(2099, 1, 1), end: date(2099, 1, 1), expected: 0},
		{name: "one week", start: date(2099, 3, 1), end: date(2099, 3, 8), expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			project := entities.NewProject("Site", "Rebuild marketing site", tt.start, tt.end, "manager-id")
			assert.Equal(t, tt.expected, project.PlannedDuration())
		})
	}
}

func TestParseProjectStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected entities.ProjectStatus
		wantErr  bool
	}{
		{name: "canonical", input: "PLANNED", expected: entities.StatusPlanned},
		{name: "lowercase", input: "in_progress", expected: entities.StatusInProgress},
		{name: "padded", input: " completed ", expected: entities.StatusCompleted},
		{name: "cancelled", input: "cancelled", expected: entities.StatusCancelled},
		{name: "unknown", input: "paused", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := entities.ParseProjectStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, entities.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, status)
		})
	}
}
