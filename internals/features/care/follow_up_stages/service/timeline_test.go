// file: internals/features/care/follow_up_stages/service/timeline_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStages_GriefDefaults(t *testing.T) {
	anchor := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	offsets := []int{7, 14, 30, 90, 180, 365}

	stages, err := GenerateStages(anchor, offsets, GriefLabels, time.UTC)
	require.NoError(t, err)
	require.Len(t, stages, 6)

	assert.Equal(t, time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), stages[0].ScheduledDate)
	assert.Equal(t, time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), stages[1].ScheduledDate)
	assert.Equal(t, time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC), stages[5].ScheduledDate)

	for i, s := range stages {
		assert.Equal(t, i+1, s.No)
		assert.Equal(t, GriefLabels[i], s.Label)
		if i > 0 {
			assert.True(t, s.ScheduledDate.After(stages[i-1].ScheduledDate),
				"jadwal harus menaik ketat")
		}
	}
}

func TestGenerateStages_AccidentDefaults(t *testing.T) {
	anchor := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	stages, err := GenerateStages(anchor, []int{3, 7, 14}, AccidentLabels, time.UTC)
	require.NoError(t, err)
	require.Len(t, stages, 3)

	assert.Equal(t, "first_followup", stages[0].Label)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), stages[0].ScheduledDate)
	assert.Equal(t, "final_followup", stages[2].Label)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), stages[2].ScheduledDate)
}

func TestGenerateStages_CrossesMonthAndYear(t *testing.T) {
	anchor := time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)

	stages, err := GenerateStages(anchor, []int{3, 7, 14}, AccidentLabels, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), stages[0].ScheduledDate)
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), stages[1].ScheduledDate)
}

func TestGenerateStages_LabelOffsetMismatch(t *testing.T) {
	anchor := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := GenerateStages(anchor, []int{7, 14}, GriefLabels, time.UTC)
	assert.Error(t, err)
}
