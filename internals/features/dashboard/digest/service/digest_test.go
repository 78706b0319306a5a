// file: internals/features/dashboard/digest/service/digest_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	daily "faithtracker_backend/internals/features/dashboard/daily/service"
)

func TestBuildDigestText_Empty(t *testing.T) {
	view := daily.DailyView{ViewDate: "2025-06-15"}

	text := BuildDigestText(view)
	assert.Contains(t, text, "2025-06-15")
	assert.Contains(t, text, "Tidak ada tugas hari ini")
}

func TestBuildDigestText_WithTasks(t *testing.T) {
	view := daily.DailyView{
		ViewDate: "2025-06-15",
		BirthdaysToday: []daily.TaskItem{
			{MemberID: uuid.New(), MemberName: "Andi", DueDate: "2025-06-15"},
		},
		GriefDueToday: []daily.TaskItem{
			{MemberID: uuid.New(), MemberName: "Budi", DueDate: "2025-06-15", Label: "1_month"},
		},
		FollowUpsOverdue: []daily.TaskItem{
			{MemberID: uuid.New(), MemberName: "Budi", DueDate: "2025-06-15", Label: "1_month"},
			{MemberID: uuid.New(), MemberName: "Citra", DueDate: "2025-06-10", Label: "first_followup"},
		},
	}

	text := BuildDigestText(view)
	assert.Contains(t, text, "Ulang tahun hari ini: 1")
	assert.Contains(t, text, "Follow-up menunggak: 2")
	assert.Contains(t, text, "Andi")
	assert.Contains(t, text, "Budi (1_month)")
	assert.NotContains(t, text, "Tidak ada tugas")
}
