// file: internals/features/dashboard/daily/service/aggregator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	stageModel "faithtracker_backend/internals/features/care/follow_up_stages/model"
	aidModel "faithtracker_backend/internals/features/finance/aid_schedules/model"
	memberModel "faithtracker_backend/internals/features/members/members/model"
)

func dateOnly(y int, m time.Month, d int) *datatypes.Date {
	dd := datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return &dd
}

func member(name string, birth *datatypes.Date, status string) memberModel.MemberModel {
	return memberModel.MemberModel{
		MemberID:               uuid.New(),
		MemberFullName:         name,
		MemberBirthDate:        birth,
		MemberEngagementStatus: status,
	}
}

func griefStage(memberID uuid.UUID, scheduled *datatypes.Date, completed bool) stageModel.FollowUpStageModel {
	return stageModel.FollowUpStageModel{
		FollowUpStageID:            uuid.New(),
		FollowUpStageMemberID:      memberID,
		FollowUpStageCareEventID:   uuid.New(),
		FollowUpStageKind:          stageModel.StageKindGrief,
		FollowUpStageNo:            1,
		FollowUpStageLabel:         "1_week",
		FollowUpStageScheduledDate: *scheduled,
		FollowUpStageCompleted:     completed,
	}
}

func TestAssembleDailyView_Partitions(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	andi := member("Andi", dateOnly(1990, 6, 15), "active")         // ultah hari ini
	budi := member("Budi", dateOnly(1985, 6, 20), "active")         // ultah 5 hari lagi
	citra := member("Citra", dateOnly(1992, 6, 10), "at_risk")      // ultah sudah lewat
	dewi := member("Dewi", nil, "disconnected")                     // tanpa tanggal lahir
	days := 65
	citra.MemberDaysSinceContact = &days

	stages := []stageModel.FollowUpStageModel{
		griefStage(andi.MemberID, dateOnly(2025, 6, 15), false), // due hari ini
		griefStage(budi.MemberID, dateOnly(2025, 6, 10), false), // telat 5 hari
		griefStage(citra.MemberID, dateOnly(2025, 6, 1), true),  // selesai → hilang
		griefStage(dewi.MemberID, dateOnly(2025, 7, 1), false),  // belum jatuh tempo
	}

	schedules := []aidModel.AidScheduleModel{
		{
			AidScheduleID:             uuid.New(),
			AidScheduleMemberID:       citra.MemberID,
			AidScheduleFrequency:      "monthly",
			AidScheduleAmountIDR:      500_000,
			AidScheduleStatus:         aidModel.StatusActive,
			AidScheduleNextOccurrence: dateOnly(2025, 6, 10), // telat 5 hari
		},
		{
			AidScheduleID:             uuid.New(),
			AidScheduleMemberID:       budi.MemberID,
			AidScheduleFrequency:      "weekly",
			AidScheduleAmountIDR:      100_000,
			AidScheduleStatus:         aidModel.StatusStopped, // berhenti → hilang
			AidScheduleNextOccurrence: dateOnly(2025, 6, 10),
		},
		{
			AidScheduleID:             uuid.New(),
			AidScheduleMemberID:       andi.MemberID,
			AidScheduleFrequency:      "monthly",
			AidScheduleAmountIDR:      200_000,
			AidScheduleStatus:         aidModel.StatusActive,
			AidScheduleNextOccurrence: dateOnly(2025, 6, 20), // belum jatuh tempo
		},
	}

	view := AssembleDailyView(snap,
		now,
		[]memberModel.MemberModel{andi, budi, citra, dewi},
		stages, schedules, nil)

	require.Len(t, view.BirthdaysToday, 1)
	assert.Equal(t, "Andi", view.BirthdaysToday[0].MemberName)

	require.Len(t, view.BirthdaysUpcoming, 1)
	assert.Equal(t, "Budi", view.BirthdaysUpcoming[0].MemberName)

	// grief due hari ini muncul DUA kali: di grief_due_today dan follow_ups_overdue
	require.Len(t, view.GriefDueToday, 1)
	assert.Equal(t, "Andi", view.GriefDueToday[0].MemberName)
	require.Len(t, view.FollowUpsOverdue, 2)

	require.Len(t, view.FinancialAidDue, 1)
	assert.Equal(t, "Citra", view.FinancialAidDue[0].MemberName)
	assert.Equal(t, 5, view.FinancialAidDue[0].DaysOverdue)
	require.NotNil(t, view.FinancialAidDue[0].AmountIDR)
	assert.Equal(t, int64(500_000), *view.FinancialAidDue[0].AmountIDR)

	require.Len(t, view.AtRiskMembers, 1)
	assert.Equal(t, "Citra", view.AtRiskMembers[0].MemberName)
	require.Len(t, view.DisconnectedMembers, 1)
	assert.Equal(t, "Dewi", view.DisconnectedMembers[0].MemberName)
}

func TestAssembleDailyView_DeterministicOrdering(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	a := member("Agus", nil, "active")
	z := member("Zaki", nil, "active")
	b := member("Bela", nil, "active")

	stages := []stageModel.FollowUpStageModel{
		griefStage(z.MemberID, dateOnly(2025, 6, 10), false),
		griefStage(b.MemberID, dateOnly(2025, 6, 10), false),
		griefStage(a.MemberID, dateOnly(2025, 6, 12), false),
	}

	view := AssembleDailyView(snap, now,
		[]memberModel.MemberModel{a, z, b}, stages, nil, nil)

	require.Len(t, view.FollowUpsOverdue, 3)
	// tanggal naik dulu, lalu nama
	assert.Equal(t, "Bela", view.FollowUpsOverdue[0].MemberName)
	assert.Equal(t, "Zaki", view.FollowUpsOverdue[1].MemberName)
	assert.Equal(t, "Agus", view.FollowUpsOverdue[2].MemberName)
}

func TestAssembleDailyView_BirthdayAcrossYearBoundary(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 12, 30, 9, 0, 0, 0, time.UTC)

	jan := member("Januar", dateOnly(1990, 1, 2), "active") // 3 hari lagi, tahun depan

	view := AssembleDailyView(snap, now,
		[]memberModel.MemberModel{jan}, nil, nil, nil)

	require.Len(t, view.BirthdaysUpcoming, 1)
	assert.Equal(t, "2026-01-02", view.BirthdaysUpcoming[0].DueDate)
}

func TestAssembleDailyView_LeapDayBirthdayObservedFeb28(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 2, 28, 9, 0, 0, 0, time.UTC) // 2025 bukan kabisat

	leap := member("Kabisat", dateOnly(2000, 2, 29), "active")

	view := AssembleDailyView(snap, now,
		[]memberModel.MemberModel{leap}, nil, nil, nil)

	require.Len(t, view.BirthdaysToday, 1)
	assert.Equal(t, "Kabisat", view.BirthdaysToday[0].MemberName)
}

func TestAssembleDailyView_HandledBirthdayExcluded(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	andi := member("Andi", dateOnly(1990, 6, 15), "active")
	done := map[uuid.UUID]bool{andi.MemberID: true}

	view := AssembleDailyView(snap, now,
		[]memberModel.MemberModel{andi}, nil, nil, done)

	assert.Empty(t, view.BirthdaysToday)
}
