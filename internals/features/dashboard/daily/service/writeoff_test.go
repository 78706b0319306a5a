// file: internals/features/dashboard/daily/service/writeoff_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	careSettingModel "faithtracker_backend/internals/features/campus/care_settings/model"
	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
)

func utcSnapshot(t *testing.T) *careSettingService.Snapshot {
	t.Helper()
	snap, err := careSettingService.BuildSnapshot(
		campusModel.CampusModel{
			CampusID:       uuid.New(),
			CampusName:     "Kampus Tes",
			CampusSlug:     "kampus-tes",
			CampusTimezone: "UTC",
		},
		careSettingModel.CareSettingModel{
			CareSettingAtRiskDays:               60,
			CareSettingInactiveDays:             90,
			CareSettingWriteoffBirthdayDays:     3,
			CareSettingWriteoffGriefDays:        0,
			CareSettingWriteoffAccidentDays:     14,
			CareSettingWriteoffFinancialAidDays: 0,
			CareSettingGriefOffsets:             pq.Int64Array{7, 14, 30, 90, 180, 365},
			CareSettingAccidentOffsets:          pq.Int64Array{3, 7, 14},
		},
	)
	require.NoError(t, err)
	return snap
}

func TestIsVisible_ThresholdZeroNeverHides(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	// grief threshold 0: tugas 10000 hari telat pun masih tampil
	ancient := now.AddDate(0, 0, -10000)
	assert.True(t, IsVisible(careSettingService.TaskGriefSupport, ancient, now, snap, false, false))
	assert.True(t, IsVisible(careSettingService.TaskFinancialAid, ancient, now, snap, false, false))
}

func TestIsVisible_ThresholdCutsOff(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	// birthday threshold 3 hari
	assert.True(t, IsVisible(careSettingService.TaskBirthday, now, now, snap, false, false), "pas hari-H")
	assert.True(t, IsVisible(careSettingService.TaskBirthday, now.AddDate(0, 0, -3), now, snap, false, false), "telat 3 = batas, masih tampil")
	assert.False(t, IsVisible(careSettingService.TaskBirthday, now.AddDate(0, 0, -4), now, snap, false, false), "telat 4 disembunyikan")

	// accident threshold 14 hari
	assert.True(t, IsVisible(careSettingService.TaskAccident, now.AddDate(0, 0, -14), now, snap, false, false))
	assert.False(t, IsVisible(careSettingService.TaskAccident, now.AddDate(0, 0, -15), now, snap, false, false))
}

func TestIsVisible_CompletedOrIgnoredAlwaysHidden(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.False(t, IsVisible(careSettingService.TaskGriefSupport, now, now, snap, true, false))
	assert.False(t, IsVisible(careSettingService.TaskGriefSupport, now, now, snap, false, true))
	assert.False(t, IsVisible(careSettingService.TaskBirthday, now, now, snap, true, true))
}

func TestIsVisible_FutureTaskVisible(t *testing.T) {
	snap := utcSnapshot(t)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, IsVisible(careSettingService.TaskBirthday, now.AddDate(0, 0, 5), now, snap, false, false))
}
