// file: internals/features/campus/care_settings/service/snapshot_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	"faithtracker_backend/internals/features/campus/care_settings/model"
)

func validCampus() campusModel.CampusModel {
	return campusModel.CampusModel{
		CampusID:       uuid.New(),
		CampusName:     "GKI Serpong",
		CampusSlug:     "gki-serpong",
		CampusTimezone: "Asia/Jakarta",
	}
}

func validSettings() model.CareSettingModel {
	return model.CareSettingModel{
		CareSettingAtRiskDays:               60,
		CareSettingInactiveDays:             90,
		CareSettingWriteoffBirthdayDays:     3,
		CareSettingWriteoffGriefDays:        0,
		CareSettingWriteoffAccidentDays:     14,
		CareSettingWriteoffFinancialAidDays: 0,
		CareSettingGriefOffsets:             pq.Int64Array{7, 14, 30, 90, 180, 365},
		CareSettingAccidentOffsets:          pq.Int64Array{3, 7, 14},
	}
}

func TestBuildSnapshot_Valid(t *testing.T) {
	campus := validCampus()
	snap, err := BuildSnapshot(campus, validSettings())
	require.NoError(t, err)

	assert.Equal(t, campus.CampusID, snap.CampusID)
	assert.Equal(t, "Asia/Jakarta", snap.Timezone)
	assert.NotNil(t, snap.Location)
	assert.Equal(t, 60, snap.AtRiskDays)
	assert.Equal(t, 90, snap.InactiveDays)
	assert.Equal(t, []int{7, 14, 30, 90, 180, 365}, snap.GriefOffsets)
	assert.Equal(t, []int{3, 7, 14}, snap.AccidentOffsets)

	assert.Equal(t, 3, snap.WriteoffDays(TaskBirthday))
	assert.Equal(t, 0, snap.WriteoffDays(TaskGriefSupport))
	assert.Equal(t, 14, snap.WriteoffDays(TaskAccident))
	assert.Equal(t, 0, snap.WriteoffDays(TaskFinancialAid))
	assert.Equal(t, 0, snap.WriteoffDays(TaskType("unknown")))
}

func TestValidateThresholds(t *testing.T) {
	require.NoError(t, ValidateThresholds(60, 90))
	require.NoError(t, ValidateThresholds(1, 2))

	assert.Error(t, ValidateThresholds(0, 90), "at_risk harus > 0")
	assert.Error(t, ValidateThresholds(-5, 90))
	assert.Error(t, ValidateThresholds(90, 90), "inactive harus > at_risk")
	assert.Error(t, ValidateThresholds(90, 60), "ambang terbalik")
}

func TestValidateOffsets(t *testing.T) {
	require.NoError(t, ValidateOffsets([]int64{7, 14, 30, 90, 180, 365}, 6))
	require.NoError(t, ValidateOffsets([]int64{3, 7, 14}, 3))
	require.NoError(t, ValidateOffsets([]int64{0, 1, 2}, 3), "nol boleh di posisi pertama")

	assert.Error(t, ValidateOffsets([]int64{7, 14, 30}, 6), "panjang salah")
	assert.Error(t, ValidateOffsets([]int64{3, 7, 7}, 3), "tidak menaik ketat")
	assert.Error(t, ValidateOffsets([]int64{7, 3, 14}, 3), "turun")
	assert.Error(t, ValidateOffsets([]int64{-1, 3, 7}, 3), "negatif")
}

func TestBuildSnapshot_RejectsInvalid(t *testing.T) {
	campus := validCampus()

	cs := validSettings()
	cs.CareSettingInactiveDays = 30
	_, err := BuildSnapshot(campus, cs)
	assert.Error(t, err, "inactive < at_risk ditolak")

	cs = validSettings()
	cs.CareSettingGriefOffsets = pq.Int64Array{7, 14}
	_, err = BuildSnapshot(campus, cs)
	assert.Error(t, err, "grief offsets kurang")

	cs = validSettings()
	cs.CareSettingAccidentOffsets = pq.Int64Array{14, 7, 3}
	_, err = BuildSnapshot(campus, cs)
	assert.Error(t, err, "accident offsets tidak menaik")

	badCampus := validCampus()
	badCampus.CampusTimezone = "Mars/Olympus"
	_, err = BuildSnapshot(badCampus, validSettings())
	assert.Error(t, err, "timezone tidak dikenal")
}
