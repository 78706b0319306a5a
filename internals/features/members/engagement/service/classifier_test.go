// file: internals/features/members/engagement/service/classifier_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
)

func testSnapshot() *careSettingService.Snapshot {
	return &careSettingService.Snapshot{
		Location:     time.UTC,
		AtRiskDays:   60,
		InactiveDays: 90,
	}
}

func daysAgo(now time.Time, n int) *time.Time {
	t := now.AddDate(0, 0, -n)
	return &t
}

func TestClassify_Bands(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		days int
		want Status
	}{
		{0, StatusActive},
		{1, StatusActive},
		{59, StatusActive},
		{60, StatusAtRisk}, // batas bawah inklusif
		{65, StatusAtRisk},
		{89, StatusAtRisk},
		{90, StatusDisconnected}, // batas bawah inklusif
		{400, StatusDisconnected},
	}
	for _, tc := range cases {
		res := Classify(daysAgo(now, tc.days), snap, now)
		require.NotNil(t, res.Days, "days=%d", tc.days)
		assert.Equal(t, tc.days, *res.Days, "days=%d", tc.days)
		assert.Equal(t, tc.want, res.Status, "days=%d", tc.days)
	}
}

func TestClassify_NeverContacted(t *testing.T) {
	res := Classify(nil, testSnapshot(), time.Now())
	assert.Equal(t, StatusDisconnected, res.Status)
	assert.Nil(t, res.Days, "tanpa kontak tidak ada angka hari")
}

func TestClassify_FreshContactResetsToActive(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)

	// 65 hari tanpa kontak → at_risk
	res := Classify(daysAgo(now, 65), snap, now)
	assert.Equal(t, StatusAtRisk, res.Status)

	// kunjungan hari ini → langsung active lagi
	res = Classify(daysAgo(now, 0), snap, now)
	assert.Equal(t, StatusActive, res.Status)
	assert.Equal(t, 0, *res.Days)
}

func TestClassify_FutureContactClampedToZero(t *testing.T) {
	snap := testSnapshot()
	now := time.Date(2025, 6, 30, 9, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 3)

	res := Classify(&future, snap, now)
	assert.Equal(t, StatusActive, res.Status)
	assert.Equal(t, 0, *res.Days)
}

func TestClassify_WholeDayFloorInCampusTZ(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	snap := &careSettingService.Snapshot{Location: jakarta, AtRiskDays: 60, InactiveDays: 90}

	// 23:00 UTC = 06:00 WIB hari berikutnya: menurut campus sudah ganti hari
	last := time.Date(2025, 6, 28, 23, 0, 0, 0, time.UTC)
	now := time.Date(2025, 6, 29, 23, 0, 0, 0, time.UTC)

	res := Classify(&last, snap, now)
	assert.Equal(t, 1, *res.Days)
}
