// file: internals/features/dashboard/daily/service/writeoff.go
package service

import (
	"time"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/helpers/dbtime"
)

// IsVisible: apakah satu tugas care masih tampil di daftar aktif.
// Completed/ignored selalu hilang. Selain itu tugas tampil selama belum lewat
// ambang write-off jenisnya; ambang 0 = tidak pernah disembunyikan (tugas
// 10000 hari telat pun tetap tampil). Klasifikasi at-risk/disconnected tidak
// lewat sini: dia bukan tugas ber-tanggal dan tidak pernah di-write-off.
func IsVisible(
	task careSettingService.TaskType,
	scheduled, now time.Time,
	snap *careSettingService.Snapshot,
	completed, ignored bool,
) bool {
	if completed || ignored {
		return false
	}
	threshold := snap.WriteoffDays(task)
	if threshold == 0 {
		return true
	}
	overdue := dbtime.DaysBetween(scheduled, now, snap.Location)
	if overdue < 0 {
		overdue = 0
	}
	return overdue <= threshold
}
