// file: internals/features/members/engagement/service/classifier.go
package service

import (
	"time"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/helpers/dbtime"
)

type Status string

const (
	StatusActive       Status = "active"
	StatusAtRisk       Status = "at_risk"
	StatusDisconnected Status = "disconnected"
)

// Result hasil klasifikasi satu jemaat.
// Days nil jika jemaat belum pernah dikontak sama sekali.
type Result struct {
	Status Status `json:"status"`
	Days   *int   `json:"days_since_last_contact,omitempty"`
}

// Classify murni: tidak menyentuh DB, tidak menyentuh clock server.
// Selisih hari dihitung whole-day (floor) di timezone campus.
// Batas bawah inklusif: days == at_risk_days sudah at_risk,
// days == inactive_days sudah disconnected.
//
// lastContact nil ⇒ disconnected tanpa angka hari: jemaat yang belum pernah
// tersentuh justru kandidat perhatian paling kuat.
func Classify(lastContact *time.Time, snap *careSettingService.Snapshot, now time.Time) Result {
	if lastContact == nil {
		return Result{Status: StatusDisconnected}
	}

	days := dbtime.DaysBetween(*lastContact, now, snap.Location)
	if days < 0 {
		days = 0 // kontak tercatat di masa depan dianggap baru saja
	}

	switch {
	case days >= snap.InactiveDays:
		return Result{Status: StatusDisconnected, Days: &days}
	case days >= snap.AtRiskDays:
		return Result{Status: StatusAtRisk, Days: &days}
	default:
		return Result{Status: StatusActive, Days: &days}
	}
}
