// file: internals/features/campus/care_settings/model/care_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CareSettingModel: satu baris konfigurasi care per campus.
// Perubahan konfigurasi hanya berlaku untuk data yang digenerate SETELAHNYA
// (timeline yang sudah ada tidak pernah ditulis ulang).
type CareSettingModel struct {
	// PK
	CareSettingID uuid.UUID `json:"care_setting_id" gorm:"column:care_setting_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant (1 baris per campus)
	CareSettingCampusID uuid.UUID `json:"care_setting_campus_id" gorm:"column:care_setting_campus_id;type:uuid;not null;uniqueIndex:ux_care_settings_campus"`

	// Ambang engagement (hari sejak kontak terakhir). Invariant: at_risk < inactive.
	CareSettingAtRiskDays   int `json:"care_setting_at_risk_days" gorm:"column:care_setting_at_risk_days;not null;default:60"`
	CareSettingInactiveDays int `json:"care_setting_inactive_days" gorm:"column:care_setting_inactive_days;not null;default:90"`

	// Write-off: tugas terlambat > N hari disembunyikan dari view aktif (0 = tidak pernah)
	CareSettingWriteoffBirthdayDays     int `json:"care_setting_writeoff_birthday_days" gorm:"column:care_setting_writeoff_birthday_days;not null;default:3"`
	CareSettingWriteoffGriefDays        int `json:"care_setting_writeoff_grief_days" gorm:"column:care_setting_writeoff_grief_days;not null;default:0"`
	CareSettingWriteoffAccidentDays     int `json:"care_setting_writeoff_accident_days" gorm:"column:care_setting_writeoff_accident_days;not null;default:14"`
	CareSettingWriteoffFinancialAidDays int `json:"care_setting_writeoff_financial_aid_days" gorm:"column:care_setting_writeoff_financial_aid_days;not null;default:0"`

	// Offset timeline (hari dari anchor event, menaik ketat)
	CareSettingGriefOffsets    pq.Int64Array `json:"care_setting_grief_offsets" gorm:"column:care_setting_grief_offsets;type:int[];not null;default:'{7,14,30,90,180,365}'"`
	CareSettingAccidentOffsets pq.Int64Array `json:"care_setting_accident_offsets" gorm:"column:care_setting_accident_offsets;type:int[];not null;default:'{3,7,14}'"`

	// Timestamps
	CareSettingCreatedAt time.Time      `json:"care_setting_created_at" gorm:"column:care_setting_created_at;type:timestamptz;not null;autoCreateTime"`
	CareSettingUpdatedAt time.Time      `json:"care_setting_updated_at" gorm:"column:care_setting_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CareSettingDeletedAt gorm.DeletedAt `json:"care_setting_deleted_at,omitempty" gorm:"column:care_setting_deleted_at;type:timestamptz;index"`
}

func (CareSettingModel) TableName() string { return "care_settings" }

// DefaultCareSettings: baris konfigurasi awal untuk campus baru. Nilai di-set
// eksplisit (bukan mengandalkan default kolom) supaya insert via GORM tidak
// menulis nol/NULL.
func DefaultCareSettings(campusID uuid.UUID) CareSettingModel {
	return CareSettingModel{
		CareSettingCampusID:                 campusID,
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
