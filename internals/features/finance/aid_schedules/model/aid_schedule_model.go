// file: internals/features/finance/aid_schedules/model/aid_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status jadwal bantuan.
const (
	StatusActive  = "active"
	StatusStopped = "stopped"
)

// AidScheduleModel: jadwal bantuan keuangan berulang untuk satu jemaat.
// next_occurrence adalah cache hasil scheduler; version dipakai optimistic
// lock supaya dua staf tidak bisa menyalurkan kejadian yang sama dua kali.
type AidScheduleModel struct {
	// PK
	AidScheduleID uuid.UUID `json:"aid_schedule_id" gorm:"column:aid_schedule_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant & relasi
	AidScheduleCampusID uuid.UUID `json:"aid_schedule_campus_id" gorm:"column:aid_schedule_campus_id;type:uuid;not null;index:idx_aid_schedules_campus"`
	AidScheduleMemberID uuid.UUID `json:"aid_schedule_member_id" gorm:"column:aid_schedule_member_id;type:uuid;not null;index:idx_aid_schedules_member"`

	// Aturan kambuhan
	AidScheduleFrequency   string          `json:"aid_schedule_frequency" gorm:"column:aid_schedule_frequency;type:varchar(10);not null"` // one_time|weekly|monthly|annually
	AidScheduleStartDate   datatypes.Date  `json:"aid_schedule_start_date" gorm:"column:aid_schedule_start_date;type:date;not null"`
	AidScheduleEndDate     *datatypes.Date `json:"aid_schedule_end_date,omitempty" gorm:"column:aid_schedule_end_date;type:date"`
	AidScheduleDayOfWeek   *int            `json:"aid_schedule_day_of_week,omitempty" gorm:"column:aid_schedule_day_of_week;type:smallint"`   // 0=Minggu..6=Sabtu
	AidScheduleDayOfMonth  *int            `json:"aid_schedule_day_of_month,omitempty" gorm:"column:aid_schedule_day_of_month;type:smallint"` // 1..31, di-clamp
	AidScheduleMonthOfYear *int            `json:"aid_schedule_month_of_year,omitempty" gorm:"column:aid_schedule_month_of_year;type:smallint"`

	// Nominal
	AidScheduleAmountIDR int64 `json:"aid_schedule_amount_idr" gorm:"column:aid_schedule_amount_idr;type:bigint;not null"`

	// Status + cache scheduler
	AidScheduleStatus         string          `json:"aid_schedule_status" gorm:"column:aid_schedule_status;type:varchar(10);not null;default:'active';index:idx_aid_schedules_status"`
	AidScheduleNextOccurrence *datatypes.Date `json:"aid_schedule_next_occurrence,omitempty" gorm:"column:aid_schedule_next_occurrence;type:date;index:idx_aid_schedules_next"`

	// Optimistic lock untuk mark-distributed
	AidScheduleVersion int `json:"aid_schedule_version" gorm:"column:aid_schedule_version;type:int;not null;default:1"`

	AidScheduleNote *string `json:"aid_schedule_note,omitempty" gorm:"column:aid_schedule_note;type:text"`

	// Timestamps
	AidScheduleCreatedAt time.Time      `json:"aid_schedule_created_at" gorm:"column:aid_schedule_created_at;type:timestamptz;not null;autoCreateTime"`
	AidScheduleUpdatedAt time.Time      `json:"aid_schedule_updated_at" gorm:"column:aid_schedule_updated_at;type:timestamptz;not null;autoUpdateTime"`
	AidScheduleDeletedAt gorm.DeletedAt `json:"aid_schedule_deleted_at,omitempty" gorm:"column:aid_schedule_deleted_at;type:timestamptz;index"`
}

func (AidScheduleModel) TableName() string { return "financial_aid_schedules" }
