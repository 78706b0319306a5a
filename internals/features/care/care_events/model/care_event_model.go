// file: internals/features/care/care_events/model/care_event_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis care event. Kolom varian hanya terisi untuk jenis yang memakainya
// (di-enforce di layer DTO).
const (
	EventBirthday        = "birthday"
	EventGriefLoss       = "grief_loss"
	EventAccidentIllness = "accident_illness"
	EventFinancialAid    = "financial_aid"
	EventChildbirth      = "childbirth"
	EventNewHouse        = "new_house"
	EventRegularContact  = "regular_contact"
)

var AllEventTypes = []string{
	EventBirthday,
	EventGriefLoss,
	EventAccidentIllness,
	EventFinancialAid,
	EventChildbirth,
	EventNewHouse,
	EventRegularContact,
}

type CareEventModel struct {
	// PK
	CareEventID uuid.UUID `json:"care_event_id" gorm:"column:care_event_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant & relasi
	CareEventCampusID uuid.UUID `json:"care_event_campus_id" gorm:"column:care_event_campus_id;type:uuid;not null;index:idx_care_events_campus"`
	CareEventMemberID uuid.UUID `json:"care_event_member_id" gorm:"column:care_event_member_id;type:uuid;not null;index:idx_care_events_member"`

	// Jenis + tanggal jangkar (tanggal kejadian, bukan tanggal input)
	CareEventType string         `json:"care_event_type" gorm:"column:care_event_type;type:varchar(20);not null;index:idx_care_events_type"`
	CareEventDate datatypes.Date `json:"care_event_date" gorm:"column:care_event_date;type:date;not null"`

	// Varian grief_loss
	CareEventGriefRelationship *string `json:"care_event_grief_relationship,omitempty" gorm:"column:care_event_grief_relationship;type:varchar(50)"`
	CareEventDeceasedName      *string `json:"care_event_deceased_name,omitempty" gorm:"column:care_event_deceased_name;type:varchar(100)"`

	// Varian accident_illness
	CareEventHospitalName *string `json:"care_event_hospital_name,omitempty" gorm:"column:care_event_hospital_name;type:varchar(100)"`
	CareEventDiagnosis    *string `json:"care_event_diagnosis,omitempty" gorm:"column:care_event_diagnosis;type:varchar(200)"`

	// Varian financial_aid
	CareEventAidAmountIDR *int64 `json:"care_event_aid_amount_idr,omitempty" gorm:"column:care_event_aid_amount_idr;type:bigint"`

	// Relasi opsional ke jadwal bantuan yang melahirkan event ini
	CareEventAidScheduleID *uuid.UUID `json:"care_event_aid_schedule_id,omitempty" gorm:"column:care_event_aid_schedule_id;type:uuid"`

	CareEventNote *string `json:"care_event_note,omitempty" gorm:"column:care_event_note;type:text"`

	// Status
	CareEventCompleted   bool       `json:"care_event_completed" gorm:"column:care_event_completed;type:boolean;not null;default:false"`
	CareEventCompletedAt *time.Time `json:"care_event_completed_at,omitempty" gorm:"column:care_event_completed_at;type:timestamptz"`
	CareEventIgnored     bool       `json:"care_event_ignored" gorm:"column:care_event_ignored;type:boolean;not null;default:false"`

	// Timestamps
	CareEventCreatedAt time.Time      `json:"care_event_created_at" gorm:"column:care_event_created_at;type:timestamptz;not null;autoCreateTime"`
	CareEventUpdatedAt time.Time      `json:"care_event_updated_at" gorm:"column:care_event_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CareEventDeletedAt gorm.DeletedAt `json:"care_event_deleted_at,omitempty" gorm:"column:care_event_deleted_at;type:timestamptz;index"`
}

func (CareEventModel) TableName() string { return "care_events" }
