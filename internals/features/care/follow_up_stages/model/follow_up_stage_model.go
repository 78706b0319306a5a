// file: internals/features/care/follow_up_stages/model/follow_up_stage_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Jenis timeline follow-up.
const (
	StageKindGrief    = "grief"
	StageKindAccident = "accident"
)

// FollowUpStageModel: satu tahap follow-up terjadwal dari satu event jangkar
// (kedukaan atau kecelakaan/sakit). Set tahap dibuat SEKALI saat event dibuat
// dan tidak ditulis ulang saat konfigurasi offset berubah.
type FollowUpStageModel struct {
	// PK
	FollowUpStageID uuid.UUID `json:"follow_up_stage_id" gorm:"column:follow_up_stage_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant & relasi
	FollowUpStageCampusID    uuid.UUID `json:"follow_up_stage_campus_id" gorm:"column:follow_up_stage_campus_id;type:uuid;not null;index:idx_follow_up_stages_campus"`
	FollowUpStageMemberID    uuid.UUID `json:"follow_up_stage_member_id" gorm:"column:follow_up_stage_member_id;type:uuid;not null;index:idx_follow_up_stages_member"`
	FollowUpStageCareEventID uuid.UUID `json:"follow_up_stage_care_event_id" gorm:"column:follow_up_stage_care_event_id;type:uuid;not null;uniqueIndex:ux_follow_up_stages_event_no"`

	// Isi tahap
	FollowUpStageKind          string         `json:"follow_up_stage_kind" gorm:"column:follow_up_stage_kind;type:varchar(10);not null"` // grief|accident
	FollowUpStageNo            int            `json:"follow_up_stage_no" gorm:"column:follow_up_stage_no;type:int;not null;uniqueIndex:ux_follow_up_stages_event_no"`
	FollowUpStageLabel         string         `json:"follow_up_stage_label" gorm:"column:follow_up_stage_label;type:varchar(30);not null"`
	FollowUpStageScheduledDate datatypes.Date `json:"follow_up_stage_scheduled_date" gorm:"column:follow_up_stage_scheduled_date;type:date;not null;index:idx_follow_up_stages_scheduled"`

	// Status (pending → completed, terminal)
	FollowUpStageCompleted   bool       `json:"follow_up_stage_completed" gorm:"column:follow_up_stage_completed;type:boolean;not null;default:false"`
	FollowUpStageCompletedAt *time.Time `json:"follow_up_stage_completed_at,omitempty" gorm:"column:follow_up_stage_completed_at;type:timestamptz"`

	// Timestamps
	FollowUpStageCreatedAt time.Time      `json:"follow_up_stage_created_at" gorm:"column:follow_up_stage_created_at;type:timestamptz;not null;autoCreateTime"`
	FollowUpStageUpdatedAt time.Time      `json:"follow_up_stage_updated_at" gorm:"column:follow_up_stage_updated_at;type:timestamptz;not null;autoUpdateTime"`
	FollowUpStageDeletedAt gorm.DeletedAt `json:"follow_up_stage_deleted_at,omitempty" gorm:"column:follow_up_stage_deleted_at;type:timestamptz;index"`
}

func (FollowUpStageModel) TableName() string { return "follow_up_stages" }
