// file: internals/features/campus/campuses/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampusModel struct {
	// PK
	CampusID uuid.UUID `json:"campus_id" gorm:"column:campus_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Identitas
	CampusName string  `json:"campus_name" gorm:"column:campus_name;type:varchar(100);not null"`
	CampusSlug string  `json:"campus_slug" gorm:"column:campus_slug;type:varchar(100);not null;uniqueIndex:ux_campuses_slug"`
	CampusCity *string `json:"campus_city,omitempty" gorm:"column:campus_city;type:varchar(80)"`

	// Semua hitungan "hari ini" untuk campus ini dihitung di timezone ini (IANA)
	CampusTimezone string `json:"campus_timezone" gorm:"column:campus_timezone;type:varchar(64);not null;default:'Asia/Jakarta'"`

	// Kontak untuk digest harian
	CampusWhatsappNumber *string `json:"campus_whatsapp_number,omitempty" gorm:"column:campus_whatsapp_number;type:varchar(25)"`

	// Timestamps
	CampusCreatedAt time.Time      `json:"campus_created_at" gorm:"column:campus_created_at;type:timestamptz;not null;autoCreateTime"`
	CampusUpdatedAt time.Time      `json:"campus_updated_at" gorm:"column:campus_updated_at;type:timestamptz;not null;autoUpdateTime"`
	CampusDeletedAt gorm.DeletedAt `json:"campus_deleted_at,omitempty" gorm:"column:campus_deleted_at;type:timestamptz;index"`
}

func (CampusModel) TableName() string { return "campuses" }
