// file: internals/features/members/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MemberModel struct {
	// PK
	MemberID uuid.UUID `json:"member_id" gorm:"column:member_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant
	MemberCampusID uuid.UUID `json:"member_campus_id" gorm:"column:member_campus_id;type:uuid;not null;index:idx_members_campus"`

	// Akun login (opsional; jemaat tidak wajib punya akun)
	MemberUserID *uuid.UUID `json:"member_user_id,omitempty" gorm:"column:member_user_id;type:uuid"`

	// Identitas
	MemberFullName       string  `json:"member_full_name" gorm:"column:member_full_name;type:varchar(100);not null"`
	MemberPhone          *string `json:"member_phone,omitempty" gorm:"column:member_phone;type:varchar(25)"`
	MemberWhatsappNumber *string `json:"member_whatsapp_number,omitempty" gorm:"column:member_whatsapp_number;type:varchar(25)"`
	MemberAddress        *string `json:"member_address,omitempty" gorm:"column:member_address;type:text"`
	MemberPhotoURL       *string `json:"member_photo_url,omitempty" gorm:"column:member_photo_url;type:text"`

	// Tanggal lahir (date-only); dipakai deteksi ulang tahun per bulan-hari
	MemberBirthDate *datatypes.Date `json:"member_birth_date,omitempty" gorm:"column:member_birth_date;type:date"`

	// Kontak pastoral terakhir; hanya bergerak maju (event selesai / stage selesai / penyaluran bantuan)
	MemberLastContactDate *datatypes.Date `json:"member_last_contact_date,omitempty" gorm:"column:member_last_contact_date;type:date"`

	// Cache hasil klasifikasi (diisi ulang oleh recalculation job)
	MemberEngagementStatus string `json:"member_engagement_status" gorm:"column:member_engagement_status;type:varchar(20);not null;default:'disconnected';index:idx_members_engagement"`
	MemberDaysSinceContact *int   `json:"member_days_since_contact,omitempty" gorm:"column:member_days_since_contact;type:int"`

	// Timestamps
	MemberCreatedAt time.Time      `json:"member_created_at" gorm:"column:member_created_at;type:timestamptz;not null;autoCreateTime"`
	MemberUpdatedAt time.Time      `json:"member_updated_at" gorm:"column:member_updated_at;type:timestamptz;not null;autoUpdateTime"`
	MemberDeletedAt gorm.DeletedAt `json:"member_deleted_at,omitempty" gorm:"column:member_deleted_at;type:timestamptz;index"`
}

func (MemberModel) TableName() string { return "members" }
