// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel: akun login aplikasi. Role owner tidak terikat campus
// (user_campus_id NULL); role lain selalu milik satu campus.
type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`

	// Tenant (NULL untuk owner)
	UserCampusID *uuid.UUID `json:"user_campus_id,omitempty" gorm:"column:user_campus_id;type:uuid;index:idx_users_campus"`

	// Identitas & kredensial
	UserName     string  `json:"user_name" gorm:"column:user_name;type:varchar(50);not null"`
	UserEmail    string  `json:"user_email" gorm:"column:user_email;type:varchar(100);not null;uniqueIndex:ux_users_email"`
	UserPassword string  `json:"-" gorm:"column:user_password;type:text;not null"`
	UserGoogleID *string `json:"-" gorm:"column:user_google_id;type:varchar(64);index"`

	// user | staff | admin | owner
	UserRole string `json:"user_role" gorm:"column:user_role;type:varchar(10);not null;default:'user'"`

	// Timestamps
	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at,omitempty" gorm:"column:user_deleted_at;type:timestamptz;index"`
}

func (UserModel) TableName() string { return "users" }
