// file: internals/features/users/auth/model/token_blacklist_model.go
package model

import (
	"time"

	"gorm.io/gorm"
)

// TokenBlacklist: token yang sudah di-logout. Dibersihkan berkala oleh
// scheduler setelah lewat masa kadaluarsanya.
type TokenBlacklist struct {
	TokenBlacklistID        uint           `json:"token_blacklist_id" gorm:"column:token_blacklist_id;primaryKey"`
	TokenBlacklistToken     string         `json:"token_blacklist_token" gorm:"column:token_blacklist_token;type:text;not null;uniqueIndex:ux_token_blacklist_token"`
	TokenBlacklistExpiredAt time.Time      `json:"token_blacklist_expired_at" gorm:"column:token_blacklist_expired_at;type:timestamptz;not null"`
	TokenBlacklistCreatedAt time.Time      `json:"token_blacklist_created_at" gorm:"column:token_blacklist_created_at;type:timestamptz;not null;autoCreateTime"`
	TokenBlacklistDeletedAt gorm.DeletedAt `json:"token_blacklist_deleted_at,omitempty" gorm:"column:token_blacklist_deleted_at;type:timestamptz;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }
