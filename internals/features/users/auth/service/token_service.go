// file: internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"faithtracker_backend/internals/configs"
	"faithtracker_backend/internals/constants"
	"faithtracker_backend/internals/features/users/auth/model"
	userModel "faithtracker_backend/internals/features/users/user/model"
)

const accessTokenTTL = 24 * time.Hour

// CreateAccessToken menerbitkan JWT dengan klaim yang dibaca middleware:
// id, campus_id, role, is_owner, campus_timezone. Timezone ikut masuk token
// supaya tiap request tahu "hari ini" campus tanpa query tambahan.
func CreateAccessToken(user userModel.UserModel, campusTimezone string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.UserID.String(),
		"role":     user.UserRole,
		"is_owner": user.UserRole == constants.RoleOwner,
		"iat":      now.Unix(),
		"exp":      now.Add(accessTokenTTL).Unix(),
	}
	if user.UserCampusID != nil {
		claims["campus_id"] = user.UserCampusID.String()
	}
	if campusTimezone != "" {
		claims["campus_timezone"] = campusTimezone
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}

// BlacklistToken mencabut token sampai kadaluarsanya sendiri.
func BlacklistToken(db *gorm.DB, rawToken string, expiredAt time.Time) error {
	entry := model.TokenBlacklist{
		TokenBlacklistToken:     rawToken,
		TokenBlacklistExpiredAt: expiredAt,
	}
	err := db.Create(&entry).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil // sudah dicabut
	}
	return err
}

// IsTokenBlacklisted dipakai middleware sebagai BlacklistChecker.
func IsTokenBlacklisted(db *gorm.DB) func(rawToken string) (bool, error) {
	return func(rawToken string) (bool, error) {
		var count int64
		err := db.Model(&model.TokenBlacklist{}).
			Where("token_blacklist_token = ? AND token_blacklist_deleted_at IS NULL", rawToken).
			Count(&count).Error
		return count > 0, err
	}
}

// TokenExpiry membaca klaim exp tanpa memverifikasi ulang (token sudah lolos
// middleware saat logout). Gagal parse → fallback TTL penuh dari sekarang.
func TokenExpiry(rawToken string) time.Time {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(rawToken, claims); err == nil {
		if exp, ok := claims["exp"].(float64); ok && exp > 0 {
			return time.Unix(int64(exp), 0)
		}
	}
	return time.Now().Add(accessTokenTTL)
}
