// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"faithtracker_backend/internals/configs"
	"faithtracker_backend/internals/constants"
	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	"faithtracker_backend/internals/features/users/auth/dto"
	"faithtracker_backend/internals/features/users/auth/service"
	userModel "faithtracker_backend/internals/features/users/user/model"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// campusTimezone: timezone campus untuk klaim token; kosong untuk owner.
func (ac *AuthController) campusTimezone(campusID *uuid.UUID) string {
	if campusID == nil {
		return configs.DefaultTimezone
	}
	var campus campusModel.CampusModel
	if err := ac.DB.First(&campus, "campus_id = ? AND campus_deleted_at IS NULL", *campusID).Error; err != nil {
		return configs.DefaultTimezone
	}
	return campus.CampusTimezone
}

// POST /register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var in dto.RegisterDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	campusID, err := uuid.Parse(in.UserCampusID)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "user_campus_id tidak valid")
	}
	var campusCount int64
	if err := ac.DB.Model(&campusModel.CampusModel{}).
		Where("campus_id = ? AND campus_deleted_at IS NULL", campusID).
		Count(&campusCount).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	if campusCount == 0 {
		return helper.JsonError(c, http.StatusNotFound, "campus not found")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "gagal hash password")
	}

	user := userModel.UserModel{
		UserCampusID: &campusID,
		UserName:     in.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(in.UserEmail)),
		UserPassword: string(hashed),
		UserRole:     constants.RoleUser,
	}
	if err := ac.DB.Create(&user).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, http.StatusBadRequest, "email sudah terdaftar")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "register success", dto.ToUserResponse(user))
}

// POST /login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var in dto.LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user,
		"user_email = ? AND user_deleted_at IS NULL",
		strings.ToLower(strings.TrimSpace(in.UserEmail)),
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusUnauthorized, "email atau password salah")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(in.UserPassword)) != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "email atau password salah")
	}

	token, err := service.CreateAccessToken(user, ac.campusTimezone(user.UserCampusID))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "gagal membuat token")
	}

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

// POST /login/google
func (ac *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var in dto.GoogleLoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(in.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, http.StatusUnauthorized, "Google ID token tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(in.IDToken)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "gagal decode ID token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	var user userModel.UserModel
	err = ac.DB.First(&user,
		"(user_google_id = ? OR user_email = ?) AND user_deleted_at IS NULL",
		googleID, strings.ToLower(email),
	).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		// akun baru via Google; campus wajib disebut saat pertama kali
		if in.UserCampusID == nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, "user_campus_id wajib untuk pendaftaran via Google")
		}
		campusID, perr := uuid.Parse(*in.UserCampusID)
		if perr != nil {
			return helper.JsonError(c, http.StatusBadRequest, "user_campus_id tidak valid")
		}
		dummy, _ := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		user = userModel.UserModel{
			UserCampusID: &campusID,
			UserName:     name,
			UserEmail:    strings.ToLower(email),
			UserPassword: string(dummy),
			UserGoogleID: &googleID,
			UserRole:     constants.RoleUser,
		}
		if cerr := ac.DB.Create(&user).Error; cerr != nil {
			return helper.JsonError(c, http.StatusInternalServerError, cerr.Error())
		}
	case err != nil:
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	default:
		if user.UserGoogleID == nil {
			_ = ac.DB.Model(&user).Update("user_google_id", googleID).Error
		}
	}

	token, err := service.CreateAccessToken(user, ac.campusTimezone(user.UserCampusID))
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "gagal membuat token")
	}

	return helper.JsonOK(c, "login success", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}

// POST /logout — cabut token aktif sampai kadaluarsanya.
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw := ""
	if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		raw = strings.TrimSpace(authz[7:])
	}
	if raw == "" {
		return helper.JsonError(c, http.StatusBadRequest, "tidak ada token yang bisa dicabut")
	}

	if err := service.BlacklistToken(ac.DB, raw, service.TokenExpiry(raw)); err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "logout success", nil)
}

// GET /me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.First(&user, "user_id = ? AND user_deleted_at IS NULL", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "user not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "me", dto.ToUserResponse(user))
}
