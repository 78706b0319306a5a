// file: internals/features/campus/care_settings/controller/care_setting_controller.go
package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/campus/care_settings/dto"
	"faithtracker_backend/internals/features/campus/care_settings/model"
	"faithtracker_backend/internals/features/campus/care_settings/service"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

type Handler struct {
	DB    *gorm.DB
	Cache *service.Cache
}

func mustCampusID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := strings.TrimSpace(c.Params("campus_id"))
	if raw == "" {
		return uuid.Nil, errors.New("campus_id missing in path")
	}
	return uuid.Parse(raw)
}

// GET /:campus_id/care-settings
func (h *Handler) GetCareSettings(c *fiber.Ctx) error {
	campusID, err := mustCampusID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid campus_id")
	}
	if err := helperAuth.EnsureStaffCampus(c, campusID); err != nil {
		return err
	}

	var m model.CareSettingModel
	if err := h.DB.First(&m,
		"care_setting_campus_id = ? AND care_setting_deleted_at IS NULL", campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "care settings", dto.ToCareSettingResponse(m))
}

// PATCH /:campus_id/care-settings
// Konfigurasi hanya disimpan kalau hasil merge tetap konsisten; setelah simpan
// cache snapshot di-invalidate supaya pembaca berikutnya memuat nilai baru.
// Timeline yang sudah digenerate TIDAK ditulis ulang.
func (h *Handler) UpdateCareSettings(c *fiber.Ctx) error {
	campusID, err := mustCampusID(c)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid campus_id")
	}
	if err := helperAuth.EnsureStaffCampus(c, campusID); err != nil {
		return err
	}

	var in dto.CareSettingUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var m model.CareSettingModel
	if err := h.DB.First(&m,
		"care_setting_campus_id = ? AND care_setting_deleted_at IS NULL", campusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyCareSettingUpdate(&m, in)

	// Validasi lintas-field setelah merge
	if err := service.ValidateThresholds(m.CareSettingAtRiskDays, m.CareSettingInactiveDays); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
	}
	if err := service.ValidateOffsets(m.CareSettingGriefOffsets, 6); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "grief offsets: "+err.Error())
	}
	if err := service.ValidateOffsets(m.CareSettingAccidentOffsets, 3); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "accident offsets: "+err.Error())
	}

	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	h.Cache.Invalidate(campusID)

	return helper.JsonUpdated(c, "care settings updated", dto.ToCareSettingResponse(m))
}
