// file: internals/features/campus/campuses/controller/campus_controller.go
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/campus/campuses/dto"
	"faithtracker_backend/internals/features/campus/campuses/model"
	careSettingModel "faithtracker_backend/internals/features/campus/care_settings/model"
	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	helper "faithtracker_backend/internals/helpers"
)

type Handler struct {
	DB    *gorm.DB
	Cache *careSettingService.Cache
}

// POST /campuses (owner)
// Campus baru langsung dapat baris care_settings default dalam satu transaksi,
// jadi engine tidak pernah menemukan campus tanpa konfigurasi.
func (h *Handler) CreateCampus(c *fiber.Ctx) error {
	var in dto.CampusCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if _, err := time.LoadLocation(in.CampusTimezone); err != nil {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "campus_timezone bukan nama IANA yang valid")
	}

	m := dto.CampusCreateDTOToModel(in)
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		cs := careSettingModel.DefaultCareSettings(m.CampusID)
		return tx.Create(&cs).Error
	})
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "campus created", dto.ToCampusResponse(m))
}

// GET /campuses (owner)
func (h *Handler) ListCampuses(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	allowed := map[string]string{
		"created_at": "campus_created_at",
		"name":       "campus_name",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	q := h.DB.Model(&model.CampusModel{}).Where("campus_deleted_at IS NULL")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.CampusModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToCampusResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "campuses", out, &pg)
}

// GET /campuses/:id
func (h *Handler) GetCampus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}
	var m model.CampusModel
	if err := h.DB.First(&m, "campus_id = ? AND campus_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "campus not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "campus", dto.ToCampusResponse(m))
}

// PATCH /campuses/:id (owner)
func (h *Handler) UpdateCampus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid id")
	}

	var in dto.CampusUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if in.CampusTimezone != nil {
		if _, lerr := time.LoadLocation(*in.CampusTimezone); lerr != nil {
			return helper.JsonError(c, http.StatusUnprocessableEntity, "campus_timezone bukan nama IANA yang valid")
		}
	}

	var m model.CampusModel
	if err := h.DB.First(&m, "campus_id = ? AND campus_deleted_at IS NULL", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "campus not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	dto.ApplyCampusUpdate(&m, in)
	if err := h.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	// timezone bisa berubah → snapshot lama tidak berlaku
	h.Cache.Invalidate(m.CampusID)

	return helper.JsonUpdated(c, "campus updated", dto.ToCampusResponse(m))
}
