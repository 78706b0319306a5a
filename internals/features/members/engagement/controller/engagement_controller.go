// file: internals/features/members/engagement/controller/engagement_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/members/engagement/service"
	memberModel "faithtracker_backend/internals/features/members/members/model"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

type Handler struct {
	DB     *gorm.DB
	Recalc *service.Recalculator
}

func (h *Handler) campusID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("campus_id"))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "campus_id tidak valid")
	}
	if err := helperAuth.EnsureStaffCampus(c, id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// POST /:campus_id/engagement/recalculate
// Job jalan di background (context.Background()): putus koneksi caller tidak
// membatalkan putaran. Response 202, ringkasan diambil lewat GET summary.
func (h *Handler) TriggerRecalculate(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	go func() {
		if _, err := h.Recalc.RecalculateAll(campusID); err != nil {
			log.Printf("[ENGAGEMENT] campus=%s recalculation failed: %v", campusID, err)
		}
	}()

	return helper.JsonAccepted(c, "recalculation started", fiber.Map{
		"campus_id": campusID,
	})
}

// GET /:campus_id/engagement/summary — hitungan per status dari cache members.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	type row struct {
		Status string
		Total  int64
	}
	var rows []row
	if err := h.DB.Model(&memberModel.MemberModel{}).
		Select("member_engagement_status AS status, COUNT(*) AS total").
		Where("member_campus_id = ? AND member_deleted_at IS NULL", campusID).
		Group("member_engagement_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := fiber.Map{
		"campus_id":    campusID,
		"active":       int64(0),
		"at_risk":      int64(0),
		"disconnected": int64(0),
	}
	for _, r := range rows {
		out[r.Status] = r.Total
	}
	return helper.JsonOK(c, "engagement summary", out)
}

// POST /:campus_id/engagement/recalculate/sync
// Varian sinkron untuk admin: menunggu putaran selesai dan mengembalikan
// ringkasan. Request paralel untuk campus yang sama digabung.
func (h *Handler) RecalculateSync(c *fiber.Ctx) error {
	campusID, err := h.campusID(c)
	if err != nil {
		return err
	}

	sum, err := h.Recalc.RecalculateAll(campusID)
	if err != nil {
		if errors.Is(err, careSettingService.ErrSettingsNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "care settings campus tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "recalculation finished", sum)
}
