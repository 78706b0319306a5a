// file: internals/features/finance/donations/controller/donation_controller.go
package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "faithtracker_backend/internals/features/campus/campuses/model"
	"faithtracker_backend/internals/features/finance/donations/dto"
	"faithtracker_backend/internals/features/finance/donations/model"
	"faithtracker_backend/internals/features/finance/donations/service"
	helper "faithtracker_backend/internals/helpers"
	helperAuth "faithtracker_backend/internals/helpers/auth"
)

type Handler struct {
	DB *gorm.DB
}

// POST /donations/:campus_slug (public)
// Donasi dibuat pending + Snap token; status final datang lewat webhook.
func (h *Handler) CreateDonation(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("campus_slug"))
	var campus campusModel.CampusModel
	if err := h.DB.First(&campus, "campus_slug = ? AND campus_deleted_at IS NULL", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "campus not found")
		}
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var in dto.DonationCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid json")
	}
	if fieldErrs := helper.ValidateStruct(in); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	m := model.DonationModel{
		DonationCampusID:   campus.CampusID,
		DonationDonorName:  in.DonationDonorName,
		DonationDonorEmail: strings.ToLower(strings.TrimSpace(in.DonationDonorEmail)),
		DonationMessage:    in.DonationMessage,
		DonationAmountIDR:  in.DonationAmountIDR,
		DonationStatus:     model.DonationStatusPending,
		DonationOrderID:    fmt.Sprintf("DON-%d-%s", time.Now().Unix(), uuid.NewString()[:8]),
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	token, redirect, err := service.GenerateSnapToken(m)
	if err != nil {
		return helper.JsonError(c, http.StatusBadGateway, "gagal membuat transaksi pembayaran")
	}
	m.DonationSnapToken = &token
	m.DonationRedirectURL = &redirect
	if err := h.DB.Model(&m).Updates(map[string]any{
		"donation_snap_token":   token,
		"donation_redirect_url": redirect,
	}).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "donation created", dto.ToDonationResponse(m))
}

// POST /donations/webhook (public, dipanggil Midtrans)
func (h *Handler) Webhook(c *fiber.Ctx) error {
	var body map[string]any
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid payload")
	}
	if err := service.HandleDonationStatusWebhook(h.DB, body); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	return helper.JsonOK(c, "webhook processed", nil)
}

// GET /:campus_id/donations (staf)
func (h *Handler) ListDonations(c *fiber.Ctx) error {
	campusID, err := uuid.Parse(c.Params("campus_id"))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "campus_id tidak valid")
	}
	if err := helperAuth.EnsureStaffCampus(c, campusID); err != nil {
		return err
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)
	allowed := map[string]string{
		"created_at": "donation_created_at",
		"amount":     "donation_amount_idr",
	}
	orderClause, _ := p.SafeOrderClause(allowed, "created_at")

	q := h.DB.Model(&model.DonationModel{}).
		Where("donation_campus_id = ? AND donation_deleted_at IS NULL", campusID)
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("donation_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	var list []model.DonationModel
	if err := q.Order(orderClause).Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, err.Error())
	}

	out := dto.ToDonationResponses(list)
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage, len(out))
	return helper.JsonList(c, "donations", out, &pg)
}
