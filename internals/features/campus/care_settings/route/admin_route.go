// file: internals/features/campus/care_settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/campus/care_settings/controller"
	"faithtracker_backend/internals/features/campus/care_settings/service"
)

func CareSettingAdminRoutes(r fiber.Router, db *gorm.DB, cache *service.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	r.Get("/:campus_id/care-settings", h.GetCareSettings)
	r.Patch("/:campus_id/care-settings", h.UpdateCareSettings)
}
