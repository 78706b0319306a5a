// file: internals/features/members/engagement/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/members/engagement/controller"
	"faithtracker_backend/internals/features/members/engagement/service"
)

func EngagementAdminRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{
		DB:     db,
		Recalc: service.NewRecalculator(db, cache),
	}

	g := r.Group("/:campus_id/engagement")
	g.Post("/recalculate", h.TriggerRecalculate)
	g.Post("/recalculate/sync", h.RecalculateSync)
	g.Get("/summary", h.GetSummary)
}
