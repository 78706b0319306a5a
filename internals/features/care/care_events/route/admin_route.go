// file: internals/features/care/care_events/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	"faithtracker_backend/internals/features/care/care_events/controller"
)

func CareEventAdminRoutes(r fiber.Router, db *gorm.DB, cache *careSettingService.Cache) {
	h := &controller.Handler{DB: db, Cache: cache}

	g := r.Group("/:campus_id/care-events")
	g.Post("/", h.CreateCareEvent)
	g.Get("/", h.ListCareEvents)
	g.Post("/:id/complete", h.CompleteCareEvent)
	g.Post("/:id/ignore", h.IgnoreCareEvent)
	g.Delete("/:id", h.DeleteCareEvent)
}
