// file: internals/features/care/follow_up_stages/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/care/follow_up_stages/controller"
)

func FollowUpStageAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	g := r.Group("/:campus_id/follow-up-stages")
	g.Get("/", h.ListStages)
	g.Post("/:id/complete", h.CompleteStage)
}
