// file: internals/features/finance/donations/route/donation_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/features/finance/donations/controller"
)

// DonationPublicRoutes: donatur tidak perlu akun; webhook dipanggil Midtrans.
func DonationPublicRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Post("/donations/webhook", h.Webhook)
	r.Post("/donations/:campus_slug", h.CreateDonation)
}

// DonationAdminRoutes: rekap donasi per campus untuk staf.
func DonationAdminRoutes(r fiber.Router, db *gorm.DB) {
	h := &controller.Handler{DB: db}

	r.Get("/:campus_id/donations", h.ListDonations)
}
