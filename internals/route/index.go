// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"faithtracker_backend/internals/configs"
	campusRoute "faithtracker_backend/internals/features/campus/campuses/route"
	careSettingRoute "faithtracker_backend/internals/features/campus/care_settings/route"
	careSettingService "faithtracker_backend/internals/features/campus/care_settings/service"
	careEventRoute "faithtracker_backend/internals/features/care/care_events/route"
	followUpStageRoute "faithtracker_backend/internals/features/care/follow_up_stages/route"
	dashboardRoute "faithtracker_backend/internals/features/dashboard/daily/route"
	aidScheduleRoute "faithtracker_backend/internals/features/finance/aid_schedules/route"
	donationRoute "faithtracker_backend/internals/features/finance/donations/route"
	engagementRoute "faithtracker_backend/internals/features/members/engagement/route"
	memberRoute "faithtracker_backend/internals/features/members/members/route"
	authRoute "faithtracker_backend/internals/features/users/auth/route"
	authService "faithtracker_backend/internals/features/users/auth/service"
	authMw "faithtracker_backend/internals/middlewares/auth_campus"
	gates "faithtracker_backend/internals/middlewares/features"
)

// SetupRoutes menyusun tiga lapis akses:
//
//	/api/public — tanpa token (auth, donasi, webhook)
//	/api/u      — user ter-autentikasi (me, logout)
//	/api/a      — staf pastoral/admin campus, path :campus_id dicek ke token
//	/api/o      — owner lintas campus
func SetupRoutes(app *fiber.App, db *gorm.DB, settingsCache *careSettingService.Cache) {
	api := app.Group("/api")

	/* ===== Public ===== */
	public := api.Group("/public")
	authRoute.AuthPublicRoutes(public, db)
	donationRoute.DonationPublicRoutes(public, db)

	/* ===== Authenticated ===== */
	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		BlacklistChecker:    authService.IsTokenBlacklisted(db),
		AllowCookieFallback: true,
	})

	u := api.Group("/u", jwt)
	authRoute.AuthUserRoutes(u, db)

	/* ===== Campus staff ===== */
	a := api.Group("/a", jwt, gates.IsCampusStaff(), gates.RequirePathScopeMatch())
	careSettingRoute.CareSettingAdminRoutes(a, db, settingsCache)
	memberRoute.MemberAdminRoutes(a, db, settingsCache)
	engagementRoute.EngagementAdminRoutes(a, db, settingsCache)
	careEventRoute.CareEventAdminRoutes(a, db, settingsCache)
	followUpStageRoute.FollowUpStageAdminRoutes(a, db)
	aidScheduleRoute.AidScheduleAdminRoutes(a, db, settingsCache)
	dashboardRoute.DashboardAdminRoutes(a, db, settingsCache)
	donationRoute.DonationAdminRoutes(a, db)

	/* ===== Owner ===== */
	o := api.Group("/o", jwt, gates.IsOwnerGlobal())
	campusRoute.CampusOwnerRoutes(o, db, settingsCache)
}
