// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/configs"
	authRoute "moshaverino_backend/internals/features/accounts/auth/route"
	accountRoute "moshaverino_backend/internals/features/accounts/students/route"
	catalogRoute "moshaverino_backend/internals/features/catalog/route"
	courseRoute "moshaverino_backend/internals/features/courses/route"
	chatRoute "moshaverino_backend/internals/features/management/chat/route"
	notificationRoute "moshaverino_backend/internals/features/management/notifications/route"
	paymentRoute "moshaverino_backend/internals/features/management/payments/route"
	planningRoute "moshaverino_backend/internals/features/planning/route"
	"moshaverino_backend/internals/middlewares/auth"
)

// SetupRoutes wires every feature under /api. Login endpoints are
// public; everything else sits behind the JWT middleware, with
// finer-grained role guards inside each feature's routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	protected := api.Group("", auth.AuthJWT(auth.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	}))

	accountRoute.AccountRoutes(protected, db)
	catalogRoute.CatalogRoutes(protected, db)
	planningRoute.PlanningRoutes(protected, db)
	courseRoute.CourseRoutes(protected, db)

	management := protected.Group("/management")
	notificationRoute.NotificationRoutes(management, db)
	paymentRoute.PaymentRoutes(management, db)
	chatRoute.ChatRoutes(management, db)
}
