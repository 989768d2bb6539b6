// file: internals/features/accounts/auth/route/auth_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/accounts/auth/controller"
)

// AuthRoutes mounts the public login endpoints (no JWT required).
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)

	authGroup := api.Group("/auth")
	authGroup.Post("/request-otp", ctl.RequestOTP)
	authGroup.Post("/verify-otp", ctl.VerifyOTP)
	authGroup.Post("/login", ctl.Login)
}
