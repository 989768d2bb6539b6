// file: internals/features/management/payments/route/payment_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/management/payments/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

func PaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)

	payments := api.Group("/payments")
	payments.Post("/submit", ctl.Submit)
	payments.Get("/mine", ctl.Mine)

	payments.Get("/", auth.IsAdmin(), ctl.List)
	payments.Post("/:id/approve", auth.IsAdmin(), ctl.Approve)
	payments.Post("/:id/reject", auth.IsAdmin(), ctl.Reject)
}
