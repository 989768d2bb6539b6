// file: internals/features/management/notifications/route/notification_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/management/notifications/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/inbox", ctl.Inbox)
	notifications.Post("/mark-read", ctl.MarkRead)

	notifications.Post("/send", auth.IsAdmin(), ctl.Send)
	notifications.Get("/recipients", auth.IsAdmin(), ctl.RecipientOptions)
}
