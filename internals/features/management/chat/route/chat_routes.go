// file: internals/features/management/chat/route/chat_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/management/chat/controller"
)

func ChatRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewChatController(db)

	chat := api.Group("/chat")
	chat.Get("/conversations", ctl.Conversations)
	chat.Get("/messages/:user_id", ctl.Messages)
	chat.Post("/messages/:user_id", ctl.SendMessage)
}
