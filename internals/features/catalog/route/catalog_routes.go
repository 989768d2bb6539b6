// file: internals/features/catalog/route/catalog_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/catalog/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

// CatalogRoutes mounts reference-data endpoints. Reads are open to any
// authenticated user; writes are admin only.
func CatalogRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCatalogController(db)

	catalog := api.Group("/catalog")
	catalog.Get("/lesson-types", ctl.ListLessonTypes)
	catalog.Get("/lessons", ctl.ListLessons)
	catalog.Get("/box-types", ctl.ListBoxTypes)

	admin := catalog.Group("", auth.IsAdmin())
	admin.Post("/lesson-types", ctl.CreateLessonType)
	admin.Post("/lessons", ctl.CreateLesson)
	admin.Patch("/lessons/:id", ctl.UpdateLesson)
	admin.Delete("/lessons/:id", ctl.DeleteLesson)
	admin.Post("/chapters", ctl.CreateChapter)
	admin.Delete("/chapters/:id", ctl.DeleteChapter)
	admin.Post("/box-types", ctl.CreateBoxType)
}
