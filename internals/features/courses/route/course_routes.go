// file: internals/features/courses/route/course_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/courses/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

// CourseRoutes mounts course and session endpoints. The group is
// expected to already carry the JWT middleware.
func CourseRoutes(api fiber.Router, db *gorm.DB) {
	ctl := controller.NewCourseController(db)

	courses := api.Group("/courses")
	courses.Get("/", ctl.ListCourses)
	courses.Get("/:id", ctl.CourseDetail)
	courses.Post("/:id/comments", ctl.AddComment)

	courses.Post("/assign", auth.IsAdmin(), ctl.AssignStudent)
	courses.Patch("/sessions/:id", auth.IsAdvisorOrAdmin(), ctl.UpdateSession)
}
