// file: internals/features/accounts/students/route/account_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "moshaverino_backend/internals/features/accounts/students/controller"
	userController "moshaverino_backend/internals/features/accounts/users/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

// AccountRoutes mounts profile, student and advisor endpoints. The
// group is expected to already carry the JWT middleware.
func AccountRoutes(api fiber.Router, db *gorm.DB) {
	userCtl := userController.NewUserController(db)
	studentCtl := studentController.NewStudentController(db)

	accounts := api.Group("/accounts")
	accounts.Get("/profile", userCtl.Profile)
	accounts.Patch("/profile", userCtl.UpdateProfile)

	accounts.Get("/advisors", studentCtl.ListAdvisors)
	accounts.Get("/advisors/:id", studentCtl.AdvisorDetail)
	accounts.Get("/advisors/:id/availability", studentCtl.ListAvailability)

	advisorOrAdmin := accounts.Group("", auth.IsAdvisorOrAdmin())
	advisorOrAdmin.Get("/students", studentCtl.ListStudents)

	admin := accounts.Group("", auth.IsAdmin())
	admin.Get("/admin/panel-data", studentCtl.AdminPanelData)
	admin.Post("/students", studentCtl.AddStudent)
	admin.Post("/availability", studentCtl.CreateAvailability)
	admin.Delete("/availability/:id", studentCtl.DeleteAvailability)
}
