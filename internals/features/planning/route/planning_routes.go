// file: internals/features/planning/route/planning_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/planning/curriculum"
	"moshaverino_backend/internals/features/planning/recommend"
	wrController "moshaverino_backend/internals/features/planning/weeklyreport/controller"
	"moshaverino_backend/internals/middlewares/auth"
)

// PlanningRoutes mounts the recommendation and weekly report endpoints.
// The group is expected to already carry the JWT middleware.
func PlanningRoutes(api fiber.Router, db *gorm.DB) {
	cur := curriculum.Default()
	recCtl := recommend.NewController(db, cur)
	wrCtl := wrController.NewWeeklyReportController(db, cur)

	planning := api.Group("/planning")

	// catalog-facing reads
	planning.Get("/recommendations/:student_id", recCtl.Recommend)
	planning.Get("/lessons/:student_id", recCtl.ListForStudent)
	planning.Get("/chapters", recCtl.Chapters)

	reports := planning.Group("/weekly-reports")
	reports.Get("/lookup", wrCtl.Lookup)
	reports.Get("/details", wrCtl.Details)
	reports.Get("/latest-tasks", wrCtl.LatestTasks)
	reports.Get("/default-events", wrCtl.DefaultEvents)
	reports.Post("/logs", wrCtl.AppendLog)

	// mutating the plan itself is an advisor action
	reports.Post("/", auth.IsAdvisorOrAdmin(), wrCtl.Save)
	reports.Post("/copy-day", auth.IsAdvisorOrAdmin(), wrCtl.CopyDay)

	reports.Get("/summary", auth.IsAdmin(), wrCtl.Summary)
}
