// file: internals/features/planning/weeklyreport/controller/weekly_report_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moshaverino_backend/internals/constants"
	"moshaverino_backend/internals/features/planning/curriculum"
	"moshaverino_backend/internals/features/planning/weeklyreport/dto"
	"moshaverino_backend/internals/features/planning/weeklyreport/service"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

type WeeklyReportController struct {
	Service  *service.Service
	Validate *validator.Validate
}

func NewWeeklyReportController(db *gorm.DB, cur *curriculum.Curriculum) *WeeklyReportController {
	return &WeeklyReportController{
		Service:  service.NewService(db, cur),
		Validate: validator.New(),
	}
}

func actorFromCtx(c *fiber.Ctx) service.Actor {
	actor := service.Actor{}
	if id, err := auth.UserIDFromCtx(c); err == nil {
		actor.ID = &id
	}
	if name, ok := c.Locals(auth.LocUsername).(string); ok {
		actor.Name = name
	}
	return actor
}

// POST /api/planning/weekly-reports
func (ctl *WeeklyReportController) Save(c *fiber.Ctx) error {
	var req dto.SaveWeeklyReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := ctl.Service.Save(&req, actorFromCtx(c)); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "گزارش هفتگی ذخیره شد", fiber.Map{"status": "success"})
}

// GET /api/planning/weekly-reports/lookup?student_id=&selected_date=YYYY-MM-DD
func (ctl *WeeklyReportController) Lookup(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	date, err := dto.ParseDateOnly(c.Query("selected_date"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	result, err := ctl.Service.LookupForDate(studentID, date)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

// GET /api/planning/weekly-reports/details?student_id=&week_start=
func (ctl *WeeklyReportController) Details(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	weekStart, err := dto.ParseISODateTime(c.Query("week_start"))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	result, err := ctl.Service.Details(studentID, weekStart, actorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

// GET /api/planning/weekly-reports/latest-tasks?student_id=
func (ctl *WeeklyReportController) LatestTasks(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	tasks, err := ctl.Service.LatestLessonTasks(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"tasks": tasks})
}

// POST /api/planning/weekly-reports/copy-day
func (ctl *WeeklyReportController) CopyDay(c *fiber.Ctx) error {
	var req dto.CopyDayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// admins may copy across any advisor's students
	var advisorID *uuid.UUID
	if auth.RoleFromCtx(c) != constants.RoleAdmin {
		advisorID = auth.AdvisorIDFromCtx(c)
		if advisorID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOnlyAdvisorsCanAccess)
		}
	}

	copied, err := ctl.Service.CopyDay(&req, advisorID, actorFromCtx(c))
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "برنامه روز کپی شد", fiber.Map{"copied_details_count": copied})
}

// GET /api/planning/weekly-reports/default-events?student_id=
func (ctl *WeeklyReportController) DefaultEvents(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	events, err := ctl.Service.DefaultEvents(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", events, nil)
}

// GET /api/planning/weekly-reports/summary?limit=
func (ctl *WeeklyReportController) Summary(c *fiber.Ctx) error {
	limit, _ := strconv.Atoi(c.Query("limit", "50"))
	rows, err := ctl.Service.Summary(limit)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", rows, nil)
}

// POST /api/planning/weekly-reports/logs
func (ctl *WeeklyReportController) AppendLog(c *fiber.Ctx) error {
	var req dto.AppendLogRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// non-admins may only touch reports of their own student or advisee
	if auth.RoleFromCtx(c) != constants.RoleAdmin {
		_, student, err := ctl.Service.ReportForPermissionCheck(req.ReportID)
		if err != nil {
			return helper.JsonFromError(c, err)
		}
		allowed := false
		if sid := auth.StudentIDFromCtx(c); sid != nil && *sid == student.StudentID {
			allowed = true
		}
		if aid := auth.AdvisorIDFromCtx(c); aid != nil && student.StudentAdvisorID != nil && *aid == *student.StudentAdvisorID {
			allowed = true
		}
		if !allowed {
			return helper.JsonError(c, fiber.StatusForbidden, "دسترسی به این گزارش مجاز نیست")
		}
	}

	if err := ctl.Service.AppendLog(&req, actorFromCtx(c)); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "لاگ ثبت شد", fiber.Map{"status": "success"})
}
