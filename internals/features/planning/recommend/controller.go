// file: internals/features/planning/recommend/controller.go
package recommend

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/planning/curriculum"
	helper "moshaverino_backend/internals/helpers"
)

type Controller struct {
	Service *Service
}

func NewController(db *gorm.DB, cur *curriculum.Curriculum) *Controller {
	return &Controller{Service: NewService(db, cur)}
}

// GET /api/planning/recommendations/:student_id
func (ctl *Controller) Recommend(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	result, err := ctl.Service.Recommend(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

// GET /api/planning/lessons/:student_id
func (ctl *Controller) ListForStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه دانش‌آموز نامعتبر است")
	}
	result, err := ctl.Service.ListForStudent(studentID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", result)
}

// GET /api/planning/chapters?lesson_id=&grade_id=&major_code=
func (ctl *Controller) Chapters(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(strings.TrimSpace(c.Query("lesson_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه درس نامعتبر است")
	}
	gradeID, err := uuid.Parse(strings.TrimSpace(c.Query("grade_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه پایه نامعتبر است")
	}
	trackCode := strings.TrimSpace(c.Query("major_code"))

	chapters, err := ctl.Service.Chapters(lessonID, gradeID, trackCode)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "", chapters, nil)
}
