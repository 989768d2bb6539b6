// file: internals/features/catalog/controller/catalog_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/catalog/dto"
	"moshaverino_backend/internals/features/catalog/model"
	helper "moshaverino_backend/internals/helpers"
)

type CatalogController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCatalogController(db *gorm.DB) *CatalogController {
	return &CatalogController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Lesson types
========================================================= */

// GET /api/catalog/lesson-types
func (ctl *CatalogController) ListLessonTypes(c *fiber.Ctx) error {
	var types []model.LessonTypeModel
	if err := ctl.DB.Order("lesson_type_name asc").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی انواع درس")
	}
	return helper.JsonList(c, "", types, nil)
}

// POST /api/catalog/lesson-types
func (ctl *CatalogController) CreateLessonType(c *fiber.Ctx) error {
	var req dto.CreateLessonTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "نوع درس با این نام وجود دارد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ایجاد نوع درس")
	}
	return helper.JsonCreated(c, "نوع درس ایجاد شد", m)
}

/* =========================================================
   Lessons
========================================================= */

// GET /api/catalog/lessons?grade_id=
func (ctl *CatalogController) ListLessons(c *fiber.Ctx) error {
	q := ctl.DB.Preload("LessonType")
	if gradeStr := strings.TrimSpace(c.Query("grade_id")); gradeStr != "" {
		gradeID, err := uuid.Parse(gradeStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "شناسه پایه نامعتبر است")
		}
		q = q.Where("lesson_grade_id = ?", gradeID)
	}

	p := helper.ResolvePaging(c, 50, 200)
	var total int64
	if err := q.Model(&model.LessonModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دروس")
	}
	var lessons []model.LessonModel
	if err := q.Order("lesson_name asc").Offset(p.Offset).Limit(p.Limit).Find(&lessons).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دروس")
	}
	return helper.JsonList(c, "", lessons, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/catalog/lessons
func (ctl *CatalogController) CreateLesson(c *fiber.Ctx) error {
	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "نوع درس یا پایه ارجاع‌شده وجود ندارد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ایجاد درس")
	}
	return helper.JsonCreated(c, "درس ایجاد شد", m)
}

// PATCH /api/catalog/lessons/:id
func (ctl *CatalogController) UpdateLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه درس نامعتبر است")
	}
	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var lesson model.LessonModel
	if err := ctl.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "درس مورد نظر یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی درس")
	}
	req.ApplyPatch(&lesson)
	if err := ctl.DB.Save(&lesson).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی درس")
	}
	return helper.JsonUpdated(c, "درس بروزرسانی شد", lesson)
}

// DELETE /api/catalog/lessons/:id
func (ctl *CatalogController) DeleteLesson(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه درس نامعتبر است")
	}
	res := ctl.DB.Delete(&model.LessonModel{}, "lesson_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در حذف درس")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "درس مورد نظر یافت نشد")
	}
	return helper.JsonDeleted(c, "درس حذف شد", fiber.Map{"lesson_id": id})
}

/* =========================================================
   Chapters
========================================================= */

// POST /api/catalog/chapters
func (ctl *CatalogController) CreateChapter(c *fiber.Ctx) error {
	var req dto.CreateChapterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "درس ارجاع‌شده وجود ندارد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ایجاد فصل")
	}
	return helper.JsonCreated(c, "فصل ایجاد شد", m)
}

// DELETE /api/catalog/chapters/:id
func (ctl *CatalogController) DeleteChapter(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه فصل نامعتبر است")
	}
	res := ctl.DB.Delete(&model.ChapterModel{}, "chapter_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در حذف فصل")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "فصل مورد نظر یافت نشد")
	}
	return helper.JsonDeleted(c, "فصل حذف شد", fiber.Map{"chapter_id": id})
}

/* =========================================================
   Box types
========================================================= */

// GET /api/catalog/box-types
func (ctl *CatalogController) ListBoxTypes(c *fiber.Ctx) error {
	var types []model.BoxTypeModel
	if err := ctl.DB.Order("box_type_name asc").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی انواع باکس")
	}
	return helper.JsonList(c, "", types, nil)
}

// POST /api/catalog/box-types
func (ctl *CatalogController) CreateBoxType(c *fiber.Ctx) error {
	var req dto.CreateBoxTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	m := req.ToModel()
	if err := ctl.DB.Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "نوع باکس با این نام وجود دارد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ایجاد نوع باکس")
	}
	return helper.JsonCreated(c, "نوع باکس ایجاد شد", m)
}
