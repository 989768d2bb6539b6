// file: internals/features/courses/controller/course_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moshaverino_backend/internals/constants"
	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	"moshaverino_backend/internals/features/courses/dto"
	"moshaverino_backend/internals/features/courses/model"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

// A course always starts with this many weekly sessions.
const sessionsPerCourse = 4

type CourseController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Assignment
========================================================= */

// POST /api/courses/assign
//
// Binds the student to the advisor and opens a course with four
// sessions spaced seven days apart, all in one transaction.
func (ctl *CourseController) AssignStudent(c *fiber.Ctx) error {
	var req dto.AssignStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	startDate, startTime, err := req.ParsedStart()
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var course model.CourseModel
	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "دانش‌آموز یافت نشد")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموز")
		}
		var advisor studentModel.AdvisorModel
		if err := tx.First(&advisor, "advisor_id = ?", req.AdvisorID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "مشاور یافت نشد")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی مشاور")
		}

		if err := tx.Model(&student).
			Update("student_advisor_id", advisor.AdvisorID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در تخصیص مشاور")
		}

		course = model.CourseModel{
			CourseStudentID: student.StudentID,
			CourseAdvisorID: advisor.AdvisorID,
			CourseDayOfWeek: req.DayOfWeek,
			CourseStartTime: startTime,
			CourseStartDate: startDate,
			CourseIsActive:  true,
		}
		if err := tx.Create(&course).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد دوره")
		}

		sessionDate := startDate
		for i := 1; i <= sessionsPerCourse; i++ {
			session := model.SessionModel{
				SessionCourseID: course.CourseID,
				SessionNumber:   i,
				SessionDate:     sessionDate,
			}
			if err := tx.Create(&session).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد جلسات دوره")
			}
			sessionDate = sessionDate.AddDate(0, 0, 7)
		}
		return nil
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "دانش‌آموز با موفقیت تخصیص داده شد", course)
}

/* =========================================================
   Listing / detail
========================================================= */

// GET /api/courses
//
// Students see their own courses, advisors their advisees', admins
// everything.
func (ctl *CourseController) ListCourses(c *fiber.Ctx) error {
	q := ctl.DB.
		Preload("Student.User").
		Preload("Advisor.User").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_number asc")
		})

	switch auth.RoleFromCtx(c) {
	case constants.RoleAdmin:
	case constants.RoleAdvisor:
		advisorID := auth.AdvisorIDFromCtx(c)
		if advisorID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOnlyAdvisorsCanAccess)
		}
		q = q.Where("course_advisor_id = ?", advisorID)
	default:
		studentID := auth.StudentIDFromCtx(c)
		if studentID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, "دسترسی مجاز نیست")
		}
		q = q.Where("course_student_id = ?", studentID)
	}

	var courses []model.CourseModel
	if err := q.Order("course_start_date desc").Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دوره‌ها")
	}
	return helper.JsonList(c, "", courses, nil)
}

// GET /api/courses/:id
func (ctl *CourseController) CourseDetail(c *fiber.Ctx) error {
	course, err := ctl.loadCourseChecked(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "", course)
}

// POST /api/courses/:id/comments
func (ctl *CourseController) AddComment(c *fiber.Ctx) error {
	course, err := ctl.loadCourseChecked(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	authorID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	comment := model.CourseCommentModel{
		CourseCommentCourseID: course.CourseID,
		CourseCommentAuthorID: authorID,
		CourseCommentText:     req.Text,
	}
	if err := ctl.DB.Create(&comment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ثبت نظر")
	}
	return helper.JsonCreated(c, "نظر ثبت شد", comment)
}

// PATCH /api/courses/sessions/:id
func (ctl *CourseController) UpdateSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه جلسه نامعتبر است")
	}
	var req dto.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var session model.SessionModel
	if err := ctl.DB.First(&session, "session_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "جلسه یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی جلسه")
	}

	// advisors may only touch sessions of their own courses
	if auth.RoleFromCtx(c) != constants.RoleAdmin {
		advisorID := auth.AdvisorIDFromCtx(c)
		if advisorID == nil {
			return helper.JsonError(c, fiber.StatusForbidden, constants.ErrOnlyAdvisorsCanAccess)
		}
		var course model.CourseModel
		if err := ctl.DB.First(&course, "course_id = ?", session.SessionCourseID).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دوره")
		}
		if course.CourseAdvisorID != *advisorID {
			return helper.JsonError(c, fiber.StatusForbidden, "این جلسه متعلق به دوره شما نیست")
		}
	}

	if req.IsCompleted != nil {
		session.SessionIsCompleted = *req.IsCompleted
	}
	if req.VideoURL != nil {
		session.SessionVideoURL = req.VideoURL
	}
	if err := ctl.DB.Save(&session).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی جلسه")
	}
	return helper.JsonUpdated(c, "جلسه بروزرسانی شد", session)
}

/* =========================================================
   internals
========================================================= */

// loadCourseChecked fetches the course and verifies the caller is its
// student, its advisor, or an admin.
func (ctl *CourseController) loadCourseChecked(c *fiber.Ctx) (*model.CourseModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "شناسه دوره نامعتبر است")
	}

	var course model.CourseModel
	err = ctl.DB.
		Preload("Student.User").
		Preload("Advisor.User").
		Preload("Sessions", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_number asc")
		}).
		Preload("Comments.Author").
		First(&course, "course_id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "دوره یافت نشد")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دوره")
	}

	if auth.RoleFromCtx(c) == constants.RoleAdmin {
		return &course, nil
	}
	if sid := auth.StudentIDFromCtx(c); sid != nil && *sid == course.CourseStudentID {
		return &course, nil
	}
	if aid := auth.AdvisorIDFromCtx(c); aid != nil && *aid == course.CourseAdvisorID {
		return &course, nil
	}
	return nil, fiber.NewError(fiber.StatusForbidden, "دسترسی به این دوره مجاز نیست")
}
