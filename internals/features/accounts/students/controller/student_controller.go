// file: internals/features/accounts/students/controller/student_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moshaverino_backend/internals/constants"
	"moshaverino_backend/internals/features/accounts/students/dto"
	"moshaverino_backend/internals/features/accounts/students/model"
	userModel "moshaverino_backend/internals/features/accounts/users/model"
	helper "moshaverino_backend/internals/helpers"
)

const defaultSchoolName = "مدرسه پیش‌فرض"

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db, Validate: validator.New()}
}

/* =========================================================
   Admin panel
========================================================= */

// GET /api/accounts/admin/panel-data
func (ctl *StudentController) AdminPanelData(c *fiber.Ctx) error {
	var students []model.StudentModel
	if err := ctl.DB.Preload("User").Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموزان")
	}
	var advisors []model.AdvisorModel
	if err := ctl.DB.Preload("User").Find(&advisors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی مشاوران")
	}
	var majors []model.MajorModel
	if err := ctl.DB.Find(&majors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی رشته‌ها")
	}
	var grades []model.GradeModel
	if err := ctl.DB.Find(&grades).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی پایه‌ها")
	}

	resp := dto.AdminPanelDataResponse{
		Students: make([]dto.PersonSummary, 0, len(students)),
		Advisors: make([]dto.PersonSummary, 0, len(advisors)),
		Majors:   make([]dto.NamedRef, 0, len(majors)),
		Grades:   make([]dto.NamedRef, 0, len(grades)),
	}
	for _, s := range students {
		resp.Students = append(resp.Students, personSummary(s.StudentID, s.User))
	}
	for _, a := range advisors {
		resp.Advisors = append(resp.Advisors, personSummary(a.AdvisorID, a.User))
	}
	for _, m := range majors {
		resp.Majors = append(resp.Majors, dto.NamedRef{ID: m.MajorID, Name: m.MajorName})
	}
	for _, g := range grades {
		resp.Grades = append(resp.Grades, dto.NamedRef{ID: g.GradeID, Name: g.GradeName})
	}
	return helper.JsonOK(c, "", resp)
}

func personSummary(id uuid.UUID, u *userModel.UserModel) dto.PersonSummary {
	p := dto.PersonSummary{ID: id}
	if u != nil {
		p.Name = u.FullName()
		p.PhoneNumber = u.UserPhoneNumber
		if u.UserTelegramChatID != nil {
			p.TelegramChatID = *u.UserTelegramChatID
		}
	}
	return p
}

/* =========================================================
   Add student
========================================================= */

// POST /api/accounts/students
//
// Creates the user account and the student row in one transaction.
// The account gets a random password; students log in with OTP.
func (ctl *StudentController) AddStudent(c *fiber.Ctx) error {
	var req dto.AddStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var created model.StudentModel
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userModel.UserModel{}).
			Where("user_phone_number = ?", req.PhoneNumber).
			Count(&count).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در بررسی شماره موبایل")
		}
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "کاربری با این شماره موبایل وجود دارد")
		}

		hashed, err := randomPasswordHash()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در ساخت رمز عبور")
		}
		user := userModel.UserModel{
			UserPhoneNumber: req.PhoneNumber,
			UserPassword:    hashed,
			UserRole:        constants.RoleStudent,
			UserFirstName:   req.FirstName,
			UserLastName:    req.LastName,
		}
		if err := tx.Create(&user).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "کاربری با این شماره موبایل وجود دارد")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد کاربر")
		}

		schoolID, err := ctl.resolveSchool(tx, req.SchoolID)
		if err != nil {
			return err
		}

		created = model.StudentModel{
			StudentUserID:    user.UserID,
			StudentSchoolID:  schoolID,
			StudentMajorID:   req.MajorID,
			StudentGradeID:   req.GradeID,
			StudentAdvisorID: req.AdvisorID,
		}
		if err := tx.Create(&created).Error; err != nil {
			if helper.IsForeignKeyViolation(err) {
				return fiber.NewError(fiber.StatusBadRequest, "رشته، پایه یا مشاور ارجاع‌شده وجود ندارد")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد دانش‌آموز")
		}
		return nil
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "دانش‌آموز با موفقیت ایجاد شد", created)
}

func (ctl *StudentController) resolveSchool(tx *gorm.DB, schoolID *uuid.UUID) (uuid.UUID, error) {
	if schoolID != nil {
		return *schoolID, nil
	}
	var school model.SchoolModel
	err := tx.Where("school_name = ?", defaultSchoolName).
		FirstOrCreate(&school, model.SchoolModel{SchoolName: defaultSchoolName}).Error
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی مدرسه پیش‌فرض")
	}
	return school.SchoolID, nil
}

func randomPasswordHash() (string, error) {
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(raw)), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

/* =========================================================
   Students / advisors
========================================================= */

// GET /api/accounts/students
func (ctl *StudentController) ListStudents(c *fiber.Ctx) error {
	q := ctl.DB.Preload("User").Preload("Major").Preload("Grade")
	if advisorStr := strings.TrimSpace(c.Query("advisor_id")); advisorStr != "" {
		advisorID, err := uuid.Parse(advisorStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "شناسه مشاور نامعتبر است")
		}
		q = q.Where("student_advisor_id = ?", advisorID)
	}

	p := helper.ResolvePaging(c, 50, 200)
	var total int64
	if err := q.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموزان")
	}
	var students []model.StudentModel
	if err := q.Offset(p.Offset).Limit(p.Limit).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموزان")
	}
	return helper.JsonList(c, "", students, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// GET /api/accounts/advisors
func (ctl *StudentController) ListAdvisors(c *fiber.Ctx) error {
	var advisors []model.AdvisorModel
	if err := ctl.DB.Preload("User").Find(&advisors).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی مشاوران")
	}
	return helper.JsonList(c, "", advisors, nil)
}

// GET /api/accounts/advisors/:id
func (ctl *StudentController) AdvisorDetail(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه مشاور نامعتبر است")
	}
	var advisor model.AdvisorModel
	if err := ctl.DB.Preload("User").First(&advisor, "advisor_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "مشاور یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی مشاور")
	}
	var students []model.StudentModel
	if err := ctl.DB.Preload("User").Preload("Major").Preload("Grade").
		Where("student_advisor_id = ?", id).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموزان مشاور")
	}
	return helper.JsonOK(c, "", fiber.Map{"advisor": advisor, "students": students})
}

/* =========================================================
   Advisor availability
========================================================= */

// GET /api/accounts/advisors/:id/availability
func (ctl *StudentController) ListAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه مشاور نامعتبر است")
	}
	var slots []model.AdvisorAvailabilityModel
	if err := ctl.DB.
		Where("advisor_availability_advisor_id = ?", id).
		Order("advisor_availability_day_of_week asc, advisor_availability_start_time asc").
		Find(&slots).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی زمان‌های مشاور")
	}
	return helper.JsonList(c, "", slots, nil)
}

// POST /api/accounts/availability
func (ctl *StudentController) CreateAvailability(c *fiber.Ctx) error {
	var req dto.CreateAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	slot := model.AdvisorAvailabilityModel{
		AdvisorAvailabilityAdvisorID:   req.AdvisorID,
		AdvisorAvailabilityDayOfWeek:   req.DayOfWeek,
		AdvisorAvailabilityStartTime:   req.StartTime,
		AdvisorAvailabilityEndTime:     req.EndTime,
		AdvisorAvailabilityMaxStudents: req.MaxStudents,
	}
	if err := ctl.DB.Create(&slot).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "این بازه زمانی قبلاً ثبت شده است")
		}
		if helper.IsForeignKeyViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "مشاور ارجاع‌شده وجود ندارد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ثبت بازه زمانی")
	}
	return helper.JsonCreated(c, "بازه زمانی ثبت شد", slot)
}

// DELETE /api/accounts/availability/:id
func (ctl *StudentController) DeleteAvailability(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه بازه زمانی نامعتبر است")
	}
	res := ctl.DB.Delete(&model.AdvisorAvailabilityModel{}, "advisor_availability_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در حذف بازه زمانی")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "بازه زمانی یافت نشد")
	}
	return helper.JsonDeleted(c, "بازه زمانی حذف شد", fiber.Map{"advisor_availability_id": id})
}
