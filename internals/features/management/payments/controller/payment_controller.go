// file: internals/features/management/payments/controller/payment_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/management/payments/dto"
	"moshaverino_backend/internals/features/management/payments/model"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

// POST /api/management/payments/submit
//
// A student registers a bank receipt; it stays pending until an admin
// approves or rejects it.
func (ctl *PaymentController) Submit(c *fiber.Ctx) error {
	studentID := auth.StudentIDFromCtx(c)
	if studentID == nil {
		return helper.JsonError(c, fiber.StatusForbidden, "فقط دانش‌آموزان می‌توانند پرداخت ثبت کنند")
	}

	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}
	paymentDate, err := req.ParsedDate()
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	payment := model.PaymentModel{
		PaymentStudentID:       *studentID,
		PaymentCourseID:        req.CourseID,
		PaymentAmount:          req.Amount,
		PaymentReferenceNumber: req.ReferenceNumber,
		PaymentDate:            paymentDate,
		PaymentStatus:          model.PaymentPending,
	}
	if err := ctl.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ثبت پرداخت")
	}
	return helper.JsonCreated(c, "پرداخت ثبت شد و در انتظار تایید است", payment)
}

// GET /api/management/payments/mine
func (ctl *PaymentController) Mine(c *fiber.Ctx) error {
	studentID := auth.StudentIDFromCtx(c)
	if studentID == nil {
		return helper.JsonError(c, fiber.StatusForbidden, "دسترسی مجاز نیست")
	}
	var payments []model.PaymentModel
	if err := ctl.DB.
		Where("payment_student_id = ?", studentID).
		Order("payment_created_at desc").
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی پرداخت‌ها")
	}
	return helper.JsonList(c, "", payments, nil)
}

// GET /api/management/payments
func (ctl *PaymentController) List(c *fiber.Ctx) error {
	q := ctl.DB.Preload("Student.User")
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("payment_status = ?", status)
	}

	p := helper.ResolvePaging(c, 50, 200)
	var total int64
	if err := q.Model(&model.PaymentModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی پرداخت‌ها")
	}
	var payments []model.PaymentModel
	if err := q.Order("payment_created_at desc").Offset(p.Offset).Limit(p.Limit).Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی پرداخت‌ها")
	}
	return helper.JsonList(c, "", payments, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// POST /api/management/payments/:id/approve
func (ctl *PaymentController) Approve(c *fiber.Ctx) error {
	payment, err := ctl.loadPayment(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	payment.PaymentStatus = model.PaymentApproved
	if err := ctl.DB.Save(payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی پرداخت")
	}
	return helper.JsonUpdated(c, "پرداخت تایید شد", payment)
}

// POST /api/management/payments/:id/reject
func (ctl *PaymentController) Reject(c *fiber.Ctx) error {
	payment, err := ctl.loadPayment(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	payment.PaymentStatus = model.PaymentRejected
	if req.Notes != nil && strings.TrimSpace(*req.Notes) != "" {
		payment.PaymentAdminNotes = req.Notes
	}
	if err := ctl.DB.Save(payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی پرداخت")
	}
	return helper.JsonUpdated(c, "پرداخت رد شد", payment)
}

func (ctl *PaymentController) loadPayment(c *fiber.Ctx) (*model.PaymentModel, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "شناسه پرداخت نامعتبر است")
	}
	var payment model.PaymentModel
	if err := ctl.DB.First(&payment, "payment_id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "پرداخت یافت نشد")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی پرداخت")
	}
	return &payment, nil
}
