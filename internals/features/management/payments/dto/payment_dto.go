// file: internals/features/management/payments/dto/payment_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type SubmitPaymentRequest struct {
	CourseID        *uuid.UUID `json:"course_id"`
	Amount          int64      `json:"amount" validate:"required,gt=0"`
	ReferenceNumber string     `json:"reference_number" validate:"required,min=4,max=100"`
	PaymentDate     string     `json:"payment_date" validate:"required"`
}

func (r *SubmitPaymentRequest) Validate(v *validator.Validate) error {
	r.ReferenceNumber = strings.TrimSpace(r.ReferenceNumber)
	r.PaymentDate = strings.TrimSpace(r.PaymentDate)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *SubmitPaymentRequest) ParsedDate() (time.Time, error) {
	t, err := time.Parse("2006-01-02", r.PaymentDate)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "قالب تاریخ پرداخت نامعتبر است. مثال: 2024-01-20")
	}
	return t, nil
}

type RejectPaymentRequest struct {
	Notes *string `json:"notes"`
}
