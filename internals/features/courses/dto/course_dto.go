// file: internals/features/courses/dto/course_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"time"
)

type AssignStudentRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	AdvisorID uuid.UUID `json:"advisor_id" validate:"required"`
	DayOfWeek string    `json:"day_of_week" validate:"required,oneof=شنبه یکشنبه دوشنبه سه‌شنبه چهارشنبه پنج‌شنبه جمعه"`
	StartTime string    `json:"start_time" validate:"required"`
	StartDate string    `json:"start_date" validate:"required"`
}

func (r *AssignStudentRequest) Validate(v *validator.Validate) error {
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.StartDate = strings.TrimSpace(r.StartDate)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// ParsedStart validates and returns the start date and the normalized
// "HH:MM" start time.
func (r *AssignStudentRequest) ParsedStart() (time.Time, string, error) {
	startDate, err := time.Parse("2006-01-02", r.StartDate)
	if err != nil {
		return time.Time{}, "", fiber.NewError(fiber.StatusBadRequest, "قالب تاریخ شروع نامعتبر است. مثال: 2024-01-20")
	}
	t, err := time.Parse("15:04", r.StartTime)
	if err != nil {
		if t2, err2 := time.Parse("15:04:05", r.StartTime); err2 == nil {
			return startDate, t2.Format("15:04"), nil
		}
		return time.Time{}, "", fiber.NewError(fiber.StatusBadRequest, "قالب ساعت شروع نامعتبر است. مثال: 10:00")
	}
	return startDate, t.Format("15:04"), nil
}

type AddCommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

func (r *AddCommentRequest) Validate(v *validator.Validate) error {
	r.Text = strings.TrimSpace(r.Text)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type UpdateSessionRequest struct {
	IsCompleted *bool   `json:"is_completed"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
}

func (r *UpdateSessionRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}
