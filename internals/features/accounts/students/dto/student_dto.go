// file: internals/features/accounts/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	helper "moshaverino_backend/internals/helpers"
)

type AddStudentRequest struct {
	FirstName   string     `json:"first_name" validate:"required,min=1,max=100"`
	LastName    string     `json:"last_name" validate:"required,min=1,max=100"`
	PhoneNumber string     `json:"phone_number" validate:"required,min=10,max=15"`
	MajorID     uuid.UUID  `json:"major_id" validate:"required"`
	GradeID     uuid.UUID  `json:"grade_id" validate:"required"`
	SchoolID    *uuid.UUID `json:"school_id"`
	AdvisorID   *uuid.UUID `json:"advisor_id"`
}

func (r *AddStudentRequest) Validate(v *validator.Validate) error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.PhoneNumber = helper.NormalizePhoneNumber(r.PhoneNumber)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type CreateAvailabilityRequest struct {
	AdvisorID   uuid.UUID `json:"advisor_id" validate:"required"`
	DayOfWeek   string    `json:"day_of_week" validate:"required,oneof=شنبه یکشنبه دوشنبه سه‌شنبه چهارشنبه پنج‌شنبه جمعه"`
	StartTime   string    `json:"start_time" validate:"required"`
	EndTime     string    `json:"end_time" validate:"required"`
	MaxStudents int       `json:"max_students" validate:"min=1"`
}

func (r *CreateAvailabilityRequest) Validate(v *validator.Validate) error {
	r.StartTime = strings.TrimSpace(r.StartTime)
	r.EndTime = strings.TrimSpace(r.EndTime)
	if r.MaxStudents == 0 {
		r.MaxStudents = 1
	}
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =========================================================
   Responses
========================================================= */

type PersonSummary struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PhoneNumber    string    `json:"phone_number"`
	TelegramChatID string    `json:"telegram_chat_id"`
}

type NamedRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type AdminPanelDataResponse struct {
	Students []PersonSummary `json:"students"`
	Advisors []PersonSummary `json:"advisors"`
	Majors   []NamedRef      `json:"majors"`
	Grades   []NamedRef      `json:"grades"`
}
