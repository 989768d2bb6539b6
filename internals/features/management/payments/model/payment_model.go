// file: internals/features/management/payments/model/payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

/* =======================================================
   PaymentModel — map to table payments

   Manual receipt registration: the student submits a bank
   reference number, an admin approves or rejects it. Amounts
   are whole Toman.
   ======================================================= */

type PaymentModel struct {
	PaymentID              uuid.UUID     `json:"payment_id" gorm:"type:uuid;primaryKey;column:payment_id"`
	PaymentStudentID       uuid.UUID     `json:"payment_student_id" gorm:"type:uuid;not null;index;column:payment_student_id"`
	PaymentCourseID        *uuid.UUID    `json:"payment_course_id,omitempty" gorm:"type:uuid;column:payment_course_id"`
	PaymentAmount          int64         `json:"payment_amount" gorm:"type:bigint;not null;column:payment_amount"`
	PaymentReferenceNumber string        `json:"payment_reference_number" gorm:"type:varchar(100);not null;column:payment_reference_number"`
	PaymentDate            time.Time     `json:"payment_date" gorm:"type:date;not null;column:payment_date"`
	PaymentStatus          PaymentStatus `json:"payment_status" gorm:"type:varchar(10);not null;default:'pending';column:payment_status"`
	PaymentAdminNotes      *string       `json:"payment_admin_notes,omitempty" gorm:"type:text;column:payment_admin_notes"`

	PaymentCreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;not null;autoCreateTime"`

	Student *studentModel.StudentModel `json:"student,omitempty" gorm:"foreignKey:PaymentStudentID;references:StudentID"`
}

func (PaymentModel) TableName() string { return "payments" }

func (m *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.PaymentID == uuid.Nil {
		m.PaymentID = uuid.New()
	}
	return nil
}
