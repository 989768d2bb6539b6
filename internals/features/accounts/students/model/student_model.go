// file: internals/features/accounts/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
)

/* =======================================================
   Reference data: schools / majors / grades
   ======================================================= */

type SchoolModel struct {
	SchoolID   uuid.UUID `json:"school_id" gorm:"type:uuid;primaryKey;column:school_id"`
	SchoolName string    `json:"school_name" gorm:"type:varchar(255);not null;uniqueIndex;column:school_name"`
}

func (SchoolModel) TableName() string { return "schools" }

// MajorModel holds the major name only; the single-letter track code
// (T/R/E) is resolved through the curriculum mapping, not stored here.
type MajorModel struct {
	MajorID   uuid.UUID `json:"major_id" gorm:"type:uuid;primaryKey;column:major_id"`
	MajorName string    `json:"major_name" gorm:"type:varchar(255);not null;uniqueIndex;column:major_name"`
}

func (MajorModel) TableName() string { return "majors" }

// GradeModel holds the grade name only; the sorting rank comes from the
// curriculum grade-order table, which is not chronological.
type GradeModel struct {
	GradeID   uuid.UUID `json:"grade_id" gorm:"type:uuid;primaryKey;column:grade_id"`
	GradeName string    `json:"grade_name" gorm:"type:varchar(100);not null;uniqueIndex;column:grade_name"`
}

func (GradeModel) TableName() string { return "grades" }

/* =======================================================
   AdvisorModel / AdvisorAvailabilityModel
   ======================================================= */

type AdvisorModel struct {
	AdvisorID     uuid.UUID `json:"advisor_id" gorm:"type:uuid;primaryKey;column:advisor_id"`
	AdvisorUserID uuid.UUID `json:"advisor_user_id" gorm:"type:uuid;not null;uniqueIndex;column:advisor_user_id"`

	AdvisorCreatedAt time.Time      `json:"advisor_created_at" gorm:"column:advisor_created_at;not null;autoCreateTime"`
	AdvisorDeletedAt gorm.DeletedAt `json:"advisor_deleted_at" gorm:"column:advisor_deleted_at;index"`

	User *userModel.UserModel `json:"user,omitempty" gorm:"foreignKey:AdvisorUserID;references:UserID"`
}

func (AdvisorModel) TableName() string { return "advisors" }

type AdvisorAvailabilityModel struct {
	AdvisorAvailabilityID          uuid.UUID `json:"advisor_availability_id" gorm:"type:uuid;primaryKey;column:advisor_availability_id"`
	AdvisorAvailabilityAdvisorID   uuid.UUID `json:"advisor_availability_advisor_id" gorm:"type:uuid;not null;uniqueIndex:uq_advisor_availability_slot;column:advisor_availability_advisor_id"`
	AdvisorAvailabilityDayOfWeek   string    `json:"advisor_availability_day_of_week" gorm:"type:varchar(10);not null;uniqueIndex:uq_advisor_availability_slot;column:advisor_availability_day_of_week"`
	AdvisorAvailabilityStartTime   string    `json:"advisor_availability_start_time" gorm:"type:varchar(8);not null;uniqueIndex:uq_advisor_availability_slot;column:advisor_availability_start_time"`
	AdvisorAvailabilityEndTime     string    `json:"advisor_availability_end_time" gorm:"type:varchar(8);not null;column:advisor_availability_end_time"`
	AdvisorAvailabilityMaxStudents int       `json:"advisor_availability_max_students" gorm:"type:int;not null;default:1;column:advisor_availability_max_students"`

	AdvisorAvailabilityCreatedAt time.Time `json:"advisor_availability_created_at" gorm:"column:advisor_availability_created_at;not null;autoCreateTime"`
}

func (AdvisorAvailabilityModel) TableName() string { return "advisor_availabilities" }

/* =======================================================
   StudentModel — map to table students
   ======================================================= */

type StudentModel struct {
	StudentID        uuid.UUID  `json:"student_id" gorm:"type:uuid;primaryKey;column:student_id"`
	StudentUserID    uuid.UUID  `json:"student_user_id" gorm:"type:uuid;not null;uniqueIndex;column:student_user_id"`
	StudentSchoolID  uuid.UUID  `json:"student_school_id" gorm:"type:uuid;not null;column:student_school_id"`
	StudentMajorID   uuid.UUID  `json:"student_major_id" gorm:"type:uuid;not null;column:student_major_id"`
	StudentGradeID   uuid.UUID  `json:"student_grade_id" gorm:"type:uuid;not null;column:student_grade_id"`
	StudentAdvisorID *uuid.UUID `json:"student_advisor_id,omitempty" gorm:"type:uuid;index;column:student_advisor_id"`

	StudentCreatedAt time.Time      `json:"student_created_at" gorm:"column:student_created_at;not null;autoCreateTime"`
	StudentUpdatedAt time.Time      `json:"student_updated_at" gorm:"column:student_updated_at;not null;autoUpdateTime"`
	StudentDeletedAt gorm.DeletedAt `json:"student_deleted_at" gorm:"column:student_deleted_at;index"`

	User    *userModel.UserModel `json:"user,omitempty" gorm:"foreignKey:StudentUserID;references:UserID"`
	Major   *MajorModel          `json:"major,omitempty" gorm:"foreignKey:StudentMajorID;references:MajorID"`
	Grade   *GradeModel          `json:"grade,omitempty" gorm:"foreignKey:StudentGradeID;references:GradeID"`
	Advisor *AdvisorModel        `json:"advisor,omitempty" gorm:"foreignKey:StudentAdvisorID;references:AdvisorID"`
}

func (StudentModel) TableName() string { return "students" }

func (m *SchoolModel) BeforeCreate(tx *gorm.DB) error {
	if m.SchoolID == uuid.Nil {
		m.SchoolID = uuid.New()
	}
	return nil
}

func (m *MajorModel) BeforeCreate(tx *gorm.DB) error {
	if m.MajorID == uuid.Nil {
		m.MajorID = uuid.New()
	}
	return nil
}

func (m *GradeModel) BeforeCreate(tx *gorm.DB) error {
	if m.GradeID == uuid.Nil {
		m.GradeID = uuid.New()
	}
	return nil
}

func (m *AdvisorModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdvisorID == uuid.Nil {
		m.AdvisorID = uuid.New()
	}
	return nil
}

func (m *AdvisorAvailabilityModel) BeforeCreate(tx *gorm.DB) error {
	if m.AdvisorAvailabilityID == uuid.Nil {
		m.AdvisorAvailabilityID = uuid.New()
	}
	return nil
}

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
