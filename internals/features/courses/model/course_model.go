// file: internals/features/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	userModel "moshaverino_backend/internals/features/accounts/users/model"
)

/* =======================================================
   CourseModel — map to table courses

   A four-session advising course: one fixed weekday/time slot,
   sessions spaced seven days apart starting at course_start_date.
   ======================================================= */

type CourseModel struct {
	CourseID        uuid.UUID `json:"course_id" gorm:"type:uuid;primaryKey;column:course_id"`
	CourseStudentID uuid.UUID `json:"course_student_id" gorm:"type:uuid;not null;index;column:course_student_id"`
	CourseAdvisorID uuid.UUID `json:"course_advisor_id" gorm:"type:uuid;not null;index;column:course_advisor_id"`
	CourseDayOfWeek string    `json:"course_day_of_week" gorm:"type:varchar(10);not null;column:course_day_of_week"`
	CourseStartTime string    `json:"course_start_time" gorm:"type:varchar(8);not null;column:course_start_time"`
	CourseStartDate time.Time `json:"course_start_date" gorm:"type:date;not null;column:course_start_date"`
	CourseIsActive  bool      `json:"course_is_active" gorm:"type:boolean;not null;default:true;column:course_is_active"`

	// set once the payment reminder for this course has gone out
	CoursePaymentNotificationSent bool `json:"course_payment_notification_sent" gorm:"type:boolean;not null;default:false;column:course_payment_notification_sent"`

	CourseCreatedAt time.Time      `json:"course_created_at" gorm:"column:course_created_at;not null;autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at" gorm:"column:course_updated_at;not null;autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at" gorm:"column:course_deleted_at;index"`

	Student  *studentModel.StudentModel `json:"student,omitempty" gorm:"foreignKey:CourseStudentID;references:StudentID"`
	Advisor  *studentModel.AdvisorModel `json:"advisor,omitempty" gorm:"foreignKey:CourseAdvisorID;references:AdvisorID"`
	Sessions []SessionModel             `json:"sessions,omitempty" gorm:"foreignKey:SessionCourseID;references:CourseID"`
	Comments []CourseCommentModel       `json:"comments,omitempty" gorm:"foreignKey:CourseCommentCourseID;references:CourseID"`
}

func (CourseModel) TableName() string { return "courses" }

/* =======================================================
   SessionModel — map to table sessions
   ======================================================= */

type SessionModel struct {
	SessionID          uuid.UUID `json:"session_id" gorm:"type:uuid;primaryKey;column:session_id"`
	SessionCourseID    uuid.UUID `json:"session_course_id" gorm:"type:uuid;not null;index;column:session_course_id"`
	SessionNumber      int       `json:"session_number" gorm:"type:int;not null;column:session_number"`
	SessionDate        time.Time `json:"session_date" gorm:"type:date;not null;column:session_date"`
	SessionIsCompleted bool      `json:"session_is_completed" gorm:"type:boolean;not null;default:false;column:session_is_completed"`
	SessionVideoURL    *string   `json:"session_video_url,omitempty" gorm:"type:text;column:session_video_url"`

	SessionCreatedAt time.Time `json:"session_created_at" gorm:"column:session_created_at;not null;autoCreateTime"`
	SessionUpdatedAt time.Time `json:"session_updated_at" gorm:"column:session_updated_at;not null;autoUpdateTime"`
}

func (SessionModel) TableName() string { return "sessions" }

/* =======================================================
   CourseCommentModel — map to table course_comments
   ======================================================= */

type CourseCommentModel struct {
	CourseCommentID       uuid.UUID `json:"course_comment_id" gorm:"type:uuid;primaryKey;column:course_comment_id"`
	CourseCommentCourseID uuid.UUID `json:"course_comment_course_id" gorm:"type:uuid;not null;index;column:course_comment_course_id"`
	CourseCommentAuthorID uuid.UUID `json:"course_comment_author_id" gorm:"type:uuid;not null;column:course_comment_author_id"`
	CourseCommentText     string    `json:"course_comment_text" gorm:"type:text;not null;column:course_comment_text"`

	CourseCommentCreatedAt time.Time `json:"course_comment_created_at" gorm:"column:course_comment_created_at;not null;autoCreateTime"`

	Author *userModel.UserModel `json:"author,omitempty" gorm:"foreignKey:CourseCommentAuthorID;references:UserID"`
}

func (CourseCommentModel) TableName() string { return "course_comments" }

func (m *CourseModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseID == uuid.Nil {
		m.CourseID = uuid.New()
	}
	return nil
}

func (m *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.SessionID == uuid.Nil {
		m.SessionID = uuid.New()
	}
	return nil
}

func (m *CourseCommentModel) BeforeCreate(tx *gorm.DB) error {
	if m.CourseCommentID == uuid.Nil {
		m.CourseCommentID = uuid.New()
	}
	return nil
}
