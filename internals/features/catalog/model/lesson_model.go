// file: internals/features/catalog/model/lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   LessonTypeModel — map to table lesson_types
   ======================================================= */

type LessonTypeModel struct {
	LessonTypeID   uuid.UUID `json:"lesson_type_id" gorm:"type:uuid;primaryKey;column:lesson_type_id"`
	LessonTypeName string    `json:"lesson_type_name" gorm:"type:varchar(100);not null;uniqueIndex;column:lesson_type_name"`

	LessonTypeCreatedAt time.Time      `json:"lesson_type_created_at" gorm:"column:lesson_type_created_at;not null;autoCreateTime"`
	LessonTypeDeletedAt gorm.DeletedAt `json:"lesson_type_deleted_at" gorm:"column:lesson_type_deleted_at;index"`
}

func (LessonTypeModel) TableName() string { return "lesson_types" }

/* =======================================================
   LessonModel — map to table lessons

   A lesson belongs to exactly one grade; paired_lesson is a
   loose by-name reference, not a FK.
   ======================================================= */

type LessonModel struct {
	LessonID           uuid.UUID  `json:"lesson_id" gorm:"type:uuid;primaryKey;column:lesson_id"`
	LessonName         string     `json:"lesson_name" gorm:"type:varchar(255);not null;column:lesson_name"`
	LessonLessonTypeID uuid.UUID  `json:"lesson_lesson_type_id" gorm:"type:uuid;not null;column:lesson_lesson_type_id"`
	LessonGradeID      *uuid.UUID `json:"lesson_grade_id,omitempty" gorm:"type:uuid;column:lesson_grade_id"`
	LessonPairedLesson *string    `json:"lesson_paired_lesson,omitempty" gorm:"type:varchar(255);column:lesson_paired_lesson"`

	LessonCreatedAt time.Time      `json:"lesson_created_at" gorm:"column:lesson_created_at;not null;autoCreateTime"`
	LessonUpdatedAt time.Time      `json:"lesson_updated_at" gorm:"column:lesson_updated_at;not null;autoUpdateTime"`
	LessonDeletedAt gorm.DeletedAt `json:"lesson_deleted_at" gorm:"column:lesson_deleted_at;index"`

	LessonType *LessonTypeModel `json:"lesson_type,omitempty" gorm:"foreignKey:LessonLessonTypeID;references:LessonTypeID"`
}

func (LessonModel) TableName() string { return "lessons" }

func (m *LessonTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonTypeID == uuid.Nil {
		m.LessonTypeID = uuid.New()
	}
	return nil
}

func (m *LessonModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonID == uuid.Nil {
		m.LessonID = uuid.New()
	}
	return nil
}
