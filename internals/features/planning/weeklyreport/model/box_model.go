// file: internals/features/planning/weeklyreport/model/box_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	catalogModel "moshaverino_backend/internals/features/catalog/model"
)

/* =======================================================
   BoxModel — map to table boxes

   One concrete scheduled activity. A fresh row is created for
   every placement in a weekly report; boxes are never shared
   between reports.

   An event box (box type "ایونت") has null lesson/chapter, zero
   duration, zero optional tests and box_is_default = true. A
   non-event box carries the lesson/chapter the client picked.
   ======================================================= */

type BoxModel struct {
	BoxID                 uuid.UUID  `json:"box_id" gorm:"type:uuid;primaryKey;column:box_id"`
	BoxBoxTypeID          uuid.UUID  `json:"box_box_type_id" gorm:"type:uuid;not null;column:box_box_type_id"`
	BoxLessonID           *uuid.UUID `json:"box_lesson_id,omitempty" gorm:"type:uuid;column:box_lesson_id"`
	BoxChapterID          *uuid.UUID `json:"box_chapter_id,omitempty" gorm:"type:uuid;column:box_chapter_id"`
	BoxOptionalTestsCount int        `json:"box_optional_tests_count" gorm:"type:int;not null;default:0;column:box_optional_tests_count"`
	BoxDurationMinutes    int        `json:"box_duration_minutes" gorm:"type:int;not null;default:0;column:box_duration_minutes"`
	BoxName               string     `json:"box_name" gorm:"type:varchar(255);not null;default:'';column:box_name"`
	BoxIsDefault          bool       `json:"box_is_default" gorm:"type:boolean;not null;default:false;column:box_is_default"`

	BoxCreatedAt time.Time `json:"box_created_at" gorm:"column:box_created_at;not null;autoCreateTime"`

	BoxType *catalogModel.BoxTypeModel `json:"box_type,omitempty" gorm:"foreignKey:BoxBoxTypeID;references:BoxTypeID"`
	Lesson  *catalogModel.LessonModel  `json:"lesson,omitempty" gorm:"foreignKey:BoxLessonID;references:LessonID"`
	Chapter *catalogModel.ChapterModel `json:"chapter,omitempty" gorm:"foreignKey:BoxChapterID;references:ChapterID"`
}

func (BoxModel) TableName() string { return "boxes" }

func (m *BoxModel) BeforeCreate(tx *gorm.DB) error {
	if m.BoxID == uuid.Nil {
		m.BoxID = uuid.New()
	}
	return nil
}
