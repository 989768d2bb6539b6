// file: internals/features/catalog/model/chapter_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   ChapterModel — map to table chapters

   chapter_number is NOT unique: the same (number, name) pair may
   appear more than once and listings must collapse duplicates.
   chapter_track is a free-text tag holding one track code or a
   comma-joined list ("T", "T,R"), matched by substring.
   ======================================================= */

type ChapterModel struct {
	ChapterID       uuid.UUID `json:"chapter_id" gorm:"type:uuid;primaryKey;column:chapter_id"`
	ChapterNumber   int       `json:"chapter_number" gorm:"type:int;not null;column:chapter_number"`
	ChapterName     string    `json:"chapter_name" gorm:"type:varchar(255);not null;column:chapter_name"`
	ChapterLessonID uuid.UUID `json:"chapter_lesson_id" gorm:"type:uuid;not null;index;column:chapter_lesson_id"`
	ChapterTrack    *string   `json:"chapter_track,omitempty" gorm:"type:varchar(50);column:chapter_track"`

	ChapterCreatedAt time.Time      `json:"chapter_created_at" gorm:"column:chapter_created_at;not null;autoCreateTime"`
	ChapterDeletedAt gorm.DeletedAt `json:"chapter_deleted_at" gorm:"column:chapter_deleted_at;index"`

	Lesson *LessonModel `json:"lesson,omitempty" gorm:"foreignKey:ChapterLessonID;references:LessonID"`
}

func (ChapterModel) TableName() string { return "chapters" }

func (m *ChapterModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChapterID == uuid.Nil {
		m.ChapterID = uuid.New()
	}
	return nil
}
