// file: internals/features/catalog/dto/catalog_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"moshaverino_backend/internals/features/catalog/model"
)

/* =========================================================
   Lesson types
========================================================= */

type CreateLessonTypeRequest struct {
	Name string `json:"lesson_type_name" validate:"required,min=1,max=100"`
}

func (r *CreateLessonTypeRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateLessonTypeRequest) ToModel() *model.LessonTypeModel {
	return &model.LessonTypeModel{LessonTypeName: r.Name}
}

/* =========================================================
   Lessons
========================================================= */

type CreateLessonRequest struct {
	Name         string     `json:"lesson_name" validate:"required,min=1,max=255"`
	LessonTypeID uuid.UUID  `json:"lesson_lesson_type_id" validate:"required"`
	GradeID      *uuid.UUID `json:"lesson_grade_id"`
	PairedLesson *string    `json:"lesson_paired_lesson" validate:"omitempty,max=255"`
}

func (r *CreateLessonRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateLessonRequest) ToModel() *model.LessonModel {
	return &model.LessonModel{
		LessonName:         r.Name,
		LessonLessonTypeID: r.LessonTypeID,
		LessonGradeID:      r.GradeID,
		LessonPairedLesson: r.PairedLesson,
	}
}

type UpdateLessonRequest struct {
	Name         *string    `json:"lesson_name" validate:"omitempty,min=1,max=255"`
	LessonTypeID *uuid.UUID `json:"lesson_lesson_type_id"`
	GradeID      *uuid.UUID `json:"lesson_grade_id"`
	PairedLesson *string    `json:"lesson_paired_lesson" validate:"omitempty,max=255"`
}

func (r *UpdateLessonRequest) Validate(v *validator.Validate) error {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// ApplyPatch copies the provided fields onto the model.
func (r *UpdateLessonRequest) ApplyPatch(m *model.LessonModel) {
	if r.Name != nil {
		m.LessonName = *r.Name
	}
	if r.LessonTypeID != nil {
		m.LessonLessonTypeID = *r.LessonTypeID
	}
	if r.GradeID != nil {
		m.LessonGradeID = r.GradeID
	}
	if r.PairedLesson != nil {
		m.LessonPairedLesson = r.PairedLesson
	}
}

/* =========================================================
   Chapters
========================================================= */

type CreateChapterRequest struct {
	Number   int       `json:"chapter_number" validate:"min=0"`
	Name     string    `json:"chapter_name" validate:"required,min=1,max=255"`
	LessonID uuid.UUID `json:"chapter_lesson_id" validate:"required"`
	Track    *string   `json:"chapter_track" validate:"omitempty,max=50"`
}

func (r *CreateChapterRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateChapterRequest) ToModel() *model.ChapterModel {
	return &model.ChapterModel{
		ChapterNumber:   r.Number,
		ChapterName:     r.Name,
		ChapterLessonID: r.LessonID,
		ChapterTrack:    r.Track,
	}
}

/* =========================================================
   Box types
========================================================= */

type CreateBoxTypeRequest struct {
	Name      string `json:"box_type_name" validate:"required,min=1,max=100"`
	IsDefault bool   `json:"box_type_is_default"`
}

func (r *CreateBoxTypeRequest) Validate(v *validator.Validate) error {
	r.Name = strings.TrimSpace(r.Name)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

func (r *CreateBoxTypeRequest) ToModel() *model.BoxTypeModel {
	return &model.BoxTypeModel{
		BoxTypeName:      r.Name,
		BoxTypeIsDefault: r.IsDefault,
	}
}
