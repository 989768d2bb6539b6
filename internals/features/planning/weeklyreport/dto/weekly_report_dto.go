// file: internals/features/planning/weeklyreport/dto/weekly_report_dto.go
package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* =========================================================
   Requests
========================================================= */

type TaskRequest struct {
	BoxType            string     `json:"box_type" validate:"required"`
	LessonID           *uuid.UUID `json:"lesson_id"`
	ChapterID          *uuid.UUID `json:"chapter_id"`
	OptionalTestsCount int        `json:"optional_tests_count" validate:"min=0"`
	DurationMinutes    int        `json:"duration_minutes" validate:"min=0"`
	Title              string     `json:"title"`
	Start              string     `json:"start" validate:"required"`
	End                string     `json:"end" validate:"required"`
}

type DayRequest struct {
	Day      string        `json:"day" validate:"required,oneof=شنبه یکشنبه دوشنبه سه‌شنبه چهارشنبه پنج‌شنبه جمعه"`
	Disabled bool          `json:"disabled"`
	Tasks    []TaskRequest `json:"tasks" validate:"dive"`
}

type SaveWeeklyReportRequest struct {
	StudentID       uuid.UUID    `json:"student_id" validate:"required"`
	WeekStart       string       `json:"week_start" validate:"required"`
	WeekEnd         string       `json:"week_end" validate:"required"`
	Days            []DayRequest `json:"days" validate:"dive"`
	ImportantEvents string       `json:"important_events"`
}

func (r *SaveWeeklyReportRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// DisabledDays joins the names of the disabled days, comma separated.
func (r *SaveWeeklyReportRequest) DisabledDays() string {
	var names []string
	for _, d := range r.Days {
		if d.Disabled {
			names = append(names, d.Day)
		}
	}
	return strings.Join(names, ",")
}

type CopyDayRequest struct {
	SourceStudentID uuid.UUID `json:"source_student_id" validate:"required"`
	TargetStudentID uuid.UUID `json:"target_student_id" validate:"required"`
	SourceDate      string    `json:"source_date" validate:"required"`
	TargetDayOfWeek string    `json:"target_day_of_week" validate:"required,oneof=شنبه یکشنبه دوشنبه سه‌شنبه چهارشنبه پنج‌شنبه جمعه"`
}

func (r *CopyDayRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type AppendLogRequest struct {
	ReportID       uuid.UUID       `json:"report_id" validate:"required"`
	Action         string          `json:"action" validate:"required,max=100"`
	AdditionalData json.RawMessage `json:"additional_data"`
}

func (r *AppendLogRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =========================================================
   Responses
========================================================= */

type TaskResponse struct {
	BoxType            string     `json:"box_type"`
	Title              string     `json:"title"`
	Chapter            string     `json:"chapter"`
	ChapterID          *uuid.UUID `json:"chapter_id,omitempty"`
	ChapterText        string     `json:"chapter_text"`
	OptionalTestsCount int        `json:"optional_tests_count"`
	LessonType         string     `json:"lesson_type"`
	LessonID           *uuid.UUID `json:"lesson_id,omitempty"`
	LessonName         *string    `json:"lesson_name,omitempty"`
	GradeID            *uuid.UUID `json:"grade_id,omitempty"`
	StartTime          string     `json:"start_time"`
	EndTime            string     `json:"end_time"`
	Date               string     `json:"date"`
	DayOfWeek          string     `json:"day_of_week"`
}

type ReportDetailsResponse struct {
	ImportantEvents string         `json:"important_events"`
	Tasks           []TaskResponse `json:"tasks"`
}

type LookupResponse struct {
	Exists    string  `json:"exists"` // current | future | none
	WeekStart *string `json:"week_start,omitempty"`
	WeekEnd   *string `json:"week_end,omitempty"`
}

type LatestTaskResponse struct {
	LessonID           uuid.UUID  `json:"lesson_id"`
	LessonName         string     `json:"lesson_name"`
	ChapterID          *uuid.UUID `json:"chapter_id,omitempty"`
	ChapterText        string     `json:"chapter_text"`
	OptionalTestsCount int        `json:"optional_tests_count"`
	DurationMinutes    int        `json:"duration_minutes"`
	GradeID            *uuid.UUID `json:"grade_id,omitempty"`
	LessonType         string     `json:"lesson_type"`
	DayOfWeek          string     `json:"day_of_week"`
}

type DefaultEventResponse struct {
	Name      string `json:"name"`
	DayOfWeek string `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Date      string `json:"date"`
}

type ReportSummaryResponse struct {
	ReportID        uuid.UUID `json:"report_id"`
	StudentName     string    `json:"student_name"`
	AdvisorName     string    `json:"advisor_name"`
	WeekStart       string    `json:"week_start"`
	WeekEnd         string    `json:"week_end"`
	TasksCount      int       `json:"tasks_count"`
	TotalMinutes    int       `json:"total_minutes"`
	LogsCount       int       `json:"logs_count"`
	ImportantEvents string    `json:"important_events"`
}

/* =========================================================
   Parse helpers
========================================================= */

// ParseISODateTime accepts "2006-01-02T15:04:05" or plain "2006-01-02".
func ParseISODateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "قالب تاریخ نامعتبر است")
}

// ParseDateOnly accepts "2006-01-02".
func ParseDateOnly(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "قالب تاریخ نامعتبر است. مثال: 2025-03-02")
	}
	return t, nil
}

// ParseTimeOfDay accepts "15:04:05" or "15:04".
func ParseTimeOfDay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	layouts := []string{"15:04:05", "15:04"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second, nil
		}
	}
	return 0, fiber.NewError(fiber.StatusBadRequest, "قالب ساعت نامعتبر است. مثال: 08:30:00")
}
