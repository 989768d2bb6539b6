// file: internals/features/planning/curriculum/curriculum.go

// Package curriculum holds the national curriculum tables the planning
// features order and filter by. The tables are plain data so deployments
// for other school systems can swap them without touching the services.
package curriculum

import (
	"strings"
	"time"
)

// Persian weekday names in school order. شنبه is day 0.
var WeekDays = []string{
	"شنبه",
	"یکشنبه",
	"دوشنبه",
	"سه‌شنبه",
	"چهارشنبه",
	"پنج‌شنبه",
	"جمعه",
}

// EventBoxTypeName marks a box as a calendar event rather than study
// time. Event boxes carry no lesson, no chapter and zero duration.
const EventBoxTypeName = "ایونت"

type Curriculum struct {
	// MajorTrackCodes maps a major name to the single-letter track code
	// embedded in chapter track tags (e.g. "T3" for تجربی grade 3).
	MajorTrackCodes map[string]string

	// MajorSubjects lists the specialized subjects of each major, in
	// recommendation order.
	MajorSubjects map[string][]string

	// GeneralSubjects are shared across majors and always recommended
	// after the specialized ones.
	GeneralSubjects []string

	// GradeOrder ranks grade names for recommendation: the current
	// (highest) grade first, earlier grades after it.
	GradeOrder map[string]int
}

// Default returns the curriculum tables for the Iranian konkur tracks.
func Default() *Curriculum {
	return &Curriculum{
		MajorTrackCodes: map[string]string{
			"تجربی": "T",
			"ریاضی": "R",
			"انسانی": "E",
		},
		MajorSubjects: map[string][]string{
			"تجربی": {"زیست", "شیمی", "فیزیک", "ریاضی", "زمین‌شناسی"},
			"ریاضی": {"حسابان", "هندسه", "گسسته", "فیزیک", "شیمی", "ریاضی", "آمار"},
			"انسانی": {"فلسفه", "جامعه‌شناسی", "روانشناسی", "اقتصاد", "تاریخ", "جغرافیا", "علوم و فنون"},
		},
		GeneralSubjects: []string{"ادبیات", "عربی", "دینی", "زبان"},
		GradeOrder: map[string]int{
			"دوازدهم": 0,
			"یازدهم":  1,
			"دهم":     2,
		},
	}
}

// TrackCode returns the chapter track code for a major, or "" when the
// major has no specialized track.
func (c *Curriculum) TrackCode(majorName string) string {
	return c.MajorTrackCodes[majorName]
}

// trackPrecedence fixes the order codes are matched in when a track
// tag carries more than one ("T,R" resolves to the T major).
var trackPrecedence = []string{"T", "R", "E"}

// MajorForTrack resolves a chapter track tag to a major name by
// substring match, or "" when no known code appears in the tag.
func (c *Curriculum) MajorForTrack(track string) string {
	if track == "" {
		return ""
	}
	byCode := make(map[string]string, len(c.MajorTrackCodes))
	for major, code := range c.MajorTrackCodes {
		byCode[code] = major
	}
	for _, code := range trackPrecedence {
		major, ok := byCode[code]
		if !ok {
			continue
		}
		if strings.Contains(track, code) {
			return major
		}
	}
	return ""
}

// SubjectRank returns the recommendation rank of a subject name for the
// given major. Specialized subjects come first, then general subjects.
// Unknown subjects rank last with 999.
func (c *Curriculum) SubjectRank(majorName, subject string) int {
	specials := c.MajorSubjects[majorName]
	for i, s := range specials {
		if s == subject {
			return i
		}
	}
	for i, s := range c.GeneralSubjects {
		if s == subject {
			return len(specials) + i
		}
	}
	return 999
}

// GradeRank ranks a grade name for recommendation ordering. Unknown
// grades rank last with 999.
func (c *Curriculum) GradeRank(gradeName string) int {
	if r, ok := c.GradeOrder[gradeName]; ok {
		return r
	}
	return 999
}

// DayOffset returns the offset of a Persian day name from week start
// (شنبه = 0). ok is false for names outside the table.
func DayOffset(dayName string) (int, bool) {
	for i, d := range WeekDays {
		if d == dayName {
			return i, true
		}
	}
	return 0, false
}

// PersianDayName maps a calendar date to its Persian weekday name.
func PersianDayName(t time.Time) string {
	// time.Saturday is 6; rotate so Saturday maps to index 0.
	return WeekDays[(int(t.Weekday())+1)%7]
}

// WeekStartFor returns the شنبه that begins the week containing t,
// truncated to midnight in t's location.
func WeekStartFor(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 1) % 7
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -offset)
}
