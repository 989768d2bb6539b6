// file: internals/features/planning/recommend/service.go

// Package recommend partitions the lesson catalog into specialized and
// general buckets for a student and orders each bucket by the
// curriculum's subject and grade priorities.
package recommend

import (
	"sort"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	catalogModel "moshaverino_backend/internals/features/catalog/model"
	"moshaverino_backend/internals/features/planning/curriculum"
)

type Service struct {
	DB  *gorm.DB
	Cur *curriculum.Curriculum
}

func NewService(db *gorm.DB, cur *curriculum.Curriculum) *Service {
	return &Service{DB: db, Cur: cur}
}

/* =========================================================
   Result shapes
========================================================= */

type LessonItem struct {
	LessonID   uuid.UUID  `json:"lesson_id"`
	LessonName string     `json:"lesson_name"`
	GradeID    *uuid.UUID `json:"grade_id,omitempty"`
	GradeName  string     `json:"grade_name"`
}

type Result struct {
	MajorTrackCode string       `json:"major_track_code"`
	Specialized    []LessonItem `json:"specialized_lessons"`
	General        []LessonItem `json:"general_lessons"`
}

type ChapterOption struct {
	ChapterID uuid.UUID `json:"chapter_id"`
	Text      string    `json:"text"`
}

/* =========================================================
   Recommend / ListForStudent
========================================================= */

// Recommend buckets every lesson in the catalog for the student. A
// lesson is specialized when its name appears in the major's subject
// list, and general when its chapters' track tags resolve to the
// student's own major. Everything else is dropped.
func (s *Service) Recommend(studentID uuid.UUID) (*Result, error) {
	student, trackCode, err := s.loadStudent(studentID)
	if err != nil {
		return nil, err
	}

	lessons, gradeNames, trackByLesson, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	majorName := student.Major.MajorName
	majorList := s.Cur.MajorSubjects[majorName]

	var specialized, general []catalogModel.LessonModel
	for _, lesson := range lessons {
		if nameInList(lesson.LessonName, majorList) {
			specialized = append(specialized, lesson)
			continue
		}
		if s.Cur.MajorForTrack(trackByLesson[lesson.LessonID]) == majorName {
			general = append(general, lesson)
		}
	}

	s.sortLessons(specialized, majorName, gradeNames)
	s.sortLessons(general, majorName, gradeNames)

	return &Result{
		MajorTrackCode: trackCode,
		Specialized:    toItems(specialized, gradeNames),
		General:        toItems(general, gradeNames),
	}, nil
}

// ListForStudent is the strict variant: a lesson is only considered at
// all when at least one of its chapters carries the student's track
// code. Qualifying lessons are then split by subject-list membership.
func (s *Service) ListForStudent(studentID uuid.UUID) (*Result, error) {
	student, trackCode, err := s.loadStudent(studentID)
	if err != nil {
		return nil, err
	}

	lessons, gradeNames, _, err := s.loadCatalog()
	if err != nil {
		return nil, err
	}

	trackedLessons, err := s.lessonsWithTrack(trackCode)
	if err != nil {
		return nil, err
	}

	majorName := student.Major.MajorName
	majorList := s.Cur.MajorSubjects[majorName]

	var specialized, general []catalogModel.LessonModel
	for _, lesson := range lessons {
		if !trackedLessons[lesson.LessonID] {
			continue
		}
		if nameInList(lesson.LessonName, majorList) {
			specialized = append(specialized, lesson)
		} else {
			general = append(general, lesson)
		}
	}

	s.sortLessons(specialized, majorName, gradeNames)
	s.sortLessons(general, majorName, gradeNames)

	return &Result{
		MajorTrackCode: trackCode,
		Specialized:    toItems(specialized, gradeNames),
		General:        toItems(general, gradeNames),
	}, nil
}

// Chapters lists the chapters of a lesson in the given grade, filtered
// by track code when one is supplied, ordered by chapter number with
// duplicate (number, name) pairs collapsed to the first occurrence.
func (s *Service) Chapters(lessonID, gradeID uuid.UUID, trackCode string) ([]ChapterOption, error) {
	var lesson catalogModel.LessonModel
	if err := s.DB.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "درس مورد نظر یافت نشد")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی درس")
	}
	if lesson.LessonGradeID == nil || *lesson.LessonGradeID != gradeID {
		return []ChapterOption{}, nil
	}

	q := s.DB.Where("chapter_lesson_id = ?", lessonID)
	if trackCode != "" {
		q = q.Where("chapter_track LIKE ?", "%"+trackCode+"%")
	}

	var chapters []catalogModel.ChapterModel
	if err := q.Order("chapter_number asc").Find(&chapters).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی فصل‌ها")
	}

	type key struct {
		number int
		name   string
	}
	seen := map[key]bool{}
	out := make([]ChapterOption, 0, len(chapters))
	for _, ch := range chapters {
		k := key{ch.ChapterNumber, ch.ChapterName}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, ChapterOption{
			ChapterID: ch.ChapterID,
			Text:      strconv.Itoa(ch.ChapterNumber) + " - " + ch.ChapterName,
		})
	}
	return out, nil
}

/* =========================================================
   internals
========================================================= */

func (s *Service) loadStudent(studentID uuid.UUID) (*studentModel.StudentModel, string, error) {
	var student studentModel.StudentModel
	err := s.DB.
		Preload("Major").
		Preload("Grade").
		First(&student, "student_id = ?", studentID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", fiber.NewError(fiber.StatusNotFound, "دانش‌آموز یافت نشد")
		}
		return nil, "", fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموز")
	}
	if student.Major == nil || student.Grade == nil {
		return nil, "", fiber.NewError(fiber.StatusUnprocessableEntity, "رشته یا پایه دانش‌آموز ثبت نشده است")
	}
	trackCode := s.Cur.TrackCode(student.Major.MajorName)
	if trackCode == "" {
		return nil, "", fiber.NewError(fiber.StatusUnprocessableEntity, "رشته تحصیلی دانش‌آموز ناشناخته است")
	}
	return &student, trackCode, nil
}

// loadCatalog fetches every lesson that has a grade, the grade-name
// lookup table, and the track tag of each lesson's first chapter.
func (s *Service) loadCatalog() ([]catalogModel.LessonModel, map[uuid.UUID]string, map[uuid.UUID]string, error) {
	var lessons []catalogModel.LessonModel
	if err := s.DB.Where("lesson_grade_id IS NOT NULL").Find(&lessons).Error; err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دروس")
	}

	var grades []studentModel.GradeModel
	if err := s.DB.Find(&grades).Error; err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی پایه‌ها")
	}
	gradeNames := make(map[uuid.UUID]string, len(grades))
	for _, g := range grades {
		gradeNames[g.GradeID] = g.GradeName
	}

	var chapters []catalogModel.ChapterModel
	if err := s.DB.Order("chapter_number asc").Find(&chapters).Error; err != nil {
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی فصل‌ها")
	}
	trackByLesson := make(map[uuid.UUID]string)
	for _, ch := range chapters {
		if _, ok := trackByLesson[ch.ChapterLessonID]; ok {
			continue
		}
		if ch.ChapterTrack != nil {
			trackByLesson[ch.ChapterLessonID] = *ch.ChapterTrack
		} else {
			trackByLesson[ch.ChapterLessonID] = ""
		}
	}

	return lessons, gradeNames, trackByLesson, nil
}

// lessonsWithTrack returns the set of lesson ids having at least one
// chapter whose track tag contains the given code.
func (s *Service) lessonsWithTrack(trackCode string) (map[uuid.UUID]bool, error) {
	var ids []uuid.UUID
	err := s.DB.Model(&catalogModel.ChapterModel{}).
		Where("chapter_track LIKE ?", "%"+trackCode+"%").
		Distinct().
		Pluck("chapter_lesson_id", &ids).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی فصل‌ها")
	}
	set := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// sortLessons orders a bucket by (subject rank, grade rank). The
// shared SubjectRank table places specialized subjects before general
// ones, which collapses to a plain index order inside either bucket.
func (s *Service) sortLessons(lessons []catalogModel.LessonModel, majorName string, gradeNames map[uuid.UUID]string) {
	rank := func(l catalogModel.LessonModel) (int, int) {
		subjectIdx := s.Cur.SubjectRank(majorName, l.LessonName)
		gradeIdx := 999
		if l.LessonGradeID != nil {
			gradeIdx = s.Cur.GradeRank(gradeNames[*l.LessonGradeID])
		}
		return subjectIdx, gradeIdx
	}
	sort.SliceStable(lessons, func(i, j int) bool {
		si, gi := rank(lessons[i])
		sj, gj := rank(lessons[j])
		if si != sj {
			return si < sj
		}
		return gi < gj
	})
}

func nameInList(name string, list []string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}

func toItems(lessons []catalogModel.LessonModel, gradeNames map[uuid.UUID]string) []LessonItem {
	items := make([]LessonItem, 0, len(lessons))
	for _, l := range lessons {
		gradeName := ""
		if l.LessonGradeID != nil {
			gradeName = gradeNames[*l.LessonGradeID]
		}
		items = append(items, LessonItem{
			LessonID:   l.LessonID,
			LessonName: l.LessonName,
			GradeID:    l.LessonGradeID,
			GradeName:  gradeName,
		})
	}
	return items
}
