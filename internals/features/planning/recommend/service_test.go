// file: internals/features/planning/recommend/service_test.go
package recommend

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moshaverino_backend/internals/features/planning/curriculum"
	"moshaverino_backend/internals/testutil"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewTestDB(t), curriculum.Default())
}

func lessonNames(items []LessonItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.LessonName)
	}
	return names
}

func TestRecommend_BucketsAndOrder(t *testing.T) {
	s := newService(t)
	student := testutil.SeedStudent(t, s.DB, "ریاضی", "یازدهم")

	grade12 := testutil.SeedGrade(t, s.DB, "دوازدهم")
	grade11 := testutil.SeedGrade(t, s.DB, "یازدهم")
	grade10 := testutil.SeedGrade(t, s.DB, "دهم")

	// specialized: حسابان ranks before فیزیک, and within فیزیک the
	// twelfth grade comes before the tenth
	hesaban := testutil.SeedLesson(t, s.DB, "حسابان", &grade11.GradeID)
	physics12 := testutil.SeedLesson(t, s.DB, "فیزیک", &grade12.GradeID)
	physics10 := testutil.SeedLesson(t, s.DB, "فیزیک", &grade10.GradeID)

	// general: its chapters carry the student's own track code
	adab := testutil.SeedLesson(t, s.DB, "ادبیات", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, adab.LessonID, 1, "فصل اول", testutil.StrPtr("R"))

	// foreign track: neither specialized nor general for this student
	zist := testutil.SeedLesson(t, s.DB, "زیست", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, zist.LessonID, 1, "فصل اول", testutil.StrPtr("T"))

	res, err := s.Recommend(student.StudentID)
	require.NoError(t, err)

	assert.Equal(t, "R", res.MajorTrackCode)
	assert.Equal(t, []string{"حسابان", "فیزیک", "فیزیک"}, lessonNames(res.Specialized))
	require.Len(t, res.Specialized, 3)
	assert.Equal(t, hesaban.LessonID, res.Specialized[0].LessonID)
	assert.Equal(t, physics12.LessonID, res.Specialized[1].LessonID)
	assert.Equal(t, physics10.LessonID, res.Specialized[2].LessonID)

	assert.Equal(t, []string{"ادبیات"}, lessonNames(res.General))

	// زیست must not leak into either bucket
	for _, it := range append(res.Specialized, res.General...) {
		assert.NotEqual(t, zist.LessonID, it.LessonID)
	}
}

func TestRecommend_StudentNotFound(t *testing.T) {
	s := newService(t)

	_, err := s.Recommend(uuid.New())
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRecommend_UnknownMajor(t *testing.T) {
	s := newService(t)
	student := testutil.SeedStudent(t, s.DB, "هنر", "یازدهم")

	_, err := s.Recommend(student.StudentID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)
}

func TestListForStudent_RequiresTrackedChapter(t *testing.T) {
	s := newService(t)
	student := testutil.SeedStudent(t, s.DB, "ریاضی", "یازدهم")

	grade11 := testutil.SeedGrade(t, s.DB, "یازدهم")

	// specialized with a tracked chapter: kept
	hesaban := testutil.SeedLesson(t, s.DB, "حسابان", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, hesaban.LessonID, 1, "توابع", testutil.StrPtr("R"))

	// specialized without any chapter: dropped in the strict variant
	testutil.SeedLesson(t, s.DB, "هندسه", &grade11.GradeID)

	// non-specialized with a multi-code track tag containing R: general
	adab := testutil.SeedLesson(t, s.DB, "ادبیات", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, adab.LessonID, 1, "فصل اول", testutil.StrPtr("T,R"))

	// foreign track only: dropped
	zist := testutil.SeedLesson(t, s.DB, "زیست", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, zist.LessonID, 1, "فصل اول", testutil.StrPtr("T"))

	res, err := s.ListForStudent(student.StudentID)
	require.NoError(t, err)

	assert.Equal(t, []string{"حسابان"}, lessonNames(res.Specialized))
	assert.Equal(t, []string{"ادبیات"}, lessonNames(res.General))
}

func TestChapters_FilterOrderDedupe(t *testing.T) {
	s := newService(t)
	grade11 := testutil.SeedGrade(t, s.DB, "یازدهم")
	lesson := testutil.SeedLesson(t, s.DB, "حسابان", &grade11.GradeID)

	testutil.SeedChapter(t, s.DB, lesson.LessonID, 2, "مشتق", testutil.StrPtr("R"))
	testutil.SeedChapter(t, s.DB, lesson.LessonID, 1, "توابع", testutil.StrPtr("R"))
	// duplicate (number, name) pair collapses to the first occurrence
	testutil.SeedChapter(t, s.DB, lesson.LessonID, 2, "مشتق", testutil.StrPtr("R"))
	// other track is filtered out
	testutil.SeedChapter(t, s.DB, lesson.LessonID, 3, "انتگرال", testutil.StrPtr("T"))

	opts, err := s.Chapters(lesson.LessonID, grade11.GradeID, "R")
	require.NoError(t, err)
	require.Len(t, opts, 2)
	assert.Equal(t, "1 - توابع", opts[0].Text)
	assert.Equal(t, "2 - مشتق", opts[1].Text)
}

func TestChapters_GradeMismatchIsEmpty(t *testing.T) {
	s := newService(t)
	grade11 := testutil.SeedGrade(t, s.DB, "یازدهم")
	grade12 := testutil.SeedGrade(t, s.DB, "دوازدهم")
	lesson := testutil.SeedLesson(t, s.DB, "حسابان", &grade11.GradeID)
	testutil.SeedChapter(t, s.DB, lesson.LessonID, 1, "توابع", testutil.StrPtr("R"))

	opts, err := s.Chapters(lesson.LessonID, grade12.GradeID, "R")
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestChapters_LessonNotFound(t *testing.T) {
	s := newService(t)

	_, err := s.Chapters(uuid.New(), uuid.New(), "R")
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
