// file: internals/features/planning/curriculum/curriculum_test.go
package curriculum

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOffset(t *testing.T) {
	off, ok := DayOffset("شنبه")
	require.True(t, ok)
	assert.Equal(t, 0, off)

	off, ok = DayOffset("جمعه")
	require.True(t, ok)
	assert.Equal(t, 6, off)

	_, ok = DayOffset("saturday")
	assert.False(t, ok)
}

func TestPersianDayName(t *testing.T) {
	// 2024-01-20 is a Saturday.
	saturday := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "شنبه", PersianDayName(saturday))
	assert.Equal(t, "یکشنبه", PersianDayName(saturday.AddDate(0, 0, 1)))
	assert.Equal(t, "دوشنبه", PersianDayName(saturday.AddDate(0, 0, 2)))
	assert.Equal(t, "جمعه", PersianDayName(saturday.AddDate(0, 0, 6)))
	assert.Equal(t, "شنبه", PersianDayName(saturday.AddDate(0, 0, 7)))
}

func TestWeekStartFor(t *testing.T) {
	saturday := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)

	// any day of that week maps back to the same شنبه, at midnight
	for i := 0; i < 7; i++ {
		d := saturday.AddDate(0, 0, i).Add(13 * time.Hour)
		assert.Equal(t, saturday, WeekStartFor(d), "offset %d", i)
	}
	assert.Equal(t, saturday.AddDate(0, 0, 7), WeekStartFor(saturday.AddDate(0, 0, 7)))
}

func TestTrackCodeAndMajorForTrack(t *testing.T) {
	cur := Default()

	assert.Equal(t, "T", cur.TrackCode("تجربی"))
	assert.Equal(t, "R", cur.TrackCode("ریاضی"))
	assert.Equal(t, "E", cur.TrackCode("انسانی"))
	assert.Equal(t, "", cur.TrackCode("هنر"))

	assert.Equal(t, "تجربی", cur.MajorForTrack("T3"))
	assert.Equal(t, "ریاضی", cur.MajorForTrack("R"))
	assert.Equal(t, "انسانی", cur.MajorForTrack("E1"))
	assert.Equal(t, "", cur.MajorForTrack(""))
	assert.Equal(t, "", cur.MajorForTrack("X"))

	// a multi-code tag resolves in T, R, E order
	assert.Equal(t, "تجربی", cur.MajorForTrack("T,R"))
	assert.Equal(t, "ریاضی", cur.MajorForTrack("R,E"))
}

func TestSubjectRank(t *testing.T) {
	cur := Default()

	// specialized subjects rank by their position in the major's list
	assert.Equal(t, 0, cur.SubjectRank("تجربی", "زیست"))
	assert.Equal(t, 1, cur.SubjectRank("تجربی", "شیمی"))
	assert.Equal(t, 0, cur.SubjectRank("ریاضی", "حسابان"))

	// general subjects rank after every specialized one
	specials := len(cur.MajorSubjects["تجربی"])
	assert.Equal(t, specials, cur.SubjectRank("تجربی", "ادبیات"))
	assert.Equal(t, specials+3, cur.SubjectRank("تجربی", "زبان"))

	assert.Equal(t, 999, cur.SubjectRank("تجربی", "نقاشی"))
}

func TestGradeRank(t *testing.T) {
	cur := Default()

	// the highest grade ranks first; the order is not chronological
	assert.Equal(t, 0, cur.GradeRank("دوازدهم"))
	assert.Equal(t, 1, cur.GradeRank("یازدهم"))
	assert.Equal(t, 2, cur.GradeRank("دهم"))
	assert.Equal(t, 999, cur.GradeRank("نهم"))
}
