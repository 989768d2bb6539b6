// file: internals/features/courses/controller/course_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/courses/model"
	"moshaverino_backend/internals/testutil"
)

func newCourseApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctl := NewCourseController(db)

	app := fiber.New()
	app.Post("/assign", ctl.AssignStudent)
	return app, db
}

func postAssign(t *testing.T, app *fiber.App, payload any) int {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/assign", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAssignStudent_CreatesCourseWithFourWeeklySessions(t *testing.T) {
	app, db := newCourseApp(t)
	student := testutil.SeedStudent(t, db, "تجربی", "یازدهم")
	advisor := testutil.SeedAdvisor(t, db, "مشاور", "اول")

	status := postAssign(t, app, fiber.Map{
		"student_id": student.StudentID,
		"advisor_id": advisor.AdvisorID,
		"day_of_week": "شنبه",
		"start_time": "10:00",
		"start_date": "2024-01-20",
	})
	require.Equal(t, fiber.StatusCreated, status)

	// the student is now bound to the advisor
	require.NoError(t, db.First(student, "student_id = ?", student.StudentID).Error)
	require.NotNil(t, student.StudentAdvisorID)
	assert.Equal(t, advisor.AdvisorID, *student.StudentAdvisorID)

	var course model.CourseModel
	require.NoError(t, db.First(&course, "course_student_id = ?", student.StudentID).Error)
	assert.Equal(t, "شنبه", course.CourseDayOfWeek)
	assert.Equal(t, "10:00", course.CourseStartTime)
	assert.True(t, course.CourseIsActive)

	var sessions []model.SessionModel
	require.NoError(t, db.
		Where("session_course_id = ?", course.CourseID).
		Order("session_number asc").
		Find(&sessions).Error)
	require.Len(t, sessions, 4)
	for i, s := range sessions {
		assert.Equal(t, i+1, s.SessionNumber)
		// sessions run seven days apart starting at the course date
		wantDate := course.CourseStartDate.AddDate(0, 0, 7*i)
		assert.Equal(t, wantDate.Format("2006-01-02"), s.SessionDate.UTC().Format("2006-01-02"))
		assert.False(t, s.SessionIsCompleted)
	}
}

func TestAssignStudent_UnknownStudentRollsBack(t *testing.T) {
	app, db := newCourseApp(t)
	advisor := testutil.SeedAdvisor(t, db, "مشاور", "اول")

	status := postAssign(t, app, fiber.Map{
		"student_id": uuid.New(),
		"advisor_id": advisor.AdvisorID,
		"day_of_week": "شنبه",
		"start_time": "10:00",
		"start_date": "2024-01-20",
	})
	assert.Equal(t, fiber.StatusNotFound, status)

	var n int64
	require.NoError(t, db.Model(&model.CourseModel{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestAssignStudent_RejectsBadInput(t *testing.T) {
	app, db := newCourseApp(t)
	student := testutil.SeedStudent(t, db, "تجربی", "یازدهم")
	advisor := testutil.SeedAdvisor(t, db, "مشاور", "اول")

	// English weekday name fails validation
	status := postAssign(t, app, fiber.Map{
		"student_id": student.StudentID,
		"advisor_id": advisor.AdvisorID,
		"day_of_week": "saturday",
		"start_time": "10:00",
		"start_date": "2024-01-20",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)

	// malformed start time
	status = postAssign(t, app, fiber.Map{
		"student_id": student.StudentID,
		"advisor_id": advisor.AdvisorID,
		"day_of_week": "شنبه",
		"start_time": "ten o'clock",
		"start_date": "2024-01-20",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}
