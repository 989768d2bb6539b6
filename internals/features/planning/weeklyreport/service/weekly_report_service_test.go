// file: internals/features/planning/weeklyreport/service/weekly_report_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	"moshaverino_backend/internals/features/planning/curriculum"
	"moshaverino_backend/internals/features/planning/weeklyreport/dto"
	"moshaverino_backend/internals/features/planning/weeklyreport/model"
	"moshaverino_backend/internals/testutil"
)

// Week of Saturday 2024-01-20.
const (
	testWeekStart = "2024-01-20T00:00:00"
	testWeekEnd   = "2024-01-26T00:00:00"
)

var testActor = Actor{Name: "tester"}

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(testutil.NewTestDB(t), curriculum.Default())
}

type fixture struct {
	svc     *Service
	student *studentModel.StudentModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	svc := newService(t)
	testutil.SeedBoxType(t, svc.DB, "مطالعه", false)
	testutil.SeedBoxType(t, svc.DB, curriculum.EventBoxTypeName, true)
	return &fixture{
		svc:     svc,
		student: testutil.SeedStudent(t, svc.DB, "تجربی", "یازدهم"),
	}
}

func (f *fixture) saveReq(days ...dto.DayRequest) *dto.SaveWeeklyReportRequest {
	return &dto.SaveWeeklyReportRequest{
		StudentID: f.student.StudentID,
		WeekStart: testWeekStart,
		WeekEnd:   testWeekEnd,
		Days:      days,
	}
}

func studyTask(start, end string) dto.TaskRequest {
	return dto.TaskRequest{
		BoxType:         "مطالعه",
		Title:           "مرور",
		Start:           start,
		End:             end,
		DurationMinutes: 90,
	}
}

func (f *fixture) countRows(t *testing.T, value any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.svc.DB.Model(value).Count(&n).Error)
	return n
}

func (f *fixture) logActions(t *testing.T, reportID uuid.UUID) []string {
	t.Helper()
	var logs []model.WeeklyReportLogModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_log_report_id = ?", reportID).
		Order("weekly_report_log_created_at asc, weekly_report_log_id asc").
		Find(&logs).Error)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.WeeklyReportLogAction)
	}
	return actions
}

func (f *fixture) loadReport(t *testing.T) *model.WeeklyReportModel {
	t.Helper()
	var report model.WeeklyReportModel
	require.NoError(t, f.svc.DB.
		First(&report, "weekly_report_student_id = ?", f.student.StudentID).Error)
	return &report
}

/* =========================================================
   Save
========================================================= */

func TestSave_FirstSaveCreatesReportDetailsAndLogs(t *testing.T) {
	f := newFixture(t)

	req := f.saveReq(
		dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:30:00")}},
		dto.DayRequest{Day: "دوشنبه", Tasks: []dto.TaskRequest{studyTask("10:00", "11:00")}},
	)
	require.NoError(t, f.svc.Save(req, testActor))

	assert.EqualValues(t, 1, f.countRows(t, &model.WeeklyReportModel{}))
	report := f.loadReport(t)

	var details []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", report.WeeklyReportID).
		Order("weekly_report_detail_start_time asc").
		Find(&details).Error)
	require.Len(t, details, 2)

	// the detail timestamps combine week start, weekday offset and time of day
	assert.Equal(t, "2024-01-20T08:00:00",
		details[0].WeeklyReportDetailStartTime.UTC().Format("2006-01-02T15:04:05"))
	assert.Equal(t, "2024-01-20T09:30:00",
		details[0].WeeklyReportDetailEndTime.UTC().Format("2006-01-02T15:04:05"))
	assert.Equal(t, "شنبه", details[0].WeeklyReportDetailDayOfWeek)

	assert.Equal(t, "2024-01-22T10:00:00",
		details[1].WeeklyReportDetailStartTime.UTC().Format("2006-01-02T15:04:05"))
	assert.Equal(t, "دوشنبه", details[1].WeeklyReportDetailDayOfWeek)

	assert.ElementsMatch(t, []string{LogReportCreated, LogDetailsSaved}, f.logActions(t, report.WeeklyReportID))
}

func TestSave_ResaveReplacesDetailsAndAppendsLogs(t *testing.T) {
	f := newFixture(t)

	first := f.saveReq(
		dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{
			studyTask("08:00:00", "09:00:00"),
			studyTask("09:00:00", "10:00:00"),
		}},
	)
	require.NoError(t, f.svc.Save(first, testActor))

	second := f.saveReq(
		dto.DayRequest{Day: "یکشنبه", Disabled: false, Tasks: []dto.TaskRequest{studyTask("14:00:00", "15:00:00")}},
		dto.DayRequest{Day: "جمعه", Disabled: true},
	)
	second.ImportantEvents = "کنکور آزمایشی"
	require.NoError(t, f.svc.Save(second, testActor))

	// still one report row for the (student, week) pair
	assert.EqualValues(t, 1, f.countRows(t, &model.WeeklyReportModel{}))
	report := f.loadReport(t)
	assert.Equal(t, "جمعه", report.WeeklyReportDisabledDays)
	assert.Equal(t, "کنکور آزمایشی", report.WeeklyReportImportantEvents)

	// the old details are gone, only the new day remains
	var details []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", report.WeeklyReportID).
		Find(&details).Error)
	require.Len(t, details, 1)
	assert.Equal(t, "یکشنبه", details[0].WeeklyReportDetailDayOfWeek)

	assert.ElementsMatch(t,
		[]string{LogReportCreated, LogDetailsSaved, LogReportUpdated, LogDetailsSaved},
		f.logActions(t, report.WeeklyReportID))
}

func TestSave_LostCreateRaceFallsBackToUpdate(t *testing.T) {
	f := newFixture(t)

	weekStart, err := dto.ParseISODateTime(testWeekStart)
	require.NoError(t, err)
	weekEnd, err := dto.ParseISODateTime(testWeekEnd)
	require.NoError(t, err)

	// slip a rival report for the same (student, week) into the
	// transaction right before the insert runs, so the insert hits the
	// unique index and affects no rows
	raced := false
	err = f.svc.DB.Callback().Create().Before("gorm:create").Register("rival_first_save", func(tx *gorm.DB) {
		if raced {
			return
		}
		if _, ok := tx.Statement.Dest.(*model.WeeklyReportModel); !ok {
			return
		}
		raced = true
		rival := model.WeeklyReportModel{
			WeeklyReportStudentID:       f.student.StudentID,
			WeeklyReportWeekStart:       weekStart,
			WeeklyReportWeekEnd:         weekEnd,
			WeeklyReportImportantEvents: "ثبت‌شده توسط مشاور دیگر",
		}
		require.NoError(t, tx.Session(&gorm.Session{NewDB: true}).Create(&rival).Error)
	})
	require.NoError(t, err)
	t.Cleanup(func() { f.svc.DB.Callback().Create().Remove("rival_first_save") })

	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:30:00")}})
	req.ImportantEvents = "برنامه نهایی"
	require.NoError(t, f.svc.Save(req, testActor))
	require.True(t, raced)

	// the losing save lands as an update on the winner's row
	assert.EqualValues(t, 1, f.countRows(t, &model.WeeklyReportModel{}))
	report := f.loadReport(t)
	assert.Equal(t, "برنامه نهایی", report.WeeklyReportImportantEvents)

	var details []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", report.WeeklyReportID).
		Find(&details).Error)
	assert.Len(t, details, 1)

	actions := f.logActions(t, report.WeeklyReportID)
	assert.ElementsMatch(t, []string{LogReportUpdated, LogDetailsSaved}, actions)
	assert.NotContains(t, actions, LogReportCreated)
}

func TestSave_MidWeekTimestampKeysTheSameWeek(t *testing.T) {
	f := newFixture(t)

	first := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:00:00")}})
	require.NoError(t, f.svc.Save(first, testActor))

	// a re-save stamped mid-week must update the same row, not open a
	// second report for the week
	second := f.saveReq(dto.DayRequest{Day: "یکشنبه", Tasks: []dto.TaskRequest{studyTask("14:00:00", "15:00:00")}})
	second.WeekStart = "2024-01-22T10:30:00" // دوشنبه of the same week
	require.NoError(t, f.svc.Save(second, testActor))

	assert.EqualValues(t, 1, f.countRows(t, &model.WeeklyReportModel{}))
	report := f.loadReport(t)
	assert.Equal(t, "2024-01-20",
		report.WeeklyReportWeekStart.UTC().Format("2006-01-02"))

	// details are anchored on the normalized شنبه
	var details []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", report.WeeklyReportID).
		Find(&details).Error)
	require.Len(t, details, 1)
	assert.Equal(t, "2024-01-21T14:00:00",
		details[0].WeeklyReportDetailStartTime.UTC().Format("2006-01-02T15:04:05"))
}

func TestSave_EventTaskDropsLessonAndCounts(t *testing.T) {
	f := newFixture(t)
	grade := testutil.SeedGrade(t, f.svc.DB, "یازدهم")
	lesson := testutil.SeedLesson(t, f.svc.DB, "زیست", &grade.GradeID)
	chapter := testutil.SeedChapter(t, f.svc.DB, lesson.LessonID, 1, "فصل اول", testutil.StrPtr("T"))

	task := dto.TaskRequest{
		BoxType:            curriculum.EventBoxTypeName,
		Title:              "جلسه مشاوره",
		Start:              "18:00:00",
		End:                "19:00:00",
		LessonID:           &lesson.LessonID,
		ChapterID:          &chapter.ChapterID,
		OptionalTestsCount: 10,
		DurationMinutes:    60,
	}
	req := f.saveReq(dto.DayRequest{Day: "سه‌شنبه", Tasks: []dto.TaskRequest{task}})
	require.NoError(t, f.svc.Save(req, testActor))

	var box model.BoxModel
	require.NoError(t, f.svc.DB.First(&box).Error)
	assert.Nil(t, box.BoxLessonID)
	assert.Nil(t, box.BoxChapterID)
	assert.Zero(t, box.BoxOptionalTestsCount)
	assert.Zero(t, box.BoxDurationMinutes)
	assert.True(t, box.BoxIsDefault)
	assert.Equal(t, "جلسه مشاوره", box.BoxName)
}

func TestSave_DanglingChapterIsStoredAsNull(t *testing.T) {
	f := newFixture(t)
	grade := testutil.SeedGrade(t, f.svc.DB, "یازدهم")
	lesson := testutil.SeedLesson(t, f.svc.DB, "زیست", &grade.GradeID)

	gone := uuid.New()
	task := studyTask("08:00:00", "09:00:00")
	task.LessonID = &lesson.LessonID
	task.ChapterID = &gone

	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{task}})
	require.NoError(t, f.svc.Save(req, testActor))

	var box model.BoxModel
	require.NoError(t, f.svc.DB.First(&box).Error)
	require.NotNil(t, box.BoxLessonID)
	assert.Equal(t, lesson.LessonID, *box.BoxLessonID)
	assert.Nil(t, box.BoxChapterID)
}

func TestSave_UnknownLessonRollsBackEverything(t *testing.T) {
	f := newFixture(t)

	gone := uuid.New()
	task := studyTask("08:00:00", "09:00:00")
	task.LessonID = &gone

	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{task}})
	err := f.svc.Save(req, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// the whole save is one transaction: not even the report survives
	assert.EqualValues(t, 0, f.countRows(t, &model.WeeklyReportModel{}))
	assert.EqualValues(t, 0, f.countRows(t, &model.WeeklyReportLogModel{}))
}

func TestSave_RejectsUnknownDayName(t *testing.T) {
	f := newFixture(t)

	req := f.saveReq(dto.DayRequest{Day: "saturday", Tasks: []dto.TaskRequest{studyTask("08:00", "09:00")}})
	err := f.svc.Save(req, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestSave_UnknownBoxType(t *testing.T) {
	f := newFixture(t)

	task := studyTask("08:00", "09:00")
	task.BoxType = "ناموجود"
	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{task}})

	err := f.svc.Save(req, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
	assert.Contains(t, fe.Message, "ناموجود")
}

/* =========================================================
   Lookup / Details / Latest
========================================================= */

func TestLookupForDate(t *testing.T) {
	f := newFixture(t)
	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00", "09:00")}})
	require.NoError(t, f.svc.Save(req, testActor))

	// a date inside the stored week
	res, err := f.svc.LookupForDate(f.student.StudentID, time.Date(2024, 1, 22, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "current", res.Exists)
	require.NotNil(t, res.WeekStart)
	assert.Equal(t, "2024-01-20", *res.WeekStart)
	assert.Equal(t, "2024-01-26", *res.WeekEnd)

	// a date before the stored week sees it as the next planned one
	res, err = f.svc.LookupForDate(f.student.StudentID, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "future", res.Exists)
	require.NotNil(t, res.WeekStart)
	assert.Equal(t, "2024-01-20", *res.WeekStart)

	// a date after every stored week finds nothing
	res, err = f.svc.LookupForDate(f.student.StudentID, time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "none", res.Exists)
	assert.Nil(t, res.WeekStart)
}

func TestDetails_ReturnsTasksAndLogsTheRead(t *testing.T) {
	f := newFixture(t)
	grade := testutil.SeedGrade(t, f.svc.DB, "یازدهم")
	lesson := testutil.SeedLesson(t, f.svc.DB, "زیست", &grade.GradeID)

	task := studyTask("08:00:00", "09:30:00")
	task.LessonID = &lesson.LessonID
	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{task}})
	require.NoError(t, f.svc.Save(req, testActor))

	weekStart := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	res, err := f.svc.Details(f.student.StudentID, weekStart, testActor)
	require.NoError(t, err)
	require.Len(t, res.Tasks, 1)
	got := res.Tasks[0]
	assert.Equal(t, "مطالعه", got.BoxType)
	assert.Equal(t, "2024-01-20T08:00:00", got.StartTime)
	assert.Equal(t, "2024-01-20", got.Date)
	assert.Equal(t, "شنبه", got.DayOfWeek)
	require.NotNil(t, got.LessonName)
	assert.Equal(t, "زیست", *got.LessonName)

	// a mid-week timestamp resolves to the same report
	midWeek, err := f.svc.Details(f.student.StudentID, weekStart.AddDate(0, 0, 3).Add(9*time.Hour), testActor)
	require.NoError(t, err)
	assert.Len(t, midWeek.Tasks, 1)

	report := f.loadReport(t)
	actions := f.logActions(t, report.WeeklyReportID)
	assert.Contains(t, actions, LogReportLoaded)
}

func TestDetails_MissingReportIsEmptyNotError(t *testing.T) {
	f := newFixture(t)

	res, err := f.svc.Details(f.student.StudentID, time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), testActor)
	require.NoError(t, err)
	assert.Empty(t, res.Tasks)
	assert.Empty(t, res.ImportantEvents)
}

func TestLatestLessonTasks_UsesNewestReportAndSkipsEvents(t *testing.T) {
	f := newFixture(t)
	grade := testutil.SeedGrade(t, f.svc.DB, "یازدهم")
	biology := testutil.SeedLesson(t, f.svc.DB, "زیست", &grade.GradeID)
	chemistry := testutil.SeedLesson(t, f.svc.DB, "شیمی", &grade.GradeID)

	// older week
	oldTask := studyTask("08:00:00", "09:00:00")
	oldTask.LessonID = &biology.LessonID
	oldReq := &dto.SaveWeeklyReportRequest{
		StudentID: f.student.StudentID,
		WeekStart: "2024-01-13T00:00:00",
		WeekEnd:   "2024-01-19T00:00:00",
		Days:      []dto.DayRequest{{Day: "شنبه", Tasks: []dto.TaskRequest{oldTask}}},
	}
	require.NoError(t, f.svc.Save(oldReq, testActor))

	// newest week: one lesson task on دوشنبه plus one event
	newTask := studyTask("10:00:00", "11:00:00")
	newTask.LessonID = &chemistry.LessonID
	event := dto.TaskRequest{
		BoxType: curriculum.EventBoxTypeName,
		Title:   "کلاس زبان",
		Start:   "18:00:00",
		End:     "19:00:00",
	}
	newReq := f.saveReq(dto.DayRequest{Day: "دوشنبه", Tasks: []dto.TaskRequest{newTask, event}})
	require.NoError(t, f.svc.Save(newReq, testActor))

	tasks, err := f.svc.LatestLessonTasks(f.student.StudentID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, chemistry.LessonID, tasks[0].LessonID)
	assert.Equal(t, "شیمی", tasks[0].LessonName)
	assert.Equal(t, "دوشنبه", tasks[0].DayOfWeek)
	assert.Equal(t, 90, tasks[0].DurationMinutes)
}

func TestLatestLessonTasks_NoReports(t *testing.T) {
	f := newFixture(t)

	tasks, err := f.svc.LatestLessonTasks(f.student.StudentID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

/* =========================================================
   CopyDay
========================================================= */

func TestCopyDay_CopiesWithFreshBoxesAndReplacesTargetDay(t *testing.T) {
	f := newFixture(t)
	source := f.student
	target := testutil.SeedStudent(t, f.svc.DB, "تجربی", "یازدهم")

	// two tasks on the source's شنبه
	srcReq := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{
		studyTask("08:00:00", "09:00:00"),
		studyTask("09:00:00", "10:00:00"),
	}})
	require.NoError(t, f.svc.Save(srcReq, testActor))

	// the target already has a plan on یکشنبه that must be replaced
	tgtReq := &dto.SaveWeeklyReportRequest{
		StudentID: target.StudentID,
		WeekStart: testWeekStart,
		WeekEnd:   testWeekEnd,
		Days: []dto.DayRequest{
			{Day: "یکشنبه", Tasks: []dto.TaskRequest{studyTask("20:00:00", "21:00:00")}},
		},
	}
	require.NoError(t, f.svc.Save(tgtReq, testActor))

	copied, err := f.svc.CopyDay(&dto.CopyDayRequest{
		SourceStudentID: source.StudentID,
		TargetStudentID: target.StudentID,
		SourceDate:      "2024-01-20",
		TargetDayOfWeek: "یکشنبه",
	}, nil, testActor)
	require.NoError(t, err)
	assert.Equal(t, 2, copied)

	var targetReport model.WeeklyReportModel
	require.NoError(t, f.svc.DB.
		First(&targetReport, "weekly_report_student_id = ?", target.StudentID).Error)

	var targetDetails []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", targetReport.WeeklyReportID).
		Find(&targetDetails).Error)
	require.Len(t, targetDetails, 2)

	// every copy owns a brand-new box row
	var sourceReport model.WeeklyReportModel
	require.NoError(t, f.svc.DB.
		First(&sourceReport, "weekly_report_student_id = ?", source.StudentID).Error)
	var sourceDetails []model.WeeklyReportDetailModel
	require.NoError(t, f.svc.DB.
		Where("weekly_report_detail_report_id = ?", sourceReport.WeeklyReportID).
		Find(&sourceDetails).Error)
	sourceBoxes := map[uuid.UUID]bool{}
	for _, d := range sourceDetails {
		sourceBoxes[d.WeeklyReportDetailBoxID] = true
	}
	for _, d := range targetDetails {
		assert.Equal(t, "یکشنبه", d.WeeklyReportDetailDayOfWeek)
		assert.False(t, sourceBoxes[d.WeeklyReportDetailBoxID], "box must not be shared with the source")
	}

	assert.Contains(t, f.logActions(t, targetReport.WeeklyReportID), LogDayCopied)
}

func TestCopyDay_CreatesTargetReportWhenMissing(t *testing.T) {
	f := newFixture(t)
	target := testutil.SeedStudent(t, f.svc.DB, "تجربی", "یازدهم")

	srcReq := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:00:00")}})
	require.NoError(t, f.svc.Save(srcReq, testActor))

	copied, err := f.svc.CopyDay(&dto.CopyDayRequest{
		SourceStudentID: f.student.StudentID,
		TargetStudentID: target.StudentID,
		SourceDate:      "2024-01-20",
		TargetDayOfWeek: "دوشنبه",
	}, nil, testActor)
	require.NoError(t, err)
	assert.Equal(t, 1, copied)

	var targetReport model.WeeklyReportModel
	require.NoError(t, f.svc.DB.
		First(&targetReport, "weekly_report_student_id = ?", target.StudentID).Error)
	assert.Equal(t, "2024-01-20", targetReport.WeeklyReportWeekStart.UTC().Format("2006-01-02"))
}

func TestCopyDay_EmptySourceDayIs404(t *testing.T) {
	f := newFixture(t)
	target := testutil.SeedStudent(t, f.svc.DB, "تجربی", "یازدهم")

	srcReq := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:00:00")}})
	require.NoError(t, f.svc.Save(srcReq, testActor))

	// 2024-01-23 is سه‌شنبه, which has no tasks
	_, err := f.svc.CopyDay(&dto.CopyDayRequest{
		SourceStudentID: f.student.StudentID,
		TargetStudentID: target.StudentID,
		SourceDate:      "2024-01-23",
		TargetDayOfWeek: "دوشنبه",
	}, nil, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestCopyDay_AdvisorOwnershipEnforced(t *testing.T) {
	f := newFixture(t)
	advisor := testutil.SeedAdvisor(t, f.svc.DB, "مشاور", "اول")
	other := testutil.SeedAdvisor(t, f.svc.DB, "مشاور", "دوم")
	target := testutil.SeedStudent(t, f.svc.DB, "تجربی", "یازدهم")

	testutil.AttachAdvisor(t, f.svc.DB, f.student, advisor)
	testutil.AttachAdvisor(t, f.svc.DB, target, advisor)

	srcReq := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:00:00")}})
	require.NoError(t, f.svc.Save(srcReq, testActor))

	copyReq := &dto.CopyDayRequest{
		SourceStudentID: f.student.StudentID,
		TargetStudentID: target.StudentID,
		SourceDate:      "2024-01-20",
		TargetDayOfWeek: "یکشنبه",
	}

	// an advisor who owns neither student is rejected
	_, err := f.svc.CopyDay(copyReq, &other.AdvisorID, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusForbidden, fe.Code)

	// the owning advisor goes through
	copied, err := f.svc.CopyDay(copyReq, &advisor.AdvisorID, testActor)
	require.NoError(t, err)
	assert.Equal(t, 1, copied)
}

/* =========================================================
   DefaultEvents / Summary / log
========================================================= */

func TestDefaultEvents(t *testing.T) {
	f := newFixture(t)

	event := dto.TaskRequest{
		BoxType: curriculum.EventBoxTypeName,
		Title:   "کلاس زبان",
		Start:   "18:00:00",
		End:     "19:30:00",
	}
	req := f.saveReq(dto.DayRequest{Day: "سه‌شنبه", Tasks: []dto.TaskRequest{
		event,
		studyTask("08:00:00", "09:00:00"),
	}})
	require.NoError(t, f.svc.Save(req, testActor))

	events, err := f.svc.DefaultEvents(f.student.StudentID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "کلاس زبان", events[0].Name)
	assert.Equal(t, "سه‌شنبه", events[0].DayOfWeek)
	assert.Equal(t, "18:00", events[0].StartTime)
	assert.Equal(t, "19:30", events[0].EndTime)
	assert.Equal(t, "2024-01-23", events[0].Date)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)

	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{
		studyTask("08:00:00", "09:30:00"),
		studyTask("10:00:00", "11:00:00"),
	}})
	require.NoError(t, f.svc.Save(req, testActor))

	rows, err := f.svc.Summary(10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].TasksCount)
	assert.Equal(t, 180, rows[0].TotalMinutes)
	assert.Equal(t, 2, rows[0].LogsCount)
	assert.Equal(t, "2024-01-20", rows[0].WeekStart)
	assert.Equal(t, "دانش‌آموز تستی", rows[0].StudentName)
}

func TestAppendLog(t *testing.T) {
	f := newFixture(t)
	req := f.saveReq(dto.DayRequest{Day: "شنبه", Tasks: []dto.TaskRequest{studyTask("08:00:00", "09:00:00")}})
	require.NoError(t, f.svc.Save(req, testActor))
	report := f.loadReport(t)

	logReq := &dto.AppendLogRequest{
		ReportID:       report.WeeklyReportID,
		Action:         "Viewed by parent",
		AdditionalData: []byte(`{"source":"mobile"}`),
	}
	require.NoError(t, f.svc.AppendLog(logReq, testActor))
	assert.Contains(t, f.logActions(t, report.WeeklyReportID), "Viewed by parent")

	// unknown report
	logReq.ReportID = uuid.New()
	err := f.svc.AppendLog(logReq, testActor)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
