// file: internals/features/planning/weeklyreport/service/weekly_report_service.go

// Package service implements the weekly report aggregator: the save
// state machine, the date lookup, the day copy operation and the
// append-only report log.
package service

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	catalogModel "moshaverino_backend/internals/features/catalog/model"
	"moshaverino_backend/internals/features/planning/curriculum"
	"moshaverino_backend/internals/features/planning/weeklyreport/dto"
	"moshaverino_backend/internals/features/planning/weeklyreport/model"
)

// Log actions written by the aggregator.
const (
	LogReportCreated = "Report created"
	LogReportUpdated = "Report updated"
	LogDetailsSaved  = "Report details saved"
	LogReportLoaded  = "Load Weekly Report"
	LogDayCopied     = "Copied day plan"
)

// Actor identifies who performed a mutating operation, for the log.
type Actor struct {
	ID   *uuid.UUID
	Name string
}

type Service struct {
	DB  *gorm.DB
	Cur *curriculum.Curriculum
}

func NewService(db *gorm.DB, cur *curriculum.Curriculum) *Service {
	return &Service{DB: db, Cur: cur}
}

/* =========================================================
   Save
========================================================= */

// Save persists a full week plan. The report row for (student,
// week_start) is created on first save and updated afterwards; detail
// rows are always wiped and recreated. The whole operation runs in one
// transaction so readers never see a half-written week.
func (s *Service) Save(req *dto.SaveWeeklyReportRequest, actor Actor) error {
	weekStart, err := dto.ParseISODateTime(req.WeekStart)
	if err != nil {
		return err
	}
	weekEnd, err := dto.ParseISODateTime(req.WeekEnd)
	if err != nil {
		return err
	}
	// key the report on the شنبه of the submitted week, so a mid-week
	// timestamp cannot split one week across two rows
	weekStart = curriculum.WeekStartFor(weekStart)

	var student studentModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", req.StudentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "دانش‌آموز یافت نشد")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموز")
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		report, err := s.upsertReport(tx, req, student.StudentID, weekStart, weekEnd, actor)
		if err != nil {
			return err
		}

		for _, day := range req.Days {
			offset, ok := curriculum.DayOffset(day.Day)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "نام روز هفته نامعتبر است: "+day.Day)
			}
			boxDate := weekStart.AddDate(0, 0, offset)

			for i := range day.Tasks {
				if err := s.createTask(tx, report, boxDate, day.Day, day.Disabled, &day.Tasks[i]); err != nil {
					return err
				}
			}
		}

		return s.appendLog(tx, report.WeeklyReportID, LogDetailsSaved, fiber.Map{"days_count": len(req.Days)}, actor)
	})
}

// upsertReport creates the report row or switches to the update path.
// A concurrent first save can lose the race on the unique
// (student, week_start) index; the loser retries as an update.
func (s *Service) upsertReport(tx *gorm.DB, req *dto.SaveWeeklyReportRequest, studentID uuid.UUID, weekStart, weekEnd time.Time, actor Actor) (*model.WeeklyReportModel, error) {
	var report model.WeeklyReportModel
	err := tx.First(&report,
		"weekly_report_student_id = ? AND weekly_report_week_start = ?", studentID, weekStart).Error

	if err == gorm.ErrRecordNotFound {
		report = model.WeeklyReportModel{
			WeeklyReportStudentID:       studentID,
			WeeklyReportWeekStart:       weekStart,
			WeeklyReportWeekEnd:         weekEnd,
			WeeklyReportDisabledDays:    req.DisabledDays(),
			WeeklyReportImportantEvents: req.ImportantEvents,
		}
		// ON CONFLICT DO NOTHING keeps the transaction alive when a
		// concurrent first save wins the race on the unique index
		res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&report)
		if res.Error != nil {
			return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد گزارش هفتگی")
		}
		if res.RowsAffected > 0 {
			payload := fiber.Map{
				"student_id": studentID,
				"week_start": req.WeekStart,
				"week_end":   req.WeekEnd,
			}
			if err := s.appendLog(tx, report.WeeklyReportID, LogReportCreated, payload, actor); err != nil {
				return nil, err
			}
			return &report, nil
		}
		// lost the race; reload and fall through to the update path
		err = tx.First(&report,
			"weekly_report_student_id = ? AND weekly_report_week_start = ?", studentID, weekStart).Error
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش هفتگی")
	}

	report.WeeklyReportWeekEnd = weekEnd
	report.WeeklyReportDisabledDays = req.DisabledDays()
	report.WeeklyReportImportantEvents = req.ImportantEvents
	if err := tx.Save(&report).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در بروزرسانی گزارش هفتگی")
	}
	if err := s.appendLog(tx, report.WeeklyReportID, LogReportUpdated,
		fiber.Map{"week_start": req.WeekStart, "week_end": req.WeekEnd}, actor); err != nil {
		return nil, err
	}

	// full replace: drop all previous details before re-inserting
	if err := tx.Where("weekly_report_detail_report_id = ?", report.WeeklyReportID).
		Delete(&model.WeeklyReportDetailModel{}).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در حذف جزئیات قبلی گزارش")
	}
	return &report, nil
}

// createTask materializes one task as a fresh Box plus a detail row.
func (s *Service) createTask(tx *gorm.DB, report *model.WeeklyReportModel, boxDate time.Time, dayName string, dayDisabled bool, task *dto.TaskRequest) error {
	startOfDay, err := dto.ParseTimeOfDay(task.Start)
	if err != nil {
		return err
	}
	endOfDay, err := dto.ParseTimeOfDay(task.End)
	if err != nil {
		return err
	}

	var boxType catalogModel.BoxTypeModel
	if err := tx.First(&boxType, "box_type_name = ?", task.BoxType).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "نوع باکس یافت نشد: "+task.BoxType)
		}
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی نوع باکس")
	}

	box := model.BoxModel{
		BoxBoxTypeID: boxType.BoxTypeID,
		BoxName:      task.Title,
	}
	if boxType.BoxTypeName == curriculum.EventBoxTypeName {
		// events carry no lesson or chapter, regardless of what the
		// client sent alongside
		box.BoxIsDefault = true
	} else {
		if task.LessonID != nil {
			var lesson catalogModel.LessonModel
			if err := tx.First(&lesson, "lesson_id = ?", *task.LessonID).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					return fiber.NewError(fiber.StatusNotFound, "درس مورد نظر یافت نشد")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی درس")
			}
			box.BoxLessonID = task.LessonID
		}
		if task.ChapterID != nil {
			// a dangling chapter id is tolerated and stored as null
			var chapter catalogModel.ChapterModel
			err := tx.First(&chapter, "chapter_id = ?", *task.ChapterID).Error
			switch err {
			case nil:
				box.BoxChapterID = task.ChapterID
			case gorm.ErrRecordNotFound:
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی فصل")
			}
		}
		box.BoxOptionalTestsCount = task.OptionalTestsCount
		box.BoxDurationMinutes = task.DurationMinutes
	}
	if err := tx.Create(&box).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد باکس")
	}

	detail := model.WeeklyReportDetailModel{
		WeeklyReportDetailReportID:   report.WeeklyReportID,
		WeeklyReportDetailBoxID:      box.BoxID,
		WeeklyReportDetailStartTime:  boxDate.Add(startOfDay),
		WeeklyReportDetailEndTime:    boxDate.Add(endOfDay),
		WeeklyReportDetailDayOfWeek:  dayName,
		WeeklyReportDetailIsDisabled: dayDisabled,
	}
	if err := tx.Create(&detail).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد جزئیات گزارش")
	}
	return nil
}

/* =========================================================
   Queries
========================================================= */

// LookupForDate reports whether the student has a report covering the
// date (current), only a later one (future), or none at all.
func (s *Service) LookupForDate(studentID uuid.UUID, date time.Time) (*dto.LookupResponse, error) {
	var report model.WeeklyReportModel
	err := s.DB.
		Where("weekly_report_student_id = ?", studentID).
		Where("weekly_report_week_start <= ? AND weekly_report_week_end >= ?", date, date).
		First(&report).Error
	if err == nil {
		return lookupResponse("current", &report), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}

	err = s.DB.
		Where("weekly_report_student_id = ?", studentID).
		Where("weekly_report_week_start > ?", date).
		Order("weekly_report_week_start asc").
		First(&report).Error
	if err == nil {
		return lookupResponse("future", &report), nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}
	return &dto.LookupResponse{Exists: "none"}, nil
}

func lookupResponse(exists string, report *model.WeeklyReportModel) *dto.LookupResponse {
	ws := report.WeeklyReportWeekStart.Format("2006-01-02")
	we := report.WeeklyReportWeekEnd.Format("2006-01-02")
	return &dto.LookupResponse{Exists: exists, WeekStart: &ws, WeekEnd: &we}
}

// Details returns the stored tasks of the week starting at weekStart.
// A missing report yields an empty response rather than an error; a
// found report gets a "loaded" entry in its log.
func (s *Service) Details(studentID uuid.UUID, weekStart time.Time, actor Actor) (*dto.ReportDetailsResponse, error) {
	weekStart = curriculum.WeekStartFor(weekStart)

	var report model.WeeklyReportModel
	err := s.DB.First(&report,
		"weekly_report_student_id = ? AND weekly_report_week_start = ?", studentID, weekStart).Error
	if err == gorm.ErrRecordNotFound {
		return &dto.ReportDetailsResponse{ImportantEvents: "", Tasks: []dto.TaskResponse{}}, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}

	logPayload := fiber.Map{"week_start": weekStart.Format("2006-01-02"), "student_id": studentID}
	if err := s.appendLog(s.DB, report.WeeklyReportID, LogReportLoaded, logPayload, actor); err != nil {
		return nil, err
	}

	details, err := s.loadDetails(report.WeeklyReportID, false)
	if err != nil {
		return nil, err
	}

	tasks := make([]dto.TaskResponse, 0, len(details))
	for _, d := range details {
		tasks = append(tasks, detailToTask(&d))
	}
	return &dto.ReportDetailsResponse{
		ImportantEvents: report.WeeklyReportImportantEvents,
		Tasks:           tasks,
	}, nil
}

// LatestLessonTasks projects the most recent report's lesson-backed
// details into a flat task list, used to pre-populate a new week.
// Event entries (null lesson) are excluded.
func (s *Service) LatestLessonTasks(studentID uuid.UUID) ([]dto.LatestTaskResponse, error) {
	var report model.WeeklyReportModel
	err := s.DB.
		Where("weekly_report_student_id = ?", studentID).
		Order("weekly_report_week_start desc").
		First(&report).Error
	if err == gorm.ErrRecordNotFound {
		return []dto.LatestTaskResponse{}, nil
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}

	details, err := s.loadDetails(report.WeeklyReportID, true)
	if err != nil {
		return nil, err
	}

	tasks := make([]dto.LatestTaskResponse, 0, len(details))
	for _, d := range details {
		if d.Box == nil || d.Box.Lesson == nil {
			continue
		}
		lesson := d.Box.Lesson
		task := dto.LatestTaskResponse{
			LessonID:           lesson.LessonID,
			LessonName:         lesson.LessonName,
			OptionalTestsCount: d.Box.BoxOptionalTestsCount,
			DurationMinutes:    d.Box.BoxDurationMinutes,
			GradeID:            lesson.LessonGradeID,
			DayOfWeek:          curriculum.PersianDayName(d.WeeklyReportDetailStartTime),
		}
		if d.Box.Chapter != nil {
			task.ChapterID = &d.Box.Chapter.ChapterID
			task.ChapterText = d.Box.Chapter.ChapterName
		}
		if lesson.LessonType != nil {
			task.LessonType = lesson.LessonType.LessonTypeName
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// CopyDay duplicates one day's details from the source student's
// report into the target student's report for the same week, replacing
// whatever was on the target day. Every copied detail gets a brand new
// Box row. When advisorID is set, both students must belong to it.
func (s *Service) CopyDay(req *dto.CopyDayRequest, advisorID *uuid.UUID, actor Actor) (int, error) {
	sourceDate, err := dto.ParseDateOnly(req.SourceDate)
	if err != nil {
		return 0, err
	}

	if err := s.checkStudentOwnership(req.SourceStudentID, advisorID); err != nil {
		return 0, err
	}
	if err := s.checkStudentOwnership(req.TargetStudentID, advisorID); err != nil {
		return 0, err
	}

	copied := 0
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var sourceReport model.WeeklyReportModel
		err := tx.
			Where("weekly_report_student_id = ?", req.SourceStudentID).
			Where("weekly_report_week_start <= ? AND weekly_report_week_end >= ?", sourceDate, sourceDate).
			First(&sourceReport).Error
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "گزارشی برای تاریخ انتخابی دانش‌آموز مبدأ یافت نشد")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش مبدأ")
		}

		sourceDay := curriculum.PersianDayName(sourceDate)
		var sourceDetails []model.WeeklyReportDetailModel
		err = tx.
			Where("weekly_report_detail_report_id = ? AND weekly_report_detail_day_of_week = ?",
				sourceReport.WeeklyReportID, sourceDay).
			Preload("Box").
			Find(&sourceDetails).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی جزئیات مبدأ")
		}
		if len(sourceDetails) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "برنامه‌ای برای روز انتخابی در گزارش مبدأ ثبت نشده است")
		}

		targetReport, err := s.findOrCreateTargetReport(tx, req.TargetStudentID, &sourceReport)
		if err != nil {
			return err
		}

		// the target day is replaced, not merged
		if err := tx.
			Where("weekly_report_detail_report_id = ? AND weekly_report_detail_day_of_week = ?",
				targetReport.WeeklyReportID, req.TargetDayOfWeek).
			Delete(&model.WeeklyReportDetailModel{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در حذف جزئیات روز مقصد")
		}

		for _, src := range sourceDetails {
			if src.Box == nil {
				continue
			}
			newBox := model.BoxModel{
				BoxBoxTypeID:          src.Box.BoxBoxTypeID,
				BoxLessonID:           src.Box.BoxLessonID,
				BoxChapterID:          src.Box.BoxChapterID,
				BoxOptionalTestsCount: src.Box.BoxOptionalTestsCount,
				BoxDurationMinutes:    src.Box.BoxDurationMinutes,
				BoxName:               src.Box.BoxName,
			}
			if err := tx.Create(&newBox).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "خطا در کپی باکس")
			}
			newDetail := model.WeeklyReportDetailModel{
				WeeklyReportDetailReportID:   targetReport.WeeklyReportID,
				WeeklyReportDetailBoxID:      newBox.BoxID,
				WeeklyReportDetailStartTime:  src.WeeklyReportDetailStartTime,
				WeeklyReportDetailEndTime:    src.WeeklyReportDetailEndTime,
				WeeklyReportDetailDayOfWeek:  req.TargetDayOfWeek,
				WeeklyReportDetailIsDisabled: src.WeeklyReportDetailIsDisabled,
			}
			if err := tx.Create(&newDetail).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "خطا در کپی جزئیات")
			}
			copied++
		}

		payload := fiber.Map{
			"source_student_id":  req.SourceStudentID,
			"target_day_of_week": req.TargetDayOfWeek,
		}
		return s.appendLog(tx, targetReport.WeeklyReportID, LogDayCopied, payload, actor)
	})
	if err != nil {
		return 0, err
	}
	return copied, nil
}

// DefaultEvents lists the student's saved event boxes, most recent
// report first, for pre-filling a new week's calendar.
func (s *Service) DefaultEvents(studentID uuid.UUID) ([]dto.DefaultEventResponse, error) {
	var details []model.WeeklyReportDetailModel
	err := s.DB.
		Joins("JOIN weekly_reports ON weekly_reports.weekly_report_id = weekly_report_details.weekly_report_detail_report_id").
		Joins("JOIN boxes ON boxes.box_id = weekly_report_details.weekly_report_detail_box_id").
		Joins("JOIN box_types ON box_types.box_type_id = boxes.box_box_type_id").
		Where("weekly_reports.weekly_report_student_id = ?", studentID).
		Where("box_types.box_type_name = ?", curriculum.EventBoxTypeName).
		Where("boxes.box_is_default = ?", true).
		Order("weekly_reports.weekly_report_week_start desc").
		Preload("Box").
		Find(&details).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی ایونت‌ها")
	}

	events := make([]dto.DefaultEventResponse, 0, len(details))
	for _, d := range details {
		name := ""
		if d.Box != nil {
			name = d.Box.BoxName
		}
		events = append(events, dto.DefaultEventResponse{
			Name:      name,
			DayOfWeek: d.WeeklyReportDetailDayOfWeek,
			StartTime: d.WeeklyReportDetailStartTime.Format("15:04"),
			EndTime:   d.WeeklyReportDetailEndTime.Format("15:04"),
			Date:      d.WeeklyReportDetailStartTime.Format("2006-01-02"),
		})
	}
	return events, nil
}

// Summary aggregates the most recent reports for the admin dashboard.
func (s *Service) Summary(limit int) ([]dto.ReportSummaryResponse, error) {
	if limit <= 0 {
		limit = 50
	}

	var reports []model.WeeklyReportModel
	err := s.DB.
		Order("weekly_report_week_start desc").
		Limit(limit).
		Preload("Details").
		Preload("Details.Box").
		Preload("Logs").
		Find(&reports).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش‌ها")
	}

	rows := make([]dto.ReportSummaryResponse, 0, len(reports))
	for _, r := range reports {
		totalMinutes := 0
		for _, d := range r.Details {
			if d.Box != nil {
				totalMinutes += d.Box.BoxDurationMinutes
			}
		}
		row := dto.ReportSummaryResponse{
			ReportID:        r.WeeklyReportID,
			WeekStart:       r.WeeklyReportWeekStart.Format("2006-01-02"),
			WeekEnd:         r.WeeklyReportWeekEnd.Format("2006-01-02"),
			TasksCount:      len(r.Details),
			TotalMinutes:    totalMinutes,
			LogsCount:       len(r.Logs),
			ImportantEvents: r.WeeklyReportImportantEvents,
		}
		row.StudentName, row.AdvisorName = s.reportNames(r.WeeklyReportStudentID)
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *Service) reportNames(studentID uuid.UUID) (string, string) {
	var student studentModel.StudentModel
	err := s.DB.
		Preload("User").
		Preload("Advisor.User").
		First(&student, "student_id = ?", studentID).Error
	if err != nil {
		return "", ""
	}
	studentName, advisorName := "", ""
	if student.User != nil {
		studentName = student.User.FullName()
	}
	if student.Advisor != nil && student.Advisor.User != nil {
		advisorName = student.Advisor.User.FullName()
	}
	return studentName, advisorName
}

/* =========================================================
   Log
========================================================= */

// AppendLog records a standalone audit entry on an existing report.
func (s *Service) AppendLog(req *dto.AppendLogRequest, actor Actor) error {
	var report model.WeeklyReportModel
	if err := s.DB.First(&report, "weekly_report_id = ?", req.ReportID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "گزارش مورد نظر یافت نشد")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}
	var payload any
	if len(req.AdditionalData) > 0 {
		payload = req.AdditionalData
	}
	return s.appendLog(s.DB, report.WeeklyReportID, req.Action, payload, actor)
}

// ReportForPermissionCheck loads the report with its student relation
// so callers can verify the actor may touch it.
func (s *Service) ReportForPermissionCheck(reportID uuid.UUID) (*model.WeeklyReportModel, *studentModel.StudentModel, error) {
	var report model.WeeklyReportModel
	if err := s.DB.First(&report, "weekly_report_id = ?", reportID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, fiber.NewError(fiber.StatusNotFound, "گزارش مورد نظر یافت نشد")
		}
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش")
	}
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", report.WeeklyReportStudentID).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموز")
	}
	return &report, &student, nil
}

func (s *Service) appendLog(tx *gorm.DB, reportID uuid.UUID, action string, payload any, actor Actor) error {
	entry := model.WeeklyReportLogModel{
		WeeklyReportLogReportID:  reportID,
		WeeklyReportLogAction:    action,
		WeeklyReportLogActorID:   actor.ID,
		WeeklyReportLogActorName: actor.Name,
	}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "خطا در ثبت لاگ گزارش")
		}
		entry.WeeklyReportLogPayload = datatypes.JSON(raw)
	}
	if err := tx.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در ثبت لاگ گزارش")
	}
	return nil
}

/* =========================================================
   internals
========================================================= */

func (s *Service) checkStudentOwnership(studentID uuid.UUID, advisorID *uuid.UUID) error {
	var student studentModel.StudentModel
	if err := s.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fiber.NewError(fiber.StatusNotFound, "دانش‌آموز یافت نشد")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی دانش‌آموز")
	}
	if advisorID == nil {
		return nil
	}
	if student.StudentAdvisorID == nil || *student.StudentAdvisorID != *advisorID {
		return fiber.NewError(fiber.StatusForbidden, "دانش‌آموز زیر نظر شما نیست")
	}
	return nil
}

func (s *Service) findOrCreateTargetReport(tx *gorm.DB, targetStudentID uuid.UUID, source *model.WeeklyReportModel) (*model.WeeklyReportModel, error) {
	var target model.WeeklyReportModel
	err := tx.First(&target,
		"weekly_report_student_id = ? AND weekly_report_week_start = ?",
		targetStudentID, source.WeeklyReportWeekStart).Error
	if err == nil {
		return &target, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش مقصد")
	}

	target = model.WeeklyReportModel{
		WeeklyReportStudentID: targetStudentID,
		WeeklyReportWeekStart: source.WeeklyReportWeekStart,
		WeeklyReportWeekEnd:   source.WeeklyReportWeekEnd,
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&target)
	if res.Error != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در ایجاد گزارش مقصد")
	}
	if res.RowsAffected > 0 {
		return &target, nil
	}
	if err := tx.First(&target,
		"weekly_report_student_id = ? AND weekly_report_week_start = ?",
		targetStudentID, source.WeeklyReportWeekStart).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی گزارش مقصد")
	}
	return &target, nil
}

// loadDetails fetches detail rows with their box and catalog relations.
// lessonOnly keeps rows whose box references a lesson.
func (s *Service) loadDetails(reportID uuid.UUID, lessonOnly bool) ([]model.WeeklyReportDetailModel, error) {
	q := s.DB.Where("weekly_report_detail_report_id = ?", reportID)
	if lessonOnly {
		q = q.Joins("JOIN boxes ON boxes.box_id = weekly_report_details.weekly_report_detail_box_id").
			Where("boxes.box_lesson_id IS NOT NULL")
	}
	var details []model.WeeklyReportDetailModel
	err := q.
		Preload("Box").
		Preload("Box.BoxType").
		Preload("Box.Lesson").
		Preload("Box.Lesson.LessonType").
		Preload("Box.Chapter").
		Order("weekly_report_detail_start_time asc").
		Find(&details).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "خطا در واکشی جزئیات گزارش")
	}
	return details, nil
}

func detailToTask(d *model.WeeklyReportDetailModel) dto.TaskResponse {
	task := dto.TaskResponse{
		StartTime: d.WeeklyReportDetailStartTime.Format("2006-01-02T15:04:05"),
		EndTime:   d.WeeklyReportDetailEndTime.Format("2006-01-02T15:04:05"),
		Date:      d.WeeklyReportDetailStartTime.Format("2006-01-02"),
		DayOfWeek: d.WeeklyReportDetailDayOfWeek,
	}
	if d.Box == nil {
		return task
	}
	task.Title = d.Box.BoxName
	task.OptionalTestsCount = d.Box.BoxOptionalTestsCount
	if d.Box.BoxType != nil {
		task.BoxType = d.Box.BoxType.BoxTypeName
	}
	if d.Box.Chapter != nil {
		task.ChapterID = &d.Box.Chapter.ChapterID
		task.Chapter = d.Box.Chapter.ChapterName
		task.ChapterText = d.Box.Chapter.ChapterName
	}
	if d.Box.Lesson != nil {
		task.LessonID = &d.Box.Lesson.LessonID
		name := d.Box.Lesson.LessonName
		task.LessonName = &name
		task.GradeID = d.Box.Lesson.LessonGradeID
		if d.Box.Lesson.LessonType != nil {
			task.LessonType = d.Box.Lesson.LessonType.LessonTypeName
		}
	}
	return task
}
