// file: internals/testutil/db.go

// Package testutil provides an in-memory database and seed helpers for
// feature tests.
package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authModel "moshaverino_backend/internals/features/accounts/auth/model"
	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	userModel "moshaverino_backend/internals/features/accounts/users/model"
	catalogModel "moshaverino_backend/internals/features/catalog/model"
	courseModel "moshaverino_backend/internals/features/courses/model"
	chatModel "moshaverino_backend/internals/features/management/chat/model"
	notificationModel "moshaverino_backend/internals/features/management/notifications/model"
	paymentModel "moshaverino_backend/internals/features/management/payments/model"
	reportModel "moshaverino_backend/internals/features/planning/weeklyreport/model"
)

// NewTestDB opens a fresh in-memory sqlite database with the full
// schema migrated. Each call gets its own database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// a single connection keeps every session on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&studentModel.SchoolModel{},
		&studentModel.MajorModel{},
		&studentModel.GradeModel{},
		&studentModel.AdvisorModel{},
		&studentModel.AdvisorAvailabilityModel{},
		&studentModel.StudentModel{},
		&authModel.LoginOTPModel{},
		&catalogModel.LessonTypeModel{},
		&catalogModel.LessonModel{},
		&catalogModel.ChapterModel{},
		&catalogModel.BoxTypeModel{},
		&reportModel.BoxModel{},
		&reportModel.WeeklyReportModel{},
		&reportModel.WeeklyReportDetailModel{},
		&reportModel.WeeklyReportLogModel{},
		&courseModel.CourseModel{},
		&courseModel.SessionModel{},
		&courseModel.CourseCommentModel{},
		&notificationModel.NotificationModel{},
		&notificationModel.NotificationRecipientModel{},
		&paymentModel.PaymentModel{},
		&chatModel.ChatMessageModel{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
