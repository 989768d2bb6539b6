package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"moshaverino_backend/internals/configs"
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

var DB *gorm.DB

func ConnectDB() {
	log.Println("[INFO] connecting to PostgreSQL...")

	sslmode := getenv("DB_SSLMODE", "require")
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=moshaverino&options=-c statement_timeout=3000",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
		sslmode,
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // PgBouncer friendly
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] DB connection failed: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// Migrate keeps the schema in sync. The unique index on
// (student, week_start) is what makes concurrent first saves of the
// same week safe, so it lives in the model tags, not here.
func Migrate() {
	if err := DB.AutoMigrate(
		// accounts
		&userModel.UserModel{},
		&studentModel.SchoolModel{},
		&studentModel.MajorModel{},
		&studentModel.GradeModel{},
		&studentModel.AdvisorModel{},
		&studentModel.AdvisorAvailabilityModel{},
		&studentModel.StudentModel{},
		&authModel.LoginOTPModel{},
		// catalog
		&catalogModel.LessonTypeModel{},
		&catalogModel.LessonModel{},
		&catalogModel.ChapterModel{},
		&catalogModel.BoxTypeModel{},
		// planning
		&reportModel.BoxModel{},
		&reportModel.WeeklyReportModel{},
		&reportModel.WeeklyReportDetailModel{},
		&reportModel.WeeklyReportLogModel{},
		// courses
		&courseModel.CourseModel{},
		&courseModel.SessionModel{},
		&courseModel.CourseCommentModel{},
		// management
		&notificationModel.NotificationModel{},
		&notificationModel.NotificationRecipientModel{},
		&paymentModel.PaymentModel{},
		&chatModel.ChatMessageModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
