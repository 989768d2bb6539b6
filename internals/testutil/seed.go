// file: internals/testutil/seed.go
package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	userModel "moshaverino_backend/internals/features/accounts/users/model"
	catalogModel "moshaverino_backend/internals/features/catalog/model"
)

var phoneCounter atomic.Int64

// NextPhone returns a unique +98 phone number for seeding users.
func NextPhone() string {
	n := phoneCounter.Add(1)
	return fmt.Sprintf("+98912%07d", n)
}

func SeedUser(t *testing.T, db *gorm.DB, role, firstName, lastName string) *userModel.UserModel {
	t.Helper()
	user := userModel.UserModel{
		UserPhoneNumber: NextPhone(),
		UserPassword:    "x",
		UserRole:        role,
		UserFirstName:   firstName,
		UserLastName:    lastName,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func SeedSchool(t *testing.T, db *gorm.DB, name string) *studentModel.SchoolModel {
	t.Helper()
	school := studentModel.SchoolModel{SchoolName: name}
	if err := db.Where("school_name = ?", name).FirstOrCreate(&school).Error; err != nil {
		t.Fatalf("seed school: %v", err)
	}
	return &school
}

func SeedMajor(t *testing.T, db *gorm.DB, name string) *studentModel.MajorModel {
	t.Helper()
	major := studentModel.MajorModel{MajorName: name}
	if err := db.Where("major_name = ?", name).FirstOrCreate(&major).Error; err != nil {
		t.Fatalf("seed major: %v", err)
	}
	return &major
}

func SeedGrade(t *testing.T, db *gorm.DB, name string) *studentModel.GradeModel {
	t.Helper()
	grade := studentModel.GradeModel{GradeName: name}
	if err := db.Where("grade_name = ?", name).FirstOrCreate(&grade).Error; err != nil {
		t.Fatalf("seed grade: %v", err)
	}
	return &grade
}

func SeedAdvisor(t *testing.T, db *gorm.DB, firstName, lastName string) *studentModel.AdvisorModel {
	t.Helper()
	user := SeedUser(t, db, "advisor", firstName, lastName)
	advisor := studentModel.AdvisorModel{AdvisorUserID: user.UserID}
	if err := db.Create(&advisor).Error; err != nil {
		t.Fatalf("seed advisor: %v", err)
	}
	return &advisor
}

// SeedStudent creates a user plus student row with the named major and
// grade, resolving reference rows on the fly.
func SeedStudent(t *testing.T, db *gorm.DB, majorName, gradeName string) *studentModel.StudentModel {
	t.Helper()
	user := SeedUser(t, db, "student", "دانش‌آموز", "تستی")
	school := SeedSchool(t, db, "مدرسه پیش‌فرض")
	major := SeedMajor(t, db, majorName)
	grade := SeedGrade(t, db, gradeName)

	student := studentModel.StudentModel{
		StudentUserID:   user.UserID,
		StudentSchoolID: school.SchoolID,
		StudentMajorID:  major.MajorID,
		StudentGradeID:  grade.GradeID,
	}
	if err := db.Create(&student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return &student
}

func AttachAdvisor(t *testing.T, db *gorm.DB, student *studentModel.StudentModel, advisor *studentModel.AdvisorModel) {
	t.Helper()
	if err := db.Model(student).
		Update("student_advisor_id", advisor.AdvisorID).Error; err != nil {
		t.Fatalf("attach advisor: %v", err)
	}
	student.StudentAdvisorID = &advisor.AdvisorID
}

func SeedLessonType(t *testing.T, db *gorm.DB, name string) *catalogModel.LessonTypeModel {
	t.Helper()
	lt := catalogModel.LessonTypeModel{LessonTypeName: name}
	if err := db.Where("lesson_type_name = ?", name).FirstOrCreate(&lt).Error; err != nil {
		t.Fatalf("seed lesson type: %v", err)
	}
	return &lt
}

func SeedLesson(t *testing.T, db *gorm.DB, name string, gradeID *uuid.UUID) *catalogModel.LessonModel {
	t.Helper()
	lt := SeedLessonType(t, db, "آموزشی")
	lesson := catalogModel.LessonModel{
		LessonName:         name,
		LessonLessonTypeID: lt.LessonTypeID,
		LessonGradeID:      gradeID,
	}
	if err := db.Create(&lesson).Error; err != nil {
		t.Fatalf("seed lesson: %v", err)
	}
	return &lesson
}

func SeedChapter(t *testing.T, db *gorm.DB, lessonID uuid.UUID, number int, name string, track *string) *catalogModel.ChapterModel {
	t.Helper()
	chapter := catalogModel.ChapterModel{
		ChapterNumber:   number,
		ChapterName:     name,
		ChapterLessonID: lessonID,
		ChapterTrack:    track,
	}
	if err := db.Create(&chapter).Error; err != nil {
		t.Fatalf("seed chapter: %v", err)
	}
	return &chapter
}

func SeedBoxType(t *testing.T, db *gorm.DB, name string, isDefault bool) *catalogModel.BoxTypeModel {
	t.Helper()
	bt := catalogModel.BoxTypeModel{BoxTypeName: name, BoxTypeIsDefault: isDefault}
	if err := db.Where("box_type_name = ?", name).FirstOrCreate(&bt).Error; err != nil {
		t.Fatalf("seed box type: %v", err)
	}
	return &bt
}

// StrPtr is a shorthand for seeding nullable text columns.
func StrPtr(s string) *string { return &s }
