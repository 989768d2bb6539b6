// file: internals/features/planning/weeklyreport/model/weekly_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =======================================================
   WeeklyReportModel — map to table weekly_reports

   One row per (student, week_start). The unique index is load
   bearing: two concurrent first saves of the same week race on
   it, and the loser must retry as an update.
   ======================================================= */

type WeeklyReportModel struct {
	WeeklyReportID              uuid.UUID `json:"weekly_report_id" gorm:"type:uuid;primaryKey;column:weekly_report_id"`
	WeeklyReportStudentID       uuid.UUID `json:"weekly_report_student_id" gorm:"type:uuid;not null;uniqueIndex:uq_weekly_report_student_week;column:weekly_report_student_id"`
	WeeklyReportWeekStart       time.Time `json:"weekly_report_week_start" gorm:"not null;uniqueIndex:uq_weekly_report_student_week;column:weekly_report_week_start"`
	WeeklyReportWeekEnd         time.Time `json:"weekly_report_week_end" gorm:"not null;column:weekly_report_week_end"`
	WeeklyReportDisabledDays    string    `json:"weekly_report_disabled_days" gorm:"type:text;not null;default:'';column:weekly_report_disabled_days"`
	WeeklyReportImportantEvents string    `json:"weekly_report_important_events" gorm:"type:text;not null;default:'';column:weekly_report_important_events"`

	WeeklyReportCreatedAt time.Time `json:"weekly_report_created_at" gorm:"column:weekly_report_created_at;not null;autoCreateTime"`
	WeeklyReportUpdatedAt time.Time `json:"weekly_report_updated_at" gorm:"column:weekly_report_updated_at;not null;autoUpdateTime"`

	Details []WeeklyReportDetailModel `json:"details,omitempty" gorm:"foreignKey:WeeklyReportDetailReportID;references:WeeklyReportID"`
	Logs    []WeeklyReportLogModel    `json:"logs,omitempty" gorm:"foreignKey:WeeklyReportLogReportID;references:WeeklyReportID"`
}

func (WeeklyReportModel) TableName() string { return "weekly_reports" }

/* =======================================================
   WeeklyReportDetailModel — map to table weekly_report_details

   A single placed box. start/end are absolute timestamps
   (week_start + weekday offset, combined with the time of day);
   day_of_week is the Persian weekday name the box was placed on.
   Details are wiped and recreated on every save of the report.
   ======================================================= */

type WeeklyReportDetailModel struct {
	WeeklyReportDetailID         uuid.UUID `json:"weekly_report_detail_id" gorm:"type:uuid;primaryKey;column:weekly_report_detail_id"`
	WeeklyReportDetailReportID   uuid.UUID `json:"weekly_report_detail_report_id" gorm:"type:uuid;not null;index;column:weekly_report_detail_report_id"`
	WeeklyReportDetailBoxID      uuid.UUID `json:"weekly_report_detail_box_id" gorm:"type:uuid;not null;column:weekly_report_detail_box_id"`
	WeeklyReportDetailStartTime  time.Time `json:"weekly_report_detail_start_time" gorm:"not null;column:weekly_report_detail_start_time"`
	WeeklyReportDetailEndTime    time.Time `json:"weekly_report_detail_end_time" gorm:"not null;column:weekly_report_detail_end_time"`
	WeeklyReportDetailDayOfWeek  string    `json:"weekly_report_detail_day_of_week" gorm:"type:varchar(20);not null;column:weekly_report_detail_day_of_week"`
	WeeklyReportDetailIsDisabled bool      `json:"weekly_report_detail_is_disabled" gorm:"type:boolean;not null;default:false;column:weekly_report_detail_is_disabled"`

	Box *BoxModel `json:"box,omitempty" gorm:"foreignKey:WeeklyReportDetailBoxID;references:BoxID"`
}

func (WeeklyReportDetailModel) TableName() string { return "weekly_report_details" }

/* =======================================================
   WeeklyReportLogModel — map to table weekly_report_logs

   Append-only audit trail, one row per entry (never an embedded
   array: concurrent appends must not read-modify-write each
   other). Rows are never updated or deleted.
   ======================================================= */

type WeeklyReportLogModel struct {
	WeeklyReportLogID        uuid.UUID      `json:"weekly_report_log_id" gorm:"type:uuid;primaryKey;column:weekly_report_log_id"`
	WeeklyReportLogReportID  uuid.UUID      `json:"weekly_report_log_report_id" gorm:"type:uuid;not null;index;column:weekly_report_log_report_id"`
	WeeklyReportLogAction    string         `json:"weekly_report_log_action" gorm:"type:varchar(100);not null;column:weekly_report_log_action"`
	WeeklyReportLogPayload   datatypes.JSON `json:"weekly_report_log_payload,omitempty" gorm:"column:weekly_report_log_payload"`
	WeeklyReportLogActorID   *uuid.UUID     `json:"weekly_report_log_actor_id,omitempty" gorm:"type:uuid;column:weekly_report_log_actor_id"`
	WeeklyReportLogActorName string         `json:"weekly_report_log_actor_name" gorm:"type:varchar(100);not null;default:'';column:weekly_report_log_actor_name"`

	WeeklyReportLogCreatedAt time.Time `json:"weekly_report_log_created_at" gorm:"column:weekly_report_log_created_at;not null;autoCreateTime"`
}

func (WeeklyReportLogModel) TableName() string { return "weekly_report_logs" }

func (m *WeeklyReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyReportID == uuid.Nil {
		m.WeeklyReportID = uuid.New()
	}
	return nil
}

func (m *WeeklyReportDetailModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyReportDetailID == uuid.Nil {
		m.WeeklyReportDetailID = uuid.New()
	}
	return nil
}

func (m *WeeklyReportLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.WeeklyReportLogID == uuid.Nil {
		m.WeeklyReportLogID = uuid.New()
	}
	return nil
}
