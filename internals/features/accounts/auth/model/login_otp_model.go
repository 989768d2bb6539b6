// file: internals/features/accounts/auth/model/login_otp_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   LoginOTPModel — map to table login_otps

   One-time passwords for phone-number login. Rows are purged by
   the cleanup scheduler once expired.
   ======================================================= */

type LoginOTPModel struct {
	LoginOTPID           uuid.UUID `json:"login_otp_id" gorm:"type:uuid;primaryKey;column:login_otp_id"`
	LoginOTPPhoneNumber  string    `json:"login_otp_phone_number" gorm:"type:varchar(15);not null;index;column:login_otp_phone_number"`
	LoginOTPCode         string    `json:"-" gorm:"type:varchar(6);not null;column:login_otp_code"`
	LoginOTPExpiresAt    time.Time `json:"login_otp_expires_at" gorm:"column:login_otp_expires_at;not null;index"`
	LoginOTPAttemptCount int       `json:"login_otp_attempt_count" gorm:"type:int;not null;default:0;column:login_otp_attempt_count"`
	LoginOTPIsUsed       bool      `json:"login_otp_is_used" gorm:"type:boolean;not null;default:false;column:login_otp_is_used"`

	LoginOTPCreatedAt time.Time `json:"login_otp_created_at" gorm:"column:login_otp_created_at;not null;autoCreateTime"`
}

func (LoginOTPModel) TableName() string { return "login_otps" }

func (o *LoginOTPModel) HasExpired(now time.Time) bool {
	return !now.Before(o.LoginOTPExpiresAt)
}

func (m *LoginOTPModel) BeforeCreate(tx *gorm.DB) error {
	if m.LoginOTPID == uuid.Nil {
		m.LoginOTPID = uuid.New()
	}
	return nil
}
