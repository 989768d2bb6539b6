// file: internals/features/accounts/users/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =======================================================
   UserModel — map to table users

   The phone number doubles as the username; admin-created
   accounts get a random bcrypt-hashed password and log in
   via OTP instead.
   ======================================================= */

type UserModel struct {
	UserID             uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey;column:user_id"`
	UserPhoneNumber    string    `json:"user_phone_number" gorm:"type:varchar(15);not null;uniqueIndex;column:user_phone_number"`
	UserPassword       string    `json:"-" gorm:"type:varchar(100);not null;column:user_password"`
	UserRole           string    `json:"user_role" gorm:"type:varchar(10);not null;default:'student';column:user_role"`
	UserFirstName      string    `json:"user_first_name" gorm:"type:varchar(100);not null;column:user_first_name"`
	UserLastName       string    `json:"user_last_name" gorm:"type:varchar(100);not null;column:user_last_name"`
	UserEmail          *string   `json:"user_email,omitempty" gorm:"type:varchar(255);column:user_email"`
	UserTelegramChatID *string   `json:"user_telegram_chat_id,omitempty" gorm:"type:varchar(100);column:user_telegram_chat_id"`

	UserCreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UserUpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	UserDeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }

// FullName falls back to the phone number when both name parts are empty.
func (u *UserModel) FullName() string {
	full := strings.TrimSpace(u.UserFirstName + " " + u.UserLastName)
	if full == "" {
		return u.UserPhoneNumber
	}
	return full
}

func (m *UserModel) BeforeCreate(tx *gorm.DB) error {
	if m.UserID == uuid.Nil {
		m.UserID = uuid.New()
	}
	return nil
}
