// file: internals/features/management/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
)

// Delivery channel names stored in notification_channels.
const (
	ChannelPanel    = "panel"
	ChannelTelegram = "telegram"
	ChannelSMS      = "sms"
)

/* =======================================================
   NotificationModel — map to table notifications
   ======================================================= */

type NotificationModel struct {
	NotificationID       uuid.UUID      `json:"notification_id" gorm:"type:uuid;primaryKey;column:notification_id"`
	NotificationMessage  string         `json:"notification_message" gorm:"type:text;not null;column:notification_message"`
	NotificationChannels pq.StringArray `json:"notification_channels" gorm:"type:text[];not null;column:notification_channels"`
	NotificationSenderID *uuid.UUID     `json:"notification_sender_id,omitempty" gorm:"type:uuid;column:notification_sender_id"`

	NotificationCreatedAt time.Time `json:"notification_created_at" gorm:"column:notification_created_at;not null;autoCreateTime"`

	Sender     *userModel.UserModel         `json:"sender,omitempty" gorm:"foreignKey:NotificationSenderID;references:UserID"`
	Recipients []NotificationRecipientModel `json:"recipients,omitempty" gorm:"foreignKey:NotificationRecipientNotificationID;references:NotificationID"`
}

func (NotificationModel) TableName() string { return "notifications" }

func (n *NotificationModel) HasChannel(channel string) bool {
	for _, c := range n.NotificationChannels {
		if c == channel {
			return true
		}
	}
	return false
}

/* =======================================================
   NotificationRecipientModel — map to table notification_recipients

   One row per target user; delivery results and errors for the
   outbound channels are recorded per recipient.
   ======================================================= */

type NotificationRecipientModel struct {
	NotificationRecipientID             uuid.UUID `json:"notification_recipient_id" gorm:"type:uuid;primaryKey;column:notification_recipient_id"`
	NotificationRecipientNotificationID uuid.UUID `json:"notification_recipient_notification_id" gorm:"type:uuid;not null;uniqueIndex:uq_notification_recipient;column:notification_recipient_notification_id"`
	NotificationRecipientUserID         uuid.UUID `json:"notification_recipient_user_id" gorm:"type:uuid;not null;uniqueIndex:uq_notification_recipient;column:notification_recipient_user_id"`
	NotificationRecipientIsRead         bool      `json:"notification_recipient_is_read" gorm:"type:boolean;not null;default:false;column:notification_recipient_is_read"`
	NotificationRecipientTelegramSent   bool      `json:"notification_recipient_telegram_sent" gorm:"type:boolean;not null;default:false;column:notification_recipient_telegram_sent"`
	NotificationRecipientSMSSent        bool      `json:"notification_recipient_sms_sent" gorm:"type:boolean;not null;default:false;column:notification_recipient_sms_sent"`
	NotificationRecipientTelegramError  *string   `json:"notification_recipient_telegram_error,omitempty" gorm:"type:text;column:notification_recipient_telegram_error"`
	NotificationRecipientSMSError       *string   `json:"notification_recipient_sms_error,omitempty" gorm:"type:text;column:notification_recipient_sms_error"`

	NotificationRecipientCreatedAt time.Time `json:"notification_recipient_created_at" gorm:"column:notification_recipient_created_at;not null;autoCreateTime"`

	User *userModel.UserModel `json:"user,omitempty" gorm:"foreignKey:NotificationRecipientUserID;references:UserID"`
}

func (NotificationRecipientModel) TableName() string { return "notification_recipients" }

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}

func (m *NotificationRecipientModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationRecipientID == uuid.Nil {
		m.NotificationRecipientID = uuid.New()
	}
	return nil
}
