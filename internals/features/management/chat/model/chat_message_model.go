// file: internals/features/management/chat/model/chat_message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
)

/* =======================================================
   ChatMessageModel — map to table chat_messages
   ======================================================= */

type ChatMessageModel struct {
	ChatMessageID         uuid.UUID `json:"chat_message_id" gorm:"type:uuid;primaryKey;column:chat_message_id"`
	ChatMessageSenderID   uuid.UUID `json:"chat_message_sender_id" gorm:"type:uuid;not null;index;column:chat_message_sender_id"`
	ChatMessageReceiverID uuid.UUID `json:"chat_message_receiver_id" gorm:"type:uuid;not null;index;column:chat_message_receiver_id"`
	ChatMessageText       string    `json:"chat_message_text" gorm:"type:text;not null;column:chat_message_text"`
	ChatMessageIsRead     bool      `json:"chat_message_is_read" gorm:"type:boolean;not null;default:false;column:chat_message_is_read"`

	ChatMessageCreatedAt time.Time `json:"chat_message_created_at" gorm:"column:chat_message_created_at;not null;autoCreateTime"`

	Sender   *userModel.UserModel `json:"sender,omitempty" gorm:"foreignKey:ChatMessageSenderID;references:UserID"`
	Receiver *userModel.UserModel `json:"receiver,omitempty" gorm:"foreignKey:ChatMessageReceiverID;references:UserID"`
}

func (ChatMessageModel) TableName() string { return "chat_messages" }

func (m *ChatMessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChatMessageID == uuid.Nil {
		m.ChatMessageID = uuid.New()
	}
	return nil
}
