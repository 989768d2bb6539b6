// file: internals/features/management/notifications/dto/notification_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"moshaverino_backend/internals/features/management/notifications/model"
)

type SendNotificationRequest struct {
	Message  string      `json:"message" validate:"required,min=1"`
	Channels []string    `json:"channels" validate:"required,min=1,dive,oneof=panel telegram sms"`
	UserIDs  []uuid.UUID `json:"user_ids" validate:"required,min=1"`
}

func (r *SendNotificationRequest) Validate(v *validator.Validate) error {
	r.Message = strings.TrimSpace(r.Message)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type MarkReadRequest struct {
	NotificationIDs []uuid.UUID `json:"notification_ids" validate:"required,min=1"`
}

func (r *MarkReadRequest) Validate(v *validator.Validate) error {
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

/* =========================================================
   Responses
========================================================= */

type DeliveryResult struct {
	UserID        uuid.UUID `json:"user_id"`
	PanelStored   bool      `json:"panel_stored"`
	TelegramSent  bool      `json:"telegram_sent"`
	TelegramError string    `json:"telegram_error,omitempty"`
	SMSSent       bool      `json:"sms_sent"`
	SMSError      string    `json:"sms_error,omitempty"`
}

type SendNotificationResponse struct {
	NotificationID uuid.UUID        `json:"notification_id"`
	Results        []DeliveryResult `json:"results"`
}

type InboxItemResponse struct {
	NotificationID uuid.UUID `json:"notification_id"`
	Message        string    `json:"message"`
	SenderName     string    `json:"sender_name"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewInboxItemResponse(r *model.NotificationRecipientModel, n *model.NotificationModel) InboxItemResponse {
	item := InboxItemResponse{
		NotificationID: n.NotificationID,
		Message:        n.NotificationMessage,
		IsRead:         r.NotificationRecipientIsRead,
		CreatedAt:      n.NotificationCreatedAt,
	}
	if n.Sender != nil {
		item.SenderName = n.Sender.FullName()
	}
	return item
}
