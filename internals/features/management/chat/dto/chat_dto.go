// file: internals/features/management/chat/dto/chat_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

func (r *SendMessageRequest) Validate(v *validator.Validate) error {
	r.Text = strings.TrimSpace(r.Text)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type ConversationResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	UnreadCount int64     `json:"unread_count"`
}
