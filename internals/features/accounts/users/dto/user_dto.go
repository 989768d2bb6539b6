// file: internals/features/accounts/users/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"moshaverino_backend/internals/features/accounts/users/model"
)

type UpdateProfileRequest struct {
	FirstName      *string `json:"user_first_name" validate:"omitempty,min=1,max=100"`
	LastName       *string `json:"user_last_name" validate:"omitempty,min=1,max=100"`
	Email          *string `json:"user_email" validate:"omitempty,email,max=255"`
	TelegramChatID *string `json:"user_telegram_chat_id" validate:"omitempty,max=100"`
}

func (r *UpdateProfileRequest) Validate(v *validator.Validate) error {
	trim := func(p *string) *string {
		if p == nil {
			return nil
		}
		t := strings.TrimSpace(*p)
		return &t
	}
	r.FirstName = trim(r.FirstName)
	r.LastName = trim(r.LastName)
	r.Email = trim(r.Email)
	r.TelegramChatID = trim(r.TelegramChatID)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

// ApplyPatch copies the provided fields onto the model.
func (r *UpdateProfileRequest) ApplyPatch(u *model.UserModel) {
	if r.FirstName != nil {
		u.UserFirstName = *r.FirstName
	}
	if r.LastName != nil {
		u.UserLastName = *r.LastName
	}
	if r.Email != nil {
		u.UserEmail = r.Email
	}
	if r.TelegramChatID != nil {
		u.UserTelegramChatID = r.TelegramChatID
	}
}
