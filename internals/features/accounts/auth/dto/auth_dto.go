// file: internals/features/accounts/auth/dto/auth_dto.go
package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
	helper "moshaverino_backend/internals/helpers"
)

type RequestOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
}

func (r *RequestOTPRequest) Validate(v *validator.Validate) error {
	r.PhoneNumber = helper.NormalizePhoneNumber(r.PhoneNumber)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type VerifyOTPRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

func (r *VerifyOTPRequest) Validate(v *validator.Validate) error {
	r.PhoneNumber = helper.NormalizePhoneNumber(r.PhoneNumber)
	r.Code = strings.TrimSpace(r.Code)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type PasswordLoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,min=10,max=15"`
	Password    string `json:"password" validate:"required,min=6"`
}

func (r *PasswordLoginRequest) Validate(v *validator.Validate) error {
	r.PhoneNumber = helper.NormalizePhoneNumber(r.PhoneNumber)
	if v == nil {
		return nil
	}
	return v.Struct(r)
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID      string  `json:"user_id"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	FullName    string  `json:"full_name"`
	StudentID   *string `json:"student_id,omitempty"`
	AdvisorID   *string `json:"advisor_id,omitempty"`
}

func NewUserResponse(u *userModel.UserModel, studentID, advisorID *string) UserResponse {
	return UserResponse{
		UserID:      u.UserID.String(),
		PhoneNumber: u.UserPhoneNumber,
		Role:        u.UserRole,
		FullName:    u.FullName(),
		StudentID:   studentID,
		AdvisorID:   advisorID,
	}
}
