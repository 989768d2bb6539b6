// file: internals/features/accounts/users/controller/user_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"moshaverino_backend/internals/features/accounts/users/dto"
	"moshaverino_backend/internals/features/accounts/users/model"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/accounts/profile
func (ctl *UserController) Profile(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "کاربر یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}
	return helper.JsonOK(c, "", user)
}

// PATCH /api/accounts/profile
func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "کاربر یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}
	req.ApplyPatch(&user)
	if err := ctl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی پروفایل")
	}
	return helper.JsonUpdated(c, "پروفایل بروزرسانی شد", user)
}
