// file: internals/features/accounts/auth/controller/auth_controller.go
package controller

import (
	"crypto/rand"
	"log"
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moshaverino_backend/internals/configs"
	authModel "moshaverino_backend/internals/features/accounts/auth/model"
	studentModel "moshaverino_backend/internals/features/accounts/students/model"
	userModel "moshaverino_backend/internals/features/accounts/users/model"
	"moshaverino_backend/internals/features/management/notifications/sender"

	"moshaverino_backend/internals/features/accounts/auth/dto"
	helper "moshaverino_backend/internals/helpers"
)

const (
	otpTTL         = 5 * time.Minute
	otpMaxAttempts = 5
	tokenTTL       = 7 * 24 * time.Hour
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	SMS      *sender.SMSSender
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:       db,
		Validate: validator.New(),
		SMS:      sender.NewSMSSender(),
	}
}

/* =========================================================
   OTP login
========================================================= */

// POST /api/auth/request-otp
func (ctl *AuthController) RequestOTP(c *fiber.Ctx) error {
	var req dto.RequestOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_phone_number = ?", req.PhoneNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "کاربری با این شماره موبایل یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}

	code, err := randomOTPCode()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در تولید کد ورود")
	}

	otp := authModel.LoginOTPModel{
		LoginOTPPhoneNumber: req.PhoneNumber,
		LoginOTPCode:        code,
		LoginOTPExpiresAt:   time.Now().Add(otpTTL),
	}
	if err := ctl.DB.Create(&otp).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ثبت کد ورود")
	}

	if ctl.SMS.Configured() {
		if err := ctl.SMS.Send(c.UserContext(), req.PhoneNumber, "کد ورود شما: "+code); err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "ارسال پیامک ناموفق بود")
		}
	} else {
		log.Printf("[WARN] sms disabled, otp for %s not delivered", req.PhoneNumber)
	}

	return helper.JsonOK(c, "کد ورود ارسال شد", fiber.Map{"expires_in_seconds": int(otpTTL.Seconds())})
}

// POST /api/auth/verify-otp
func (ctl *AuthController) VerifyOTP(c *fiber.Ctx) error {
	var req dto.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var otp authModel.LoginOTPModel
	err := ctl.DB.
		Where("login_otp_phone_number = ? AND login_otp_is_used = ?", req.PhoneNumber, false).
		Order("login_otp_created_at desc").
		First(&otp).Error
	if err == gorm.ErrRecordNotFound {
		return helper.JsonError(c, fiber.StatusBadRequest, "کد ورود نامعتبر است")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کد ورود")
	}

	if otp.HasExpired(time.Now()) {
		return helper.JsonError(c, fiber.StatusBadRequest, "کد ورود منقضی شده است")
	}
	if otp.LoginOTPAttemptCount >= otpMaxAttempts {
		return helper.JsonError(c, fiber.StatusTooManyRequests, "تعداد تلاش‌ها بیش از حد مجاز است")
	}

	// count the attempt before comparing
	if err := ctl.DB.Model(&otp).
		Update("login_otp_attempt_count", gorm.Expr("login_otp_attempt_count + 1")).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی کد ورود")
	}

	if otp.LoginOTPCode != req.Code {
		return helper.JsonError(c, fiber.StatusBadRequest, "کد ورود نامعتبر است")
	}

	if err := ctl.DB.Model(&otp).Update("login_otp_is_used", true).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی کد ورود")
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_phone_number = ?", req.PhoneNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "کاربری با این شماره موبایل یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}

	return ctl.issueToken(c, &user)
}

/* =========================================================
   Password login
========================================================= */

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.PasswordLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "user_phone_number = ?", req.PhoneNumber).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusUnauthorized, "نام کاربری یا رمز عبور نادرست است")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "نام کاربری یا رمز عبور نادرست است")
	}

	return ctl.issueToken(c, &user)
}

/* =========================================================
   token issuance
========================================================= */

func (ctl *AuthController) issueToken(c *fiber.Ctx, user *userModel.UserModel) error {
	var studentIDStr, advisorIDStr *string

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_user_id = ?", user.UserID).Error; err == nil {
		s := student.StudentID.String()
		studentIDStr = &s
	}
	var advisor studentModel.AdvisorModel
	if err := ctl.DB.First(&advisor, "advisor_user_id = ?", user.UserID).Error; err == nil {
		a := advisor.AdvisorID.String()
		advisorIDStr = &a
	}

	claims := jwt.MapClaims{
		"sub":      user.UserID.String(),
		"username": user.UserPhoneNumber,
		"role":     user.UserRole,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(tokenTTL).Unix(),
		"jti":      uuid.NewString(),
	}
	if studentIDStr != nil {
		claims["student_id"] = *studentIDStr
	}
	if advisorIDStr != nil {
		claims["advisor_id"] = *advisorIDStr
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در صدور توکن")
	}

	return helper.JsonOK(c, "ورود موفق", dto.LoginResponse{
		AccessToken: signed,
		User:        dto.NewUserResponse(user, studentIDStr, advisorIDStr),
	})
}

func randomOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := n.Text(10)
	for len(code) < 6 {
		code = "0" + code
	}
	return code, nil
}
