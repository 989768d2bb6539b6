// file: internals/features/accounts/auth/controller/auth_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authModel "moshaverino_backend/internals/features/accounts/auth/model"
	"moshaverino_backend/internals/testutil"
)

func newAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctl := NewAuthController(db)

	app := fiber.New()
	app.Post("/request-otp", ctl.RequestOTP)
	app.Post("/verify-otp", ctl.VerifyOTP)
	app.Post("/login", ctl.Login)
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyRaw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(bodyRaw, &body))
	return resp.StatusCode, body
}

func latestOTP(t *testing.T, db *gorm.DB, phone string) *authModel.LoginOTPModel {
	t.Helper()
	var otp authModel.LoginOTPModel
	require.NoError(t, db.
		Where("login_otp_phone_number = ?", phone).
		Order("login_otp_created_at desc").
		First(&otp).Error)
	return &otp
}

func TestRequestOTP_UnknownPhone(t *testing.T) {
	app, _ := newAuthApp(t)

	status, body := postJSON(t, app, "/request-otp", fiber.Map{"phone_number": "09123456789"})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestRequestOTP_StoresCode(t *testing.T) {
	app, db := newAuthApp(t)
	user := testutil.SeedUser(t, db, "student", "علی", "رضایی")

	status, _ := postJSON(t, app, "/request-otp", fiber.Map{"phone_number": user.UserPhoneNumber})
	require.Equal(t, fiber.StatusOK, status)

	otp := latestOTP(t, db, user.UserPhoneNumber)
	assert.Len(t, otp.LoginOTPCode, 6)
	assert.False(t, otp.LoginOTPIsUsed)
	assert.True(t, otp.LoginOTPExpiresAt.After(time.Now()))
}

func TestVerifyOTP_SuccessIssuesTokenAndConsumesCode(t *testing.T) {
	app, db := newAuthApp(t)
	user := testutil.SeedUser(t, db, "student", "علی", "رضایی")

	status, _ := postJSON(t, app, "/request-otp", fiber.Map{"phone_number": user.UserPhoneNumber})
	require.Equal(t, fiber.StatusOK, status)
	otp := latestOTP(t, db, user.UserPhoneNumber)

	status, body := postJSON(t, app, "/verify-otp", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"code":         otp.LoginOTPCode,
	})
	require.Equal(t, fiber.StatusOK, status)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	token, _ := data["access_token"].(string)
	assert.NotEmpty(t, token)

	// the code is single-use
	status, _ = postJSON(t, app, "/verify-otp", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"code":         otp.LoginOTPCode,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestVerifyOTP_WrongCodeCountsAttempts(t *testing.T) {
	app, db := newAuthApp(t)
	user := testutil.SeedUser(t, db, "student", "علی", "رضایی")

	status, _ := postJSON(t, app, "/request-otp", fiber.Map{"phone_number": user.UserPhoneNumber})
	require.Equal(t, fiber.StatusOK, status)
	otp := latestOTP(t, db, user.UserPhoneNumber)

	wrong := "000000"
	if otp.LoginOTPCode == wrong {
		wrong = "000001"
	}

	for i := 0; i < otpMaxAttempts; i++ {
		status, _ = postJSON(t, app, "/verify-otp", fiber.Map{
			"phone_number": user.UserPhoneNumber,
			"code":         wrong,
		})
		assert.Equal(t, fiber.StatusBadRequest, status)
	}

	// even the right code is rejected once the attempt budget is spent
	status, _ = postJSON(t, app, "/verify-otp", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"code":         otp.LoginOTPCode,
	})
	assert.Equal(t, fiber.StatusTooManyRequests, status)
}

func TestVerifyOTP_Expired(t *testing.T) {
	app, db := newAuthApp(t)
	user := testutil.SeedUser(t, db, "student", "علی", "رضایی")

	otp := authModel.LoginOTPModel{
		LoginOTPPhoneNumber: user.UserPhoneNumber,
		LoginOTPCode:        "123456",
		LoginOTPExpiresAt:   time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&otp).Error)

	status, _ := postJSON(t, app, "/verify-otp", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"code":         "123456",
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestPasswordLogin(t *testing.T) {
	app, db := newAuthApp(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := testutil.SeedUser(t, db, "admin", "مدیر", "سیستم")
	require.NoError(t, db.Model(user).Update("user_password", string(hash)).Error)

	status, body := postJSON(t, app, "/login", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"password":     "secret123",
	})
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])

	// wrong password and unknown phone share the same generic 401
	status, _ = postJSON(t, app, "/login", fiber.Map{
		"phone_number": user.UserPhoneNumber,
		"password":     "nope-nope",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = postJSON(t, app, "/login", fiber.Map{
		"phone_number": "+989120000000",
		"password":     "secret123",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
