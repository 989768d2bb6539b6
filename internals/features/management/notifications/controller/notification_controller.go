// file: internals/features/management/notifications/controller/notification_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
	"moshaverino_backend/internals/features/management/notifications/dto"
	"moshaverino_backend/internals/features/management/notifications/model"
	"moshaverino_backend/internals/features/management/notifications/sender"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

type NotificationController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Telegram *sender.TelegramSender
	SMS      *sender.SMSSender
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:       db,
		Validate: validator.New(),
		Telegram: sender.NewTelegramSender(),
		SMS:      sender.NewSMSSender(),
	}
}

/* =========================================================
   Send
========================================================= */

// POST /api/management/notifications/send
//
// Stores the notification, then fans out over the requested channels.
// The panel channel is just the stored recipient row; telegram and sms
// failures are recorded per recipient instead of failing the request.
func (ctl *NotificationController) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	senderID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var users []userModel.UserModel
	if err := ctl.DB.Where("user_id IN ?", req.UserIDs).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربران")
	}
	if len(users) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "هیچ گیرنده‌ای یافت نشد")
	}

	notification := model.NotificationModel{
		NotificationMessage:  req.Message,
		NotificationChannels: pq.StringArray(req.Channels),
		NotificationSenderID: &senderID,
	}
	if err := ctl.DB.Create(&notification).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ثبت اعلان")
	}

	results := make([]dto.DeliveryResult, 0, len(users))
	for i := range users {
		results = append(results, ctl.deliverToUser(c, &notification, &users[i]))
	}

	return helper.JsonCreated(c, "اعلان ارسال شد", dto.SendNotificationResponse{
		NotificationID: notification.NotificationID,
		Results:        results,
	})
}

func (ctl *NotificationController) deliverToUser(c *fiber.Ctx, n *model.NotificationModel, u *userModel.UserModel) dto.DeliveryResult {
	result := dto.DeliveryResult{UserID: u.UserID}

	recipient := model.NotificationRecipientModel{
		NotificationRecipientNotificationID: n.NotificationID,
		NotificationRecipientUserID:         u.UserID,
	}

	if n.HasChannel(model.ChannelTelegram) {
		if u.UserTelegramChatID == nil || *u.UserTelegramChatID == "" {
			msg := "کاربر شناسه تلگرام ندارد"
			recipient.NotificationRecipientTelegramError = &msg
			result.TelegramError = msg
		} else if err := ctl.Telegram.Send(c.UserContext(), *u.UserTelegramChatID, n.NotificationMessage); err != nil {
			msg := err.Error()
			recipient.NotificationRecipientTelegramError = &msg
			result.TelegramError = msg
		} else {
			recipient.NotificationRecipientTelegramSent = true
			result.TelegramSent = true
		}
	}

	if n.HasChannel(model.ChannelSMS) {
		if err := ctl.SMS.Send(c.UserContext(), u.UserPhoneNumber, n.NotificationMessage); err != nil {
			msg := err.Error()
			recipient.NotificationRecipientSMSError = &msg
			result.SMSError = msg
		} else {
			recipient.NotificationRecipientSMSSent = true
			result.SMSSent = true
		}
	}

	if err := ctl.DB.Create(&recipient).Error; err == nil {
		result.PanelStored = true
	}
	return result
}

/* =========================================================
   Inbox
========================================================= */

// GET /api/management/notifications/inbox
func (ctl *NotificationController) Inbox(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var recipients []model.NotificationRecipientModel
	err = ctl.DB.
		Where("notification_recipient_user_id = ?", userID).
		Order("notification_recipient_created_at desc").
		Find(&recipients).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی اعلان‌ها")
	}

	items := make([]dto.InboxItemResponse, 0, len(recipients))
	for i := range recipients {
		var notification model.NotificationModel
		err := ctl.DB.Preload("Sender").
			First(&notification, "notification_id = ?", recipients[i].NotificationRecipientNotificationID).Error
		if err != nil {
			continue
		}
		if !notification.HasChannel(model.ChannelPanel) {
			continue
		}
		items = append(items, dto.NewInboxItemResponse(&recipients[i], &notification))
	}
	return helper.JsonList(c, "", items, nil)
}

// POST /api/management/notifications/mark-read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var req dto.MarkReadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.Model(&model.NotificationRecipientModel{}).
		Where("notification_recipient_user_id = ?", userID).
		Where("notification_recipient_notification_id IN ?", req.NotificationIDs).
		Update("notification_recipient_is_read", true)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در بروزرسانی اعلان‌ها")
	}
	return helper.JsonUpdated(c, "اعلان‌ها خوانده شدند", fiber.Map{"updated_count": res.RowsAffected})
}

// GET /api/management/notifications/recipients
//
// Lists every user as a potential notification target for the admin UI.
func (ctl *NotificationController) RecipientOptions(c *fiber.Ctx) error {
	var users []userModel.UserModel
	if err := ctl.DB.Order("user_last_name asc, user_first_name asc").Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربران")
	}

	type option struct {
		UserID         string `json:"user_id"`
		FullName       string `json:"full_name"`
		Role           string `json:"role"`
		PhoneNumber    string `json:"phone_number"`
		TelegramChatID string `json:"telegram_chat_id"`
	}
	options := make([]option, 0, len(users))
	for _, u := range users {
		o := option{
			UserID:      u.UserID.String(),
			FullName:    u.FullName(),
			Role:        u.UserRole,
			PhoneNumber: u.UserPhoneNumber,
		}
		if u.UserTelegramChatID != nil {
			o.TelegramChatID = *u.UserTelegramChatID
		}
		options = append(options, o)
	}
	return helper.JsonList(c, "", options, nil)
}
