// file: internals/features/management/chat/controller/chat_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "moshaverino_backend/internals/features/accounts/users/model"
	"moshaverino_backend/internals/features/management/chat/dto"
	"moshaverino_backend/internals/features/management/chat/model"
	helper "moshaverino_backend/internals/helpers"
	"moshaverino_backend/internals/middlewares/auth"
)

type ChatController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChatController(db *gorm.DB) *ChatController {
	return &ChatController{DB: db, Validate: validator.New()}
}

// GET /api/management/chat/conversations
//
// Lists everyone the caller has exchanged messages with, plus their
// unread count.
func (ctl *ChatController) Conversations(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	var messages []model.ChatMessageModel
	if err := ctl.DB.
		Where("chat_message_sender_id = ? OR chat_message_receiver_id = ?", userID, userID).
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی گفتگوها")
	}

	peerIDs := map[uuid.UUID]bool{}
	for _, m := range messages {
		peerIDs[m.ChatMessageSenderID] = true
		peerIDs[m.ChatMessageReceiverID] = true
	}
	delete(peerIDs, userID)

	conversations := make([]dto.ConversationResponse, 0, len(peerIDs))
	for peerID := range peerIDs {
		var peer userModel.UserModel
		if err := ctl.DB.First(&peer, "user_id = ?", peerID).Error; err != nil {
			continue
		}
		var unread int64
		ctl.DB.Model(&model.ChatMessageModel{}).
			Where("chat_message_sender_id = ? AND chat_message_receiver_id = ? AND chat_message_is_read = ?",
				peerID, userID, false).
			Count(&unread)
		conversations = append(conversations, dto.ConversationResponse{
			UserID:      peer.UserID,
			FullName:    peer.FullName(),
			Role:        peer.UserRole,
			UnreadCount: unread,
		})
	}
	return helper.JsonList(c, "", conversations, nil)
}

// GET /api/management/chat/messages/:user_id
//
// Returns the two-way history with the given user, oldest first, and
// marks the caller's incoming messages as read.
func (ctl *ChatController) Messages(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	peerID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه کاربر نامعتبر است")
	}

	var messages []model.ChatMessageModel
	err = ctl.DB.
		Where("(chat_message_sender_id = ? AND chat_message_receiver_id = ?) OR (chat_message_sender_id = ? AND chat_message_receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("chat_message_created_at asc").
		Find(&messages).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی پیام‌ها")
	}

	ctl.DB.Model(&model.ChatMessageModel{}).
		Where("chat_message_sender_id = ? AND chat_message_receiver_id = ? AND chat_message_is_read = ?",
			peerID, userID, false).
		Update("chat_message_is_read", true)

	return helper.JsonList(c, "", messages, nil)
}

// POST /api/management/chat/messages/:user_id
func (ctl *ChatController) SendMessage(c *fiber.Ctx) error {
	userID, err := auth.UserIDFromCtx(c)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	peerID, err := uuid.Parse(strings.TrimSpace(c.Params("user_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "شناسه کاربر نامعتبر است")
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "بدنه درخواست نامعتبر است")
	}
	if err := req.Validate(ctl.Validate); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var peer userModel.UserModel
	if err := ctl.DB.First(&peer, "user_id = ?", peerID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "کاربر گیرنده یافت نشد")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در واکشی کاربر")
	}

	message := model.ChatMessageModel{
		ChatMessageSenderID:   userID,
		ChatMessageReceiverID: peerID,
		ChatMessageText:       req.Text,
	}
	if err := ctl.DB.Create(&message).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "خطا در ارسال پیام")
	}
	return helper.JsonCreated(c, "پیام ارسال شد", message)
}
