// file: internals/features/management/notifications/sender/sender.go

// Package sender wraps the two outbound delivery channels: the
// Telegram worker proxy and the Kavenegar SMS gateway.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"moshaverino_backend/internals/configs"
	helper "moshaverino_backend/internals/helpers"
)

var (
	ErrTelegramNotConfigured = errors.New("telegram delivery is not configured")
	ErrSMSNotConfigured      = errors.New("sms delivery is not configured")
)

/* =========================================================
   Telegram (via worker proxy)
========================================================= */

// TelegramSender posts messages through a worker proxy that holds the
// outbound connection to api.telegram.org. The proxy expects the bot
// token in the request body and answers {"ok": bool, "description"}.
type TelegramSender struct {
	BotToken  string
	WorkerURL string
	Client    *http.Client
}

func NewTelegramSender() *TelegramSender {
	return &TelegramSender{
		BotToken:  configs.TelegramBotToken,
		WorkerURL: configs.TelegramWorkerURL,
		Client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (t *TelegramSender) Configured() bool {
	return t.BotToken != "" && t.WorkerURL != ""
}

func (t *TelegramSender) Send(ctx context.Context, chatID, text string) error {
	if !t.Configured() {
		return ErrTelegramNotConfigured
	}

	body, err := json.Marshal(map[string]string{
		"token":   t.BotToken,
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.WorkerURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return errors.New("telegram proxy request failed: " + err.Error())
	}
	defer resp.Body.Close()

	var out struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
		Error       string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return errors.New("invalid response from telegram proxy")
	}
	if !out.OK {
		msg := out.Description
		if msg == "" {
			msg = out.Error
		}
		if msg == "" {
			msg = "failed to send telegram notification"
		}
		return errors.New(msg)
	}
	return nil
}

/* =========================================================
   SMS (Kavenegar)
========================================================= */

type SMSSender struct {
	APIKey  string
	Sender  string
	BaseURL string
	Client  *http.Client
}

func NewSMSSender() *SMSSender {
	return &SMSSender{
		APIKey:  configs.KavenegarAPIKey,
		Sender:  configs.KavenegarSender,
		BaseURL: "https://api.kavenegar.com",
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *SMSSender) Configured() bool { return s.APIKey != "" }

func (s *SMSSender) Send(ctx context.Context, phoneNumber, text string) error {
	if !s.Configured() {
		return ErrSMSNotConfigured
	}
	normalized := helper.NormalizePhoneNumber(phoneNumber)
	if normalized == "" {
		return errors.New("شماره موبایل نامعتبر است")
	}

	form := url.Values{}
	form.Set("receptor", normalized)
	form.Set("message", text)
	if s.Sender != "" {
		form.Set("sender", s.Sender)
	}

	endpoint := s.BaseURL + "/v1/" + s.APIKey + "/sms/send.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.Client.Do(req)
	if err != nil {
		return errors.New("sms request failed: " + err.Error())
	}
	defer resp.Body.Close()

	var out struct {
		Return struct {
			Status  int    `json:"status"`
			Message string `json:"message"`
		} `json:"return"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return errors.New("invalid response from sms gateway")
	}
	if out.Return.Status != 200 {
		msg := out.Return.Message
		if msg == "" {
			msg = "failed to send sms"
		}
		return errors.New(msg)
	}
	return nil
}
