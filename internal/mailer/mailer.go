// File: internal/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"os"
	"strings"
)

// 可覆寫以便測試
var smtpSendMail = smtp.SendMail

// Mailer 寄送系統通知信件
type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, token string) error
}

// SMTPMailer 透過 SMTP 寄信，設定皆來自環境變數
type SMTPMailer struct {
	host        string
	port        string
	username    string
	password    string
	from        string
	frontendURL string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		host:        os.Getenv("SMTP_HOST"),
		port:        os.Getenv("SMTP_PORT"),
		username:    os.Getenv("SMTP_USER"),
		password:    os.Getenv("SMTP_PASSWORD"),
		from:        os.Getenv("SMTP_FROM"),
		frontendURL: strings.TrimRight(os.Getenv("FRONTEND_URL"), "/"),
	}
}

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to string, token string) error {
	if m.host == "" {
		return fmt.Errorf("SendPasswordReset: SMTP_HOST is not set")
	}
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: Reset your password",
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
		"",
		"We received a request to reset your password.",
		"",
		"Open the link below within one hour to choose a new password:",
		link,
		"",
		"If you did not request this, you can ignore this email.",
	}, "\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	addr := m.host + ":" + m.port
	if err := smtpSendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("SendPasswordReset: %w", err)
	}
	return nil
}

// FakeMailer 實作 Mailer 介面以便測試
type FakeMailer struct {
	SendPasswordResetFn func(ctx context.Context, to string, token string) error
}

func (m *FakeMailer) SendPasswordReset(ctx context.Context, to string, token string) error {
	if m.SendPasswordResetFn != nil {
		return m.SendPasswordResetFn(ctx, to, token)
	}
	return nil
}
