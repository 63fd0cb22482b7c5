// File: internal/mailer/mailer_test.go
package mailer

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendPasswordReset(t *testing.T) {
	original := smtpSendMail
	restore := func() { smtpSendMail = original }

	t.Run("missing host", func(t *testing.T) {
		defer restore()
		m := &SMTPMailer{}
		require.Error(t, m.SendPasswordReset(context.Background(), "user@example.com", "tok"))
	})

	t.Run("sends reset link", func(t *testing.T) {
		defer restore()
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		smtpSendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr = addr
			gotFrom = from
			gotTo = to
			gotMsg = msg
			return nil
		}
		m := &SMTPMailer{
			host:        "smtp.example.com",
			port:        "587",
			from:        "noreply@iapedia.test",
			frontendURL: "https://iapedia.test",
		}
		require.NoError(t, m.SendPasswordReset(context.Background(), "user@example.com", "abc123"))
		require.Equal(t, "smtp.example.com:587", gotAddr)
		require.Equal(t, "noreply@iapedia.test", gotFrom)
		require.Equal(t, []string{"user@example.com"}, gotTo)
		require.Contains(t, string(gotMsg), "https://iapedia.test/reset-password?token=abc123")
	})

	t.Run("send failure", func(t *testing.T) {
		defer restore()
		smtpSendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("dial failed")
		}
		m := &SMTPMailer{host: "smtp.example.com", port: "25"}
		require.Error(t, m.SendPasswordReset(context.Background(), "user@example.com", "tok"))
	})
}

func TestNewSMTPMailer(t *testing.T) {
	t.Setenv("SMTP_HOST", "mail.local")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("FRONTEND_URL", "https://app.local/")

	m := NewSMTPMailer()
	require.Equal(t, "mail.local", m.host)
	require.Equal(t, "2525", m.port)
	require.Equal(t, "https://app.local", m.frontendURL)
}
