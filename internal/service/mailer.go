package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"

	"you_translator/internal/config"
	"you_translator/internal/middleware"
)

//go:generate mockery --name Mailer --output ./mocks --outpkg mocks --case=underscore
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// LogMailer は送信せずにログへ出力します (開発用)
type LogMailer struct{}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	logger.Info("--- Sending Email (LogMailer) ---", "to", to, "subject", subject, "body", body)
	return nil
}

// SmtpMailer は認証なしの SMTP サーバー (mailhog 等) に送信します
type SmtpMailer struct {
	cfg *config.SMTPConfig
}

func (m *SmtpMailer) Send(ctx context.Context, to, subject, body string) error {
	logger := middleware.GetLogger(ctx)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	logger.Debug("Attempting to send email via SMTP", "smtp_addr", addr, "from", m.cfg.From, "to", to)

	// smtp.SendMail は STARTTLS 非対応のサーバーで失敗するので、低レベル API で平文送信する
	c, err := smtp.Dial(addr)
	if err != nil {
		logger.Error("Failed to connect to SMTP server", "error", err, "addr", addr)
		return err
	}
	defer c.Close()

	if err = c.Mail(m.cfg.From); err != nil {
		logger.Error("Failed to set MAIL FROM", "error", err, "from", m.cfg.From)
		return err
	}
	if err = c.Rcpt(to); err != nil {
		logger.Error("Failed to set RCPT TO", "error", err, "to", to)
		return err
	}

	wc, err := c.Data()
	if err != nil {
		logger.Error("Failed to open data writer", "error", err)
		return err
	}

	msg := "From: " + m.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n"

	if _, err = wc.Write([]byte(msg)); err != nil {
		_ = wc.Close()
		logger.Error("Failed to write email data", "error", err)
		return err
	}
	if err = wc.Close(); err != nil {
		logger.Error("Failed to finish email data", "error", err)
		return err
	}
	if err = c.Quit(); err != nil {
		logger.Warn("SMTP QUIT failed", "error", err)
	}

	logger.Info("Email sent successfully via SMTP", "to", to, "subject", subject)
	return nil
}

// NewMailer は mailer.type に応じた Mailer を生成します
func NewMailer(ctx context.Context, cfg *config.Config) Mailer {
	logger := slog.Default()
	switch cfg.Mailer.Type {
	case "smtp":
		logger.Info("Initializing SMTP mailer...")
		return &SmtpMailer{cfg: &cfg.SMTP}
	case "ses":
		logger.Info("Initializing SES mailer...")
		mailer, err := NewSESMailer(ctx, &cfg.SES)
		if err != nil {
			logger.Error("Failed to initialize SES mailer, falling back to LogMailer", "error", err)
			return &LogMailer{}
		}
		return mailer
	case "log":
		logger.Info("Initializing Log mailer...")
		return &LogMailer{}
	default:
		logger.Warn("Unknown mailer type, defaulting to LogMailer", "type", cfg.Mailer.Type)
		return &LogMailer{}
	}
}
