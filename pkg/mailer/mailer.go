package mailer

import (
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"doro/backend/config"
)

// Mailer 邮件发送接口
// 目前仅用于临时密码下发；实现可替换（SMTP / 控制台）
type Mailer interface {
	Send(to, subject, body string) error
}

// New 根据配置选择实现：开发环境打印到日志，生产环境走 SMTP
func New(cfg *config.MailConfig, logger *zap.Logger) Mailer {
	if cfg.Console || cfg.SMTPHost == "" {
		return &consoleMailer{logger: logger}
	}
	return &smtpMailer{cfg: cfg, logger: logger}
}

// ── SMTP 实现 ──

type smtpMailer struct {
	cfg    *config.MailConfig
	logger *zap.Logger
}

func (m *smtpMailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n",
		m.cfg.From, to, subject, body,
	))

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	m.logger.Info("邮件已发送", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// ── 控制台实现（开发环境） ──

type consoleMailer struct {
	logger *zap.Logger
}

func (m *consoleMailer) Send(to, subject, body string) error {
	m.logger.Info("邮件（控制台模式）",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

