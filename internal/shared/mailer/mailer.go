// Package mailer sends plain text notifications over SMTP.
package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/shared/contextutil"

	"go.uber.org/zap"
)

// implicitTLSPort is the SMTPS port where the session starts inside TLS.
const implicitTLSPort = 465

type Message struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Bytes renders the message as an RFC 5322 text/plain mail.
func (m Message) Bytes() []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.To, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", sanitizeHeader(m.Subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(m.Body, "\n", "\r\n"))
	return []byte(b.String())
}

func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPSender struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

func NewSMTPSender(cfg config.SMTPConfig, logger ...*zap.Logger) *SMTPSender {
	l := zap.L().Named("mailer.smtp")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("mailer.smtp")
	}
	return &SMTPSender{cfg: cfg, logger: l}
}

func (s *SMTPSender) auth() smtp.Auth {
	if s.cfg.User == "" {
		return nil
	}
	return smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = s.cfg.Sender
	}
	if len(msg.To) == 0 {
		msg.To = []string{s.cfg.Recipient}
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	var err error
	if s.cfg.Port == implicitTLSPort {
		err = s.sendTLS(ctx, addr, msg)
	} else {
		err = smtp.SendMail(addr, s.auth(), msg.From, msg.To, msg.Bytes())
	}
	if err != nil {
		s.logger.Error("send mail failed", append(contextutil.ExtractMetadata(ctx).Fields(), zap.String("addr", addr), zap.Error(err))...)
		return fmt.Errorf("send mail: %w", err)
	}

	s.logger.Info("mail sent", append(contextutil.ExtractMetadata(ctx).Fields(), zap.String("subject", msg.Subject), zap.Strings("to", msg.To))...)
	return nil
}

func (s *SMTPSender) sendTLS(ctx context.Context, addr string, msg Message) error {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: 10 * time.Second},
		Config:    &tls.Config{ServerName: s.cfg.Host},
	}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer client.Close()

	if auth := s.auth(); auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(msg.From); err != nil {
		return err
	}
	for _, rcpt := range msg.To {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg.Bytes()); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
