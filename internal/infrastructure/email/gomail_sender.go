// Package email implementa el despacho de informes por SMTP.
package email

import (
	"context"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/jhoicas/visitas-api/internal/application/report"
	"github.com/jhoicas/visitas-api/pkg/config"
)

var _ report.Mailer = (*GomailSender)(nil)

// GomailSender envía el informe como adjunto PDF vía SMTP.
type GomailSender struct {
	cfg config.SMTPConfig
}

// NewGomailSender construye el sender con la configuración SMTP.
func NewGomailSender(cfg config.SMTPConfig) *GomailSender {
	return &GomailSender{cfg: cfg}
}

// SendReport envía el PDF adjunto al destinatario. El adjunto se escribe
// desde memoria, sin archivo temporal.
func (s *GomailSender) SendReport(_ context.Context, to, subject, body, filename string, pdf []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(filename,
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}),
		gomail.SetHeader(map[string][]string{"Content-Type": {"application/pdf"}}),
	)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp: enviar informe a %s: %w", to, err)
	}
	return nil
}
