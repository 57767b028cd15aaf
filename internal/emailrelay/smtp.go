package emailrelay

import (
	"bytes"
	"context"
	"crypto/tls"
	"net"
	"net/smtp"
	"strings"
	"text/template"
	"time"

	"github.com/pkg/errors"
)

type SMTPConfig struct {
	Host string // e.g. "smtp.gmail.com"
	Port string // e.g. "587"
	User string
	Pass string

	Timeout time.Duration // whole conversation, dial included; zero means none
}

var smtpTemplates = map[Kind]*template.Template{
	Notification: template.Must(template.New("notification").Parse(`Subject: Portfolio Contact: {{.from_name}}
Reply-To: {{.from_email}}

New contact form submission from your portfolio:

Name: {{.from_name}}
Email: {{.from_email}}
Message:
{{.message}}

---
Sent from your portfolio contact form
`)),
	Welcome: template.Must(template.New("welcome").Parse(`Subject: Thanks for reaching out, {{.from_name}}

Hi {{.from_name}},

Thank you for getting in touch. I have received your message and will get back to you soon.
`)),
}

type sendMailFunc func(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTP sends the messages through a plain SMTP relay with PLAIN auth.
type SMTP struct {
	cfg      SMTPConfig
	sendMail sendMailFunc
}

func NewSMTP(cfg SMTPConfig) *SMTP {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	s := &SMTP{cfg: cfg}
	s.sendMail = s.deliver
	return s
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	if s.cfg.User == "" || s.cfg.Pass == "" {
		return errors.Wrap(ErrNotConfigured, "smtp credentials")
	}
	tmpl, ok := smtpTemplates[msg.Kind]
	if !ok {
		return errors.Errorf("smtp: unknown message kind %q", msg.Kind)
	}
	to := msg.Params[ParamToEmail]
	if to == "" {
		return errors.New("smtp: message has no recipient")
	}

	var body bytes.Buffer
	body.WriteString("To: " + to + "\r\n")
	body.WriteString("From: " + s.cfg.User + "\r\n")
	if err := tmpl.Execute(&body, headerSafe(msg.Params)); err != nil {
		return errors.Wrapf(err, "smtp: render %s", msg.Kind)
	}

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, s.cfg.Host)
	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	if err := s.sendMail(ctx, addr, auth, s.cfg.User, []string{to}, body.Bytes()); err != nil {
		return errors.Wrapf(err, "smtp: send %s", msg.Kind)
	}
	return nil
}

// deliver is smtp.SendMail bounded by the configured timeout and by ctx. The
// connection deadline covers a relay that accepts but never answers.
func (s *SMTP) deliver(ctx context.Context, addr string, a smtp.Auth, from string, to []string, msg []byte) error {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return errors.Wrap(err, "dial")
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()
			return errors.Wrap(err, "set deadline")
		}
	}
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return errors.Wrap(err, "greeting")
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}); err != nil {
			return errors.Wrap(err, "starttls")
		}
	}
	if ok, _ := c.Extension("AUTH"); ok && a != nil {
		if err := c.Auth(a); err != nil {
			return errors.Wrap(err, "auth")
		}
	}
	if err := c.Mail(from); err != nil {
		return errors.Wrap(err, "mail from")
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return errors.Wrap(err, "rcpt to")
		}
	}
	w, err := c.Data()
	if err != nil {
		return errors.Wrap(err, "data")
	}
	if _, err := w.Write(msg); err != nil {
		return errors.Wrap(err, "write body")
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "end body")
	}
	return errors.Wrap(c.Quit(), "quit")
}

var headerBreaks = strings.NewReplacer("\r", " ", "\n", " ")

// headerSafe strips line breaks from the values that end up in headers.
func headerSafe(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		if k != ParamMessage {
			v = headerBreaks.Replace(v)
		}
		out[k] = v
	}
	return out
}
