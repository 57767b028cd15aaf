package emailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

type EmailJSConfig struct {
	ServiceID         string
	TemplateID        string // notification to the site owner
	WelcomeTemplateID string // acknowledgement to the submitter
	PublicKey         string
	PrivateKey        string // optional access token
	Endpoint          string
	Timeout           time.Duration // zero means no timeout
}

// APIError is a non-200 answer from the relay.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("emailjs: status %d: %s", e.Status, e.Body)
}

// EmailJS talks to the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	return &EmailJS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (e *EmailJS) templateFor(k Kind) (string, error) {
	switch k {
	case Notification:
		return e.cfg.TemplateID, nil
	case Welcome:
		return e.cfg.WelcomeTemplateID, nil
	}
	return "", errors.Errorf("emailjs: unknown message kind %q", k)
}

func (e *EmailJS) Send(ctx context.Context, msg Message) error {
	templateID, err := e.templateFor(msg.Kind)
	if err != nil {
		return err
	}
	if e.cfg.ServiceID == "" || templateID == "" || e.cfg.PublicKey == "" {
		return errors.Wrapf(ErrNotConfigured, "emailjs %s", msg.Kind)
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      e.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         e.cfg.PublicKey,
		AccessToken:    e.cfg.PrivateKey,
		TemplateParams: msg.Params,
	})
	if err != nil {
		return errors.Wrap(err, "emailjs: encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "emailjs: build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "emailjs: send")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
