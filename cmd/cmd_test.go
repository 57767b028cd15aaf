package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/config"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/contact"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/content"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/emailrelay"
)

func TestWriteCatalogJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, "json"))

	var got content.Catalog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Projects, len(content.Projects()))
	assert.Equal(t, content.Owner().Name, got.Profile.Name)
}

func TestWriteCatalogYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeCatalog(&buf, "yaml"))

	var got content.Catalog
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got.Experiences, len(content.Experiences()))
	assert.Contains(t, buf.String(), "source_url:")
}

func TestWriteCatalogUnknownFormat(t *testing.T) {
	assert.Error(t, writeCatalog(&bytes.Buffer{}, "toml"))
}

func TestNewSender(t *testing.T) {
	s, err := newSender(config.Config{MailTransport: config.TransportEmailJS})
	require.NoError(t, err)
	assert.IsType(t, &emailrelay.EmailJS{}, s)

	s, err = newSender(config.Config{MailTransport: config.TransportSMTP})
	require.NoError(t, err)
	assert.IsType(t, &emailrelay.SMTP{}, s)

	_, err = newSender(config.Config{MailTransport: "pigeon"})
	assert.Error(t, err)
}

func TestConfigWarnings(t *testing.T) {
	cfg := config.Config{
		MailTransport: config.TransportEmailJS,
		ResumePath:    t.TempDir(),
	}
	warnings := configWarnings(cfg)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "EmailJS")

	cfg.EmailJS = emailrelay.EmailJSConfig{ServiceID: "s", TemplateID: "t", WelcomeTemplateID: "w", PublicKey: "k"}
	assert.Empty(t, configWarnings(cfg))
}

func TestSMTPSenderHonoursMailTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	accepted := make(chan net.Conn, 4)
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			accepted <- c
		}
	}()
	t.Cleanup(func() {
		ln.Close()
		for {
			select {
			case c := <-accepted:
				c.Close()
			default:
				return
			}
		}
	})

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	t.Setenv("MAIL_TRANSPORT", "smtp")
	t.Setenv("MAIL_TIMEOUT", "200ms")
	t.Setenv("SMTP_HOST", host)
	t.Setenv("SMTP_PORT", port)
	t.Setenv("SMTP_USER", "site@example.com")
	t.Setenv("SMTP_PASS", "secret")

	cfg, err := config.Load()
	require.NoError(t, err)
	sender, err := newSender(cfg)
	require.NoError(t, err)
	pipeline := contact.NewPipeline(sender, cfg.OwnerEmail)

	done := make(chan error, 1)
	go func() {
		_, err := pipeline.Deliver(context.WithoutCancel(context.Background()),
			contact.Form{Name: "Jane", Email: "jane@x.com", Message: "Hi"})
		done <- err
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("delivery still pending after MAIL_TIMEOUT elapsed")
	}
}
