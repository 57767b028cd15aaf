package contact

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/emailrelay"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/log"
	"github.com/ABDULAAQILKHAN/solutions-with-aaqil/internal/metrics"
)

// Deliverer sends a validated form.
type Deliverer interface {
	Deliver(ctx context.Context, f Form) (Delivery, error)
}

// Notification is the result of the first step. The acknowledgement step
// only accepts this value, so it cannot run before the owner was notified.
type Notification struct {
	Submitter Form
	Owner     string
}

// Delivery is the result of a completed two-step send.
type Delivery struct {
	Notification
	AcknowledgedTo string
}

// Pipeline notifies the site owner and then acknowledges the submitter.
type Pipeline struct {
	sender     emailrelay.Sender
	ownerEmail string
	logger     zerolog.Logger
}

func NewPipeline(sender emailrelay.Sender, ownerEmail string) *Pipeline {
	return &Pipeline{
		sender:     sender,
		ownerEmail: ownerEmail,
		logger:     log.WithComponent("contact"),
	}
}

// Deliver runs notify and, only if it succeeded, acknowledge. There is no
// retry; a failure is returned to the caller as is.
func (p *Pipeline) Deliver(ctx context.Context, f Form) (Delivery, error) {
	n, err := p.notify(ctx, f)
	if err != nil {
		return Delivery{}, err
	}
	return p.acknowledge(ctx, n)
}

func (p *Pipeline) notify(ctx context.Context, f Form) (Notification, error) {
	err := p.sender.Send(ctx, emailrelay.Message{
		Kind: emailrelay.Notification,
		Params: map[string]string{
			emailrelay.ParamFromName:  f.Name,
			emailrelay.ParamFromEmail: f.Email,
			emailrelay.ParamToEmail:   p.ownerEmail,
			emailrelay.ParamMessage:   f.Message,
		},
	})
	metrics.RecordRelaySend(string(emailrelay.Notification), err)
	if err != nil {
		l := log.WithContext(ctx, p.logger)
		l.Error().Err(err).Str("step", "notify").Msg("contact send failed")
		return Notification{}, errors.Wrap(err, "notify owner")
	}
	return Notification{Submitter: f, Owner: p.ownerEmail}, nil
}

func (p *Pipeline) acknowledge(ctx context.Context, n Notification) (Delivery, error) {
	err := p.sender.Send(ctx, emailrelay.Message{
		Kind: emailrelay.Welcome,
		Params: map[string]string{
			emailrelay.ParamFromName: n.Submitter.Name,
			emailrelay.ParamToEmail:  n.Submitter.Email,
		},
	})
	metrics.RecordRelaySend(string(emailrelay.Welcome), err)
	if err != nil {
		l := log.WithContext(ctx, p.logger)
		l.Error().Err(err).Str("step", "acknowledge").Msg("contact send failed")
		return Delivery{}, errors.Wrap(err, "acknowledge submitter")
	}
	return Delivery{Notification: n, AcknowledgedTo: n.Submitter.Email}, nil
}
