package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/mail"
)

// Notifier fans trip emails out over a mail.Sender.
type Notifier struct {
	cfg    Config
	sender mail.Sender
	locale locale
	log    *slog.Logger
}

// New validates cfg and returns a Notifier. sender and log are required.
func New(cfg Config, sender mail.Sender, log *slog.Logger) (*Notifier, error) {
	if sender == nil {
		return nil, errors.New("notify: sender is required")
	}
	if log == nil {
		return nil, errors.New("notify: logger is required")
	}
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	return &Notifier{
		cfg:    cfg,
		sender: sender,
		locale: newLocale(cfg.Locale),
		log:    log,
	}, nil
}

// Outcome is the result of one recipient's send.
type Outcome struct {
	ParticipantID uuid.UUID
	Email         string
	DeliveryRef   string
	Err           error
}

// Report holds one Outcome per recipient, in input order.
type Report struct {
	Outcomes []Outcome
}

// Sent returns the number of successful sends.
func (r Report) Sent() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Err == nil {
			n++
		}
	}
	return n
}

// Failed returns the outcomes whose send failed.
func (r Report) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

// Err joins every recipient failure, or returns nil when all sends succeeded.
func (r Report) Err() error {
	var errs []error
	for _, o := range r.Failed() {
		errs = append(errs, fmt.Errorf("participant %s <%s>: %w", o.ParticipantID, o.Email, o.Err))
	}
	return errors.Join(errs...)
}

// InviteAll sends one invitation per participant, all concurrently, and
// returns once every send has settled. A failed send is recorded in its own
// Outcome and never cancels or hides the others.
//
// Sends are detached from ctx cancellation: by the time this runs the state
// change that triggered it is already committed, and a client hanging up must
// not leave half the recipients without their email.
func (n *Notifier) InviteAll(ctx context.Context, trip domain.Trip, participants []domain.Participant) Report {
	ctx = context.WithoutCancel(ctx)
	outcomes := make([]Outcome, len(participants))

	var g errgroup.Group
	for i, p := range participants {
		g.Go(func() error {
			// Send errors land in outcomes[i]; the group only joins the goroutines.
			outcomes[i] = n.send(ctx, invitationEmail, trip, p, n.ParticipantConfirmLink(p))
			return nil
		})
	}
	_ = g.Wait() // always nil, see outcomes

	report := Report{Outcomes: outcomes}
	n.log.InfoContext(ctx, "trip invitations dispatched",
		"trip_id", trip.ID,
		"recipients", len(outcomes),
		"sent", report.Sent(),
		"failed", len(outcomes)-report.Sent(),
	)
	return report
}

// ConfirmTrip sends the owner the link that confirms a newly created trip.
func (n *Notifier) ConfirmTrip(ctx context.Context, trip domain.Trip, owner domain.Participant) Outcome {
	return n.send(context.WithoutCancel(ctx), ownerEmail, trip, owner, n.TripConfirmLink(trip))
}

func (n *Notifier) send(ctx context.Context, kind email, trip domain.Trip, p domain.Participant, link string) Outcome {
	out := Outcome{ParticipantID: p.ID, Email: p.Email}

	to := mail.Address{Email: p.Email}
	if p.Name != nil {
		to.Name = *p.Name
	}

	msg, err := n.compose(kind, trip, to, link)
	if err != nil {
		out.Err = err
		return out
	}

	ref, err := n.sender.Send(ctx, msg)
	if err != nil {
		out.Err = err
		n.log.WarnContext(ctx, "mail delivery failed",
			"trip_id", trip.ID,
			"participant_id", p.ID,
			"error", err,
		)
		return out
	}

	out.DeliveryRef = ref
	n.log.InfoContext(ctx, "mail delivered",
		"trip_id", trip.ID,
		"participant_id", p.ID,
		"delivery_ref", ref,
	)
	return out
}
