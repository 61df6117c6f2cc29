package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/mail"
)

var bodyTemplate = template.Must(template.New("body").Parse(`<div style="font-family: sans-serif; font-size: 16px; line-height: 1.6;">
  <p>{{.Intro}}</p>
  <p>{{.Action}}</p>
  <p><a href="{{.Link}}">{{.Label}}</a></p>
  <p>{{.Ignore}}</p>
</div>`))

type bodyData struct {
	Intro  string
	Action string
	Link   string
	Label  string
	Ignore string
}

// email holds the localized parts shared by every notification.
type email struct {
	subjectKey, introKey, actionKey, labelKey string
}

var (
	invitationEmail = email{keyInviteSubject, keyInviteIntro, keyInviteAction, keyInviteLabel}
	ownerEmail      = email{keyOwnerSubject, keyOwnerIntro, keyOwnerAction, keyOwnerLabel}
)

// compose renders one message for recipient. Start and end dates use the
// same long format in subject and body.
func (n *Notifier) compose(kind email, trip domain.Trip, to mail.Address, link string) (mail.Message, error) {
	start := n.locale.longDate(trip.StartsAt, n.cfg.Location)
	end := n.locale.longDate(trip.EndsAt, n.cfg.Location)

	data := bodyData{
		Intro:  n.locale.sprintf(kind.introKey, trip.Destination, start, end),
		Action: n.locale.sprintf(kind.actionKey),
		Link:   link,
		Label:  n.locale.sprintf(kind.labelKey),
		Ignore: n.locale.sprintf(keyIgnore),
	}

	var html bytes.Buffer
	if err := bodyTemplate.Execute(&html, data); err != nil {
		return mail.Message{}, fmt.Errorf("notify: render body: %w", err)
	}

	text := strings.Join([]string{data.Intro, "", data.Action, data.Link, "", data.Ignore}, "\n")

	return mail.Message{
		From:    n.cfg.From,
		To:      to,
		Subject: n.locale.sprintf(kind.subjectKey, trip.Destination, start),
		HTML:    html.String(),
		Text:    text,
	}, nil
}

// ParticipantConfirmLink is the link an invitee follows to confirm attendance.
func (n *Notifier) ParticipantConfirmLink(p domain.Participant) string {
	return n.cfg.APIBaseURL + "/participants/" + p.ID.String() + "/confirm"
}

// TripConfirmLink is the link the owner follows to confirm a new trip.
func (n *Notifier) TripConfirmLink(t domain.Trip) string {
	return n.cfg.APIBaseURL + "/trips/" + t.ID.String() + "/confirm"
}
