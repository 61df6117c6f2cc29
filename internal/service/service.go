// Package service contains the business logic for the Trip Planner API.
// Services validate inputs, enforce business rules, and orchestrate repo and
// notifier calls. No SQL lives here; services depend on interfaces, not
// implementations.
package service

import (
	"context"

	"github.com/pkordes/trip-planner/backend/internal/domain"
	"github.com/pkordes/trip-planner/backend/internal/notify"
)

// Notifier is the notification fan-out the services drive.
// *notify.Notifier satisfies it.
type Notifier interface {
	InviteAll(ctx context.Context, trip domain.Trip, participants []domain.Participant) notify.Report
	ConfirmTrip(ctx context.Context, trip domain.Trip, owner domain.Participant) notify.Outcome
}

var _ Notifier = (*notify.Notifier)(nil)
