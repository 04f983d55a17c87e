package appointment

import (
	"context"
	"errors"
	"time"
)

var ErrAppointmentNotFound = errors.New("appointment not found")

// Repository contains all storage interactions needed by the service.
// Lookups by id return ErrAppointmentNotFound when the row is absent.
type Repository interface {
	CreateAppointment(ctx context.Context, a Appointment) (int64, error)
	GetAppointmentByID(ctx context.Context, id int64) (*Appointment, error)

	// ListAppointmentsByTimeRange returns appointments with from <= time < to.
	ListAppointmentsByTimeRange(ctx context.Context, from, to time.Time) ([]Appointment, error)

	UpdateAppointmentStatus(ctx context.Context, id int64, status Status) error
	DeleteAppointment(ctx context.Context, id int64) (*Appointment, error)
}

// EventPublisher delivers domain events to interested parties.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Event) error { return nil }

// NoopPublisher drops every event.
var NoopPublisher EventPublisher = noopPublisher{}
