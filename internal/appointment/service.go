package appointment

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Clock returns the current moment. Its location defines "today" and the
// local work hours.
type Clock func() time.Time

// ClockIn returns a wall clock reporting time in loc.
func ClockIn(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}

// PublishTimeout bounds how long a write waits on the event publisher.
const PublishTimeout = 2 * time.Second

type Service struct {
	repo           Repository
	generator      *SlotGenerator
	publisher      EventPublisher
	publishTimeout time.Duration
	now            Clock
	logger         zerolog.Logger
}

func NewService(repo Repository, generator *SlotGenerator, publisher EventPublisher, now Clock, logger zerolog.Logger) *Service {
	if publisher == nil {
		publisher = NoopPublisher
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		repo:           repo,
		generator:      generator,
		publisher:      publisher,
		publishTimeout: PublishTimeout,
		now:            now,
		logger:         logger,
	}
}

// CreateAppointment validates and persists a new appointment. The payload of
// a successful outcome is the id assigned by storage.
func (s *Service) CreateAppointment(ctx context.Context, a Appointment) Outcome {
	if errs := ValidateAppointment(a, s.now()); len(errs) > 0 {
		return Invalid(errs)
	}

	a.ID = 0
	id, err := s.repo.CreateAppointment(ctx, a)
	if err != nil {
		return s.fatal(err, "create appointment")
	}

	a.ID = id
	s.publish(ctx, Event{Type: EventAppointmentCreated, AppointmentID: id, Appointment: &a})

	return Created(id)
}

// CreateRandomAppointments fills open slots from now to the end of endDate
// with generated appointments. The payload is the number actually persisted,
// which can be lower than quantity. A storage failure stops the loop and
// leaves earlier appointments in place.
func (s *Service) CreateRandomAppointments(ctx context.Context, quantity int, endDate time.Time) Outcome {
	now := s.now()
	if errs := ValidateNewAppointmentBatch(quantity, endDate, now); len(errs) > 0 {
		return Invalid(errs)
	}

	created := 0
	for _, a := range s.generator.Generate(quantity, now, endDate) {
		id, err := s.repo.CreateAppointment(ctx, a)
		if err != nil {
			s.logger.Error().
				Err(err).
				Int("created", created).
				Int("requested", quantity).
				Msg("random fill aborted")
			return Fatal()
		}
		created++

		a.ID = id
		s.publish(ctx, Event{Type: EventAppointmentCreated, AppointmentID: id, Appointment: &a})
	}

	s.logger.Info().Int("created", created).Int("requested", quantity).Msg("random fill complete")
	return OK(created)
}

func (s *Service) GetAppointment(ctx context.Context, id int64) Outcome {
	a, err := s.repo.GetAppointmentByID(ctx, id)
	if err != nil {
		return s.lookupFailure(err, "get appointment")
	}
	return OK(a)
}

// ListAppointments returns every appointment scheduled on the dates from
// startDate to endDate inclusive, cheapest first.
func (s *Service) ListAppointments(ctx context.Context, startDate, endDate time.Time) Outcome {
	if errs := ValidateDateRange(startDate, endDate); len(errs) > 0 {
		return Invalid(errs)
	}

	from := DateOf(startDate)
	to := DateOf(endDate).AddDate(0, 0, 1)

	apps, err := s.repo.ListAppointmentsByTimeRange(ctx, from, to)
	if err != nil {
		return s.fatal(err, "list appointments")
	}
	if apps == nil {
		apps = []Appointment{}
	}

	sort.SliceStable(apps, func(i, j int) bool {
		return apps[i].Price.LessThan(apps[j].Price)
	})

	return OK(apps)
}

func (s *Service) UpdateAppointmentStatus(ctx context.Context, id int64, status Status) Outcome {
	if errs := validateStatus(status); len(errs) > 0 {
		return Invalid(errs)
	}

	if err := s.repo.UpdateAppointmentStatus(ctx, id, status); err != nil {
		return s.lookupFailure(err, "update appointment status")
	}

	s.publish(ctx, Event{Type: EventAppointmentStatusUpdated, AppointmentID: id, Status: status})

	return OK(nil)
}

// DeleteAppointment removes the appointment and returns its last state.
func (s *Service) DeleteAppointment(ctx context.Context, id int64) Outcome {
	a, err := s.repo.DeleteAppointment(ctx, id)
	if err != nil {
		return s.lookupFailure(err, "delete appointment")
	}

	s.publish(ctx, Event{Type: EventAppointmentDeleted, AppointmentID: id, Appointment: a})

	return OK(a)
}

func (s *Service) lookupFailure(err error, op string) Outcome {
	if errors.Is(err, ErrAppointmentNotFound) {
		return NotFound()
	}
	return s.fatal(err, op)
}

func (s *Service) fatal(err error, op string) Outcome {
	s.logger.Error().Err(err).Str("op", op).Msg("storage failure")
	return Fatal()
}

// publish is best effort; a lost event never changes the outcome.
func (s *Service) publish(ctx context.Context, ev Event) {
	ev.OccurredAt = s.now()

	ctx, cancel := context.WithTimeout(ctx, s.publishTimeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, ev); err != nil {
		s.logger.Warn().
			Err(err).
			Str("event_type", string(ev.Type)).
			Int64("appointment_id", ev.AppointmentID).
			Msg("failed to publish event")
	}
}
