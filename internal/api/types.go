package api

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/leobro/appointment-scheduling/internal/appointment"
)

type CreateAppointmentRequest struct {
	ClientName string          `json:"clientName"`
	Time       string          `json:"time"`
	Price      decimal.Decimal `json:"price"`
	Status     string          `json:"status"`
}

// dateTimeLayouts are tried in order; layouts without an offset are read in
// the server location.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

const dateLayout = "2006-01-02"

func (r CreateAppointmentRequest) toAppointment(loc *time.Location) (appointment.Appointment, error) {
	a := appointment.Appointment{
		ClientName: r.ClientName,
		Price:      r.Price,
		Status:     appointment.Status(r.Status),
	}
	if r.Time == "" {
		return a, nil
	}

	t, err := parseDateTime(r.Time, loc)
	if err != nil {
		return a, err
	}
	a.Time = t
	return a, nil
}

func parseDateTime(raw string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("time %q is not an ISO-8601 date-time", raw)
}

func parseDate(name, raw string, loc *time.Location) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("%s is required", name)
	}
	d, err := time.ParseInLocation(dateLayout, raw, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", name)
	}
	return d, nil
}
