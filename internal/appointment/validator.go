package appointment

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MsgNameMissing   = "Name is mandatory"
	MsgTimeMissing   = "Time is mandatory"
	MsgTimeInPast    = "The time is in the past"
	MsgPriceInvalid  = "Price must be positive, the maximal value is 99 999"
	MsgStatusMissing = "Status is mandatory"
	MsgStatusUnknown = "Status must be one of OBTAIN, WAIT, PASS"

	MsgQuantity  = "Quantity must be a positive integer."
	MsgEndDate   = "End date must be in future."
	MsgDateRange = "Start date must be before the end date."
)

// MaxPrice is the inclusive upper bound for an appointment price.
var MaxPrice = decimal.RequireFromString("99999.99")

// ValidateAppointment checks a new appointment against the booking rules.
// Every failing field contributes its own message.
func ValidateAppointment(a Appointment, now time.Time) []string {
	errs := []string{}

	if strings.TrimSpace(a.ClientName) == "" {
		errs = append(errs, MsgNameMissing)
	}

	if a.Time.IsZero() {
		errs = append(errs, MsgTimeMissing)
	} else if !a.Time.After(now) {
		errs = append(errs, MsgTimeInPast)
	}

	if !a.Price.IsPositive() || a.Price.GreaterThan(MaxPrice) {
		errs = append(errs, MsgPriceInvalid)
	}

	errs = append(errs, validateStatus(a.Status)...)

	return errs
}

func validateStatus(s Status) []string {
	switch {
	case s == "":
		return []string{MsgStatusMissing}
	case !s.Valid():
		return []string{MsgStatusUnknown}
	}
	return nil
}

// ValidateNewAppointmentBatch checks a random-fill request. Both rules are
// evaluated independently.
func ValidateNewAppointmentBatch(quantity int, endDate, now time.Time) []string {
	errs := []string{}

	if quantity <= 0 {
		errs = append(errs, MsgQuantity)
	}

	if calendarDay(endDate).Before(calendarDay(now)) {
		errs = append(errs, MsgEndDate)
	}

	return errs
}

// ValidateDateRange accepts equal dates.
func ValidateDateRange(startDate, endDate time.Time) []string {
	errs := []string{}

	if calendarDay(startDate).After(calendarDay(endDate)) {
		errs = append(errs, MsgDateRange)
	}

	return errs
}

// DateOf truncates t to midnight of its calendar date in t's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// calendarDay maps t's calendar date onto UTC midnight so dates coming from
// different locations compare by their wall-clock date only.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
