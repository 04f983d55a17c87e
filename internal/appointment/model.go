package appointment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Prices are JSON numbers wherever an appointment is encoded.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

type Status string

const (
	StatusObtain Status = "OBTAIN" // client comes to obtain the repaired car
	StatusWait   Status = "WAIT"   // client waits while the car is handled
	StatusPass   Status = "PASS"   // client passes the car for handling
)

// Statuses lists every known status in declaration order.
var Statuses = []Status{StatusObtain, StatusWait, StatusPass}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Appointment is a single booking. ID is zero until storage assigns one.
type Appointment struct {
	ID         int64           `json:"id,omitempty"`
	ClientName string          `json:"clientName"`
	Time       time.Time       `json:"time"`
	Price      decimal.Decimal `json:"price"`
	Status     Status          `json:"status"`
}

// Equal compares all fields including ID. Times are compared as instants.
func (a Appointment) Equal(b Appointment) bool {
	return a.ID == b.ID &&
		a.ClientName == b.ClientName &&
		a.Time.Equal(b.Time) &&
		a.Price.Equal(b.Price) &&
		a.Status == b.Status
}

type EventType string

const (
	EventAppointmentCreated       EventType = "APPOINTMENT_CREATED"
	EventAppointmentStatusUpdated EventType = "APPOINTMENT_STATUS_UPDATED"
	EventAppointmentDeleted       EventType = "APPOINTMENT_DELETED"
)

// Event describes a change that already happened in storage.
type Event struct {
	Type          EventType    `json:"type"`
	AppointmentID int64        `json:"appointmentId"`
	Appointment   *Appointment `json:"appointment,omitempty"`
	Status        Status       `json:"status,omitempty"`
	OccurredAt    time.Time    `json:"occurredAt"`
}
