package api

import (
	"encoding/json"
	"net/http"

	"github.com/leobro/appointment-scheduling/internal/appointment"
)

var outcomeStatus = map[appointment.OutcomeKind]int{
	appointment.OutcomeOK:       http.StatusOK,
	appointment.OutcomeCreated:  http.StatusCreated,
	appointment.OutcomeError:    http.StatusBadRequest,
	appointment.OutcomeNotFound: http.StatusNotFound,
	appointment.OutcomeFatal:    http.StatusInternalServerError,
}

// writeOutcome maps a service outcome onto an HTTP response whose body is the
// outcome payload.
func writeOutcome(w http.ResponseWriter, o appointment.Outcome) {
	status, ok := outcomeStatus[o.Kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if o.Payload == nil {
		w.WriteHeader(status)
		return
	}
	writeJSON(w, status, o.Payload)
}

// writeBadRequest reports a malformed request in the same shape as a
// validation failure.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeOutcome(w, appointment.Invalid([]string{msg}))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
