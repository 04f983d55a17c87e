package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/leobro/appointment-scheduling/internal/appointment"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, a appointment.Appointment) appointment.Outcome
	CreateRandomAppointments(ctx context.Context, quantity int, endDate time.Time) appointment.Outcome
	GetAppointment(ctx context.Context, id int64) appointment.Outcome
	ListAppointments(ctx context.Context, startDate, endDate time.Time) appointment.Outcome
	UpdateAppointmentStatus(ctx context.Context, id int64, status appointment.Status) appointment.Outcome
	DeleteAppointment(ctx context.Context, id int64) appointment.Outcome
}

func createAppointmentHandler(svc AppointmentService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateAppointmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeBadRequest(w, "could not parse JSON body")
			return
		}

		app, err := req.toAppointment(loc)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		outcome := svc.CreateAppointment(r.Context(), app)
		if id, ok := outcome.Payload.(int64); ok && outcome.Kind == appointment.OutcomeCreated {
			w.Header().Set("Location", fmt.Sprintf("/appointments/%d", id))
		}
		writeOutcome(w, outcome)
	}
}

func createRandomAppointmentsHandler(svc AppointmentService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		quantity, err := strconv.Atoi(q.Get("quantity"))
		if err != nil {
			writeBadRequest(w, "quantity must be an integer")
			return
		}

		endDate, err := parseDate("enddate", q.Get("enddate"), loc)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		writeOutcome(w, svc.CreateRandomAppointments(r.Context(), quantity, endDate))
	}
}

func getAppointmentHandler(svc AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}
		writeOutcome(w, svc.GetAppointment(r.Context(), id))
	}
}

func listAppointmentsHandler(svc AppointmentService, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		startDate, err := parseDate("startdate", q.Get("startdate"), loc)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}
		endDate, err := parseDate("enddate", q.Get("enddate"), loc)
		if err != nil {
			writeBadRequest(w, err.Error())
			return
		}

		writeOutcome(w, svc.ListAppointments(r.Context(), startDate, endDate))
	}
}

func updateAppointmentStatusHandler(svc AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}

		var status string
		if err := json.NewDecoder(r.Body).Decode(&status); err != nil {
			writeBadRequest(w, "body must be a JSON status string")
			return
		}

		writeOutcome(w, svc.UpdateAppointmentStatus(r.Context(), id, appointment.Status(status)))
	}
}

func deleteAppointmentHandler(svc AppointmentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := appointmentID(w, r)
		if !ok {
			return
		}
		writeOutcome(w, svc.DeleteAppointment(r.Context(), id))
	}
}

func appointmentID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeBadRequest(w, "id must be an integer")
		return 0, false
	}
	return id, true
}
