package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type fakeInserter struct {
	err    error
	nextID uint
	got    *models.Appointment
}

func (f *fakeInserter) InsertAppointment(_ context.Context, ap *models.Appointment) error {
	f.got = ap
	if f.err != nil {
		return f.err
	}
	ap.ID = f.nextID
	return nil
}

func newPublicRouter(f *fakeInserter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/public/appointments", NewPublicHandler(f).CreateAppointment)
	return r
}

func postAppointment(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/public/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const validBody = `{
	"client_id": 1,
	"professional_id": 2,
	"service_id": 3,
	"date": "2026-09-01",
	"start_time": "10:00",
	"end_time": "10:30"
}`

func TestPublicCreateAppointment(t *testing.T) {
	t.Run("201 com o id criado", func(t *testing.T) {
		f := &fakeInserter{nextID: 42}
		rr := postAppointment(newPublicRouter(f), validBody)

		require.Equal(t, http.StatusCreated, rr.Code)
		require.Contains(t, rr.Body.String(), `"success":true`)
		require.Contains(t, rr.Body.String(), `"id":42`)

		// Horários normalizados antes de chegar ao repositório.
		require.Equal(t, "10:00:00", f.got.StartTime)
		require.Equal(t, "10:30:00", f.got.EndTime)
		require.Equal(t, "scheduled", f.got.Status)
	})

	t.Run("400 para campos ausentes", func(t *testing.T) {
		f := &fakeInserter{nextID: 1}
		rr := postAppointment(newPublicRouter(f), `{"client_id":1,"date":"2026-09-01"}`)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Contains(t, rr.Body.String(), "missing_required_fields")
		require.Nil(t, f.got)
	})

	t.Run("400 para data inválida", func(t *testing.T) {
		body := strings.Replace(validBody, "2026-09-01", "01/09/2026", 1)
		rr := postAppointment(newPublicRouter(&fakeInserter{}), body)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		require.Contains(t, rr.Body.String(), "invalid_date")
	})

	t.Run("409 quando o slot já está ocupado", func(t *testing.T) {
		f := &fakeInserter{err: &gateway.UniqueViolationError{Constraint: "idx_appointments_slot"}}
		rr := postAppointment(newPublicRouter(f), validBody)

		require.Equal(t, http.StatusConflict, rr.Code)
		require.Contains(t, rr.Body.String(), "slot_already_booked")
	})

	t.Run("500 para falha genérica", func(t *testing.T) {
		f := &fakeInserter{err: errors.New("connection reset")}
		rr := postAppointment(newPublicRouter(f), validBody)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
		require.Contains(t, rr.Body.String(), "failed_to_create_appointment")
	})
}
