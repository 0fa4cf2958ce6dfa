package appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

func sampleAppointment() *models.Appointment {
	return &models.Appointment{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           "2026-09-01",
		StartTime:      "10:00:00",
		EndTime:        "10:30:00",
		Status:         "scheduled",
	}
}

func TestHTTPSubmitter(t *testing.T) {
	t.Run("201 devolve o id criado", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"data":{"id":42}}`))
		}))
		defer srv.Close()

		id, err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), sampleAppointment())
		require.NoError(t, err)
		require.Equal(t, uint(42), id)
	})

	t.Run("409 vira conflito de slot", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer srv.Close()

		_, err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), sampleAppointment())
		require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	})

	t.Run("status inesperado vira erro genérico", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewHTTPSubmitter(srv.URL).Submit(context.Background(), sampleAppointment())
		require.Error(t, err)
		require.False(t, httperr.IsBusiness(err, "slot_already_booked"))
	})
}

func TestTwoStepSubmitter(t *testing.T) {
	t.Run("primário indisponível cai para o fallback", func(t *testing.T) {
		repo := newFakeRepo()
		primary := NewHTTPSubmitter("http://127.0.0.1:0/unreachable")
		two := NewTwoStepSubmitter(primary, NewStoreSubmitter(repo), zap.NewNop())

		id, err := two.Submit(context.Background(), sampleAppointment())
		require.NoError(t, err)
		require.NotZero(t, id)
		require.Len(t, repo.appointments, 1)
	})

	t.Run("sem primário usa direto o fallback", func(t *testing.T) {
		repo := newFakeRepo()
		two := NewTwoStepSubmitter(nil, NewStoreSubmitter(repo), zap.NewNop())

		id, err := two.Submit(context.Background(), sampleAppointment())
		require.NoError(t, err)
		require.NotZero(t, id)
	})

	t.Run("conflito de slot é idêntico nos dois caminhos", func(t *testing.T) {
		repo := newFakeRepo()
		two := NewTwoStepSubmitter(nil, NewStoreSubmitter(repo), zap.NewNop())

		_, err := two.Submit(context.Background(), sampleAppointment())
		require.NoError(t, err)

		_, err = two.Submit(context.Background(), sampleAppointment())
		require.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	})
}
