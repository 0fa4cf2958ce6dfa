package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

func seedAppointment(t *testing.T, repo *fakeRepo, status string) uint {
	t.Helper()

	ap := &models.Appointment{
		ClientID:       1,
		ProfessionalID: 1,
		ServiceID:      1,
		Date:           "2026-09-01",
		StartTime:      "10:00:00",
		EndTime:        "10:30:00",
		Status:         status,
	}
	require.NoError(t, repo.InsertAppointment(context.Background(), ap))
	return ap.ID
}

func TestTransitionAppointment(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 35, 0, 0, time.UTC)

	t.Run("agendado → confirmado", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewTransitionAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "scheduled")

		ap, err := uc.Confirm(context.Background(), id, 7)
		require.NoError(t, err)
		require.Equal(t, "confirmed", ap.Status)
	})

	t.Run("concluir incrementa o contador do cliente", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewTransitionAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "confirmed")

		ap, err := uc.Complete(context.Background(), id, 7, now)
		require.NoError(t, err)
		require.Equal(t, "completed", ap.Status)
		require.NotNil(t, ap.CompletedAt)
		require.Equal(t, []uint{1}, repo.increments)
		require.Equal(t, 1, repo.clients[1].ServiceCount)
	})

	t.Run("cancelar marca o instante", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewTransitionAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "scheduled")

		ap, err := uc.Cancel(context.Background(), id, 7, now)
		require.NoError(t, err)
		require.Equal(t, "cancelled", ap.Status)
		require.NotNil(t, ap.CancelledAt)
	})

	t.Run("transição inválida não altera nada", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewTransitionAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "completed")

		_, err := uc.Confirm(context.Background(), id, 7)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))

		_, err = uc.Cancel(context.Background(), id, 7, now)
		require.True(t, httperr.IsBusiness(err, "invalid_state"))

		ap, err := repo.GetAppointment(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, "completed", ap.Status)
		require.Empty(t, repo.increments)
	})
}
