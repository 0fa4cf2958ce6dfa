package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
)

func TestDeleteAppointment(t *testing.T) {
	t.Run("remove o agendamento existente", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewDeleteAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "scheduled")

		require.NoError(t, uc.Execute(context.Background(), id, 7))

		_, err := repo.GetAppointment(context.Background(), id)
		require.ErrorIs(t, err, gateway.ErrNotFound)
	})

	t.Run("id inexistente devolve not-found, nunca pânico", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewDeleteAppointment(repo, newTestDispatcher())

		err := uc.Execute(context.Background(), 999, 7)
		require.ErrorIs(t, err, gateway.ErrNotFound)
	})

	t.Run("segundo delete do mesmo id também é not-found", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewDeleteAppointment(repo, newTestDispatcher())
		id := seedAppointment(t, repo, "scheduled")

		require.NoError(t, uc.Execute(context.Background(), id, 7))
		require.ErrorIs(t, uc.Execute(context.Background(), id, 7), gateway.ErrNotFound)
	})
}
