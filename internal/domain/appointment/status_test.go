package appointment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

func TestStatusTransitions(t *testing.T) {
	t.Run("confirmar apenas agendado", func(t *testing.T) {
		require.NoError(t, CanConfirm(StatusScheduled))
		require.True(t, httperr.IsBusiness(CanConfirm(StatusConfirmed), "invalid_state"))
		require.True(t, httperr.IsBusiness(CanConfirm(StatusCompleted), "invalid_state"))
		require.True(t, httperr.IsBusiness(CanConfirm(StatusCancelled), "invalid_state"))
	})

	t.Run("concluir a partir de agendado ou confirmado", func(t *testing.T) {
		require.NoError(t, CanComplete(StatusScheduled))
		require.NoError(t, CanComplete(StatusConfirmed))
		require.True(t, httperr.IsBusiness(CanComplete(StatusCompleted), "invalid_state"))
		require.True(t, httperr.IsBusiness(CanComplete(StatusCancelled), "invalid_state"))
	})

	t.Run("cancelar a partir de agendado ou confirmado", func(t *testing.T) {
		require.NoError(t, CanCancel(StatusScheduled))
		require.NoError(t, CanCancel(StatusConfirmed))
		require.True(t, httperr.IsBusiness(CanCancel(StatusCompleted), "invalid_state"))
		require.True(t, httperr.IsBusiness(CanCancel(StatusCancelled), "invalid_state"))
	})
}

func TestInitialStatus(t *testing.T) {
	require.Equal(t, StatusScheduled, InitialStatus())
}
