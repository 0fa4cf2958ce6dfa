package appointment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

func TestNormalizeTime(t *testing.T) {
	t.Run("aceita HH:mm", func(t *testing.T) {
		got, err := NormalizeTime("10:00")
		require.NoError(t, err)
		require.Equal(t, "10:00:00", got)
	})

	t.Run("aceita HH:mm:ss", func(t *testing.T) {
		got, err := NormalizeTime("09:30:15")
		require.NoError(t, err)
		require.Equal(t, "09:30:00", got)
	})

	t.Run("rejeita formato inválido", func(t *testing.T) {
		_, err := NormalizeTime("25h")
		require.True(t, httperr.IsBusiness(err, "invalid_time"))
	})
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2026-09-01")
	require.NoError(t, err)
	require.Equal(t, "2026-09-01", got)

	_, err = NormalizeDate("01/09/2026")
	require.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestComputeEnd(t *testing.T) {
	t.Run("soma a duração ao início", func(t *testing.T) {
		end, err := ComputeEnd("10:00", 30)
		require.NoError(t, err)
		require.Equal(t, "10:30:00", end)
	})

	t.Run("atravessa a hora cheia", func(t *testing.T) {
		end, err := ComputeEnd("10:45", 30)
		require.NoError(t, err)
		require.Equal(t, "11:15:00", end)
	})

	t.Run("passa da meia-noite com wrap", func(t *testing.T) {
		end, err := ComputeEnd("23:30", 60)
		require.NoError(t, err)
		require.Equal(t, "00:30:00", end)
	})

	t.Run("rejeita duração não positiva", func(t *testing.T) {
		_, err := ComputeEnd("10:00", 0)
		require.True(t, httperr.IsBusiness(err, "invalid_duration"))
	})
}
