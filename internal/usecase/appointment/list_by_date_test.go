package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

func TestListAppointmentsByDate(t *testing.T) {
	t.Run("visão do dia ordenada por start_time", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewListAppointmentsByDate(repo)

		// Inserção fora de ordem; a listagem deve devolver a ordem total.
		for _, start := range []string{"14:00:00", "09:00:00", "11:30:00", "10:00:00"} {
			require.NoError(t, repo.InsertAppointment(context.Background(), &models.Appointment{
				ClientID: 1, ProfessionalID: 1, ServiceID: 1,
				Date: "2026-09-01", StartTime: start, EndTime: start, Status: "scheduled",
			}))
		}

		aps, err := uc.Execute(context.Background(), "2026-09-01")
		require.NoError(t, err)
		require.Len(t, aps, 4)

		starts := make([]string, 0, len(aps))
		for _, ap := range aps {
			starts = append(starts, ap.StartTime)
		}
		require.Equal(t, []string{"09:00:00", "10:00:00", "11:30:00", "14:00:00"}, starts)
	})

	t.Run("data vazia devolve tudo, ordenado por dia e hora", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewListAppointmentsByDate(repo)

		seeds := []struct{ date, start string }{
			{"2026-09-02", "09:00:00"},
			{"2026-09-01", "15:00:00"},
			{"2026-09-01", "08:00:00"},
		}
		for _, s := range seeds {
			require.NoError(t, repo.InsertAppointment(context.Background(), &models.Appointment{
				ClientID: 1, ProfessionalID: 1, ServiceID: 1,
				Date: s.date, StartTime: s.start, EndTime: s.start, Status: "scheduled",
			}))
		}

		aps, err := uc.Execute(context.Background(), "")
		require.NoError(t, err)
		require.Len(t, aps, 3)
		require.Equal(t, "2026-09-01", aps[0].Date)
		require.Equal(t, "08:00:00", aps[0].StartTime)
		require.Equal(t, "15:00:00", aps[1].StartTime)
		require.Equal(t, "2026-09-02", aps[2].Date)
	})

	t.Run("só entram agendamentos do dia pedido", func(t *testing.T) {
		repo := newFakeRepo()
		uc := NewListAppointmentsByDate(repo)

		for _, date := range []string{"2026-09-01", "2026-09-02"} {
			require.NoError(t, repo.InsertAppointment(context.Background(), &models.Appointment{
				ClientID: 1, ProfessionalID: 1, ServiceID: 1,
				Date: date, StartTime: "10:00:00", EndTime: "10:30:00", Status: "scheduled",
			}))
		}

		aps, err := uc.Execute(context.Background(), "2026-09-01")
		require.NoError(t, err)
		require.Len(t, aps, 1)
		require.Equal(t, "2026-09-01", aps[0].Date)
	})

	t.Run("data inválida", func(t *testing.T) {
		uc := NewListAppointmentsByDate(newFakeRepo())

		_, err := uc.Execute(context.Background(), "01/09/2026")
		require.True(t, httperr.IsBusiness(err, "invalid_date"))
	})
}
