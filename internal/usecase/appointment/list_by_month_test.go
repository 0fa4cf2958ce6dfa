package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

func TestListAppointmentsByMonth(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListAppointmentsByMonth(repo)

	times := []string{"09:00:00", "10:00:00", "11:00:00", "12:00:00", "13:00:00"}
	for _, start := range times {
		require.NoError(t, repo.InsertAppointment(context.Background(), &models.Appointment{
			ClientID: 1, ProfessionalID: 1, ServiceID: 1,
			Date: "2026-09-15", StartTime: start, EndTime: start, Status: "scheduled",
		}))
	}
	require.NoError(t, repo.InsertAppointment(context.Background(), &models.Appointment{
		ClientID: 1, ProfessionalID: 1, ServiceID: 1,
		Date: "2026-09-15", StartTime: "14:00:00", EndTime: "15:00:00", Status: "cancelled",
	}))

	view, err := uc.Execute(context.Background(), 2026, 9)
	require.NoError(t, err)
	require.Equal(t, 2026, view.Year)
	require.Equal(t, 9, view.Month)
	require.Len(t, view.Days, 30)

	day15 := view.Days[14]
	require.Equal(t, "2026-09-15", day15.Date)
	require.Equal(t, 6, day15.Total)
	require.Len(t, day15.Events, MaxEventsPerDay)
	require.Equal(t, 5, day15.StatusCounts["scheduled"])
	require.Equal(t, 1, day15.StatusCounts["cancelled"])

	// Dia sem agendamentos aparece vazio, nunca é omitido do grid.
	day1 := view.Days[0]
	require.Equal(t, "2026-09-01", day1.Date)
	require.Zero(t, day1.Total)
	require.Empty(t, day1.Events)
}

func TestListAppointmentsByMonthValidation(t *testing.T) {
	uc := NewListAppointmentsByMonth(newFakeRepo())

	_, err := uc.Execute(context.Background(), 1999, 1)
	require.True(t, httperr.IsBusiness(err, "invalid_year"))

	_, err = uc.Execute(context.Background(), 2026, 13)
	require.True(t, httperr.IsBusiness(err, "invalid_month"))
}
