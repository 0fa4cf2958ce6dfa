package appointment

import (
	"context"
	"sort"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

// Execute devolve os agendamentos do dia, ordenados por start_time.
// Date vazia devolve a visão "todos".
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date string,
) ([]models.Appointment, error) {

	if date == "" {
		aps, err := uc.repo.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		sortByDateTime(aps)
		return aps, nil
	}

	normalized, err := domain.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	aps, err := uc.repo.ListForDay(ctx, normalized)
	if err != nil {
		return nil, err
	}
	sortByDateTime(aps)
	return aps, nil
}

// A ordem total do dia (start_time crescente) é garantida aqui, não apenas na
// cláusula ORDER BY do repositório.
func sortByDateTime(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		if aps[i].Date != aps[j].Date {
			return aps[i].Date < aps[j].Date
		}
		return aps[i].StartTime < aps[j].StartTime
	})
}
