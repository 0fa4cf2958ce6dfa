package appointment

import (
	"context"
	"fmt"
	"time"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// Máximo de eventos exibidos por célula do grid mensal.
const MaxEventsPerDay = 3

type DayCell struct {
	Date         string               `json:"date"`
	Events       []models.Appointment `json:"events"`
	Total        int                  `json:"total"`
	StatusCounts map[string]int       `json:"status_counts"`
}

type MonthView struct {
	Year  int       `json:"year"`
	Month int       `json:"month"`
	Days  []DayCell `json:"days"`
}

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

// Execute monta o grid do calendário: um bucket por dia do mês, cada célula
// com até MaxEventsPerDay eventos e contagem por status para o color-coding.
func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	year int,
	month int,
) (*MonthView, error) {

	if year < 2000 || year > 2100 {
		return nil, httperr.ErrBusiness("invalid_year")
	}
	if month < 1 || month > 12 {
		return nil, httperr.ErrBusiness("invalid_month")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	aps, err := uc.repo.ListBetween(
		ctx,
		first.Format("2006-01-02"),
		next.Format("2006-01-02"),
	)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]models.Appointment, len(aps))
	for _, ap := range aps {
		byDay[ap.Date] = append(byDay[ap.Date], ap)
	}

	daysInMonth := next.AddDate(0, 0, -1).Day()
	view := &MonthView{Year: year, Month: month, Days: make([]DayCell, 0, daysInMonth)}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		events := byDay[date]

		counts := make(map[string]int)
		for _, ev := range events {
			counts[ev.Status]++
		}

		capped := events
		if len(capped) > MaxEventsPerDay {
			capped = capped[:MaxEventsPerDay]
		}

		view.Days = append(view.Days, DayCell{
			Date:         date,
			Events:       capped,
			Total:        len(events),
			StatusCounts: counts,
		})
	}

	return view, nil
}
