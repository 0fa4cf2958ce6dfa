package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/timezone"
)

// DashboardHandler agrega os números da tela inicial em uma única resposta.
type DashboardHandler struct {
	store *gateway.Store
	repo  domain.Repository
}

func NewDashboardHandler(store *gateway.Store, repo domain.Repository) *DashboardHandler {
	return &DashboardHandler{store: store, repo: repo}
}

type PopularService struct {
	ServiceID uint   `json:"service_id"`
	Name      string `json:"name"`
	Count     int    `json:"count"`
}

type DashboardSummary struct {
	Date              string                  `json:"date"`
	TodayAppointments []models.Appointment    `json:"today_appointments"`
	BirthdayClients   []models.Client         `json:"birthday_clients"`
	PopularServices   []PopularService        `json:"popular_services"`
	RecentExpenses    []models.FinancialEntry `json:"recent_expenses"`
	MonthIncome       float64                 `json:"month_income"`
	MonthExpense      float64                 `json:"month_expense"`
}

func (h *DashboardHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	now := timezone.Now()
	today := now.Format("2006-01-02")
	monthPrefix := now.Format("2006-01")

	todayAps, err := h.repo.ListForDay(ctx, today)
	if err != nil {
		writeGatewayError(c, err, "appointments_not_found", "Agendamentos não encontrados.")
		return
	}

	clients, err := gateway.Query[models.Client](ctx, h.store, map[string]any{"active": true}, "name ASC")
	if err != nil {
		writeGatewayError(c, err, "clients_not_found", "Clientes não encontrados.")
		return
	}

	birthdays := make([]models.Client, 0)
	for _, cl := range clients {
		// Aniversário guardado como YYYY-MM-DD; compara apenas o mês.
		if cl.Birthday != nil && len(*cl.Birthday) >= 7 && (*cl.Birthday)[5:7] == monthPrefix[5:7] {
			birthdays = append(birthdays, cl)
		}
	}

	allAps, err := h.repo.ListAll(ctx)
	if err != nil {
		writeGatewayError(c, err, "appointments_not_found", "Agendamentos não encontrados.")
		return
	}

	// O ranking considera apenas serviços efetivamente realizados.
	counts := make(map[uint]*PopularService)
	for _, ap := range allAps {
		if ap.Status != string(domain.StatusCompleted) {
			continue
		}
		ps, ok := counts[ap.ServiceID]
		if !ok {
			ps = &PopularService{ServiceID: ap.ServiceID, Name: ap.Service.Name}
			counts[ap.ServiceID] = ps
		}
		ps.Count++
	}
	popular := make([]PopularService, 0, len(counts))
	for _, ps := range counts {
		popular = append(popular, *ps)
	}
	sort.SliceStable(popular, func(i, j int) bool { return popular[i].Count > popular[j].Count })
	if len(popular) > 5 {
		popular = popular[:5]
	}

	entries, err := gateway.Query[models.FinancialEntry](ctx, h.store, nil, "date DESC, id DESC")
	if err != nil {
		writeGatewayError(c, err, "entries_not_found", "Lançamentos não encontrados.")
		return
	}

	summary := DashboardSummary{
		Date:              today,
		TodayAppointments: todayAps,
		BirthdayClients:   birthdays,
		PopularServices:   popular,
		RecentExpenses:    make([]models.FinancialEntry, 0, 5),
	}

	for _, e := range entries {
		if e.Kind == models.EntryKindExpense && len(summary.RecentExpenses) < 5 {
			summary.RecentExpenses = append(summary.RecentExpenses, e)
		}
		if len(e.Date) >= 7 && e.Date[:7] == monthPrefix {
			switch e.Kind {
			case models.EntryKindIncome:
				summary.MonthIncome += e.Value
			case models.EntryKindExpense:
				summary.MonthExpense += e.Value
			}
		}
	}

	httpresp.OK(c, summary)
}
