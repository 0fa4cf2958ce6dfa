package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/timezone"
)

type FinancialHandler struct {
	store *gateway.Store
}

func NewFinancialHandler(store *gateway.Store) *FinancialHandler {
	return &FinancialHandler{store: store}
}

// --------- Requests ---------

type CreateEntryRequest struct {
	Source      string  `json:"source"`
	Value       float64 `json:"value" binding:"required,gt=0"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=3"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}

// ======================================================
// CREATE (receita / despesa)
// ======================================================

func (h *FinancialHandler) CreateIncome(c *gin.Context) {
	h.createEntry(c, models.EntryKindIncome)
}

func (h *FinancialHandler) CreateExpense(c *gin.Context) {
	h.createEntry(c, models.EntryKindExpense)
}

func (h *FinancialHandler) createEntry(c *gin.Context, kind string) {
	var req CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	source := strings.ToLower(strings.TrimSpace(req.Source))
	switch source {
	case "":
		source = models.EntrySourceGeneral
	case models.EntrySourceService, models.EntrySourceProduct, models.EntrySourceGeneral:
	default:
		httperr.BadRequest(c, "invalid_source", "Origem deve ser service, product ou general.")
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	entry := models.FinancialEntry{
		Kind:        kind,
		Source:      source,
		Value:       req.Value,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		Quantity:    quantity,
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &entry); err != nil {
		writeGatewayError(c, err, "entry_not_found", "Lançamento não encontrado.")
		return
	}

	httpresp.Created(c, entry)
}

// ======================================================
// LIST
// ======================================================

func (h *FinancialHandler) List(c *gin.Context) {
	filters := map[string]any{}
	if kind := strings.TrimSpace(c.Query("kind")); kind != "" {
		filters["kind"] = kind
	}

	entries, err := gateway.Query[models.FinancialEntry](c.Request.Context(), h.store, filters, "date DESC, id DESC")
	if err != nil {
		writeGatewayError(c, err, "entries_not_found", "Lançamentos não encontrados.")
		return
	}

	httpresp.List(c, entries)
}

// ======================================================
// REPORT (totais mensais que alimentavam o gráfico)
// ======================================================

type MonthTotals struct {
	Month   string  `json:"month"` // YYYY-MM
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type FinancialReport struct {
	Year       int                `json:"year"`
	Months     []MonthTotals      `json:"months"`
	ByCategory map[string]float64 `json:"by_category"`
}

func (h *FinancialHandler) Report(c *gin.Context) {
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(timezone.Now().Year())))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	entries, err := gateway.Query[models.FinancialEntry](c.Request.Context(), h.store, nil, "date ASC")
	if err != nil {
		writeGatewayError(c, err, "entries_not_found", "Lançamentos não encontrados.")
		return
	}

	report := FinancialReport{
		Year:       year,
		Months:     make([]MonthTotals, 12),
		ByCategory: make(map[string]float64),
	}
	prefix := strconv.Itoa(year) + "-"

	for i := 0; i < 12; i++ {
		report.Months[i].Month = prefix + pad2(i+1)
	}

	for _, e := range entries {
		if !strings.HasPrefix(e.Date, prefix) || len(e.Date) < 7 {
			continue
		}
		month, err := strconv.Atoi(e.Date[5:7])
		if err != nil || month < 1 || month > 12 {
			continue
		}

		switch e.Kind {
		case models.EntryKindIncome:
			report.Months[month-1].Income += e.Value
		case models.EntryKindExpense:
			report.Months[month-1].Expense += e.Value
		}

		if e.Category != "" {
			report.ByCategory[e.Category] += e.Value
		}
	}

	httpresp.OK(c, report)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
