package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/middleware"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/timezone"
	ucAppointment "github.com/StudioBelezaApps/salon-crm/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	listByDateUC *ucAppointment.ListAppointmentsByDate
	listMonthUC  *ucAppointment.ListAppointmentsByMonth
	transitionUC *ucAppointment.TransitionAppointment
	deleteUC     *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
	transitionUC *ucAppointment.TransitionAppointment,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		listByDateUC: listByDateUC,
		listMonthUC:  listMonthUC,
		transitionUC: transitionUC,
		deleteUC:     deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       uint   `json:"client_id" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	StartTime      string `json:"start_time" binding:"required"`
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		Notes:          req.Notes,
		ActorID:        userID,
	})
	if err != nil {
		h.writeCreateError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) writeCreateError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.Conflict(c, "slot_already_booked", "Já existe um agendamento para este horário.")
	case httperr.IsBusiness(err, "missing_required_fields"):
		httperr.BadRequest(c, "missing_required_fields", "Todos os campos obrigatórios devem ser preenchidos.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case httperr.IsBusiness(err, "invalid_time"):
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
	case httperr.IsBusiness(err, "client_not_found"):
		httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")
	case httperr.IsBusiness(err, "professional_not_found"):
		httperr.BadRequest(c, "professional_not_found", "Profissional não encontrado.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	default:
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
	}
}

// ======================================================
// LIST (visão do dia + visão "todos")
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")

	aps, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_date") {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		writeGatewayError(c, err, "appointments_not_found", "Agendamentos não encontrados.")
		return
	}

	// Visão "todos" aceita filtro textual e paginação.
	if date == "" {
		params := gateway.ParseListParams(
			c.Query("query"), "", "", c.Query("page"),
		)
		filtered := gateway.Filter(aps, params.Query, func(ap models.Appointment) []string {
			return []string{ap.Client.Name, ap.Professional.Name, ap.Service.Name, ap.Date, ap.StartTime}
		})
		page, totalPages := gateway.Paginate(filtered, params.Page, params.PerPage)
		httpresp.Page(c, page, len(filtered), params.Page, params.PerPage, totalPages)
		return
	}

	httpresp.List(c, aps)
}

// ======================================================
// LIST BY MONTH (grid do calendário)
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	view, err := h.listMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "invalid_year"):
			httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		case httperr.IsBusiness(err, "invalid_month"):
			httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		default:
			writeGatewayError(c, err, "appointments_not_found", "Agendamentos não encontrados.")
		}
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(id, userID uint) (*models.Appointment, error) {
		return h.transitionUC.Confirm(c.Request.Context(), id, userID)
	})
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(id, userID uint) (*models.Appointment, error) {
		return h.transitionUC.Complete(c.Request.Context(), id, userID, timezone.Now())
	})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(id, userID uint) (*models.Appointment, error) {
		return h.transitionUC.Cancel(c.Request.Context(), id, userID, timezone.Now())
	})
}

func (h *AppointmentHandler) transition(
	c *gin.Context,
	fn func(id, userID uint) (*models.Appointment, error),
) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := fn(uint(id), userID)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_state") {
			httperr.BadRequest(c, "invalid_state", "Transição de status não permitida.")
			return
		}
		writeGatewayError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(id), userID); err != nil {
		writeGatewayError(c, err, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
