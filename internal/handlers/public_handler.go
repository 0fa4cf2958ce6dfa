package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/StudioBelezaApps/salon-crm/internal/domain/appointment"
	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// AppointmentInserter é o recorte do repositório que o endpoint público usa.
type AppointmentInserter interface {
	InsertAppointment(ctx context.Context, ap *models.Appointment) error
}

// PublicHandler expõe o endpoint de criação de agendamento usado como
// transporte primário pela estratégia em dois passos.
type PublicHandler struct {
	repo AppointmentInserter
}

func NewPublicHandler(repo AppointmentInserter) *PublicHandler {
	return &PublicHandler{repo: repo}
}

type PublicAppointmentRequest struct {
	ClientID       uint   `json:"client_id"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceID      uint   `json:"service_id"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

// CreateAppointment devolve 400 para campos ausentes, 409 para conflito de
// slot, 201 com {success, data:{id}} no sucesso e 500 nos demais casos.
func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.ClientID == 0 || req.ProfessionalID == 0 || req.ServiceID == 0 ||
		req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		httperr.BadRequest(c, "missing_required_fields", "Todos os campos obrigatórios devem ser preenchidos.")
		return
	}

	date, err := domain.NormalizeDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}
	start, err := domain.NormalizeTime(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}
	end, err := domain.NormalizeTime(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Hora inválida.")
		return
	}

	status := req.Status
	if status == "" {
		status = string(domain.InitialStatus())
	}

	ap := models.Appointment{
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Status:         status,
		Notes:          req.Notes,
	}

	if err := h.repo.InsertAppointment(c.Request.Context(), &ap); err != nil {
		if gateway.IsUniqueViolation(err) || httperr.IsBusiness(err, "slot_already_booked") {
			httperr.Conflict(c, "slot_already_booked", "Já existe um agendamento para este horário.")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Erro ao criar agendamento.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Agendamento criado com sucesso",
		"data":    gin.H{"id": ap.ID},
	})
}
