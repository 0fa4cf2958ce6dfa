package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

// AutomationHandler gere as regras de mensagens automáticas. As regras são
// apenas persistidas e ligadas/desligadas; nenhum canal de envio é acionado.
type AutomationHandler struct {
	store *gateway.Store
}

func NewAutomationHandler(store *gateway.Store) *AutomationHandler {
	return &AutomationHandler{store: store}
}

// --------- Requests ---------

type CreateAutomationRequest struct {
	Name    string `json:"name" binding:"required,min=3"`
	Trigger string `json:"trigger" binding:"required"`
	Channel string `json:"channel" binding:"required"`
	Message string `json:"message" binding:"required,min=3"`
}

func validTrigger(trigger string) bool {
	switch trigger {
	case models.AutomationTriggerAppointmentCreated,
		models.AutomationTriggerAppointmentReminder,
		models.AutomationTriggerBirthday:
		return true
	}
	return false
}

func validChannel(channel string) bool {
	return channel == models.AutomationChannelWhatsApp || channel == models.AutomationChannelEmail
}

// ======================================================
// LIST
// ======================================================

func (h *AutomationHandler) List(c *gin.Context) {
	rules, err := gateway.Query[models.AutomationRule](c.Request.Context(), h.store, nil, "id ASC")
	if err != nil {
		writeGatewayError(c, err, "rules_not_found", "Regras não encontradas.")
		return
	}

	httpresp.List(c, rules)
}

// ======================================================
// CREATE
// ======================================================

func (h *AutomationHandler) Create(c *gin.Context) {
	var req CreateAutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !validTrigger(req.Trigger) {
		httperr.BadRequest(c, "invalid_trigger", "Gatilho inválido.")
		return
	}
	if !validChannel(req.Channel) {
		httperr.BadRequest(c, "invalid_channel", "Canal deve ser whatsapp ou email.")
		return
	}

	rule := models.AutomationRule{
		Name:    req.Name,
		Trigger: req.Trigger,
		Channel: req.Channel,
		Message: req.Message,
		Active:  true,
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &rule); err != nil {
		writeGatewayError(c, err, "rule_not_found", "Regra não encontrada.")
		return
	}

	httpresp.Created(c, rule)
}

// ======================================================
// TOGGLE
// ======================================================

func (h *AutomationHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	rule, err := gateway.First[models.AutomationRule](c.Request.Context(), h.store, uint(id))
	if err != nil {
		writeGatewayError(c, err, "rule_not_found", "Regra não encontrada.")
		return
	}

	// Inverte apenas a coluna active; o resto da regra fica como está.
	rule, err = gateway.Update[models.AutomationRule](c.Request.Context(), h.store, uint(id), map[string]any{
		"active": !rule.Active,
	})
	if err != nil {
		writeGatewayError(c, err, "rule_not_found", "Regra não encontrada.")
		return
	}

	httpresp.OK(c, rule)
}

// ======================================================
// DELETE
// ======================================================

func (h *AutomationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := gateway.Delete[models.AutomationRule](c.Request.Context(), h.store, uint(id)); err != nil {
		writeGatewayError(c, err, "rule_not_found", "Regra não encontrada.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
