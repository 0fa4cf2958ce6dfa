package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type AuditLogsHandler struct {
	store *gateway.Store
}

func NewAuditLogsHandler(store *gateway.Store) *AuditLogsHandler {
	return &AuditLogsHandler{store: store}
}

// List devolve a trilha de auditoria mais recente primeiro, com filtros
// opcionais por ação e entidade.
func (h *AuditLogsHandler) List(c *gin.Context) {
	filters := map[string]any{}
	if action := strings.TrimSpace(c.Query("action")); action != "" {
		filters["action"] = action
	}
	if entity := strings.TrimSpace(c.Query("entity")); entity != "" {
		filters["entity"] = entity
	}

	logs, err := gateway.Query[models.AuditLog](c.Request.Context(), h.store, filters, "id DESC")
	if err != nil {
		writeGatewayError(c, err, "logs_not_found", "Registos não encontrados.")
		return
	}

	params := gateway.ParseListParams("", "", "", c.Query("page"))
	page, totalPages := gateway.Paginate(logs, params.Page, params.PerPage)
	httpresp.Page(c, page, len(logs), params.Page, params.PerPage, totalPages)
}
