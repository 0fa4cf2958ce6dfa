package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
)

// writeGatewayError traduz erros do gateway para a taxonomia HTTP comum:
// not-found, schema ausente (setup) e falha genérica. Conflitos de unicidade
// têm mensagens próprias por entidade e ficam a cargo de cada handler.
func writeGatewayError(c *gin.Context, err error, notFoundCode, notFoundMsg string) {
	switch {
	case errors.Is(err, gateway.ErrNotFound):
		httperr.NotFound(c, notFoundCode, notFoundMsg)
	case errors.Is(err, gateway.ErrUndefinedTable):
		httperr.SetupRequired(c, "Tabela não encontrada. Execute a configuração inicial da base.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno. Tente novamente.")
	}
}
