package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/validators"
)

type ServiceHandler struct {
	store *gateway.Store
}

func NewServiceHandler(store *gateway.Store) *ServiceHandler {
	return &ServiceHandler{store: store}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	DurationMin int     `json:"duration" binding:"required,min=1"`
	Category    string  `json:"category" binding:"required"`
	Color       string  `json:"color"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	DurationMin *int     `json:"duration,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

var serviceSorters = map[string]func(a, b models.Service) bool{
	"name":     func(a, b models.Service) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"price":    func(a, b models.Service) bool { return a.Price < b.Price },
	"duration": func(a, b models.Service) bool { return a.DurationMin < b.DurationMin },
	"category": func(a, b models.Service) bool { return a.Category < b.Category },
}

func (h *ServiceHandler) List(c *gin.Context) {
	params := gateway.ParseListParams(
		c.Query("query"), c.Query("sort"), c.Query("dir"), c.Query("page"),
	)

	services, err := gateway.Query[models.Service](c.Request.Context(), h.store, nil, "name ASC")
	if err != nil {
		writeGatewayError(c, err, "services_not_found", "Serviços não encontrados.")
		return
	}

	filtered := gateway.Filter(services, params.Query, func(s models.Service) []string {
		return []string{s.Name, s.Category, s.Description}
	})
	gateway.SortBy(filtered, serviceSorters[params.SortBy], params.Desc)

	page, totalPages := gateway.Paginate(filtered, params.Page, params.PerPage)
	httpresp.Page(c, page, len(filtered), params.Page, params.PerPage, totalPages)
}

// ======================================================
// CREATE
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Color != "" && !validators.IsHexColor(req.Color) {
		httperr.BadRequest(c, "invalid_color", "Cor deve estar no formato #rrggbb.")
		return
	}

	service := models.Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Category:    strings.ToLower(req.Category),
		Active:      true,
	}
	if req.Color != "" {
		service.Color = req.Color
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &service); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "service_name_taken", "Já existe um serviço com este nome.")
			return
		}
		writeGatewayError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.Created(c, service)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	service, err := gateway.First[models.Service](c.Request.Context(), h.store, uint(id))
	if err != nil {
		writeGatewayError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price != nil && *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}
	if req.DurationMin != nil && *req.DurationMin <= 0 {
		httperr.BadRequest(c, "invalid_duration", "Duração deve ser positiva.")
		return
	}
	if req.Color != nil && !validators.IsHexColor(*req.Color) {
		httperr.BadRequest(c, "invalid_color", "Cor deve estar no formato #rrggbb.")
		return
	}

	if req.Name != nil {
		service.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.DurationMin != nil {
		service.DurationMin = *req.DurationMin
	}
	if req.Category != nil {
		service.Category = strings.ToLower(*req.Category)
	}
	if req.Color != nil {
		service.Color = *req.Color
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if err := gateway.Save(c.Request.Context(), h.store, service); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "service_name_taken", "Já existe um serviço com este nome.")
			return
		}
		writeGatewayError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, service)
}

// ======================================================
// DELETE
// ======================================================

func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := gateway.Delete[models.Service](c.Request.Context(), h.store, uint(id)); err != nil {
		writeGatewayError(c, err, "service_not_found", "Serviço não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
