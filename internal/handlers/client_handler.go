package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
)

type ClientHandler struct {
	store *gateway.Store
}

func NewClientHandler(store *gateway.Store) *ClientHandler {
	return &ClientHandler{store: store}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name     string  `json:"name" binding:"required,min=3"`
	Phone    string  `json:"phone" binding:"required,min=9"`
	Birthday *string `json:"birthday"`
	Email    string  `json:"email"`
	Address  string  `json:"address"`
	Notes    string  `json:"notes"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
	Email    *string `json:"email,omitempty"`
	Address  *string `json:"address,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// ======================================================
// LIST (busca + ordenação + paginação)
// ======================================================

var clientSorters = map[string]func(a, b models.Client) bool{
	"name":          func(a, b models.Client) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"phone":         func(a, b models.Client) bool { return a.Phone < b.Phone },
	"service_count": func(a, b models.Client) bool { return a.ServiceCount < b.ServiceCount },
	"created_at":    func(a, b models.Client) bool { return a.CreatedAt.Before(b.CreatedAt) },
}

func (h *ClientHandler) List(c *gin.Context) {
	params := gateway.ParseListParams(
		c.Query("query"), c.Query("sort"), c.Query("dir"), c.Query("page"),
	)

	clients, err := gateway.Query[models.Client](c.Request.Context(), h.store, nil, "created_at DESC")
	if err != nil {
		writeGatewayError(c, err, "clients_not_found", "Clientes não encontrados.")
		return
	}

	filtered := gateway.Filter(clients, params.Query, func(cl models.Client) []string {
		return []string{cl.Name, cl.Phone, cl.Email}
	})
	gateway.SortBy(filtered, clientSorters[params.SortBy], params.Desc)

	page, totalPages := gateway.Paginate(filtered, params.Page, params.PerPage)
	httpresp.Page(c, page, len(filtered), params.Page, params.PerPage, totalPages)
}

// ======================================================
// CREATE
// ======================================================

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client := models.Client{
		Name:     strings.TrimSpace(req.Name),
		Phone:    strings.TrimSpace(req.Phone),
		Birthday: req.Birthday,
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Address:  req.Address,
		Notes:    req.Notes,
		Active:   true,
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &client); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "client_phone_taken", "Já existe um cliente com este telefone.")
			return
		}
		writeGatewayError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.Created(c, client)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	client, err := gateway.First[models.Client](c.Request.Context(), h.store, uint(id))
	if err != nil {
		writeGatewayError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Name != nil {
		client.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		client.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Birthday != nil {
		client.Birthday = req.Birthday
	}
	if req.Email != nil {
		client.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Address != nil {
		client.Address = *req.Address
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	if req.Active != nil {
		client.Active = *req.Active
	}

	if err := gateway.Save(c.Request.Context(), h.store, client); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "client_phone_taken", "Já existe um cliente com este telefone.")
			return
		}
		writeGatewayError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, client)
}

// ======================================================
// DELETE
// ======================================================

func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := gateway.Delete[models.Client](c.Request.Context(), h.store, uint(id)); err != nil {
		writeGatewayError(c, err, "client_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
