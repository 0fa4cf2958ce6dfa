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

type ProfessionalHandler struct {
	store *gateway.Store
}

func NewProfessionalHandler(store *gateway.Store) *ProfessionalHandler {
	return &ProfessionalHandler{store: store}
}

// --------- Requests ---------

type CreateProfessionalRequest struct {
	Name       string `json:"name" binding:"required,min=3"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=9"`
	Bio        string `json:"bio"`
	Speciality string `json:"speciality" binding:"required"`
	Color      string `json:"color"`
}

type UpdateProfessionalRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Bio        *string `json:"bio,omitempty"`
	Speciality *string `json:"speciality,omitempty"`
	Color      *string `json:"color,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

var professionalSorters = map[string]func(a, b models.Professional) bool{
	"name":       func(a, b models.Professional) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"speciality": func(a, b models.Professional) bool { return a.Speciality < b.Speciality },
	"email":      func(a, b models.Professional) bool { return a.Email < b.Email },
}

func (h *ProfessionalHandler) List(c *gin.Context) {
	params := gateway.ParseListParams(
		c.Query("query"), c.Query("sort"), c.Query("dir"), c.Query("page"),
	)

	pros, err := gateway.Query[models.Professional](c.Request.Context(), h.store, nil, "name ASC")
	if err != nil {
		writeGatewayError(c, err, "professionals_not_found", "Profissionais não encontrados.")
		return
	}

	filtered := gateway.Filter(pros, params.Query, func(p models.Professional) []string {
		return []string{p.Name, p.Email, p.Phone, p.Speciality}
	})
	gateway.SortBy(filtered, professionalSorters[params.SortBy], params.Desc)

	page, totalPages := gateway.Paginate(filtered, params.Page, params.PerPage)
	httpresp.Page(c, page, len(filtered), params.Page, params.PerPage, totalPages)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProfessionalHandler) Create(c *gin.Context) {
	var req CreateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Color != "" && !validators.IsHexColor(req.Color) {
		httperr.BadRequest(c, "invalid_color", "Cor deve estar no formato #rrggbb.")
		return
	}

	pro := models.Professional{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:      strings.TrimSpace(req.Phone),
		Bio:        req.Bio,
		Speciality: req.Speciality,
		Active:     true,
	}
	if req.Color != "" {
		pro.Color = req.Color
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &pro); err != nil {
		if gateway.IsUniqueViolation(err) {
			// índice composto (email, phone)
			httperr.Conflict(c, "professional_contact_taken", "Já existe um profissional com este e-mail e telefone.")
			return
		}
		writeGatewayError(c, err, "professional_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.Created(c, pro)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProfessionalHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	pro, err := gateway.First[models.Professional](c.Request.Context(), h.store, uint(id))
	if err != nil {
		writeGatewayError(c, err, "professional_not_found", "Profissional não encontrado.")
		return
	}

	var req UpdateProfessionalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Color != nil && !validators.IsHexColor(*req.Color) {
		httperr.BadRequest(c, "invalid_color", "Cor deve estar no formato #rrggbb.")
		return
	}

	if req.Name != nil {
		pro.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		pro.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		pro.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Bio != nil {
		pro.Bio = *req.Bio
	}
	if req.Speciality != nil {
		pro.Speciality = *req.Speciality
	}
	if req.Color != nil {
		pro.Color = *req.Color
	}
	if req.Active != nil {
		pro.Active = *req.Active
	}

	if err := gateway.Save(c.Request.Context(), h.store, pro); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "professional_contact_taken", "Já existe um profissional com este e-mail e telefone.")
			return
		}
		writeGatewayError(c, err, "professional_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, pro)
}

// ======================================================
// DELETE
// ======================================================

func (h *ProfessionalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := gateway.Delete[models.Professional](c.Request.Context(), h.store, uint(id)); err != nil {
		writeGatewayError(c, err, "professional_not_found", "Profissional não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
