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

type ProductHandler struct {
	store *gateway.Store
}

func NewProductHandler(store *gateway.Store) *ProductHandler {
	return &ProductHandler{store: store}
}

// --------- Requests ---------

type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	MinStock    int     `json:"min_stock" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"image_url"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Cost        *float64 `json:"cost,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	MinStock    *int     `json:"min_stock,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// ======================================================
// LIST
// ======================================================

var productSorters = map[string]func(a, b models.Product) bool{
	"name":     func(a, b models.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) },
	"price":    func(a, b models.Product) bool { return a.Price < b.Price },
	"stock":    func(a, b models.Product) bool { return a.Stock < b.Stock },
	"category": func(a, b models.Product) bool { return a.Category < b.Category },
}

func (h *ProductHandler) List(c *gin.Context) {
	params := gateway.ParseListParams(
		c.Query("query"), c.Query("sort"), c.Query("dir"), c.Query("page"),
	)

	filters := map[string]any{}
	if category := strings.ToLower(strings.TrimSpace(c.Query("category"))); category != "" {
		filters["category"] = category
	}

	products, err := gateway.Query[models.Product](c.Request.Context(), h.store, filters, "name ASC")
	if err != nil {
		writeGatewayError(c, err, "products_not_found", "Produtos não encontrados.")
		return
	}

	filtered := gateway.Filter(products, params.Query, func(p models.Product) []string {
		return []string{p.Name, p.Brand, p.Category, p.Description}
	})
	gateway.SortBy(filtered, productSorters[params.SortBy], params.Desc)

	page, totalPages := gateway.Paginate(filtered, params.Page, params.PerPage)
	httpresp.Page(c, page, len(filtered), params.Page, params.PerPage, totalPages)
}

// ======================================================
// CREATE
// ======================================================

func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	product := models.Product{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		Stock:       req.Stock,
		MinStock:    req.MinStock,
		Category:    strings.ToLower(req.Category),
		Brand:       req.Brand,
		ImageURL:    req.ImageURL,
		Active:      true,
	}

	if err := gateway.Insert(c.Request.Context(), h.store, &product); err != nil {
		if gateway.IsUniqueViolation(err) {
			// índice funcional LOWER(name): nome é único sem distinção de caixa
			httperr.Conflict(c, "product_name_taken", "Já existe um produto com este nome.")
			return
		}
		writeGatewayError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	httpresp.Created(c, product)
}

// ======================================================
// UPDATE
// ======================================================

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	product, err := gateway.First[models.Product](c.Request.Context(), h.store, uint(id))
	if err != nil {
		writeGatewayError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price != nil && *req.Price < 0 {
		httperr.BadRequest(c, "invalid_price", "Preço não pode ser negativo.")
		return
	}
	if req.Cost != nil && *req.Cost < 0 {
		httperr.BadRequest(c, "invalid_cost", "Custo não pode ser negativo.")
		return
	}
	if req.Stock != nil && *req.Stock < 0 {
		httperr.BadRequest(c, "invalid_stock", "Estoque não pode ser negativo.")
		return
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Cost != nil {
		product.Cost = *req.Cost
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.Category != nil {
		product.Category = strings.ToLower(*req.Category)
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := gateway.Save(c.Request.Context(), h.store, product); err != nil {
		if gateway.IsUniqueViolation(err) {
			httperr.Conflict(c, "product_name_taken", "Já existe um produto com este nome.")
			return
		}
		writeGatewayError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	httpresp.OK(c, product)
}

// ======================================================
// DELETE
// ======================================================

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := gateway.Delete[models.Product](c.Request.Context(), h.store, uint(id)); err != nil {
		writeGatewayError(c, err, "product_not_found", "Produto não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"status": "deleted"})
}
