package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StudioBelezaApps/salon-crm/internal/gateway"
	"github.com/StudioBelezaApps/salon-crm/internal/httperr"
	"github.com/StudioBelezaApps/salon-crm/internal/httpresp"
	"github.com/StudioBelezaApps/salon-crm/internal/models"
	"github.com/StudioBelezaApps/salon-crm/internal/timezone"
)

// SettingsHandler cobre as configurações gerais e o clube de fidelidade.
// Ambas são linhas únicas: GET devolve (criando o default se preciso) e PUT
// substitui.
type SettingsHandler struct {
	store *gateway.Store
}

func NewSettingsHandler(store *gateway.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// --------- Requests ---------

type GeneralSettingsRequest struct {
	SalonName string `json:"salon_name" binding:"required,min=2"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Timezone  string `json:"timezone"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type LoyaltySettingsRequest struct {
	Enabled          bool    `json:"enabled"`
	PointsPerService int     `json:"points_per_service" binding:"gte=0"`
	PointsPerEuro    float64 `json:"points_per_euro" binding:"gte=0"`
	RedeemThreshold  int     `json:"redeem_threshold" binding:"gte=1"`
	RewardText       string  `json:"reward_text"`
}

// ======================================================
// GENERAL
// ======================================================

func (h *SettingsHandler) GetGeneral(c *gin.Context) {
	var settings models.SalonSettings
	err := h.store.DB().WithContext(c.Request.Context()).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.OK(c, models.SalonSettings{Timezone: timezone.DefaultTimezone, OpenTime: "09:00", CloseTime: "19:00"})
			return
		}
		writeGatewayError(c, gateway.Translate(err), "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

func (h *SettingsHandler) PutGeneral(c *gin.Context) {
	var req GeneralSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "Fuso horário inválido.")
		return
	}

	var settings models.SalonSettings
	err := h.store.DB().WithContext(c.Request.Context()).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		writeGatewayError(c, gateway.Translate(err), "settings_not_found", "Configurações não encontradas.")
		return
	}

	settings.SalonName = req.SalonName
	settings.Phone = req.Phone
	settings.Email = req.Email
	settings.Address = req.Address
	settings.Timezone = req.Timezone
	settings.OpenTime = req.OpenTime
	settings.CloseTime = req.CloseTime

	if err := gateway.Save(c.Request.Context(), h.store, &settings); err != nil {
		writeGatewayError(c, err, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

// ======================================================
// LOYALTY
// ======================================================

func (h *SettingsHandler) GetLoyalty(c *gin.Context) {
	var settings models.LoyaltySettings
	err := h.store.DB().WithContext(c.Request.Context()).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httpresp.OK(c, models.LoyaltySettings{PointsPerService: 10, PointsPerEuro: 1, RedeemThreshold: 100})
			return
		}
		writeGatewayError(c, gateway.Translate(err), "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}

func (h *SettingsHandler) PutLoyalty(c *gin.Context) {
	var req LoyaltySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var settings models.LoyaltySettings
	err := h.store.DB().WithContext(c.Request.Context()).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		writeGatewayError(c, gateway.Translate(err), "settings_not_found", "Configurações não encontradas.")
		return
	}

	settings.Enabled = req.Enabled
	settings.PointsPerService = req.PointsPerService
	settings.PointsPerEuro = req.PointsPerEuro
	settings.RedeemThreshold = req.RedeemThreshold
	settings.RewardText = req.RewardText

	if err := gateway.Save(c.Request.Context(), h.store, &settings); err != nil {
		writeGatewayError(c, err, "settings_not_found", "Configurações não encontradas.")
		return
	}

	httpresp.OK(c, settings)
}
