package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
)

type BarbershopHandler struct {
	db *gorm.DB
}

func NewBarbershopHandler(db *gorm.DB) *BarbershopHandler {
	return &BarbershopHandler{db: db}
}

// --------- Requests ---------

type UpdateBarbershopRequest struct {
	Name            *string `json:"name,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Address         *string `json:"address,omitempty"`
	OpenTime        *string `json:"open_time,omitempty"`
	CloseTime       *string `json:"close_time,omitempty"`
	SlotIntervalMin *int    `json:"slot_interval_min,omitempty"`
}

// --------- Handlers ---------

func (h *BarbershopHandler) Get(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Address != nil {
		shop.Address = *req.Address
	}
	if req.OpenTime != nil {
		shop.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		shop.CloseTime = *req.CloseTime
	}
	if req.SlotIntervalMin != nil {
		shop.SlotIntervalMin = *req.SlotIntervalMin
	}

	// a janela nova precisa gerar uma grade válida antes de ser aceita
	if _, err := domain.GenerateSlots(shop.OpenTime, shop.CloseTime, shop.SlotIntervalMin); err != nil {
		httperr.BadRequest(c, "invalid_slot_config", "Janela de atendimento inválida.")
		return
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Erro ao salvar barbearia.")
		return
	}

	c.JSON(http.StatusOK, shop)
}
