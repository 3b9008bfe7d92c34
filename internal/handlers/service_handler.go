package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	"github.com/dmoura-dev/barber-booking-api/internal/storage"
)

type ServiceHandler struct {
	db     *gorm.DB
	images *storage.ImageStore
}

func NewServiceHandler(db *gorm.DB, images *storage.ImageStore) *ServiceHandler {
	return &ServiceHandler{db: db, images: images}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	PriceInCents *int   `json:"price_in_cents" binding:"required,gte=0"`
	ImageURL     string `json:"image_url"`
}

type UpdateServiceRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	PriceInCents *int    `json:"price_in_cents,omitempty" binding:"omitempty,gte=0"`
	ImageURL     *string `json:"image_url,omitempty"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shopID).
		Order("name ASC").
		Find(&services).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_services"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

func (h *ServiceHandler) Create(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	service := models.Service{
		BarbershopID: shopID,
		Name:         req.Name,
		Description:  req.Description,
		PriceInCents: *req.PriceInCents,
		ImageURL:     req.ImageURL,
	}

	if err := h.db.Create(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

func (h *ServiceHandler) Update(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	service, ok := h.findService(c, shopID)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.PriceInCents != nil {
		service.PriceInCents = *req.PriceInCents
	}
	if req.ImageURL != nil {
		service.ImageURL = *req.ImageURL
	}

	if err := h.db.Save(service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// Delete remove o serviço de vez. O histórico de reservas sobrevive:
// a FK em bookings é SET NULL, nunca cascata.
func (h *ServiceHandler) Delete(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	service, ok := h.findService(c, shopID)
	if !ok {
		return
	}

	if err := h.db.Delete(service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_service"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// --------- Image upload ---------

func (h *ServiceHandler) UploadImage(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	service, ok := h.findService(c, shopID)
	if !ok {
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Arquivo de imagem obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler imagem.")
		return
	}
	defer src.Close()

	url, err := h.images.UploadServiceImage(c.Request.Context(), service.ID, src)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_image") {
			httperr.BadRequest(c, "invalid_image", "Imagem inválida.")
			return
		}
		if httperr.IsBusiness(err, "uploads_disabled") {
			httperr.BadRequest(c, "uploads_disabled", "Upload de imagens não configurado.")
			return
		}
		httperr.Internal(c, "failed_to_upload_image", "Erro ao enviar imagem.")
		return
	}

	service.ImageURL = url
	if err := h.db.Save(service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Erro ao salvar serviço.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"service": service})
}

// --------- Helpers ---------

func (h *ServiceHandler) findService(c *gin.Context, shopID uuid.UUID) (*models.Service, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_service_id"})
		return nil, false
	}

	var service models.Service
	if err := h.db.
		Where("id = ? AND barbershop_id = ?", id, shopID).
		First(&service).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_service"})
		return nil, false
	}

	return &service, true
}
