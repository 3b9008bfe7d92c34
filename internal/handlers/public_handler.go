package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/dmoura-dev/barber-booking-api/internal/domain/booking"
	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/httpresp"
	"github.com/dmoura-dev/barber-booking-api/internal/middleware"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	ucBooking "github.com/dmoura-dev/barber-booking-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	db            *gorm.DB
	availability  *ucBooking.GetAvailability
	createBooking *ucBooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucBooking.GetAvailability,
	createBooking *ucBooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:            db,
		availability:  availability,
		createBooking: createBooking,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ServiceID   string `json:"service_id" binding:"required"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("barbershop_id = ?", shop.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"barbershop": shop,
		"services":   services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")

	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availability.Execute(
		c.Request.Context(),
		domain.AvailabilityInput{
			BarbershopID: shop.ID,
			Date:         date,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")
	userID := c.MustGet(middleware.ContextUserID).(string)

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	b, err := h.createBooking.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarbershopID: shop.ID,
			ServiceID:    serviceID,
			UserID:       userID,
			ClientName:   req.ClientName,
			ClientPhone:  req.ClientPhone,
			Date:         req.Date,
			Time:         req.Time,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, b)
}

////////////////////////////////////////////////////////
// MY BOOKINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) MyBookings(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var bookings []models.Booking
	if err := h.db.
		Preload("Service").
		Preload("Barbershop").
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&bookings).Error; err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, bookings)
}
