package handlers

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	"github.com/dmoura-dev/barber-booking-api/internal/middleware"
	"github.com/dmoura-dev/barber-booking-api/internal/models"
	ucBooking "github.com/dmoura-dev/barber-booking-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db         *gorm.DB
	listByDate *ucBooking.ListBookingsByDate
	setStatus  *ucBooking.SetBookingStatus
}

func NewBookingHandler(
	db *gorm.DB,
	listByDate *ucBooking.ListBookingsByDate,
	setStatus *ucBooking.SetBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		db:         db,
		listByDate: listByDate,
		setStatus:  setStatus,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type SetBookingStatusRequest struct {
	Action string `json:"action" binding:"required"`
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ======================================================
// HELPERS
// ======================================================

func shopIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw := c.MustGet(middleware.ContextBarbershopID).(string)

	id, err := uuid.Parse(raw)
	if err != nil {
		httperr.Unauthorized(c, "invalid_token_payload", "Sessão inválida.")
		return uuid.Nil, false
	}

	return id, true
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	dateStr := c.Param("date")
	if !dateRe.MatchString(dateStr) {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	date, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao buscar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

func (h *BookingHandler) ListToday(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, "id = ?", shopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), shopID, nowInShop(&shop))
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao buscar agendamentos.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ======================================================
// STATUS (finish / cancel)
// ======================================================

func (h *BookingHandler) SetStatus(c *gin.Context) {
	if _, ok := shopIDFromContext(c); !ok {
		return
	}

	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Reserva inválida.")
		return
	}

	var req SetBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.setStatus.Execute(c.Request.Context(), bookingID, req.Action)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": b})
}
