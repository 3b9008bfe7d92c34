package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
	ucBooking "github.com/dmoura-dev/barber-booking-api/internal/usecase/booking"
)

type StatsHandler struct {
	stats *ucBooking.GetStats
}

func NewStatsHandler(stats *ucBooking.GetStats) *StatsHandler {
	return &StatsHandler{stats: stats}
}

func (h *StatsHandler) Get(c *gin.Context) {
	shopID, ok := shopIDFromContext(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", ucBooking.PeriodDay)
	switch period {
	case ucBooking.PeriodDay, ucBooking.PeriodWeek, ucBooking.PeriodMonth:
	default:
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	stats, err := h.stats.Execute(c.Request.Context(), shopID, period)
	if err != nil {
		httperr.Internal(c, "failed_to_get_stats", "Erro ao buscar estatísticas.")
		return
	}

	c.JSON(http.StatusOK, stats)
}
