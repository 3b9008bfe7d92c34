package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
)

// Cada falha vira um código próprio: a UI precisa saber orientar o cliente
// (escolher outro horário, recarregar a lista etc), nunca um erro genérico.
func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "barbershop_not_found"):
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
	case httperr.IsBusiness(err, "invalid_client_name"):
		httperr.BadRequest(c, "invalid_client_name", "Nome obrigatório.")
	case httperr.IsBusiness(err, "invalid_client_phone"):
		httperr.BadRequest(c, "invalid_client_phone", "Telefone inválido.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Data ou hora inválida.")
	case httperr.IsBusiness(err, "slot_not_available"):
		httperr.BadRequest(c, "slot_not_available", "Horário fora da grade de atendimento.")
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.Conflict(c, "slot_already_booked", "Já existe um agendamento para esse horário. Escolha outro.")
	case httperr.IsBusiness(err, "already_finished"):
		httperr.Conflict(c, "already_finished", "Reserva já finalizada.")
	case httperr.IsBusiness(err, "already_cancelled"):
		httperr.Conflict(c, "already_cancelled", "Reserva já cancelada.")
	case httperr.IsBusiness(err, "invalid_action"):
		httperr.BadRequest(c, "invalid_action", "Ação inválida.")
	case httperr.IsBusiness(err, "invalid_slot_config"):
		httperr.Internal(c, "invalid_slot_config", "Configuração de horários inválida.")
	default:
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}
