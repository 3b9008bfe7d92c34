package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmoura-dev/barber-booking-api/internal/httperr"
)

const DefaultSlotIntervalMin = 30

// GenerateSlots gera a grade canônica de horários "HH:MM" de uma barbearia,
// de openTime até closeTime em passos de intervalMin. O horário de fechamento
// entra na grade quando cai exatamente em um passo; caso contrário o último
// slot é o maior horário anterior ao fechamento.
func GenerateSlots(openTime, closeTime string, intervalMin int) ([]string, error) {
	if intervalMin <= 0 {
		return nil, httperr.ErrBusiness("invalid_slot_config")
	}

	openH, openM, err := ParseHM(openTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_slot_config")
	}

	closeH, closeM, err := ParseHM(closeTime)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_slot_config")
	}

	open := openH*60 + openM
	close := closeH*60 + closeM
	if open > close {
		return nil, httperr.ErrBusiness("invalid_slot_config")
	}

	var slots []string
	for cur := open; cur <= close; cur += intervalMin {
		slots = append(slots, fmt.Sprintf("%02d:%02d", cur/60, cur%60))
	}

	return slots, nil
}

// ParseHM valida e decompõe um horário "HH:MM".
func ParseHM(hm string) (hour int, minute int, err error) {
	parts := strings.Split(hm, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q", hm)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid time %q", hm)
	}

	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q", hm)
	}

	return hour, minute, nil
}

// SlotOf projeta um timestamp no slot "HH:MM" correspondente.
func SlotOf(t time.Time) string {
	return t.Format("15:04")
}
