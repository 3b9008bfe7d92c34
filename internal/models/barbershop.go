package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Barbershop struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name    string    `gorm:"size:100;not null" json:"name"`
	Slug    string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone   string    `gorm:"size:20" json:"phone"`
	Address string    `gorm:"size:255" json:"address"`

	// Janela de atendimento usada para gerar a grade de horários
	OpenTime        string `gorm:"size:5;default:'09:00'" json:"open_time"`
	CloseTime       string `gorm:"size:5;default:'20:00'" json:"close_time"`
	SlotIntervalMin int    `gorm:"default:30" json:"slot_interval_min"`

	Timezone string `gorm:"size:50" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Barbershop) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
