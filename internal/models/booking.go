package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ServiceID uuid.UUID `gorm:"type:uuid" json:"service_id"`
	Service   Service   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	BarbershopID uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_bookings_shop_date" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	// ID opaco do usuário logado (sessão externa)
	UserID string `gorm:"size:100;index" json:"user_id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	// Timestamp alinhado à grade de horários. O índice único em
	// (barbershop_id, date) é quem garante um agendamento por slot.
	Date time.Time `gorm:"uniqueIndex:idx_bookings_shop_date;not null" json:"date"`

	Cancelled   bool       `gorm:"default:false" json:"cancelled"`
	CancelledAt *time.Time `json:"cancelled_at"`
	Finished    bool       `gorm:"default:false" json:"finished"`
	FinishedAt  *time.Time `json:"finished_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
