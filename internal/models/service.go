package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BarbershopID uuid.UUID `gorm:"type:uuid;index" json:"barbershop_id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Description  string `gorm:"size:255" json:"description"`
	PriceInCents int    `gorm:"not null;check:price_in_cents >= 0" json:"price_in_cents"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
