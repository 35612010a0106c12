package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentGateway is a configured checkout provider. Only the enabled flag is
// toggled through this layer; processing happens on the provider side.
type PaymentGateway struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:50;not null" json:"name"`
	Slug      string    `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	IsEnabled bool      `gorm:"default:false" json:"is_enabled"`
	Config    JSONDoc   `gorm:"type:jsonb" json:"-"` // provider keys, never serialized to clients
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (g *PaymentGateway) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}
