package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentSection is a marketing block rendered on the landing pages (hero,
// features, gallery). Authored by an external admin process.
type ContentSection struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Title     string    `gorm:"size:200" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	ImageURL  string    `gorm:"type:text" json:"image_url"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"default:true;index" json:"is_active"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *ContentSection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
