package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AchievementDefinition is created and deactivated by the game-server side;
// this layer only reads it.
type AchievementDefinition struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	IconURL      string    `gorm:"type:text" json:"icon_url"`
	Points       int       `gorm:"not null;default:0" json:"points"`
	Category     string    `gorm:"size:50;index" json:"category"`
	Requirements JSONDoc   `gorm:"type:jsonb" json:"requirements"` // e.g. {"stat":"blocks_broken","target":1000}
	IsActive     bool      `gorm:"default:true;index" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *AchievementDefinition) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// UserAchievement records that a user earned an achievement. Rows are created
// by the game server when requirements are met; at most one per
// (user, achievement). Progress is the only field this layer may touch.
type UserAchievement struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	AchievementID uuid.UUID             `gorm:"type:uuid;index:idx_user_achievement,unique,priority:2;not null" json:"achievement_id"`
	Achievement   AchievementDefinition `gorm:"foreignKey:AchievementID" json:"achievement"`
	UserID        uuid.UUID             `gorm:"type:uuid;index:idx_user_achievement,unique,priority:1;not null" json:"user_id"`
	EarnedAt      time.Time             `gorm:"not null" json:"earned_at"`
	Progress      JSONDoc               `gorm:"type:jsonb" json:"progress"` // e.g. {"current":1000,"target":1000}
}

func (ua *UserAchievement) BeforeCreate(tx *gorm.DB) error {
	if ua.ID == uuid.Nil {
		ua.ID = uuid.New()
	}
	return nil
}
