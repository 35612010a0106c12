package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the site-facing record for a user, one row per user. Created
// alongside the user identity by the auth service; this layer applies partial
// updates through the profile module only.
type Profile struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	DisplayName       string    `gorm:"size:50;not null" json:"display_name"`
	MinecraftUsername string    `gorm:"size:16;index" json:"minecraft_username"`
	AvatarURL         *string   `gorm:"type:text" json:"avatar_url,omitempty"`
	CoinBalance       int64     `gorm:"default:0" json:"coin_balance"`
	Rank              string    `gorm:"size:30;default:'Wanderer'" json:"rank"`
	PlaytimeHours     float64   `gorm:"default:0" json:"playtime_hours"`
	AchievementCount  int       `gorm:"default:0" json:"achievement_count"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
