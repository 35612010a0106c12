package entity

import (
	"time"

	"github.com/google/uuid"
)

// PlayerStats is the single aggregate statistics row per user. The game
// server creates it on first join and owns most columns; the site applies
// partial updates only.
type PlayerStats struct {
	UserID             uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	PlaytimeMinutes    int64      `gorm:"default:0" json:"playtime_minutes"`
	CoinsEarned        int64      `gorm:"default:0" json:"coins_earned"`
	PurchaseCount      int        `gorm:"default:0" json:"purchase_count"`
	PurchaseTotalCents int64      `gorm:"default:0" json:"purchase_total_cents"`
	FirstJoinAt        *time.Time `json:"first_join_at,omitempty"`
	LastSeenAt         *time.Time `json:"last_seen_at,omitempty"`
	BlocksPlaced       int64      `gorm:"default:0" json:"blocks_placed"`
	BlocksBroken       int64      `gorm:"default:0" json:"blocks_broken"`
	DistanceTraveled   int64      `gorm:"default:0" json:"distance_traveled"` // meters
	Deaths             int64      `gorm:"default:0" json:"deaths"`
	Kills              int64      `gorm:"default:0" json:"kills"`
	LevelData          JSONDoc    `gorm:"type:jsonb" json:"level_data"` // e.g. {"level":12,"xp":34050}
	UpdatedAt          time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
