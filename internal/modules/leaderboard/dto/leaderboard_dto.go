package dto

import (
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"github.com/google/uuid"
)

// LeaderboardRow is the raw aggregate scanned from the store.
type LeaderboardRow struct {
	UserID            uuid.UUID `json:"user_id"`
	DisplayName       string    `json:"display_name"`
	MinecraftUsername string    `json:"minecraft_username"`
	AvatarURL         *string   `json:"avatar_url"`
	TotalPoints       int       `json:"total_points"`
	PlaytimeMinutes   int64     `json:"playtime_minutes"`
}

type LeaderboardEntry struct {
	Position          int                  `json:"position"`
	DisplayName       string               `json:"display_name"`
	MinecraftUsername string               `json:"minecraft_username"`
	AvatarURL         *string              `json:"avatar_url"`
	TotalPoints       int                  `json:"total_points"`
	PlaytimeMinutes   int64                `json:"playtime_minutes"`
	RankStatus        commonDto.RankStatus `json:"rank_status"`
}
