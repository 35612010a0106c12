package dto

import (
	"craftvale.gg/communityapi/internal/entity"
)

type CatalogResponse struct {
	Definitions []entity.AchievementDefinition `json:"definitions"`
	Loading     bool                           `json:"loading"`
}

type UserAchievementsResponse struct {
	Earned      []entity.AchievementDefinition `json:"earned"`
	Available   []entity.AchievementDefinition `json:"available"`
	TotalPoints int                            `json:"total_points"`
	Records     []entity.UserAchievement       `json:"records"`
}

// UpdateProgressRequest carries the new progress document. The achievement is
// named by the route, not the body.
type UpdateProgressRequest struct {
	Progress map[string]any `json:"progress" binding:"required"`
}
