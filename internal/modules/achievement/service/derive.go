package service

import (
	"craftvale.gg/communityapi/internal/entity"
	"github.com/google/uuid"
)

// Partition splits the active catalog into the definitions the user has
// earned and the ones still available. Every catalog entry lands in exactly
// one of the two slices; an empty earned set yields an all-available split.
// Recomputed on every call, never cached.
func Partition(catalog []entity.AchievementDefinition, earned []entity.UserAchievement) (earnedDefs, available []entity.AchievementDefinition) {
	earnedIDs := make(map[uuid.UUID]struct{}, len(earned))
	for _, ua := range earned {
		earnedIDs[ua.AchievementID] = struct{}{}
	}

	earnedDefs = make([]entity.AchievementDefinition, 0, len(earnedIDs))
	available = make([]entity.AchievementDefinition, 0, len(catalog))
	for _, def := range catalog {
		if _, ok := earnedIDs[def.ID]; ok {
			earnedDefs = append(earnedDefs, def)
		} else {
			available = append(available, def)
		}
	}

	return earnedDefs, available
}

// TotalPoints sums the point values of the earned definitions.
func TotalPoints(earnedDefs []entity.AchievementDefinition) int {
	total := 0
	for _, def := range earnedDefs {
		total += def.Points
	}
	return total
}
