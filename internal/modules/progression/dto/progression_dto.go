package dto

import "craftvale.gg/communityapi/internal/entity"

const (
	StateUninitialized = "uninitialized"
	StateLoading       = "loading"
	StateLoaded        = "loaded"
	StateAbsent        = "absent"
	StateErrored       = "errored"
)

// Snapshot is the per-user progression view: the catalog partitioned against
// the earned set, plus the cached statistics and profile records.
type Snapshot struct {
	Loading      bool                           `json:"loading"`
	Earned       []entity.AchievementDefinition `json:"earned"`
	Available    []entity.AchievementDefinition `json:"available"`
	TotalPoints  int                            `json:"total_points"`
	Stats        *entity.PlayerStats            `json:"stats"`
	StatsState   string                         `json:"stats_state"`
	Profile      *entity.Profile                `json:"profile"`
	ProfileState string                         `json:"profile_state"`
}
