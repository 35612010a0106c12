package dto

import (
	"time"

	"craftvale.gg/communityapi/internal/entity"
)

// StatsPatch carries a partial update; only non-nil fields are sent to the
// store.
type StatsPatch struct {
	PlaytimeMinutes    *int64         `json:"playtime_minutes"`
	CoinsEarned        *int64         `json:"coins_earned"`
	PurchaseCount      *int           `json:"purchase_count"`
	PurchaseTotalCents *int64         `json:"purchase_total_cents"`
	LastSeenAt         *time.Time     `json:"last_seen_at"`
	BlocksPlaced       *int64         `json:"blocks_placed"`
	BlocksBroken       *int64         `json:"blocks_broken"`
	DistanceTraveled   *int64         `json:"distance_traveled"`
	Deaths             *int64         `json:"deaths"`
	Kills              *int64         `json:"kills"`
	LevelData          map[string]any `json:"level_data"`
}

// Fields maps the supplied values to their column names. Unset fields never
// appear in the result.
func (p StatsPatch) Fields() map[string]any {
	fields := map[string]any{}

	if p.PlaytimeMinutes != nil {
		fields["playtime_minutes"] = *p.PlaytimeMinutes
	}
	if p.CoinsEarned != nil {
		fields["coins_earned"] = *p.CoinsEarned
	}
	if p.PurchaseCount != nil {
		fields["purchase_count"] = *p.PurchaseCount
	}
	if p.PurchaseTotalCents != nil {
		fields["purchase_total_cents"] = *p.PurchaseTotalCents
	}
	if p.LastSeenAt != nil {
		fields["last_seen_at"] = *p.LastSeenAt
	}
	if p.BlocksPlaced != nil {
		fields["blocks_placed"] = *p.BlocksPlaced
	}
	if p.BlocksBroken != nil {
		fields["blocks_broken"] = *p.BlocksBroken
	}
	if p.DistanceTraveled != nil {
		fields["distance_traveled"] = *p.DistanceTraveled
	}
	if p.Deaths != nil {
		fields["deaths"] = *p.Deaths
	}
	if p.Kills != nil {
		fields["kills"] = *p.Kills
	}
	if p.LevelData != nil {
		fields["level_data"] = entity.JSONDoc(p.LevelData)
	}

	return fields
}

type StatsResponse struct {
	Stats *entity.PlayerStats `json:"stats"`
}
