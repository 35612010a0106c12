package service

import (
	"math"

	"craftvale.gg/communityapi/pkg/dto"
)

// Rank thresholds based on all-time achievement points. Ranks never demote.
const (
	PointsLegend   = 20000 // Legend - Hall of Fame
	PointsBaron    = 8000  // Baron - veteran
	PointsKnight   = 3000  // Knight - notable player
	PointsMiner    = 600   // Miner - regular grinder
	PointsSettler  = 100   // Settler - regular member
	PointsWanderer = 0     // Wanderer - newcomer
)

// GetRankStatus calculates the rank ladder position from all-time
// achievement points.
func GetRankStatus(allTimePoints int) dto.RankStatus {
	var status dto.RankStatus
	status.CurrentPoints = allTimePoints

	switch {
	case allTimePoints >= PointsLegend:
		status.RankName = "Legend"
		status.NextRank = "Max Level"
		status.TargetPoints = PointsLegend
		status.Progress = 100

	case allTimePoints >= PointsBaron:
		status.RankName = "Baron"
		status.NextRank = "Legend"
		status.TargetPoints = PointsLegend
		status.Progress = (float64(allTimePoints) / float64(PointsLegend)) * 100

	case allTimePoints >= PointsKnight:
		status.RankName = "Knight"
		status.NextRank = "Baron"
		status.TargetPoints = PointsBaron
		status.Progress = (float64(allTimePoints) / float64(PointsBaron)) * 100

	case allTimePoints >= PointsMiner:
		status.RankName = "Miner"
		status.NextRank = "Knight"
		status.TargetPoints = PointsKnight
		status.Progress = (float64(allTimePoints) / float64(PointsKnight)) * 100

	case allTimePoints >= PointsSettler:
		status.RankName = "Settler"
		status.NextRank = "Miner"
		status.TargetPoints = PointsMiner
		status.Progress = (float64(allTimePoints) / float64(PointsMiner)) * 100

	default:
		status.RankName = "Wanderer"
		status.NextRank = "Settler"
		status.TargetPoints = PointsSettler
		if allTimePoints == 0 {
			status.Progress = 0
		} else {
			status.Progress = (float64(allTimePoints) / float64(PointsSettler)) * 100
		}
	}

	// Round progress to 2 decimal places
	status.Progress = math.Round(status.Progress*100) / 100

	return status
}
