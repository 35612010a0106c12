package service

import (
	"context"

	leaderboardDto "craftvale.gg/communityapi/internal/modules/leaderboard/dto"
	leaderboardRepo "craftvale.gg/communityapi/internal/modules/leaderboard/repository"
)

const (
	SortByPoints   = "points"
	SortByPlaytime = "playtime"

	DefaultLimit = 10
	MaxLimit     = 100
)

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, limit int, sortBy string) ([]leaderboardDto.LeaderboardEntry, error)
}

type leaderboardService struct {
	repo leaderboardRepo.LeaderboardRepository
}

func NewLeaderboardService(repo leaderboardRepo.LeaderboardRepository) LeaderboardService {
	return &leaderboardService{repo: repo}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, limit int, sortBy string) ([]leaderboardDto.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var rows []leaderboardDto.LeaderboardRow
	var err error
	switch sortBy {
	case SortByPlaytime:
		rows, err = s.repo.TopByPlaytime(ctx, limit)
	default:
		rows, err = s.repo.TopByPoints(ctx, limit)
	}
	if err != nil {
		return nil, err
	}

	entries := make([]leaderboardDto.LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, leaderboardDto.LeaderboardEntry{
			Position:          i + 1, // 1-based position
			DisplayName:       row.DisplayName,
			MinecraftUsername: row.MinecraftUsername,
			AvatarURL:         row.AvatarURL,
			TotalPoints:       row.TotalPoints,
			PlaytimeMinutes:   row.PlaytimeMinutes,
			RankStatus:        GetRankStatus(row.TotalPoints),
		})
	}

	return entries, nil
}
