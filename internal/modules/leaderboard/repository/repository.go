package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/modules/leaderboard/dto"
	"gorm.io/gorm"
)

type LeaderboardRepository interface {
	// TopByPoints aggregates earned achievement points per user.
	TopByPoints(ctx context.Context, limit int) ([]dto.LeaderboardRow, error)
	// TopByPlaytime ranks users by cumulative playtime.
	TopByPlaytime(ctx context.Context, limit int) ([]dto.LeaderboardRow, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) TopByPoints(ctx context.Context, limit int) ([]dto.LeaderboardRow, error) {
	var rows []dto.LeaderboardRow
	err := r.db.WithContext(ctx).
		Table("user_achievements ua").
		Select("ua.user_id, p.display_name, p.minecraft_username, p.avatar_url, SUM(ad.points) AS total_points, COALESCE(ps.playtime_minutes, 0) AS playtime_minutes").
		Joins("JOIN achievement_definitions ad ON ad.id = ua.achievement_id AND ad.is_active = true").
		Joins("JOIN profiles p ON p.user_id = ua.user_id").
		Joins("LEFT JOIN player_stats ps ON ps.user_id = ua.user_id").
		Group("ua.user_id, p.display_name, p.minecraft_username, p.avatar_url, ps.playtime_minutes").
		Order("total_points DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *leaderboardRepository) TopByPlaytime(ctx context.Context, limit int) ([]dto.LeaderboardRow, error) {
	var rows []dto.LeaderboardRow
	err := r.db.WithContext(ctx).
		Table("player_stats ps").
		Select("ps.user_id, p.display_name, p.minecraft_username, p.avatar_url, COALESCE(SUM(ad.points), 0) AS total_points, ps.playtime_minutes").
		Joins("JOIN profiles p ON p.user_id = ps.user_id").
		Joins("LEFT JOIN user_achievements ua ON ua.user_id = ps.user_id").
		Joins("LEFT JOIN achievement_definitions ad ON ad.id = ua.achievement_id AND ad.is_active = true").
		Group("ps.user_id, p.display_name, p.minecraft_username, p.avatar_url, ps.playtime_minutes").
		Order("ps.playtime_minutes DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
