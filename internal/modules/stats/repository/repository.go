package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerStatsRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error)
	// PartialUpdate assigns only the given fields on the user's row and
	// returns the post-update row. Exactly one row must match.
	PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error)
	FindTop(ctx context.Context, orderColumn string, limit int) ([]entity.PlayerStats, error)
}

type playerStatsRepository struct {
	db *gorm.DB
}

func NewPlayerStatsRepository(db *gorm.DB) PlayerStatsRepository {
	return &playerStatsRepository{db: db}
}

func (r *playerStatsRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error) {
	var stats entity.PlayerStats
	if err := r.db.WithContext(ctx).First(&stats, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *playerStatsRepository) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.PlayerStats{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}

	// Re-read: the store is authoritative for computed and default columns.
	return r.FindByUser(ctx, userID)
}

func (r *playerStatsRepository) FindTop(ctx context.Context, orderColumn string, limit int) ([]entity.PlayerStats, error) {
	var stats []entity.PlayerStats
	err := r.db.WithContext(ctx).
		Order(orderColumn + " desc").
		Limit(limit).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
