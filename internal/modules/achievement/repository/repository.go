package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AchievementRepository interface {
	// FindActiveDefinitions returns the active catalog ordered by category,
	// then points ascending.
	FindActiveDefinitions(ctx context.Context) ([]entity.AchievementDefinition, error)
	// FindEarnedByUser returns every earned row for the user with its
	// definition attached.
	FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error)
	// UpdateProgress overwrites the progress document on one earned row.
	UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error)
}

type achievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepository{db: db}
}

func (r *achievementRepository) FindActiveDefinitions(ctx context.Context) ([]entity.AchievementDefinition, error) {
	var definitions []entity.AchievementDefinition
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category asc").
		Order("points asc").
		Find(&definitions).Error
	if err != nil {
		return nil, err
	}
	return definitions, nil
}

func (r *achievementRepository) FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error) {
	var earned []entity.UserAchievement
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ?", userID).
		Order("earned_at desc").
		Find(&earned).Error
	if err != nil {
		return nil, err
	}
	return earned, nil
}

func (r *achievementRepository) UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.UserAchievement{}).
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		Update("progress", progress)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}

	var row entity.UserAchievement
	err := r.db.WithContext(ctx).
		Preload("Achievement").
		Where("user_id = ? AND achievement_id = ?", userID, achievementID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
