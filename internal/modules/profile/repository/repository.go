package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	FindByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error)
	// PartialUpdate assigns only the given fields on the user's row and
	// returns the post-update row. Exactly one row must match.
	PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error) {
	var profile entity.Profile
	if err := r.db.WithContext(ctx).Where("minecraft_username = ?", username).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.Profile{}).
		Where("user_id = ?", userID).
		Updates(fields)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindByUser(ctx, userID)
}
