package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"gorm.io/gorm"
)

type ContentRepository interface {
	FindActive(ctx context.Context) ([]entity.ContentSection, error)
	FindBySlug(ctx context.Context, slug string) (*entity.ContentSection, error)
}

type contentRepository struct {
	db *gorm.DB
}

func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) FindActive(ctx context.Context) ([]entity.ContentSection, error) {
	var sections []entity.ContentSection
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order asc").
		Find(&sections).Error
	if err != nil {
		return nil, err
	}
	return sections, nil
}

func (r *contentRepository) FindBySlug(ctx context.Context, slug string) (*entity.ContentSection, error) {
	var section entity.ContentSection
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&section).Error; err != nil {
		return nil, err
	}
	return &section, nil
}
