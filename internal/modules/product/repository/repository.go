package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"gorm.io/gorm"
)

type ProductRepository interface {
	// FindActive returns one page of the active store catalog plus the total
	// count of matching rows.
	FindActive(ctx context.Context, category, search string, limit, offset int) ([]entity.Product, int64, error)
	// FindAllActive returns the whole active catalog, unpaged, for indexing.
	FindAllActive(ctx context.Context) ([]entity.Product, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) FindActive(ctx context.Context, category, search string, limit, offset int) ([]entity.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Product{}).Where("is_active = ?", true)

	if category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []entity.Product
	err := query.
		Order("category asc").
		Order("sort_order asc").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) FindAllActive(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("category asc").
		Order("sort_order asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	var product entity.Product
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}
