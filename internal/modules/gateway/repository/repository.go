package repository

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"gorm.io/gorm"
)

type GatewayRepository interface {
	FindAll(ctx context.Context) ([]entity.PaymentGateway, error)
	FindEnabled(ctx context.Context) ([]entity.PaymentGateway, error)
	FindBySlug(ctx context.Context, slug string) (*entity.PaymentGateway, error)
	SetEnabled(ctx context.Context, slug string, enabled bool) (*entity.PaymentGateway, error)
}

type gatewayRepository struct {
	db *gorm.DB
}

func NewGatewayRepository(db *gorm.DB) GatewayRepository {
	return &gatewayRepository{db: db}
}

func (r *gatewayRepository) FindAll(ctx context.Context) ([]entity.PaymentGateway, error) {
	var gateways []entity.PaymentGateway
	if err := r.db.WithContext(ctx).Order("name asc").Find(&gateways).Error; err != nil {
		return nil, err
	}
	return gateways, nil
}

func (r *gatewayRepository) FindEnabled(ctx context.Context) ([]entity.PaymentGateway, error) {
	var gateways []entity.PaymentGateway
	if err := r.db.WithContext(ctx).Where("is_enabled = ?", true).Order("name asc").Find(&gateways).Error; err != nil {
		return nil, err
	}
	return gateways, nil
}

func (r *gatewayRepository) FindBySlug(ctx context.Context, slug string) (*entity.PaymentGateway, error) {
	var gateway entity.PaymentGateway
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&gateway).Error; err != nil {
		return nil, err
	}
	return &gateway, nil
}

func (r *gatewayRepository) SetEnabled(ctx context.Context, slug string, enabled bool) (*entity.PaymentGateway, error) {
	tx := r.db.WithContext(ctx).
		Model(&entity.PaymentGateway{}).
		Where("slug = ?", slug).
		Update("is_enabled", enabled)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected != 1 {
		return nil, gorm.ErrRecordNotFound
	}

	return r.FindBySlug(ctx, slug)
}
