package service

import (
	"context"
	"errors"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/gateway/repository"
	"craftvale.gg/communityapi/pkg/apperror"
	"gorm.io/gorm"
)

type GatewayService interface {
	// GetEnabledGateways lists checkout options for the store front; the
	// config document never leaves the server.
	GetEnabledGateways(ctx context.Context) ([]entity.PaymentGateway, error)
	GetAllGateways(ctx context.Context) ([]entity.PaymentGateway, error)
	SetEnabled(ctx context.Context, slug string, enabled bool) (*entity.PaymentGateway, error)
}

type gatewayService struct {
	repo repository.GatewayRepository
}

func NewGatewayService(repo repository.GatewayRepository) GatewayService {
	return &gatewayService{repo: repo}
}

func (s *gatewayService) GetEnabledGateways(ctx context.Context) ([]entity.PaymentGateway, error) {
	return s.repo.FindEnabled(ctx)
}

func (s *gatewayService) GetAllGateways(ctx context.Context) ([]entity.PaymentGateway, error) {
	return s.repo.FindAll(ctx)
}

func (s *gatewayService) SetEnabled(ctx context.Context, slug string, enabled bool) (*entity.PaymentGateway, error) {
	gateway, err := s.repo.SetEnabled(ctx, slug, enabled)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return gateway, nil
}
