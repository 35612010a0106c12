package service

import (
	"context"
	"errors"
	"strconv"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/settings/repository"
	"gorm.io/gorm"
)

type SettingService interface {
	GetAll(ctx context.Context) ([]entity.SiteSetting, error)
	// Get returns nil when the key has never been set.
	Get(ctx context.Context, key string) (*entity.SiteSetting, error)
	GetString(ctx context.Context, key, fallback string) string
	GetBool(ctx context.Context, key string, fallback bool) bool
	Set(ctx context.Context, key, value string) (*entity.SiteSetting, error)
}

type settingService struct {
	repo repository.SettingRepository
}

func NewSettingService(repo repository.SettingRepository) SettingService {
	return &settingService{repo: repo}
}

func (s *settingService) GetAll(ctx context.Context) ([]entity.SiteSetting, error) {
	return s.repo.FindAll(ctx)
}

func (s *settingService) Get(ctx context.Context, key string) (*entity.SiteSetting, error) {
	setting, err := s.repo.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return setting, nil
}

func (s *settingService) GetString(ctx context.Context, key, fallback string) string {
	setting, err := s.Get(ctx, key)
	if err != nil || setting == nil {
		return fallback
	}
	return setting.Value
}

func (s *settingService) GetBool(ctx context.Context, key string, fallback bool) bool {
	setting, err := s.Get(ctx, key)
	if err != nil || setting == nil {
		return fallback
	}
	parsed, err := strconv.ParseBool(setting.Value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (s *settingService) Set(ctx context.Context, key, value string) (*entity.SiteSetting, error) {
	return s.repo.Upsert(ctx, key, value)
}
