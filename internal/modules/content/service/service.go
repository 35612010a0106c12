package service

import (
	"context"
	"errors"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/content/repository"
	"craftvale.gg/communityapi/pkg/apperror"
	"gorm.io/gorm"
)

type ContentService interface {
	GetActiveSections(ctx context.Context) ([]entity.ContentSection, error)
	GetBySlug(ctx context.Context, slug string) (*entity.ContentSection, error)
}

type contentService struct {
	repo repository.ContentRepository
}

func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentService{repo: repo}
}

func (s *contentService) GetActiveSections(ctx context.Context) ([]entity.ContentSection, error) {
	return s.repo.FindActive(ctx)
}

func (s *contentService) GetBySlug(ctx context.Context, slug string) (*entity.ContentSection, error) {
	section, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return section, nil
}
