package service

import (
	"context"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/achievement/dto"
	"craftvale.gg/communityapi/internal/modules/achievement/repository"
	"github.com/google/uuid"
)

type AchievementService interface {
	Catalog(ctx context.Context) dto.CatalogResponse
	RefreshCatalog(ctx context.Context) error
	// UserAchievements joins the catalog against the user's earned rows.
	// uuid.Nil means unauthenticated: the earned set is empty and the store
	// is not queried.
	UserAchievements(ctx context.Context, userID uuid.UUID) (*dto.UserAchievementsResponse, error)
	UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error)
}

type achievementService struct {
	repo    repository.AchievementRepository
	catalog *CatalogCache
}

func NewAchievementService(repo repository.AchievementRepository, catalog *CatalogCache) AchievementService {
	return &achievementService{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *achievementService) Catalog(ctx context.Context) dto.CatalogResponse {
	return dto.CatalogResponse{
		Definitions: s.catalog.Definitions(ctx),
		Loading:     s.catalog.Loading(),
	}
}

func (s *achievementService) RefreshCatalog(ctx context.Context) error {
	return s.catalog.Refresh(ctx)
}

func (s *achievementService) UserAchievements(ctx context.Context, userID uuid.UUID) (*dto.UserAchievementsResponse, error) {
	catalog := s.catalog.Definitions(ctx)

	var records []entity.UserAchievement
	if userID != uuid.Nil {
		var err error
		records, err = s.repo.FindEarnedByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	earned, available := Partition(catalog, records)

	return &dto.UserAchievementsResponse{
		Earned:      earned,
		Available:   available,
		TotalPoints: TotalPoints(earned),
		Records:     records,
	}, nil
}

func (s *achievementService) UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error) {
	return s.repo.UpdateProgress(ctx, userID, achievementID, progress)
}
