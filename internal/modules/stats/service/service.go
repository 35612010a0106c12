package service

import (
	"context"
	"errors"
	"log"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/stats/dto"
	"craftvale.gg/communityapi/internal/modules/stats/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StatsService interface {
	// GetByUser returns the user's statistics row, or (nil, nil) when the
	// user has no statistics yet. Absence is not a fault.
	GetByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error)
	// Update applies a partial update. Without an identity or an existing
	// row it is a silent no-op returning (nil, nil); only the supplied
	// fields are transmitted, and the store's echoed row is returned.
	Update(ctx context.Context, userID uuid.UUID, patch dto.StatsPatch) (*entity.PlayerStats, error)
}

type statsService struct {
	repo repository.PlayerStatsRepository
}

func NewStatsService(repo repository.PlayerStatsRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	stats, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return stats, nil
}

func (s *statsService) Update(ctx context.Context, userID uuid.UUID, patch dto.StatsPatch) (*entity.PlayerStats, error) {
	if userID == uuid.Nil {
		return nil, nil
	}

	current, err := s.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		// No statistics row exists yet; nothing to update.
		return nil, nil
	}

	fields := patch.Fields()
	if len(fields) == 0 {
		return current, nil
	}

	updated, err := s.repo.PartialUpdate(ctx, userID, fields)
	if err != nil {
		log.Printf("Failed to update player stats for user %s: %v", userID, err)
		return nil, err
	}

	return updated, nil
}
