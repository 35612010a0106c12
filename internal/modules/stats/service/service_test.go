package service

import (
	"context"
	"errors"
	"testing"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/stats/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakePlayerStatsRepo struct {
	findByUserFunc  func(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error)
	findByUserCalls int

	partialUpdateFunc  func(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error)
	partialUpdateCalls int
	lastFields         map[string]any
}

func (f *fakePlayerStatsRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error) {
	f.findByUserCalls++
	if f.findByUserFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.findByUserFunc(ctx, userID)
}

func (f *fakePlayerStatsRepo) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
	f.partialUpdateCalls++
	f.lastFields = fields
	if f.partialUpdateFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.partialUpdateFunc(ctx, userID, fields)
}

func (f *fakePlayerStatsRepo) FindTop(ctx context.Context, orderColumn string, limit int) ([]entity.PlayerStats, error) {
	return nil, nil
}

func int64Ptr(v int64) *int64 { return &v }

func TestGetByUser(t *testing.T) {
	userID := uuid.New()

	t.Run("missing row is not a fault", func(t *testing.T) {
		repo := &fakePlayerStatsRepo{}
		svc := NewStatsService(repo)

		stats, err := svc.GetByUser(context.Background(), userID)
		if err != nil {
			t.Fatalf("GetByUser: %v", err)
		}
		if stats != nil {
			t.Errorf("stats = %v, want nil", stats)
		}
	})

	t.Run("no identity skips the store", func(t *testing.T) {
		repo := &fakePlayerStatsRepo{}
		svc := NewStatsService(repo)

		stats, err := svc.GetByUser(context.Background(), uuid.Nil)
		if err != nil || stats != nil {
			t.Errorf("GetByUser(nil identity) = (%v, %v), want (nil, nil)", stats, err)
		}
		if repo.findByUserCalls != 0 {
			t.Errorf("store queried %d times, want 0", repo.findByUserCalls)
		}
	})

	t.Run("store errors propagate", func(t *testing.T) {
		storeErr := errors.New("store unreachable")
		repo := &fakePlayerStatsRepo{
			findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
				return nil, storeErr
			},
		}
		svc := NewStatsService(repo)

		if _, err := svc.GetByUser(context.Background(), userID); !errors.Is(err, storeErr) {
			t.Errorf("err = %v, want %v", err, storeErr)
		}
	})
}

func TestUpdateTransmitsOnlySuppliedFields(t *testing.T) {
	userID := uuid.New()
	existing := &entity.PlayerStats{UserID: userID, Kills: 3}

	repo := &fakePlayerStatsRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
			return existing, nil
		},
		partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: id, Kills: 5}, nil
		},
	}
	svc := NewStatsService(repo)

	updated, err := svc.Update(context.Background(), userID, dto.StatsPatch{Kills: int64Ptr(5)})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if len(repo.lastFields) != 1 {
		t.Fatalf("transmitted %d fields, want exactly 1: %v", len(repo.lastFields), repo.lastFields)
	}
	if got, ok := repo.lastFields["kills"]; !ok || got != int64(5) {
		t.Errorf("kills field = %v, want 5", got)
	}
	if updated.Kills != 5 {
		t.Errorf("updated.Kills = %d, want the store's echoed value 5", updated.Kills)
	}
}

func TestUpdateNoOpCases(t *testing.T) {
	userID := uuid.New()

	t.Run("no identity", func(t *testing.T) {
		repo := &fakePlayerStatsRepo{}
		svc := NewStatsService(repo)

		updated, err := svc.Update(context.Background(), uuid.Nil, dto.StatsPatch{Kills: int64Ptr(5)})
		if err != nil || updated != nil {
			t.Errorf("Update = (%v, %v), want (nil, nil)", updated, err)
		}
		if repo.partialUpdateCalls != 0 {
			t.Errorf("store written %d times, want 0", repo.partialUpdateCalls)
		}
	})

	t.Run("no statistics row", func(t *testing.T) {
		repo := &fakePlayerStatsRepo{}
		svc := NewStatsService(repo)

		updated, err := svc.Update(context.Background(), userID, dto.StatsPatch{Kills: int64Ptr(5)})
		if err != nil || updated != nil {
			t.Errorf("Update = (%v, %v), want (nil, nil)", updated, err)
		}
		if repo.partialUpdateCalls != 0 {
			t.Errorf("store written %d times, want 0", repo.partialUpdateCalls)
		}
	})

	t.Run("empty patch returns current row", func(t *testing.T) {
		existing := &entity.PlayerStats{UserID: userID, Kills: 3}
		repo := &fakePlayerStatsRepo{
			findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
				return existing, nil
			},
		}
		svc := NewStatsService(repo)

		updated, err := svc.Update(context.Background(), userID, dto.StatsPatch{})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated != existing {
			t.Errorf("empty patch should return the current row untouched")
		}
		if repo.partialUpdateCalls != 0 {
			t.Errorf("store written %d times, want 0", repo.partialUpdateCalls)
		}
	})
}

func TestUpdateFailurePropagates(t *testing.T) {
	userID := uuid.New()
	storeErr := errors.New("store unreachable")

	repo := &fakePlayerStatsRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: id}, nil
		},
		partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
			return nil, storeErr
		},
	}
	svc := NewStatsService(repo)

	if _, err := svc.Update(context.Background(), userID, dto.StatsPatch{Deaths: int64Ptr(1)}); !errors.Is(err, storeErr) {
		t.Errorf("err = %v, want %v", err, storeErr)
	}
}
