package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"craftvale.gg/communityapi/internal/entity"
	achievementSvc "craftvale.gg/communityapi/internal/modules/achievement/service"
	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	profileSvc "craftvale.gg/communityapi/internal/modules/profile/service"
	"craftvale.gg/communityapi/internal/modules/progression/dto"
	statsDto "craftvale.gg/communityapi/internal/modules/stats/dto"
	"craftvale.gg/communityapi/pkg/apperror"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeCatalogRepo struct {
	defs []entity.AchievementDefinition
}

func (f *fakeCatalogRepo) FindActiveDefinitions(ctx context.Context) ([]entity.AchievementDefinition, error) {
	return f.defs, nil
}

func (f *fakeCatalogRepo) FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error) {
	return nil, nil
}

func (f *fakeCatalogRepo) UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error) {
	return nil, errors.New("not implemented")
}

type fakeEarnedRepo struct {
	earnedFunc func(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error)
	calls      int
}

func (f *fakeEarnedRepo) FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error) {
	f.calls++
	if f.earnedFunc == nil {
		return nil, nil
	}
	return f.earnedFunc(ctx, userID)
}

type fakeStatsRepo struct {
	findByUserFunc     func(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error)
	partialUpdateFunc  func(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error)
	partialUpdateCalls int
	lastFields         map[string]any
}

func (f *fakeStatsRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.PlayerStats, error) {
	if f.findByUserFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.findByUserFunc(ctx, userID)
}

func (f *fakeStatsRepo) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
	f.partialUpdateCalls++
	f.lastFields = fields
	if f.partialUpdateFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.partialUpdateFunc(ctx, userID, fields)
}

func (f *fakeStatsRepo) FindTop(ctx context.Context, orderColumn string, limit int) ([]entity.PlayerStats, error) {
	return nil, nil
}

type fakeTrackerProfileRepo struct {
	findByUserFunc    func(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)
	partialUpdateFunc func(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error)
}

func (f *fakeTrackerProfileRepo) FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	if f.findByUserFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.findByUserFunc(ctx, userID)
}

func (f *fakeTrackerProfileRepo) FindByMinecraftUsername(ctx context.Context, username string) (*entity.Profile, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTrackerProfileRepo) PartialUpdate(ctx context.Context, userID uuid.UUID, fields map[string]any) (*entity.Profile, error) {
	if f.partialUpdateFunc == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return f.partialUpdateFunc(ctx, userID, fields)
}

func int64Ptr(v int64) *int64 { return &v }

func newTestCatalog(defs []entity.AchievementDefinition) *achievementSvc.CatalogCache {
	return achievementSvc.NewCatalogCache(&fakeCatalogRepo{defs: defs}, nil, nil, time.Hour)
}

func TestTrackerSetUserLoadsEverything(t *testing.T) {
	userID := uuid.New()
	defA := entity.AchievementDefinition{ID: uuid.New(), Name: "First Steps", Points: 10}
	defB := entity.AchievementDefinition{ID: uuid.New(), Name: "Lumberjack", Points: 25}

	earnedRepo := &fakeEarnedRepo{
		earnedFunc: func(ctx context.Context, id uuid.UUID) ([]entity.UserAchievement, error) {
			return []entity.UserAchievement{{AchievementID: defA.ID, UserID: id}}, nil
		},
	}
	statsRepo := &fakeStatsRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: id, Kills: 3}, nil
		},
	}
	profRepo := &fakeTrackerProfileRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: id, DisplayName: "Steve"}, nil
		},
	}

	tracker := NewTracker(newTestCatalog([]entity.AchievementDefinition{defA, defB}), earnedRepo, statsRepo, profileSvc.NewProfileService(profRepo, nil, nil))
	tracker.SetUser(context.Background(), userID)

	snap := tracker.Snapshot(context.Background())
	if snap.Loading {
		t.Error("loading should be false after fetch completes")
	}
	if len(snap.Earned) != 1 || snap.Earned[0].ID != defA.ID {
		t.Errorf("earned = %v, want [%s]", snap.Earned, defA.ID)
	}
	if len(snap.Available) != 1 || snap.Available[0].ID != defB.ID {
		t.Errorf("available = %v, want [%s]", snap.Available, defB.ID)
	}
	if snap.TotalPoints != 10 {
		t.Errorf("TotalPoints = %d, want 10", snap.TotalPoints)
	}
	if snap.StatsState != dto.StateLoaded || snap.Stats == nil || snap.Stats.Kills != 3 {
		t.Errorf("stats = (%v, %s), want loaded row", snap.Stats, snap.StatsState)
	}
	if snap.ProfileState != dto.StateLoaded || snap.Profile == nil {
		t.Errorf("profile = (%v, %s), want loaded row", snap.Profile, snap.ProfileState)
	}
}

func TestTrackerClearUser(t *testing.T) {
	userID := uuid.New()
	earnedRepo := &fakeEarnedRepo{
		earnedFunc: func(ctx context.Context, id uuid.UUID) ([]entity.UserAchievement, error) {
			return []entity.UserAchievement{{AchievementID: uuid.New(), UserID: id}}, nil
		},
	}
	statsRepo := &fakeStatsRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: id}, nil
		},
	}
	profRepo := &fakeTrackerProfileRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
			return &entity.Profile{UserID: id}, nil
		},
	}

	tracker := NewTracker(newTestCatalog(nil), earnedRepo, statsRepo, profileSvc.NewProfileService(profRepo, nil, nil))
	tracker.SetUser(context.Background(), userID)

	callsBefore := earnedRepo.calls
	tracker.ClearUser()

	snap := tracker.Snapshot(context.Background())
	if snap.Loading {
		t.Error("loading should be false after clearing")
	}
	if len(snap.Earned) != 0 {
		t.Errorf("earned should be empty after clearing, got %d", len(snap.Earned))
	}
	if snap.Stats != nil || snap.StatsState != dto.StateAbsent {
		t.Errorf("stats = (%v, %s), want absent", snap.Stats, snap.StatsState)
	}
	if snap.Profile != nil || snap.ProfileState != dto.StateAbsent {
		t.Errorf("profile = (%v, %s), want absent", snap.Profile, snap.ProfileState)
	}
	if earnedRepo.calls != callsBefore {
		t.Errorf("clearing must not contact the store, calls went %d -> %d", callsBefore, earnedRepo.calls)
	}
}

func TestTrackerDiscardsSupersededFetch(t *testing.T) {
	userID := uuid.New()

	earnedRepo := &fakeEarnedRepo{
		earnedFunc: func(ctx context.Context, id uuid.UUID) ([]entity.UserAchievement, error) {
			return []entity.UserAchievement{{AchievementID: uuid.New(), UserID: id}}, nil
		},
	}
	statsRepo := &fakeStatsRepo{}
	profRepo := &fakeTrackerProfileRepo{}

	tracker := NewTracker(newTestCatalog(nil), earnedRepo, statsRepo, profileSvc.NewProfileService(profRepo, nil, nil))

	// The identity changes while the fetch is still in flight; its results
	// must be thrown away.
	statsRepo.findByUserFunc = func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
		tracker.ClearUser()
		return &entity.PlayerStats{UserID: id, Kills: 99}, nil
	}

	tracker.SetUser(context.Background(), userID)

	snap := tracker.Snapshot(context.Background())
	if snap.Stats != nil {
		t.Errorf("stale fetch result applied: stats = %v", snap.Stats)
	}
	if snap.StatsState != dto.StateAbsent {
		t.Errorf("StatsState = %s, want absent", snap.StatsState)
	}
	if len(snap.Earned) != 0 {
		t.Errorf("stale earned set applied, got %d rows", len(snap.Earned))
	}
}

func TestTrackerUpdateStats(t *testing.T) {
	t.Run("silent no-op without identity", func(t *testing.T) {
		statsRepo := &fakeStatsRepo{}
		tracker := NewTracker(newTestCatalog(nil), &fakeEarnedRepo{}, statsRepo, profileSvc.NewProfileService(&fakeTrackerProfileRepo{}, nil, nil))

		if err := tracker.UpdateStats(context.Background(), statsDto.StatsPatch{Kills: int64Ptr(5)}); err != nil {
			t.Fatalf("UpdateStats: %v", err)
		}
		if statsRepo.partialUpdateCalls != 0 {
			t.Errorf("store written %d times, want 0", statsRepo.partialUpdateCalls)
		}
	})

	t.Run("applies the echoed row on success", func(t *testing.T) {
		userID := uuid.New()
		statsRepo := &fakeStatsRepo{
			findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
				return &entity.PlayerStats{UserID: id, Kills: 3}, nil
			},
			partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
				return &entity.PlayerStats{UserID: id, Kills: 5}, nil
			},
		}
		tracker := NewTracker(newTestCatalog(nil), &fakeEarnedRepo{}, statsRepo, profileSvc.NewProfileService(&fakeTrackerProfileRepo{}, nil, nil))
		tracker.SetUser(context.Background(), userID)

		if err := tracker.UpdateStats(context.Background(), statsDto.StatsPatch{Kills: int64Ptr(5)}); err != nil {
			t.Fatalf("UpdateStats: %v", err)
		}
		if len(statsRepo.lastFields) != 1 || statsRepo.lastFields["kills"] != int64(5) {
			t.Errorf("transmitted fields = %v, want only kills=5", statsRepo.lastFields)
		}

		snap := tracker.Snapshot(context.Background())
		if snap.Stats == nil || snap.Stats.Kills != 5 {
			t.Errorf("cached stats = %v, want the echoed row", snap.Stats)
		}
	})

	t.Run("keeps the cached row on failure", func(t *testing.T) {
		userID := uuid.New()
		storeErr := errors.New("store unreachable")
		statsRepo := &fakeStatsRepo{
			findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
				return &entity.PlayerStats{UserID: id, Kills: 3}, nil
			},
			partialUpdateFunc: func(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.PlayerStats, error) {
				return nil, storeErr
			},
		}
		tracker := NewTracker(newTestCatalog(nil), &fakeEarnedRepo{}, statsRepo, profileSvc.NewProfileService(&fakeTrackerProfileRepo{}, nil, nil))
		tracker.SetUser(context.Background(), userID)

		if err := tracker.UpdateStats(context.Background(), statsDto.StatsPatch{Kills: int64Ptr(5)}); !errors.Is(err, storeErr) {
			t.Fatalf("err = %v, want %v", err, storeErr)
		}

		snap := tracker.Snapshot(context.Background())
		if snap.Stats == nil || snap.Stats.Kills != 3 {
			t.Errorf("cached stats = %v, want the pre-update row", snap.Stats)
		}
	})
}

func TestTrackerUpdateProfileWithoutProfile(t *testing.T) {
	tracker := NewTracker(newTestCatalog(nil), &fakeEarnedRepo{}, &fakeStatsRepo{}, profileSvc.NewProfileService(&fakeTrackerProfileRepo{}, nil, nil))

	name := "Steve"
	_, err := tracker.UpdateProfile(context.Background(), profileDto.UpdateProfileInput{DisplayName: &name}, nil)
	if !errors.Is(err, apperror.ErrNoProfile) {
		t.Errorf("err = %v, want ErrNoProfile", err)
	}
}

func TestManagerLifecycle(t *testing.T) {
	userID := uuid.New()
	statsRepo := &fakeStatsRepo{
		findByUserFunc: func(ctx context.Context, id uuid.UUID) (*entity.PlayerStats, error) {
			return &entity.PlayerStats{UserID: id}, nil
		},
	}
	manager := NewManager(newTestCatalog(nil), &fakeEarnedRepo{}, statsRepo, profileSvc.NewProfileService(&fakeTrackerProfileRepo{}, nil, nil))

	first := manager.ForUser(context.Background(), userID)
	second := manager.ForUser(context.Background(), userID)
	if first != second {
		t.Error("ForUser should reuse the tracker for the same identity")
	}

	snap := first.Snapshot(context.Background())
	if snap.StatsState != dto.StateLoaded {
		t.Errorf("StatsState = %s, want loaded after first use", snap.StatsState)
	}

	manager.Drop(userID)
	snap = first.Snapshot(context.Background())
	if snap.StatsState != dto.StateAbsent {
		t.Errorf("StatsState = %s, want absent after drop", snap.StatsState)
	}

	third := manager.ForUser(context.Background(), userID)
	if third == first {
		t.Error("ForUser after Drop should create a fresh tracker")
	}
}
