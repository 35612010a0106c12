package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"craftvale.gg/communityapi/internal/entity"
	achievementSvc "craftvale.gg/communityapi/internal/modules/achievement/service"
	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	profileSvc "craftvale.gg/communityapi/internal/modules/profile/service"
	"craftvale.gg/communityapi/internal/modules/progression/dto"
	statsDto "craftvale.gg/communityapi/internal/modules/stats/dto"
	statsRepo "craftvale.gg/communityapi/internal/modules/stats/repository"
	"craftvale.gg/communityapi/pkg/apperror"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tracker keeps one user's progression records (earned achievements, player
// statistics, profile) cached between requests. Each tracker owns its cache;
// nothing is shared across trackers.
//
// Every fetch captures the generation current at issue time and applies its
// result only while that generation is still the latest, so a slow response
// from before an identity change can never overwrite fresher state.
type Tracker struct {
	catalog     *achievementSvc.CatalogCache
	achievement achievementRepository
	stats       statsRepo.PlayerStatsRepository
	profile     profileSvc.ProfileService

	mu           sync.Mutex
	gen          uint64
	userID       uuid.UUID
	authed       bool
	earned       []entity.UserAchievement
	statsRow     *entity.PlayerStats
	statsState   string
	profileRow   *entity.Profile
	profileState string
	loading      bool
}

// achievementRepository is the slice of the achievement repository the
// tracker needs.
type achievementRepository interface {
	FindEarnedByUser(ctx context.Context, userID uuid.UUID) ([]entity.UserAchievement, error)
}

func NewTracker(catalog *achievementSvc.CatalogCache, achievement achievementRepository, stats statsRepo.PlayerStatsRepository, profile profileSvc.ProfileService) *Tracker {
	return &Tracker{
		catalog:      catalog,
		achievement:  achievement,
		stats:        stats,
		profile:      profile,
		statsState:   dto.StateUninitialized,
		profileState: dto.StateUninitialized,
	}
}

// SetUser switches the tracker to a new identity and refetches everything.
func (t *Tracker) SetUser(ctx context.Context, userID uuid.UUID) {
	t.mu.Lock()
	t.gen++
	gen := t.gen
	t.userID = userID
	t.authed = true
	t.loading = true
	t.statsState = dto.StateLoading
	t.profileState = dto.StateLoading
	t.mu.Unlock()

	t.fetch(ctx, gen, userID)
}

// ClearUser drops the identity. Cached records become absent immediately; no
// store call is made.
func (t *Tracker) ClearUser() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	t.userID = uuid.Nil
	t.authed = false
	t.earned = nil
	t.statsRow = nil
	t.statsState = dto.StateAbsent
	t.profileRow = nil
	t.profileState = dto.StateAbsent
	t.loading = false
}

// Refetch re-runs the fetch for the current identity on demand.
func (t *Tracker) Refetch(ctx context.Context) {
	t.mu.Lock()
	if !t.authed {
		t.mu.Unlock()
		return
	}
	t.gen++
	gen := t.gen
	userID := t.userID
	t.loading = true
	t.mu.Unlock()

	t.fetch(ctx, gen, userID)
}

func (t *Tracker) fetch(ctx context.Context, gen uint64, userID uuid.UUID) {
	earned, earnedErr := t.achievement.FindEarnedByUser(ctx, userID)

	statsRow, statsErr := t.stats.FindByUser(ctx, userID)
	statsState := dto.StateLoaded
	if statsErr != nil {
		statsRow = nil
		if errors.Is(statsErr, gorm.ErrRecordNotFound) {
			statsState = dto.StateAbsent
		} else {
			statsState = dto.StateErrored
			log.Printf("Failed to fetch player stats for user %s: %v", userID, statsErr)
		}
	}

	profileRow, profileErr := t.profile.Get(ctx, userID)
	profileState := dto.StateLoaded
	if profileErr != nil {
		profileRow = nil
		profileState = dto.StateErrored
		log.Printf("Failed to fetch profile for user %s: %v", userID, profileErr)
	} else if profileRow == nil {
		profileState = dto.StateAbsent
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// A newer identity change or refetch superseded this fetch; discard.
	if gen != t.gen {
		return
	}

	if earnedErr != nil {
		// Keep the last good earned set (empty on first failure).
		log.Printf("Failed to fetch earned achievements for user %s: %v", userID, earnedErr)
	} else {
		t.earned = earned
	}

	t.statsRow = statsRow
	t.statsState = statsState
	t.profileRow = profileRow
	t.profileState = profileState
	t.loading = false
}

// Snapshot derives the progression view from the cached records. Partitions
// are recomputed on every call.
func (t *Tracker) Snapshot(ctx context.Context) dto.Snapshot {
	catalog := t.catalog.Definitions(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()

	earnedDefs, available := achievementSvc.Partition(catalog, t.earned)

	return dto.Snapshot{
		Loading:      t.loading,
		Earned:       earnedDefs,
		Available:    available,
		TotalPoints:  achievementSvc.TotalPoints(earnedDefs),
		Stats:        t.statsRow,
		StatsState:   t.statsState,
		Profile:      t.profileRow,
		ProfileState: t.profileState,
	}
}

// UpdateStats applies a partial statistics update. Without an identity or a
// loaded statistics row it silently returns without contacting the store.
// The update is not applied optimistically: on failure the cached row stays
// as it was.
func (t *Tracker) UpdateStats(ctx context.Context, patch statsDto.StatsPatch) error {
	t.mu.Lock()
	if !t.authed || t.statsRow == nil {
		t.mu.Unlock()
		return nil
	}
	gen := t.gen
	userID := t.userID
	t.mu.Unlock()

	fields := patch.Fields()
	if len(fields) == 0 {
		return nil
	}

	updated, err := t.stats.PartialUpdate(ctx, userID, fields)
	if err != nil {
		log.Printf("Failed to update player stats for user %s: %v", userID, err)
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return nil
	}
	t.statsRow = updated
	t.statsState = dto.StateLoaded
	return nil
}

// UpdateProfile applies a partial profile update. Without an identity or a
// loaded profile it returns apperror.ErrNoProfile without contacting the
// store. The profile service emits the user-visible notifications.
func (t *Tracker) UpdateProfile(ctx context.Context, input profileDto.UpdateProfileInput, avatar *commonDto.AvatarFile) (*entity.Profile, error) {
	t.mu.Lock()
	if !t.authed || t.profileRow == nil {
		t.mu.Unlock()
		return nil, apperror.ErrNoProfile
	}
	gen := t.gen
	userID := t.userID
	t.mu.Unlock()

	updated, err := t.profile.Update(ctx, userID, input, avatar)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if gen == t.gen {
		t.profileRow = updated
		t.profileState = dto.StateLoaded
	}
	return updated, nil
}
