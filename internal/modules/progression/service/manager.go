package service

import (
	"context"
	"sync"

	achievementSvc "craftvale.gg/communityapi/internal/modules/achievement/service"
	profileSvc "craftvale.gg/communityapi/internal/modules/profile/service"
	statsRepo "craftvale.gg/communityapi/internal/modules/stats/repository"
	"github.com/google/uuid"
)

// Manager hands out one tracker per authenticated user and drops it on
// logout.
type Manager struct {
	catalog     *achievementSvc.CatalogCache
	achievement achievementRepository
	stats       statsRepo.PlayerStatsRepository
	profile     profileSvc.ProfileService

	mu       sync.Mutex
	trackers map[uuid.UUID]*Tracker
}

func NewManager(catalog *achievementSvc.CatalogCache, achievement achievementRepository, stats statsRepo.PlayerStatsRepository, profile profileSvc.ProfileService) *Manager {
	return &Manager{
		catalog:     catalog,
		achievement: achievement,
		stats:       stats,
		profile:     profile,
		trackers:    make(map[uuid.UUID]*Tracker),
	}
}

// ForUser returns the user's tracker, creating and loading it on first use.
func (m *Manager) ForUser(ctx context.Context, userID uuid.UUID) *Tracker {
	m.mu.Lock()
	tracker, ok := m.trackers[userID]
	if !ok {
		tracker = NewTracker(m.catalog, m.achievement, m.stats, m.profile)
		m.trackers[userID] = tracker
	}
	m.mu.Unlock()

	if !ok {
		tracker.SetUser(ctx, userID)
	}

	return tracker
}

// Drop clears and removes the user's tracker (logout).
func (m *Manager) Drop(userID uuid.UUID) {
	m.mu.Lock()
	tracker, ok := m.trackers[userID]
	delete(m.trackers, userID)
	m.mu.Unlock()

	if ok {
		tracker.ClearUser()
	}
}
