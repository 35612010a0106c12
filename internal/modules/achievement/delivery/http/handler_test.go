package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/achievement/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeAchievementService struct {
	updateCalls       int
	lastUserID        uuid.UUID
	lastAchievementID uuid.UUID
	lastProgress      entity.JSONDoc
}

func (f *fakeAchievementService) Catalog(ctx context.Context) dto.CatalogResponse {
	return dto.CatalogResponse{}
}

func (f *fakeAchievementService) RefreshCatalog(ctx context.Context) error {
	return nil
}

func (f *fakeAchievementService) UserAchievements(ctx context.Context, userID uuid.UUID) (*dto.UserAchievementsResponse, error) {
	return &dto.UserAchievementsResponse{}, nil
}

func (f *fakeAchievementService) UpdateProgress(ctx context.Context, userID, achievementID uuid.UUID, progress entity.JSONDoc) (*entity.UserAchievement, error) {
	f.updateCalls++
	f.lastUserID = userID
	f.lastAchievementID = achievementID
	f.lastProgress = progress
	return &entity.UserAchievement{UserID: userID, AchievementID: achievementID, Progress: progress}, nil
}

func newProgressRouter(svc *fakeAchievementService, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewAchievementHandler(svc)
	router.PATCH("/achievements/:id/progress", func(c *gin.Context) {
		c.Set("user_id", userID.String())
		h.UpdateProgress(c)
	})
	return router
}

func TestUpdateProgressUsesRouteParam(t *testing.T) {
	userID := uuid.New()
	achievementID := uuid.New()
	svc := &fakeAchievementService{}
	router := newProgressRouter(svc, userID)

	body := strings.NewReader(`{"progress":{"blocks_mined":100}}`)
	req := httptest.NewRequest(http.MethodPatch, "/achievements/"+achievementID.String()+"/progress", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if svc.updateCalls != 1 {
		t.Fatalf("service called %d times, want 1", svc.updateCalls)
	}
	if svc.lastAchievementID != achievementID {
		t.Errorf("achievement id = %v, want the route param %v", svc.lastAchievementID, achievementID)
	}
	if svc.lastUserID != userID {
		t.Errorf("user id = %v, want %v", svc.lastUserID, userID)
	}
	if got := svc.lastProgress["blocks_mined"]; got != float64(100) {
		t.Errorf("progress blocks_mined = %v, want 100", got)
	}
}

func TestUpdateProgressRejectsBadID(t *testing.T) {
	svc := &fakeAchievementService{}
	router := newProgressRouter(svc, uuid.New())

	body := strings.NewReader(`{"progress":{"blocks_mined":100}}`)
	req := httptest.NewRequest(http.MethodPatch, "/achievements/not-a-uuid/progress", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.updateCalls != 0 {
		t.Errorf("service called %d times, want 0", svc.updateCalls)
	}
}

func TestUpdateProgressRequiresProgressBody(t *testing.T) {
	svc := &fakeAchievementService{}
	router := newProgressRouter(svc, uuid.New())

	req := httptest.NewRequest(http.MethodPatch, "/achievements/"+uuid.NewString()+"/progress", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if svc.updateCalls != 0 {
		t.Errorf("service called %d times, want 0", svc.updateCalls)
	}
}
