package handler

import (
	"net/http"

	profileDto "craftvale.gg/communityapi/internal/modules/profile/dto"
	progression "craftvale.gg/communityapi/internal/modules/progression/service"
	statsDto "craftvale.gg/communityapi/internal/modules/stats/dto"
	"craftvale.gg/communityapi/pkg/response"
	"craftvale.gg/communityapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ProgressionHandler struct {
	manager *progression.Manager
}

func NewProgressionHandler(manager *progression.Manager) *ProgressionHandler {
	return &ProgressionHandler{manager: manager}
}

func (h *ProgressionHandler) GetProgression(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	tracker := h.manager.ForUser(c.Request.Context(), userID)
	c.JSON(http.StatusOK, tracker.Snapshot(c.Request.Context()))
}

func (h *ProgressionHandler) RefreshProgression(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	tracker := h.manager.ForUser(c.Request.Context(), userID)
	tracker.Refetch(c.Request.Context())
	c.JSON(http.StatusOK, tracker.Snapshot(c.Request.Context()))
}

func (h *ProgressionHandler) UpdateStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var patch statsDto.StatsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	tracker := h.manager.ForUser(c.Request.Context(), userID)
	if err := tracker.UpdateStats(c.Request.Context(), patch); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, tracker.Snapshot(c.Request.Context()))
}

func (h *ProgressionHandler) UpdateProfile(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var input profileDto.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	tracker := h.manager.ForUser(c.Request.Context(), userID)
	updated, err := tracker.UpdateProfile(c.Request.Context(), input, nil)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, profileDto.ProfileResponse{Profile: updated})
}

// Logout drops the server-side tracker; token invalidation itself is the
// auth service's job.
func (h *ProgressionHandler) Logout(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	h.manager.Drop(userID)
	c.JSON(http.StatusOK, gin.H{"message": "session cleared"})
}
