package handler

import (
	"net/http"

	"craftvale.gg/communityapi/internal/entity"
	"craftvale.gg/communityapi/internal/modules/achievement/dto"
	achievement "craftvale.gg/communityapi/internal/modules/achievement/service"
	"craftvale.gg/communityapi/pkg/response"
	"craftvale.gg/communityapi/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AchievementHandler struct {
	service achievement.AchievementService
}

func NewAchievementHandler(service achievement.AchievementService) *AchievementHandler {
	return &AchievementHandler{service: service}
}

// GetCatalog works with or without identity: unauthenticated callers get the
// full catalog as available.
func (h *AchievementHandler) GetCatalog(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		userID = uuid.Nil
	}

	res, err := h.service.UserAchievements(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AchievementHandler) GetMyAchievements(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	res, err := h.service.UserAchievements(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *AchievementHandler) RefreshCatalog(c *gin.Context) {
	if err := h.service.RefreshCatalog(c.Request.Context()); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.service.Catalog(c.Request.Context()))
}

func (h *AchievementHandler) UpdateProgress(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	achievementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return
	}

	var req dto.UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	row, err := h.service.UpdateProgress(c.Request.Context(), userID, achievementID, entity.JSONDoc(req.Progress))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, row)
}
