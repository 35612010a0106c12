package handler

import (
	"net/http"
	"strconv"

	leaderboard "craftvale.gg/communityapi/internal/modules/leaderboard/service"
	"craftvale.gg/communityapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	service leaderboard.LeaderboardService
}

func NewLeaderboardHandler(service leaderboard.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	sortBy := c.DefaultQuery("sort_by", leaderboard.SortByPoints)

	entries, err := h.service.GetLeaderboard(c.Request.Context(), limit, sortBy)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": entries})
}
