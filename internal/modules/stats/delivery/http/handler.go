package handler

import (
	"net/http"

	"craftvale.gg/communityapi/internal/modules/stats/dto"
	stats "craftvale.gg/communityapi/internal/modules/stats/service"
	"craftvale.gg/communityapi/pkg/response"
	"craftvale.gg/communityapi/pkg/validator"
	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	service stats.StatsService
}

func NewStatsHandler(service stats.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetMyStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	statsRow, err := h.service.GetByUser(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	// statsRow may be nil: no statistics yet is a valid state.
	c.JSON(http.StatusOK, dto.StatsResponse{Stats: statsRow})
}

func (h *StatsHandler) UpdateMyStats(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var patch dto.StatsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), userID, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatsResponse{Stats: updated})
}
