package handler

import (
	"net/http"

	settings "craftvale.gg/communityapi/internal/modules/settings/service"
	"craftvale.gg/communityapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type SettingHandler struct {
	service settings.SettingService
}

func NewSettingHandler(service settings.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

func (h *SettingHandler) GetSettings(c *gin.Context) {
	all, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": all})
}

type setSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *SettingHandler) SetSetting(c *gin.Context) {
	var req setSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := h.service.Set(c.Request.Context(), c.Param("key"), req.Value)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}
