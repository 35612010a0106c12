package handler

import (
	"net/http"

	gateway "craftvale.gg/communityapi/internal/modules/gateway/service"
	"craftvale.gg/communityapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type GatewayHandler struct {
	service gateway.GatewayService
}

func NewGatewayHandler(service gateway.GatewayService) *GatewayHandler {
	return &GatewayHandler{service: service}
}

func (h *GatewayHandler) GetEnabledGateways(c *gin.Context) {
	gateways, err := h.service.GetEnabledGateways(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gateways})
}

func (h *GatewayHandler) GetAllGateways(c *gin.Context) {
	gateways, err := h.service.GetAllGateways(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gateways})
}

type toggleGatewayRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *GatewayHandler) ToggleGateway(c *gin.Context) {
	var req toggleGatewayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.service.SetEnabled(c.Request.Context(), c.Param("slug"), *req.Enabled)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}
