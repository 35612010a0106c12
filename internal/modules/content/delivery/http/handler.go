package handler

import (
	"net/http"

	content "craftvale.gg/communityapi/internal/modules/content/service"
	"craftvale.gg/communityapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	service content.ContentService
}

func NewContentHandler(service content.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func (h *ContentHandler) GetSections(c *gin.Context) {
	sections, err := h.service.GetActiveSections(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": sections})
}

func (h *ContentHandler) GetSectionBySlug(c *gin.Context) {
	section, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}
