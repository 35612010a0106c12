package handler

import (
	"net/http"

	product "craftvale.gg/communityapi/internal/modules/product/service"
	commonDto "craftvale.gg/communityapi/pkg/dto"
	"craftvale.gg/communityapi/pkg/response"
	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	service product.ProductService
}

func NewProductHandler(service product.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

func (h *ProductHandler) GetStoreCatalog(c *gin.Context) {
	var filter commonDto.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, meta, err := h.service.GetStoreCatalog(c.Request.Context(), c.Query("category"), filter)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products, "meta": meta})
}

func (h *ProductHandler) GetProductBySlug(c *gin.Context) {
	p, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}
