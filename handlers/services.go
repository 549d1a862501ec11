package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookflow/clients"
)

// CatalogHandler serves the upstream service catalogue to wizard clients.
type CatalogHandler struct {
	API    clients.BookingAPI
	Logger *zap.Logger
}

// GetCategories handles GET /api/services/categories.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.API.GetCategories(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetCategories: failed to fetch categories", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch categories", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetCategoryServices handles GET /api/services/category?category={id}.
func (h *CatalogHandler) GetCategoryServices(c *gin.Context) {
	categoryID := c.Query("category")
	if categoryID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter: category"})
		return
	}

	category, err := h.API.GetCategoryServices(c.Request.Context(), categoryID)
	if err != nil {
		h.Logger.Error("GetCategoryServices: failed to fetch category",
			zap.String("categoryID", categoryID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch category", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}
