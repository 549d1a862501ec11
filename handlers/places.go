package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bookflow/models"
)

// Suggest handles GET /api/wizard/sessions/:sessionID/suggestions. Rapid
// repeats for the same field collapse to one provider call; a superseded
// request answers with an empty list flagged as stale so the client drops
// it.
func (h *WizardHandler) Suggest(c *gin.Context) {
	field := models.AddressField(c.Query("field"))
	if !field.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be 'from' or 'to'"})
		return
	}
	input := c.Query("input")

	result, err := h.Svc.Suggest(c.Request.Context(), c.Param("sessionID"), field, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"suggestions": result.Suggestions,
		"superseded":  result.Superseded,
	})
}

// ResolveAddress handles POST /api/wizard/sessions/:sessionID/resolve.
func (h *WizardHandler) ResolveAddress(c *gin.Context) {
	var input struct {
		Field   string `json:"field" binding:"required"`
		PlaceID string `json:"placeId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	field := models.AddressField(input.Field)
	if !field.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "field must be 'from' or 'to'"})
		return
	}

	resolved, err := h.Svc.ResolveAddress(c.Request.Context(), c.Param("sessionID"), field, input.PlaceID)
	if err != nil {
		h.Logger.Warn("address resolution failed",
			zap.String("sessionID", c.Param("sessionID")), zap.Error(err))
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resolved)
}
