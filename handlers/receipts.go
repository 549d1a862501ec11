package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	receiptRepo "bookflow/database/repository/receipt"
)

// ReceiptHandler serves stored booking receipts to the confirmation page.
type ReceiptHandler struct {
	Repo   receiptRepo.BookingReceiptRepository
	Logger *zap.Logger
}

// GetReceipt handles GET /api/bookings/receipts/:receiptID.
func (h *ReceiptHandler) GetReceipt(c *gin.Context) {
	id := c.Param("receiptID")
	receipt, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.Logger.Warn("GetReceipt: receipt lookup failed", zap.String("receiptID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "receipt not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}
