package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestCounts serves the dashboard badge: per-status counts plus the
// exact total, recomputed on every call
func (h *Handlers) RequestCounts(c *gin.Context) {
	sellerID := actingSellerID(c)

	counts, err := h.access.CountsForSeller(c.Request.Context(), sellerID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
