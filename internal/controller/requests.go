package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/repository/base"
	"github.com/srcmarket/backoffice/internal/service"
)

// ListRequests serves the management list and the tabbed request view.
// An optional ?status= filter narrows the list to one status; without it
// pending requests sort first.
func (h *Handlers) ListRequests(c *gin.Context) {
	sellerID := actingSellerID(c)
	statusFilter := c.Query("status")

	views, err := h.access.ListForSeller(c.Request.Context(), sellerID, statusFilter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": views})
}

// TransitionRequest returns the handler applying the given action label
// to the request in the path
func (h *Handlers) TransitionRequest(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
			return
		}

		sellerID := actingSellerID(c)

		updated, err := h.access.Transition(c.Request.Context(), requestID, sellerID, action)
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"request": updated})
	}
}

// respondError maps service errors to generic client responses. Messages
// stay generic so a reply never reveals whether a request id exists under
// another seller.
func (h *Handlers) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	case errors.Is(err, service.ErrInvalidAction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case base.IsUnavailable(err):
		h.logger.Error("Store unavailable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	default:
		h.logger.Error("Request handling failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
