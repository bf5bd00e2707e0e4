package controller

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/service"
)

// AccessLifecycle is the slice of the access service the HTTP surface uses
type AccessLifecycle interface {
	Transition(ctx context.Context, requestID, actingSellerID int64, action string) (*model.AccessRequest, error)
	ListForSeller(ctx context.Context, actingSellerID int64, statusFilter string) ([]model.AccessRequestView, error)
	CountsForSeller(ctx context.Context, actingSellerID int64) (model.StatusCounts, error)
}

// SellerAuthenticator resolves bearer tokens to acting seller ids
type SellerAuthenticator interface {
	ResolveSeller(ctx context.Context, rawToken string) (int64, error)
}

// Handlers holds the HTTP handlers for the seller back office
type Handlers struct {
	access AccessLifecycle
	logger *zap.Logger
}

func NewHandlers(access AccessLifecycle, logger *zap.Logger) *Handlers {
	return &Handlers{
		access: access,
		logger: logger,
	}
}

// NewRouter assembles the gin engine with middleware and all routes
func NewRouter(auth SellerAuthenticator, access AccessLifecycle, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})

	h := NewHandlers(access, logger)

	api := router.Group("/api/v1")
	api.Use(SellerAuth(auth, logger))

	api.GET("/requests", h.ListRequests)
	api.GET("/dashboard/requests", h.RequestCounts)

	// Revoke and reinstate are presentation labels for the same
	// underlying transitions as reject and approve
	api.POST("/requests/:id/approve", h.TransitionRequest(service.ActionApprove))
	api.POST("/requests/:id/reject", h.TransitionRequest(service.ActionReject))
	api.POST("/requests/:id/revoke", h.TransitionRequest(service.ActionRevoke))
	api.POST("/requests/:id/reinstate", h.TransitionRequest(service.ActionReinstate))

	return router
}
