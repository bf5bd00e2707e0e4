package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/model"
)

// Service-level error taxonomy. NotAuthorized deliberately covers both
// "no such request" and "belongs to another seller" so a response never
// reveals whether an id exists under someone else.
var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrInvalidAction = errors.New("invalid action")
	ErrPersistence   = errors.New("persistence failure")
)

// Action labels accepted by Transition. Revoke and reinstate are UI
// labels for the same underlying transitions as reject and approve.
const (
	ActionApprove   = "approve"
	ActionReject    = "reject"
	ActionRevoke    = "revoke"
	ActionReinstate = "reinstate"
)

// RequestStore is the persistence contract for access requests
type RequestStore interface {
	GetByID(ctx context.Context, id int64) (*model.AccessRequest, error)
	ListBySeller(ctx context.Context, sellerID int64, status string) ([]*model.AccessRequest, error)
	CountBySeller(ctx context.Context, sellerID int64) (map[string]int, error)
	SetStatus(ctx context.Context, id int64, status string) (*model.AccessRequest, error)
}

// ProductDirectory resolves product display data for the request lists
type ProductDirectory interface {
	DisplayInfoByIDs(ctx context.Context, ids []int64) (map[int64]model.ProductDisplayInfo, error)
}

// UserDirectory resolves buyer display data for the request lists
type UserDirectory interface {
	DisplayInfoByIDs(ctx context.Context, ids []int64) (map[int64]model.UserDisplayInfo, error)
}

// AccessService owns the request lifecycle: every status transition goes
// through here, and every transition re-checks seller ownership against
// the stored row
type AccessService struct {
	requestStore RequestStore
	products     ProductDirectory
	users        UserDirectory
	logger       *zap.Logger
}

func NewAccessService(
	requestStore RequestStore,
	products ProductDirectory,
	users UserDirectory,
	logger *zap.Logger,
) *AccessService {
	return &AccessService{
		requestStore: requestStore,
		products:     products,
		users:        users,
		logger:       logger,
	}
}

// Transition applies the named action to a request on behalf of the
// acting seller. Transitions are idempotent: re-approving an approved
// request succeeds with no change beyond the updated_at refresh.
func (s *AccessService) Transition(ctx context.Context, requestID, actingSellerID int64, action string) (*model.AccessRequest, error) {
	var status string
	switch action {
	case ActionApprove, ActionReinstate:
		status = model.RequestStatusApproved
	case ActionReject, ActionRevoke:
		status = model.RequestStatusRejected
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	request, err := s.requestStore.GetByID(ctx, requestID)
	if err != nil {
		s.logger.Error("Failed to load access request",
			zap.Int64("request_id", requestID),
			zap.Error(err),
		)
		return nil, errors.Join(ErrPersistence, err)
	}

	// Ownership check against the stored row, never against anything
	// the client supplied
	if request == nil || request.SellerID != actingSellerID {
		return nil, ErrNotAuthorized
	}

	updated, err := s.requestStore.SetStatus(ctx, requestID, status)
	if err != nil {
		s.logger.Error("Failed to update request status",
			zap.Int64("request_id", requestID),
			zap.String("status", status),
			zap.Error(err),
		)
		return nil, errors.Join(ErrPersistence, err)
	}

	// Requests are never deleted, so a vanished row is treated the same
	// as one we were not allowed to see
	if updated == nil {
		return nil, ErrNotAuthorized
	}

	s.logger.Info("Access request transitioned",
		zap.Int64("request_id", updated.ID),
		zap.Int64("seller_id", actingSellerID),
		zap.Int64("buyer_id", updated.BuyerID),
		zap.String("action", action),
		zap.String("status", updated.Status),
	)

	return updated, nil
}

// Approve sets the request to approved for the acting seller
func (s *AccessService) Approve(ctx context.Context, requestID, actingSellerID int64) (*model.AccessRequest, error) {
	return s.Transition(ctx, requestID, actingSellerID, ActionApprove)
}

// Reject sets the request to rejected for the acting seller
func (s *AccessService) Reject(ctx context.Context, requestID, actingSellerID int64) (*model.AccessRequest, error) {
	return s.Transition(ctx, requestID, actingSellerID, ActionReject)
}

// ListForSeller returns the seller's requests joined with product and
// buyer display data. statusFilter is one of the three statuses or empty
// for all; with a filter the list is recency-ordered, without one pending
// requests sort first. A request whose product or buyer record is missing
// is omitted rather than returned with empty fields.
func (s *AccessService) ListForSeller(ctx context.Context, actingSellerID int64, statusFilter string) ([]model.AccessRequestView, error) {
	if statusFilter != "" && !model.ValidStatus(statusFilter) {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidAction, statusFilter)
	}

	requests, err := s.requestStore.ListBySeller(ctx, actingSellerID, statusFilter)
	if err != nil {
		s.logger.Error("Failed to list access requests",
			zap.Int64("seller_id", actingSellerID),
			zap.Error(err),
		)
		return nil, errors.Join(ErrPersistence, err)
	}

	productIDs := make([]int64, 0, len(requests))
	buyerIDs := make([]int64, 0, len(requests))
	for _, req := range requests {
		productIDs = append(productIDs, req.ProductID)
		buyerIDs = append(buyerIDs, req.BuyerID)
	}

	productInfo, err := s.products.DisplayInfoByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	buyerInfo, err := s.users.DisplayInfoByIDs(ctx, buyerIDs)
	if err != nil {
		return nil, errors.Join(ErrPersistence, err)
	}

	views := make([]model.AccessRequestView, 0, len(requests))
	for _, req := range requests {
		product, ok := productInfo[req.ProductID]
		if !ok {
			s.logger.Warn("Request references missing product, omitting",
				zap.Int64("request_id", req.ID),
				zap.Int64("product_id", req.ProductID),
			)
			continue
		}

		buyer, ok := buyerInfo[req.BuyerID]
		if !ok {
			s.logger.Warn("Request references missing buyer, omitting",
				zap.Int64("request_id", req.ID),
				zap.Int64("buyer_id", req.BuyerID),
			)
			continue
		}

		views = append(views, model.AccessRequestView{
			Request:      *req,
			ProductName:  product.Name,
			ProductImage: product.ImageURL,
			BuyerName:    buyer.Username,
			BuyerEmail:   buyer.Email,
		})
	}

	return views, nil
}

// CountsForSeller returns per-status counts for the seller's requests.
// Total is always the exact sum of the three, recomputed on every call.
func (s *AccessService) CountsForSeller(ctx context.Context, actingSellerID int64) (model.StatusCounts, error) {
	counts, err := s.requestStore.CountBySeller(ctx, actingSellerID)
	if err != nil {
		s.logger.Error("Failed to count access requests",
			zap.Int64("seller_id", actingSellerID),
			zap.Error(err),
		)
		return model.StatusCounts{}, errors.Join(ErrPersistence, err)
	}

	result := model.StatusCounts{
		Pending:  counts[model.RequestStatusPending],
		Approved: counts[model.RequestStatusApproved],
		Rejected: counts[model.RequestStatusRejected],
	}
	result.Total = result.Pending + result.Approved + result.Rejected

	return result, nil
}
