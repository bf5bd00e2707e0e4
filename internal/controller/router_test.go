package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/model"
	"github.com/srcmarket/backoffice/internal/repository/base"
	"github.com/srcmarket/backoffice/internal/service"
)

type stubAuth struct {
	sellers map[string]int64
}

func (s *stubAuth) ResolveSeller(_ context.Context, rawToken string) (int64, error) {
	id, ok := s.sellers[rawToken]
	if !ok {
		return 0, service.ErrUnauthenticated
	}
	return id, nil
}

type stubAccess struct {
	lastAction    string
	lastSellerID  int64
	lastRequest   int64
	transitionErr error
	listErr       error
	countsErr     error
	views         []model.AccessRequestView
	counts        model.StatusCounts
}

func (s *stubAccess) Transition(_ context.Context, requestID, actingSellerID int64, action string) (*model.AccessRequest, error) {
	s.lastRequest = requestID
	s.lastSellerID = actingSellerID
	s.lastAction = action
	if s.transitionErr != nil {
		return nil, s.transitionErr
	}
	return &model.AccessRequest{ID: requestID, SellerID: actingSellerID, Status: model.RequestStatusApproved}, nil
}

func (s *stubAccess) ListForSeller(_ context.Context, actingSellerID int64, statusFilter string) ([]model.AccessRequestView, error) {
	s.lastSellerID = actingSellerID
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.views, nil
}

func (s *stubAccess) CountsForSeller(_ context.Context, actingSellerID int64) (model.StatusCounts, error) {
	s.lastSellerID = actingSellerID
	if s.countsErr != nil {
		return model.StatusCounts{}, s.countsErr
	}
	return s.counts, nil
}

func newTestRouter(access *stubAccess) http.Handler {
	auth := &stubAuth{sellers: map[string]int64{"seller-token": 7}}
	return NewRouter(auth, access, zap.NewNop())
}

func doRequest(t *testing.T, router http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz_NoAuth(t *testing.T) {
	router := newTestRouter(&stubAccess{})

	rec := doRequest(t, router, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_Required(t *testing.T) {
	access := &stubAccess{}
	router := newTestRouter(access)

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing token", token: ""},
		{name: "unknown token", token: "bogus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodGet, "/api/v1/requests", tt.token)
			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestTransition_Routes(t *testing.T) {
	tests := []struct {
		path       string
		wantAction string
	}{
		{path: "/api/v1/requests/42/approve", wantAction: service.ActionApprove},
		{path: "/api/v1/requests/42/reject", wantAction: service.ActionReject},
		{path: "/api/v1/requests/42/revoke", wantAction: service.ActionRevoke},
		{path: "/api/v1/requests/42/reinstate", wantAction: service.ActionReinstate},
	}

	for _, tt := range tests {
		t.Run(tt.wantAction, func(t *testing.T) {
			access := &stubAccess{}
			router := newTestRouter(access)

			rec := doRequest(t, router, http.MethodPost, tt.path, "seller-token")
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.wantAction, access.lastAction)
			require.Equal(t, int64(42), access.lastRequest)

			// Seller identity comes from the session, never the request
			require.Equal(t, int64(7), access.lastSellerID)
		})
	}
}

func TestTransition_BadRequestID(t *testing.T) {
	access := &stubAccess{}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/requests/abc/approve", "seller-token")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTransition_NotAuthorizedIsGeneric(t *testing.T) {
	access := &stubAccess{transitionErr: service.ErrNotAuthorized}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/requests/42/approve", "seller-token")
	require.Equal(t, http.StatusForbidden, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "not authorized", body["error"])
}

func TestTransition_StoreUnavailable(t *testing.T) {
	access := &stubAccess{
		transitionErr: errors.Join(service.ErrPersistence, fmt.Errorf("update: %w", base.ErrUnavailable)),
	}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/requests/42/approve", "seller-token")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestListRequests(t *testing.T) {
	access := &stubAccess{views: []model.AccessRequestView{
		{
			Request:     model.AccessRequest{ID: 1, SellerID: 7, Status: model.RequestStatusPending},
			ProductName: "CLI toolkit",
			BuyerName:   "ada",
		},
	}}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/requests?status=pending", "seller-token")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, int64(7), access.lastSellerID)

	var body struct {
		Requests []model.AccessRequestView `json:"requests"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Requests, 1)
	require.Equal(t, "CLI toolkit", body.Requests[0].ProductName)
}

func TestListRequests_InvalidFilter(t *testing.T) {
	access := &stubAccess{listErr: fmt.Errorf("%w: status %q", service.ErrInvalidAction, "archived")}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/requests?status=archived", "seller-token")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestCounts(t *testing.T) {
	access := &stubAccess{counts: model.StatusCounts{Pending: 2, Approved: 1, Rejected: 1, Total: 4}}
	router := newTestRouter(access)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/dashboard/requests", "seller-token")
	require.Equal(t, http.StatusOK, rec.Code)

	var counts model.StatusCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	require.Equal(t, model.StatusCounts{Pending: 2, Approved: 1, Rejected: 1, Total: 4}, counts)
}
