package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/srcmarket/backoffice/internal/model"
)

type fakeSessionStore struct {
	sessions map[uuid.UUID]*model.Session
}

func (f *fakeSessionStore) GetByToken(_ context.Context, token uuid.UUID) (*model.Session, error) {
	return f.sessions[token], nil
}

type fakeUserStore struct {
	users map[int64]*model.User
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	return f.users[id], nil
}

func TestResolveSeller(t *testing.T) {
	sellerToken := uuid.New()
	buyerToken := uuid.New()
	expiredToken := uuid.New()
	now := time.Now()

	sessions := &fakeSessionStore{sessions: map[uuid.UUID]*model.Session{
		sellerToken:  {Token: sellerToken, UserID: 7, ExpiresAt: now.Add(time.Hour)},
		buyerToken:   {Token: buyerToken, UserID: 100, ExpiresAt: now.Add(time.Hour)},
		expiredToken: {Token: expiredToken, UserID: 7, ExpiresAt: now.Add(-time.Minute)},
	}}
	users := &fakeUserStore{users: map[int64]*model.User{
		7:   {ID: 7, Username: "seller", IsSeller: true},
		100: {ID: 100, Username: "buyer", IsSeller: false},
	}}

	svc := NewAuthService(sessions, users, zap.NewNop())

	tests := []struct {
		name    string
		token   string
		wantID  int64
		wantErr error
	}{
		{name: "valid seller session", token: sellerToken.String(), wantID: 7},
		{name: "malformed token", token: "not-a-uuid", wantErr: ErrUnauthenticated},
		{name: "unknown token", token: uuid.New().String(), wantErr: ErrUnauthenticated},
		{name: "expired session", token: expiredToken.String(), wantErr: ErrUnauthenticated},
		{name: "non-seller account", token: buyerToken.String(), wantErr: ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ResolveSeller(context.Background(), tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, id)
		})
	}
}
