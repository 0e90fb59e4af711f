package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/offlinekit/recordsync/internal/client/storage"
)

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// fakeAuthStore хранит AuthData в памяти
type fakeAuthStore struct {
	auth *storage.AuthData
}

func (f *fakeAuthStore) SaveAuth(_ context.Context, auth *storage.AuthData) error {
	f.auth = auth
	return nil
}

func (f *fakeAuthStore) GetAuth(_ context.Context) (*storage.AuthData, error) {
	if f.auth == nil {
		return nil, storage.ErrAuthNotFound
	}
	return f.auth, nil
}

func (f *fakeAuthStore) DeleteAuth(_ context.Context) error {
	f.auth = nil
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return token
}

func newTestService(store *fakeAuthStore) *Service {
	svc := NewService(store, testLogger())
	svc.now = func() time.Time { return testTime }
	return svc
}

func TestLogin_ExtractsExpiry(t *testing.T) {
	store := &fakeAuthStore{}
	svc := newTestService(store)

	expiresAt := testTime.Add(time.Hour)
	token := signedToken(t, jwt.MapClaims{"sub": "testuser", "exp": expiresAt.Unix()})

	require.NoError(t, svc.Login(context.Background(), "testuser", token))

	require.NotNil(t, store.auth)
	assert.Equal(t, "testuser", store.auth.Username)
	assert.Equal(t, token, store.auth.AccessToken)
	assert.Equal(t, expiresAt.Unix(), store.auth.ExpiresAt)
}

func TestLogin_OpaqueToken(t *testing.T) {
	store := &fakeAuthStore{}
	svc := newTestService(store)

	require.NoError(t, svc.Login(context.Background(), "testuser", "not-a-jwt"))

	require.NotNil(t, store.auth)
	assert.Equal(t, int64(0), store.auth.ExpiresAt, "Non-JWT token has no known expiry")
}

func TestAccessToken(t *testing.T) {
	tests := []struct {
		name        string
		expiresAt   int64
		expectedErr error
	}{
		{
			name:      "Valid token",
			expiresAt: testTime.Add(time.Hour).Unix(),
		},
		{
			name:      "Token without expiry",
			expiresAt: 0,
		},
		{
			name:        "Expired token",
			expiresAt:   testTime.Add(-time.Hour).Unix(),
			expectedErr: ErrTokenExpired,
		},
		{
			name:        "Token expiring right now",
			expiresAt:   testTime.Unix(),
			expectedErr: ErrTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeAuthStore{auth: &storage.AuthData{
				Username:    "testuser",
				AccessToken: "token-123",
				ExpiresAt:   tt.expiresAt,
			}}
			svc := newTestService(store)

			token, err := svc.AccessToken(context.Background())
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "token-123", token)
			}
		})
	}
}

func TestAccessToken_NotLoggedIn(t *testing.T) {
	svc := newTestService(&fakeAuthStore{})

	_, err := svc.AccessToken(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)
}

func TestLogout(t *testing.T) {
	store := &fakeAuthStore{auth: &storage.AuthData{Username: "testuser"}}
	svc := newTestService(store)

	require.NoError(t, svc.Logout(context.Background()))
	assert.Nil(t, store.auth)
}

func TestStatus(t *testing.T) {
	store := &fakeAuthStore{auth: &storage.AuthData{Username: "testuser", AccessToken: "token-123"}}
	svc := newTestService(store)

	auth, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "testuser", auth.Username)
}
