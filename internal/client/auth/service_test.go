package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/crypto"
	"github.com/iudanet/weekendly/pkg/api"
)

func newMetadataMock() (*storage.MetadataStorageMock, *map[string]*storage.AuthData) {
	store := make(map[string]*storage.AuthData)
	mock := &storage.MetadataStorageMock{
		SaveAuthFunc: func(ctx context.Context, auth *storage.AuthData) error {
			store["auth"] = auth
			return nil
		},
		GetAuthFunc: func(ctx context.Context) (*storage.AuthData, error) {
			if auth, ok := store["auth"]; ok {
				return auth, nil
			}
			return nil, storage.ErrAuthNotFound
		},
		DeleteAuthFunc: func(ctx context.Context) error {
			delete(store, "auth")
			return nil
		},
	}
	return mock, &store
}

func TestRegister(t *testing.T) {
	apiMock := &clientapi.ClientAPIMock{
		RegisterFunc: func(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
			return &api.RegisterResponse{UserID: "uuid-1", Message: "ok"}, nil
		},
	}
	metadata, _ := newMetadataMock()
	service := NewService(apiMock, metadata)

	result, err := service.Register(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "uuid-1", result.UserID)
	assert.Equal(t, "alice", result.Username)

	// Серверу ушёл хеш производного ключа и соль, но не passphrase
	calls := apiMock.RegisterCalls()
	require.Len(t, calls, 1)
	assert.NotEmpty(t, calls[0].Req.AuthKeyHash)
	assert.NotEmpty(t, calls[0].Req.PublicSalt)
	assert.NotContains(t, calls[0].Req.AuthKeyHash, "correct horse")
}

func TestRegister_Validation(t *testing.T) {
	service := NewService(&clientapi.ClientAPIMock{}, &storage.MetadataStorageMock{})

	_, err := service.Register(context.Background(), "a", "correct horse battery")
	assert.Error(t, err)

	_, err = service.Register(context.Background(), "alice", "short")
	assert.Error(t, err)
}

func TestLogin_SavesSession(t *testing.T) {
	saltB64, err := crypto.GenerateSaltBase64()
	require.NoError(t, err)

	apiMock := &clientapi.ClientAPIMock{
		GetSaltFunc: func(ctx context.Context, username string) (*api.SaltResponse, error) {
			return &api.SaltResponse{PublicSalt: saltB64}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return &api.TokenResponse{AccessToken: "jwt-token", UserID: "uuid-1", ExpiresIn: 3600}, nil
		},
	}
	metadata, store := newMetadataMock()
	service := NewService(apiMock, metadata)

	result, err := service.Login(context.Background(), "alice", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)

	// Сессия сохранена для последующих команд
	saved := (*store)["auth"]
	require.NotNil(t, saved)
	assert.Equal(t, "alice", saved.Username)
	assert.Equal(t, "uuid-1", saved.UserID)
	assert.Equal(t, "jwt-token", saved.AccessToken)
}

func TestLogin_WrongPassphraseSurfacesServerError(t *testing.T) {
	saltB64, err := crypto.GenerateSaltBase64()
	require.NoError(t, err)

	apiMock := &clientapi.ClientAPIMock{
		GetSaltFunc: func(ctx context.Context, username string) (*api.SaltResponse, error) {
			return &api.SaltResponse{PublicSalt: saltB64}, nil
		},
		LoginFunc: func(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
			return nil, errors.New("invalid credentials")
		},
	}
	metadata, _ := newMetadataMock()
	service := NewService(apiMock, metadata)

	_, err = service.Login(context.Background(), "alice", "wrong but long passphrase")
	assert.ErrorContains(t, err, "login failed")
}

func TestLogout(t *testing.T) {
	metadata, store := newMetadataMock()
	(*store)["auth"] = &storage.AuthData{Username: "alice"}
	service := NewService(&clientapi.ClientAPIMock{}, metadata)

	require.NoError(t, service.Logout(context.Background()))
	assert.Empty(t, *store)

	// Повторный logout не ошибка
	require.NoError(t, service.Logout(context.Background()))
}

func TestIsAuthenticated(t *testing.T) {
	metadata, store := newMetadataMock()
	service := NewService(&clientapi.ClientAPIMock{}, metadata)

	ok, err := service.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	(*store)["auth"] = &storage.AuthData{Username: "alice"}
	ok, err = service.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCurrentUser(t *testing.T) {
	metadata, store := newMetadataMock()
	service := NewService(&clientapi.ClientAPIMock{}, metadata)

	_, err := service.CurrentUser(context.Background())
	assert.ErrorIs(t, err, storage.ErrAuthNotFound)

	(*store)["auth"] = &storage.AuthData{Username: "alice", UserID: "uuid-1"}
	auth, err := service.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice", auth.Username)
}
