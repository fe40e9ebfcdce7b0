// Package auth реализует клиентскую аутентификацию: деривация auth key
// из passphrase, регистрация, логин и хранение сессии в metadata store.
package auth

import (
	"context"
	"errors"
	"fmt"

	clientapi "github.com/iudanet/weekendly/internal/client/api"
	"github.com/iudanet/weekendly/internal/client/storage"
	"github.com/iudanet/weekendly/internal/crypto"
	"github.com/iudanet/weekendly/internal/validation"
	"github.com/iudanet/weekendly/pkg/api"
)

// Service предоставляет функции авторизации
type Service struct {
	apiClient clientapi.ClientAPI
	metadata  storage.MetadataStorage
}

// NewService создает новый сервис авторизации
func NewService(apiClient clientapi.ClientAPI, metadata storage.MetadataStorage) *Service {
	return &Service{
		apiClient: apiClient,
		metadata:  metadata,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string // username
}

// Register регистрирует нового пользователя.
// Passphrase не покидает клиента: на сервер уходит только SHA256-хеш
// производного Argon2id ключа вместе с публичной солью.
func (s *Service) Register(ctx context.Context, username, passphrase string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassphrase(passphrase); err != nil {
		return nil, fmt.Errorf("invalid passphrase: %w", err)
	}

	// 1. Генерируем публичную соль
	publicSaltBase64, err := crypto.GenerateSaltBase64()
	if err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// 2. Деривируем auth key из passphrase
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(passphrase, username, publicSaltBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	// 3. Хешируем auth_key для отправки на сервер
	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
		PublicSalt:  publicSaltBase64,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{
		UserID:   resp.UserID,
		Username: username,
	}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	AccessToken string
	Username    string
	UserID      string
	ExpiresIn   int64
}

// Login выполняет аутентификацию пользователя и сохраняет сессию
// в metadata store для последующих команд.
func (s *Service) Login(ctx context.Context, username, passphrase string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassphrase(passphrase); err != nil {
		return nil, fmt.Errorf("invalid passphrase: %w", err)
	}

	// 1. Получаем public_salt с сервера
	saltResp, err := s.apiClient.GetSalt(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get salt: %w", err)
	}

	// 2. Деривируем auth key и хешируем его
	authKey, err := crypto.DeriveAuthKeyFromBase64Salt(passphrase, username, saltResp.PublicSalt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive auth key: %w", err)
	}

	authKeyHash, err := crypto.HashAuthKey(authKey)
	if err != nil {
		return nil, fmt.Errorf("failed to hash auth key: %w", err)
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{
		Username:    username,
		AuthKeyHash: authKeyHash,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	// 3. Сохраняем сессию локально
	if err := s.metadata.SaveAuth(ctx, &storage.AuthData{
		Username:    username,
		UserID:      resp.UserID,
		AccessToken: resp.AccessToken,
	}); err != nil {
		return nil, fmt.Errorf("failed to save auth data: %w", err)
	}

	return &LoginResult{
		AccessToken: resp.AccessToken,
		Username:    username,
		UserID:      resp.UserID,
		ExpiresIn:   resp.ExpiresIn,
	}, nil
}

// Logout удаляет локальные данные авторизации
func (s *Service) Logout(ctx context.Context) error {
	if err := s.metadata.DeleteAuth(ctx); err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete auth data: %w", err)
	}
	return nil
}

// IsAuthenticated проверяет наличие сохранённой сессии
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.metadata.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check auth data: %w", err)
	}
	return true, nil
}

// CurrentUser возвращает сохранённую сессию.
// Returns storage.ErrAuthNotFound if user is not logged in.
func (s *Service) CurrentUser(ctx context.Context) (*storage.AuthData, error) {
	auth, err := s.metadata.GetAuth(ctx)
	if err != nil {
		return nil, err
	}
	return auth, nil
}
