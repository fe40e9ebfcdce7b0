package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/iudanet/weekendly/internal/models"
	"github.com/iudanet/weekendly/internal/server/storage"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-key-for-unit-tests"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// withUser кладет user_id в контекст запроса, как это делает AuthMiddleware
func withUser(r *http.Request, userID string) *http.Request {
	ctx := context.WithValue(r.Context(), UserIDKey, userID)
	return r.WithContext(ctx)
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users           map[string]*models.User // username -> User
	createError     error
	getUserError    error
	updateLastLogin func(ctx context.Context, userID string, loginTime time.Time) error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	if m.updateLastLogin != nil {
		return m.updateLastLogin(ctx, userID, loginTime)
	}
	return nil
}

// mockPlanStorage is a mock implementation of PlanStorage for testing
type mockPlanStorage struct {
	plans     map[string]map[string]*models.Plan // userID -> planID -> Plan
	saveError error
	getError  error
}

func newMockPlanStorage() *mockPlanStorage {
	return &mockPlanStorage{plans: make(map[string]map[string]*models.Plan)}
}

func (m *mockPlanStorage) SavePlan(ctx context.Context, userID string, plan *models.Plan) error {
	if m.saveError != nil {
		return m.saveError
	}
	if m.plans[userID] == nil {
		m.plans[userID] = make(map[string]*models.Plan)
	}
	m.plans[userID][plan.ID] = plan.Clone()
	return nil
}

func (m *mockPlanStorage) GetPlan(ctx context.Context, userID, planID string) (*models.Plan, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	plan, ok := m.plans[userID][planID]
	if !ok {
		return nil, storage.ErrPlanNotFound
	}
	return plan.Clone(), nil
}

func (m *mockPlanStorage) GetUserPlans(ctx context.Context, userID string) ([]*models.Plan, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	plans := make([]*models.Plan, 0, len(m.plans[userID]))
	for _, plan := range m.plans[userID] {
		plans = append(plans, plan.Clone())
	}
	sort.Slice(plans, func(i, j int) bool {
		if plans[i].WeekendOf != plans[j].WeekendOf {
			return plans[i].WeekendOf > plans[j].WeekendOf
		}
		return plans[i].ID < plans[j].ID
	})
	return plans, nil
}

func (m *mockPlanStorage) DeletePlan(ctx context.Context, userID, planID string) error {
	if m.saveError != nil {
		return m.saveError
	}
	delete(m.plans[userID], planID)
	return nil
}

// mockCatalogStorage is a mock implementation of CatalogStorage for testing
type mockCatalogStorage struct {
	activities []models.CatalogActivity
	getError   error
}

func (m *mockCatalogStorage) GetActivities(ctx context.Context) ([]models.CatalogActivity, error) {
	if m.getError != nil {
		return nil, m.getError
	}
	return m.activities, nil
}
