package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/weekendly/internal/models"
	"github.com/iudanet/weekendly/pkg/api"
)

func wirePlan(id string) api.Plan {
	return api.Plan{
		ID:        id,
		Title:     "Активные выходные",
		WeekendOf: "2025-06-07",
		Activities: []api.Activity{
			{Slot: "sat-am", Name: "Бранч"},
			{Slot: "sun-pm", Name: "Кино", Notes: "вечерний сеанс"},
		},
		LastModified: time.Now().Truncate(time.Second),
	}
}

func doPlanRequest(t *testing.T, handler http.HandlerFunc, method, target, userID string, pathID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if pathID != "" {
		req.SetPathValue("id", pathID)
	}
	if userID != "" {
		req = withUser(req, userID)
	}

	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestPlansHandler_Create(t *testing.T) {
	planStorage := newMockPlanStorage()
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	plan := wirePlan("plan-1")
	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp api.PlanResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, plan.ID, resp.Plan.ID)
	assert.Equal(t, plan.Activities, resp.Plan.Activities)

	saved, ok := planStorage.plans["user-1"]["plan-1"]
	require.True(t, ok)
	assert.Equal(t, "Активные выходные", saved.Title)
}

func TestPlansHandler_Create_Idempotent(t *testing.T) {
	planStorage := newMockPlanStorage()
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	plan := wirePlan("plan-1")
	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)
	require.Equal(t, http.StatusCreated, w.Code)

	// Ретрай той же мутации перезаписывает план, а не падает с конфликтом
	plan.Title = "Обновленный заголовок"
	w = doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Обновленный заголовок", planStorage.plans["user-1"]["plan-1"].Title)
}

func TestPlansHandler_Create_Validation(t *testing.T) {
	handler := NewPlansHandler(setupTestLogger(), newMockPlanStorage())

	tests := []struct {
		mutate func(*api.Plan)
		name   string
	}{
		{name: "missing id", mutate: func(p *api.Plan) { p.ID = "" }},
		{name: "missing title", mutate: func(p *api.Plan) { p.Title = "" }},
		{name: "missing weekend_of", mutate: func(p *api.Plan) { p.WeekendOf = "" }},
		{name: "bad weekend_of format", mutate: func(p *api.Plan) { p.WeekendOf = "June 7" }},
		{name: "bad slot", mutate: func(p *api.Plan) { p.Activities[0].Slot = "mon-am" }},
		{name: "empty activity name", mutate: func(p *api.Plan) { p.Activities[0].Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := wirePlan("plan-1")
			tt.mutate(&plan)
			w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestPlansHandler_Create_Unauthorized(t *testing.T) {
	handler := NewPlansHandler(setupTestLogger(), newMockPlanStorage())

	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "", "", wirePlan("plan-1"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlansHandler_Update(t *testing.T) {
	planStorage := newMockPlanStorage()
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	plan := wirePlan("plan-1")
	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)
	require.Equal(t, http.StatusCreated, w.Code)

	plan.Title = "Ленивые выходные"
	plan.Activities = []api.Activity{{Slot: "sat-pm", Name: "Чтение"}}
	w = doPlanRequest(t, handler.Update, http.MethodPut, "/api/v1/plans/plan-1", "user-1", "plan-1", plan)

	assert.Equal(t, http.StatusOK, w.Code)
	saved := planStorage.plans["user-1"]["plan-1"]
	assert.Equal(t, "Ленивые выходные", saved.Title)
	assert.Len(t, saved.Activities, 1)
}

func TestPlansHandler_Update_IDMismatch(t *testing.T) {
	handler := NewPlansHandler(setupTestLogger(), newMockPlanStorage())

	plan := wirePlan("plan-other")
	w := doPlanRequest(t, handler.Update, http.MethodPut, "/api/v1/plans/plan-1", "user-1", "plan-1", plan)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlansHandler_Delete(t *testing.T) {
	planStorage := newMockPlanStorage()
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	plan := wirePlan("plan-1")
	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", plan)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doPlanRequest(t, handler.Delete, http.MethodDelete, "/api/v1/plans/plan-1", "user-1", "plan-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, planStorage.plans["user-1"])

	// Повторный delete идемпотентен
	w = doPlanRequest(t, handler.Delete, http.MethodDelete, "/api/v1/plans/plan-1", "user-1", "plan-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestPlansHandler_List(t *testing.T) {
	planStorage := newMockPlanStorage()
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	require.NoError(t, planStorage.SavePlan(context.Background(), "user-1", &models.Plan{
		ID: "plan-old", Title: "Старый", WeekendOf: "2025-05-03",
	}))
	require.NoError(t, planStorage.SavePlan(context.Background(), "user-1", &models.Plan{
		ID: "plan-new", Title: "Новый", WeekendOf: "2025-06-14",
	}))
	require.NoError(t, planStorage.SavePlan(context.Background(), "user-2", &models.Plan{
		ID: "plan-foreign", Title: "Чужой", WeekendOf: "2025-06-14",
	}))

	w := doPlanRequest(t, handler.List, http.MethodGet, "/api/v1/plans", "user-1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.ListPlansResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Plans, 2)
	assert.Equal(t, "plan-new", resp.Plans[0].ID)
	assert.Equal(t, "plan-old", resp.Plans[1].ID)
}

func TestPlansHandler_List_Empty(t *testing.T) {
	handler := NewPlansHandler(setupTestLogger(), newMockPlanStorage())

	w := doPlanRequest(t, handler.List, http.MethodGet, "/api/v1/plans", "user-1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.ListPlansResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Empty(t, resp.Plans)
}

func TestPlansHandler_StorageError(t *testing.T) {
	planStorage := newMockPlanStorage()
	planStorage.saveError = errors.New("disk is full")
	handler := NewPlansHandler(setupTestLogger(), planStorage)

	w := doPlanRequest(t, handler.Create, http.MethodPost, "/api/v1/plans", "user-1", "", wirePlan("plan-1"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
