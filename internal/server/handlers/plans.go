package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/weekendly/internal/models"
	"github.com/iudanet/weekendly/internal/server/storage"
	"github.com/iudanet/weekendly/pkg/api"
)

// validSlots допустимые значения слота активности
var validSlots = map[string]bool{
	"sat-am": true,
	"sat-pm": true,
	"sun-am": true,
	"sun-pm": true,
}

// PlansHandler обрабатывает CRUD запросы для планов выходных.
// Все операции выполняются от имени пользователя из JWT (AuthMiddleware).
type PlansHandler struct {
	logger  *slog.Logger
	storage storage.PlanStorage
}

// NewPlansHandler создает новый handler для планов
func NewPlansHandler(logger *slog.Logger, planStorage storage.PlanStorage) *PlansHandler {
	return &PlansHandler{
		logger:  logger,
		storage: planStorage,
	}
}

// Create обрабатывает POST /api/v1/plans
// Создание плана. Повторный create с тем же ID перезаписывает план:
// клиент ретраит запросы, операция должна быть идемпотентной.
func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.savePlan(w, r, "")
}

// Update обрабатывает PUT /api/v1/plans/{id}
// Полная перезапись плана (last-write-wins)
func (h *PlansHandler) Update(w http.ResponseWriter, r *http.Request) {
	planID := r.PathValue("id")
	if planID == "" {
		sendError(h.logger, w, "plan id is required", http.StatusBadRequest)
		return
	}
	h.savePlan(w, r, planID)
}

// savePlan общий путь для Create и Update. Непустой pathID означает
// Update: ID в path должен совпадать с ID в теле.
func (h *PlansHandler) savePlan(w http.ResponseWriter, r *http.Request, pathID string) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var wirePlan api.Plan
	if err := json.NewDecoder(r.Body).Decode(&wirePlan); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode plan", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if pathID != "" && wirePlan.ID != pathID {
		sendError(h.logger, w, "plan id in path and body must match", http.StatusBadRequest)
		return
	}

	if err := validatePlan(&wirePlan); err != nil {
		h.logger.WarnContext(ctx, "invalid plan", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	plan := planFromWire(&wirePlan)
	if err := h.storage.SavePlan(ctx, userID, plan); err != nil {
		h.logger.ErrorContext(ctx, "failed to save plan",
			slog.String("plan_id", plan.ID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "plan saved",
		slog.String("user_id", userID),
		slog.String("plan_id", plan.ID))

	status := http.StatusOK
	if pathID == "" {
		status = http.StatusCreated
	}

	resp := api.PlanResponse{
		Plan:    planToWire(plan),
		Message: "Plan saved successfully",
	}
	sendJSON(h.logger, w, resp, status)
}

// Delete обрабатывает DELETE /api/v1/plans/{id}
// Удаление идемпотентно: повторный delete возвращает 204
func (h *PlansHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	planID := r.PathValue("id")
	if planID == "" {
		sendError(h.logger, w, "plan id is required", http.StatusBadRequest)
		return
	}

	if err := h.storage.DeletePlan(ctx, userID, planID); err != nil {
		h.logger.ErrorContext(ctx, "failed to delete plan",
			slog.String("plan_id", planID),
			slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "plan deleted",
		slog.String("user_id", userID),
		slog.String("plan_id", planID))

	w.WriteHeader(http.StatusNoContent)
}

// List обрабатывает GET /api/v1/plans
// Возвращает все планы пользователя, новейшие выходные первыми
func (h *PlansHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	plans, err := h.storage.GetUserPlans(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list plans", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.ListPlansResponse{
		Plans: make([]api.Plan, 0, len(plans)),
	}
	for _, plan := range plans {
		resp.Plans = append(resp.Plans, planToWire(plan))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// validatePlan проверяет обязательные поля wire-плана
func validatePlan(plan *api.Plan) error {
	if plan.ID == "" {
		return errors.New("plan id is required")
	}
	if plan.Title == "" {
		return errors.New("title is required")
	}
	if plan.WeekendOf == "" {
		return errors.New("weekend_of is required")
	}
	if _, err := time.Parse("2006-01-02", plan.WeekendOf); err != nil {
		return errors.New("weekend_of must be a date in YYYY-MM-DD format")
	}
	for _, a := range plan.Activities {
		if a.Name == "" {
			return errors.New("activity name is required")
		}
		if !validSlots[a.Slot] {
			return errors.New("activity slot must be one of sat-am, sat-pm, sun-am, sun-pm")
		}
	}
	return nil
}

// planFromWire конвертирует wire-формат в доменную модель
func planFromWire(p *api.Plan) *models.Plan {
	activities := make([]models.Activity, 0, len(p.Activities))
	for _, a := range p.Activities {
		activities = append(activities, models.Activity{
			Name:  a.Name,
			Slot:  a.Slot,
			Notes: a.Notes,
		})
	}

	return &models.Plan{
		ID:           p.ID,
		Title:        p.Title,
		WeekendOf:    p.WeekendOf,
		Activities:   activities,
		LastModified: p.LastModified,
	}
}

// planToWire конвертирует доменную модель в wire-формат
func planToWire(p *models.Plan) api.Plan {
	activities := make([]api.Activity, 0, len(p.Activities))
	for _, a := range p.Activities {
		activities = append(activities, api.Activity{
			Name:  a.Name,
			Slot:  a.Slot,
			Notes: a.Notes,
		})
	}

	return api.Plan{
		ID:           p.ID,
		Title:        p.Title,
		WeekendOf:    p.WeekendOf,
		Activities:   activities,
		LastModified: p.LastModified,
	}
}
