package handlers

import (
	"log/slog"
	"net/http"

	"github.com/iudanet/weekendly/internal/server/storage"
	"github.com/iudanet/weekendly/pkg/api"
)

// CatalogHandler отдает read-only справочник активностей.
// Endpoint публичный: клиент кеширует справочник локально и
// запрашивает его еще до логина.
type CatalogHandler struct {
	logger  *slog.Logger
	storage storage.CatalogStorage
}

// NewCatalogHandler создает новый handler для справочника
func NewCatalogHandler(logger *slog.Logger, catalogStorage storage.CatalogStorage) *CatalogHandler {
	return &CatalogHandler{
		logger:  logger,
		storage: catalogStorage,
	}
}

// GetCatalog обрабатывает GET /api/v1/catalog
func (h *CatalogHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	activities, err := h.storage.GetActivities(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get catalog", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.CatalogResponse{
		Activities: make([]api.CatalogActivity, 0, len(activities)),
	}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, api.CatalogActivity{
			ID:       a.ID,
			Name:     a.Name,
			Category: a.Category,
			Indoor:   a.Indoor,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
