package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmuchance/bouncematch/internal/domain"
	"github.com/dmuchance/bouncematch/internal/logger"
)

// SyncService is the indexing surface the sync endpoints consume.
type SyncService interface {
	SyncAll(ctx context.Context) (*domain.SyncReport, error)
	SyncOne(ctx context.Context, inflatableID string) error
}

// SyncItemRequest identifies one inflatable to re-index
type SyncItemRequest struct {
	InflatableID string `json:"inflatable_id" validate:"required,max=100"`
}

// HandleSyncCatalog re-indexes the whole active catalog
// @Summary Sync the catalog into the vector index
// @Description Rebuilds the search document and embedding for every active inflatable. Per-item failures are reported, not fatal.
// @Tags sync
// @Produce json
// @Success 200 {object} domain.SyncReport
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Semantic search not configured"
// @Router /sync/catalog [post]
// @Security AdminKeyAuth
func HandleSyncCatalog(svc SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if svc == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgSemanticOffError)
			return
		}

		report, err := svc.SyncAll(r.Context())
		if err != nil {
			log.Error(ErrMsgSyncFailed, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}

// HandleSyncItem re-indexes a single inflatable
// @Summary Sync one inflatable into the vector index
// @Description Rebuilds the search document and embedding for one inflatable, active or not
// @Tags sync
// @Accept json
// @Produce json
// @Param request body SyncItemRequest true "Inflatable to sync"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse "Semantic search not configured"
// @Router /sync/item [post]
// @Security AdminKeyAuth
func HandleSyncItem(svc SyncService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		if svc == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgSemanticOffError)
			return
		}

		var req SyncItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}
		if req.InflatableID == "" {
			respondError(w, http.StatusBadRequest, ErrMsgMissingInflatableID)
			return
		}

		if err := svc.SyncOne(r.Context(), req.InflatableID); err != nil {
			log.Error(ErrMsgSyncItemFailed, "inflatable_id", req.InflatableID, "error", err)
			status, message := mapServiceErrorToUserMessage(err)
			respondError(w, status, message)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Inflatable synced"})
	}
}
