package handler

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmuchance/bouncematch/internal/domain"
)

type mockSyncService struct {
	report     *domain.SyncReport
	allErr     error
	oneErr     error
	syncedItem string
}

func (m *mockSyncService) SyncAll(ctx context.Context) (*domain.SyncReport, error) {
	if m.allErr != nil {
		return nil, m.allErr
	}
	return m.report, nil
}

func (m *mockSyncService) SyncOne(ctx context.Context, inflatableID string) error {
	m.syncedItem = inflatableID
	return m.oneErr
}

func TestHandleSyncCatalog(t *testing.T) {
	t.Run("successful sync returns report", func(t *testing.T) {
		svc := &mockSyncService{report: &domain.SyncReport{Synced: 5, Total: 6, Errors: []string{"x: boom"}}}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)

		HandleSyncCatalog(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"synced":5`)
		assert.Contains(t, w.Body.String(), `"total":6`)
	})

	t.Run("semantic disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)

		HandleSyncCatalog(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSemanticOffError)
	})

	t.Run("sync failure", func(t *testing.T) {
		svc := &mockSyncService{allErr: errors.New("catalog offline")}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)

		HandleSyncCatalog(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHandleSyncItem(t *testing.T) {
	t.Run("known item", func(t *testing.T) {
		svc := &mockSyncService{}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/item",
			bytes.NewReader([]byte(`{"inflatable_id":"inf-1"}`)))

		HandleSyncItem(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "inf-1", svc.syncedItem)
	})

	t.Run("missing id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/item", bytes.NewReader([]byte(`{}`)))

		HandleSyncItem(&mockSyncService{}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgMissingInflatableID)
	})

	t.Run("unknown item maps to 404", func(t *testing.T) {
		svc := &mockSyncService{oneErr: domain.ErrInflatableNotFound}
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/item",
			bytes.NewReader([]byte(`{"inflatable_id":"missing"}`)))

		HandleSyncItem(svc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgItemNotFoundError)
	})

	t.Run("semantic disabled", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/api/v1/sync/item",
			bytes.NewReader([]byte(`{"inflatable_id":"inf-1"}`)))

		HandleSyncItem(nil).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
