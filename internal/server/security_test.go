package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "test-key-123"
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware(apiKey, nil, detector)(okHandler())

	t.Run("valid key passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rank", nil)
		req.Header.Set(HeaderAPIKey, apiKey)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rank", nil)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/rank", nil)
		req.Header.Set(HeaderAPIKey, "wrong")
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("public paths bypass auth", func(t *testing.T) {
		for _, path := range []string{"/healthz", "/readyz", "/metrics", "/version", "/swagger/index.html"} {
			req := httptest.NewRequest("GET", path, nil)
			w := httptest.NewRecorder()

			mw.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, "path %s should be public", path)
		}
	})
}

func TestAdminAuthMiddleware(t *testing.T) {
	const adminKey = "admin-key-456"
	mw := AdminAuthMiddleware(adminKey)(okHandler())

	t.Run("valid admin key passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)
		req.Header.Set(HeaderAdminKey, adminKey)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing admin key forbidden", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("regular API key is not enough", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/sync/catalog", nil)
		req.Header.Set(HeaderAPIKey, "some-api-key")
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())
	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	mw.ServeHTTP(w, req)

	assert.Equal(t, HeaderValueNoSniff, w.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, w.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, w.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, w.Header().Get(HeaderReferrerPolicy))
}

func TestExtractIP(t *testing.T) {
	t.Run("direct connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.7:52100"

		assert.Equal(t, "203.0.113.7", extractIP(req, nil))
	})

	t.Run("forwarded header ignored from untrusted source", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "203.0.113.7:52100"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1")

		assert.Equal(t, "203.0.113.7", extractIP(req, nil))
	})

	t.Run("forwarded header honored from trusted proxy", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.RemoteAddr = "10.0.0.1:52100"
		req.Header.Set(HeaderForwardedFor, "198.51.100.1, 10.0.0.2")

		assert.Equal(t, "10.0.0.2", extractIP(req, []string{"10.0.0.1"}))
	})
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	mw := RequestSizeLimitMiddleware(8)(inner)

	t.Run("small body passes", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader("tiny"))
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 64)))
		w := httptest.NewRecorder()

		mw.ServeHTTP(w, req)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	mw := recoveryMiddleware(panicking)

	req := httptest.NewRequest("POST", "/api/v1/rank", nil)
	w := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		mw.ServeHTTP(w, req)
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInternalError)
}
