package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-boss/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		expectedStatus int
		expectHandler  bool
	}{
		{name: "Preflight request", method: http.MethodOptions, expectedStatus: http.StatusNoContent},
		{name: "GET request", method: http.MethodGet, expectedStatus: http.StatusOK, expectHandler: true},
		{name: "PATCH request", method: http.MethodPatch, expectedStatus: http.StatusOK, expectHandler: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handlerCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				handlerCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/menu", nil)
			w := httptest.NewRecorder()
			CORS(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectHandler, handlerCalled)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	w := httptest.NewRecorder()
	RequestID(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	RequestID(next).ServeHTTP(w, req)
	assert.Equal(t, "abc-123", seen)
}

func TestLogging(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	Logging(zerolog.Nop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestRecovery(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recovery(zerolog.Nop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":true,"message":"internal server error"}`, w.Body.String())
}

func TestRecovery_ResponseAlreadyStarted(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "partial"})
		panic("boom")
	})

	w := httptest.NewRecorder()
	Recovery(zerolog.Nop())(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"partial"}`, w.Body.String())
}
