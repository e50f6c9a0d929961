package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro-boss/models"
	"bistro-boss/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsController_AdminStats(t *testing.T) {
	tests := []struct {
		name           string
		revenue        float64
		revenueErr     error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Two payments",
			revenue:        23.50 + 10.00,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"customers":3,"products":12,"orders":2,"revinew":"33.50"}`,
		},
		{
			name:           "No payments",
			revenue:        0,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"customers":3,"products":12,"orders":2,"revinew":"0.00"}`,
		},
		{
			name:           "Rounds to cents",
			revenue:        10.006,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"customers":3,"products":12,"orders":2,"revinew":"10.01"}`,
		},
		{
			name:           "Aggregation failure",
			revenueErr:     errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockStore)
			m.On("Counts", mock.Anything).Return(store.Counts{Users: 3, Menu: 12, Payments: 2}, nil)
			m.On("Revenue", mock.Anything).Return(tt.revenue, tt.revenueErr)
			sc := NewStatsController(m, zerolog.Nop())

			w := httptest.NewRecorder()
			sc.AdminStats(w, httptest.NewRequest(http.MethodGet, "/admin-stats", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestStatsController_OrderStats(t *testing.T) {
	m := new(MockStore)
	m.On("OrderStats", mock.Anything).Return([]models.CategoryStat{
		{Category: "pizza", Count: 4, Total: 51.5},
		{Category: "salad", Count: 1, Total: 8},
	}, nil)
	sc := NewStatsController(m, zerolog.Nop())

	w := httptest.NewRecorder()
	sc.OrderStats(w, httptest.NewRequest(http.MethodGet, "/order-stats", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"category":"pizza","count":4,"total":51.5},{"category":"salad","count":1,"total":8}]`, w.Body.String())
}

func TestHealthController(t *testing.T) {
	m := new(MockStore)
	m.On("Ping", mock.Anything).Return(nil).Once()
	m.On("Ping", mock.Anything).Return(errors.New("no primary")).Once()
	hc := NewHealthController(m, zerolog.Nop())

	w := httptest.NewRecorder()
	hc.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	hc.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = httptest.NewRecorder()
	hc.Home(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bistro Boss")
}
