package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro-boss/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMenuController_GetMenu(t *testing.T) {
	tests := []struct {
		name           string
		items          []models.MenuItem
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Lists items",
			items:          []models.MenuItem{{ID: "m1", Name: "Soup", Category: "soup", Price: 4.5}},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"_id":"m1","name":"Soup","category":"soup","price":4.5}]`,
		},
		{
			name:           "Empty menu",
			items:          []models.MenuItem{},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:           "Store failure",
			err:            errors.New("db down"),
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockStore)
			if tt.err != nil {
				m.On("ListMenu", mock.Anything).Return(nil, tt.err)
			} else {
				m.On("ListMenu", mock.Anything).Return(tt.items, nil)
			}
			mc := NewMenuController(m, zerolog.Nop())

			w := httptest.NewRecorder()
			mc.GetMenu(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestMenuController_AddMenuItem(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedDoc    models.Document
		expectedStatus int
	}{
		{
			name:           "Stores every posted field",
			body:           `{"name":"Pizza","category":"pizza","price":12,"chef":"Mario","spicy":true}`,
			expectedDoc:    models.Document{"name": "Pizza", "category": "pizza", "price": 12.0, "chef": "Mario", "spicy": true},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "No name is still stored",
			body:           `{"category":"drinks","price":3}`,
			expectedDoc:    models.Document{"category": "drinks", "price": 3.0},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Client id is dropped",
			body:           `{"_id":"forged","name":"Soup"}`,
			expectedDoc:    models.Document{"name": "Soup"},
			expectedStatus: http.StatusOK,
		},
		{name: "Malformed", body: `{"name":`, expectedStatus: http.StatusBadRequest},
		{name: "Not an object", body: `["Pizza"]`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockStore)
			expectInsert := tt.expectedDoc != nil
			if expectInsert {
				m.On("InsertMenuItem", mock.Anything, tt.expectedDoc).
					Return(models.InsertResult{Acknowledged: true, InsertedID: "m9"}, nil)
			}
			mc := NewMenuController(m, zerolog.Nop())

			w := httptest.NewRecorder()
			mc.AddMenuItem(w, httptest.NewRequest(http.MethodPost, "/menu", strings.NewReader(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			m.AssertExpectations(t)
			if !expectInsert {
				m.AssertNotCalled(t, "InsertMenuItem", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestMenuController_GetMenu_ReturnsStoredExtras(t *testing.T) {
	m := new(MockStore)
	m.On("ListMenu", mock.Anything).Return([]models.MenuItem{
		{ID: "m1", Name: "Pizza", Category: "pizza", Price: 12, Extra: map[string]interface{}{"chef": "Mario"}},
	}, nil)
	mc := NewMenuController(m, zerolog.Nop())

	w := httptest.NewRecorder()
	mc.GetMenu(w, httptest.NewRequest(http.MethodGet, "/menu", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"m1","name":"Pizza","category":"pizza","price":12,"chef":"Mario"}]`, w.Body.String())
}

func TestMenuController_DeleteMenuItem(t *testing.T) {
	m := new(MockStore)
	m.On("DeleteMenuItem", mock.Anything, models.ID("642c155b2c4774f05c36ee7c")).
		Return(models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil)
	mc := NewMenuController(m, zerolog.Nop())

	req := withVars(httptest.NewRequest(http.MethodDelete, "/menu/642c155b2c4774f05c36ee7c", nil),
		map[string]string{"id": "642c155b2c4774f05c36ee7c"})
	w := httptest.NewRecorder()
	mc.DeleteMenuItem(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())
	m.AssertExpectations(t)
}

func TestMenuController_GetReviews(t *testing.T) {
	m := new(MockStore)
	m.On("ListReviews", mock.Anything).Return([]models.Review{{ID: "r1", Name: "Jane", Details: "Great", Rating: 5}}, nil)
	mc := NewMenuController(m, zerolog.Nop())

	w := httptest.NewRecorder()
	mc.GetReviews(w, httptest.NewRequest(http.MethodGet, "/reviews", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"_id":"r1","name":"Jane","details":"Great","rating":5}]`, w.Body.String())
}
