package info

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// MockService реализует интерфейс info.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetUserInfo(ctx context.Context, userUID string) (*models.UserInfo, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserInfo), args.Error(1)
}

func TestUserInfoHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const userUID = "11111111-1111-1111-1111-111111111111"

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "сводка с воркцентром и счетчиками",
			setupMock: func(m *MockService) {
				m.On("GetUserInfo", mock.Anything, userUID).
					Return(&models.UserInfo{
						Name: "Test User",
						WorkCenter: &models.WorkCenter{
							UID: "wc-1", Name: "Center", Address: "Street 1", City: "Town",
						},
						CreatedRations: 3,
						BuyedRations:   2,
						SoldRations:    1,
					}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"createdRations":3`,
		},
		{
			name: "сводка без воркцентра",
			setupMock: func(m *MockService) {
				m.On("GetUserInfo", mock.Anything, userUID).
					Return(&models.UserInfo{Name: "Test User"}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Test User"`,
		},
		{
			name: "неизвестный пользователь",
			setupMock: func(m *MockService) {
				m.On("GetUserInfo", mock.Anything, userUID).
					Return(nil, errs.NotFound("user not found")).Once()
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `user not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/user/"+userUID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("userId", userUID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

// Сводка без воркцентра не содержит поля workCenter в JSON.
func TestUserInfoHandler_OmitsEmptyWorkCenter(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const userUID = "11111111-1111-1111-1111-111111111111"

	mockService := new(MockService)
	mockService.On("GetUserInfo", mock.Anything, userUID).
		Return(&models.UserInfo{Name: "Test User"}, nil).Once()

	handler := New(logger, mockService)
	req := httptest.NewRequest(http.MethodGet, "/user/"+userUID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userUID)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	// Сводка лежит сразу под "data", без вложенного конверта
	assert.Contains(t, w.Body.String(), `"data":{"name":"Test User"`)
	assert.NotContains(t, w.Body.String(), `"workCenter"`)
}
