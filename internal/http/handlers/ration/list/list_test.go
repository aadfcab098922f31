package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context, dummy models.DummyRationFilter) ([]models.RationView, error) {
	args := m.Called(ctx, dummy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.RationView), args.Error(1)
}

func strPtr(s string) *string { return &s }

func TestListRationsHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	const wcUID = "22222222-2222-2222-2222-222222222222"
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "пустой фильтр возвращает все рационы",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.DummyRationFilter{}).
					Return([]models.RationView{
						{Photo: "#", RationID: "r1", Prize: 10, CreatedBy: "u1", CreationDate: created, Name: "Lunch", WorkCenter: wcUID},
					}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"rationId":"r1"`,
		},
		{
			name: "фильтр по воркцентру",
			body: `{"workCenter":"` + wcUID + `"}`,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.DummyRationFilter{WorkCenter: strPtr(wcUID)}).
					Return([]models.RationView{}, nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"data":[]`,
		},
		{
			name:           "createdBy не uuid",
			body:           `{"createdBy":"not-a-uuid"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field CreatedBy can contain only uuid`,
		},
		{
			name:           "некорректное тело запроса",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
		{
			name: "ошибка сервиса",
			body: `{}`,
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything, models.DummyRationFilter{}).
					Return(nil, errors.New("db error")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `internal error`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/rations/user-1", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}

// Публичная проекция не содержит статуса продажи и покупателя.
func TestListRationsHandler_ProjectionShape(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	mockService := new(MockService)
	mockService.On("List", mock.Anything, models.DummyRationFilter{}).
		Return([]models.RationView{
			{Photo: "#", RationID: "r1", Prize: 10, CreatedBy: "u1", Name: "Lunch", WorkCenter: "wc-1"},
		}, nil).Once()

	handler := New(logger, mockService)
	req := httptest.NewRequest(http.MethodPost, "/rations/user-1", strings.NewReader(`{}`))
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	body := w.Body.String()
	// Список лежит сразу под "data", без вложенного конверта
	assert.Contains(t, body, `"data":[{`)
	assert.Contains(t, body, `"rationId"`)
	assert.Contains(t, body, `"workCenter"`)
	assert.NotContains(t, body, `"sold"`)
	assert.NotContains(t, body, `"buyedBy"`)
}
