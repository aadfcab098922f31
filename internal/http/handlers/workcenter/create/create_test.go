package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
)

// MockService реализует интерфейс create.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, req models.DummyWorkCenter) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func TestCreateWorkCenterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное создание воркцентра",
			body: `{"name":"Center A","address":"Street 1","city":"Town"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, models.DummyWorkCenter{
					Name: "Center A", Address: "Street 1", City: "Town",
				}).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `Work Center Center A successfully created`,
		},
		{
			name: "повторное имя воркцентра",
			body: `{"name":"Center A","address":"Street 1","city":"Town"}`,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, mock.Anything).
					Return(errs.AlreadyExists("workcenter Center A already registered")).Once()
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `workcenter Center A already registered`,
		},
		{
			name:           "отсутствует обязательное поле",
			body:           `{"name":"Center A","city":"Town"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Address is a required field`,
		},
		{
			name:           "некорректное тело запроса",
			body:           `{not json`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `invalid request body`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/work-center/user-1", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
