package middlewarectx

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	customjwt "github.com/magabrotheeeer/ration-marketplace/internal/lib/jwt"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

type MockTokenParser struct {
	mock.Mock
}

func (m *MockTokenParser) ParseToken(tokenStr string) (*customjwt.CustomClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customjwt.CustomClaims), args.Error(1)
}

func TestJWTMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*MockTokenParser)
		expectedStatus int
		wantNextCalled bool
		wantUsername   string
		wantUID        string
	}{
		{
			name:       "валидный токен кладет username и uid в контекст",
			authHeader: "Bearer valid-token",
			setupMock: func(m *MockTokenParser) {
				claims := &customjwt.CustomClaims{
					Username: "testuser",
					RegisteredClaims: jwtlib.RegisteredClaims{
						Subject: "uid-1",
					},
				}
				m.On("ParseToken", "valid-token").Return(claims, nil).Once()
			},
			expectedStatus: http.StatusOK,
			wantNextCalled: true,
			wantUsername:   "testuser",
			wantUID:        "uid-1",
		},
		{
			name:           "отсутствует заголовок Authorization",
			authHeader:     "",
			setupMock:      func(_ *MockTokenParser) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     "Token abc",
			setupMock:      func(_ *MockTokenParser) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "невалидный токен",
			authHeader: "Bearer bad-token",
			setupMock: func(m *MockTokenParser) {
				m.On("ParseToken", "bad-token").Return(nil, assert.AnError).Once()
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := new(MockTokenParser)
			tt.setupMock(parser)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				if tt.wantUsername != "" {
					assert.Equal(t, tt.wantUsername, r.Context().Value(User))
					assert.Equal(t, tt.wantUID, r.Context().Value(UserUID))
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/work-centers", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			JWTMiddleware(parser, logger)(next).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			parser.AssertExpectations(t)
		})
	}
}
