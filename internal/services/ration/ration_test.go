package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/ration-marketplace/internal/lib/errs"
	"github.com/magabrotheeeer/ration-marketplace/internal/models"
	services "github.com/magabrotheeeer/ration-marketplace/internal/services/ration"
)

// Мок для RationRepository
type RationRepoMock struct {
	mock.Mock
}

func (m *RationRepoMock) CreateRation(ctx context.Context, ration models.Ration) (string, error) {
	args := m.Called(ctx, ration)
	return args.String(0), args.Error(1)
}

func (m *RationRepoMock) ListRations(ctx context.Context, filter models.RationFilter) ([]*models.Ration, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ration), args.Error(1)
}

// Мок для UserReader
type UserReaderMock struct {
	mock.Mock
}

func (m *UserReaderMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func strPtr(s string) *string { return &s }

func TestRationService_Create(t *testing.T) {
	const creatorUID = "11111111-1111-1111-1111-111111111111"
	const wcUID = "22222222-2222-2222-2222-222222222222"
	const otherWC = "33333333-3333-3333-3333-333333333333"

	tests := []struct {
		name        string
		req         models.DummyRation
		setupMocks  func(r *RationRepoMock, u *UserReaderMock)
		wantErr     bool
		wantErrKind error
		errMsg      string
	}{
		{
			name: "successful creation of three rations",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    wcUID,
				NumberOfRations: 3,
			},
			setupMocks: func(r *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(&models.User{UID: creatorUID, WorkCenterUID: strPtr(wcUID)}, nil).Once()
				r.On("CreateRation", mock.Anything, mock.MatchedBy(func(ration models.Ration) bool {
					return ration.Name == "Lunch" &&
						ration.Prize == 12.5 &&
						ration.CreatedBy == creatorUID &&
						ration.WorkCenterUID == wcUID &&
						ration.Photo == "#" &&
						ration.UID != ""
				})).Return("new-uid", nil).Times(3)
			},
		},
		{
			name: "other workcenter is not allowed",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    otherWC,
				NumberOfRations: 1,
			},
			setupMocks: func(_ *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(&models.User{UID: creatorUID, WorkCenterUID: strPtr(wcUID)}, nil).Once()
			},
			wantErr:     true,
			wantErrKind: errs.ErrNotAllowed,
			errMsg:      "user can't create a ration in other workcenter",
		},
		{
			name: "user without workcenter is not allowed",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    wcUID,
				NumberOfRations: 1,
			},
			setupMocks: func(_ *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(&models.User{UID: creatorUID, WorkCenterUID: nil}, nil).Once()
			},
			wantErr:     true,
			wantErrKind: errs.ErrNotAllowed,
			errMsg:      "user can't create a ration in other workcenter",
		},
		{
			name: "more than five rations is not allowed",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    wcUID,
				NumberOfRations: 6,
			},
			setupMocks: func(_ *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(&models.User{UID: creatorUID, WorkCenterUID: strPtr(wcUID)}, nil).Once()
			},
			wantErr:     true,
			wantErrKind: errs.ErrNotAllowed,
			errMsg:      "you can't create more than five rations",
		},
		{
			name: "exactly five rations is allowed",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    wcUID,
				NumberOfRations: 5,
			},
			setupMocks: func(r *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(&models.User{UID: creatorUID, WorkCenterUID: strPtr(wcUID)}, nil).Once()
				r.On("CreateRation", mock.Anything, mock.Anything).
					Return("new-uid", nil).Times(5)
			},
		},
		{
			name: "unknown creator",
			req: models.DummyRation{
				Name:            "Lunch",
				Prize:           12.5,
				WorkCenterID:    wcUID,
				NumberOfRations: 1,
			},
			setupMocks: func(_ *RationRepoMock, u *UserReaderMock) {
				u.On("GetUser", mock.Anything, creatorUID).
					Return(nil, errs.NotFound("user not found")).Once()
			},
			wantErr:     true,
			wantErrKind: errs.ErrNotFound,
			errMsg:      "user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rations := new(RationRepoMock)
			users := new(UserReaderMock)
			tt.setupMocks(rations, users)

			svc := services.NewRationService(rations, users, newTestLogger())
			err := svc.Create(context.Background(), creatorUID, tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.True(t, errors.Is(err, tt.wantErrKind))
			} else {
				require.NoError(t, err)
			}
			rations.AssertExpectations(t)
			users.AssertExpectations(t)
		})
	}
}

// Каждый созданный рацион получает собственный uid.
func TestRationService_Create_DistinctUIDs(t *testing.T) {
	const creatorUID = "11111111-1111-1111-1111-111111111111"
	const wcUID = "22222222-2222-2222-2222-222222222222"

	rations := new(RationRepoMock)
	users := new(UserReaderMock)
	users.On("GetUser", mock.Anything, creatorUID).
		Return(&models.User{UID: creatorUID, WorkCenterUID: strPtr(wcUID)}, nil).Once()

	seen := make(map[string]bool)
	rations.On("CreateRation", mock.Anything, mock.MatchedBy(func(ration models.Ration) bool {
		if seen[ration.UID] {
			return false
		}
		seen[ration.UID] = true
		return true
	})).Return("new-uid", nil).Times(4)

	svc := services.NewRationService(rations, users, newTestLogger())
	err := svc.Create(context.Background(), creatorUID, models.DummyRation{
		Name:            "Dinner",
		Prize:           8,
		WorkCenterID:    wcUID,
		NumberOfRations: 4,
	})

	require.NoError(t, err)
	assert.Len(t, seen, 4)
	rations.AssertExpectations(t)
}

func TestRationService_List(t *testing.T) {
	const wcUID = "22222222-2222-2222-2222-222222222222"

	tests := []struct {
		name       string
		req        models.DummyRationFilter
		setupMocks func(r *RationRepoMock)
		wantLen    int
		wantErr    bool
	}{
		{
			name: "empty filter returns all rations as views",
			req:  models.DummyRationFilter{},
			setupMocks: func(r *RationRepoMock) {
				r.On("ListRations", mock.Anything, models.RationFilter{}).
					Return([]*models.Ration{
						{UID: "r1", Name: "Lunch", Prize: 10, CreatedBy: "u1", WorkCenterUID: wcUID, Photo: "#"},
						{UID: "r2", Name: "Dinner", Prize: 12, CreatedBy: "u2", WorkCenterUID: wcUID, Photo: "#"},
					}, nil).Once()
			},
			wantLen: 2,
		},
		{
			name: "filter fields are passed through",
			req:  models.DummyRationFilter{WorkCenter: strPtr(wcUID)},
			setupMocks: func(r *RationRepoMock) {
				r.On("ListRations", mock.Anything, models.RationFilter{WorkCenter: strPtr(wcUID)}).
					Return([]*models.Ration{
						{UID: "r1", Name: "Lunch", Prize: 10, CreatedBy: "u1", WorkCenterUID: wcUID, Photo: "#"},
					}, nil).Once()
			},
			wantLen: 1,
		},
		{
			name: "repository error",
			req:  models.DummyRationFilter{},
			setupMocks: func(r *RationRepoMock) {
				r.On("ListRations", mock.Anything, models.RationFilter{}).
					Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rations := new(RationRepoMock)
			users := new(UserReaderMock)
			tt.setupMocks(rations)

			svc := services.NewRationService(rations, users, newTestLogger())
			views, err := svc.List(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, views, tt.wantLen)
			for i, view := range views {
				assert.NotEmpty(t, view.RationID)
				// Проекция не содержит статуса продажи и покупателя
				assert.Equal(t, "#", view.Photo, "view %d", i)
			}
			rations.AssertExpectations(t)
		})
	}
}
