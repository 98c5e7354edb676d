package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-social-graph/internal/metrics"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

func followCount(operation, result string) float64 {
	return testutil.ToFloat64(metrics.FollowOperations.WithLabelValues(operation, result))
}

func TestFollowingService_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserReader(ctrl)
	mockReader := NewMockFollowingReader(ctrl)
	mockWriter := NewMockFollowingWriter(ctrl)
	svc := NewFollowingService(mockUsers, mockReader, mockWriter)
	ctx := context.Background()

	target := &models.UserDB{ID: 1, Username: "alice"}

	tests := []struct {
		name       string
		userID     int64
		targetID   int64
		target     *models.UserDB
		usersErr   error
		callExists bool
		exists     bool
		existsErr  error
		callCreate bool
		created    bool
		createErr  error
		wantErr    error
		wantResult string
	}{
		{
			name: "creates edge", userID: 2, targetID: 1, target: target,
			callExists: true, callCreate: true, created: true, wantResult: metrics.ResultCreated,
		},
		{
			name: "existing edge skips the insert", userID: 2, targetID: 1, target: target,
			callExists: true, exists: true, wantResult: metrics.ResultExists,
		},
		{
			name: "edge created concurrently is success", userID: 2, targetID: 1, target: target,
			callExists: true, callCreate: true, created: false, wantResult: metrics.ResultExists,
		},
		{
			name: "unique violation is success", userID: 2, targetID: 1, target: target,
			callExists: true, callCreate: true, createErr: models.ErrDuplicateFollowing, wantResult: metrics.ResultExists,
		},
		{
			name: "self follow is a no-op", userID: 1, targetID: 1, target: target,
			wantResult: metrics.ResultSelf,
		},
		{
			name: "self follow rejected by the store is a no-op", userID: 2, targetID: 1, target: target,
			callExists: true, callCreate: true, createErr: models.ErrSelfFollow, wantResult: metrics.ResultSelf,
		},
		{
			name: "missing target", userID: 2, targetID: 9,
			wantErr: ErrUserNotFound, wantResult: metrics.ResultNotFound,
		},
		{
			name: "missing target wins over self follow", userID: 9, targetID: 9,
			wantErr: ErrUserNotFound, wantResult: metrics.ResultNotFound,
		},
		{
			name: "exists check error", userID: 2, targetID: 1, target: target,
			callExists: true, existsErr: errors.New("db error"), wantErr: errors.New("db error"),
		},
		{
			name: "store error", userID: 2, targetID: 1, target: target,
			callExists: true, callCreate: true, createErr: errors.New("db error"), wantErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers.EXPECT().GetByID(gomock.Any(), tt.targetID).Return(tt.target, tt.usersErr)
			if tt.callExists {
				mockReader.EXPECT().Exists(gomock.Any(), tt.userID, tt.targetID).Return(tt.exists, tt.existsErr)
			}
			if tt.callCreate {
				mockWriter.EXPECT().Create(gomock.Any(), tt.userID, tt.targetID).Return(tt.created, tt.createErr)
			}

			var before float64
			if tt.wantResult != "" {
				before = followCount("follow", tt.wantResult)
			}

			err := svc.Follow(ctx, tt.userID, tt.targetID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}

			if tt.wantResult != "" {
				assert.Equal(t, before+1, followCount("follow", tt.wantResult))
			}
		})
	}
}

func TestFollowingService_Unfollow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserReader(ctrl)
	mockReader := NewMockFollowingReader(ctrl)
	mockWriter := NewMockFollowingWriter(ctrl)
	svc := NewFollowingService(mockUsers, mockReader, mockWriter)
	ctx := context.Background()

	target := &models.UserDB{ID: 1}

	t.Run("removes edge", func(t *testing.T) {
		before := followCount("unfollow", metrics.ResultRemoved)
		mockUsers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(target, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(2), int64(1)).Return(int64(1), nil)

		assert.NoError(t, svc.Unfollow(ctx, 2, 1))
		assert.Equal(t, before+1, followCount("unfollow", metrics.ResultRemoved))
	})

	t.Run("missing edge", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(target, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(2), int64(1)).Return(int64(0), nil)

		assert.ErrorIs(t, svc.Unfollow(ctx, 2, 1), ErrFollowingNotFound)
	})

	t.Run("missing target", func(t *testing.T) {
		mockUsers.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, nil)

		assert.ErrorIs(t, svc.Unfollow(ctx, 2, 9), ErrUserNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockUsers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(target, nil)
		mockWriter.EXPECT().Delete(gomock.Any(), int64(2), int64(1)).Return(int64(0), dbErr)

		assert.ErrorIs(t, svc.Unfollow(ctx, 2, 1), dbErr)
	})
}

func TestFollowingService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := NewMockUserReader(ctrl)
	mockReader := NewMockFollowingReader(ctrl)
	mockWriter := NewMockFollowingWriter(ctrl)
	svc := NewFollowingService(mockUsers, mockReader, mockWriter)
	ctx := context.Background()

	summaries := []models.UserSummary{{ID: 2, Username: "bob"}, {ID: 3, Username: "carol"}}

	t.Run("following first page", func(t *testing.T) {
		mockReader.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(3, nil)
		mockReader.EXPECT().ListFollowing(gomock.Any(), int64(1), 2, 0).Return(summaries, nil)

		page, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Count)
		assert.Equal(t, summaries, page.Results)
	})

	t.Run("followers second page", func(t *testing.T) {
		mockReader.EXPECT().CountFollowers(gomock.Any(), int64(1)).Return(3, nil)
		mockReader.EXPECT().ListFollowers(gomock.Any(), int64(1), 2, 2).Return(summaries[:1], nil)

		page, err := svc.ListFollowers(ctx, 1, models.PageRequest{Page: 2, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, page.Count)
		assert.Len(t, page.Results, 1)
	})

	t.Run("empty first page skips the list query", func(t *testing.T) {
		mockReader.EXPECT().CountFollowers(gomock.Any(), int64(42)).Return(0, nil)

		page, err := svc.ListFollowers(ctx, 42, models.PageRequest{Page: 1, PageSize: 20})
		require.NoError(t, err)
		assert.Equal(t, 0, page.Count)
		assert.NotNil(t, page.Results)
		assert.Empty(t, page.Results)
	})

	t.Run("page past the end", func(t *testing.T) {
		mockReader.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(2, nil)

		_, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: 2, PageSize: 2})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("huge page does not wrap into a valid offset", func(t *testing.T) {
		mockReader.EXPECT().CountFollowers(gomock.Any(), int64(1)).Return(3, nil)

		_, err := svc.ListFollowers(ctx, 1, models.PageRequest{Page: 922337203685477581, PageSize: 20})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("huge page of an empty listing", func(t *testing.T) {
		mockReader.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(0, nil)

		_, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: math.MaxInt, PageSize: math.MaxInt})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("last partial page", func(t *testing.T) {
		mockReader.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(5, nil)
		mockReader.EXPECT().ListFollowing(gomock.Any(), int64(1), 2, 4).Return(summaries[:1], nil)

		page, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: 3, PageSize: 2})
		require.NoError(t, err)
		assert.Len(t, page.Results, 1)
	})

	t.Run("non-positive page", func(t *testing.T) {
		_, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: 0, PageSize: 2})
		assert.ErrorIs(t, err, ErrInvalidPage)
	})

	t.Run("count error", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockReader.EXPECT().CountFollowing(gomock.Any(), int64(1)).Return(0, dbErr)

		_, err := svc.ListFollowing(ctx, 1, models.PageRequest{Page: 1, PageSize: 2})
		assert.ErrorIs(t, err, dbErr)
	})
}
