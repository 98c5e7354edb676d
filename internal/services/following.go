package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-social-graph/internal/logger"
	"github.com/sbilibin2017/gw-social-graph/internal/metrics"
	"github.com/sbilibin2017/gw-social-graph/internal/models"
)

//go:generate mockgen -source=following.go -destination=following_mock.go -package=services

// FollowingReader defines read operations on follow edges.
type FollowingReader interface {
	Exists(ctx context.Context, userID, followingUserID int64) (bool, error)
	CountFollowing(ctx context.Context, userID int64) (int, error)
	ListFollowing(ctx context.Context, userID int64, limit, offset int) ([]models.UserSummary, error)
	CountFollowers(ctx context.Context, userID int64) (int, error)
	ListFollowers(ctx context.Context, userID int64, limit, offset int) ([]models.UserSummary, error)
}

// FollowingWriter defines write operations on follow edges.
type FollowingWriter interface {
	Create(ctx context.Context, userID, followingUserID int64) (bool, error)
	Delete(ctx context.Context, userID, followingUserID int64) (int64, error)
}

// FollowingService manages the follow graph.
type FollowingService struct {
	users  UserReader
	reader FollowingReader
	writer FollowingWriter
}

// NewFollowingService creates a new FollowingService instance.
func NewFollowingService(users UserReader, reader FollowingReader, writer FollowingWriter) *FollowingService {
	return &FollowingService{
		users:  users,
		reader: reader,
		writer: writer,
	}
}

// Follow makes userID follow targetID. Following yourself and following twice both succeed
// without creating an edge.
func (svc *FollowingService) Follow(ctx context.Context, userID, targetID int64) error {
	log := logger.FromContext(ctx)

	if err := svc.ensureUser(ctx, targetID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.RecordFollow("follow", metrics.ResultNotFound)
		}
		return err
	}

	if userID == targetID {
		metrics.RecordFollow("follow", metrics.ResultSelf)
		return nil
	}

	exists, err := svc.reader.Exists(ctx, userID, targetID)
	if err != nil {
		log.Errorw("failed to check following", "user_id", userID, "following_user_id", targetID, "err", err)
		return err
	}
	if exists {
		metrics.RecordFollow("follow", metrics.ResultExists)
		return nil
	}

	// a concurrent follow can still win the race; Create reports that as not created
	created, err := svc.writer.Create(ctx, userID, targetID)
	switch {
	case errors.Is(err, models.ErrDuplicateFollowing):
		created = false
	case errors.Is(err, models.ErrSelfFollow):
		metrics.RecordFollow("follow", metrics.ResultSelf)
		return nil
	case err != nil:
		log.Errorw("failed to create following", "user_id", userID, "following_user_id", targetID, "err", err)
		return err
	}

	if created {
		metrics.RecordFollow("follow", metrics.ResultCreated)
		log.Infow("user followed", "user_id", userID, "following_user_id", targetID)
	} else {
		metrics.RecordFollow("follow", metrics.ResultExists)
	}
	return nil
}

// Unfollow removes the edge userID -> targetID. Both a missing target and a missing
// edge yield an error.
func (svc *FollowingService) Unfollow(ctx context.Context, userID, targetID int64) error {
	log := logger.FromContext(ctx)

	if err := svc.ensureUser(ctx, targetID); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.RecordFollow("unfollow", metrics.ResultNotFound)
		}
		return err
	}

	deleted, err := svc.writer.Delete(ctx, userID, targetID)
	if err != nil {
		log.Errorw("failed to delete following", "user_id", userID, "following_user_id", targetID, "err", err)
		return err
	}
	if deleted == 0 {
		metrics.RecordFollow("unfollow", metrics.ResultNotFound)
		return ErrFollowingNotFound
	}

	metrics.RecordFollow("unfollow", metrics.ResultRemoved)
	log.Infow("user unfollowed", "user_id", userID, "following_user_id", targetID)
	return nil
}

// ListFollowing returns one page of the users userID follows.
func (svc *FollowingService) ListFollowing(ctx context.Context, userID int64, page models.PageRequest) (*models.UserSummaryPage, error) {
	return svc.list(ctx, userID, page, svc.reader.CountFollowing, svc.reader.ListFollowing)
}

// ListFollowers returns one page of the users following userID.
func (svc *FollowingService) ListFollowers(ctx context.Context, userID int64, page models.PageRequest) (*models.UserSummaryPage, error) {
	return svc.list(ctx, userID, page, svc.reader.CountFollowers, svc.reader.ListFollowers)
}

func (svc *FollowingService) list(
	ctx context.Context,
	userID int64,
	page models.PageRequest,
	count func(ctx context.Context, userID int64) (int, error),
	list func(ctx context.Context, userID int64, limit, offset int) ([]models.UserSummary, error),
) (*models.UserSummaryPage, error) {
	log := logger.FromContext(ctx)

	if page.Page < 1 || page.PageSize < 1 {
		return nil, ErrInvalidPage
	}

	total, err := count(ctx, userID)
	if err != nil {
		log.Errorw("failed to count followings", "user_id", userID, "err", err)
		return nil, err
	}

	// Page 1 is always valid, even when empty.
	if page.Page > page.Pages(total) {
		return nil, ErrInvalidPage
	}

	results := []models.UserSummary{}
	if total > 0 {
		results, err = list(ctx, userID, page.PageSize, page.Offset())
		if err != nil {
			log.Errorw("failed to list followings", "user_id", userID, "err", err)
			return nil, err
		}
	}

	return &models.UserSummaryPage{Count: total, Results: results}, nil
}

func (svc *FollowingService) ensureUser(ctx context.Context, id int64) error {
	user, err := svc.users.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to get user", "id", id, "err", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}
