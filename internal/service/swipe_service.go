package service

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"swipehire/internal/errors"
	"swipehire/internal/model"
	"swipehire/internal/repository"
)

// SwipeStats aggregates a user's swipe counts.
type SwipeStats struct {
	TotalSwipes int64 `json:"total_swipes"`
	LikedJobs   int64 `json:"liked_jobs"`
}

// SwipeService handles swipe ledger operations.
type SwipeService interface {
	Record(ctx context.Context, userID, jobID uint, liked bool) (*model.Swipe, error)
	Stats(ctx context.Context, userID uint) (*SwipeStats, error)
}

type swipeService struct {
	swipeRepo repository.SwipeRepository
	jobRepo   repository.JobRepository
}

// NewSwipeService creates a new swipe service.
func NewSwipeService(swipeRepo repository.SwipeRepository, jobRepo repository.JobRepository) SwipeService {
	return &swipeService{
		swipeRepo: swipeRepo,
		jobRepo:   jobRepo,
	}
}

// Record creates an immutable swipe for a (user, job) pair. The job must
// exist; a second swipe on the same pair fails. The pre-check gives the
// common case a clean error, the unique index settles concurrent inserts.
func (s *swipeService) Record(ctx context.Context, userID, jobID uint, liked bool) (*model.Swipe, error) {
	if _, err := s.jobRepo.FindByID(ctx, jobID); err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}

	existing, err := s.swipeRepo.FindByUserAndJob(ctx, userID, jobID)
	if err == nil && existing != nil {
		return nil, errors.ErrAlreadySwiped
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing swipe: %w", err)
	}

	swipe := &model.Swipe{
		UserID: userID,
		JobID:  jobID,
		Liked:  liked,
	}

	if err := s.swipeRepo.Create(ctx, swipe); err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrAlreadySwiped
		}
		return nil, fmt.Errorf("create swipe: %w", err)
	}
	return swipe, nil
}

// Stats returns total and liked swipe counts for a user.
func (s *swipeService) Stats(ctx context.Context, userID uint) (*SwipeStats, error) {
	total, err := s.swipeRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count swipes: %w", err)
	}
	liked, err := s.swipeRepo.CountLikedByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count liked swipes: %w", err)
	}
	return &SwipeStats{TotalSwipes: total, LikedJobs: liked}, nil
}
