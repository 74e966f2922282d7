package repository

import (
	"context"

	"gorm.io/gorm"

	"swipehire/internal/model"
)

// SwipeRepository defines swipe persistence operations. Swipes are immutable,
// so there is no update path.
type SwipeRepository interface {
	Create(ctx context.Context, swipe *model.Swipe) error
	FindByUserAndJob(ctx context.Context, userID, jobID uint) (*model.Swipe, error)
	CountByUser(ctx context.Context, userID uint) (int64, error)
	CountLikedByUser(ctx context.Context, userID uint) (int64, error)
}

type swipeRepository struct {
	db *gorm.DB
}

// NewSwipeRepository creates a new swipe repository.
func NewSwipeRepository(db *gorm.DB) SwipeRepository {
	return &swipeRepository{db: db}
}

// Create inserts a swipe. The unique index on (user_id, job_id) makes a
// duplicate insert fail with gorm.ErrDuplicatedKey.
func (r *swipeRepository) Create(ctx context.Context, swipe *model.Swipe) error {
	return r.db.WithContext(ctx).Create(swipe).Error
}

// FindByUserAndJob finds the swipe for a (user, job) pair.
func (r *swipeRepository) FindByUserAndJob(ctx context.Context, userID, jobID uint) (*model.Swipe, error) {
	var swipe model.Swipe
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		First(&swipe).Error
	if err != nil {
		return nil, err
	}
	return &swipe, nil
}

// CountByUser counts all swipes by a user.
func (r *swipeRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Swipe{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountLikedByUser counts a user's swipes with liked=true.
func (r *swipeRepository) CountLikedByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Swipe{}).
		Where("user_id = ? AND liked = ?", userID, true).
		Count(&count).Error
	return count, err
}
