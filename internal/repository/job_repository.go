package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"swipehire/internal/model"
)

// SearchFilters are the optional, AND-combined job search predicates.
type SearchFilters struct {
	RoleType   string
	Location   string
	RemoteType string
	MinSalary  *int
}

// JobRepository defines job persistence operations.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) error
	Save(ctx context.Context, job *model.Job) error
	FindByID(ctx context.Context, id uint) (*model.Job, error)
	ListByEmployer(ctx context.Context, employerID uint, active bool) ([]model.Job, error)
	ListFeed(ctx context.Context, userID uint, now time.Time) ([]model.Job, error)
	Search(ctx context.Context, filters SearchFilters, now time.Time) ([]model.Job, error)
	Deactivate(ctx context.Context, id uint) error
}

type jobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository.
func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create creates a new job posting.
func (r *jobRepository) Create(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Save updates an existing job posting.
func (r *jobRepository) Save(ctx context.Context, job *model.Job) error {
	return r.db.WithContext(ctx).Save(job).Error
}

// FindByID finds a job by ID.
func (r *jobRepository) FindByID(ctx context.Context, id uint) (*model.Job, error) {
	var job model.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// ListByEmployer lists an employer's jobs filtered by active flag, newest first.
func (r *jobRepository) ListByEmployer(ctx context.Context, employerID uint, active bool) ([]model.Job, error) {
	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("employer_id = ? AND is_active = ?", employerID, active).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListFeed lists eligible jobs the user has not swiped on yet, newest first.
func (r *jobRepository) ListFeed(ctx context.Context, userID uint, now time.Time) ([]model.Job, error) {
	swiped := r.db.Model(&model.Swipe{}).
		Select("job_id").
		Where("user_id = ?", userID)

	var jobs []model.Job
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND expires_at > ?", true, now).
		Where("id NOT IN (?)", swiped).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// Search lists eligible jobs matching the given filters, newest first.
func (r *jobRepository) Search(ctx context.Context, filters SearchFilters, now time.Time) ([]model.Job, error) {
	q := r.db.WithContext(ctx).
		Where("is_active = ? AND expires_at > ?", true, now)

	if filters.RoleType != "" {
		q = q.Where("role_type = ?", filters.RoleType)
	}
	if filters.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filters.Location)+"%")
	}
	if filters.RemoteType != "" {
		q = q.Where("remote_type = ?", filters.RemoteType)
	}
	if filters.MinSalary != nil {
		q = q.Where("salary_max >= ?", *filters.MinSalary)
	}

	var jobs []model.Job
	if err := q.Order("created_at DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// Deactivate soft-disables a job. Idempotent by construction.
func (r *jobRepository) Deactivate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Job{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
