package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"swipehire/internal/errors"
	"swipehire/internal/model"
)

func TestSwipeService_Record(t *testing.T) {
	job := &model.Job{ID: 3, EmployerID: 1, IsActive: true}

	tests := []struct {
		name          string
		liked         bool
		setupMock     func(*MockSwipeRepository, *MockJobRepository)
		expectedError error
	}{
		{
			name:  "first swipe succeeds",
			liked: true,
			setupMock: func(mSwipe *MockSwipeRepository, mJob *MockJobRepository) {
				mJob.On("FindByID", mock.Anything, uint(3)).Return(job, nil)
				mSwipe.On("FindByUserAndJob", mock.Anything, uint(5), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mSwipe.On("Create", mock.Anything, mock.AnythingOfType("*model.Swipe")).Return(nil)
			},
		},
		{
			name:  "pass swipe succeeds",
			liked: false,
			setupMock: func(mSwipe *MockSwipeRepository, mJob *MockJobRepository) {
				mJob.On("FindByID", mock.Anything, uint(3)).Return(job, nil)
				mSwipe.On("FindByUserAndJob", mock.Anything, uint(5), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mSwipe.On("Create", mock.Anything, mock.AnythingOfType("*model.Swipe")).Return(nil)
			},
		},
		{
			name:  "second swipe conflicts",
			liked: true,
			setupMock: func(mSwipe *MockSwipeRepository, mJob *MockJobRepository) {
				mJob.On("FindByID", mock.Anything, uint(3)).Return(job, nil)
				mSwipe.On("FindByUserAndJob", mock.Anything, uint(5), uint(3)).
					Return(&model.Swipe{ID: 1, UserID: 5, JobID: 3, Liked: true}, nil)
			},
			expectedError: errors.ErrAlreadySwiped,
		},
		{
			name:  "concurrent duplicate hits unique index",
			liked: true,
			setupMock: func(mSwipe *MockSwipeRepository, mJob *MockJobRepository) {
				mJob.On("FindByID", mock.Anything, uint(3)).Return(job, nil)
				mSwipe.On("FindByUserAndJob", mock.Anything, uint(5), uint(3)).Return(nil, gorm.ErrRecordNotFound)
				mSwipe.On("Create", mock.Anything, mock.AnythingOfType("*model.Swipe")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: errors.ErrAlreadySwiped,
		},
		{
			name:  "unknown job",
			liked: true,
			setupMock: func(mSwipe *MockSwipeRepository, mJob *MockJobRepository) {
				mJob.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrJobNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSwipeRepo := new(MockSwipeRepository)
			mockJobRepo := new(MockJobRepository)
			tt.setupMock(mockSwipeRepo, mockJobRepo)

			svc := NewSwipeService(mockSwipeRepo, mockJobRepo)
			swipe, err := svc.Record(context.Background(), 5, 3, tt.liked)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, swipe)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, swipe)
				assert.Equal(t, uint(5), swipe.UserID)
				assert.Equal(t, uint(3), swipe.JobID)
				assert.Equal(t, tt.liked, swipe.Liked)
			}

			mockSwipeRepo.AssertExpectations(t)
			mockJobRepo.AssertExpectations(t)
		})
	}
}

func TestSwipeService_Stats(t *testing.T) {
	mockSwipeRepo := new(MockSwipeRepository)
	mockSwipeRepo.On("CountByUser", mock.Anything, uint(5)).Return(int64(4), nil)
	mockSwipeRepo.On("CountLikedByUser", mock.Anything, uint(5)).Return(int64(3), nil)

	svc := NewSwipeService(mockSwipeRepo, new(MockJobRepository))
	stats, err := svc.Stats(context.Background(), 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalSwipes)
	assert.Equal(t, int64(3), stats.LikedJobs)
	mockSwipeRepo.AssertExpectations(t)
}
