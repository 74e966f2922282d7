package model

import "time"

// Swipe records a one-time like/pass decision by a user on a job. Rows are
// immutable; the composite unique index enforces at most one swipe per
// (user, job) pair even under concurrent inserts.
type Swipe struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_swipes_user_job"`
	JobID     uint      `json:"job_id" gorm:"not null;uniqueIndex:idx_swipes_user_job"`
	Liked     bool      `json:"liked" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
