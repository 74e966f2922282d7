package model

import "time"

// User types distinguish job seekers from posters.
const (
	UserTypeCandidate = "candidate"
	UserTypeEmployer  = "employer"
)

// User represents an authenticated user in the system.
type User struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	UserType     string     `json:"user_type" gorm:"size:20;not null;index"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsEmployer reports whether the user may own job postings.
func (u *User) IsEmployer() bool {
	return u.UserType == UserTypeEmployer
}
