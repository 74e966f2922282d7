package model

import "time"

// Profile is the one-to-one candidate extension of a User.
type Profile struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	UserID             uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	FullName           string `json:"full_name" gorm:"size:100;not null"`
	Bio                string `json:"bio" gorm:"type:text"`
	ProfilePicturePath string `json:"profile_picture_path" gorm:"size:255"`
	ResumePath         string `json:"resume_path" gorm:"size:255"`

	Title             string     `json:"title" gorm:"size:100"`
	YearsOfExperience *int       `json:"years_of_experience"`
	Skills            StringList `json:"skills" gorm:"size:500"`

	PreferredRoleTypes    StringList `json:"preferred_role_types" gorm:"size:500"`
	PreferredLocations    StringList `json:"preferred_locations" gorm:"size:500"`
	RemotePreference      string     `json:"remote_preference" gorm:"size:20"`
	SalaryExpectationMin  *int       `json:"salary_expectation_min"`
	SalaryExpectationMax  *int       `json:"salary_expectation_max"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
