package model

import "time"

// Remote work arrangements accepted on jobs and profile preferences.
const (
	RemoteTypeRemote = "remote"
	RemoteTypeHybrid = "hybrid"
	RemoteTypeOnsite = "onsite"
)

// DefaultJobDurationDays is how long a posting stays live unless the
// employer overrides it at creation time.
const DefaultJobDurationDays = 30

// Job represents a posting owned by exactly one employer. A job is eligible
// for the feed and search while is_active is true and expires_at is in the
// future; deactivation is terminal under this API.
type Job struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	EmployerID uint   `json:"employer_id" gorm:"not null;index"`
	Title      string `json:"title" gorm:"size:100;not null"`
	Description string `json:"description" gorm:"type:text;not null"`

	RoleType        string     `json:"role_type" gorm:"size:50;not null"`
	ExperienceLevel string     `json:"experience_level" gorm:"size:50"`
	RequiredSkills  StringList `json:"required_skills" gorm:"size:500"`
	PreferredSkills StringList `json:"preferred_skills" gorm:"size:500"`

	Location   string `json:"location" gorm:"size:100"`
	RemoteType string `json:"remote_type" gorm:"size:20"`

	SalaryMin     *int `json:"salary_min"`
	SalaryMax     *int `json:"salary_max"`
	EquityOffered bool `json:"equity_offered" gorm:"default:false"`

	CompanyName        string `json:"company_name" gorm:"size:100;not null"`
	CompanyDescription string `json:"company_description" gorm:"type:text"`
	CompanySize        string `json:"company_size" gorm:"size:50"`
	CompanyFunding     string `json:"company_funding" gorm:"size:50"`

	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at" gorm:"index"`
}
