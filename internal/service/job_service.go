package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"swipehire/internal/errors"
	"swipehire/internal/model"
	"swipehire/internal/repository"
)

// JobInput carries the fields accepted when creating a posting.
type JobInput struct {
	Title              string
	Description        string
	RoleType           string
	ExperienceLevel    string
	RequiredSkills     []string
	PreferredSkills    []string
	Location           string
	RemoteType         string
	SalaryMin          *int
	SalaryMax          *int
	EquityOffered      bool
	CompanyName        string
	CompanyDescription string
	CompanySize        string
	CompanyFunding     string
	DurationDays       int
}

// JobPatch carries a partial update. Nil means "leave unchanged"; the set of
// fields here is the full allow-list of what a client may mutate. Identity
// fields (id, employer_id) and timestamps are not representable on purpose.
type JobPatch struct {
	Title              *string
	Description        *string
	RoleType           *string
	ExperienceLevel    *string
	RequiredSkills     *[]string
	PreferredSkills    *[]string
	Location           *string
	RemoteType         *string
	SalaryMin          *int
	SalaryMax          *int
	EquityOffered      *bool
	CompanyName        *string
	CompanyDescription *string
	CompanySize        *string
	CompanyFunding     *string
}

// JobService handles job posting operations.
type JobService interface {
	Create(ctx context.Context, employerID uint, userType string, in JobInput) (*model.Job, error)
	List(ctx context.Context, employerID uint, active bool) ([]model.Job, error)
	Get(ctx context.Context, jobID uint) (*model.Job, error)
	Update(ctx context.Context, callerID, jobID uint, patch JobPatch) (*model.Job, error)
	Deactivate(ctx context.Context, callerID, jobID uint) error
	Feed(ctx context.Context, userID uint) ([]model.Job, error)
	Search(ctx context.Context, filters repository.SearchFilters) ([]model.Job, error)
}

type jobService struct {
	jobRepo repository.JobRepository
	now     func() time.Time
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{
		jobRepo: jobRepo,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create persists a new posting for an employer. Required-field checks live
// in the handler's validator; the salary-range invariant is enforced here.
func (s *jobService) Create(ctx context.Context, employerID uint, userType string, in JobInput) (*model.Job, error) {
	if userType != model.UserTypeEmployer {
		return nil, errors.ErrEmployerOnly
	}
	if err := checkSalaryRange(in.SalaryMin, in.SalaryMax); err != nil {
		return nil, err
	}

	duration := in.DurationDays
	if duration <= 0 {
		duration = model.DefaultJobDurationDays
	}
	now := s.now()

	job := &model.Job{
		EmployerID:         employerID,
		Title:              in.Title,
		Description:        in.Description,
		RoleType:           in.RoleType,
		ExperienceLevel:    in.ExperienceLevel,
		RequiredSkills:     model.StringList(in.RequiredSkills),
		PreferredSkills:    model.StringList(in.PreferredSkills),
		Location:           in.Location,
		RemoteType:         in.RemoteType,
		SalaryMin:          in.SalaryMin,
		SalaryMax:          in.SalaryMax,
		EquityOffered:      in.EquityOffered,
		CompanyName:        in.CompanyName,
		CompanyDescription: in.CompanyDescription,
		CompanySize:        in.CompanySize,
		CompanyFunding:     in.CompanyFunding,
		IsActive:           true,
		ExpiresAt:          now.AddDate(0, 0, duration),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return job, nil
}

// List returns the employer's own postings matching the active flag.
func (s *jobService) List(ctx context.Context, employerID uint, active bool) ([]model.Job, error) {
	return s.jobRepo.ListByEmployer(ctx, employerID, active)
}

// Get returns a posting by id.
func (s *jobService) Get(ctx context.Context, jobID uint) (*model.Job, error) {
	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrJobNotFound
		}
		return nil, err
	}
	return job, nil
}

// Update applies an allow-listed partial update to a posting the caller owns.
// The salary invariant is checked against the merged stored and patched values.
func (s *jobService) Update(ctx context.Context, callerID, jobID uint, patch JobPatch) (*model.Job, error) {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.EmployerID != callerID {
		return nil, errors.ErrNotJobOwner
	}

	effMin, effMax := job.SalaryMin, job.SalaryMax
	if patch.SalaryMin != nil {
		effMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		effMax = patch.SalaryMax
	}
	if err := checkSalaryRange(effMin, effMax); err != nil {
		return nil, err
	}

	applyJobPatch(job, patch)

	if err := s.jobRepo.Save(ctx, job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Deactivate soft-disables a posting the caller owns. Calling it on an
// already-inactive job succeeds silently.
func (s *jobService) Deactivate(ctx context.Context, callerID, jobID uint) error {
	job, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if job.EmployerID != callerID {
		return errors.ErrNotJobOwner
	}
	return s.jobRepo.Deactivate(ctx, jobID)
}

// Feed returns eligible postings the user has not swiped on, newest first.
func (s *jobService) Feed(ctx context.Context, userID uint) ([]model.Job, error) {
	return s.jobRepo.ListFeed(ctx, userID, s.now())
}

// Search returns eligible postings matching the filters, newest first.
func (s *jobService) Search(ctx context.Context, filters repository.SearchFilters) ([]model.Job, error) {
	return s.jobRepo.Search(ctx, filters, s.now())
}

func checkSalaryRange(min, max *int) error {
	if min != nil && max != nil && *min > *max {
		return errors.ErrSalaryRange
	}
	return nil
}

func applyJobPatch(job *model.Job, patch JobPatch) {
	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.RoleType != nil {
		job.RoleType = *patch.RoleType
	}
	if patch.ExperienceLevel != nil {
		job.ExperienceLevel = *patch.ExperienceLevel
	}
	if patch.RequiredSkills != nil {
		job.RequiredSkills = model.StringList(*patch.RequiredSkills)
	}
	if patch.PreferredSkills != nil {
		job.PreferredSkills = model.StringList(*patch.PreferredSkills)
	}
	if patch.Location != nil {
		job.Location = *patch.Location
	}
	if patch.RemoteType != nil {
		job.RemoteType = *patch.RemoteType
	}
	if patch.SalaryMin != nil {
		job.SalaryMin = patch.SalaryMin
	}
	if patch.SalaryMax != nil {
		job.SalaryMax = patch.SalaryMax
	}
	if patch.EquityOffered != nil {
		job.EquityOffered = *patch.EquityOffered
	}
	if patch.CompanyName != nil {
		job.CompanyName = *patch.CompanyName
	}
	if patch.CompanyDescription != nil {
		job.CompanyDescription = *patch.CompanyDescription
	}
	if patch.CompanySize != nil {
		job.CompanySize = *patch.CompanySize
	}
	if patch.CompanyFunding != nil {
		job.CompanyFunding = *patch.CompanyFunding
	}
}
