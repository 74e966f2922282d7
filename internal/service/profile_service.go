package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"

	"gorm.io/gorm"

	"swipehire/internal/errors"
	"swipehire/internal/model"
	"swipehire/internal/repository"
	"swipehire/internal/storage"
)

// Upload categories map to subdirectories of the file store root.
const (
	resumeCategory  = "resumes"
	pictureCategory = "pictures"
)

// ProfileInput carries the fields accepted when creating a profile.
type ProfileInput struct {
	FullName             string
	Bio                  string
	Title                string
	YearsOfExperience    *int
	Skills               []string
	PreferredRoleTypes   []string
	PreferredLocations   []string
	RemotePreference     string
	SalaryExpectationMin *int
	SalaryExpectationMax *int
}

// ProfilePatch carries a partial update; nil means "leave unchanged".
type ProfilePatch struct {
	FullName             *string
	Bio                  *string
	Title                *string
	YearsOfExperience    *int
	Skills               *[]string
	PreferredRoleTypes   *[]string
	PreferredLocations   *[]string
	RemotePreference     *string
	SalaryExpectationMin *int
	SalaryExpectationMax *int
}

// AttachFunc is the shared signature of the profile upload operations.
type AttachFunc func(ctx context.Context, userID uint, filename string, r io.Reader) (string, error)

// ProfileService handles candidate profile operations.
type ProfileService interface {
	Create(ctx context.Context, userID uint, in ProfileInput) (*model.Profile, error)
	Get(ctx context.Context, userID uint) (*model.Profile, error)
	Update(ctx context.Context, userID uint, patch ProfilePatch) (*model.Profile, error)
	AttachResume(ctx context.Context, userID uint, filename string, r io.Reader) (string, error)
	AttachPicture(ctx context.Context, userID uint, filename string, r io.Reader) (string, error)
}

type profileService struct {
	profileRepo repository.ProfileRepository
	files       storage.FileStore
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, files storage.FileStore) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		files:       files,
	}
}

// Create persists a profile for a user who does not have one yet.
func (s *profileService) Create(ctx context.Context, userID uint, in ProfileInput) (*model.Profile, error) {
	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err == nil && existing != nil {
		return nil, errors.ErrProfileExists
	}
	if err != nil && !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing profile: %w", err)
	}

	profile := &model.Profile{
		UserID:               userID,
		FullName:             in.FullName,
		Bio:                  in.Bio,
		Title:                in.Title,
		YearsOfExperience:    in.YearsOfExperience,
		Skills:               listOrEmpty(in.Skills),
		PreferredRoleTypes:   listOrEmpty(in.PreferredRoleTypes),
		PreferredLocations:   listOrEmpty(in.PreferredLocations),
		RemotePreference:     in.RemotePreference,
		SalaryExpectationMin: in.SalaryExpectationMin,
		SalaryExpectationMax: in.SalaryExpectationMax,
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// Unique index on user_id closes the check/insert race.
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return profile, nil
}

// Get returns the profile for a user.
func (s *profileService) Get(ctx context.Context, userID uint) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Update applies an allow-listed partial update to the caller's profile.
func (s *profileService) Update(ctx context.Context, userID uint, patch ProfilePatch) (*model.Profile, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyProfilePatch(profile, patch)

	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return profile, nil
}

// AttachResume stores the resume blob and records its path on the profile.
// The stored name derives from the user id, so re-uploads overwrite the
// previous resume. The file is written before the path is committed.
func (s *profileService) AttachResume(ctx context.Context, userID uint, filename string, r io.Reader) (string, error) {
	return s.attach(ctx, userID, resumeCategory, "resume", filename, r, func(p *model.Profile, path string) {
		p.ResumePath = path
	})
}

// AttachPicture stores the profile picture blob, same mechanics as resumes.
func (s *profileService) AttachPicture(ctx context.Context, userID uint, filename string, r io.Reader) (string, error) {
	return s.attach(ctx, userID, pictureCategory, "picture", filename, r, func(p *model.Profile, path string) {
		p.ProfilePicturePath = path
	})
}

func (s *profileService) attach(ctx context.Context, userID uint, category, prefix, filename string, r io.Reader, set func(*model.Profile, string)) (string, error) {
	profile, err := s.Get(ctx, userID)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s_%d%s", prefix, userID, filepath.Ext(filename))
	path, err := s.files.Save(ctx, category, name, r)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}

	set(profile, path)
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return "", fmt.Errorf("record upload path: %w", err)
	}
	return path, nil
}

func listOrEmpty(in []string) model.StringList {
	if in == nil {
		return model.StringList{}
	}
	return model.StringList(in)
}

func applyProfilePatch(profile *model.Profile, patch ProfilePatch) {
	if patch.FullName != nil {
		profile.FullName = *patch.FullName
	}
	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.Title != nil {
		profile.Title = *patch.Title
	}
	if patch.YearsOfExperience != nil {
		profile.YearsOfExperience = patch.YearsOfExperience
	}
	if patch.Skills != nil {
		profile.Skills = model.StringList(*patch.Skills)
	}
	if patch.PreferredRoleTypes != nil {
		profile.PreferredRoleTypes = model.StringList(*patch.PreferredRoleTypes)
	}
	if patch.PreferredLocations != nil {
		profile.PreferredLocations = model.StringList(*patch.PreferredLocations)
	}
	if patch.RemotePreference != nil {
		profile.RemotePreference = *patch.RemotePreference
	}
	if patch.SalaryExpectationMin != nil {
		profile.SalaryExpectationMin = patch.SalaryExpectationMin
	}
	if patch.SalaryExpectationMax != nil {
		profile.SalaryExpectationMax = patch.SalaryExpectationMax
	}
}
