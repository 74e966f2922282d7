package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"swipehire/internal/errors"
	"swipehire/internal/service"
)

// ProfileHandler handles candidate profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// CreateProfileRequest represents a profile creation request.
type CreateProfileRequest struct {
	FullName             string   `json:"full_name" validate:"required"`
	Bio                  string   `json:"bio"`
	Title                string   `json:"title"`
	YearsOfExperience    *int     `json:"years_of_experience"`
	Skills               []string `json:"skills"`
	PreferredRoleTypes   []string `json:"preferred_role_types"`
	PreferredLocations   []string `json:"preferred_locations"`
	RemotePreference     string   `json:"remote_preference" validate:"omitempty,oneof=remote hybrid onsite"`
	SalaryExpectationMin *int     `json:"salary_expectation_min"`
	SalaryExpectationMax *int     `json:"salary_expectation_max"`
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	FullName             *string   `json:"full_name"`
	Bio                  *string   `json:"bio"`
	Title                *string   `json:"title"`
	YearsOfExperience    *int      `json:"years_of_experience"`
	Skills               *[]string `json:"skills"`
	PreferredRoleTypes   *[]string `json:"preferred_role_types"`
	PreferredLocations   *[]string `json:"preferred_locations"`
	RemotePreference     *string   `json:"remote_preference" validate:"omitempty,oneof=remote hybrid onsite"`
	SalaryExpectationMin *int      `json:"salary_expectation_min"`
	SalaryExpectationMax *int      `json:"salary_expectation_max"`
}

// UploadResponse represents a successful file upload.
type UploadResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

// CreateProfile godoc
// @Summary Create the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProfileRequest true "Profile payload"
// @Success 201 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /profiles [post]
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Create(c.Request().Context(), ident.UserID, service.ProfileInput{
		FullName:             req.FullName,
		Bio:                  req.Bio,
		Title:                req.Title,
		YearsOfExperience:    req.YearsOfExperience,
		Skills:               req.Skills,
		PreferredRoleTypes:   req.PreferredRoleTypes,
		PreferredLocations:   req.PreferredLocations,
		RemotePreference:     req.RemotePreference,
		SalaryExpectationMin: req.SalaryExpectationMin,
		SalaryExpectationMax: req.SalaryExpectationMax,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, profile)
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Profile
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	profile, err := h.profileService.Get(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Update the caller's profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Partial profile payload"
// @Success 200 {object} model.Profile
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	profile, err := h.profileService.Update(c.Request().Context(), ident.UserID, service.ProfilePatch{
		FullName:             req.FullName,
		Bio:                  req.Bio,
		Title:                req.Title,
		YearsOfExperience:    req.YearsOfExperience,
		Skills:               req.Skills,
		PreferredRoleTypes:   req.PreferredRoleTypes,
		PreferredLocations:   req.PreferredLocations,
		RemotePreference:     req.RemotePreference,
		SalaryExpectationMin: req.SalaryExpectationMin,
		SalaryExpectationMax: req.SalaryExpectationMax,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, profile)
}

// UploadResume godoc
// @Summary Upload the caller's resume
// @Tags profiles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Resume file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/upload/resume [post]
func (h *ProfileHandler) UploadResume(c echo.Context) error {
	return h.upload(c, h.profileService.AttachResume, "resume uploaded successfully")
}

// UploadPicture godoc
// @Summary Upload the caller's profile picture
// @Tags profiles
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Picture file"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /profiles/upload/picture [post]
func (h *ProfileHandler) UploadPicture(c echo.Context) error {
	return h.upload(c, h.profileService.AttachPicture, "picture uploaded successfully")
}

func (h *ProfileHandler) upload(c echo.Context, attach service.AttachFunc, message string) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "no file provided",
			Code:  "NO_FILE",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "cannot read uploaded file",
			Code:  "BAD_FILE",
		})
	}
	defer src.Close()

	path, err := attach(c.Request().Context(), ident.UserID, fileHeader.Filename, src)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, UploadResponse{
		Message: message,
		Path:    path,
	})
}
