package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"swipehire/internal/errors"
	"swipehire/internal/repository"
	"swipehire/internal/service"
)

// JobHandler handles job posting endpoints.
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest represents a job creation request.
type CreateJobRequest struct {
	Title              string   `json:"title" validate:"required"`
	Description        string   `json:"description" validate:"required"`
	RoleType           string   `json:"role_type" validate:"required"`
	ExperienceLevel    string   `json:"experience_level"`
	RequiredSkills     []string `json:"required_skills"`
	PreferredSkills    []string `json:"preferred_skills"`
	Location           string   `json:"location"`
	RemoteType         string   `json:"remote_type" validate:"omitempty,oneof=remote hybrid onsite"`
	SalaryMin          *int     `json:"salary_min"`
	SalaryMax          *int     `json:"salary_max"`
	EquityOffered      bool     `json:"equity_offered"`
	CompanyName        string   `json:"company_name" validate:"required"`
	CompanyDescription string   `json:"company_description"`
	CompanySize        string   `json:"company_size"`
	CompanyFunding     string   `json:"company_funding"`
	DurationDays       int      `json:"duration_days" validate:"omitempty,min=1"`
}

// UpdateJobRequest represents a partial job update. Absent fields stay
// untouched; id and employer_id are not bindable here at all.
type UpdateJobRequest struct {
	Title              *string   `json:"title"`
	Description        *string   `json:"description"`
	RoleType           *string   `json:"role_type"`
	ExperienceLevel    *string   `json:"experience_level"`
	RequiredSkills     *[]string `json:"required_skills"`
	PreferredSkills    *[]string `json:"preferred_skills"`
	Location           *string   `json:"location"`
	RemoteType         *string   `json:"remote_type" validate:"omitempty,oneof=remote hybrid onsite"`
	SalaryMin          *int      `json:"salary_min"`
	SalaryMax          *int      `json:"salary_max"`
	EquityOffered      *bool     `json:"equity_offered"`
	CompanyName        *string   `json:"company_name"`
	CompanyDescription *string   `json:"company_description"`
	CompanySize        *string   `json:"company_size"`
	CompanyFunding     *string   `json:"company_funding"`
}

// CreateJob godoc
// @Summary Create a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateJobRequest true "Job payload"
// @Success 201 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	var req CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Create(c.Request().Context(), ident.UserID, ident.UserType, service.JobInput{
		Title:              req.Title,
		Description:        req.Description,
		RoleType:           req.RoleType,
		ExperienceLevel:    req.ExperienceLevel,
		RequiredSkills:     req.RequiredSkills,
		PreferredSkills:    req.PreferredSkills,
		Location:           req.Location,
		RemoteType:         req.RemoteType,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		EquityOffered:      req.EquityOffered,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanySize:        req.CompanySize,
		CompanyFunding:     req.CompanyFunding,
		DurationDays:       req.DurationDays,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, job)
}

// ListJobs godoc
// @Summary List the caller's job postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param active query bool false "Active flag (default true)"
// @Success 200 {array} model.Job
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	active := true
	if v := c.QueryParam("active"); v != "" {
		active = v == "true"
	}

	jobs, err := h.jobService.List(c.Request().Context(), ident.UserID, active)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job posting by id
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} model.Job
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c echo.Context) error {
	jobID, err := parseID(c)
	if err != nil {
		return err
	}

	job, err := h.jobService.Get(c.Request().Context(), jobID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary Update a job posting
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Param request body UpdateJobRequest true "Partial job payload"
// @Success 200 {object} model.Job
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := parseID(c)
	if err != nil {
		return err
	}

	var req UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.jobService.Update(c.Request().Context(), ident.UserID, jobID, service.JobPatch{
		Title:              req.Title,
		Description:        req.Description,
		RoleType:           req.RoleType,
		ExperienceLevel:    req.ExperienceLevel,
		RequiredSkills:     req.RequiredSkills,
		PreferredSkills:    req.PreferredSkills,
		Location:           req.Location,
		RemoteType:         req.RemoteType,
		SalaryMin:          req.SalaryMin,
		SalaryMax:          req.SalaryMax,
		EquityOffered:      req.EquityOffered,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		CompanySize:        req.CompanySize,
		CompanyFunding:     req.CompanyFunding,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, job)
}

// DeactivateJob godoc
// @Summary Deactivate a job posting
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /jobs/{id}/deactivate [post]
func (h *JobHandler) DeactivateJob(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}
	jobID, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.jobService.Deactivate(c.Request().Context(), ident.UserID, jobID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "job deactivated successfully",
	})
}

// Feed godoc
// @Summary Candidate job feed
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Job
// @Router /jobs/feed [get]
func (h *JobHandler) Feed(c echo.Context) error {
	ident, err := currentIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.jobService.Feed(c.Request().Context(), ident.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

// Search godoc
// @Summary Search job postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param role_type query string false "Exact role type"
// @Param location query string false "Location substring"
// @Param remote_type query string false "Exact remote type"
// @Param min_salary query int false "Keep jobs whose salary_max is at least this"
// @Success 200 {array} model.Job
// @Router /jobs/search [get]
func (h *JobHandler) Search(c echo.Context) error {
	if _, err := currentIdentity(c); err != nil {
		return err
	}

	filters := repository.SearchFilters{
		RoleType:   c.QueryParam("role_type"),
		Location:   c.QueryParam("location"),
		RemoteType: c.QueryParam("remote_type"),
	}
	if v := c.QueryParam("min_salary"); v != "" {
		minSalary, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid min_salary")
		}
		filters.MinSalary = &minSalary
	}

	jobs, err := h.jobService.Search(c.Request().Context(), filters)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, jobs)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
