package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrJobNotFound is returned when a job posting does not exist.
	ErrJobNotFound = errors.New("job not found")
	// ErrNotJobOwner is returned when a caller mutates a job they do not own.
	ErrNotJobOwner = errors.New("only the posting employer may modify this job")
	// ErrEmployerOnly is returned when a candidate attempts an employer operation.
	ErrEmployerOnly = errors.New("only employer accounts may post jobs")
	// ErrSalaryRange is returned when salary_min exceeds salary_max.
	ErrSalaryRange = errors.New("minimum salary cannot be greater than maximum salary")
	// ErrAlreadySwiped is returned when a user swipes the same job twice.
	ErrAlreadySwiped = errors.New("already swiped on this job")
	// ErrProfileNotFound is returned when a user has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when creating a second profile for a user.
	ErrProfileExists = errors.New("profile already exists")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrJobNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "JOB_NOT_FOUND")
	case ErrNotJobOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_JOB_OWNER")
	case ErrEmployerOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "EMPLOYER_ONLY")
	case ErrSalaryRange:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_SALARY_RANGE")
	case ErrAlreadySwiped:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_SWIPED")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrProfileExists:
		return NewHTTPError(http.StatusConflict, err.Error(), "PROFILE_EXISTS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
