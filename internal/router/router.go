package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"swipehire/internal/config"
	"swipehire/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	jobHandler *handler.JobHandler,
	swipeHandler *handler.SwipeHandler,
	profileHandler *handler.ProfileHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)
	api.POST("/auth/logout", authHandler.Logout)

	// Secured routes (require JWT authentication)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	// Job routes. Static paths registered before the :id parameter so
	// /jobs/feed and /jobs/search are not captured as ids.
	secured.POST("/jobs", jobHandler.CreateJob)
	secured.GET("/jobs", jobHandler.ListJobs)
	secured.GET("/jobs/feed", jobHandler.Feed)
	secured.GET("/jobs/search", jobHandler.Search)
	secured.GET("/jobs/:id", jobHandler.GetJob)
	secured.PUT("/jobs/:id", jobHandler.UpdateJob)
	secured.POST("/jobs/:id/deactivate", jobHandler.DeactivateJob)

	// Swipe routes
	secured.POST("/swipes", swipeHandler.CreateSwipe)
	secured.GET("/swipes/stats", swipeHandler.SwipeStats)

	// Profile routes
	secured.POST("/profiles", profileHandler.CreateProfile)
	secured.GET("/profiles", profileHandler.GetProfile)
	secured.PUT("/profiles", profileHandler.UpdateProfile)
	secured.POST("/profiles/upload/resume", profileHandler.UploadResume)
	secured.POST("/profiles/upload/picture", profileHandler.UploadPicture)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
