package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// identity is the authenticated caller extracted from the JWT middleware.
type identity struct {
	UserID   uint
	UserType string
}

// currentIdentity reads the verified token the echo-jwt middleware stored on
// the context and pulls out the numeric subject and user type.
func currentIdentity(c echo.Context) (identity, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token claims")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid user id in token")
	}
	userType, _ := claims["user_type"].(string)

	return identity{UserID: uint(userID), UserType: userType}, nil
}
