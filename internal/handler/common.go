// Package handler contains the HTTP handlers of the booking service.
// Handlers bind and validate requests, orchestrate repositories and
// domain logic, and map every failure onto its HTTP status and client
// message. Nothing below this layer knows about HTTP.
package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// getUserID extracts the authenticated user's UUID from the echo
// context. The JWT middleware stores the subject claim under
// "user_id" as a string; anything else means the middleware did not
// run or the token was malformed.
func getUserID(c echo.Context) (string, error) {
	if v, ok := c.Get("user_id").(string); ok && v != "" {
		return v, nil
	}
	return "", errors.New("invalid user_id in context")
}

// isAdmin reports whether the authenticated caller carries the admin
// role. Admins may cancel or modify any user's booking.
func isAdmin(c echo.Context) bool {
	role, _ := c.Get("role").(string)
	return role == model.RoleAdmin
}
