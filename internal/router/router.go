// Package router maps HTTP routes onto handlers and attaches the
// middleware each group needs. The paths are part of the public wire
// contract and must not change.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-room-booking/internal/handler"
	"github.com/iliyamo/hotel-room-booking/internal/middleware"
	"github.com/iliyamo/hotel-room-booking/internal/model"
)

// RegisterRoutes registers routes that carry no middleware at all.
// Currently that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration and login. Both are
// unauthenticated and rate limited, since they are the endpoints a
// credential-stuffing attack would hammer.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, rateLimit echo.MiddlewareFunc) {
	e.POST("/register", a.Register, rateLimit)
	e.POST("/login", a.Login, rateLimit)
}

// RegisterPublic registers the unauthenticated availability search.
// The response cache middleware keys on the request body, so two
// identical searches within the TTL share one database round trip.
func RegisterPublic(e *echo.Echo, s *handler.SuggestionHandler, cache echo.MiddlewareFunc) {
	e.POST("/rooms_per_type_and_suggestion", s.RoomsPerTypeAndSuggestion, cache)
}

// RegisterBooking registers the authenticated booking endpoints.
// Every route in the group requires a valid access token and a known
// role; admins get wider authority inside the handlers, not extra
// routes.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, jwtSecret string) {
	auth := e.Group("")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleUser, model.RoleAdmin))
	auth.GET("/user_bookings", b.UserBookings)
	auth.POST("/book", b.Book)
	auth.POST("/cancel_booking", b.CancelBooking)
	auth.POST("/modify_booking", b.ModifyBooking)
}
