// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/http/handlers"
	"atlas/internal/http/middleware"
	"atlas/internal/infra"
	"atlas/internal/modules/trip"
	"atlas/internal/modules/user"
)

// NewRouter wires the gin engine. userService and verifier may be nil when
// auth is not configured; the user routes are then simply not registered.
func NewRouter(tripService *trip.Service, userService *user.Service, verifier infra.TokenVerifier) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logging(), middleware.Recovery())

	tripHandler := handlers.NewTripHandler(tripService)

	// Trip creation accepts exactly one verb; everything else on a known
	// route gets the fixed 405 body.
	r.HandleMethodNotAllowed = true
	r.NoMethod(tripHandler.MethodNotAllowed)

	r.POST("/api/trips", tripHandler.Create)
	r.GET("/api/trips/:id", tripHandler.Get)
	r.GET("/api/users/:id/trips", tripHandler.ListByUser)

	if userService != nil && verifier != nil {
		userHandler := handlers.NewUserHandler(userService)
		authed := r.Group("/api/auth", middleware.Auth(verifier))
		authed.POST("/sync", userHandler.Sync)
		authed.GET("/me", userHandler.Me)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return r
}
