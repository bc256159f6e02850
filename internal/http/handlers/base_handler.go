// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/modules/trip"
	"atlas/internal/modules/user"
)

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

// writeTripError maps the pipeline's classified errors onto the wire
// contract. Missing fields and malformed bodies are the caller's fault;
// everything else is a 500 with a body specific to the failing step.
func writeTripError(c *gin.Context, err error) {
	var mf *trip.MissingFieldsError
	switch {
	case errors.As(err, &mf):
		writeJSON(c, http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": trip.RequiredFields,
		})
	case errors.Is(err, trip.ErrMisconfigured):
		writeJSON(c, http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
	case errors.Is(err, trip.ErrParse):
		writeJSON(c, http.StatusInternalServerError, gin.H{"error": "Failed to parse AI response"})
	case errors.Is(err, trip.ErrNotFound):
		writeJSON(c, http.StatusNotFound, gin.H{"error": "Trip not found"})
	default:
		// Generation and persistence failures land here. The wrapped message
		// names the failing step but never carries upstream response bodies.
		writeJSON(c, http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": err.Error(),
		})
	}
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrNotFound):
		writeJSON(c, http.StatusNotFound, gin.H{"error": "User not found"})
	default:
		writeJSON(c, http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
