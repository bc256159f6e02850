// README: Trip handlers for create/get/list plus the fixed 405 response.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atlas/internal/modules/trip"
	"atlas/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

// Create triggers the generation pipeline. Only POST reaches here; every
// other verb is answered by MethodNotAllowed via the router.
func (h *TripHandler) Create(c *gin.Context) {
	var req trip.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body we cannot decode gets the same 400 contract as missing
		// fields; the caller's fix is the same either way.
		writeJSON(c, http.StatusBadRequest, gin.H{
			"error":    "Missing required fields",
			"required": trip.RequiredFields,
		})
		return
	}

	id, err := h.trips.Create(c.Request.Context(), req)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"id": id, "success": true})
}

// tripResponse is the read-side shape of a persisted trip.
type tripResponse struct {
	ID         types.ID        `json:"id"`
	UserID     string          `json:"userId"`
	TripDetail json.RawMessage `json:"tripDetail"`
	ImageURLs  []string        `json:"imageUrls"`
	CreatedAt  time.Time       `json:"createdAt"`
}

func toTripResponse(rec *trip.Record) tripResponse {
	return tripResponse{
		ID:         rec.ID,
		UserID:     rec.UserID,
		TripDetail: json.RawMessage(rec.TripDetail),
		ImageURLs:  rec.ImageURLs,
		CreatedAt:  rec.CreatedAt,
	}
}

func (h *TripHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "missing trip id"})
		return
	}
	rec, err := h.trips.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toTripResponse(rec))
}

func (h *TripHandler) ListByUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		writeJSON(c, http.StatusBadRequest, gin.H{"error": "missing user id"})
		return
	}
	recs, err := h.trips.ListByUser(c.Request.Context(), userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	out := make([]tripResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toTripResponse(rec))
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": out})
}

// MethodNotAllowed is the fixed response for any verb other than the
// registered one on a known route.
func (h *TripHandler) MethodNotAllowed(c *gin.Context) {
	writeJSON(c, http.StatusMethodNotAllowed, gin.H{
		"error": "Method not allowed. Use POST to create trips.",
	})
}
