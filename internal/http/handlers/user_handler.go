// README: User profile handlers (sync on first login, fetch own profile).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atlas/internal/http/middleware"
	"atlas/internal/modules/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{users: svc}
}

type syncUserReq struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Sync creates the local profile for the authenticated account if it does
// not exist yet, and returns it either way.
func (h *UserHandler) Sync(c *gin.Context) {
	uid := c.GetString(middleware.ContextUIDKey)
	if uid == "" {
		writeJSON(c, http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req syncUserReq
	// Profile fields are optional; an empty body is a valid sync.
	_ = c.ShouldBindJSON(&req)

	u, err := h.users.Ensure(c.Request.Context(), uid, req.Email, req.Name, req.ImageURL)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toUserResponse(u))
}

// Me returns the authenticated account's stored profile.
func (h *UserHandler) Me(c *gin.Context) {
	uid := c.GetString(middleware.ContextUIDKey)
	if uid == "" {
		writeJSON(c, http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	u, err := h.users.Get(c.Request.Context(), uid)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, toUserResponse(u))
}

func toUserResponse(u *user.User) gin.H {
	return gin.H{
		"id":        u.ID,
		"accountId": u.AccountID,
		"email":     u.Email,
		"name":      u.Name,
		"imageUrl":  u.ImageURL,
		"joinedAt":  u.JoinedAt,
	}
}
