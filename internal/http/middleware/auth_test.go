package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"atlas/internal/infra"
)

type stubVerifier struct {
	uid string
	err error
}

func (v *stubVerifier) VerifyIDToken(_ context.Context, _ string) (*infra.FirebaseToken, error) {
	if v.err != nil {
		return nil, v.err
	}
	return &infra.FirebaseToken{UID: v.uid}, nil
}

func authTestRouter(verifier infra.TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(verifier), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(ContextUIDKey)})
	})
	return r
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_NotBearer(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "u1"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	r := authTestRouter(&stubVerifier{err: errors.New("token expired")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuth_ValidToken(t *testing.T) {
	r := authTestRouter(&stubVerifier{uid: "firebase-uid-1"})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d, body=%s", w.Code, w.Body.String())
	}
	if want := `"firebase-uid-1"`; !strings.Contains(w.Body.String(), want) {
		t.Errorf("body %s missing uid", w.Body.String())
	}
}
